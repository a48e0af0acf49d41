package iterator

// Iterator walks entries in key order. Seek positions the iterator at the
// first entry whose key is greater than or equal to the given key and
// returns an error when the key cannot be ordered against the stored keys.
type Iterator interface {
	First()
	Seek(key any) error
	Next() bool
	Valid() bool
	Key() any
	Value() any
}
