package compare

// Comparable is implemented by values that know their own order relative to
// values of any type. CompareTo returns a negative number when the receiver
// sorts before other, zero when equal and a positive number otherwise. It
// returns an error when other is of a type the receiver cannot order against.
type Comparable interface {
	CompareTo(other any) (int, error)
}
