package compare

import (
	"bytes"
	"fmt"
	"strings"
)

// Comparator orders two values. The sign of the result is the order:
// negative when a sorts before b, zero when equal, positive otherwise.
// The magnitude carries no meaning.
type Comparator interface {
	Compare(a, b any) (int, error)
}

type ComparatorFunc func(a, b any) (int, error)

func (f ComparatorFunc) Compare(a, b any) (int, error) {
	return f(a, b)
}

// BasicComparator orders strings and byte slices by their raw bytes.
type BasicComparator struct{}

func (c BasicComparator) Compare(a, b any) (int, error) {
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y), nil
		}
	case []byte:
		if y, ok := b.([]byte); ok {
			return bytes.Compare(x, y), nil
		}
	}
	return 0, fmt.Errorf("%w: %T and %T", ErrNotComparable, a, b)
}

func Reverse(c Comparator) Comparator {
	return ComparatorFunc(func(a, b any) (int, error) {
		return c.Compare(b, a)
	})
}

// Chain returns a comparator that consults each comparator in turn and
// returns the first non-zero result.
func Chain(cs ...Comparator) Comparator {
	return ComparatorFunc(func(a, b any) (int, error) {
		for _, c := range cs {
			n, err := c.Compare(a, b)
			if err != nil || n != 0 {
				return n, err
			}
		}
		return 0, nil
	})
}
