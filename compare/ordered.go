package compare

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Ordered makes a built-in ordered value Comparable. It orders against other
// Ordered values of the same type and against bare values of type T.
type Ordered[T constraints.Ordered] struct {
	Value T
}

func Of[T constraints.Ordered](v T) Ordered[T] {
	return Ordered[T]{v}
}

func (o Ordered[T]) CompareTo(other any) (int, error) {
	switch x := other.(type) {
	case Ordered[T]:
		return cmp.Compare(o.Value, x.Value), nil
	case *Ordered[T]:
		if x == nil {
			return 1, nil
		}
		return cmp.Compare(o.Value, x.Value), nil
	case T:
		return cmp.Compare(o.Value, x), nil
	}
	return 0, fmt.Errorf("%w: %T and %T", ErrNotComparable, o, other)
}

func (o Ordered[T]) String() string {
	return fmt.Sprint(o.Value)
}
