package collections

import (
	"fmt"
	"slices"

	"github.com/omelentyev/runtime/collections/compare"
)

// Sort orders s in place with c, or with DefaultComparator when c is nil.
// The first comparison error stops the sort and is returned; s is then left
// in an unspecified order.
func Sort(c compare.Comparator, s []any) error {
	return sortWith(slices.SortFunc[[]any, any], c, s)
}

// SortStable is Sort keeping equal elements in their original order.
func SortStable(c compare.Comparator, s []any) error {
	return sortWith(slices.SortStableFunc[[]any, any], c, s)
}

func sortWith(sorter func([]any, func(a, b any) int), c compare.Comparator, s []any) error {
	if c == nil {
		c = DefaultComparator
	}
	var err error
	sorter(s, func(a, b any) int {
		if err != nil {
			return 0
		}
		n, cerr := c.Compare(a, b)
		if cerr != nil {
			err = cerr
			return 0
		}
		return n
	})
	if err != nil {
		return fmt.Errorf("sort: %w", err)
	}
	return nil
}

func IsSorted(c compare.Comparator, s []any) (bool, error) {
	if c == nil {
		c = DefaultComparator
	}
	for i := 1; i < len(s); i++ {
		n, err := c.Compare(s[i-1], s[i])
		if err != nil {
			return false, fmt.Errorf("sort: %w", err)
		}
		if n > 0 {
			return false, nil
		}
	}
	return true, nil
}
