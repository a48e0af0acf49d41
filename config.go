package collections

import "github.com/omelentyev/runtime/collections/compare"

const (
	MaxSkipListHeight = 12
	SkipListP         = 0.25
)

// DefaultComparator orders keys and elements when no comparator is given.
var DefaultComparator compare.Comparator = compare.DefaultInvariant()
