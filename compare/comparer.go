package compare

import (
	"fmt"
	"math"
	"reflect"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparer orders values of any type. Strings are ordered by the collation
// rules of the locale the Comparer is bound to; other values must implement
// Comparable.
//
// A Comparer is immutable and safe for concurrent use.
type Comparer struct {
	tag language.Tag

	// collate.Collator keeps scratch buffers, so every goroutine borrows its own.
	collators *sync.Pool

	// set on comparers handed out to more than one caller; decoders refuse them.
	shared bool
}

// New returns a Comparer bound to the locale with the given BCP 47 name.
// An empty name is rejected with ErrInvalidArgument; use "und" for the
// invariant locale.
func New(locale string) (*Comparer, error) {
	if locale == "" {
		return nil, fmt.Errorf("%w: locale is required", ErrInvalidArgument)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: locale %q: %v", ErrInvalidArgument, locale, err)
	}
	return NewWithTag(tag), nil
}

func NewWithTag(tag language.Tag) *Comparer {
	return &Comparer{
		tag: tag,
		collators: &sync.Pool{
			New: func() any {
				return collate.New(tag)
			},
		},
	}
}

func newShared(tag language.Tag) *Comparer {
	c := NewWithTag(tag)
	c.shared = true
	return c
}

func (c *Comparer) Locale() language.Tag {
	return c.tag
}

func (c *Comparer) String() string {
	return "compare.Comparer(" + c.tag.String() + ")"
}

// Compare returns the order of a relative to b. Resolution stops at the
// first rule that applies:
//
//  1. a and b are the same instance, or both absent: 0
//  2. a is absent: -1; b is absent: 1
//  3. both are strings, or of types whose underlying type is string and
//     that do not implement Comparable: the locale collation result
//  4. a implements Comparable: a.CompareTo(b)
//  5. b implements Comparable: -b.CompareTo(a)
//  6. otherwise ErrNotComparable
//
// Absent means a nil interface, or a nil pointer, map, slice, func or
// chan. Only the sign of the result is meaningful; rules 4 and 5 pass
// through whatever magnitude the value reports. math.MinInt from rule 5
// has no negation and is reported as math.MaxInt.
func (c *Comparer) Compare(a, b any) (int, error) {
	absentA, absentB := isAbsent(a), isAbsent(b)
	if absentA && absentB {
		return 0, nil
	}
	if absentA {
		return -1, nil
	}
	if absentB {
		return 1, nil
	}
	if sameInstance(a, b) {
		return 0, nil
	}

	if sa, ok := textValue(a); ok {
		if sb, ok := textValue(b); ok {
			return c.compareText(sa, sb), nil
		}
	}

	if ca, ok := a.(Comparable); ok {
		return ca.CompareTo(b)
	}
	if cb, ok := b.(Comparable); ok {
		n, err := cb.CompareTo(a)
		if err != nil {
			return 0, err
		}
		return negate(n), nil
	}

	return 0, fmt.Errorf("%w: neither %T nor %T implements Comparable", ErrNotComparable, a, b)
}

func (c *Comparer) compareText(a, b string) int {
	if c.collators == nil {
		return collate.New(c.tag).CompareString(a, b)
	}
	col := c.collators.Get().(*collate.Collator)
	defer c.collators.Put(col)
	return col.CompareString(a, b)
}

// negate keeps the sign of math.MinInt flipped even though its magnitude
// cannot be represented.
func negate(n int) int {
	if n == math.MinInt {
		return math.MaxInt
	}
	return -n
}

func textValue(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	// a named string type that orders itself keeps its own order
	if _, ok := v.(Comparable); ok {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// sameInstance reports whether a and b refer to the same underlying object.
// Values without identity, such as numbers, strings and structs, never match.
func sameInstance(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}
	return false
}
