package structure

import "github.com/KULeuven-KRR/idp-core/element"

// Tuple is a row of interned elements, one per column of a predicate or
// function table. Tuples are compared and ordered column-by-column using
// element.Less, so two tuples of equal interned elements compare equal by
// value even though Tuple itself is a slice.
type Tuple []*element.Element

// Equal reports whether t and other hold the same elements (by identity,
// since elements are interned) in the same positions.
func (t Tuple) Equal(other Tuple) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if t[i] != other[i] {
			return false
		}
	}
	return true
}

// Less implements the canonical tuple order used by every table's
// iteration (spec §3.4 "Iteration yields tuples in a canonical order"):
// lexicographic over columns using element.Less.
func Less(a, b Tuple) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] == b[i] {
			continue
		}
		return element.Less(a[i], b[i])
	}
	return len(a) < len(b)
}
