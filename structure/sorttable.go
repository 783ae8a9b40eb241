package structure

import (
	"sort"

	"github.com/KULeuven-KRR/idp-core/element"
	"github.com/KULeuven-KRR/idp-core/vocabulary"
)

// SortTable is a sort's interpretation: the set of domain elements
// belonging to it (spec §3.4 "Sort interpretation"). Every variant must
// answer finiteness, emptiness, membership and iteration; ApproxFinite
// must never claim finiteness for a table that is not actually finite
// (spec §3.4 "must not overreport finiteness").
type SortTable interface {
	Finite() bool
	ApproxFinite() bool
	Empty() bool
	Size() (int, bool) // ok is false when the table is infinite
	Contains(e *element.Element) bool
	Iterate() Iterator[*element.Element]
}

// EmptySortTable is the sort table with no elements.
type EmptySortTable struct{}

func (EmptySortTable) Finite() bool       { return true }
func (EmptySortTable) ApproxFinite() bool { return true }
func (EmptySortTable) Empty() bool        { return true }
func (EmptySortTable) Size() (int, bool)  { return 0, true }
func (EmptySortTable) Contains(*element.Element) bool {
	return false
}
func (EmptySortTable) Iterate() Iterator[*element.Element] {
	return newSliceIterator[*element.Element](nil)
}

// IntRangeSortTable is a finite, contiguous range of integers [Lo, Hi].
type IntRangeSortTable struct {
	Lo, Hi  int64
	Factory *element.Factory
}

// NewIntRangeSortTable creates a finite integer-range table over [lo, hi].
func NewIntRangeSortTable(factory *element.Factory, lo, hi int64) *IntRangeSortTable {
	return &IntRangeSortTable{Lo: lo, Hi: hi, Factory: factory}
}

func (t *IntRangeSortTable) Finite() bool       { return true }
func (t *IntRangeSortTable) ApproxFinite() bool { return true }
func (t *IntRangeSortTable) Empty() bool        { return t.Hi < t.Lo }
func (t *IntRangeSortTable) Size() (int, bool) {
	if t.Empty() {
		return 0, true
	}
	return int(t.Hi-t.Lo) + 1, true
}
func (t *IntRangeSortTable) Contains(e *element.Element) bool {
	if e.Kind() != element.KindInt {
		return false
	}
	return e.Int() >= t.Lo && e.Int() <= t.Hi
}
func (t *IntRangeSortTable) Iterate() Iterator[*element.Element] {
	if t.Empty() {
		return newSliceIterator[*element.Element](nil)
	}
	items := make([]*element.Element, 0, t.Hi-t.Lo+1)
	for i := t.Lo; i <= t.Hi; i++ {
		items = append(items, t.Factory.CreateInt(i))
	}
	return newSliceIterator(items)
}

// EnumeratedSortTable is an explicit, sorted-unique finite set of
// elements.
type EnumeratedSortTable struct {
	elems []*element.Element
}

// NewEnumeratedSortTable builds a sorted, deduplicated sort table from
// elems (spec §3.4 "enumerated finite set (sorted unique)").
func NewEnumeratedSortTable(elems []*element.Element) *EnumeratedSortTable {
	cp := append([]*element.Element(nil), elems...)
	sort.Slice(cp, func(i, j int) bool { return element.Less(cp[i], cp[j]) })
	out := cp[:0]
	for i, e := range cp {
		if i == 0 || out[len(out)-1] != e {
			out = append(out, e)
		}
	}
	return &EnumeratedSortTable{elems: out}
}

func (t *EnumeratedSortTable) Finite() bool       { return true }
func (t *EnumeratedSortTable) ApproxFinite() bool { return true }
func (t *EnumeratedSortTable) Empty() bool        { return len(t.elems) == 0 }
func (t *EnumeratedSortTable) Size() (int, bool)  { return len(t.elems), true }
func (t *EnumeratedSortTable) Contains(e *element.Element) bool {
	i := sort.Search(len(t.elems), func(i int) bool { return !element.Less(t.elems[i], e) })
	return i < len(t.elems) && t.elems[i] == e
}
func (t *EnumeratedSortTable) Iterate() Iterator[*element.Element] {
	return newSliceIterator(t.elems)
}

// Add inserts e, keeping the table sorted and unique. Used by
// autocompletion (spec §3.4 "extend sort tables to contain every element
// occurring in any symbol interpretation").
func (t *EnumeratedSortTable) Add(e *element.Element) {
	if t.Contains(e) {
		return
	}
	i := sort.Search(len(t.elems), func(i int) bool { return !element.Less(t.elems[i], e) })
	t.elems = append(t.elems, nil)
	copy(t.elems[i+1:], t.elems[i:])
	t.elems[i] = e
}

// builtinSortTable backs the infinite builtin sorts (nat, int, real,
// char, string), one BuiltinSortKind each (vocabulary.BuiltinSortKind is
// L1's opaque tag so L3 can switch on it without L1 depending on L3; spec
// §4.2 "Each carries a built-in infinite sort-table generator").
type builtinSortTable struct {
	kind vocabulary.BuiltinSortKind
}

// NewBuiltinSortTable returns the infinite table generator for one of the
// built-in sort kinds.
func NewBuiltinSortTable(kind vocabulary.BuiltinSortKind) SortTable {
	return builtinSortTable{kind: kind}
}

func (builtinSortTable) Finite() bool       { return false }
func (builtinSortTable) ApproxFinite() bool { return false }
func (builtinSortTable) Empty() bool        { return false }
func (builtinSortTable) Size() (int, bool)  { return 0, false }

func (t builtinSortTable) Contains(e *element.Element) bool {
	switch t.kind {
	case vocabulary.BuiltinNat:
		return e.Kind() == element.KindInt && e.Int() >= 0
	case vocabulary.BuiltinInt:
		return e.Kind() == element.KindInt
	case vocabulary.BuiltinReal:
		return e.Kind() == element.KindInt || e.Kind() == element.KindReal
	case vocabulary.BuiltinChar:
		return e.Kind() == element.KindString && len([]rune(e.Str())) == 1
	case vocabulary.BuiltinString:
		return e.Kind() == element.KindString
	default:
		return false
	}
}

func (builtinSortTable) Iterate() Iterator[*element.Element] {
	panic("structure: cannot iterate an infinite built-in sort table")
}

// UnionSortTable is the union of a set of sort tables minus the union of
// a blacklist of sort tables (spec §3.4 "union of sort tables with a
// blacklist").
type UnionSortTable struct {
	Inner     []SortTable
	Blacklist []SortTable
}

// NewUnionSortTable builds a union-with-blacklist sort table.
func NewUnionSortTable(inner, blacklist []SortTable) *UnionSortTable {
	return &UnionSortTable{Inner: inner, Blacklist: blacklist}
}

func (t *UnionSortTable) Contains(e *element.Element) bool {
	found := false
	for _, s := range t.Inner {
		if s.Contains(e) {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	for _, b := range t.Blacklist {
		if b.Contains(e) {
			return false
		}
	}
	return true
}

// Finite is exact only when every inner table is finite; the blacklist
// can only shrink the set, so it never affects finiteness.
func (t *UnionSortTable) Finite() bool {
	for _, s := range t.Inner {
		if !s.Finite() {
			return false
		}
	}
	return true
}

// ApproxFinite conservatively reports finiteness only when every inner
// table is (at least approximately) finite: overreporting finiteness is
// forbidden, underreporting is safe (spec §3.4).
func (t *UnionSortTable) ApproxFinite() bool {
	for _, s := range t.Inner {
		if !s.ApproxFinite() {
			return false
		}
	}
	return true
}

func (t *UnionSortTable) Empty() bool {
	for it := t.Iterate(); it.HasNext(); {
		it.Next()
		return false
	}
	return true
}

func (t *UnionSortTable) Size() (int, bool) {
	if !t.Finite() {
		return 0, false
	}
	n := 0
	for it := t.Iterate(); it.HasNext(); it.Next() {
		n++
	}
	return n, true
}

func (t *UnionSortTable) Iterate() Iterator[*element.Element] {
	if !t.Finite() {
		panic("structure: cannot iterate a union sort table with an infinite member")
	}
	seen := map[*element.Element]bool{}
	var items []*element.Element
	for _, s := range t.Inner {
		for it := s.Iterate(); it.HasNext(); {
			e := it.Next()
			if seen[e] || !t.Contains(e) {
				continue
			}
			seen[e] = true
			items = append(items, e)
		}
	}
	sort.Slice(items, func(i, j int) bool { return element.Less(items[i], items[j]) })
	return newSliceIterator(items)
}
