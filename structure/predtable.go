package structure

import (
	"sort"

	"github.com/KULeuven-KRR/idp-core/element"
)

// PredTable is the internal table behind one polarity (ct/cf/pt/pf) of a
// PredInter, or the graph of a FuncInter (spec §3.4 "Internal tables").
// Every variant answers finiteness, emptiness, membership and iteration;
// ApproxFinite/ApproxEmpty must never overreport.
type PredTable interface {
	Arity() int
	Finite() bool
	ApproxFinite() bool
	Empty() bool
	ApproxEmpty() bool
	Contains(t Tuple) bool
	Iterate() Iterator[Tuple]
}

// EnumeratedPredTable is a sorted-unique, explicit set of tuples; the
// only mutable variant, backing make_true/make_false/make_unknown (spec
// §4.5).
type EnumeratedPredTable struct {
	arity int
	tups  []Tuple
}

// NewEnumeratedPredTable builds a sorted, deduplicated tuple table of the
// given arity.
func NewEnumeratedPredTable(arity int, tups []Tuple) *EnumeratedPredTable {
	cp := append([]Tuple(nil), tups...)
	sort.Slice(cp, func(i, j int) bool { return Less(cp[i], cp[j]) })
	out := cp[:0]
	for i, t := range cp {
		if i == 0 || !out[len(out)-1].Equal(t) {
			out = append(out, t)
		}
	}
	return &EnumeratedPredTable{arity: arity, tups: out}
}

func (t *EnumeratedPredTable) Arity() int          { return t.arity }
func (t *EnumeratedPredTable) Finite() bool        { return true }
func (t *EnumeratedPredTable) ApproxFinite() bool  { return true }
func (t *EnumeratedPredTable) Empty() bool         { return len(t.tups) == 0 }
func (t *EnumeratedPredTable) ApproxEmpty() bool   { return t.Empty() }
func (t *EnumeratedPredTable) Iterate() Iterator[Tuple] {
	return newSliceIterator(t.tups)
}
func (t *EnumeratedPredTable) Contains(tup Tuple) bool {
	i := sort.Search(len(t.tups), func(i int) bool { return !Less(t.tups[i], tup) })
	return i < len(t.tups) && t.tups[i].Equal(tup)
}

// Add inserts tup, keeping tups sorted and unique.
func (t *EnumeratedPredTable) Add(tup Tuple) {
	if t.Contains(tup) {
		return
	}
	i := sort.Search(len(t.tups), func(i int) bool { return !Less(t.tups[i], tup) })
	t.tups = append(t.tups, nil)
	copy(t.tups[i+1:], t.tups[i:])
	t.tups[i] = tup
}

// Remove deletes tup if present.
func (t *EnumeratedPredTable) Remove(tup Tuple) {
	i := sort.Search(len(t.tups), func(i int) bool { return !Less(t.tups[i], tup) })
	if i < len(t.tups) && t.tups[i].Equal(tup) {
		t.tups = append(t.tups[:i], t.tups[i+1:]...)
	}
}

// SortDerivedUnaryTable is a unary predicate table whose column is
// exactly a sort table (spec §3.4 "Sort-derived unary"): a sort's
// auto-generated characteristic predicate is backed by one of these.
type SortDerivedUnaryTable struct {
	Col SortTable
}

func (t *SortDerivedUnaryTable) Arity() int         { return 1 }
func (t *SortDerivedUnaryTable) Finite() bool       { return t.Col.Finite() }
func (t *SortDerivedUnaryTable) ApproxFinite() bool { return t.Col.ApproxFinite() }
func (t *SortDerivedUnaryTable) Empty() bool        { return t.Col.Empty() }
func (t *SortDerivedUnaryTable) ApproxEmpty() bool  { return t.Col.Empty() }
func (t *SortDerivedUnaryTable) Contains(tup Tuple) bool {
	return len(tup) == 1 && t.Col.Contains(tup[0])
}
func (t *SortDerivedUnaryTable) Iterate() Iterator[Tuple] {
	var tups []Tuple
	for it := t.Col.Iterate(); it.HasNext(); {
		tups = append(tups, Tuple{it.Next()})
	}
	return newSliceIterator(tups)
}

// FunctionGraphTable presents a FuncTable's (input..., value) pairs as a
// predicate table (spec §3.4 "Function-graph").
type FunctionGraphTable struct {
	Fn *FuncTable
}

func (t *FunctionGraphTable) Arity() int         { return t.Fn.Arity() + 1 }
func (t *FunctionGraphTable) Finite() bool       { return t.Fn.Finite() }
func (t *FunctionGraphTable) ApproxFinite() bool { return t.Fn.ApproxFinite() }
func (t *FunctionGraphTable) Empty() bool        { return t.Fn.Empty() }
func (t *FunctionGraphTable) ApproxEmpty() bool  { return t.Fn.Empty() }
func (t *FunctionGraphTable) Contains(tup Tuple) bool {
	if len(tup) != t.Arity() {
		return false
	}
	v, ok := t.Fn.Apply(tup[:len(tup)-1])
	return ok && v == tup[len(tup)-1]
}
func (t *FunctionGraphTable) Iterate() Iterator[Tuple] {
	var tups []Tuple
	for it := t.Fn.Iterate(); it.HasNext(); {
		tups = append(tups, it.Next())
	}
	return newSliceIterator(tups)
}

// ComparisonOp is the comparator backing a ComparisonTable.
type ComparisonOp int

const (
	CmpOpEq ComparisonOp = iota
	CmpOpLt
	CmpOpGt
)

// ComparisonTable is the built-in =, <, > table over a sort table (spec
// §3.4 "Comparison"): pairs (a, b) with a Op b, both drawn from Col.
type ComparisonTable struct {
	Op  ComparisonOp
	Col SortTable
}

func (t *ComparisonTable) Arity() int         { return 2 }
func (t *ComparisonTable) Finite() bool       { return t.Col.Finite() }
func (t *ComparisonTable) ApproxFinite() bool { return t.Col.ApproxFinite() }
func (t *ComparisonTable) Empty() bool {
	if t.Op == CmpOpEq {
		return t.Col.Empty()
	}
	// < and > are non-empty as soon as Col has at least two elements.
	n, ok := t.Col.Size()
	return ok && n < 2
}
func (t *ComparisonTable) ApproxEmpty() bool { return t.Empty() }
func (t *ComparisonTable) Contains(tup Tuple) bool {
	if len(tup) != 2 || !t.Col.Contains(tup[0]) || !t.Col.Contains(tup[1]) {
		return false
	}
	switch t.Op {
	case CmpOpEq:
		return tup[0] == tup[1]
	case CmpOpLt:
		return element.Less(tup[0], tup[1])
	case CmpOpGt:
		return element.Less(tup[1], tup[0])
	default:
		return false
	}
}
func (t *ComparisonTable) Iterate() Iterator[Tuple] {
	if !t.Col.Finite() {
		panic("structure: cannot iterate a comparison table over an infinite sort")
	}
	var elems []*element.Element
	for it := t.Col.Iterate(); it.HasNext(); {
		elems = append(elems, it.Next())
	}
	var tups []Tuple
	for i, a := range elems {
		for j, b := range elems {
			switch t.Op {
			case CmpOpEq:
				if i == j {
					tups = append(tups, Tuple{a, b})
				}
			case CmpOpLt:
				if i < j {
					tups = append(tups, Tuple{a, b})
				}
			case CmpOpGt:
				if i > j {
					tups = append(tups, Tuple{a, b})
				}
			}
		}
	}
	sort.Slice(tups, func(i, j int) bool { return Less(tups[i], tups[j]) })
	return newSliceIterator(tups)
}

// InverseTable is the complement of another predicate table within a
// universe (spec §3.4 "Inverse").
type InverseTable struct {
	Inner    PredTable
	Universe *Universe
}

func (t *InverseTable) Arity() int { return t.Inner.Arity() }
func (t *InverseTable) Finite() bool {
	return t.Universe.Finite()
}
func (t *InverseTable) ApproxFinite() bool {
	return t.Universe.ApproxFinite()
}
func (t *InverseTable) Contains(tup Tuple) bool {
	return t.Universe.Contains(tup) && !t.Inner.Contains(tup)
}
func (t *InverseTable) Empty() bool {
	for it := t.Iterate(); it.HasNext(); {
		it.Next()
		return false
	}
	return true
}
func (t *InverseTable) ApproxEmpty() bool { return t.Empty() }
func (t *InverseTable) Iterate() Iterator[Tuple] {
	if !t.Finite() {
		panic("structure: cannot iterate the inverse of a table over an infinite universe")
	}
	var tups []Tuple
	for it := t.Universe.Iterate(); it.HasNext(); {
		tup := it.Next()
		if !t.Inner.Contains(tup) {
			tups = append(tups, tup)
		}
	}
	return newSliceIterator(tups)
}

// UnionTable is a set of inner predicate tables minus a blacklist of
// outer tables (spec §3.4 "Union").
type UnionTable struct {
	arity     int
	Inner     []PredTable
	Blacklist []PredTable
}

// NewUnionTable builds a union-with-blacklist predicate table of arity.
func NewUnionTable(arity int, inner, blacklist []PredTable) *UnionTable {
	return &UnionTable{arity: arity, Inner: inner, Blacklist: blacklist}
}

func (t *UnionTable) Arity() int { return t.arity }
func (t *UnionTable) Contains(tup Tuple) bool {
	found := false
	for _, s := range t.Inner {
		if s.Contains(tup) {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	for _, b := range t.Blacklist {
		if b.Contains(tup) {
			return false
		}
	}
	return true
}
func (t *UnionTable) Finite() bool {
	for _, s := range t.Inner {
		if !s.Finite() {
			return false
		}
	}
	return true
}
func (t *UnionTable) ApproxFinite() bool {
	for _, s := range t.Inner {
		if !s.ApproxFinite() {
			return false
		}
	}
	return true
}
func (t *UnionTable) Empty() bool {
	for it := t.Iterate(); it.HasNext(); {
		it.Next()
		return false
	}
	return true
}
func (t *UnionTable) ApproxEmpty() bool { return t.Empty() }
func (t *UnionTable) Iterate() Iterator[Tuple] {
	if !t.Finite() {
		panic("structure: cannot iterate a union table with an infinite member")
	}
	var seen []Tuple
	var tups []Tuple
	for _, s := range t.Inner {
		for it := s.Iterate(); it.HasNext(); {
			tup := it.Next()
			if !t.Contains(tup) {
				continue
			}
			dup := false
			for _, e := range seen {
				if e.Equal(tup) {
					dup = true
					break
				}
			}
			if dup {
				continue
			}
			seen = append(seen, tup)
			tups = append(tups, tup)
		}
	}
	sort.Slice(tups, func(i, j int) bool { return Less(tups[i], tups[j]) })
	return newSliceIterator(tups)
}

// ProcessTable calls back into an external procedure for membership only
// (spec §3.4 "Process (call-back to an external procedure: relevant only
// as interface)"): finiteness is unknown and iteration is unsupported.
type ProcessTable struct {
	arity   int
	Contain func(Tuple) bool
}

// NewProcessTable wraps an external membership callback as a PredTable.
func NewProcessTable(arity int, contain func(Tuple) bool) *ProcessTable {
	return &ProcessTable{arity: arity, Contain: contain}
}

func (t *ProcessTable) Arity() int           { return t.arity }
func (t *ProcessTable) Finite() bool         { return false }
func (t *ProcessTable) ApproxFinite() bool   { return false }
func (t *ProcessTable) Empty() bool          { return false }
func (t *ProcessTable) ApproxEmpty() bool    { return false }
func (t *ProcessTable) Contains(tup Tuple) bool { return t.Contain(tup) }
func (t *ProcessTable) Iterate() Iterator[Tuple] {
	panic("structure: a process table cannot be iterated")
}
