package structure

// Universe is the tuple of sort tables a predicate or function table is
// defined over, one per column (spec §3.4 "Universe"). Predicate and
// function tables carry a reference to their Universe rather than owning
// their own copy of it.
type Universe struct {
	Columns []SortTable
}

// NewUniverse builds a universe from its column sort tables.
func NewUniverse(cols ...SortTable) *Universe {
	return &Universe{Columns: cols}
}

// Arity returns the number of columns.
func (u *Universe) Arity() int { return len(u.Columns) }

// Finite reports whether every column is finite.
func (u *Universe) Finite() bool {
	for _, c := range u.Columns {
		if !c.Finite() {
			return false
		}
	}
	return true
}

// ApproxFinite conservatively reports finiteness (never overreports).
func (u *Universe) ApproxFinite() bool {
	for _, c := range u.Columns {
		if !c.ApproxFinite() {
			return false
		}
	}
	return true
}

// Contains reports whether every column of tup belongs to the
// corresponding sort table.
func (u *Universe) Contains(tup Tuple) bool {
	if len(tup) != len(u.Columns) {
		return false
	}
	for i, c := range u.Columns {
		if !c.Contains(tup[i]) {
			return false
		}
	}
	return true
}

// Size returns the Cartesian product size of the columns, if every
// column is finite.
func (u *Universe) Size() (int, bool) {
	n := 1
	for _, c := range u.Columns {
		sz, ok := c.Size()
		if !ok {
			return 0, false
		}
		n *= sz
	}
	return n, true
}

// Iterate yields every tuple in the Cartesian product of the columns, in
// canonical (column-major, each column in its own canonical order)
// order. Panics if the universe is not finite.
func (u *Universe) Iterate() Iterator[Tuple] {
	if !u.Finite() {
		panic("structure: cannot iterate an infinite universe")
	}
	var tups []Tuple
	var build func(prefix Tuple, i int)
	build = func(prefix Tuple, i int) {
		if i == len(u.Columns) {
			cp := append(Tuple(nil), prefix...)
			tups = append(tups, cp)
			return
		}
		for it := u.Columns[i].Iterate(); it.HasNext(); {
			e := it.Next()
			build(append(prefix, e), i+1)
		}
	}
	build(nil, 0)
	return newSliceIterator(tups)
}
