package structure

import (
	"sort"

	"github.com/KULeuven-KRR/idp-core/element"
)

// FuncTable is a two-valued, pointwise function interpretation: total if
// every input tuple in its universe has a value, partial otherwise (spec
// §3.4 "Function interpretation ... optionally holding a two-valued
// FuncTable").
type FuncTable struct {
	arity int
	keys  []string
	rows  map[string]Tuple // input-key -> (input..., value)
}

// NewFuncTable builds a function table of the given input arity from
// (input..., value) rows.
func NewFuncTable(arity int, rows []Tuple) *FuncTable {
	t := &FuncTable{arity: arity, rows: make(map[string]Tuple, len(rows))}
	for _, r := range rows {
		t.Set(r[:arity], r[arity])
	}
	return t
}

func tupleKey(tup Tuple) string {
	b := make([]byte, 0, 8*len(tup))
	for _, e := range tup {
		b = append(b, []byte(e.String())...)
		b = append(b, 0)
	}
	return string(b)
}

// Arity returns the number of input columns.
func (t *FuncTable) Arity() int { return t.arity }

// Set binds input to value, overwriting any existing binding.
func (t *FuncTable) Set(input Tuple, value *element.Element) {
	key := tupleKey(input)
	if _, exists := t.rows[key]; !exists {
		t.keys = append(t.keys, key)
	}
	row := append(Tuple(nil), input...)
	row = append(row, value)
	t.rows[key] = row
}

// Apply returns the value bound to input, if any.
func (t *FuncTable) Apply(input Tuple) (*element.Element, bool) {
	row, ok := t.rows[tupleKey(input)]
	if !ok {
		return nil, false
	}
	return row[len(row)-1], true
}

// Finite reports whether the table has a known, finite row count; a
// FuncTable is always finite since it is always enumerated pointwise.
func (t *FuncTable) Finite() bool       { return true }
func (t *FuncTable) ApproxFinite() bool { return true }
func (t *FuncTable) Empty() bool        { return len(t.rows) == 0 }

// Iterate yields every (input..., value) row in canonical tuple order.
func (t *FuncTable) Iterate() Iterator[Tuple] {
	rows := make([]Tuple, 0, len(t.rows))
	for _, r := range t.rows {
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool { return Less(rows[i], rows[j]) })
	return newSliceIterator(rows)
}

// Total reports whether every input tuple in universe has a binding
// (spec §4.6 "total" check is performed lazily in function_check, but a
// direct query is useful for callers that already have the universe).
func (t *FuncTable) Total(universe *Universe) bool {
	if !universe.Finite() {
		return false
	}
	size, _ := universe.Size()
	return len(t.rows) == size
}
