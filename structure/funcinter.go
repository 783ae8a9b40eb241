package structure

import "github.com/KULeuven-KRR/idp-core/diag"

// FuncInter is a function interpretation: optionally a two-valued
// FuncTable, and always the induced graph as a PredInter (spec §3.4
// "Function interpretation").
type FuncInter struct {
	Table *FuncTable // nil if the function is only known as a graph
	Graph *PredInter
}

// NewFuncInterFromTable builds a FuncInter from a total/partial FuncTable,
// deriving its graph as the least-precise two-valued interpretation of
// the function-graph table.
func NewFuncInterFromTable(t *FuncTable, universe *Universe) *FuncInter {
	graph := &FunctionGraphTable{Fn: t}
	return &FuncInter{
		Table: t,
		Graph: NewPredInterFromSingle(graph, AsCT, universe),
	}
}

// NewFuncInterFromGraph builds a FuncInter from only its graph
// interpretation, with no two-valued FuncTable (spec §3.4 "or only its
// graph as a PredInter").
func NewFuncInterFromGraph(graph *PredInter) *FuncInter {
	return &FuncInter{Graph: graph}
}

// FunctionCheck verifies functionality and, if total is true, totality
// (spec §4.6 "function_check"): the graph's ct must be functional
// (iterating it in canonical order, no two consecutive tuples share their
// input prefix), and if total, the ct size must equal the Cartesian
// product of the input sorts' sizes.
func FunctionCheck(fi *FuncInter, total bool, pos diag.Position, sink *diag.Sink) {
	arity := fi.Graph.Universe().Arity() - 1
	var prev Tuple
	count := 0
	for it := fi.Graph.CT().Iterate(); it.HasNext(); {
		cur := it.Next()
		count++
		if prev != nil && sameInputPrefix(prev, cur, arity) {
			sink.Report(diag.NotAFunction, pos, "functional violation: two tuples share the same input arguments")
			return
		}
		prev = cur
	}

	if !total {
		return
	}
	inputCols := fi.Graph.Universe().Columns[:arity]
	size := 1
	for _, c := range inputCols {
		n, ok := c.Size()
		if !ok {
			return // cannot check totality lazily over an infinite input sort
		}
		size *= n
	}
	if count != size {
		sink.Report(diag.NotTotal, pos, "function is declared total but only %d of %d input tuples have a value", count, size)
	}
}

func sameInputPrefix(a, b Tuple, arity int) bool {
	for i := 0; i < arity; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
