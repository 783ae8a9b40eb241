package structure

import (
	"github.com/KULeuven-KRR/idp-core/diag"
	"github.com/KULeuven-KRR/idp-core/vocabulary"
)

// Structure binds, for a given vocabulary, an interpretation object to
// every sort/predicate/function (spec §3.4). A Structure owns every
// table it holds for non-built-in sorts and symbols exclusively (spec
// §5 "Ownership"); nothing here is shared with another Structure.
type Structure struct {
	Voc *vocabulary.Vocabulary

	sorts map[*vocabulary.Sort]SortTable
	preds map[*vocabulary.PredSymbol]*PredInter
	funcs map[*vocabulary.FuncSymbol]*FuncInter
}

// NewStructure creates an empty structure over voc: built-in sorts get
// their infinite generator table immediately, everything else starts
// unbound until SetSortInter/SetPredInter/SetFuncInter is called.
func NewStructure(voc *vocabulary.Vocabulary) *Structure {
	s := &Structure{
		Voc:   voc,
		sorts: make(map[*vocabulary.Sort]SortTable),
		preds: make(map[*vocabulary.PredSymbol]*PredInter),
		funcs: make(map[*vocabulary.FuncSymbol]*FuncInter),
	}
	for _, sort := range voc.Sorts() {
		if sort.Builtin != vocabulary.NotBuiltin {
			s.sorts[sort] = NewBuiltinSortTable(sort.Builtin)
		}
	}
	return s
}

// SortInter returns the interpretation of sort, if bound.
func (s *Structure) SortInter(sort *vocabulary.Sort) (SortTable, bool) {
	t, ok := s.sorts[sort]
	return t, ok
}

// SetSortInter binds sort's interpretation.
func (s *Structure) SetSortInter(sort *vocabulary.Sort, t SortTable) {
	s.sorts[sort] = t
}

// PredInter returns the interpretation of sym, if bound.
func (s *Structure) PredInter(sym *vocabulary.PredSymbol) (*PredInter, bool) {
	p, ok := s.preds[sym]
	return p, ok
}

// SetPredInter binds sym's interpretation.
func (s *Structure) SetPredInter(sym *vocabulary.PredSymbol, p *PredInter) {
	s.preds[sym] = p
}

// FuncInter returns the interpretation of sym, if bound.
func (s *Structure) FuncInter(sym *vocabulary.FuncSymbol) (*FuncInter, bool) {
	f, ok := s.funcs[sym]
	return f, ok
}

// SetFuncInter binds sym's interpretation.
func (s *Structure) SetFuncInter(sym *vocabulary.FuncSymbol, f *FuncInter) {
	s.funcs[sym] = f
}

// UniverseOfPred builds sym's universe from the structure's current sort
// interpretations (spec §6 "a universe builder universe_of(symbol)").
// Columns for sorts with no bound interpretation are the empty table.
func (s *Structure) UniverseOfPred(sym *vocabulary.PredSymbol) *Universe {
	return s.universeOf(sym.Sorts)
}

// UniverseOfFunc builds sym's universe (input sorts plus the output
// sort, matching the function-graph's arity).
func (s *Structure) UniverseOfFunc(sym *vocabulary.FuncSymbol) *Universe {
	return s.universeOf(sym.Sorts)
}

func (s *Structure) universeOf(sorts []*vocabulary.Sort) *Universe {
	cols := make([]SortTable, len(sorts))
	for i, sort := range sorts {
		if t, ok := s.sorts[sort]; ok {
			cols[i] = t
		} else {
			cols[i] = EmptySortTable{}
		}
	}
	return NewUniverse(cols...)
}

// ReplaceVocabulary re-points the structure at newVoc: interpretations of
// sorts/symbols no longer present are dropped, and sorts/symbols newly
// present get the least-precise interpretation — empty sort table for a
// new sort, and (empty ct, empty cf, universe pt, universe pf) for a new
// predicate/function (spec §3.4 "Lifecycle").
func (s *Structure) ReplaceVocabulary(newVoc *vocabulary.Vocabulary) {
	for sort := range s.sorts {
		if !hasSort(newVoc, sort) {
			delete(s.sorts, sort)
		}
	}
	for _, sort := range newVoc.Sorts() {
		if _, ok := s.sorts[sort]; ok {
			continue
		}
		if sort.Builtin != vocabulary.NotBuiltin {
			s.sorts[sort] = NewBuiltinSortTable(sort.Builtin)
		} else {
			s.sorts[sort] = EmptySortTable{}
		}
	}

	for sym := range s.preds {
		if !hasPred(newVoc, sym) {
			delete(s.preds, sym)
		}
	}
	for _, ov := range newVoc.Preds() {
		for _, sym := range ov.Variants() {
			if _, ok := s.preds[sym]; ok {
				continue
			}
			s.preds[sym] = leastPrecisePredInter(len(sym.Sorts), s.universeOf(sym.Sorts))
		}
	}

	for sym := range s.funcs {
		if !hasFunc(newVoc, sym) {
			delete(s.funcs, sym)
		}
	}
	for _, ov := range newVoc.Funcs() {
		for _, sym := range ov.Variants() {
			if _, ok := s.funcs[sym]; ok {
				continue
			}
			universe := s.universeOf(sym.Sorts)
			graph := leastPrecisePredInter(len(sym.Sorts), universe)
			s.funcs[sym] = NewFuncInterFromGraph(graph)
		}
	}

	s.Voc = newVoc
}

func leastPrecisePredInter(arity int, universe *Universe) *PredInter {
	empty := NewEnumeratedPredTable(arity, nil)
	return NewPredInterFromBound(empty, empty, true, true, universe)
}

func hasSort(voc *vocabulary.Vocabulary, sort *vocabulary.Sort) bool {
	for _, s := range voc.Sorts() {
		if s == sort {
			return true
		}
	}
	return false
}

func hasPred(voc *vocabulary.Vocabulary, sym *vocabulary.PredSymbol) bool {
	ov, ok := voc.Pred(sym.Name)
	if !ok {
		return false
	}
	for _, v := range ov.Variants() {
		if v == sym {
			return true
		}
	}
	return false
}

func hasFunc(voc *vocabulary.Vocabulary, sym *vocabulary.FuncSymbol) bool {
	ov, ok := voc.Func(sym.Name)
	if !ok {
		return false
	}
	for _, v := range ov.Variants() {
		if v == sym {
			return true
		}
	}
	return false
}

// Autocomplete extends every enumerated sort table to contain every
// element occurring in any bound symbol's ct/cf interpretation (spec
// §3.4 "extend sort tables to contain every element occurring in any
// symbol interpretation"). Running it twice is a no-op (idempotent):
// every element it would add on the second pass is already present.
func (s *Structure) Autocomplete() {
	for sym, p := range s.preds {
		s.absorbPredTuples(sym.Sorts, p)
	}
	for sym, f := range s.funcs {
		s.absorbPredTuples(sym.Sorts, f.Graph)
	}
}

func (s *Structure) absorbPredTuples(sorts []*vocabulary.Sort, p *PredInter) {
	for _, table := range []PredTable{p.CT(), p.CF()} {
		for it := table.Iterate(); it.HasNext(); {
			tup := it.Next()
			for i, e := range tup {
				if i >= len(sorts) {
					break
				}
				if enum, ok := s.sorts[sorts[i]].(*EnumeratedSortTable); ok {
					enum.Add(e)
				}
			}
		}
	}
}

// FunctionCheck runs function_check (spec §4.6) over every bound
// function interpretation, reporting NotAFunction/NotTotal to sink.
func (s *Structure) FunctionCheck(sink *diag.Sink) {
	for sym, f := range s.funcs {
		FunctionCheck(f, !sym.Partial, diag.Position{}, sink)
	}
}
