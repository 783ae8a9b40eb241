// Engine bundling follows the design note in spec.md §9 ("replace the two
// singletons... with an owned Engine context passed everywhere; preserve a
// thread-local default for ergonomic APIs"). Go has no thread locals and
// the concurrency model is single-threaded/non-reentrant (spec §5), so the
// "thread-local default" is realized as a single process-wide package
// variable, exactly like hemanta212-scaf's package-level default registry
// in names.go.
package vocabulary

import "github.com/KULeuven-KRR/idp-core/element"

// Engine owns the element factory and sort lattice shared by every
// vocabulary built from it, plus the built-in standard vocabulary (nat,
// int, real, char, string and their lattice, comparison, numeric and order
// overloads).
type Engine struct {
	Elements *element.Factory
	Lattice  *Lattice

	standard *Vocabulary

	natSort, intSort, realSort, charSort, stringSort *Sort
}

// NewEngine creates a fresh engine with its own element factory, sort
// lattice and standard vocabulary.
func NewEngine() *Engine {
	e := &Engine{
		Elements: element.NewFactory(),
		Lattice:  NewLattice(),
	}
	e.bootstrapStandard()
	return e
}

func (e *Engine) bootstrapStandard() {
	e.natSort = e.Lattice.newBuiltinSort("nat", BuiltinNat)
	e.intSort = e.Lattice.newBuiltinSort("int", BuiltinInt)
	e.realSort = e.Lattice.newBuiltinSort("real", BuiltinReal)
	e.charSort = e.Lattice.newBuiltinSort("char", BuiltinChar)
	e.stringSort = e.Lattice.newBuiltinSort("string", BuiltinString)

	// nat ⊂ int ⊂ real, char ⊂ string (spec §4.2 "Built-in lattice").
	// int ⊂ real goes first: AddParent rejects a parent for a sort whose
	// declared children do not already descend from that parent.
	must(e.Lattice.AddParent(e.intSort, e.realSort))
	must(e.Lattice.AddParent(e.natSort, e.intSort))
	must(e.Lattice.AddParent(e.charSort, e.stringSort))

	v := NewVocabulary("$standard", e.Lattice)
	for _, s := range []*Sort{e.natSort, e.intSort, e.realSort, e.charSort, e.stringSort} {
		must(v.AddSort(s.Name, s))
	}

	for _, op := range []string{"=", "<", ">"} {
		v.preds[op] = newPredOverload(op, OverloadComparison, e.Lattice)
		v.preds[op].CmpOp = op
	}

	binary := []string{"+", "-", "*", "/"}
	unary := []string{"abs", "-u"}
	for _, op := range binary {
		ov := newFuncOverload(op, OverloadNumeric, e.Lattice)
		ov.intVariant = newFuncSymbol(op, []*Sort{e.intSort, e.intSort, e.intSort})
		ov.realVariant = newFuncSymbol(op, []*Sort{e.realSort, e.realSort, e.realSort})
		ov.addVariant(ov.intVariant)
		ov.addVariant(ov.realVariant)
		v.funcs[op] = ov
	}
	for _, op := range unary {
		ov := newFuncOverload(op, OverloadNumeric, e.Lattice)
		ov.intVariant = newFuncSymbol(op, []*Sort{e.intSort, e.intSort})
		ov.realVariant = newFuncSymbol(op, []*Sort{e.realSort, e.realSort})
		ov.addVariant(ov.intVariant)
		ov.addVariant(ov.realVariant)
		v.funcs[op] = ov
	}

	for _, op := range []string{"MIN", "MAX", "SUCC", "PRED"} {
		ov := newFuncOverload(op, OverloadOrder, e.Lattice)
		ov.Op = op
		v.funcs[op] = ov
	}

	e.standard = v
}

// Standard returns the engine's built-in vocabulary (nat/int/real/char/
// string plus =, <, >, the arithmetic family, and MIN/MAX/SUCC/PRED).
func (e *Engine) Standard() *Vocabulary { return e.standard }

// NatSort, IntSort, RealSort, CharSort and StringSort return the engine's
// built-in sorts.
func (e *Engine) NatSort() *Sort    { return e.natSort }
func (e *Engine) IntSort() *Sort    { return e.intSort }
func (e *Engine) RealSort() *Sort   { return e.realSort }
func (e *Engine) CharSort() *Sort   { return e.charSort }
func (e *Engine) StringSort() *Sort { return e.stringSort }

// NewVocabulary creates a vocabulary in this engine's lattice. When
// includeBuiltins is true (mirroring option.Bag.IncludeBuiltins), the
// standard sorts and built-in overloads are imported by reference: the
// returned vocabulary sees the same *Sort and *PredOverload/*FuncOverload
// objects as every other vocabulary that imported them, so lazily
// instantiated built-in variants (e.g. "=" over a user sort) are shared
// process-wide rather than duplicated per vocabulary.
func (e *Engine) NewVocabulary(name string, includeBuiltins bool) *Vocabulary {
	v := NewVocabulary(name, e.Lattice)
	if !includeBuiltins {
		return v
	}
	for _, s := range e.standard.Sorts() {
		_ = v.AddSort(s.Name, s)
	}
	for predName, ov := range e.standard.preds {
		v.preds[predName] = ov
	}
	for funcName, ov := range e.standard.funcs {
		v.funcs[funcName] = ov
	}
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

var defaultEngine = NewEngine()

// Default returns the process-wide default engine, matching
// hemanta212-scaf's package-level default registry pattern. Most callers
// should prefer an explicit *Engine; Default exists for ergonomic
// top-level helpers and tests.
func Default() *Engine { return defaultEngine }
