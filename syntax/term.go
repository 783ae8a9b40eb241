package syntax

import (
	"github.com/KULeuven-KRR/idp-core/element"
	"github.com/KULeuven-KRR/idp-core/vocabulary"
)

// Term is the tagged union of term variants (spec §3.3): Var, Func, Domain,
// Agg.
type Term interface {
	Node
	isTerm()
	// Sort returns the term's currently known sort, or nil if sort
	// derivation has not yet assigned one (or, for an overloaded Func
	// term, has not yet resolved the symbol).
	Sort() *vocabulary.Sort
}

// FuncRef holds a function-term's symbol, which starts out either a
// concrete symbol or an unresolved overload and is mutated in place by sort
// derivation once disambiguate succeeds (spec §4.4 step 2b "replace the
// symbol in place").
type FuncRef struct {
	Overload *vocabulary.FuncOverload // nil once resolved or if never overloaded
	Symbol   *vocabulary.FuncSymbol   // nil until resolved
}

// NewFuncRef creates a reference to an already-concrete function symbol.
func NewFuncRef(sym *vocabulary.FuncSymbol) *FuncRef {
	return &FuncRef{Symbol: sym}
}

// NewOverloadedFuncRef creates a reference still awaiting disambiguation.
func NewOverloadedFuncRef(ov *vocabulary.FuncOverload) *FuncRef {
	return &FuncRef{Overload: ov}
}

// Resolved reports whether this reference has a concrete symbol.
func (r *FuncRef) Resolved() bool { return r.Symbol != nil }

// VarTerm is a reference to a quantified/rule variable.
type VarTerm struct {
	Var *Variable
	P   Position
}

func (t *VarTerm) isTerm()            {}
func (t *VarTerm) Pos() Position      { return t.P }
func (t *VarTerm) Sort() *vocabulary.Sort { return t.Var.Sort }
func (t *VarTerm) FreeVars() map[*Variable]bool {
	return map[*Variable]bool{t.Var: true}
}

// FuncTerm applies a function symbol (possibly still an unresolved
// overload) to argument terms.
type FuncTerm struct {
	Ref  *FuncRef
	Args []Term
	P    Position
}

func (t *FuncTerm) isTerm()       {}
func (t *FuncTerm) Pos() Position { return t.P }

// Sort returns the function's output sort once resolved, else nil.
func (t *FuncTerm) Sort() *vocabulary.Sort {
	if t.Ref.Symbol == nil {
		return nil
	}
	return t.Ref.Symbol.OutputSort()
}

func (t *FuncTerm) FreeVars() map[*Variable]bool {
	out := map[*Variable]bool{}
	for _, a := range t.Args {
		unionVars(out, a.FreeVars())
	}
	return out
}

// DomainTerm is a literal domain element, typed once derivation resolves a
// bare (unsorted) literal (spec §3.3 "bare domain term").
type DomainTerm struct {
	SortRef *vocabulary.Sort // nil until derived for a bare literal
	Elem    *element.Element
	P       Position
}

func (t *DomainTerm) isTerm()            {}
func (t *DomainTerm) Pos() Position      { return t.P }
func (t *DomainTerm) Sort() *vocabulary.Sort { return t.SortRef }
func (t *DomainTerm) FreeVars() map[*Variable]bool {
	return map[*Variable]bool{}
}

// AggTerm evaluates an aggregate operator over a set expression.
type AggTerm struct {
	Op  AggOp
	Set SetExpr
	P   Position

	// cardSort caches AggCard's result sort ("nat", resolved once against a
	// vocabulary by DeriveSorts; see derive.go), since an AggTerm carries no
	// other reference to the ambient vocabulary.
	cardSort *vocabulary.Sort
}

func (t *AggTerm) isTerm()       {}
func (t *AggTerm) Pos() Position { return t.P }

// Sort returns the aggregate's result sort: AggCard yields the cached nat
// (or int) sort once DeriveSorts has resolved it against a vocabulary; the
// other aggregates yield the set's term sort directly.
func (t *AggTerm) Sort() *vocabulary.Sort {
	if t.Op == AggCard {
		return t.cardSort
	}
	return t.Set.TermSort()
}

func (t *AggTerm) FreeVars() map[*Variable]bool {
	return t.Set.FreeVars()
}
