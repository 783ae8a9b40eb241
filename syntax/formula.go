package syntax

import "github.com/KULeuven-KRR/idp-core/vocabulary"

// Formula is the tagged union of formula variants (spec §3.3), each
// carrying a sign bit: Pred, Equiv, Bool, Quant, EqChain, Agg.
type Formula interface {
	Node
	isFormula()
	Sign() bool
	SetSign(bool)
}

// base is embedded by every Formula variant to share the sign bit and
// position field without repeating their accessors five times.
type base struct {
	sign bool
	P    Position
}

func (b *base) Pos() Position  { return b.P }
func (b *base) Sign() bool     { return b.sign }
func (b *base) SetSign(s bool) { b.sign = s }

// PredRef holds an atom's predicate symbol, resolved in place the same way
// FuncRef is (spec §4.4 step 2b).
type PredRef struct {
	Overload *vocabulary.PredOverload
	Symbol   *vocabulary.PredSymbol
}

// NewPredRef creates a reference to an already-concrete predicate symbol.
func NewPredRef(sym *vocabulary.PredSymbol) *PredRef {
	return &PredRef{Symbol: sym}
}

// NewOverloadedPredRef creates a reference still awaiting disambiguation.
func NewOverloadedPredRef(ov *vocabulary.PredOverload) *PredRef {
	return &PredRef{Overload: ov}
}

// Resolved reports whether this reference has a concrete symbol.
func (r *PredRef) Resolved() bool { return r.Symbol != nil }

// PredFormula is an atomic predicate application P(t1, ..., tk).
type PredFormula struct {
	base
	Ref  *PredRef
	Args []Term
}

func (f *PredFormula) isFormula() {}
func (f *PredFormula) FreeVars() map[*Variable]bool {
	out := map[*Variable]bool{}
	for _, a := range f.Args {
		unionVars(out, a.FreeVars())
	}
	return out
}

// EquivFormula is Left ⇔ Right.
type EquivFormula struct {
	base
	Left, Right Formula
}

func (f *EquivFormula) isFormula() {}
func (f *EquivFormula) FreeVars() map[*Variable]bool {
	return unionVars(nil, f.Left.FreeVars(), f.Right.FreeVars())
}

// BoolFormula is a conjunction (Conj true) or disjunction of subformulas.
type BoolFormula struct {
	base
	Conj bool
	Subs []Formula
}

func (f *BoolFormula) isFormula() {}
func (f *BoolFormula) FreeVars() map[*Variable]bool {
	out := map[*Variable]bool{}
	for _, s := range f.Subs {
		unionVars(out, s.FreeVars())
	}
	return out
}

// QuantFormula is a universally (Univ true) or existentially quantified
// subformula.
type QuantFormula struct {
	base
	Univ bool
	Vars []*Variable
	Sub  Formula
}

func (f *QuantFormula) isFormula() {}
func (f *QuantFormula) FreeVars() map[*Variable]bool {
	return subtractVars(f.Sub.FreeVars(), f.Vars)
}

// EqChainFormula is a chained comparison t1 Cmp1 t2 Cmp2 t3 ..., joined by
// conjunction (Conj true) or disjunction.
type EqChainFormula struct {
	base
	Conj  bool
	Terms []Term
	Cmps  []CmpOp
}

func (f *EqChainFormula) isFormula() {}
func (f *EqChainFormula) FreeVars() map[*Variable]bool {
	out := map[*Variable]bool{}
	for _, t := range f.Terms {
		unionVars(out, t.FreeVars())
	}
	return out
}

// AggFormula compares an aggregate term against a bound: Agg Cmp Bound.
type AggFormula struct {
	base
	Agg   *AggTerm
	Cmp   CmpOp
	Bound Term
}

func (f *AggFormula) isFormula() {}
func (f *AggFormula) FreeVars() map[*Variable]bool {
	return unionVars(nil, f.Agg.FreeVars(), f.Bound.FreeVars())
}
