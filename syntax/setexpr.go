package syntax

import "github.com/KULeuven-KRR/idp-core/vocabulary"

// SetExpr is the tagged union of set-expression variants (spec §3.3):
// Enum, Quant.
type SetExpr interface {
	Node
	isSetExpr()
	// TermSort returns the sort of the set's element term, once known.
	TermSort() *vocabulary.Sort
}

// EnumPair is one (condition, term) pair of an enumerated set.
type EnumPair struct {
	Cond Formula
	Term Term
}

// EnumSet lists its elements explicitly as (condition, term) pairs.
type EnumSet struct {
	Pairs []EnumPair
	P     Position
}

func (s *EnumSet) isSetExpr()       {}
func (s *EnumSet) Pos() Position    { return s.P }
func (s *EnumSet) TermSort() *vocabulary.Sort {
	for _, p := range s.Pairs {
		if sort := p.Term.Sort(); sort != nil {
			return sort
		}
	}
	return nil
}
func (s *EnumSet) FreeVars() map[*Variable]bool {
	out := map[*Variable]bool{}
	for _, p := range s.Pairs {
		unionVars(out, p.Cond.FreeVars(), p.Term.FreeVars())
	}
	return out
}

// QuantSet comprehends its elements as { Term | Vars : Cond }.
type QuantSet struct {
	Vars []*Variable
	Cond Formula
	Term Term
	P    Position
}

func (s *QuantSet) isSetExpr()    {}
func (s *QuantSet) Pos() Position { return s.P }
func (s *QuantSet) TermSort() *vocabulary.Sort {
	return s.Term.Sort()
}
func (s *QuantSet) FreeVars() map[*Variable]bool {
	return subtractVars(unionVars(nil, s.Cond.FreeVars(), s.Term.FreeVars()), s.Vars)
}
