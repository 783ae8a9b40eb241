package syntax

import "github.com/KULeuven-KRR/idp-core/vocabulary"

// Rule is a single inductive-definition rule: ∀Vars: Head ← Body (spec
// §3.3 "Rule").
type Rule struct {
	Vars []*Variable
	Head *PredFormula
	Body Formula
	P    Position
}

func (r *Rule) Pos() Position { return r.P }

func (r *Rule) FreeVars() map[*Variable]bool {
	return subtractVars(unionVars(nil, r.Head.FreeVars(), r.Body.FreeVars()), r.Vars)
}

// DefinedSymbol returns the head predicate symbol this rule defines, or
// nil if the head is still an unresolved overload.
func (r *Rule) DefinedSymbol() *vocabulary.PredSymbol {
	return r.Head.Ref.Symbol
}

// Definition is a set of rules together with their derived defined-symbol
// set (spec §3.3 "Definition").
type Definition struct {
	Rules []*Rule
	P     Position
}

func (d *Definition) Pos() Position { return d.P }

// DefinedSymbols returns the distinct set of symbols defined across all
// rules in this definition, in first-seen order.
func (d *Definition) DefinedSymbols() []*vocabulary.PredSymbol {
	seen := map[*vocabulary.PredSymbol]bool{}
	var out []*vocabulary.PredSymbol
	for _, r := range d.Rules {
		sym := r.DefinedSymbol()
		if sym == nil || seen[sym] {
			continue
		}
		seen[sym] = true
		out = append(out, sym)
	}
	return out
}

// Theory binds a vocabulary to a set of sentences, (inductive) definitions
// and fixpoint definitions (spec §3.3 "Theory").
type Theory struct {
	Vocabulary      *vocabulary.Vocabulary
	Sentences       []Formula
	Definitions     []*Definition
	FixpointDefs    []*Definition
	P               Position
}

func (t *Theory) Pos() Position { return t.P }

// AddSentence appends a sentence to the theory.
func (t *Theory) AddSentence(f Formula) { t.Sentences = append(t.Sentences, f) }

// AddDefinition appends an inductive definition to the theory.
func (t *Theory) AddDefinition(d *Definition) { t.Definitions = append(t.Definitions, d) }

// AddFixpointDefinition appends a fixpoint definition to the theory.
func (t *Theory) AddFixpointDefinition(d *Definition) {
	t.FixpointDefs = append(t.FixpointDefs, d)
}
