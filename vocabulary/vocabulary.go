package vocabulary

import "github.com/KULeuven-KRR/idp-core/diag"

// Vocabulary binds unqualified names to sorts, predicate overloads and
// function overloads (spec §3.2 "Vocabulary"). Every predicate/function
// name always resolves to an overload wrapper, even when only one concrete
// symbol has ever been declared under that name: adding a second symbol
// under an already-present name merges into the existing overload rather
// than replacing it, so there is nothing special-cased for the
// single-variant case.
type Vocabulary struct {
	Name string

	lattice *Lattice
	sorts   map[string]*Sort
	preds   map[string]*PredOverload
	funcs   map[string]*FuncOverload
}

// NewVocabulary creates an empty vocabulary sharing l's sort lattice. Two
// vocabularies sharing a Lattice can meaningfully call Lattice.Resolve /
// Lattice.IsSubsort against each other's sorts.
func NewVocabulary(name string, l *Lattice) *Vocabulary {
	return &Vocabulary{
		Name:    name,
		lattice: l,
		sorts:   make(map[string]*Sort),
		preds:   make(map[string]*PredOverload),
		funcs:   make(map[string]*FuncOverload),
	}
}

func (v *Vocabulary) hasSort(s *Sort) bool { return s != nil && s.vocs[v] }

// Lattice returns the sort lattice this vocabulary's sorts live in.
func (v *Vocabulary) Lattice() *Lattice { return v.lattice }

// Sorts returns every sort declared directly in this vocabulary.
func (v *Vocabulary) Sorts() []*Sort {
	out := make([]*Sort, 0, len(v.sorts))
	for _, s := range v.sorts {
		out = append(out, s)
	}
	return out
}

// Sort looks up a sort by its unqualified name.
func (v *Vocabulary) Sort(name string) (*Sort, bool) {
	s, ok := v.sorts[name]
	return s, ok
}

// AddSort declares name as a sort of this vocabulary. Re-adding the same
// *Sort under the same name is idempotent (this is how a used vocabulary's
// sorts end up visible in the using one); adding a different sort under an
// already-declared name is a MultiDecl.
func (v *Vocabulary) AddSort(name string, s *Sort) error {
	if existing, ok := v.sorts[name]; ok {
		if existing == s {
			return nil
		}
		return diag.Entry{Kind: diag.MultiDecl, Message: "sort " + name + " already declared in vocabulary " + v.Name}
	}
	v.sorts[name] = s
	s.vocs[v] = true
	return nil
}

// NewSort creates a fresh sort in the shared lattice and declares it in
// this vocabulary under name.
func (v *Vocabulary) NewSort(name string) (*Sort, error) {
	s := v.lattice.NewSort(name)
	if err := v.AddSort(name, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Pred looks up the predicate overload for name.
func (v *Vocabulary) Pred(name string) (*PredOverload, bool) {
	p, ok := v.preds[name]
	return p, ok
}

// Func looks up the function overload for name.
func (v *Vocabulary) Func(name string) (*FuncOverload, bool) {
	f, ok := v.funcs[name]
	return f, ok
}

// Preds returns every predicate overload declared in this vocabulary.
func (v *Vocabulary) Preds() []*PredOverload {
	out := make([]*PredOverload, 0, len(v.preds))
	for _, p := range v.preds {
		out = append(out, p)
	}
	return out
}

// Funcs returns every function overload declared in this vocabulary.
func (v *Vocabulary) Funcs() []*FuncOverload {
	out := make([]*FuncOverload, 0, len(v.funcs))
	for _, f := range v.funcs {
		out = append(out, f)
	}
	return out
}

// AddPred declares a predicate symbol over sorts under name, merging into
// an existing overload if name is already bound. Fails with MultiDecl if a
// variant with exactly this sort vector already exists.
func (v *Vocabulary) AddPred(name string, sorts []*Sort) (*PredSymbol, error) {
	ov, ok := v.preds[name]
	if !ok {
		ov = newPredOverload(name, OverloadEnumerated, v.lattice)
		v.preds[name] = ov
	}
	if ov.Kind != OverloadEnumerated {
		return nil, diag.Entry{Kind: diag.MultiDecl, Message: name + " is a built-in overload and cannot be redeclared"}
	}
	if _, exists := ov.byKey[sortKey(sorts)]; exists {
		return nil, diag.Entry{Kind: diag.MultiDecl, Message: "predicate " + name + sortKeyDisplay(sorts) + " already declared"}
	}

	sym := newPredSymbol(name, sorts)
	sym.vocs[v] = true
	ov.addVariant(sym)
	return sym, nil
}

// AddFunc declares a function symbol over sorts (input sorts followed by
// the output sort) under name, merging into an existing overload if name is
// already bound.
func (v *Vocabulary) AddFunc(name string, sorts []*Sort) (*FuncSymbol, error) {
	ov, ok := v.funcs[name]
	if !ok {
		ov = newFuncOverload(name, OverloadEnumerated, v.lattice)
		v.funcs[name] = ov
	}
	if ov.Kind != OverloadEnumerated {
		return nil, diag.Entry{Kind: diag.MultiDecl, Message: name + " is a built-in overload and cannot be redeclared"}
	}
	if _, exists := ov.byKey[sortKey(sorts)]; exists {
		return nil, diag.Entry{Kind: diag.MultiDecl, Message: "function " + name + sortKeyDisplay(sorts) + " already declared"}
	}

	sym := newFuncSymbol(name, sorts)
	sym.vocs[v] = true
	ov.addVariant(sym)
	return sym, nil
}

// CharacteristicPredicate returns s's auto-generated unary characterising
// predicate, creating it on first use.
func (v *Vocabulary) CharacteristicPredicate(s *Sort) *PredSymbol {
	if s.CharPred != nil {
		return s.CharPred
	}
	sym := newPredSymbol(s.Name, []*Sort{s})
	sym.vocs[v] = true
	s.CharPred = sym
	return sym
}

func sortKeyDisplay(sorts []*Sort) string {
	s := "("
	for i, sort := range sorts {
		if i > 0 {
			s += ", "
		}
		if sort == nil {
			s += "?"
			continue
		}
		s += sort.Name
	}
	return s + ")"
}
