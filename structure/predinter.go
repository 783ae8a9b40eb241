package structure

// InterpretsAs tags which polarity a single two-valued table represents
// when building the least-precise PredInter (spec §4.5).
type InterpretsAs int

const (
	AsCT InterpretsAs = iota
	AsCF
	AsPT
	AsPF
)

// PredInter is a four-valued predicate interpretation: ct (certainly
// true), cf (certainly false), pt (possibly true), pf (possibly false)
// (spec §3.4, §4.5). Internally ct/pf are one complementary pair and
// cf/pt are the other: pf is always the universe-complement of ct and pt
// is always the universe-complement of cf, so a tuple can only appear in
// both ct and cf (an inconsistency) when ct and cf were bound from
// independent sources, never from derivation within a single pair.
type PredInter struct {
	universe *Universe

	ct, pf PredTable // pair A: always complements of each other
	cf, pt PredTable // pair B: always complements of each other
}

// NewPredInterFromSingle builds the least-precise two-valued
// interpretation from one table t, tagged as representing one of the
// four polarities (spec §4.5 "two of the four views are t, the other two
// are the universe-complement of t"). CT and PT both mean "t is the true
// side"; CF and PF both mean "t is the false side" — in the two-valued
// case ct==pt and cf==pf, so which of the pair's names was used to
// describe t does not change the result.
func NewPredInterFromSingle(t PredTable, as InterpretsAs, universe *Universe) *PredInter {
	comp := &InverseTable{Inner: t, Universe: universe}
	switch as {
	case AsCT, AsPT:
		return &PredInter{universe: universe, ct: t, pt: t, cf: comp, pf: comp}
	default: // AsCF, AsPF
		return &PredInter{universe: universe, cf: t, pf: t, ct: comp, pt: comp}
	}
}

// NewPredInterFromBound builds a four-valued interpretation from two
// independently supplied tables (spec §4.5 "From two tables ctpf, cfpt
// with booleans ct_bound, cf_bound"). ctpf is ct itself when ctBound,
// else it is pf itself (and ct is derived as pf's complement); cfpt is cf
// itself when cfBound, else it is pt itself (and cf is derived as pt's
// complement). Because pair A (ct/pf) and pair B (cf/pt) are populated
// independently, ct and cf need not be disjoint: a tuple bound into both
// is inconsistent.
func NewPredInterFromBound(ctpf, cfpt PredTable, ctBound, cfBound bool, universe *Universe) *PredInter {
	p := &PredInter{universe: universe}
	if ctBound {
		p.ct = ctpf
		p.pf = &InverseTable{Inner: ctpf, Universe: universe}
	} else {
		p.pf = ctpf
		p.ct = &InverseTable{Inner: ctpf, Universe: universe}
	}
	if cfBound {
		p.cf = cfpt
		p.pt = &InverseTable{Inner: cfpt, Universe: universe}
	} else {
		p.pt = cfpt
		p.cf = &InverseTable{Inner: cfpt, Universe: universe}
	}
	return p
}

// Universe returns the universe this interpretation is defined over.
func (p *PredInter) Universe() *Universe { return p.universe }

// CT, CF, PT, PF return the four polarity tables.
func (p *PredInter) CT() PredTable { return p.ct }
func (p *PredInter) CF() PredTable { return p.cf }
func (p *PredInter) PT() PredTable { return p.pt }
func (p *PredInter) PF() PredTable { return p.pf }

// SetCT replaces the ct table, re-deriving pf as its complement (spec
// §4.5 "ct/cf/pt/pf setters replace a polarity, re-deriving its
// complement").
func (p *PredInter) SetCT(t PredTable) {
	p.ct = t
	p.pf = &InverseTable{Inner: t, Universe: p.universe}
}

// SetCF replaces the cf table, re-deriving pt as its complement.
func (p *PredInter) SetCF(t PredTable) {
	p.cf = t
	p.pt = &InverseTable{Inner: t, Universe: p.universe}
}

// SetPT replaces the pt table, re-deriving cf as its complement.
func (p *PredInter) SetPT(t PredTable) {
	p.pt = t
	p.cf = &InverseTable{Inner: t, Universe: p.universe}
}

// SetPF replaces the pf table, re-deriving ct as its complement.
func (p *PredInter) SetPF(t PredTable) {
	p.pf = t
	p.ct = &InverseTable{Inner: t, Universe: p.universe}
}

// IsTrue reports whether tuple is certainly true.
func (p *PredInter) IsTrue(tuple Tuple) bool { return p.ct.Contains(tuple) }

// IsFalse reports whether tuple is certainly false.
func (p *PredInter) IsFalse(tuple Tuple) bool { return p.cf.Contains(tuple) }

// IsUnknown reports whether tuple is neither certainly true nor
// certainly false.
func (p *PredInter) IsUnknown(tuple Tuple) bool {
	return !p.IsTrue(tuple) && !p.IsFalse(tuple)
}

// IsInconsistent reports whether tuple is both certainly true and
// certainly false, which only ct/cf bound from independent sources can
// produce.
func (p *PredInter) IsInconsistent(tuple Tuple) bool {
	return p.IsTrue(tuple) && p.IsFalse(tuple)
}

// ApproxTwoValued reports whether ct and pt share the same underlying
// table (spec §4.5 "ct and pt are the same underlying table").
func (p *PredInter) ApproxTwoValued() bool {
	return p.ct == p.pt
}

// requireMutableCT and requireMutableCF return ct/cf as
// *EnumeratedPredTable, converting them in place from their current
// materialization if necessary (also when ct and cf are one shared table),
// so MakeTrue/MakeFalse/MakeUnknown can mutate a concrete table.
func (p *PredInter) requireMutableCT() *EnumeratedPredTable {
	if e, ok := p.ct.(*EnumeratedPredTable); ok && p.ct != p.cf {
		return e
	}
	e := materialize(p.ct)
	p.ct = e
	p.pf = &InverseTable{Inner: e, Universe: p.universe}
	return e
}

func (p *PredInter) requireMutableCF() *EnumeratedPredTable {
	if e, ok := p.cf.(*EnumeratedPredTable); ok && p.cf != p.ct {
		return e
	}
	e := materialize(p.cf)
	p.cf = e
	p.pt = &InverseTable{Inner: e, Universe: p.universe}
	return e
}

func materialize(t PredTable) *EnumeratedPredTable {
	var tups []Tuple
	for it := t.Iterate(); it.HasNext(); {
		tups = append(tups, it.Next())
	}
	return NewEnumeratedPredTable(t.Arity(), tups)
}

// MakeTrue marks tuple certainly true: added to ct, removed from cf
// (spec §4.5 mutators).
func (p *PredInter) MakeTrue(tuple Tuple) {
	p.requireMutableCT().Add(tuple)
	p.requireMutableCF().Remove(tuple)
}

// MakeFalse marks tuple certainly false: added to cf, removed from ct.
func (p *PredInter) MakeFalse(tuple Tuple) {
	p.requireMutableCF().Add(tuple)
	p.requireMutableCT().Remove(tuple)
}

// MakeUnknown removes tuple from both ct and cf.
func (p *PredInter) MakeUnknown(tuple Tuple) {
	p.requireMutableCT().Remove(tuple)
	p.requireMutableCF().Remove(tuple)
}
