package syntax

import (
	"fmt"

	"github.com/KULeuven-KRR/idp-core/diag"
	"github.com/KULeuven-KRR/idp-core/vocabulary"
)

// maxDeriveIterations bounds the derivesorts/derivefuncs/derivepreds
// fixpoint loop (spec §4.4 step 2): convergence is monotonic (a symbol
// once resolved is never un-resolved, a variable once sorted keeps its
// sort), so a bound well above any realistic formula's nesting depth is a
// backstop against a latent non-termination bug, not a feature.
const maxDeriveIterations = 64

// deriver holds the per-run state from spec §4.4: a candidate sort set per
// untyped variable, the set of still-overloaded atoms/terms, and the set
// of still-bare domain terms.
type deriver struct {
	voc     *vocabulary.Vocabulary
	lattice *vocabulary.Lattice
	sink    *diag.Sink

	untyped         map[*Variable][]*vocabulary.Sort
	overloadedFuncs map[*FuncTerm]bool
	overloadedPreds map[*PredFormula]bool
	bareDomain      map[*DomainTerm]bool

	changed bool
}

func newDeriver(voc *vocabulary.Vocabulary, sink *diag.Sink) *deriver {
	return &deriver{
		voc:             voc,
		lattice:         voc.Lattice(),
		sink:            sink,
		untyped:         map[*Variable][]*vocabulary.Sort{},
		overloadedFuncs: map[*FuncTerm]bool{},
		overloadedPreds: map[*PredFormula]bool{},
		bareDomain:      map[*DomainTerm]bool{},
	}
}

func (d *deriver) reset() {
	d.untyped = map[*Variable][]*vocabulary.Sort{}
	d.overloadedFuncs = map[*FuncTerm]bool{}
	d.overloadedPreds = map[*PredFormula]bool{}
	d.bareDomain = map[*DomainTerm]bool{}
}

// DeriveSorts runs sort derivation over f within voc, mutating variable
// sorts, bare-domain-term sorts and overloaded-symbol references in place.
// Anything still unresolved after convergence is reported to sink (spec
// §4.4 step 4).
func DeriveSorts(voc *vocabulary.Vocabulary, f Formula, sink *diag.Sink) {
	d := newDeriver(voc, sink)
	d.collectFormula(f, nil)

	for i := 0; i < maxDeriveIterations; i++ {
		d.changed = false
		d.derivesorts()
		d.derivefuncsAndPreds()
		if !d.changed {
			break
		}
		d.reset()
		d.collectFormula(f, nil)
	}

	d.check()
}

// DeriveRule runs sort derivation jointly over a rule's head and body (so
// variables shared between them are solved together), then applies the
// rule-head coercion from spec §4.4 step 3: any head argument whose
// derived sort is not a subsort of the symbol's declared sort is replaced
// by a fresh variable of the declared sort, with an equality conjoined
// into the body.
func DeriveRule(voc *vocabulary.Vocabulary, r *Rule, sink *diag.Sink) {
	combined := &BoolFormula{Subs: []Formula{r.Head, r.Body}, Conj: true}
	DeriveSorts(voc, combined, sink)
	coerceRuleHead(voc, r)
}

func coerceRuleHead(voc *vocabulary.Vocabulary, r *Rule) {
	sym := r.Head.Ref.Symbol
	if sym == nil {
		return // unresolved; already reported by DeriveSorts' check()
	}
	for i, arg := range r.Head.Args {
		declared := sym.Sorts[i]
		actual := arg.Sort()
		if actual != nil && voc.Lattice().IsSubsort(actual, declared, voc) {
			continue
		}

		fresh := NewVariable(fmt.Sprintf("_head%d", i), arg.Pos())
		fresh.Sort = declared
		r.Vars = append(r.Vars, fresh)

		eq := &EqChainFormula{Conj: true, Terms: []Term{&VarTerm{Var: fresh, P: arg.Pos()}, arg}, Cmps: []CmpOp{CmpEq}}
		r.Head.Args[i] = &VarTerm{Var: fresh, P: arg.Pos()}
		r.Body = &BoolFormula{Conj: true, Subs: []Formula{r.Body, eq}}
	}
}

func (d *deriver) collectFormula(f Formula, asserted *vocabulary.Sort) {
	switch x := f.(type) {
	case *PredFormula:
		d.collectPred(x)
	case *EquivFormula:
		d.collectFormula(x.Left, nil)
		d.collectFormula(x.Right, nil)
	case *BoolFormula:
		for _, s := range x.Subs {
			d.collectFormula(s, nil)
		}
	case *QuantFormula:
		d.collectFormula(x.Sub, nil)
	case *EqChainFormula:
		var known *vocabulary.Sort
		for _, t := range x.Terms {
			if s := t.Sort(); s != nil {
				known = s
				break
			}
		}
		for _, t := range x.Terms {
			d.collectTerm(t, known)
		}
	case *AggFormula:
		d.collectTerm(x.Agg, nil)
		d.collectTerm(x.Bound, x.Agg.Sort())
	}
}

func (d *deriver) collectPred(p *PredFormula) {
	if !p.Ref.Resolved() {
		d.overloadedPreds[p] = true
	}
	for i, a := range p.Args {
		var asserted *vocabulary.Sort
		if p.Ref.Resolved() && i < len(p.Ref.Symbol.Sorts) {
			asserted = p.Ref.Symbol.Sorts[i]
		}
		d.collectTerm(a, asserted)
	}
}

func (d *deriver) collectTerm(t Term, asserted *vocabulary.Sort) {
	switch x := t.(type) {
	case *VarTerm:
		if x.Var.Sort == nil {
			d.addCandidate(x.Var, asserted)
		}
	case *DomainTerm:
		if x.SortRef == nil {
			d.bareDomain[x] = true
			if asserted != nil {
				x.SortRef = asserted
				d.changed = true
			}
		}
	case *FuncTerm:
		if !x.Ref.Resolved() {
			d.overloadedFuncs[x] = true
		}
		for i, a := range x.Args {
			var argAsserted *vocabulary.Sort
			if x.Ref.Resolved() {
				in := x.Ref.Symbol.InputSorts()
				if i < len(in) {
					argAsserted = in[i]
				}
			}
			d.collectTerm(a, argAsserted)
		}
	case *AggTerm:
		if x.Op == AggCard && x.cardSort == nil {
			if nat, ok := d.voc.Sort("nat"); ok {
				x.cardSort = nat
			} else if in, ok := d.voc.Sort("int"); ok {
				x.cardSort = in
			}
		}
		d.collectSet(x.Set)
	}
}

func (d *deriver) collectSet(s SetExpr) {
	switch x := s.(type) {
	case *EnumSet:
		for _, p := range x.Pairs {
			d.collectFormula(p.Cond, nil)
			d.collectTerm(p.Term, nil)
		}
	case *QuantSet:
		d.collectFormula(x.Cond, nil)
		d.collectTerm(x.Term, nil)
	}
}

func (d *deriver) addCandidate(v *Variable, s *vocabulary.Sort) {
	if s == nil {
		if _, ok := d.untyped[v]; !ok {
			d.untyped[v] = nil
		}
		return
	}
	for _, c := range d.untyped[v] {
		if c == s {
			return
		}
	}
	d.untyped[v] = append(d.untyped[v], s)
}

// derivesorts implements spec §4.4 step 2a.
func (d *deriver) derivesorts() {
	for v, candidates := range d.untyped {
		if v.Sort != nil || len(candidates) == 0 {
			continue
		}
		resolved, ok := nearestCommonAncestorOfSet(d.lattice, candidates, d.voc)
		if !ok {
			// Conflict: per spec, pick the first candidate; CheckSorts
			// reports the mismatch at the offending position.
			resolved = candidates[0]
		}
		v.Sort = resolved
		d.changed = true
	}
}

// derivefuncsAndPreds implements spec §4.4 step 2b.
func (d *deriver) derivefuncsAndPreds() {
	for ft := range d.overloadedFuncs {
		if ft.Ref.Resolved() {
			continue
		}
		sorts := make([]*vocabulary.Sort, len(ft.Args))
		for i, a := range ft.Args {
			sorts[i] = a.Sort()
		}
		sym, err := ft.Ref.Overload.Disambiguate(sorts)
		if err != nil {
			continue
		}
		ft.Ref.Symbol = sym
		ft.Ref.Overload = nil
		d.changed = true
	}

	for pf := range d.overloadedPreds {
		if pf.Ref.Resolved() {
			continue
		}
		sorts := make([]*vocabulary.Sort, len(pf.Args))
		for i, a := range pf.Args {
			sorts[i] = a.Sort()
		}
		sym, err := pf.Ref.Overload.Disambiguate(sorts)
		if err != nil {
			continue
		}
		pf.Ref.Symbol = sym
		pf.Ref.Overload = nil
		d.changed = true
	}
}

// check implements spec §4.4 step 4.
func (d *deriver) check() {
	for v, candidates := range d.untyped {
		if v.Sort == nil {
			d.sink.Report(diag.NoVarSort, v.P, "no sort could be derived for variable %s", v.Name)
		}
		_ = candidates
	}
	for pf := range d.overloadedPreds {
		if !pf.Ref.Resolved() {
			d.sink.Report(diag.NoPredSort, pf.Pos(), "could not disambiguate overloaded predicate %s", pf.Ref.Overload.Name)
		}
	}
	for ft := range d.overloadedFuncs {
		if !ft.Ref.Resolved() {
			d.sink.Report(diag.NoFuncSort, ft.P, "could not disambiguate overloaded function %s", ft.Ref.Overload.Name)
		}
	}
	for dt := range d.bareDomain {
		if dt.SortRef == nil {
			d.sink.Report(diag.NoDomSort, dt.P, "bare domain term has no sort")
		}
	}
}

// nearestCommonAncestorOfSet reduces sorts to their iterated nearest
// common ancestor (spec §4.4 step 2a): fold resolve() left to right,
// stopping (ok=false) the first time two candidates share no common sort.
func nearestCommonAncestorOfSet(l *vocabulary.Lattice, sorts []*vocabulary.Sort, voc *vocabulary.Vocabulary) (*vocabulary.Sort, bool) {
	if len(sorts) == 0 {
		return nil, false
	}
	cur := sorts[0]
	for _, s := range sorts[1:] {
		if cur == s {
			continue
		}
		r, err := l.Resolve(cur, s, voc)
		if err != nil || r == nil {
			return cur, false
		}
		cur = r
	}
	return cur, true
}

// CheckSorts is the separate read-only pass from spec §4.4 (final
// paragraph): every typed position's term sort must resolve with the
// position's expected sort under voc; mismatches are reported as
// WrongSort without mutating the tree.
func CheckSorts(voc *vocabulary.Vocabulary, f Formula, sink *diag.Sink) {
	checkFormula(voc, f, sink)
}

func checkFormula(voc *vocabulary.Vocabulary, f Formula, sink *diag.Sink) {
	switch x := f.(type) {
	case *PredFormula:
		if x.Ref.Symbol == nil {
			return
		}
		for i, a := range x.Args {
			checkPosition(voc, a.Sort(), x.Ref.Symbol.Sorts[i], a.Pos(), sink)
			checkTerm(voc, a, sink)
		}
	case *EquivFormula:
		checkFormula(voc, x.Left, sink)
		checkFormula(voc, x.Right, sink)
	case *BoolFormula:
		for _, s := range x.Subs {
			checkFormula(voc, s, sink)
		}
	case *QuantFormula:
		checkFormula(voc, x.Sub, sink)
	case *EqChainFormula:
		for _, t := range x.Terms {
			checkTerm(voc, t, sink)
		}
	case *AggFormula:
		checkTerm(voc, x.Agg, sink)
		checkTerm(voc, x.Bound, sink)
	}
}

func checkTerm(voc *vocabulary.Vocabulary, t Term, sink *diag.Sink) {
	switch x := t.(type) {
	case *FuncTerm:
		if x.Ref.Symbol == nil {
			return
		}
		in := x.Ref.Symbol.InputSorts()
		for i, a := range x.Args {
			checkPosition(voc, a.Sort(), in[i], a.Pos(), sink)
			checkTerm(voc, a, sink)
		}
	case *AggTerm:
		checkSet(voc, x.Set, sink)
	}
}

func checkSet(voc *vocabulary.Vocabulary, s SetExpr, sink *diag.Sink) {
	switch x := s.(type) {
	case *EnumSet:
		for _, p := range x.Pairs {
			checkFormula(voc, p.Cond, sink)
			checkTerm(voc, p.Term, sink)
		}
	case *QuantSet:
		checkFormula(voc, x.Cond, sink)
		checkTerm(voc, x.Term, sink)
	}
}

func checkPosition(voc *vocabulary.Vocabulary, actual, expected *vocabulary.Sort, pos Position, sink *diag.Sink) {
	if actual == nil || expected == nil {
		return
	}
	if !voc.Lattice().IsSubsort(actual, expected, voc) {
		sink.Report(diag.WrongSort, pos, "expected sort %s, got %s", expected.Name, actual.Name)
	}
}
