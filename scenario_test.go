// End-to-end scenarios wiring vocabulary, syntax and structure together,
// the way a real caller would rather than each package in isolation.
package idpcore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KULeuven-KRR/idp-core/diag"
	"github.com/KULeuven-KRR/idp-core/element"
	"github.com/KULeuven-KRR/idp-core/structure"
	"github.com/KULeuven-KRR/idp-core/syntax"
	"github.com/KULeuven-KRR/idp-core/vocabulary"
)

// An untyped variable in a predicate's sole int-sorted argument position
// derives to that sort.
func TestUntypedVariableDerivesFromItsOnlyPredicateArgumentSort(t *testing.T) {
	e := vocabulary.NewEngine()
	v := e.NewVocabulary("V", true)
	intSort := e.IntSort()

	p, err := v.AddPred("P", []*vocabulary.Sort{intSort})
	require.NoError(t, err)

	x := syntax.NewVariable("x", syntax.Position{})
	f := &syntax.PredFormula{Ref: syntax.NewPredRef(p), Args: []syntax.Term{&syntax.VarTerm{Var: x}}}

	sink := &diag.Sink{}
	syntax.DeriveSorts(v, f, sink)

	assert.False(t, sink.HasErrors())
	assert.Equal(t, intSort, x.Sort)
}

// A predicate overloaded across two unrelated sorts disambiguates to the
// variant matching a known hint, and rejects a hint sharing no common
// sort with either variant.
func TestOverloadedPredicateDisambiguatesByHintSort(t *testing.T) {
	e := vocabulary.NewEngine()
	v := e.NewVocabulary("V", true)
	natSort := e.NatSort()
	stringSort := e.StringSort()
	other, err := v.NewSort("Other")
	require.NoError(t, err)

	_, err = v.AddPred("tag", []*vocabulary.Sort{natSort})
	require.NoError(t, err)
	_, err = v.AddPred("tag", []*vocabulary.Sort{stringSort})
	require.NoError(t, err)

	ov, ok := v.Pred("tag")
	require.True(t, ok)

	sym, err := ov.Disambiguate([]*vocabulary.Sort{natSort})
	require.NoError(t, err)
	assert.Equal(t, natSort, sym.Sorts[0])

	_, err = ov.Disambiguate([]*vocabulary.Sort{other})
	assert.Error(t, err)
}

// The built-in "+" overload resolves to the real variant when either
// operand is real-sorted, and to the int variant when both are int-sorted.
func TestNumericOverloadResolvesRealOverInt(t *testing.T) {
	e := vocabulary.NewEngine()
	v := e.NewVocabulary("V", true)
	intSort, realSort := e.IntSort(), e.RealSort()
	elems := element.NewFactory()

	mixed := &syntax.FuncTerm{
		Ref: syntax.NewOverloadedFuncRef(funcOverload(t, v, "+")),
		Args: []syntax.Term{
			&syntax.DomainTerm{Elem: elems.CreateInt(1), SortRef: intSort},
			&syntax.DomainTerm{Elem: elems.CreateReal(1.5, false), SortRef: realSort},
		},
	}
	wrapMixed := &syntax.EqChainFormula{Conj: true, Terms: []syntax.Term{mixed, mixed}, Cmps: []syntax.CmpOp{syntax.CmpEq}}
	sink := &diag.Sink{}
	syntax.DeriveSorts(v, wrapMixed, sink)
	assert.False(t, sink.HasErrors())
	assert.Equal(t, realSort, mixed.Sort())

	bothInt := &syntax.FuncTerm{
		Ref: syntax.NewOverloadedFuncRef(funcOverload(t, v, "+")),
		Args: []syntax.Term{
			&syntax.DomainTerm{Elem: elems.CreateInt(1), SortRef: intSort},
			&syntax.DomainTerm{Elem: elems.CreateInt(1), SortRef: intSort},
		},
	}
	wrapInt := &syntax.EqChainFormula{Conj: true, Terms: []syntax.Term{bothInt, bothInt}, Cmps: []syntax.CmpOp{syntax.CmpEq}}
	sink.Reset()
	syntax.DeriveSorts(v, wrapInt, sink)
	assert.False(t, sink.HasErrors())
	assert.Equal(t, intSort, bothInt.Sort())
}

func funcOverload(t *testing.T, v *vocabulary.Vocabulary, name string) *vocabulary.FuncOverload {
	t.Helper()
	ov, ok := v.Func(name)
	require.True(t, ok)
	return ov
}

// A four-valued predicate interpretation over an enumerated sort queries
// correctly for its certainly-true, certainly-false and unknown tuples.
func TestFourValuedPredInterOverEnumeratedSort(t *testing.T) {
	l := vocabulary.NewLattice()
	v := vocabulary.NewVocabulary("V", l)
	a, err := v.NewSort("A")
	require.NoError(t, err)
	p, err := v.AddPred("P", []*vocabulary.Sort{a})
	require.NoError(t, err)

	f := element.NewFactory()
	ea, eb, ec := f.CreateStr("a", true), f.CreateStr("b", true), f.CreateStr("c", true)
	universe := structure.NewUniverse(structure.NewEnumeratedSortTable([]*element.Element{ea, eb, ec}))

	ct := structure.NewEnumeratedPredTable(p.Arity(), []structure.Tuple{{ea}})
	cf := structure.NewEnumeratedPredTable(p.Arity(), []structure.Tuple{{ec}})
	pi := structure.NewPredInterFromBound(ct, cf, true, true, universe)

	assert.True(t, pi.IsTrue(structure.Tuple{ea}))
	assert.True(t, pi.IsFalse(structure.Tuple{ec}))
	assert.True(t, pi.IsUnknown(structure.Tuple{eb}))
	assert.False(t, pi.ApproxTwoValued())
}

// A total function declared over a finite sort fails its function check
// when an element of that sort has no outgoing tuple.
func TestTotalFunctionCheckFailsForMissingElement(t *testing.T) {
	l := vocabulary.NewLattice()
	v := vocabulary.NewVocabulary("V", l)
	a, err := v.NewSort("A")
	require.NoError(t, err)
	fsym, err := v.AddFunc("F", []*vocabulary.Sort{a, a})
	require.NoError(t, err)

	elems := element.NewFactory()
	ea, eb, ec := elems.CreateStr("a", true), elems.CreateStr("b", true), elems.CreateStr("c", true)
	sortA := structure.NewEnumeratedSortTable([]*element.Element{ea, eb, ec})
	universe := structure.NewUniverse(sortA, sortA)

	ft := structure.NewFuncTable(fsym.Arity(), []structure.Tuple{{ea, ea}, {eb, eb}})
	fi := structure.NewFuncInterFromTable(ft, universe)

	sink := &diag.Sink{}
	structure.FunctionCheck(fi, true, syntax.Position{}, sink)

	require.True(t, sink.HasErrors())
	assert.Equal(t, diag.NotTotal, sink.Entries()[0].Kind)
}

// Iterating a union sort table yields each underlying element exactly
// once, in the canonical order of its component tables.
func TestUnionSortTableIteratesEachElementOnce(t *testing.T) {
	f := element.NewFactory()
	one, two, three := f.CreateInt(1), f.CreateInt(2), f.CreateInt(3)

	b := structure.NewEnumeratedSortTable([]*element.Element{one, two})
	c := structure.NewEnumeratedSortTable([]*element.Element{two, three})
	union := structure.NewUnionSortTable([]structure.SortTable{b, c}, nil)

	var got []*element.Element
	it := union.Iterate()
	for it.HasNext() {
		got = append(got, it.Next())
	}

	require.Len(t, got, 3)
	assert.Same(t, one, got[0])
	assert.Same(t, two, got[1])
	assert.Same(t, three, got[2])
}
