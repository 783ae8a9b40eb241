package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KULeuven-KRR/idp-core/diag"
	"github.com/KULeuven-KRR/idp-core/registry"
	"github.com/KULeuven-KRR/idp-core/syntax"
	"github.com/KULeuven-KRR/idp-core/vocabulary"
)

func newTestBuilder(t *testing.T) (*registry.Builder, *vocabulary.Vocabulary) {
	t.Helper()
	l := vocabulary.NewLattice()
	voc := vocabulary.NewVocabulary("V", l)
	root := registry.NewNamespace("root", nil)
	scope := registry.NewScope(root)
	scope.UseVocabulary(voc)
	sink := &diag.Sink{}
	return registry.NewBuilder(scope, voc, sink), voc
}

func TestBuilderNewSortAndPred(t *testing.T) {
	b, _ := newTestBuilder(t)

	person, ok := b.NewSort("Person")
	require.True(t, ok)
	require.NotNil(t, person)

	likes, ok := b.NewPred("likes", []string{"Person", "Person"})
	require.True(t, ok)
	assert.Equal(t, 2, likes.Arity())
	assert.False(t, b.Sink.HasErrors())
}

func TestBuilderNewPredFailsForUndeclaredSort(t *testing.T) {
	b, _ := newTestBuilder(t)

	_, ok := b.NewPred("likes", []string{"Ghost", "Ghost"})
	assert.False(t, ok)
	assert.True(t, b.Sink.HasErrors())
	assert.Equal(t, diag.UndeclaredSort, b.Sink.Entries()[0].Kind)
}

func TestBuilderNewNamespaceRegistersSubspace(t *testing.T) {
	b, _ := newTestBuilder(t)

	ns, ok := b.NewNamespace("sub")
	require.True(t, ok)

	got, err := b.Scope.NamespaceInScope("sub")
	require.NoError(t, err)
	assert.Same(t, ns, got)
}

func TestBuilderNewNamespaceFailsOnDuplicateName(t *testing.T) {
	b, _ := newTestBuilder(t)

	_, ok := b.NewNamespace("sub")
	require.True(t, ok)
	_, ok = b.NewNamespace("sub")
	assert.False(t, ok)
	assert.True(t, b.Sink.HasErrors())
}

func TestBuilderNewStructureAndTheoryRegisterInHome(t *testing.T) {
	b, _ := newTestBuilder(t)

	st, ok := b.NewStructure("s1")
	require.True(t, ok)
	require.NotNil(t, st)

	th, ok := b.NewTheory("t1", syntax.Position{})
	require.True(t, ok)
	require.NotNil(t, th)

	gotSt, err := b.Scope.StructureInScope("s1")
	require.NoError(t, err)
	assert.Same(t, st, gotSt)

	gotTh, err := b.Scope.TheoryInScope("t1")
	require.NoError(t, err)
	assert.Same(t, th, gotTh)
}

func TestBuilderNewRuleCoercesMismatchedHeadArgument(t *testing.T) {
	b, voc := newTestBuilder(t)

	person, ok := b.NewSort("Person")
	require.True(t, ok)
	company, ok := b.NewSort("Company")
	require.True(t, ok)

	worksAt, err := voc.AddPred("worksAt", []*vocabulary.Sort{person, company})
	require.NoError(t, err)

	x := syntax.NewVariable("X", syntax.Position{})
	x.Sort = person
	head := &syntax.PredFormula{
		Ref:  syntax.NewPredRef(worksAt),
		Args: []syntax.Term{&syntax.VarTerm{Var: x}, &syntax.VarTerm{Var: x}},
	}
	body := &syntax.PredFormula{Ref: syntax.NewPredRef(worksAt), Args: head.Args}

	rule, ok := b.NewRule([]*syntax.Variable{x}, head, body, syntax.Position{})
	require.True(t, ok)
	assert.Greater(t, len(rule.Vars), 1, "coercion must introduce a fresh variable for the mismatched head argument")
}
