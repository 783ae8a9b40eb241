package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KULeuven-KRR/idp-core/diag"
	"github.com/KULeuven-KRR/idp-core/registry"
	"github.com/KULeuven-KRR/idp-core/vocabulary"
)

func TestScopeSortInScopeResolvesThroughUsedVocabulary(t *testing.T) {
	l := vocabulary.NewLattice()
	voc := vocabulary.NewVocabulary("V", l)
	person, err := voc.NewSort("Person")
	require.NoError(t, err)

	root := registry.NewNamespace("root", nil)
	scope := registry.NewScope(root)
	scope.UseVocabulary(voc)

	got, err := scope.SortInScope("Person")
	require.NoError(t, err)
	assert.Same(t, person, got)
}

func TestScopeSortInScopeReportsUndeclared(t *testing.T) {
	root := registry.NewNamespace("root", nil)
	scope := registry.NewScope(root)

	_, err := scope.SortInScope("Ghost")
	require.Error(t, err)
	assertKind(t, err, diag.UndeclaredSort)
}

func TestScopeSortInScopeReportsAmbiguity(t *testing.T) {
	l := vocabulary.NewLattice()
	v1 := vocabulary.NewVocabulary("v1", l)
	v2 := vocabulary.NewVocabulary("v2", l)
	_, err := v1.NewSort("Thing")
	require.NoError(t, err)
	_, err = v2.NewSort("Thing")
	require.NoError(t, err)

	root := registry.NewNamespace("root", nil)
	scope := registry.NewScope(root)
	scope.UseVocabulary(v1)
	scope.UseVocabulary(v2)

	_, err = scope.SortInScope("Thing")
	require.Error(t, err)
	assertKind(t, err, diag.OverloadedSort)
}

func TestScopeCloseBlockDropsUsingsFromThatBlock(t *testing.T) {
	l := vocabulary.NewLattice()
	outer := vocabulary.NewVocabulary("outer", l)
	inner := vocabulary.NewVocabulary("inner", l)
	_, err := outer.NewSort("A")
	require.NoError(t, err)
	_, err = inner.NewSort("B")
	require.NoError(t, err)

	root := registry.NewNamespace("root", nil)
	scope := registry.NewScope(root)
	scope.UseVocabulary(outer)

	scope.OpenBlock()
	scope.UseVocabulary(inner)
	_, err = scope.SortInScope("B")
	require.NoError(t, err)
	scope.CloseBlock()

	_, err = scope.SortInScope("B")
	require.Error(t, err)
	assertKind(t, err, diag.UndeclaredSort)

	_, err = scope.SortInScope("A")
	require.NoError(t, err, "using from outside the closed block must survive")
}

func TestScopeResolveNamespacePathDescendsSubspaces(t *testing.T) {
	root := registry.NewNamespace("root", nil)
	a := registry.NewNamespace("a", nil)
	b := registry.NewNamespace("b", nil)
	require.NoError(t, root.AddSubspace("A", a))
	require.NoError(t, a.AddSubspace("B", b))

	scope := registry.NewScope(root)
	scope.UseNamespace(root)

	got, err := scope.ResolveNamespacePath("A::B")
	require.NoError(t, err)
	assert.Same(t, b, got)
}
