package vocabulary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KULeuven-KRR/idp-core/diag"
	"github.com/KULeuven-KRR/idp-core/vocabulary"
)

func TestAddParentRejectsSelfCycle(t *testing.T) {
	l := vocabulary.NewLattice()
	a := l.NewSort("A")

	err := l.AddParent(a, a)
	require.Error(t, err)
	assertKind(t, err, diag.CyclicHierarchy)
}

func TestAddParentRejectsIndirectCycle(t *testing.T) {
	l := vocabulary.NewLattice()
	a := l.NewSort("A")
	b := l.NewSort("B")
	c := l.NewSort("C")

	require.NoError(t, l.AddParent(b, c))
	require.NoError(t, l.AddParent(a, b))

	err := l.AddParent(c, a)
	require.Error(t, err)
	assertKind(t, err, diag.CyclicHierarchy)
}

func TestAddParentRejectsOrphanedChild(t *testing.T) {
	l := vocabulary.NewLattice()
	animal := l.NewSort("Animal")
	dog := l.NewSort("Dog")
	cat := l.NewSort("Cat")

	require.NoError(t, l.AddParent(dog, animal))

	// cat has no declared children, so declaring it a child of dog passes
	// the child check.
	err := l.AddParent(cat, dog)
	require.NoError(t, err) // cat has no other declared parent yet, so this is fine

	unrelated := l.NewSort("Unrelated")
	err = l.AddParent(unrelated, animal)
	require.NoError(t, err)

	// Now declaring dog a child of unrelated (a sibling-ish sort with no
	// path from dog) should fail because cat (dog's child) has no path to
	// unrelated.
	err = l.AddParent(dog, unrelated)
	require.Error(t, err)
	assertKind(t, err, diag.NotSubSort)
}

func TestAncestorsAndDescendants(t *testing.T) {
	l := vocabulary.NewLattice()
	nat := l.NewSort("nat")
	integer := l.NewSort("int")
	real := l.NewSort("real")
	require.NoError(t, l.AddParent(integer, real))
	require.NoError(t, l.AddParent(nat, integer))

	anc := l.Ancestors(nat, nil)
	assert.True(t, anc[nat])
	assert.True(t, anc[integer])
	assert.True(t, anc[real])

	desc := l.Descendants(real, nil)
	assert.True(t, desc[real])
	assert.True(t, desc[integer])
	assert.True(t, desc[nat])
}

func TestResolveFindsNearestCommonAncestor(t *testing.T) {
	l := vocabulary.NewLattice()
	animal := l.NewSort("Animal")
	dog := l.NewSort("Dog")
	cat := l.NewSort("Cat")
	require.NoError(t, l.AddParent(dog, animal))
	require.NoError(t, l.AddParent(cat, animal))

	r, err := l.Resolve(dog, cat, nil)
	require.NoError(t, err)
	assert.Equal(t, animal, r)
}

func TestResolveSameSort(t *testing.T) {
	l := vocabulary.NewLattice()
	a := l.NewSort("A")
	r, err := l.Resolve(a, a, nil)
	require.NoError(t, err)
	assert.Equal(t, a, r)
}

func TestResolveNoCommonAncestor(t *testing.T) {
	l := vocabulary.NewLattice()
	a := l.NewSort("A")
	b := l.NewSort("B")
	r, err := l.Resolve(a, b, nil)
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestIsSubsort(t *testing.T) {
	l := vocabulary.NewLattice()
	nat := l.NewSort("nat")
	integer := l.NewSort("int")
	require.NoError(t, l.AddParent(nat, integer))

	assert.True(t, l.IsSubsort(nat, integer, nil))
	assert.False(t, l.IsSubsort(integer, nat, nil))
	assert.True(t, l.IsSubsort(nat, nat, nil))
}

func TestAncestorsScopedToVocabulary(t *testing.T) {
	l := vocabulary.NewLattice()
	animal := l.NewSort("Animal")
	dog := l.NewSort("Dog")
	require.NoError(t, l.AddParent(dog, animal))

	v := vocabulary.NewVocabulary("V", l)
	require.NoError(t, v.AddSort("Dog", dog))
	// Animal deliberately not added to v.

	anc := l.Ancestors(dog, v)
	assert.True(t, anc[dog])
	assert.False(t, anc[animal])
}

func assertKind(t *testing.T, err error, want diag.ErrorKind) {
	t.Helper()
	entry, ok := err.(diag.Entry)
	require.True(t, ok, "expected a diag.Entry, got %T", err)
	assert.Equal(t, want, entry.Kind)
}
