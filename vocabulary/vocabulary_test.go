package vocabulary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KULeuven-KRR/idp-core/diag"
	"github.com/KULeuven-KRR/idp-core/vocabulary"
)

func TestAddPredMergesOverloadOnRepeatedName(t *testing.T) {
	l := vocabulary.NewLattice()
	v := vocabulary.NewVocabulary("V", l)

	person, err := v.NewSort("Person")
	require.NoError(t, err)
	company, err := v.NewSort("Company")
	require.NoError(t, err)

	_, err = v.AddPred("employs", []*vocabulary.Sort{company, person})
	require.NoError(t, err)
	_, err = v.AddPred("employs", []*vocabulary.Sort{person, person})
	require.NoError(t, err)

	ov, ok := v.Pred("employs")
	require.True(t, ok)
	assert.Len(t, ov.Variants(), 2)
}

func TestAddPredDuplicateSortVectorIsMultiDecl(t *testing.T) {
	l := vocabulary.NewLattice()
	v := vocabulary.NewVocabulary("V", l)
	person, _ := v.NewSort("Person")

	_, err := v.AddPred("likes", []*vocabulary.Sort{person, person})
	require.NoError(t, err)

	_, err = v.AddPred("likes", []*vocabulary.Sort{person, person})
	require.Error(t, err)
	entry, ok := err.(diag.Entry)
	require.True(t, ok)
	assert.Equal(t, diag.MultiDecl, entry.Kind)
}

func TestAddSortIdempotentForSamePointer(t *testing.T) {
	l := vocabulary.NewLattice()
	v := vocabulary.NewVocabulary("V", l)
	s := l.NewSort("Shared")

	require.NoError(t, v.AddSort("Shared", s))
	require.NoError(t, v.AddSort("Shared", s))
}

func TestAddSortDifferentSortSameNameIsMultiDecl(t *testing.T) {
	l := vocabulary.NewLattice()
	v := vocabulary.NewVocabulary("V", l)
	a := l.NewSort("Shared")
	b := l.NewSort("Shared")

	require.NoError(t, v.AddSort("Shared", a))
	err := v.AddSort("Shared", b)
	require.Error(t, err)
}

func TestCharacteristicPredicateIsLazyAndUnary(t *testing.T) {
	l := vocabulary.NewLattice()
	v := vocabulary.NewVocabulary("V", l)
	s, _ := v.NewSort("Color")

	p1 := v.CharacteristicPredicate(s)
	p2 := v.CharacteristicPredicate(s)
	assert.Same(t, p1, p2)
	assert.Equal(t, 1, p1.Arity())
}
