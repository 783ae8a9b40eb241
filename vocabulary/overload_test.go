package vocabulary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KULeuven-KRR/idp-core/vocabulary"
)

func TestEnumeratedDisambiguateUniqueMatch(t *testing.T) {
	l := vocabulary.NewLattice()
	v := vocabulary.NewVocabulary("V", l)
	person, _ := v.NewSort("Person")
	company, _ := v.NewSort("Company")

	_, err := v.AddPred("employs", []*vocabulary.Sort{company, person})
	require.NoError(t, err)

	ov, _ := v.Pred("employs")
	sym, err := ov.Disambiguate([]*vocabulary.Sort{company, nil})
	require.NoError(t, err)
	assert.Equal(t, person, sym.Sorts[1])
}

func TestEnumeratedDisambiguateAmbiguous(t *testing.T) {
	l := vocabulary.NewLattice()
	v := vocabulary.NewVocabulary("V", l)
	person, _ := v.NewSort("Person")
	company, _ := v.NewSort("Company")
	thing, _ := v.NewSort("Thing")
	require.NoError(t, l.AddParent(person, thing))
	require.NoError(t, l.AddParent(company, thing))

	_, err := v.AddPred("employs", []*vocabulary.Sort{company, person})
	require.NoError(t, err)
	_, err = v.AddPred("employs", []*vocabulary.Sort{person, company})
	require.NoError(t, err)

	ov, _ := v.Pred("employs")
	// Neither argument known: both variants resolve trivially, ambiguous.
	_, err = ov.Disambiguate([]*vocabulary.Sort{nil, nil})
	assert.Error(t, err)
}

func TestEnumeratedDisambiguateNoMatch(t *testing.T) {
	l := vocabulary.NewLattice()
	v := vocabulary.NewVocabulary("V", l)
	person, _ := v.NewSort("Person")
	company, _ := v.NewSort("Company")
	_, err := v.AddPred("employs", []*vocabulary.Sort{company, person})
	require.NoError(t, err)

	ov, _ := v.Pred("employs")
	_, err = ov.Disambiguate([]*vocabulary.Sort{person, nil})
	assert.Error(t, err)
}
