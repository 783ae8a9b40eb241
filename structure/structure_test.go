package structure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KULeuven-KRR/idp-core/diag"
	"github.com/KULeuven-KRR/idp-core/element"
	"github.com/KULeuven-KRR/idp-core/structure"
	"github.com/KULeuven-KRR/idp-core/vocabulary"
)

func newTestVocabulary(t *testing.T) (*vocabulary.Vocabulary, *vocabulary.Sort, *vocabulary.PredSymbol) {
	t.Helper()
	l := vocabulary.NewLattice()
	voc := vocabulary.NewVocabulary("V", l)
	person, err := voc.NewSort("Person")
	require.NoError(t, err)
	likes, err := voc.AddPred("likes", []*vocabulary.Sort{person, person})
	require.NoError(t, err)
	return voc, person, likes
}

func TestNewStructureLeavesNonBuiltinSortsUnbound(t *testing.T) {
	voc, person, _ := newTestVocabulary(t)
	s := structure.NewStructure(voc)

	_, ok := s.SortInter(person)
	assert.False(t, ok)
}

func TestReplaceVocabularyDropsRemovedAndAddsLeastPrecise(t *testing.T) {
	f := element.NewFactory()
	voc, person, likes := newTestVocabulary(t)
	s := structure.NewStructure(voc)
	s.SetSortInter(person, structure.NewEnumeratedSortTable([]*element.Element{f.CreateInt(1)}))

	ctpf := structure.NewEnumeratedPredTable(2, nil)
	s.SetPredInter(likes, structure.NewPredInterFromBound(ctpf, ctpf, true, true, structure.NewUniverse()))

	l2 := vocabulary.NewLattice()
	newVoc := vocabulary.NewVocabulary("V2", l2)
	company, err := newVoc.NewSort("Company")
	require.NoError(t, err)
	employs, err := newVoc.AddPred("employs", []*vocabulary.Sort{company, company})
	require.NoError(t, err)

	s.ReplaceVocabulary(newVoc)

	_, ok := s.PredInter(likes)
	assert.False(t, ok, "interpretation of a removed symbol must be dropped")

	pi, ok := s.PredInter(employs)
	require.True(t, ok, "a newly declared symbol must get a least-precise interpretation")
	assert.True(t, pi.IsUnknown(structure.Tuple{f.CreateInt(1), f.CreateInt(2)}))

	_, ok = s.SortInter(company)
	assert.True(t, ok)
}

func TestAutocompleteAddsOccurringElementsAndIsIdempotent(t *testing.T) {
	f := element.NewFactory()
	voc, person, likes := newTestVocabulary(t)
	s := structure.NewStructure(voc)

	alice, bob := f.CreateStr("alice", false), f.CreateStr("bob", false)
	s.SetSortInter(person, structure.NewEnumeratedSortTable(nil))

	u := structure.NewUniverse(structure.EmptySortTable{}, structure.EmptySortTable{})
	ct := structure.NewEnumeratedPredTable(2, []structure.Tuple{{alice, bob}})
	s.SetPredInter(likes, structure.NewPredInterFromSingle(ct, structure.AsCT, u))

	s.Autocomplete()
	personTable, ok := s.SortInter(person)
	require.True(t, ok)
	assert.True(t, personTable.Contains(alice))
	assert.True(t, personTable.Contains(bob))

	size1, _ := personTable.Size()
	s.Autocomplete()
	size2, _ := personTable.Size()
	assert.Equal(t, size1, size2, "a second Autocomplete pass must be a no-op")
}

func TestStructureFunctionCheckSkipsTotalityForPartialFunction(t *testing.T) {
	l := vocabulary.NewLattice()
	voc := vocabulary.NewVocabulary("V", l)
	person, err := voc.NewSort("Person")
	require.NoError(t, err)
	age, err := voc.AddFunc("age", []*vocabulary.Sort{person, person})
	require.NoError(t, err)
	age.Partial = true

	s := structure.NewStructure(voc)
	f := element.NewFactory()
	u := structure.NewUniverse(structure.NewEnumeratedSortTable([]*element.Element{f.CreateStr("alice", false)}), structure.EmptySortTable{})
	ft := structure.NewFuncTable(1, nil)
	s.SetFuncInter(age, structure.NewFuncInterFromTable(ft, u))

	sink := &diag.Sink{}
	s.FunctionCheck(sink)
	assert.False(t, sink.HasErrors(), "a partial function with no rows is not a totality violation")
}
