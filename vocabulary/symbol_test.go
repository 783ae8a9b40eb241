package vocabulary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KULeuven-KRR/idp-core/element"
	"github.com/KULeuven-KRR/idp-core/vocabulary"
)

func TestFuncSymbolImplementsElementFuncIdentity(t *testing.T) {
	var _ element.FuncIdentity = (*vocabulary.FuncSymbol)(nil)
}

func TestFuncSymbolInternsCompoundElementsByIdentity(t *testing.T) {
	l := vocabulary.NewLattice()
	v := vocabulary.NewVocabulary("V", l)
	intSort, _ := v.NewSort("int")

	age, err := v.AddFunc("age", []*vocabulary.Sort{intSort, intSort})
	require.NoError(t, err)

	f := element.NewFactory()
	one := f.CreateInt(1)

	a := f.Compound(age, []*element.Element{one})
	b := f.Compound(age, []*element.Element{one})
	assert.Same(t, a, b)

	other, err := v.AddFunc("height", []*vocabulary.Sort{intSort, intSort})
	require.NoError(t, err)
	c := f.Compound(other, []*element.Element{one})
	assert.NotSame(t, a, c)
}
