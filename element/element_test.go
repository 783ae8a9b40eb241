package element_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KULeuven-KRR/idp-core/element"
)

type testFunc struct{ id uintptr }

func (f *testFunc) ElementFuncIdentity() uintptr { return f.id }

func TestInterningByIdentity(t *testing.T) {
	f := element.NewFactory()

	a := f.CreateInt(5)
	b := f.CreateInt(5)
	assert.Same(t, a, b, "equal ints must intern to the same pointer")

	c := f.CreateInt(5000) // outside default fast window
	d := f.CreateInt(5000)
	assert.Same(t, c, d)

	s1 := f.CreateStr("hello", true)
	s2 := f.CreateStr("hello", true)
	assert.Same(t, s1, s2)
}

func TestRealCollapsesToInt(t *testing.T) {
	f := element.NewFactory()

	r := f.CreateReal(3.0, false)
	require.Equal(t, element.KindInt, r.Kind())
	assert.Equal(t, int64(3), r.Int())

	// Same int value created directly must be the identical element.
	i := f.CreateInt(3)
	assert.Same(t, i, r)

	nonInt := f.CreateReal(3.0, true)
	require.Equal(t, element.KindReal, nonInt.Kind())
}

func TestStrCollapsesToReal(t *testing.T) {
	f := element.NewFactory()

	s := f.CreateStr("3.5", false)
	require.Equal(t, element.KindReal, s.Kind())
	assert.InDelta(t, 3.5, s.Real(), 0)

	notReal := f.CreateStr("3.5", true)
	require.Equal(t, element.KindString, notReal.Kind())

	intLike := f.CreateStr("7", false)
	require.Equal(t, element.KindInt, intLike.Kind())
	assert.Equal(t, int64(7), intLike.Int())
}

func TestCompoundInterning(t *testing.T) {
	f := element.NewFactory()
	fn := &testFunc{id: 1}
	other := &testFunc{id: 2}

	a1 := f.CreateInt(1)
	a2 := f.CreateInt(2)

	c1 := f.Compound(fn, []*element.Element{a1, a2})
	c2 := f.Compound(fn, []*element.Element{a1, a2})
	assert.Same(t, c1, c2)

	c3 := f.Compound(other, []*element.Element{a1, a2})
	assert.NotSame(t, c1, c3)

	c4 := f.Compound(fn, []*element.Element{a2, a1})
	assert.NotSame(t, c1, c4, "argument order distinguishes compounds")
}

func TestOrdering(t *testing.T) {
	f := element.NewFactory()

	i := f.CreateInt(1)
	r := f.CreateReal(2.5, true)
	s := f.CreateStr("x", true)
	fn := &testFunc{id: 9}
	c := f.Compound(fn, []*element.Element{i})

	assert.True(t, element.Less(i, r))
	assert.True(t, element.Less(r, s))
	assert.True(t, element.Less(s, c))
	assert.False(t, element.Less(i, i))
}

func TestNumericOrderingCrossesVariant(t *testing.T) {
	f := element.NewFactory()

	i := f.CreateInt(2)
	r := f.CreateReal(3.5, true)

	assert.True(t, element.Less(i, r))
	assert.False(t, element.Less(r, i))
}
