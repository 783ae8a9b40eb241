package structure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KULeuven-KRR/idp-core/element"
	"github.com/KULeuven-KRR/idp-core/structure"
	"github.com/KULeuven-KRR/idp-core/vocabulary"
)

func TestIntRangeSortTable(t *testing.T) {
	f := element.NewFactory()
	rng := structure.NewIntRangeSortTable(f, 1, 3)

	assert.True(t, rng.Finite())
	size, ok := rng.Size()
	require.True(t, ok)
	assert.Equal(t, 3, size)
	assert.True(t, rng.Contains(f.CreateInt(2)))
	assert.False(t, rng.Contains(f.CreateInt(4)))

	var got []int64
	for it := rng.Iterate(); it.HasNext(); {
		got = append(got, it.Next().Int())
	}
	assert.Equal(t, []int64{1, 2, 3}, got)
}

func TestEnumeratedSortTableAddIsIdempotentAndSorted(t *testing.T) {
	f := element.NewFactory()
	tbl := structure.NewEnumeratedSortTable([]*element.Element{f.CreateInt(3), f.CreateInt(1)})
	tbl.Add(f.CreateInt(2))
	tbl.Add(f.CreateInt(1)) // already present

	var got []int64
	for it := tbl.Iterate(); it.HasNext(); {
		got = append(got, it.Next().Int())
	}
	assert.Equal(t, []int64{1, 2, 3}, got)
	size, _ := tbl.Size()
	assert.Equal(t, 3, size)
}

func TestBuiltinSortTableContainsByKind(t *testing.T) {
	f := element.NewFactory()
	nat := structure.NewBuiltinSortTable(vocabulary.BuiltinNat)
	assert.True(t, nat.Contains(f.CreateInt(0)))
	assert.False(t, nat.Contains(f.CreateInt(-1)))
	assert.False(t, nat.Finite())

	str := structure.NewBuiltinSortTable(vocabulary.BuiltinString)
	assert.True(t, str.Contains(f.CreateStr("hello", false)))
}

func TestBuiltinSortTableIteratePanics(t *testing.T) {
	tbl := structure.NewBuiltinSortTable(vocabulary.BuiltinInt)
	assert.Panics(t, func() { tbl.Iterate() })
}

func TestUnionSortTableAppliesBlacklist(t *testing.T) {
	f := element.NewFactory()
	a := structure.NewEnumeratedSortTable([]*element.Element{f.CreateInt(1), f.CreateInt(2)})
	b := structure.NewEnumeratedSortTable([]*element.Element{f.CreateInt(2), f.CreateInt(3)})
	blacklist := structure.NewEnumeratedSortTable([]*element.Element{f.CreateInt(2)})

	u := structure.NewUnionSortTable([]structure.SortTable{a, b}, []structure.SortTable{blacklist})
	assert.True(t, u.Contains(f.CreateInt(1)))
	assert.False(t, u.Contains(f.CreateInt(2)))
	assert.True(t, u.Contains(f.CreateInt(3)))

	size, ok := u.Size()
	require.True(t, ok)
	assert.Equal(t, 2, size)
}
