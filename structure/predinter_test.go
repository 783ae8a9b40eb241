package structure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KULeuven-KRR/idp-core/element"
	"github.com/KULeuven-KRR/idp-core/structure"
)

func unaryUniverse(f *element.Factory, lo, hi int64) *structure.Universe {
	return structure.NewUniverse(structure.NewIntRangeSortTable(f, lo, hi))
}

func TestPredInterFromSingleIsApproxTwoValued(t *testing.T) {
	f := element.NewFactory()
	u := unaryUniverse(f, 1, 5)
	ct := structure.NewEnumeratedPredTable(1, []structure.Tuple{{f.CreateInt(2)}})

	p := structure.NewPredInterFromSingle(ct, structure.AsCT, u)

	assert.True(t, p.ApproxTwoValued())
	assert.True(t, p.IsTrue(structure.Tuple{f.CreateInt(2)}))
	assert.True(t, p.IsFalse(structure.Tuple{f.CreateInt(3)}))
	assert.False(t, p.IsInconsistent(structure.Tuple{f.CreateInt(2)}))
	assert.False(t, p.IsUnknown(structure.Tuple{f.CreateInt(2)}))
}

func TestPredInterFromBoundCanBeInconsistent(t *testing.T) {
	f := element.NewFactory()
	u := unaryUniverse(f, 1, 5)
	ctpf := structure.NewEnumeratedPredTable(1, []structure.Tuple{{f.CreateInt(2)}})
	cfpt := structure.NewEnumeratedPredTable(1, []structure.Tuple{{f.CreateInt(2)}})

	p := structure.NewPredInterFromBound(ctpf, cfpt, true, true, u)

	two := structure.Tuple{f.CreateInt(2)}
	assert.True(t, p.IsTrue(two))
	assert.True(t, p.IsFalse(two))
	assert.True(t, p.IsInconsistent(two))
	assert.False(t, p.ApproxTwoValued())
}

func TestPredInterLeastPreciseIsAllUnknown(t *testing.T) {
	f := element.NewFactory()
	u := unaryUniverse(f, 1, 3)
	empty := structure.NewEnumeratedPredTable(1, nil)

	p := structure.NewPredInterFromBound(empty, empty, true, true, u)

	for it := u.Iterate(); it.HasNext(); {
		tup := it.Next()
		assert.True(t, p.IsUnknown(tup))
		assert.False(t, p.IsTrue(tup))
		assert.False(t, p.IsFalse(tup))
		assert.False(t, p.IsInconsistent(tup))
	}
}

func TestPredInterMakeTrueMakeFalseMakeUnknown(t *testing.T) {
	f := element.NewFactory()
	u := unaryUniverse(f, 1, 3)
	empty := structure.NewEnumeratedPredTable(1, nil)
	p := structure.NewPredInterFromBound(empty, empty, true, true, u)

	one := structure.Tuple{f.CreateInt(1)}
	p.MakeTrue(one)
	assert.True(t, p.IsTrue(one))
	assert.False(t, p.IsFalse(one))

	p.MakeFalse(one)
	assert.False(t, p.IsTrue(one))
	assert.True(t, p.IsFalse(one))

	p.MakeUnknown(one)
	assert.True(t, p.IsUnknown(one))
}

func TestPredInterTruthFourValuedInvariants(t *testing.T) {
	f := element.NewFactory()
	u := unaryUniverse(f, 1, 4)
	ctpf := structure.NewEnumeratedPredTable(1, []structure.Tuple{{f.CreateInt(1)}})
	cfpt := structure.NewEnumeratedPredTable(1, []structure.Tuple{{f.CreateInt(1)}, {f.CreateInt(2)}})
	p := structure.NewPredInterFromBound(ctpf, cfpt, true, true, u)

	for it := u.Iterate(); it.HasNext(); {
		tup := it.Next()
		isTrue, isFalse := p.IsTrue(tup), p.IsFalse(tup)
		if isTrue && isFalse {
			require.True(t, p.IsInconsistent(tup))
		}
		assert.Equal(t, !isTrue && !isFalse, p.IsUnknown(tup))
		if p.ApproxTwoValued() {
			assert.False(t, p.IsInconsistent(tup))
		}
	}
}
