package socow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReserveNoOpWhenSufficient(t *testing.T) {
	a := newIntVec()
	require.NoError(t, a.Reserve(1))
	assert.Equal(t, 3, a.Cap())
	assert.True(t, a.IsSmall())
}

func TestReserveGrowsCapacity(t *testing.T) {
	a := newIntVec()
	require.NoError(t, a.Reserve(10))
	assert.False(t, a.IsSmall())
	assert.Equal(t, 10, a.Cap())
	assert.Equal(t, 0, a.Len())
}

func TestReserveDoesNotBreakSharing(t *testing.T) {
	a := newIntVec()
	fillOdd(t, a, 10)
	b, err := a.Clone()
	require.NoError(t, err)

	require.NoError(t, b.Reserve(b.Cap()))
	assert.Same(t, &a.ConstData()[0], &b.ConstData()[0])
}

func TestShrinkToFitNoOpWhenAlreadySmall(t *testing.T) {
	a := newIntVec()
	require.NoError(t, a.PushBack(1))
	require.NoError(t, a.ShrinkToFit())

	assert.True(t, a.IsSmall())
	assert.Equal(t, 3, a.Cap())
	assert.Equal(t, []int{1}, a.ConstData())
}

func TestClearExclusiveKeepsCapacity(t *testing.T) {
	a := newIntVec()
	fillOdd(t, a, 10)
	capBefore := a.Cap()

	a.Clear()

	assert.Equal(t, 0, a.Len())
	assert.Equal(t, capBefore, a.Cap())
}

func TestClearSharedReleasesAndShrinks(t *testing.T) {
	a := newIntVec()
	fillOdd(t, a, 10)
	b, err := a.Clone()
	require.NoError(t, err)

	b.Clear()

	assert.Equal(t, 0, b.Len())
	assert.True(t, b.IsSmall())
	assert.Equal(t, 10, a.Len())
}

func TestMoveFromEmptiesSource(t *testing.T) {
	a := newIntVec()
	fillOdd(t, a, 10)
	b := newIntVec()

	b.MoveFrom(a)

	assert.Equal(t, 10, b.Len())
	assert.Equal(t, 0, a.Len())
	assert.True(t, a.IsSmall())
}

func TestIteratorWalksElements(t *testing.T) {
	a := newIntVec()
	fillOdd(t, a, 5)

	it := a.Begin()
	for i := 0; i < 5; i++ {
		assert.Equal(t, 2*i+1, it.Add(i).Deref())
	}
	assert.Equal(t, 5, a.End().Index())
}
