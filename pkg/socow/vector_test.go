package socow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/CPP-KT/socow-vector-task/pkg/socow"
	"github.com/CPP-KT/socow-vector-task/pkg/socow/socowtest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type smallN3 = [3]int

func newIntVec() *socow.Vector[int, smallN3] {
	return socow.New[int, smallN3]()
}

func TestDefaultConstructor(t *testing.T) {
	v := newIntVec()
	assert.Equal(t, 0, v.Len())
	assert.True(t, v.Empty())
	assert.True(t, v.IsSmall())
	assert.Equal(t, 3, v.Cap())
}

func TestSBOThreshold(t *testing.T) {
	v := newIntVec()
	for _, x := range []int{1, 2, 3} {
		require.NoError(t, v.PushBack(x))
	}
	assert.True(t, v.IsSmall())

	require.NoError(t, v.PushBack(4))
	assert.False(t, v.IsSmall())
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, []int{1, 2, 3, 4}, v.ConstData())
}

func fillOdd(t *testing.T, v *socow.Vector[int, smallN3], n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, v.PushBack(2*i+1))
	}
}

func TestCOWIsolation(t *testing.T) {
	a := newIntVec()
	fillOdd(t, a, 50)

	b, err := a.Clone()
	require.NoError(t, err)
	c, err := a.Clone()
	require.NoError(t, err)

	require.Equal(t, a.ConstData(), b.ConstData())
	aPtr := &a.ConstData()[0]
	bPtr := &b.ConstData()[0]
	cPtr := &c.ConstData()[0]
	assert.Same(t, aPtr, cPtr)
	assert.Same(t, aPtr, bPtr)
	assert.Equal(t, a.Cap(), b.Cap())
	assert.Equal(t, a.Cap(), c.Cap())

	require.NoError(t, b.Set(0, 42))

	assert.Equal(t, 1, a.At(0))
	assert.Equal(t, 42, b.At(0))
	assert.Equal(t, 1, c.At(0))
	assert.NotSame(t, &a.ConstData()[0], &b.ConstData()[0])
	assert.Same(t, &a.ConstData()[0], &c.ConstData()[0])
}

func TestInsertInMiddle(t *testing.T) {
	a := newIntVec()
	fillOdd(t, a, 50)

	idx, err := a.Insert(10, 42)
	require.NoError(t, err)

	assert.Equal(t, 51, a.Len())
	assert.Equal(t, 10, idx)
	assert.Equal(t, 42, a.At(10))
	for i := 0; i < 10; i++ {
		assert.Equal(t, 2*i+1, a.At(i))
	}
	for i := 10; i < 50; i++ {
		assert.Equal(t, 2*i+1, a.At(i+1))
	}
}

func TestEraseRange(t *testing.T) {
	a := newIntVec()
	fillOdd(t, a, 50)

	capBefore := a.Cap()
	dataBefore := &a.ConstData()[0]

	_, err := a.EraseRange(10, 40)
	require.NoError(t, err)

	assert.Equal(t, 20, a.Len())
	for i := 0; i < 10; i++ {
		assert.Equal(t, 2*i+1, a.At(i))
	}
	for i := 10; i < 20; i++ {
		assert.Equal(t, 2*(i+30)+1, a.At(i))
	}
	assert.Equal(t, capBefore, a.Cap())
	assert.Same(t, dataBefore, &a.ConstData()[0])
}

func TestSwapTwoLargeVectors(t *testing.T) {
	a := newIntVec()
	for i := 0; i < 4; i++ {
		require.NoError(t, a.PushBack(i))
	}
	b := newIntVec()
	for i := 0; i < 8; i++ {
		require.NoError(t, b.PushBack(100 + i))
	}

	aSnapshot := append([]int(nil), a.ConstData()...)
	bSnapshot := append([]int(nil), b.ConstData()...)

	require.NoError(t, a.Swap(b))

	assert.Equal(t, aSnapshot, b.ConstData())
	assert.Equal(t, bSnapshot, a.ConstData())
}

func TestSwapSmallAgainstLarge(t *testing.T) {
	a := newIntVec()
	require.NoError(t, a.PushBack(1))
	require.NoError(t, a.PushBack(2))
	assert.True(t, a.IsSmall())

	b := newIntVec()
	for i := 0; i < 10; i++ {
		require.NoError(t, b.PushBack(100+i))
	}
	require.False(t, b.IsSmall())
	bCap := b.Cap()

	aSnapshot := append([]int(nil), a.ConstData()...)
	bSnapshot := append([]int(nil), b.ConstData()...)

	require.NoError(t, a.Swap(b))

	assert.False(t, a.IsSmall())
	assert.Equal(t, bCap, a.Cap())
	assert.Equal(t, bSnapshot, a.ConstData())

	assert.True(t, b.IsSmall())
	assert.Equal(t, 3, b.Cap())
	assert.Equal(t, aSnapshot, b.ConstData())
}

func TestPushBackFromSelfUnderReallocation(t *testing.T) {
	a := newIntVec()
	require.NoError(t, a.PushBack(42))
	for i := 1; i < 50; i++ {
		require.NoError(t, a.PushBack(a.At(i-1)))
	}
	for i := 0; i < 50; i++ {
		assert.Equal(t, 42, a.At(i))
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	a := newIntVec()
	require.NoError(t, a.PushBack(1))
	require.NoError(t, a.PushBack(2))
	sizeBefore := a.Len()
	require.NoError(t, a.PushBack(3))
	require.NoError(t, a.PopBack())
	assert.Equal(t, sizeBefore, a.Len())
	assert.Equal(t, []int{1, 2}, a.ConstData())
}

func TestShrinkToFitReturnsToSmall(t *testing.T) {
	a := newIntVec()
	fillOdd(t, a, 50)
	require.False(t, a.IsSmall())

	_, err := a.EraseRange(2, 50)
	require.NoError(t, err)
	require.NoError(t, a.ShrinkToFit())

	assert.True(t, a.IsSmall())
	assert.Equal(t, []int{1, 3}, a.ConstData())
}

func TestSwapSelfIsIdentity(t *testing.T) {
	a := newIntVec()
	fillOdd(t, a, 5)
	before := append([]int(nil), a.ConstData()...)
	require.NoError(t, a.Swap(a))
	assert.Equal(t, before, a.ConstData())
}

func TestCopySelfAssignmentIsIdentity(t *testing.T) {
	a := newIntVec()
	fillOdd(t, a, 5)
	before := append([]int(nil), a.ConstData()...)
	require.NoError(t, a.CopyFrom(a))
	assert.Equal(t, before, a.ConstData())
}

type smallElem3 = [3]socowtest.Element

func TestInstanceTrackingBalances(t *testing.T) {
	guard := socowtest.NewNoNewInstancesGuard()
	defer guard.Release()

	a := socow.New[socowtest.Element, smallElem3]()
	for i := 0; i < 50; i++ {
		require.NoError(t, a.PushBack(socowtest.New(i)))
	}

	b, err := a.Clone()
	require.NoError(t, err)
	require.NoError(t, b.Set(0, socowtest.New(-1)))

	require.NoError(t, a.Close())
	require.NoError(t, b.Close())

	assert.True(t, guard.CheckNoNewInstances())
}
