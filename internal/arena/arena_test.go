package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mica-lang/mica/internal/arena"
)

func TestArenaAllocAssignsDenseStableIndices(t *testing.T) {
	var a arena.Arena[string]

	first := a.Alloc("first")
	second := a.Alloc("second")
	third := a.Alloc("third")

	assert.Equal(t, uint32(0), first.Raw())
	assert.Equal(t, uint32(1), second.Raw())
	assert.Equal(t, uint32(2), third.Raw())
	assert.Equal(t, 3, a.Len())

	assert.Equal(t, "first", *a.Get(first))
	assert.Equal(t, "second", *a.Get(second))
	assert.Equal(t, "third", *a.Get(third))
}

func TestArenaNextIdxSnapshotsLength(t *testing.T) {
	var a arena.Arena[int]

	start := a.NextIdx()
	a.Alloc(10)
	a.Alloc(20)
	end := a.NextIdx()

	r := arena.NewIdxRange(start, end)
	assert.Equal(t, 2, r.Len())
	assert.True(t, r.Contains(start))
	assert.False(t, r.Contains(end))
}

func TestIdxRangeEachVisitsInOrder(t *testing.T) {
	var a arena.Arena[int]
	for i := 0; i < 5; i++ {
		a.Alloc(i * 10)
	}

	r := arena.NewIdxRange(arena.Idx[int](1), arena.Idx[int](4))
	var seen []int
	r.Each(func(idx arena.Idx[int]) {
		seen = append(seen, *a.Get(idx))
	})
	assert.Equal(t, []int{10, 20, 30}, seen)
	assert.Len(t, r.Indices(), 3)
}

func TestNewIdxRangePanicsOnInvertedBounds(t *testing.T) {
	require.Panics(t, func() {
		arena.NewIdxRange(arena.Idx[int](3), arena.Idx[int](1))
	})
}

func TestArenaEachYieldsAddressableValues(t *testing.T) {
	var a arena.Arena[int]
	a.Alloc(1)
	a.Alloc(2)

	a.Each(func(_ arena.Idx[int], v *int) { *v *= 10 })

	assert.Equal(t, 10, *a.Get(arena.Idx[int](0)))
	assert.Equal(t, 20, *a.Get(arena.Idx[int](1)))
}
