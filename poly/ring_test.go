package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingNeighborsWrap(t *testing.T) {
	r := newRing(4)
	assert.Equal(t, 4, r.Len())

	prev, next := r.Neighbors(0)
	assert.Equal(t, 3, prev, "first element wraps back to the last")
	assert.Equal(t, 1, next)

	prev, next = r.Neighbors(3)
	assert.Equal(t, 2, prev)
	assert.Equal(t, 0, next, "last element wraps forward to the first")
}

func TestRingRemove(t *testing.T) {
	r := newRing(5)
	r.Remove(2)

	assert.Equal(t, 4, r.Len())
	assert.False(t, r.Has(2))
	assert.True(t, r.Has(1))

	// The gap closes around the removed element
	prev, next := r.Neighbors(1)
	assert.Equal(t, 0, prev)
	assert.Equal(t, 3, next)
	prev, _ = r.Neighbors(3)
	assert.Equal(t, 1, prev)

	// Ids are stable across removals
	r.Remove(0)
	prev, next = r.Neighbors(1)
	assert.Equal(t, 4, prev)
	assert.Equal(t, 3, next)
	assert.Equal(t, []int{1, 3, 4}, r.Walk())
}

func TestRingHasOutOfRange(t *testing.T) {
	r := newRing(3)
	assert.False(t, r.Has(-1))
	assert.False(t, r.Has(3))
}

func TestRingWalkEmpty(t *testing.T) {
	r := newRing(1)
	assert.Equal(t, []int{0}, r.Walk())
	r.Remove(0)
	assert.Empty(t, r.Walk())
	assert.Equal(t, 0, r.Len())
}
