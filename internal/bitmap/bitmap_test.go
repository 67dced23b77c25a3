package bitmap

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitmap(t *testing.T) {
	a := New()
	a.Add(1)
	a.Add(5)

	b := New()
	b.Add(3)
	b.Add(5)

	a.Or(b)
	assert.Equal(t, []int{1, 3, 5}, slices.Collect(a.Positions()))
	assert.Equal(t, 3, a.Cardinality())
	assert.True(t, a.Contains(3))
	assert.False(t, a.Contains(4))

	c := a.Complement(7)
	assert.Equal(t, []int{0, 2, 4, 6}, slices.Collect(c.Positions()))
	// Complement leaves the receiver untouched.
	assert.Equal(t, 3, a.Cardinality())

	assert.True(t, New().IsEmpty())
	assert.Equal(t, []int{0, 1, 2}, slices.Collect(New().Complement(3).Positions()))
}

func TestMask(t *testing.T) {
	m := NewMask(10)
	m.Set(0)
	m.Set(9)
	m.Set(4)

	assert.True(t, m.Test(4))
	assert.False(t, m.Test(5))
	assert.Equal(t, 3, m.Count())
	assert.Equal(t, []int{0, 4, 9}, slices.Collect(m.Positions()))

	assert.Empty(t, slices.Collect(NewMask(0).Positions()))
}
