package bitmap

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
)

// Mask is a dense, fixed-size set of positions.
type Mask struct {
	bs *bitset.BitSet
}

// NewMask creates a mask sized for n positions.
func NewMask(n int) *Mask {
	return &Mask{bs: bitset.New(uint(n))}
}

// Set marks pos.
func (m *Mask) Set(pos int) {
	m.bs.Set(uint(pos))
}

// Test reports whether pos is marked.
func (m *Mask) Test(pos int) bool {
	return m.bs.Test(uint(pos))
}

// Count returns the number of marked positions.
func (m *Mask) Count() int {
	return int(m.bs.Count())
}

// Positions iterates the marked positions in ascending order.
func (m *Mask) Positions() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, ok := m.bs.NextSet(0); ok; i, ok = m.bs.NextSet(i + 1) {
			if !yield(int(i)) {
				return
			}
		}
	}
}
