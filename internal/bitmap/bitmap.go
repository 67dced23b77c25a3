package bitmap

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap is a set of positions backed by a Roaring bitmap.
type Bitmap struct {
	rb *roaring.Bitmap
}

// New creates an empty bitmap.
func New() *Bitmap {
	return &Bitmap{rb: roaring.New()}
}

// Add adds a position.
func (b *Bitmap) Add(pos int) {
	b.rb.Add(uint32(pos))
}

// Contains reports whether pos is in the set.
func (b *Bitmap) Contains(pos int) bool {
	return b.rb.Contains(uint32(pos))
}

// IsEmpty returns true if the bitmap is empty.
func (b *Bitmap) IsEmpty() bool {
	return b.rb.IsEmpty()
}

// Cardinality returns the number of positions in the set.
func (b *Bitmap) Cardinality() int {
	return int(b.rb.GetCardinality())
}

// Or adds every position of other.
func (b *Bitmap) Or(other *Bitmap) {
	b.rb.Or(other.rb)
}

// Complement returns the positions in [0, n) that are not in b.
func (b *Bitmap) Complement(n int) *Bitmap {
	out := b.rb.Clone()
	out.Flip(0, uint64(n))
	return &Bitmap{rb: out}
}

// Positions iterates the set in ascending order.
func (b *Bitmap) Positions() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := b.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}
