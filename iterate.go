package bitvec

import (
	"iter"
	"math/bits"
)

// Range visits every set bit index in strictly ascending order. If visit
// returns false, iteration stops immediately. This is the general-purpose
// early-exit traversal primitive; for plain for-range consumption use All.
func (b *Bitmap) Range(visit func(x int) bool) {
	for i, w := range b.words {
		for w != 0 {
			n := bits.TrailingZeros8(w)
			if !visit(i*WordBits + n) {
				return
			}
			w &= w - 1
		}
	}
}

// All returns a restartable iterator over the set bit indices in ascending
// order.
func (b *Bitmap) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, w := range b.words {
			for w != 0 {
				n := bits.TrailingZeros8(w)
				if !yield(i*WordBits + n) {
					return
				}
				w &= w - 1
			}
		}
	}
}
