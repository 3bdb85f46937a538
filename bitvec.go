package bitvec

import (
	"fmt"
	"math/bits"
)

// WordBits is the number of bits per backing word.
const WordBits = 8

// DefaultCapacity is the initial capacity (in bits) of a Bitmap created
// with New.
const DefaultCapacity = 32

// Bitmap is a dynamically growable bit-vector backed by a flat byte store.
//
// Bit x lives at words[x/8], bit position x%8 (least significant bit first
// within the word). Capacity is len(words)*8 and only ever grows; Clear
// zeroes the content but never shrinks the store. Every Bitmap exclusively
// owns its backing store: set-algebra results and clones always allocate
// fresh storage.
//
// A Bitmap is not safe for concurrent use; callers must serialize mutating
// access externally.
type Bitmap struct {
	words []byte
}

// New creates an empty bitmap with the default capacity of 32 bits.
func New() *Bitmap {
	return &Bitmap{words: make([]byte, DefaultCapacity/WordBits)}
}

// NewWithCapacity creates an empty bitmap able to address at least the given
// number of bits. The capacity is rounded up to a multiple of 8, with a
// minimum of one word. A negative capacity returns ErrInvalidArgument.
func NewWithCapacity(capacity int) (*Bitmap, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: negative capacity %d", ErrInvalidArgument, capacity)
	}

	numWords := (capacity + WordBits - 1) / WordBits
	if numWords == 0 {
		numWords = 1
	}

	return &Bitmap{words: make([]byte, numWords)}, nil
}

// grow ensures capacity strictly exceeds bit index x. Growth is exact-fit
// (no doubling) and monotonic: a smaller or equal target is a no-op.
//
// Sizing is computed from x+1, not x: setting the first bit of a fresh word
// must still leave capacity > x.
func (b *Bitmap) grow(x int) {
	numWords := x/WordBits + 1
	if numWords <= len(b.words) {
		return
	}

	newWords := make([]byte, numWords)
	copy(newWords, b.words)
	b.words = newWords
}

// Set sets bit x to 1, growing the store if needed. Idempotent.
// A negative index returns ErrInvalidArgument.
func (b *Bitmap) Set(x int) error {
	if x < 0 {
		return fmt.Errorf("%w: negative bit index %d", ErrInvalidArgument, x)
	}

	b.grow(x)
	b.words[x/WordBits] |= 1 << (x % WordBits)

	return nil
}

// Remove clears bit x to 0. An index beyond the current capacity is a no-op,
// not an error: the bit is already conceptually unset. A negative index
// returns ErrInvalidArgument.
func (b *Bitmap) Remove(x int) error {
	if x < 0 {
		return fmt.Errorf("%w: negative bit index %d", ErrInvalidArgument, x)
	}
	if x >= b.Len() {
		return nil
	}

	b.words[x/WordBits] &^= 1 << (x % WordBits)

	return nil
}

// Clear zeroes every word in place. The capacity is unchanged.
func (b *Bitmap) Clear() {
	for i := range b.words {
		b.words[i] = 0
	}
}

// Filter visits every set bit index in ascending order and clears those for
// which keep returns false. Mutates in place. The predicate must not mutate
// the bitmap.
func (b *Bitmap) Filter(keep func(x int) bool) {
	for i, w := range b.words {
		for w != 0 {
			n := bits.TrailingZeros8(w)
			if !keep(i*WordBits + n) {
				b.words[i] &^= 1 << n
			}
			w &= w - 1
		}
	}
}

// Contains returns true if bit x is set. Indices beyond the current capacity
// (and negative indices) are unset by definition.
func (b *Bitmap) Contains(x int) bool {
	if x < 0 || x >= b.Len() {
		return false
	}

	return b.words[x/WordBits]&(1<<(x%WordBits)) != 0
}

// Count returns the population count: the number of bits set to 1.
func (b *Bitmap) Count() int {
	count := 0
	for _, w := range b.words {
		count += bits.OnesCount8(w)
	}

	return count
}

// IsEmpty returns true if no bit is set.
func (b *Bitmap) IsEmpty() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// Min returns the smallest set bit index, or -1 if the bitmap is empty.
func (b *Bitmap) Min() int {
	for i, w := range b.words {
		if w != 0 {
			return i*WordBits + bits.TrailingZeros8(w)
		}
	}

	return -1
}

// Max returns the largest set bit index, or -1 if the bitmap is empty.
func (b *Bitmap) Max() int {
	for i := len(b.words) - 1; i >= 0; i-- {
		if w := b.words[i]; w != 0 {
			return i*WordBits + bits.Len8(w) - 1
		}
	}

	return -1
}

// MinZero returns the smallest bit index whose bit is 0. If every bit up to
// the current capacity is set it returns the capacity itself, one past the
// end, signalling that finding a zero would require growing.
func (b *Bitmap) MinZero() int {
	for i, w := range b.words {
		if w != 0xFF {
			return i*WordBits + bits.TrailingZeros8(^w)
		}
	}

	return b.Len()
}

// MaxZero returns the largest bit index whose bit is 0, or -1 if every bit
// up to the current capacity is set.
func (b *Bitmap) MaxZero() int {
	for i := len(b.words) - 1; i >= 0; i-- {
		if w := b.words[i]; w != 0xFF {
			return i*WordBits + bits.Len8(^w) - 1
		}
	}

	return -1
}

// Len returns the current capacity in bits: the exclusive upper bound of
// addressable bit indices. Always a multiple of 8.
func (b *Bitmap) Len() int {
	return len(b.words) * WordBits
}

// Bytes returns a copy of the backing store.
func (b *Bitmap) Bytes() []byte {
	buf := make([]byte, len(b.words))
	copy(buf, b.words)

	return buf
}

// Clone returns a deep copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	words := make([]byte, len(b.words))
	copy(words, b.words)

	return &Bitmap{words: words}
}
