// Package bitvec provides a dynamically growable bit-vector for dense
// set-membership workloads such as inverted and bitmap indexes.
//
// # Design
//
// A Bitmap is a single flat byte store: one 8-bit word per 8 consecutive bit
// indices, least significant bit first within the word. There is no
// compression and no container dispatch; every operation is a linear walk
// over the words (or over the set bits, for iteration), which keeps latency
// predictable and the implementation small.
//
// Growth is exact-fit: a Set beyond the current capacity reallocates the
// minimal store that covers the new index and copies the old words in.
// Capacity only ever grows, always in whole words, and growth never
// disturbs previously set bits.
//
// Memory layout:
//
//	┌─────────────┬─────────────┬─────────────┬─────
//	│  word 0     │  word 1     │  word 2     │ ...
//	│  bits [0,7] │  bits [8,15]│  bits [16,23]
//	└─────────────┴─────────────┴─────────────┴─────
//
// # Usage
//
//	b := bitvec.New()
//	_ = b.Set(3)
//	_ = b.Set(100) // grows automatically
//
//	if b.Contains(3) {
//	    ...
//	}
//
//	for x := range b.All() {
//	    fmt.Println(x)
//	}
//
// Set algebra (And, Or, Xor, AndNot) always returns a new Bitmap and never
// mutates or aliases the operands. The textual codec (String, Parse) is the
// only external representation: '0'/'1' characters grouped in eights, most
// significant bit first per word.
//
// A Bitmap is not safe for concurrent use.
package bitvec
