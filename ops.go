package bitvec

// And returns the intersection as a new bitmap. Neither operand is mutated.
//
// The result keeps the receiver's capacity. A bit absent from other is
// implicitly unset, so receiver words beyond other's store are cleared in
// the result rather than carried over.
func (b *Bitmap) And(other *Bitmap) *Bitmap {
	out := b.Clone()

	n := min(len(out.words), len(other.words))
	for i := 0; i < n; i++ {
		out.words[i] &= other.words[i]
	}
	for i := n; i < len(out.words); i++ {
		out.words[i] = 0
	}

	return out
}

// AndNot returns the difference (bits set in the receiver but not in other)
// as a new bitmap. Neither operand is mutated.
//
// The result keeps the receiver's capacity. Receiver words beyond other's
// store are left untouched: there is nothing to subtract there.
func (b *Bitmap) AndNot(other *Bitmap) *Bitmap {
	out := b.Clone()

	n := min(len(out.words), len(other.words))
	for i := 0; i < n; i++ {
		out.words[i] &^= other.words[i]
	}

	return out
}

// Or returns the union as a new bitmap. Neither operand is mutated.
//
// The result capacity is the larger of the two operands' capacities, so bits
// that exist only in the larger operand are never dropped.
func (b *Bitmap) Or(other *Bitmap) *Bitmap {
	out := b.Clone()
	if len(other.words) > len(out.words) {
		out.grow(len(other.words)*WordBits - 1)
	}

	for i, w := range other.words {
		out.words[i] |= w
	}

	return out
}

// Xor returns the symmetric difference as a new bitmap. Neither operand is
// mutated. The capacity rule matches Or: missing words on either side are
// treated as zero.
func (b *Bitmap) Xor(other *Bitmap) *Bitmap {
	out := b.Clone()
	if len(other.words) > len(out.words) {
		out.grow(len(other.words)*WordBits - 1)
	}

	for i, w := range other.words {
		out.words[i] ^= w
	}

	return out
}
