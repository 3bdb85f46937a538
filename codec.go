package bitvec

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// String renders the backing store as '0'/'1' characters, most significant
// bit first within each word, words in store order, with a single space
// between words for readability. Parse accepts the output unchanged.
func (b *Bitmap) String() string {
	var sb strings.Builder
	sb.Grow(len(b.words) * (WordBits + 1))

	for i, w := range b.words {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%08b", w)
	}

	return sb.String()
}

// Parse decodes the textual bitmap format produced by String. All whitespace
// is stripped first; the cleaned input must consist only of '0' and '1'
// characters and its length must be an exact multiple of 8, otherwise
// ErrInvalidFormat is returned. Each consecutive 8-character group becomes
// one word in store order, first character as the most significant bit.
func Parse(s string) (*Bitmap, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	if len(cleaned)%WordBits != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d", ErrInvalidFormat, len(cleaned), WordBits)
	}

	words := make([]byte, len(cleaned)/WordBits)
	for i := range words {
		group := cleaned[i*WordBits : (i+1)*WordBits]

		w, err := strconv.ParseUint(group, 2, WordBits)
		if err != nil {
			return nil, fmt.Errorf("%w: word %d: %q is not a binary group", ErrInvalidFormat, i, group)
		}

		words[i] = byte(w)
	}

	return &Bitmap{words: words}, nil
}
