package lz77

import (
	"fmt"
)

// maxPrealloc caps the output buffer Decompress allocates up front.  It does
// not bound the output itself; use DecompressLimit for untrusted tokens.
const maxPrealloc = 1 << 20

// Decompress replays tokens into the bytes they encode.
//
// Copies are done one byte at a time, so a token whose Length exceeds its
// Offset repeats the bytes it has just produced.  Decompress fails with
// ErrInvalidOffset if a token points before the start of the output, or has
// a non-zero Length with a zero Offset.  It returns no partial output on
// failure.
//
// The output size is only bounded by the addressable size.  A single token
// may legitimately ask for a very long copy, so tokens read from an
// untrusted source should go through DecompressLimit instead.
func Decompress(tokens []Token) ([]byte, error) {
	return DecompressLimit(tokens, maxInt)
}

// DecompressLimit is Decompress, but fails with ErrOutputTooLarge before
// producing any output if the tokens would decompress to more than limit
// bytes.
func DecompressLimit(tokens []Token, limit int) ([]byte, error) {
	size := 0
	for index, tok := range tokens {
		if tok.Offset < 0 || tok.Length < 0 {
			return nil, fmt.Errorf("%w: token %d %v has a negative field", ErrInvalidOffset, index, tok)
		}
		n := tok.Size()
		if n < 0 || n > limit-size {
			return nil, fmt.Errorf("%w: token %d %v goes past %d bytes", ErrOutputTooLarge, index, tok, limit)
		}
		size += n
	}

	prealloc := size
	if prealloc > maxPrealloc {
		prealloc = maxPrealloc
	}
	out := make([]byte, 0, prealloc)
	for index, tok := range tokens {
		if tok.Offset > len(out) {
			return nil, fmt.Errorf("%w: token %d %v reaches back %d bytes, only %d written", ErrInvalidOffset, index, tok, tok.Offset, len(out))
		}
		if tok.Length > 0 {
			if tok.Offset == 0 {
				return nil, fmt.Errorf("%w: token %d %v copies from offset 0", ErrInvalidOffset, index, tok)
			}
			start := len(out) - tok.Offset
			for k := 0; k < tok.Length; k++ {
				out = append(out, out[start+k])
			}
		}
		if tok.HasLiteral {
			out = append(out, tok.Literal)
		}
	}
	return out, nil
}
