// Package bitseq holds an exact-length sequence of bits, plus the helpers
// that pack it into bytes and read it back.
package bitseq

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// maxPrealloc caps the buffer Unpack allocates up front, so a corrupt bit count
// fails on a short read instead of on a huge allocation.
const maxPrealloc = 1 << 16

// ErrInvalidBit is returned by Parse for any character other than '0' or '1'.
var ErrInvalidBit = errors.New("bitseq: invalid bit character")

// Sequence is an ordered run of bits.  Bits are stored most significant bit
// first within each byte, and the final byte is zero-padded.  The exact bit
// count is tracked separately, so padding never becomes part of the sequence.
//
// The zero value is an empty Sequence ready for use.
type Sequence struct {
	buf []byte
	n   int
}

// Parse builds a Sequence from its textual "0101" form.
func Parse(str string) (Sequence, error) {
	var s Sequence
	s.Grow(len(str))
	for index, ch := range str {
		switch ch {
		case '0':
			s.AppendBit(0)
		case '1':
			s.AppendBit(1)
		default:
			return Sequence{}, fmt.Errorf("%w: %q at index %d", ErrInvalidBit, ch, index)
		}
	}
	return s, nil
}

// MustParse is like Parse but panics on error.  Intended for tests and
// package-level tables.
func MustParse(str string) Sequence {
	s, err := Parse(str)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of bits in the sequence.
func (s Sequence) Len() int {
	return s.n
}

// Grow reserves room for at least n more bits.
func (s *Sequence) Grow(n int) {
	need := (s.n + n + 7) >> 3
	if need <= cap(s.buf) {
		return
	}
	buf := make([]byte, len(s.buf), need)
	copy(buf, s.buf)
	s.buf = buf
}

// AppendBit appends a single bit.  Any non-zero value counts as 1.
func (s *Sequence) AppendBit(bit byte) {
	if s.n&7 == 0 {
		s.buf = append(s.buf, 0)
	}
	if bit != 0 {
		s.buf[s.n>>3] |= 0x80 >> uint(s.n&7)
	}
	s.n++
}

// AppendBits appends the low size bits of bits, most significant first.
func (s *Sequence) AppendBits(bits uint64, size byte) {
	assert.Assertf(size <= 64, "size %d > 64", size)
	s.Grow(int(size))
	for i := int(size) - 1; i >= 0; i-- {
		s.AppendBit(byte(bits>>uint(i)) & 1)
	}
}

// At returns the bit at index i as 0 or 1.
func (s Sequence) At(i int) byte {
	assert.Assertf(i >= 0 && i < s.n, "index %d out of range [0, %d)", i, s.n)
	return (s.buf[i>>3] >> (7 - uint(i&7))) & 1
}

// Bytes returns the packed form of the sequence: ceil(Len()/8) bytes with the
// trailing pad bits set to zero.  The result aliases the Sequence.
func (s Sequence) Bytes() []byte {
	return s.buf
}

// Equal reports whether two sequences hold the same bits.
func (s Sequence) Equal(other Sequence) bool {
	if s.n != other.n {
		return false
	}
	for i := range s.buf {
		if s.buf[i] != other.buf[i] {
			return false
		}
	}
	return true
}

// String returns the sequence as a string of '0' and '1' characters.
func (s Sequence) String() string {
	var sb strings.Builder
	sb.Grow(s.n)
	for i := 0; i < s.n; i++ {
		sb.WriteByte('0' + s.At(i))
	}
	return sb.String()
}

var _ fmt.Stringer = Sequence{}

// Pack packs the sequence into w and then aligns w to a byte boundary with
// zero bits.  The bit count is not written; callers record it themselves.
func (s Sequence) Pack(w *bitio.Writer) error {
	full := s.n >> 3
	for i := 0; i < full; i++ {
		if err := w.WriteByte(s.buf[i]); err != nil {
			return err
		}
	}
	if rem := uint8(s.n & 7); rem != 0 {
		if err := w.WriteBits(uint64(s.buf[full]>>(8-rem)), rem); err != nil {
			return err
		}
	}
	_, err := w.Align()
	return err
}

// Unpack reads exactly n bits from r, then consumes the pad bits up to the next
// byte boundary.  It fails if any pad bit is set, since a well-formed writer
// always pads with zeros.
func Unpack(r *bitio.Reader, n int) (Sequence, error) {
	var s Sequence
	if n < 0 {
		return s, fmt.Errorf("bitseq: negative bit count %d", n)
	}
	s.buf = make([]byte, 0, minInt((n+7)>>3, maxPrealloc))
	for s.n+8 <= n {
		b, err := r.ReadByte()
		if err != nil {
			return Sequence{}, err
		}
		s.buf = append(s.buf, b)
		s.n += 8
	}
	if rem := uint8(n - s.n); rem != 0 {
		bits, err := r.ReadBits(rem)
		if err != nil {
			return Sequence{}, err
		}
		pad := 8 - rem
		tail, err := r.ReadBits(pad)
		if err != nil {
			return Sequence{}, err
		}
		if tail != 0 {
			return Sequence{}, fmt.Errorf("bitseq: non-zero pad bits %#b after %d bits", tail, n)
		}
		s.buf = append(s.buf, byte(bits)<<pad)
		s.n = n
	}
	return s, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
