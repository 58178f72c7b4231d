package lz77

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// containerMagic opens every token container.
var containerMagic = [4]byte{'L', 'Z', 'T', '1'}

const flagFinalWithoutLiteral = 0x01

// fieldWidth returns the smallest of 1, 2, 4, or 8 bytes that holds limit.
func fieldWidth(limit uint64) byte {
	switch {
	case limit <= 0xff:
		return 1
	case limit <= 0xffff:
		return 2
	case limit <= 0xffffffff:
		return 4
	default:
		return 8
	}
}

func validWidth(width byte) bool {
	return width == 1 || width == 2 || width == 4 || width == 8
}

func putField(buf []byte, width byte, v uint64) {
	switch width {
	case 1:
		buf[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(buf, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(buf, uint32(v))
	default:
		binary.LittleEndian.PutUint64(buf, v)
	}
}

func getField(buf []byte, width byte) uint64 {
	switch width {
	case 1:
		return uint64(buf[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(buf))
	case 4:
		return uint64(binary.LittleEndian.Uint32(buf))
	default:
		return binary.LittleEndian.Uint64(buf)
	}
}

func fieldMax(width byte) uint64 {
	if width >= 8 {
		return ^uint64(0)
	}
	return 1<<(8*uint(width)) - 1
}

// WriteTokens serializes tokens as fixed-width records:
//
//     "LZT1"
//     byte     offset width in bytes (1, 2, 4, or 8), sized for p.WindowSize
//     byte     length width in bytes, sized for p.MaxMatchLength, or for the
//              longest match when the length is unbounded
//     byte     flags; bit 0 set when the final token has no literal
//     uvarint  token count
//     count × { offset, length (little-endian), literal byte }
//
// The final token's literal byte is written as 0 when it has none.  Only the
// final token may lack a literal.
func WriteTokens(w io.Writer, tokens []Token, p Params) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	offsetWidth := fieldWidth(uint64(p.WindowSize))
	maxLen := p.MaxMatchLength
	if maxLen == 0 {
		maxLen = Summarize(tokens).LongestMatch
	}
	lengthWidth := fieldWidth(uint64(maxLen))

	var flags byte
	for index, tok := range tokens {
		if tok.HasLiteral {
			continue
		}
		if index != len(tokens)-1 {
			return 0, fmt.Errorf("%w: token %d %v has no literal but is not last", ErrInvalidParams, index, tok)
		}
		flags |= flagFinalWithoutLiteral
	}

	var buf bytes.Buffer
	buf.Write(containerMagic[:])
	buf.WriteByte(offsetWidth)
	buf.WriteByte(lengthWidth)
	buf.WriteByte(flags)
	var tmp [binary.MaxVarintLen64]byte
	buf.Write(tmp[:binary.PutUvarint(tmp[:], uint64(len(tokens)))])

	record := make([]byte, int(offsetWidth)+int(lengthWidth)+1)
	for index, tok := range tokens {
		if tok.Offset < 0 || uint64(tok.Offset) > fieldMax(offsetWidth) {
			return 0, fmt.Errorf("%w: token %d %v: offset does not fit in %d bytes", ErrInvalidParams, index, tok, offsetWidth)
		}
		if tok.Length < 0 || uint64(tok.Length) > fieldMax(lengthWidth) {
			return 0, fmt.Errorf("%w: token %d %v: length does not fit in %d bytes", ErrInvalidParams, index, tok, lengthWidth)
		}
		putField(record, offsetWidth, uint64(tok.Offset))
		putField(record[offsetWidth:], lengthWidth, uint64(tok.Length))
		record[len(record)-1] = tok.Literal
		if !tok.HasLiteral {
			record[len(record)-1] = 0
		}
		buf.Write(record)
	}
	return buf.WriteTo(w)
}

// ReadTokens parses a stream produced by WriteTokens.  It may read past the
// end of the container when r does not implement io.ByteReader.
func ReadTokens(r io.Reader) ([]Token, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		buffered := bufio.NewReader(r)
		r, br = buffered, buffered
	}

	var header [7]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, malformed("header", err)
	}
	if !bytes.Equal(header[:4], containerMagic[:]) {
		return nil, fmt.Errorf("%w: bad magic %q", ErrMalformedTokens, header[:4])
	}
	offsetWidth, lengthWidth, flags := header[4], header[5], header[6]
	if !validWidth(offsetWidth) || !validWidth(lengthWidth) {
		return nil, fmt.Errorf("%w: field widths %d/%d", ErrMalformedTokens, offsetWidth, lengthWidth)
	}
	if flags&^flagFinalWithoutLiteral != 0 {
		return nil, fmt.Errorf("%w: unknown flags %#02x", ErrMalformedTokens, flags)
	}

	count, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, malformed("token count", err)
	}
	if count == 0 && flags != 0 {
		return nil, fmt.Errorf("%w: flags %#02x on an empty stream", ErrMalformedTokens, flags)
	}

	prealloc := count
	if prealloc > maxPrealloc/8 {
		prealloc = maxPrealloc / 8
	}
	tokens := make([]Token, 0, prealloc)
	record := make([]byte, int(offsetWidth)+int(lengthWidth)+1)
	for i := uint64(0); i < count; i++ {
		if _, err := io.ReadFull(r, record); err != nil {
			return nil, malformed(fmt.Sprintf("token %d", i), err)
		}
		offset := getField(record, offsetWidth)
		length := getField(record[offsetWidth:], lengthWidth)
		if offset > uint64(maxInt) || length > uint64(maxInt) {
			return nil, fmt.Errorf("%w: token %d exceeds addressable size", ErrMalformedTokens, i)
		}
		tok := Token{
			Offset:     int(offset),
			Length:     int(length),
			Literal:    record[len(record)-1],
			HasLiteral: true,
		}
		if i == count-1 && flags&flagFinalWithoutLiteral != 0 {
			tok.Literal, tok.HasLiteral = 0, false
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

const maxInt = int(^uint(0) >> 1)

func malformed(field string, err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("%w: reading %s: %v", ErrMalformedTokens, field, err)
}
