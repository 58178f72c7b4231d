package huffman

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/icza/bitio"

	"github.com/sebargith/Proyecto-Estructuras-Codificacion-y-Compresi-n/internal/bitseq"
)

// containerMagic opens every packed Encoded stream.
var containerMagic = [4]byte{'H', 'U', 'F', '1'}

// Encoded is the complete compressed form of one input: the frequencies the
// tree is rebuilt from, the exact code bits, and the original length.
type Encoded struct {
	Freq   FrequencyTable
	Bits   bitseq.Sequence
	Length uint64
}

// Compress counts the frequencies of data, builds the tree and code table,
// and encodes data with them.
func Compress(data []byte) (*Encoded, error) {
	freq := CountFrequencies(data)
	codes := BuildCodes(BuildTree(freq))
	bits, err := Encode(data, codes)
	if err != nil {
		return nil, err
	}
	return &Encoded{Freq: freq, Bits: bits, Length: uint64(len(data))}, nil
}

// Tree rebuilds the Huffman tree from the stored frequencies.
func (enc *Encoded) Tree() Tree {
	return BuildTree(enc.Freq)
}

// Decompress decodes the stored bits and checks the result against the
// stored length.
func (enc *Encoded) Decompress() ([]byte, error) {
	out, err := Decode(enc.Bits, enc.Tree())
	if err != nil {
		return nil, err
	}
	if uint64(len(out)) != enc.Length {
		return nil, fmt.Errorf("%w: decoded %d bytes, expected %d", ErrMalformedStream, len(out), enc.Length)
	}
	return out, nil
}

// WriteTo serializes enc as:
//
//     "HUF1"
//     uvarint  original byte count
//     uvarint  number of distinct bytes k
//     k × { byte value, uvarint count }, ascending by byte value
//     uvarint  bit count
//     bits, most significant bit first, zero-padded to a byte boundary
//
func (enc *Encoded) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)

	bw.TryWrite(containerMagic[:])
	tryWriteUvarint(bw, enc.Length)
	symbols := enc.Freq.Symbols()
	tryWriteUvarint(bw, uint64(len(symbols)))
	for _, symbol := range symbols {
		bw.TryWriteByte(symbol)
		tryWriteUvarint(bw, enc.Freq.Count(symbol))
	}
	tryWriteUvarint(bw, uint64(enc.Bits.Len()))
	if bw.TryError != nil {
		return 0, bw.TryError
	}
	if err := enc.Bits.Pack(bw); err != nil {
		return 0, err
	}
	if err := bw.Close(); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

var _ io.WriterTo = (*Encoded)(nil)

// ReadEncoded parses a stream produced by Encoded.WriteTo.  It rejects
// streams whose header is inconsistent, whose bit count does not match the
// code lengths implied by the frequencies, or whose pad bits are not zero,
// so a spurious trailing symbol can never be decoded.
//
// ReadEncoded may read past the end of the packed stream when r does not
// implement io.ByteReader.
func ReadEncoded(r io.Reader) (*Encoded, error) {
	br := bitio.NewReader(r)

	var magic [4]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return nil, malformed("magic", err)
	}
	if magic != containerMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrMalformedStream, magic[:])
	}

	length, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, malformed("length", err)
	}

	numSymbols, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, malformed("symbol count", err)
	}
	if numSymbols > 256 {
		return nil, fmt.Errorf("%w: %d distinct symbols", ErrMalformedStream, numSymbols)
	}

	var freq FrequencyTable
	last := -1
	for i := uint64(0); i < numSymbols; i++ {
		symbol, err := br.ReadByte()
		if err != nil {
			return nil, malformed("symbol", err)
		}
		if int(symbol) <= last {
			return nil, fmt.Errorf("%w: symbol %#02x out of order", ErrMalformedStream, symbol)
		}
		last = int(symbol)
		count, err := binary.ReadUvarint(br)
		if err != nil {
			return nil, malformed("frequency", err)
		}
		if count == 0 {
			return nil, fmt.Errorf("%w: zero frequency for symbol %#02x", ErrMalformedStream, symbol)
		}
		freq.counts[symbol] = count
	}
	if total := freq.Total(); total != length {
		return nil, fmt.Errorf("%w: frequencies sum to %d, expected %d", ErrMalformedStream, total, length)
	}

	tree := BuildTree(freq)
	if depth := tree.MaxDepth(); depth > maxBitsPerCode {
		return nil, fmt.Errorf("%w: code longer than %d bits (%d)", ErrMalformedStream, maxBitsPerCode, depth)
	}

	numBits, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, malformed("bit count", err)
	}
	codes := BuildCodes(tree)
	if expect := codes.EncodedSize(freq); numBits != expect {
		return nil, fmt.Errorf("%w: %d bits, expected %d", ErrMalformedStream, numBits, expect)
	}
	if numBits > uint64(maxInt) {
		return nil, fmt.Errorf("%w: %d bits exceeds addressable size", ErrMalformedStream, numBits)
	}

	bits, err := bitseq.Unpack(br, int(numBits))
	if err != nil {
		return nil, malformed("bits", err)
	}
	return &Encoded{Freq: freq, Bits: bits, Length: length}, nil
}

const maxInt = int(^uint(0) >> 1)

func malformed(field string, err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("%w: reading %s: %v", ErrMalformedStream, field, err)
}

func tryWriteUvarint(w *bitio.Writer, x uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], x)
	w.TryWrite(tmp[:n])
}
