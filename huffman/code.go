package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// maxBitsPerCode is the longest code a Code can hold.  Reaching it requires
// Fibonacci-shaped frequencies summing to more than 10^13 bytes.
const maxBitsPerCode = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the low Size bits is the first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

// HasPrefix reports whether prefix is a prefix of hc.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

var _ fmt.Stringer = Code{}

// CodeTable maps each present byte value to its Code.
type CodeTable struct {
	codes   [256]Code
	count   int
	minSize byte
	maxSize byte
}

// BuildCodes derives the CodeTable of a Tree: walking left appends a 0 bit,
// walking right appends a 1 bit, and each leaf receives the path from the
// root.  A Tree consisting of a single leaf assigns that byte the code "0".
func BuildCodes(t Tree) CodeTable {
	var ct CodeTable
	if t.Empty() {
		return ct
	}

	root := t.Node(t.Root())
	if root.IsLeaf() {
		ct.set(root.Symbol, MakeCode(1, 0))
		return ct
	}

	// Walk the tree with an explicit stack.  The depth of an item is the
	// size of its code; natural depth is bounded by the alphabet size.
	type stackItem struct {
		id   NodeID
		code Code
	}

	stack := make([]stackItem, 0, log2uint32(uint32(t.Len()))+1)
	stack = append(stack, stackItem{id: t.Root()})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := t.Node(top.id)
		if node.IsLeaf() {
			ct.set(node.Symbol, top.code)
			continue
		}

		assert.Assertf(top.code.Size < maxBitsPerCode, "Huffman code for node %d exceeds %d bits", top.id, maxBitsPerCode)
		size := top.code.Size + 1
		bits := top.code.Bits << 1

		// Push right first so that the left subtree is visited first.
		stack = append(stack, stackItem{node.Right, MakeCode(size, bits|1)})
		stack = append(stack, stackItem{node.Left, MakeCode(size, bits)})
	}
	return ct
}

func (ct *CodeTable) set(symbol byte, hc Code) {
	assert.Assertf(hc.Size != 0, "empty code for symbol %d", symbol)
	assert.Assertf(ct.codes[symbol].Size == 0, "duplicate leaf for symbol %d", symbol)
	ct.codes[symbol] = hc
	if ct.count == 0 {
		ct.minSize = hc.Size
		ct.maxSize = hc.Size
	} else if ct.minSize > hc.Size {
		ct.minSize = hc.Size
	} else if ct.maxSize < hc.Size {
		ct.maxSize = hc.Size
	}
	ct.count++
}

// Lookup returns the Code for a byte value, if it has one.
func (ct CodeTable) Lookup(symbol byte) (Code, bool) {
	hc := ct.codes[symbol]
	return hc, hc.Size != 0
}

// Len returns the number of byte values that have a Code.
func (ct CodeTable) Len() int {
	return ct.count
}

// MinSize is the bit length of the shortest code.
func (ct CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct CodeTable) MaxSize() byte {
	return ct.maxSize
}

// SizeBySymbol returns an array containing the bit length for each byte
// value, with 0 for bytes that have no Code.
func (ct CodeTable) SizeBySymbol() []byte {
	out := make([]byte, len(ct.codes))
	for symbol, hc := range ct.codes {
		out[symbol] = hc.Size
	}
	return out
}

// EncodedSize returns the total number of bits that encoding an input with
// the given frequencies produces.  Bytes without a Code are ignored.
func (ct CodeTable) EncodedSize(ft FrequencyTable) uint64 {
	var total uint64
	for symbol, hc := range ct.codes {
		total = saturatingAdd(total, uint64(hc.Size)*ft.Count(byte(symbol)))
	}
	return total
}

// Dump writes a programmer-readable debugging dump of the CodeTable's
// current state to the given writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for symbol, hc := range ct.codes {
		if hc.Size != 0 {
			fmt.Fprintf(&buf, "\tLookup(%q) = %s\n", byte(symbol), hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
