package huffman

import (
	"errors"
)

// ErrUnknownSymbol is returned by Encode when the input holds a byte that has
// no entry in the CodeTable.  It means the table was built for a different
// input.
var ErrUnknownSymbol = errors.New("huffman: unknown symbol")

// ErrMalformedStream is returned when a bit sequence or a packed stream does
// not resolve cleanly into leaves of the tree.
var ErrMalformedStream = errors.New("huffman: malformed stream")
