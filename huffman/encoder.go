package huffman

import (
	"fmt"

	"github.com/sebargith/Proyecto-Estructuras-Codificacion-y-Compresi-n/internal/bitseq"
)

// Encode concatenates the Code of each byte of data, in input order.
//
// It fails with ErrUnknownSymbol if data holds a byte that has no entry in
// table, which only happens when table was built from a different input.
func Encode(data []byte, table CodeTable) (bitseq.Sequence, error) {
	var out bitseq.Sequence
	for offset, b := range data {
		hc, found := table.Lookup(b)
		if !found {
			return bitseq.Sequence{}, fmt.Errorf("%w: byte %#02x at offset %d", ErrUnknownSymbol, b, offset)
		}
		out.AppendBits(hc.Bits, hc.Size)
	}
	return out, nil
}
