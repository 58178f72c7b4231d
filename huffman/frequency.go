package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// FrequencyTable counts how many times each byte value occurs in an input.
// Only bytes with a non-zero count are considered present.
type FrequencyTable struct {
	counts [256]uint64
}

// CountFrequencies builds the FrequencyTable for data.
func CountFrequencies(data []byte) FrequencyTable {
	var ft FrequencyTable
	for _, b := range data {
		ft.counts[b]++
	}
	return ft
}

// MakeFrequencyTable builds a FrequencyTable from explicit counts.  Bytes not
// mentioned in counts have a count of zero.
func MakeFrequencyTable(counts map[byte]uint64) FrequencyTable {
	var ft FrequencyTable
	for b, n := range counts {
		ft.counts[b] = n
	}
	return ft
}

// Count returns the number of occurrences of b.
func (ft FrequencyTable) Count(b byte) uint64 {
	return ft.counts[b]
}

// Has reports whether b occurs at least once.
func (ft FrequencyTable) Has(b byte) bool {
	return ft.counts[b] != 0
}

// Len returns the number of distinct bytes present.
func (ft FrequencyTable) Len() int {
	var n int
	for _, count := range ft.counts {
		if count != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts, i.e. the length of the input.
func (ft FrequencyTable) Total() uint64 {
	var sum uint64
	for _, count := range ft.counts {
		sum = saturatingAdd(sum, count)
	}
	return sum
}

// Symbols returns the present bytes in ascending order.
func (ft FrequencyTable) Symbols() []byte {
	out := make([]byte, 0, ft.Len())
	for symbol, count := range ft.counts {
		if count != 0 {
			out = append(out, byte(symbol))
		}
	}
	return out
}

// Dump writes a programmer-readable listing of the present bytes and their
// counts to the given writer.
func (ft FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	for _, symbol := range ft.Symbols() {
		fmt.Fprintf(&buf, "\tCount(%q) = %d\n", symbol, ft.counts[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
