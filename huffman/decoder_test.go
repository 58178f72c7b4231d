package huffman

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebargith/Proyecto-Estructuras-Codificacion-y-Compresi-n/internal/bitseq"
)

func TestDecode(t *testing.T) {
	type testRow struct {
		name   string
		freqOf string
		bits   string
		expect string
	}

	testData := [...]testRow{
		{name: "empty", freqOf: "", bits: "", expect: ""},
		{name: "no bits", freqOf: "abcd", bits: "", expect: ""},
		{name: "single", freqOf: "aaaa", bits: "000", expect: "aaa"},
		{name: "balanced", freqOf: "abcd", bits: "11100100", expect: "dcba"},
		{name: "skewed", freqOf: "abcc", bits: "0101100", expect: "cabc"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			tree := BuildTree(CountFrequencies([]byte(row.freqOf)))
			actual, err := Decode(bitseq.MustParse(row.bits), tree)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if string(actual) != row.expect {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.expect, actual)
			}
		})
	}
}

func TestDecode_MalformedStream(t *testing.T) {
	type testRow struct {
		name   string
		freqOf string
		bits   string
	}

	testData := [...]testRow{
		{name: "empty tree", freqOf: "", bits: "0"},
		{name: "truncated", freqOf: "abcd", bits: "000"},
		{name: "single leaf one bit", freqOf: "aaaa", bits: "0010"},
		{name: "ends mid-code", freqOf: "abcc", bits: "01"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			tree := BuildTree(CountFrequencies([]byte(row.freqOf)))
			_, err := Decode(bitseq.MustParse(row.bits), tree)
			if !errors.Is(err, ErrMalformedStream) {
				t.Errorf("expected ErrMalformedStream, got %v", err)
			}
		})
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	inputs := testInputs()
	inputs["empty"] = []byte{}
	inputs["single"] = []byte("aaaa")
	for name, data := range inputs {
		t.Run(name, func(t *testing.T) {
			tree := BuildTree(CountFrequencies(data))
			bits, err := Encode(data, BuildCodes(tree))
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			actual, err := Decode(bits, tree)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !bytes.Equal(data, actual) {
				t.Errorf("round trip mismatch for %d bytes", len(data))
			}
		})
	}
}
