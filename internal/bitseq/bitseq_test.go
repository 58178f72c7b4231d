package bitseq

import (
	"bytes"
	"errors"
	"testing"

	"github.com/icza/bitio"
)

func TestSequence_AppendBits(t *testing.T) {
	var s Sequence
	s.AppendBits(0x5, 3)
	s.AppendBits(0x0, 1)
	s.AppendBits(0x1ff, 9)

	expectString := "1010111111111"
	actualString := s.String()
	if expectString != actualString {
		t.Errorf("wrong bits:\n\texpect: %s\n\tactual: %s", expectString, actualString)
	}

	expectBytes := []byte{0xaf, 0xf8}
	actualBytes := s.Bytes()
	if !bytes.Equal(expectBytes, actualBytes) {
		t.Errorf("wrong packed bytes:\n\texpect: %#v\n\tactual: %#v", expectBytes, actualBytes)
	}

	if s.Len() != 13 {
		t.Errorf("expected Len() = 13, got %d", s.Len())
	}
}

func TestParse(t *testing.T) {
	type testRow struct {
		input string
		fails bool
	}

	testData := [...]testRow{
		{input: ""},
		{input: "0"},
		{input: "1"},
		{input: "0110100111"},
		{input: "01x", fails: true},
		{input: "2", fails: true},
	}
	for _, row := range testData {
		t.Run(row.input, func(t *testing.T) {
			s, err := Parse(row.input)
			if row.fails {
				if !errors.Is(err, ErrInvalidBit) {
					t.Errorf("expected ErrInvalidBit, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if actual := s.String(); actual != row.input {
				t.Errorf("wrong round trip:\n\texpect: %s\n\tactual: %s", row.input, actual)
			}
		})
	}
}

func TestSequence_Equal(t *testing.T) {
	a := MustParse("1011")
	b := MustParse("1011")
	c := MustParse("10110")
	if !a.Equal(b) {
		t.Errorf("expected %s == %s", a, b)
	}
	if a.Equal(c) {
		t.Errorf("expected %s != %s", a, c)
	}
}

func TestSequence_PackUnpack(t *testing.T) {
	for _, str := range []string{"", "1", "10101010", "101010101", "0000000000000001"} {
		t.Run(str, func(t *testing.T) {
			s := MustParse(str)

			var buf bytes.Buffer
			w := bitio.NewWriter(&buf)
			if err := s.Pack(w); err != nil {
				t.Fatalf("Pack failed: %v", err)
			}
			if err := w.WriteByte(0x7e); err != nil {
				t.Fatalf("WriteByte failed: %v", err)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("Close failed: %v", err)
			}

			expectLen := (len(str)+7)/8 + 1
			if buf.Len() != expectLen {
				t.Errorf("expected %d packed bytes, got %d", expectLen, buf.Len())
			}

			r := bitio.NewReader(&buf)
			actual, err := Unpack(r, len(str))
			if err != nil {
				t.Fatalf("Unpack failed: %v", err)
			}
			if !actual.Equal(s) {
				t.Errorf("wrong bits:\n\texpect: %s\n\tactual: %s", s, actual)
			}
			trailer, err := r.ReadByte()
			if err != nil || trailer != 0x7e {
				t.Errorf("expected trailer 0x7e, got %#x (%v)", trailer, err)
			}
		})
	}
}

func TestUnpack_RejectsPadBits(t *testing.T) {
	r := bitio.NewReader(bytes.NewReader([]byte{0xa1}))
	if _, err := Unpack(r, 3); err == nil {
		t.Errorf("expected an error for non-zero pad bits")
	}
}

func TestUnpack_Truncated(t *testing.T) {
	r := bitio.NewReader(bytes.NewReader([]byte{0xff}))
	if _, err := Unpack(r, 12); err == nil {
		t.Errorf("expected an error for a truncated sequence")
	}
}
