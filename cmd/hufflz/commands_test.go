package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebargith/Proyecto-Estructuras-Codificacion-y-Compresi-n/huffman"
	"github.com/sebargith/Proyecto-Estructuras-Codificacion-y-Compresi-n/lz77"
)

var sampleText = []byte(strings.Repeat("peter piper picked a peck of pickled peppers\n", 30))

func writeSample(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "sample.txt")
	if err := os.WriteFile(path, sampleText, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	return data
}

func TestCommandHuff_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := writeSample(t, dir)
	packed := filepath.Join(dir, "sample.huf")
	restored := filepath.Join(dir, "sample.out")

	var stdout bytes.Buffer
	if err := CommandHuff(in, packed, true, &stdout); err != nil {
		t.Fatalf("CommandHuff failed: %v", err)
	}
	if !strings.Contains(stdout.String(), "Packed size:") {
		t.Errorf("expected verbose output, got %q", stdout.String())
	}
	if len(readFile(t, packed)) >= len(sampleText) {
		t.Errorf("expected packed output to be smaller than the input")
	}

	if err := CommandUnhuff(packed, restored, false, &stdout); err != nil {
		t.Fatalf("CommandUnhuff failed: %v", err)
	}
	if !bytes.Equal(sampleText, readFile(t, restored)) {
		t.Errorf("round trip mismatch")
	}
}

func TestCommandLZ_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := writeSample(t, dir)
	packed := filepath.Join(dir, "sample.lzt")
	restored := filepath.Join(dir, "sample.out")

	for _, p := range []lz77.Params{lz77.DefaultParams, lz77.ShortWindowParams} {
		var stdout bytes.Buffer
		if err := CommandLZ(in, packed, p, true, &stdout); err != nil {
			t.Fatalf("%v: CommandLZ failed: %v", p, err)
		}
		if !strings.Contains(stdout.String(), "Longest match:") {
			t.Errorf("%v: expected verbose output, got %q", p, stdout.String())
		}
		if err := CommandUnLZ(packed, restored, 1<<20, false, &stdout); err != nil {
			t.Fatalf("%v: CommandUnLZ failed: %v", p, err)
		}
		if !bytes.Equal(sampleText, readFile(t, restored)) {
			t.Errorf("%v: round trip mismatch", p)
		}
	}
}

func TestCommandUnhuff_MalformedLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	in := writeSample(t, dir)
	out := filepath.Join(dir, "never.out")

	var stdout bytes.Buffer
	err := CommandUnhuff(in, out, false, &stdout)
	if !errors.Is(err, huffman.ErrMalformedStream) {
		t.Errorf("expected ErrMalformedStream, got %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("expected no output file, got stat error %v", err)
	}

	err = CommandUnLZ(in, out, 1<<20, false, &stdout)
	if !errors.Is(err, lz77.ErrMalformedTokens) {
		t.Errorf("expected ErrMalformedTokens, got %v", err)
	}
}

func TestWriteOutput_RemovesOnError(t *testing.T) {
	out := filepath.Join(t.TempDir(), "partial")
	boom := errors.New("boom")
	err := writeOutput(out, func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("expected partial output to be removed, got stat error %v", err)
	}
}

func TestCommandCodes(t *testing.T) {
	dir := t.TempDir()
	in := writeSample(t, dir)
	chart := filepath.Join(dir, "codes.svg")

	var stdout bytes.Buffer
	if err := CommandCodes(in, chart, true, &stdout); err != nil {
		t.Fatalf("CommandCodes failed: %v", err)
	}
	for _, want := range []string{"FrequencyTable{", "Tree{", "CodeTable{", "Lookup('p') = ", "Encoded size: "} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
	if !bytes.HasPrefix(readFile(t, chart), []byte("<svg")) {
		t.Errorf("expected an SVG chart")
	}
}

func TestCommandTokens(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "ababab")
	if err := os.WriteFile(in, []byte("abababc"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	var stdout bytes.Buffer
	if err := CommandTokens(in, "", lz77.DefaultParams, &stdout); err != nil {
		t.Fatalf("CommandTokens failed: %v", err)
	}
	expect := strings.Join([]string{
		"       0 (0,0,'a')\n",
		"       1 (0,0,'b')\n",
		"       2 (2,4,'c')\n",
	}, "")
	if actual := stdout.String(); actual != expect {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}

func TestCommandBench(t *testing.T) {
	dir := t.TempDir()
	in := writeSample(t, dir)

	var stdout bytes.Buffer
	if err := CommandBench([]string{in}, lz77.DefaultParams, &stdout); err != nil {
		t.Fatalf("CommandBench failed: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %q", stdout.String())
	}
	if lines[0]+"\n" != benchHeader {
		t.Errorf("wrong header: %q", lines[0])
	}
	fields := strings.Split(lines[1], ";")
	if len(fields) != 8 || fields[0] != "sample.txt" {
		t.Errorf("wrong row: %q", lines[1])
	}
}

func TestCommandUnLZ_OutputLimit(t *testing.T) {
	dir := t.TempDir()
	in := writeSample(t, dir)
	packed := filepath.Join(dir, "sample.lzt")
	out := filepath.Join(dir, "never.out")

	var stdout bytes.Buffer
	if err := CommandLZ(in, packed, lz77.DefaultParams, false, &stdout); err != nil {
		t.Fatalf("CommandLZ failed: %v", err)
	}
	err := CommandUnLZ(packed, out, len(sampleText)-1, false, &stdout)
	if !errors.Is(err, lz77.ErrOutputTooLarge) {
		t.Errorf("expected ErrOutputTooLarge, got %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("expected no output file, got stat error %v", err)
	}
}
