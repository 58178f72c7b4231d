package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sebargith/Proyecto-Estructuras-Codificacion-y-Compresi-n/huffman"
	"github.com/sebargith/Proyecto-Estructuras-Codificacion-y-Compresi-n/internal/report"
	"github.com/sebargith/Proyecto-Estructuras-Codificacion-y-Compresi-n/lz77"
)

// writeOutput creates path and fills it with fn.  The file is removed again
// when fn fails, so a failed command never leaves partial output behind.
func writeOutput(path string, fn func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = fn(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return err
	}
	return nil
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(part) / float64(total)
}

// CommandHuff packs the file at in into a Huffman container at out.
func CommandHuff(in, out string, verbose bool, stdout io.Writer) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	enc, err := huffman.Compress(data)
	if err != nil {
		return err
	}

	var written int64
	err = writeOutput(out, func(w io.Writer) error {
		written, err = enc.WriteTo(w)
		return err
	})
	if err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(stdout, "Original size:  %8d\n", len(data))
		fmt.Fprintf(stdout, "Distinct bytes: %8d\n", enc.Freq.Len())
		fmt.Fprintf(stdout, "Encoded bits:   %8d\n", enc.Bits.Len())
		fmt.Fprintf(stdout, "Packed size:    %8d (%.1f%%)\n", written, percent(int(written), len(data)))
	}
	return nil
}

// CommandUnhuff restores a file packed by CommandHuff.
func CommandUnhuff(in, out string, verbose bool, stdout io.Writer) error {
	packed, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	enc, err := huffman.ReadEncoded(bytes.NewReader(packed))
	if err != nil {
		return err
	}
	data, err := enc.Decompress()
	if err != nil {
		return err
	}

	err = writeOutput(out, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
	if err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(stdout, "Packed size:   %8d\n", len(packed))
		fmt.Fprintf(stdout, "Restored size: %8d\n", len(data))
	}
	return nil
}

// CommandLZ packs the file at in into an LZ77 token container at out.
func CommandLZ(in, out string, p lz77.Params, verbose bool, stdout io.Writer) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	tokens, err := lz77.Compress(data, p)
	if err != nil {
		return err
	}

	var written int64
	err = writeOutput(out, func(w io.Writer) error {
		written, err = lz77.WriteTokens(w, tokens, p)
		return err
	})
	if err != nil {
		return err
	}
	if verbose {
		s := lz77.Summarize(tokens)
		fmt.Fprintf(stdout, "Params:         %v\n", p)
		fmt.Fprintf(stdout, "Original size:  %8d\n", len(data))
		fmt.Fprintf(stdout, "Tokens:         %8d\n", s.Tokens)
		fmt.Fprintf(stdout, "Matched bytes:  %8d (%.1f%%)\n", s.MatchedBytes, percent(s.MatchedBytes, len(data)))
		fmt.Fprintf(stdout, "Longest match:  %8d\n", s.LongestMatch)
		fmt.Fprintf(stdout, "Packed size:    %8d (%.1f%%)\n", written, percent(int(written), len(data)))
	}
	return nil
}

// CommandUnLZ restores a file packed by CommandLZ, refusing to produce more
// than maxOut bytes.
func CommandUnLZ(in, out string, maxOut int, verbose bool, stdout io.Writer) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	tokens, err := lz77.ReadTokens(f)
	_ = f.Close()
	if err != nil {
		return err
	}
	data, err := lz77.DecompressLimit(tokens, maxOut)
	if err != nil {
		return err
	}

	err = writeOutput(out, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
	if err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(stdout, "Tokens:        %8d\n", len(tokens))
		fmt.Fprintf(stdout, "Restored size: %8d\n", len(data))
	}
	return nil
}

// CommandCodes prints the frequency and code tables of a file, and renders
// the code-length chart when chartPath is set.
func CommandCodes(in, chartPath string, verbose bool, stdout io.Writer) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	freq := huffman.CountFrequencies(data)
	tree := huffman.BuildTree(freq)
	codes := huffman.BuildCodes(tree)

	if verbose {
		if _, err := freq.Dump(stdout); err != nil {
			return err
		}
		if _, err := tree.Dump(stdout); err != nil {
			return err
		}
	}
	if _, err := codes.Dump(stdout); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Encoded size: %d bits\n", codes.EncodedSize(freq))

	if chartPath == "" {
		return nil
	}
	return writeOutput(chartPath, func(w io.Writer) error {
		return report.CodeLengthChart(w, codes)
	})
}

// CommandTokens prints one line per token with the position of its first
// output byte, and renders the match-length chart when chartPath is set.
func CommandTokens(in, chartPath string, p lz77.Params, stdout io.Writer) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	tokens, err := lz77.Compress(data, p)
	if err != nil {
		return err
	}

	pos := 0
	for _, tok := range tokens {
		fmt.Fprintf(stdout, "%8d %s\n", pos, tok)
		pos += tok.Size()
	}

	if chartPath == "" {
		return nil
	}
	return writeOutput(chartPath, func(w io.Writer) error {
		return report.MatchLengthChart(w, tokens)
	})
}

const benchHeader = "file;bytes;huff_bytes;huff_encode_us;huff_decode_us;lz_bytes;lz_compress_us;lz_decompress_us\n"

// CommandBench runs both codecs over every file and prints a
// semicolon-separated table of sizes and timings.  Each round trip is
// checked against the input.
func CommandBench(files []string, p lz77.Params, stdout io.Writer) error {
	if _, err := io.WriteString(stdout, benchHeader); err != nil {
		return err
	}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		row, err := benchFile(data, p)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Fprintf(stdout, "%s;%d;%d;%d;%d;%d;%d;%d\n",
			filepath.Base(path), len(data),
			row.huffBytes, row.huffEncode.Microseconds(), row.huffDecode.Microseconds(),
			row.lzBytes, row.lzCompress.Microseconds(), row.lzDecompress.Microseconds())
	}
	return nil
}

type benchRow struct {
	huffBytes    int
	huffEncode   time.Duration
	huffDecode   time.Duration
	lzBytes      int
	lzCompress   time.Duration
	lzDecompress time.Duration
}

func benchFile(data []byte, p lz77.Params) (benchRow, error) {
	var row benchRow
	var buf bytes.Buffer

	start := time.Now()
	enc, err := huffman.Compress(data)
	if err != nil {
		return row, err
	}
	row.huffEncode = time.Since(start)
	if _, err := enc.WriteTo(&buf); err != nil {
		return row, err
	}
	row.huffBytes = buf.Len()

	start = time.Now()
	restored, err := enc.Decompress()
	if err != nil {
		return row, err
	}
	row.huffDecode = time.Since(start)
	if !bytes.Equal(data, restored) {
		return row, fmt.Errorf("huffman round trip mismatch")
	}

	start = time.Now()
	tokens, err := lz77.Compress(data, p)
	if err != nil {
		return row, err
	}
	row.lzCompress = time.Since(start)
	buf.Reset()
	if _, err := lz77.WriteTokens(&buf, tokens, p); err != nil {
		return row, err
	}
	row.lzBytes = buf.Len()

	start = time.Now()
	restored, err = lz77.Decompress(tokens)
	if err != nil {
		return row, err
	}
	row.lzDecompress = time.Since(start)
	if !bytes.Equal(data, restored) {
		return row, fmt.Errorf("lz77 round trip mismatch")
	}
	return row, nil
}
