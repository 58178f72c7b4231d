// Package report renders diagnostic charts for the two codecs.
package report

import (
	"errors"
	"io"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/sebargith/Proyecto-Estructuras-Codificacion-y-Compresi-n/huffman"
	"github.com/sebargith/Proyecto-Estructuras-Codificacion-y-Compresi-n/lz77"
)

// ErrNoData is returned when there is nothing to chart.
var ErrNoData = errors.New("report: nothing to chart")

// CodeLengthChart writes an SVG bar chart with one bar per code length,
// counting how many byte values received a code of that length.
func CodeLengthChart(w io.Writer, codes huffman.CodeTable) error {
	if codes.Len() == 0 {
		return ErrNoData
	}
	counts := make([]int, int(codes.MaxSize())+1)
	for _, size := range codes.SizeBySymbol() {
		if size != 0 {
			counts[size]++
		}
	}

	bars := make([]chart.Value, 0, len(counts))
	for size := int(codes.MinSize()); size < len(counts); size++ {
		bars = append(bars, chart.Value{
			Label: strconv.Itoa(size) + " bits",
			Value: float64(counts[size]),
		})
	}
	return render(w, "Huffman code lengths", bars)
}

// MatchLengthChart writes an SVG bar chart of token match lengths, bucketed
// by powers of two: 0, 1, 2-3, 4-7, and so on.
func MatchLengthChart(w io.Writer, tokens []lz77.Token) error {
	if len(tokens) == 0 {
		return ErrNoData
	}
	var counts []int
	for _, tok := range tokens {
		bucket := lengthBucket(tok.Length)
		for len(counts) <= bucket {
			counts = append(counts, 0)
		}
		counts[bucket]++
	}

	bars := make([]chart.Value, 0, len(counts))
	for bucket, count := range counts {
		bars = append(bars, chart.Value{
			Label: bucketLabel(bucket),
			Value: float64(count),
		})
	}
	return render(w, "LZ77 match lengths", bars)
}

func lengthBucket(length int) int {
	bucket := 0
	for length > 0 {
		bucket++
		length >>= 1
	}
	return bucket
}

func bucketLabel(bucket int) string {
	if bucket <= 1 {
		return strconv.Itoa(bucket)
	}
	lo := 1 << uint(bucket-1)
	return strconv.Itoa(lo) + "-" + strconv.Itoa(2*lo-1)
}

func render(w io.Writer, title string, bars []chart.Value) error {
	var maxValue float64
	for _, bar := range bars {
		if bar.Value > maxValue {
			maxValue = bar.Value
		}
	}

	graph := chart.BarChart{
		Title: title,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Height:   512,
		BarWidth: 40,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue},
		},
		Bars: bars,
	}
	return graph.Render(chart.SVG, w)
}
