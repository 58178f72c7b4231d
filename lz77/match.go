package lz77

// matchFinder returns, for a position i, the start of the longest earlier run
// in the window that repeats data[i:], and its length.  Among runs of equal
// length the one that starts first wins.  A length of 0 means no match.
type matchFinder interface {
	find(i int) (pos int, length int)
}

func newMatchFinder(data []byte, p Params) matchFinder {
	switch p.Search {
	case SearchLinear:
		return &linearFinder{data: data, window: p.WindowSize, maxLen: p.MaxMatchLength}
	default:
		return &indexedFinder{data: data, window: p.WindowSize, maxLen: p.MaxMatchLength}
	}
}

// matchLength counts how many bytes starting at j repeat the bytes starting
// at i (j < i).  The run may extend past i into the bytes it is repeating.
func matchLength(data []byte, j, i, maxLen int) int {
	n := 0
	for i+n < len(data) && data[j+n] == data[i+n] && (maxLen == 0 || n < maxLen) {
		n++
	}
	return n
}

// lengthLimit is the longest match possible at position i.  Once a candidate
// reaches it no later candidate can be strictly longer.
func lengthLimit(data []byte, i, maxLen int) int {
	limit := len(data) - i
	if maxLen != 0 && maxLen < limit {
		limit = maxLen
	}
	return limit
}

func windowStart(i, window int) int {
	if i < window {
		return 0
	}
	return i - window
}

// type linearFinder {{{

type linearFinder struct {
	data   []byte
	window int
	maxLen int
}

func (f *linearFinder) find(i int) (int, int) {
	limit := lengthLimit(f.data, i, f.maxLen)
	bestPos, bestLen := 0, 0
	for j := windowStart(i, f.window); j < i; j++ {
		length := matchLength(f.data, j, i, f.maxLen)
		if length > bestLen {
			bestPos, bestLen = j, length
			if bestLen == limit {
				break
			}
		}
	}
	return bestPos, bestLen
}

var _ matchFinder = (*linearFinder)(nil)

// }}}

// type indexedFinder {{{

// indexedFinder keeps, for each byte value, the ascending list of positions
// holding that byte.  Only positions whose byte equals data[i] can start a
// match of length 1 or more, so skipping the others leaves the result
// unchanged.
type indexedFinder struct {
	data    []byte
	window  int
	maxLen  int
	chains  [256][]int
	indexed int
}

func (f *indexedFinder) find(i int) (int, int) {
	for ; f.indexed < i; f.indexed++ {
		b := f.data[f.indexed]
		f.chains[b] = append(f.chains[b], f.indexed)
	}

	b := f.data[i]
	start := windowStart(i, f.window)
	chain := f.chains[b]
	for len(chain) != 0 && chain[0] < start {
		chain = chain[1:]
	}
	f.chains[b] = chain

	limit := lengthLimit(f.data, i, f.maxLen)
	bestPos, bestLen := 0, 0
	for _, j := range chain {
		length := matchLength(f.data, j, i, f.maxLen)
		if length > bestLen {
			bestPos, bestLen = j, length
			if bestLen == limit {
				break
			}
		}
	}
	return bestPos, bestLen
}

var _ matchFinder = (*indexedFinder)(nil)

// }}}
