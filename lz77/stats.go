package lz77

// Summary describes a token stream.
type Summary struct {
	Tokens       int
	Matches      int
	MatchedBytes int
	Literals     int
	LongestMatch int
	LongestReach int
}

// Summarize computes the Summary of tokens.
func Summarize(tokens []Token) Summary {
	var s Summary
	s.Tokens = len(tokens)
	for _, tok := range tokens {
		if tok.Length > 0 {
			s.Matches++
			s.MatchedBytes += tok.Length
		}
		if tok.HasLiteral {
			s.Literals++
		}
		if tok.Length > s.LongestMatch {
			s.LongestMatch = tok.Length
		}
		if tok.Offset > s.LongestReach {
			s.LongestReach = tok.Offset
		}
	}
	return s
}

// OutputSize is the number of bytes the summarized tokens decompress to.
func (s Summary) OutputSize() int {
	return s.MatchedBytes + s.Literals
}
