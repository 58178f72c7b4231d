package lz77

// Compress splits data into Tokens.
//
// At each position i not yet covered by an earlier token, Compress finds the
// longest run starting in [i-WindowSize, i) that repeats data[i:], capped at
// MaxMatchLength when that is non-zero.  Ties go to the run that starts
// first, i.e. the farthest one.  The token records the distance back to the
// run, its length, and the byte right after it, and Compress resumes after
// that byte.  A run that reaches the end of data yields a token without a
// literal.
//
// Compress is deterministic, and fails only if p does not Validate.
func Compress(data []byte, p Params) ([]Token, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	finder := newMatchFinder(data, p)
	tokens := make([]Token, 0, len(data)/4+1)
	n := len(data)
	for i := 0; i < n; {
		pos, length := finder.find(i)
		switch {
		case length == 0:
			tokens = append(tokens, MakeLiteral(data[i]))
		case i+length < n:
			tokens = append(tokens, MakeMatch(i-pos, length, data[i+length]))
		default:
			tokens = append(tokens, MakeFinalMatch(i-pos, length))
		}
		i += length + 1
	}
	return tokens, nil
}
