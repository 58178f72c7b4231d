package lz77

import (
	"fmt"
	"strconv"
)

// Token is one step of the compressed form: copy Length bytes starting
// Offset bytes back from the end of the output, then append Literal if
// HasLiteral is set.
//
// A Token with no match has Offset and Length both 0.  Only a match that
// runs to the very end of the input has no literal.
type Token struct {
	Offset     int
	Length     int
	Literal    byte
	HasLiteral bool
}

// MakeLiteral returns a Token that emits a single byte.
func MakeLiteral(b byte) Token {
	return Token{Literal: b, HasLiteral: true}
}

// MakeMatch returns a Token that copies length bytes from offset bytes back
// and then emits b.
func MakeMatch(offset, length int, b byte) Token {
	return Token{Offset: offset, Length: length, Literal: b, HasLiteral: true}
}

// MakeFinalMatch returns a Token that copies length bytes from offset bytes
// back and emits no literal.
func MakeFinalMatch(offset, length int) Token {
	return Token{Offset: offset, Length: length}
}

// Size returns the number of output bytes the Token produces.
func (tok Token) Size() int {
	if tok.HasLiteral {
		return tok.Length + 1
	}
	return tok.Length
}

// String returns the string representation of this Token, e.g. "(2,4,'a')",
// or "(2,4,-)" when there is no literal.
func (tok Token) String() string {
	lit := "-"
	if tok.HasLiteral {
		lit = strconv.QuoteRune(rune(tok.Literal))
	}
	return fmt.Sprintf("(%d,%d,%s)", tok.Offset, tok.Length, lit)
}

var _ fmt.Stringer = Token{}
