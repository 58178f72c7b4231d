package lz77

import (
	"errors"
)

// ErrInvalidOffset is returned by Decompress when a token points before the
// start of the output, or copies without pointing anywhere.
var ErrInvalidOffset = errors.New("lz77: invalid offset")

// ErrInvalidParams is returned for a window or match length that cannot be
// used, and for tokens that do not fit the container's field widths.
var ErrInvalidParams = errors.New("lz77: invalid parameters")

// ErrMalformedTokens is returned by ReadTokens for a stream that is not a
// valid token container.
var ErrMalformedTokens = errors.New("lz77: malformed token stream")

// ErrOutputTooLarge is returned by DecompressLimit when the tokens describe
// more output than the caller allows.
var ErrOutputTooLarge = errors.New("lz77: output too large")
