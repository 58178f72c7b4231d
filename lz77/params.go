package lz77

import (
	"fmt"
	"strings"
)

// SearchMode selects how Compress looks for matches.  Every mode finds the
// same match at every position, so the token stream does not depend on it.
type SearchMode byte

const (
	// SearchIndexed visits only window positions whose byte equals the
	// byte at the current position.  It is the default.
	SearchIndexed SearchMode = iota

	// SearchLinear visits every window position.  It is the reference
	// implementation of the match contract.
	SearchLinear
)

// String returns the flag-friendly name of the mode.
func (mode SearchMode) String() string {
	switch mode {
	case SearchIndexed:
		return "indexed"
	case SearchLinear:
		return "linear"
	default:
		return fmt.Sprintf("SearchMode(%d)", byte(mode))
	}
}

// ParseSearchMode is the inverse of SearchMode.String.
func ParseSearchMode(str string) (SearchMode, error) {
	switch strings.ToLower(str) {
	case "indexed", "":
		return SearchIndexed, nil
	case "linear":
		return SearchLinear, nil
	default:
		return 0, fmt.Errorf("%w: unknown search mode %q", ErrInvalidParams, str)
	}
}

// Params configures Compress.
type Params struct {
	// WindowSize is how many already-processed bytes are eligible as
	// the start of a match.  Must be at least 1.
	WindowSize int

	// MaxMatchLength caps the length of a single match.  0 means
	// unbounded: a match may run to the end of the input.
	MaxMatchLength int

	// Search selects the match-finding strategy.
	Search SearchMode
}

// DefaultParams uses an 8 KiB window and matches of at most 65535 bytes,
// so that offsets and lengths each fit in 16 bits.
var DefaultParams = Params{WindowSize: 8192, MaxMatchLength: 65535}

// ShortWindowParams uses a 255-byte window, so offsets fit in 8 bits, and
// leaves match length unbounded.
var ShortWindowParams = Params{WindowSize: 255, MaxMatchLength: 0}

// Validate reports whether the Params can be used by Compress.
func (p Params) Validate() error {
	if p.WindowSize < 1 {
		return fmt.Errorf("%w: window size %d < 1", ErrInvalidParams, p.WindowSize)
	}
	if p.MaxMatchLength < 0 {
		return fmt.Errorf("%w: max match length %d < 0", ErrInvalidParams, p.MaxMatchLength)
	}
	if p.Search != SearchIndexed && p.Search != SearchLinear {
		return fmt.Errorf("%w: %v", ErrInvalidParams, p.Search)
	}
	return nil
}

// String returns a short human-readable summary of the Params.
func (p Params) String() string {
	maxLen := "unbounded"
	if p.MaxMatchLength != 0 {
		maxLen = fmt.Sprint(p.MaxMatchLength)
	}
	return fmt.Sprintf("window=%d maxlen=%s search=%v", p.WindowSize, maxLen, p.Search)
}
