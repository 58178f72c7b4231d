// Package lz77 implements a greedy LZ77 dictionary coder for byte streams.
//
// Compress scans its input left to right.  At each position it looks back
// over a bounded window for the longest run of bytes that repeats the bytes
// starting at the current position, and emits a Token holding the backward
// distance, the run length, and the literal byte that follows the run.
// Decompress replays the tokens against a growing output buffer.
//
// The match search is exhaustive over the window, so compressing n bytes
// with a window of W bytes costs O(W·n) comparisons in the worst case.
// Callers choose the window size with that cost in mind.
package lz77
