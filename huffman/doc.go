// Package huffman implements a static Huffman entropy coder for byte
// streams.
//
// The coder counts byte frequencies, builds a prefix-code tree bottom-up
// from a min-heap, derives a code table from the root-to-leaf paths, and
// encodes input bytes into an exact-length bit sequence.  Decoding walks the
// same tree one bit at a time.
//
// Tree construction is deterministic: leaves enter the heap in ascending
// byte order, merged nodes enter after them in creation order, and among
// nodes of equal frequency the one that entered the heap first is popped
// first and becomes the left child.  Two parties that agree on a
// FrequencyTable therefore always agree on the Tree and the CodeTable.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
