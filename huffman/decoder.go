package huffman

import (
	"fmt"

	"github.com/sebargith/Proyecto-Estructuras-Codificacion-y-Compresi-n/internal/bitseq"
)

// Decode walks t from the root, taking the left child on a 0 bit and the
// right child on a 1 bit, and emits a byte each time it reaches a leaf.
//
// A Tree consisting of a single leaf decodes each 0 bit to that leaf's byte.
//
// Decode fails with ErrMalformedStream if a bit has no matching child, or if
// the sequence ends part-way through a code.
func Decode(bits bitseq.Sequence, t Tree) ([]byte, error) {
	n := bits.Len()
	if n == 0 {
		return []byte{}, nil
	}
	if t.Empty() {
		return nil, fmt.Errorf("%w: %d bits with an empty tree", ErrMalformedStream, n)
	}

	root := t.Root()
	if t.IsLeaf(root) {
		return decodeSingle(bits, t.Node(root).Symbol)
	}

	var out []byte
	current := root
	for i := 0; i < n; i++ {
		node := t.Node(current)
		if bits.At(i) == 0 {
			current = node.Left
		} else {
			current = node.Right
		}
		if current == NoNode {
			return nil, fmt.Errorf("%w: no child for bit %d", ErrMalformedStream, i)
		}
		if leaf := t.Node(current); leaf.IsLeaf() {
			out = append(out, leaf.Symbol)
			current = root
		}
	}
	if current != root {
		return nil, fmt.Errorf("%w: stream ends inside a code", ErrMalformedStream)
	}
	return out, nil
}

func decodeSingle(bits bitseq.Sequence, symbol byte) ([]byte, error) {
	n := bits.Len()
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		if bits.At(i) != 0 {
			return nil, fmt.Errorf("%w: no child for bit %d", ErrMalformedStream, i)
		}
		out[i] = symbol
	}
	return out, nil
}
