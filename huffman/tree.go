package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// NodeID addresses a Node inside a Tree's arena.
type NodeID int32

// NoNode marks an absent child, or the root of an empty Tree.
const NoNode = NodeID(-1)

// Node is a single node of a Huffman tree.  A leaf carries a byte value and
// has no children; an internal node carries the summed frequency of exactly
// two children and its Symbol is meaningless.
type Node struct {
	Freq   uint64
	Symbol byte
	Left   NodeID
	Right  NodeID
}

// IsLeaf reports whether this node has no children.
func (n Node) IsLeaf() bool {
	return n.Left == NoNode && n.Right == NoNode
}

// Tree is an immutable Huffman tree stored as an arena of nodes.  Leaves
// occupy the first slots in ascending byte order, followed by internal nodes
// in the order they were merged; the root, if any, is the last node.
//
// The zero value is an empty Tree.
type Tree struct {
	nodes []Node
	root  NodeID
}

// BuildTree constructs the Huffman tree for the given frequencies.
//
// An empty table yields an empty Tree.  A table with a single present byte
// yields a Tree whose root is that byte's leaf.
func BuildTree(ft FrequencyTable) Tree {
	numLeaves := ft.Len()
	if numLeaves == 0 {
		return Tree{root: NoNode}
	}

	nodes := make([]Node, 0, 2*numLeaves-1)
	items := make([]heapItem, 0, numLeaves)
	for _, symbol := range ft.Symbols() {
		id := NodeID(len(nodes))
		nodes = append(nodes, Node{Freq: ft.Count(symbol), Symbol: symbol, Left: NoNode, Right: NoNode})
		items = append(items, heapItem{id: id, freq: ft.Count(symbol)})
	}

	// Node IDs double as insertion sequence numbers: leaves were inserted
	// first in byte order, and every merged node gets the next free ID.
	h := freqHeap{items}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem)
		b := heap.Pop(&h).(heapItem)

		freqSum := saturatingAdd(a.freq, b.freq)
		id := NodeID(len(nodes))
		nodes = append(nodes, Node{Freq: freqSum, Left: a.id, Right: b.id})
		heap.Push(&h, heapItem{id: id, freq: freqSum})
	}

	root := heap.Pop(&h).(heapItem)
	assert.Assertf(int(root.id) == len(nodes)-1, "root %d is not the last node (%d nodes)", root.id, len(nodes))

	return Tree{nodes: nodes, root: root.id}
}

// Root returns the ID of the root node, or NoNode for an empty Tree.
func (t Tree) Root() NodeID {
	if len(t.nodes) == 0 {
		return NoNode
	}
	return t.root
}

// Empty reports whether the Tree has no nodes.
func (t Tree) Empty() bool {
	return len(t.nodes) == 0
}

// Len returns the number of nodes in the Tree.
func (t Tree) Len() int {
	return len(t.nodes)
}

// Node returns the node with the given ID.
func (t Tree) Node(id NodeID) Node {
	assert.Assertf(id >= 0 && int(id) < len(t.nodes), "node %d out of range [0, %d)", id, len(t.nodes))
	return t.nodes[id]
}

// IsLeaf reports whether the node with the given ID is a leaf.
func (t Tree) IsLeaf(id NodeID) bool {
	return t.Node(id).IsLeaf()
}

// MaxDepth returns the depth of the deepest leaf, which is the length of the
// longest code BuildCodes assigns.  A single-leaf Tree has depth 1, matching
// its one-bit code; an empty Tree has depth 0.
func (t Tree) MaxDepth() int {
	switch len(t.nodes) {
	case 0:
		return 0
	case 1:
		return 1
	}

	// Children always have smaller IDs than their parent, so a reverse
	// scan of the arena sees every parent before its children.
	depth := make([]int, len(t.nodes))
	maxDepth := 0
	for id := len(t.nodes) - 1; id >= 0; id-- {
		node := t.nodes[id]
		if node.IsLeaf() {
			if depth[id] > maxDepth {
				maxDepth = depth[id]
			}
			continue
		}
		depth[node.Left] = depth[id] + 1
		depth[node.Right] = depth[id] + 1
	}
	return maxDepth
}

// Dump writes a programmer-readable debugging dump of the Tree's nodes to
// the given writer.
func (t Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.Root())
	for index, node := range t.nodes {
		if node.IsLeaf() {
			fmt.Fprintf(&buf, "\tNode(%d) = leaf %q freq %d\n", index, node.Symbol, node.Freq)
		} else {
			fmt.Fprintf(&buf, "\tNode(%d) = {%d, %d} freq %d\n", index, node.Left, node.Right, node.Freq)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type heapItem + type freqHeap {{{

type heapItem struct {
	id   NodeID
	freq uint64
}

type freqHeap struct {
	list []heapItem
}

func (h *freqHeap) Init() {
	heap.Init(h)
}

func (h *freqHeap) Len() int {
	return len(h.list)
}

func (h *freqHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *freqHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.id < b.id
}

func (h *freqHeap) Push(x interface{}) {
	h.list = append(h.list, x.(heapItem))
}

func (h *freqHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap)(nil)

// }}}
