package huffman

import (
	"strings"
	"testing"
)

func makeTestFrequencies() FrequencyTable {
	return MakeFrequencyTable(map[byte]uint64{
		'a': 5,
		'b': 9,
		'c': 12,
		'd': 13,
		'e': 16,
		'f': 45,
	})
}

func TestCountFrequencies(t *testing.T) {
	ft := CountFrequencies([]byte("abracadabra"))

	expectDump := strings.Join([]string{
		"FrequencyTable{\n",
		"\tCount('a') = 5\n",
		"\tCount('b') = 2\n",
		"\tCount('c') = 1\n",
		"\tCount('d') = 1\n",
		"\tCount('r') = 2\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = ft.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if ft.Len() != 5 {
		t.Errorf("expected Len() = 5, got %d", ft.Len())
	}
	if ft.Total() != 11 {
		t.Errorf("expected Total() = 11, got %d", ft.Total())
	}
	if ft.Has('z') {
		t.Errorf("expected Has('z') = false")
	}
}

func TestBuildTree(t *testing.T) {
	tree := BuildTree(makeTestFrequencies())

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tRoot() = 10\n",
		"\tNode(0) = leaf 'a' freq 5\n",
		"\tNode(1) = leaf 'b' freq 9\n",
		"\tNode(2) = leaf 'c' freq 12\n",
		"\tNode(3) = leaf 'd' freq 13\n",
		"\tNode(4) = leaf 'e' freq 16\n",
		"\tNode(5) = leaf 'f' freq 45\n",
		"\tNode(6) = {0, 1} freq 14\n",
		"\tNode(7) = {2, 3} freq 25\n",
		"\tNode(8) = {6, 4} freq 30\n",
		"\tNode(9) = {7, 8} freq 55\n",
		"\tNode(10) = {5, 9} freq 100\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestBuildTree_NoNodeHasOneChild(t *testing.T) {
	tree := BuildTree(CountFrequencies([]byte("the quick brown fox jumps over the lazy dog")))
	for id := NodeID(0); int(id) < tree.Len(); id++ {
		node := tree.Node(id)
		if (node.Left == NoNode) != (node.Right == NoNode) {
			t.Errorf("node %d has exactly one child: %+v", id, node)
		}
	}
	if root := tree.Node(tree.Root()); root.Freq != 43 {
		t.Errorf("expected root frequency 43, got %d", root.Freq)
	}
}

func TestBuildTree_Empty(t *testing.T) {
	tree := BuildTree(FrequencyTable{})
	if !tree.Empty() {
		t.Errorf("expected an empty tree, got %d nodes", tree.Len())
	}
	if tree.Root() != NoNode {
		t.Errorf("expected Root() = NoNode, got %d", tree.Root())
	}
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	tree := BuildTree(CountFrequencies([]byte("aaaa")))
	if tree.Len() != 1 {
		t.Fatalf("expected 1 node, got %d", tree.Len())
	}
	root := tree.Node(tree.Root())
	if !root.IsLeaf() || root.Symbol != 'a' || root.Freq != 4 {
		t.Errorf("wrong root: %+v", root)
	}
}

func TestBuildTree_TieBreak(t *testing.T) {
	// 'a' and 'b' merge first; the merged node ties with 'c', and 'c' was
	// inserted earlier, so 'c' becomes the left child of the root.
	tree := BuildTree(CountFrequencies([]byte("abcc")))
	root := tree.Node(tree.Root())
	left := tree.Node(root.Left)
	if !left.IsLeaf() || left.Symbol != 'c' {
		t.Errorf("expected leaf 'c' on the left of the root, got %+v", left)
	}

	// Building twice yields identical arenas.
	again := BuildTree(CountFrequencies([]byte("abcc")))
	for id := NodeID(0); int(id) < tree.Len(); id++ {
		if tree.Node(id) != again.Node(id) {
			t.Errorf("node %d differs: %+v vs %+v", id, tree.Node(id), again.Node(id))
		}
	}
}

func TestTree_MaxDepth(t *testing.T) {
	type testRow struct {
		name   string
		tree   Tree
		expect int
	}

	fib := make(map[byte]uint64)
	a, b := uint64(1), uint64(1)
	for i := 0; i < 70; i++ {
		fib[byte(i)] = a
		a, b = b, a+b
	}

	testData := [...]testRow{
		{name: "empty", tree: BuildTree(FrequencyTable{}), expect: 0},
		{name: "single", tree: BuildTree(CountFrequencies([]byte("aaaa"))), expect: 1},
		{name: "golden", tree: BuildTree(makeTestFrequencies()), expect: 4},
		{name: "fibonacci", tree: BuildTree(MakeFrequencyTable(fib)), expect: 69},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			if actual := row.tree.MaxDepth(); actual != row.expect {
				t.Errorf("expected MaxDepth() = %d, got %d", row.expect, actual)
			}
		})
	}
}
