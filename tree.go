package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// noChild marks the absent children of a leaf.
const noChild = int32(-1)

// Tree is a Huffman prefix tree stored as an arena of nodes addressed by
// index.  Leaves come first in ascending Symbol order, followed by the
// sentinel leaf (if any), followed by internal nodes in merge order.  The last
// node is the root.  The zero Tree is empty.
type Tree struct {
	nodes  []treeNode
	leaves int
}

type treeNode struct {
	symbol Symbol
	freq   uint32
	left   int32
	right  int32
}

func (n treeNode) isLeaf() bool {
	return n.left == noChild
}

// BuildTree constructs the Huffman tree for the given frequencies.  Symbols
// with a count of 0 are left out.
//
// Ties between nodes of equal frequency go to the node created first, i.e.
// the lower Symbol among leaves, and any leaf before any merged node.  This
// only decides which of several optimal codes is produced.
//
// An empty FrequencyTable yields an empty Tree.  A FrequencyTable with one
// non-zero Symbol gets an extra zero-frequency sentinel leaf, so that the
// Symbol is assigned a 1-bit code rather than an empty one.
//
func BuildTree(freq *FrequencyTable) *Tree {
	numLeaves := freq.Len()
	if numLeaves == 0 {
		return &Tree{}
	}

	// n leaves need n-1 merges; one more leaf for the sentinel.
	nodes := make([]treeNode, 0, 2*numLeaves+1)
	for symbol := Symbol(0); symbol < MaxAlphabetSize; symbol++ {
		if count := freq[symbol]; count != 0 {
			nodes = append(nodes, treeNode{symbol, count, noChild, noChild})
		}
	}
	if numLeaves == 1 {
		nodes = append(nodes, treeNode{InvalidSymbol, 0, noChild, noChild})
	}
	numLeaves = len(nodes)

	// Step 1: build a minheap over the leaves.

	h := nodeHeap{nodes: nodes, list: make([]int32, numLeaves)}
	for index := range h.list {
		h.list[index] = int32(index)
	}
	h.Init()

	// Step 2: pop the two lightest nodes, join them under a new internal
	// node, and push that back, until a single node is left.  The first
	// node popped becomes the left child.

	for h.Len() > 1 {
		a := heap.Pop(&h).(int32)
		b := heap.Pop(&h).(int32)

		freqSum := saturatingAdd(h.nodes[a].freq, h.nodes[b].freq)
		h.nodes = append(h.nodes, treeNode{InvalidSymbol, freqSum, a, b})
		heap.Push(&h, int32(len(h.nodes)-1))
	}

	root := heap.Pop(&h).(int32)
	assert.Assertf(int(root) == len(h.nodes)-1, "root %d is not the last node of %d", root, len(h.nodes))
	assert.Assertf(len(h.nodes) == 2*numLeaves-1, "%d leaves produced %d nodes", numLeaves, len(h.nodes))

	return &Tree{nodes: h.nodes, leaves: numLeaves}
}

// Len returns the number of nodes in the tree, leaves and internal nodes
// alike.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Leaves returns the number of leaves, counting the sentinel leaf.
func (t *Tree) Leaves() int {
	return t.leaves
}

// IsEmpty reports whether the tree has no nodes at all.
func (t *Tree) IsEmpty() bool {
	return len(t.nodes) == 0
}

// Frequency returns the frequency at the root, i.e. the length of the
// message the tree was built for.
func (t *Tree) Frequency() uint32 {
	if t.IsEmpty() {
		return 0
	}
	return t.nodes[t.root()].freq
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	if t.IsEmpty() {
		buf.WriteString("\tRoot() = nil\n")
	} else {
		fmt.Fprintf(&buf, "\tRoot() = %d\n", t.root())
	}
	for index, n := range t.nodes {
		switch {
		case !n.isLeaf():
			fmt.Fprintf(&buf, "\t%d: Internal(%d, %d) freq=%d\n", index, n.left, n.right, n.freq)
		case n.symbol == InvalidSymbol:
			fmt.Fprintf(&buf, "\t%d: Sentinel freq=%d\n", index, n.freq)
		default:
			fmt.Fprintf(&buf, "\t%d: Leaf(%d) freq=%d\n", index, n.symbol, n.freq)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (t *Tree) root() int32 {
	return int32(len(t.nodes) - 1)
}

// child returns the index reached from node index by following bit, which
// must be '0' or '1'.
func (t *Tree) child(index int32, bit byte) int32 {
	n := t.nodes[index]
	assert.Assertf(n.left != noChild && n.right != noChild, "node %d is not fully internal", index)
	if bit == '0' {
		return n.left
	}
	return n.right
}

// type nodeHeap {{{

type nodeHeap struct {
	nodes []treeNode
	list  []int32
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	af, bf := h.nodes[a].freq, h.nodes[b].freq
	if af != bf {
		return af < bf
	}
	return a < b
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(int32))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
