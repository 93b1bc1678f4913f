package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol present in a Tree to its Code.  Symbols absent
// from the tree, and the sentinel leaf, have no entry.
type CodeTable struct {
	codes   []Code
	count   int
	minSize int
	maxSize int
}

// BuildCodeTable walks the tree once and assigns to every leaf the path from
// the root: '0' for each step to a left child, '1' for each step to a right
// child.
func BuildCodeTable(t *Tree) CodeTable {
	var ct CodeTable
	if t.IsEmpty() {
		return ct
	}
	ct.codes = make([]Code, MaxAlphabetSize)

	record := func(index int32, code Code) {
		symbol := t.nodes[index].symbol
		if symbol == InvalidSymbol {
			return
		}
		ct.codes[symbol] = code

		size := code.Size()
		if ct.count == 0 {
			ct.minSize, ct.maxSize = size, size
		} else if ct.minSize > size {
			ct.minSize = size
		} else if ct.maxSize < size {
			ct.maxSize = size
		}
		ct.count++
	}

	root := t.root()

	// A lone leaf has no path to walk.  The sentinel leaf keeps BuildTree
	// from producing this, but it still gets a 1-bit code.
	if t.nodes[root].isLeaf() {
		record(root, "0")
		return ct
	}

	// Walk the tree with an explicit stack.  path holds the bits from the
	// root to the node on top of the stack.
	//
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		index int32
		x     byte
	}

	depthHint := log2int(t.Leaves())
	stack := make([]stackItem, 0, depthHint)
	path := make([]byte, 0, depthHint)

	stackPush := func(index int32) {
		stack = append(stack, stackItem{index: index})
	}

	stackPop := func() {
		stack = stack[:len(stack)-1]
		if len(path) != 0 {
			path = path[:len(path)-1]
		}
	}

	processChild := func(parent int32, bit byte) {
		child := t.child(parent, bit)
		if t.nodes[child].isLeaf() {
			record(child, Code(append(path, bit)))
			return
		}
		path = append(path, bit)
		stackPush(child)
	}

	stackPush(root)
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.index, '0')
		case 1:
			processChild(top.index, '1')
		case 2:
			stackPop()
		}
	}

	assert.Assertf(len(path) == 0, "tree walk ended with %d unconsumed path bits", len(path))
	return ct
}

// Lookup returns the Code for symbol, if the table has one.
func (ct CodeTable) Lookup(symbol Symbol) (Code, bool) {
	if symbol < 0 || int(symbol) >= len(ct.codes) {
		return "", false
	}
	hc := ct.codes[symbol]
	return hc, hc != ""
}

// Len returns the number of Symbols with a Code.
func (ct CodeTable) Len() int {
	return ct.count
}

// MinSize is the bit length of the shortest Code.
func (ct CodeTable) MinSize() int {
	return ct.minSize
}

// MaxSize is the bit length of the longest Code.
func (ct CodeTable) MaxSize() int {
	return ct.maxSize
}

// Symbols returns the Symbols with a Code, in ascending order.
func (ct CodeTable) Symbols() []Symbol {
	out := make([]Symbol, 0, ct.count)
	for symbol, hc := range ct.codes {
		if hc != "" {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}

// IsPrefixFree reports whether no Code in the table is a prefix of another.
func (ct CodeTable) IsPrefixFree() bool {
	codes := make(byCode, 0, ct.count)
	for _, hc := range ct.codes {
		if hc != "" {
			codes = append(codes, hc)
		}
	}
	codes.Sort()

	// Every Code that starts with hc sorts directly after hc, so checking
	// neighbours is enough.
	for i := 1; i < len(codes); i++ {
		if codes[i].HasPrefix(codes[i-1]) {
			return false
		}
	}
	return true
}

// EncodedSize returns the number of bits needed to encode a message with the
// given symbol frequencies.
func (ct CodeTable) EncodedSize(freq *FrequencyTable) uint64 {
	var total uint64
	for symbol, hc := range ct.codes {
		total += uint64(freq[symbol]) * uint64(len(hc))
	}
	return total
}

// String returns a short summary of this CodeTable.
func (ct CodeTable) String() string {
	return fmt.Sprintf("(Huffman code table with %d symbols, with coded lengths of %d .. %d bits)", ct.count, ct.minSize, ct.maxSize)
}

var _ fmt.Stringer = CodeTable{}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for symbol, hc := range ct.codes {
		if hc != "" {
			fmt.Fprintf(&buf, "\tLookup(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = byCode(nil)

// }}}
