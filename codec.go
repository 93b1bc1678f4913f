package huffman

import (
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Options configures a Codec.  The zero value selects the defaults.
type Options struct {
	// AlphabetSize is the number of valid Symbols, 1 .. MaxAlphabetSize.
	// Zero means DefaultAlphabetSize.
	AlphabetSize int

	// RejectEmpty makes Encode and Decode fail with ErrEmptyInput on
	// zero-length input, instead of returning empty output.
	RejectEmpty bool
}

// Codec encodes messages into Huffman-coded bit-strings and decodes them
// back.  Each Encode call builds a fresh tree from the message and retains
// it; Decode interprets its input against the tree retained by the most
// recent successful Encode call.
//
// The zero Codec is ready to use with default Options.  A Codec is not safe
// for concurrent use.
//
type Codec struct {
	alphabetSize int
	rejectEmpty  bool
	tree         *Tree
	codes        CodeTable
}

// NewCodec returns a Codec configured by opts.
func NewCodec(opts Options) (*Codec, error) {
	if opts.AlphabetSize < 0 || opts.AlphabetSize > MaxAlphabetSize {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrInvalidAlphabetSize, opts.AlphabetSize, MaxAlphabetSize)
	}
	return &Codec{
		alphabetSize: opts.AlphabetSize,
		rejectEmpty:  opts.RejectEmpty,
	}, nil
}

// AlphabetSize returns the number of valid Symbols.
func (c *Codec) AlphabetSize() int {
	if c.alphabetSize == 0 {
		return DefaultAlphabetSize
	}
	return c.alphabetSize
}

// Tree returns the tree retained by the most recent successful Encode call,
// or nil if there was none.
func (c *Codec) Tree() *Tree {
	return c.tree
}

// CodeTable returns the code table built by the most recent successful
// Encode call.
func (c *Codec) CodeTable() CodeTable {
	return c.codes
}

// Encode replaces the retained tree with one built for message, and returns
// message encoded as a string of '0' and '1' characters.
//
// It fails with ErrInvalidAlphabet if message holds a byte outside the
// alphabet.  An empty message encodes to "" and retains an empty tree, unless
// Options.RejectEmpty is set.  On failure the retained tree is unchanged.
//
func (c *Codec) Encode(message string) (string, error) {
	return c.EncodeBytes([]byte(message))
}

// EncodeBytes is like Encode, but takes the message as a byte slice.
func (c *Codec) EncodeBytes(message []byte) (string, error) {
	if len(message) == 0 {
		if c.rejectEmpty {
			return "", fmt.Errorf("%w: nothing to encode", ErrEmptyInput)
		}
		c.tree, c.codes = &Tree{}, CodeTable{}
		return "", nil
	}

	freq, err := CountFrequencies(message, c.AlphabetSize())
	if err != nil {
		return "", err
	}

	tree := BuildTree(&freq)
	codes := BuildCodeTable(tree)

	var buf strings.Builder
	buf.Grow(int(codes.EncodedSize(&freq)))
	for _, b := range message {
		hc, found := codes.Lookup(Symbol(b))
		assert.Assertf(found, "no code for symbol %d", b)
		buf.WriteString(string(hc))
	}

	c.tree, c.codes = tree, codes
	return buf.String(), nil
}

// Decode interprets bits against the retained tree and returns the decoded
// message.
//
// A cursor starts at the root and follows the left child on '0' and the
// right child on '1'.  On reaching a leaf its Symbol is emitted and the
// cursor returns to the root.
//
// It fails with ErrNoTreeAvailable if no Encode call has retained a tree (or
// the retained tree is empty and bits is not), ErrInvalidBit if bits holds a
// character other than '0' or '1', ErrIncompleteCodeword if bits ends in the
// middle of a codeword, and ErrUnknownCodeword if a codeword leads to the
// sentinel leaf.
//
func (c *Codec) Decode(bits string) (string, error) {
	out, err := c.decode(bits)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// DecodeBytes is like Decode, but returns the message as a byte slice.
func (c *Codec) DecodeBytes(bits string) ([]byte, error) {
	return c.decode(bits)
}

func (c *Codec) decode(bits string) ([]byte, error) {
	if c.tree == nil {
		return nil, fmt.Errorf("%w: Decode called before Encode", ErrNoTreeAvailable)
	}
	if len(bits) == 0 {
		if c.rejectEmpty {
			return nil, fmt.Errorf("%w: nothing to decode", ErrEmptyInput)
		}
		return []byte{}, nil
	}
	if index := firstInvalidBit(bits); index >= 0 {
		return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidBit, bits[index], index)
	}
	if c.tree.IsEmpty() {
		return nil, fmt.Errorf("%w: retained tree is empty", ErrNoTreeAvailable)
	}

	t := c.tree
	root := t.root()
	cursor := root
	start := 0

	sizeHint := len(bits)
	if minSize := c.codes.MinSize(); minSize > 1 {
		sizeHint /= minSize
	}
	out := make([]byte, 0, sizeHint)

	for index := 0; index < len(bits); index++ {
		cursor = t.child(cursor, bits[index])
		n := t.nodes[cursor]
		if !n.isLeaf() {
			continue
		}
		if n.symbol == InvalidSymbol {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrUnknownCodeword, bits[start:index+1], start)
		}
		out = append(out, byte(n.symbol))
		cursor = root
		start = index + 1
	}

	if cursor != root {
		return nil, fmt.Errorf("%w: %d bits left over at offset %d", ErrIncompleteCodeword, len(bits)-start, start)
	}
	return out, nil
}
