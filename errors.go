package huffman

import (
	"errors"
)

var (
	// ErrInvalidAlphabet is returned by Encode when the message holds a
	// byte outside the Codec's alphabet.
	ErrInvalidAlphabet = errors.New("huffman: symbol outside alphabet")

	// ErrInvalidAlphabetSize is returned when Options asks for an alphabet
	// that does not fit in one byte.
	ErrInvalidAlphabetSize = errors.New("huffman: invalid alphabet size")

	// ErrEmptyInput is returned for zero-length input when
	// Options.RejectEmpty is set.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrInvalidBit is returned by Decode when the bit-string holds a
	// character other than '0' or '1'.
	ErrInvalidBit = errors.New("huffman: invalid bit")

	// ErrIncompleteCodeword is returned by Decode when the bit-string ends
	// in the middle of a codeword.
	ErrIncompleteCodeword = errors.New("huffman: incomplete trailing codeword")

	// ErrUnknownCodeword is returned by Decode when a codeword leads to a
	// leaf that holds no Symbol, i.e. the sentinel leaf of a one-Symbol
	// tree.
	ErrUnknownCodeword = errors.New("huffman: codeword maps to no symbol")

	// ErrNoTreeAvailable is returned by Decode when no Encode call has
	// established a tree able to decode the input.
	ErrNoTreeAvailable = errors.New("huffman: no tree available")
)
