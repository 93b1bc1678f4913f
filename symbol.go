package huffman

// Symbol represents a symbol in a single-byte alphabet.  Negative symbols are
// not valid.
type Symbol int32

const (
	// DefaultAlphabetSize is the number of Symbols in the alphabet used when
	// no other size is configured: the 7-bit ASCII range.
	DefaultAlphabetSize = 128

	// MaxAlphabetSize is the largest supported alphabet, one full byte.
	MaxAlphabetSize = 256
)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.  Internal tree nodes and the sentinel leaf carry
// it in place of a real symbol.
const InvalidSymbol = Symbol(-1)

// IsValid reports whether s lies inside an alphabet of the given size.
func (s Symbol) IsValid(alphabetSize int) bool {
	return s >= 0 && int(s) < alphabetSize
}
