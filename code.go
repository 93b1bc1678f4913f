package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a sequence of bits as a string of '0' and '1' characters.
// The first character is the first bit, i.e. the branch taken at the root.
type Code string

// MakeCode is a convenience function that constructs a Code of the given
// size from the low bits of bits.  The most significant of those bits is the
// first bit of the Code.
func MakeCode(size byte, bits uint64) Code {
	if size == 0 {
		return ""
	}
	format := "%0" + strconv.FormatUint(uint64(size), 10) + "b"
	s := fmt.Sprintf(format, bits)
	return Code(s[len(s)-int(size):])
}

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return len(hc)
}

// HasPrefix reports whether prefix is a prefix of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(string(hc), string(prefix))
}

// Valid reports whether this Code is non-empty and consists only of '0' and
// '1' characters.
func (hc Code) Valid() bool {
	return hc != "" && firstInvalidBit(string(hc)) < 0
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if len(hc) == 0 {
		return "\"\""
	}
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")

// firstInvalidBit returns the index of the first character of bits that is
// neither '0' nor '1', or -1 if there is none.
func firstInvalidBit(bits string) int {
	for i := 0; i < len(bits); i++ {
		if ch := bits[i]; ch != '0' && ch != '1' {
			return i
		}
	}
	return -1
}
