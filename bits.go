package huffman

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// PackBits packs a bit-string into bytes, first bit in the most significant
// position of the first byte.  The last byte is padded with zero bits; the
// caller must keep len(bits) to undo the padding.
func PackBits(bits string) ([]byte, error) {
	if index := firstInvalidBit(bits); index >= 0 {
		return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidBit, bits[index], index)
	}

	var buf bytes.Buffer
	buf.Grow((len(bits) + 7) / 8)
	w := bitio.NewWriter(&buf)
	for index := 0; index < len(bits); index++ {
		w.TryWriteBool(bits[index] == '1')
	}
	if w.TryError != nil {
		return nil, w.TryError
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnpackBits is the inverse of PackBits: it returns the first numBits bits
// of packed as a bit-string.
func UnpackBits(packed []byte, numBits int) (string, error) {
	if numBits < 0 || numBits > 8*len(packed) {
		return "", fmt.Errorf("huffman: cannot unpack %d bits from %d bytes", numBits, len(packed))
	}

	var sb bytes.Buffer
	sb.Grow(numBits)
	r := bitio.NewReader(bytes.NewReader(packed))
	for index := 0; index < numBits; index++ {
		if r.TryReadBool() {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	if r.TryError != nil {
		return "", r.TryError
	}
	return sb.String(), nil
}
