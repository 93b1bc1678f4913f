package huffman

import (
	mathbits "math/bits"
)

func log2int(x int) int {
	if x <= 0 {
		x = 1
	}
	return mathbits.Len(uint(x))
}

// saturatingAdd adds two frequencies, pinning at math.MaxUint32 instead of
// wrapping around.
func saturatingAdd(a, b uint32) uint32 {
	sum, carry := mathbits.Add32(a, b, 0)
	if carry != 0 {
		return ^uint32(0)
	}
	return sum
}
