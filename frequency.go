package huffman

import (
	"fmt"
)

// FrequencyTable holds the number of occurrences of each Symbol, indexed by
// Symbol over the largest supported alphabet.  Counts saturate at
// math.MaxUint32.
type FrequencyTable [MaxAlphabetSize]uint32

// CountFrequencies builds a FrequencyTable for message.  It fails with
// ErrInvalidAlphabet if any byte of message lies outside an alphabet of the
// given size.
func CountFrequencies(message []byte, alphabetSize int) (FrequencyTable, error) {
	var freq FrequencyTable
	for index, b := range message {
		symbol := Symbol(b)
		if !symbol.IsValid(alphabetSize) {
			return FrequencyTable{}, fmt.Errorf("%w: byte 0x%02x at offset %d, alphabet size %d", ErrInvalidAlphabet, b, index, alphabetSize)
		}
		freq[symbol] = saturatingAdd(freq[symbol], 1)
	}
	return freq, nil
}

// Len returns the number of Symbols with a non-zero count.
func (freq *FrequencyTable) Len() int {
	var n int
	for _, count := range freq {
		if count != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts.
func (freq *FrequencyTable) Total() uint64 {
	var total uint64
	for _, count := range freq {
		total += uint64(count)
	}
	return total
}
