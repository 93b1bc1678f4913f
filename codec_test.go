package huffman

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func allASCII() string {
	var sb strings.Builder
	for b := 0; b < DefaultAlphabetSize; b++ {
		sb.WriteByte(byte(b))
	}
	return sb.String()
}

func randomMessage(rng *rand.Rand, length, bound int) []byte {
	res := make([]byte, length)
	for i := range res {
		res[i] = byte(rng.Intn(bound))
	}
	return res
}

func TestCodec_RoundTrip(t *testing.T) {
	testData := []string{
		"Levon",
		"a",
		"aaaa",
		"aaab",
		"ab",
		"hello, world",
		"the quick brown fox jumps over the lazy dog",
		"\x00\x00\x01",
		allASCII(),
		strings.Repeat("abcdefgh", 100) + "z",
	}
	for index, message := range testData {
		message := message
		t.Run(strconv.Itoa(index), func(t *testing.T) {
			var c Codec
			encoded, err := c.Encode(message)
			require.NoError(t, err)
			require.NotEmpty(t, encoded)
			require.Equal(t, -1, firstInvalidBit(encoded))

			decoded, err := c.Decode(encoded)
			require.NoError(t, err)
			require.Equal(t, message, decoded)
			require.True(t, c.CodeTable().IsPrefixFree())
		})
	}
}

func TestCodec_RandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	c, err := NewCodec(Options{AlphabetSize: MaxAlphabetSize})
	require.NoError(t, err)

	for round := 0; round < 100; round++ {
		message := randomMessage(rng, 1+rng.Intn(500), 1+rng.Intn(MaxAlphabetSize))

		encoded, err := c.EncodeBytes(message)
		require.NoError(t, err)
		require.Equal(t, c.CodeTable().EncodedSize(mustCount(t, message)), uint64(len(encoded)))

		decoded, err := c.DecodeBytes(encoded)
		require.NoError(t, err)
		require.Equal(t, message, decoded)
	}
}

func mustCount(t *testing.T, message []byte) *FrequencyTable {
	freq, err := CountFrequencies(message, MaxAlphabetSize)
	require.NoError(t, err)
	return &freq
}

func TestCodec_Levon(t *testing.T) {
	var c Codec
	encoded, err := c.Encode("Levon")
	require.NoError(t, err)

	require.Equal(t, 5, c.Tree().Leaves())
	require.Equal(t, 9, c.Tree().Len())
	require.Equal(t, 5, c.CodeTable().Len())

	decoded, err := c.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, "Levon", decoded)
}

func TestCodec_SingleSymbol(t *testing.T) {
	var c Codec
	encoded, err := c.Encode("aaaa")
	require.NoError(t, err)
	require.Len(t, encoded, 4)
	require.Equal(t, strings.Repeat(encoded[:1], 4), encoded)

	decoded, err := c.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, "aaaa", decoded)

	// The other 1-bit path leads to the sentinel leaf.
	other := "0"
	if encoded[0] == '0' {
		other = "1"
	}
	_, err = c.Decode(other)
	require.ErrorIs(t, err, ErrUnknownCodeword)
}

func TestCodec_TwoSymbols(t *testing.T) {
	var c Codec
	_, err := c.Encode("aaab")
	require.NoError(t, err)

	a, found := c.CodeTable().Lookup('a')
	require.True(t, found)
	b, found := c.CodeTable().Lookup('b')
	require.True(t, found)
	require.LessOrEqual(t, a.Size(), b.Size())
	require.False(t, a.HasPrefix(b))
	require.False(t, b.HasPrefix(a))
}

func TestCodec_Deterministic(t *testing.T) {
	const message = "she sells sea shells by the sea shore"

	var c1, c2 Codec
	e1, err := c1.Encode(message)
	require.NoError(t, err)
	e2, err := c2.Encode(message)
	require.NoError(t, err)
	require.Equal(t, e1, e2)
}

func TestCodec_ReplacesTree(t *testing.T) {
	var c Codec
	first, err := c.Encode("abcabcabc")
	require.NoError(t, err)
	firstTree := c.Tree()

	second, err := c.Encode("xyzzy")
	require.NoError(t, err)
	require.NotSame(t, firstTree, c.Tree())

	decoded, err := c.Decode(second)
	require.NoError(t, err)
	require.Equal(t, "xyzzy", decoded)

	decoded, err = c.Decode(first)
	if err == nil {
		require.NotEqual(t, "abcabcabc", decoded)
	}
}

func TestCodec_InvalidAlphabet(t *testing.T) {
	var c Codec
	encoded, err := c.Encode("Levon")
	require.NoError(t, err)
	tree := c.Tree()

	_, err = c.Encode("caf\xc3\xa9")
	require.ErrorIs(t, err, ErrInvalidAlphabet)
	require.Same(t, tree, c.Tree(), "failed Encode must not replace the tree")

	decoded, err := c.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, "Levon", decoded)

	small, err := NewCodec(Options{AlphabetSize: 'z'})
	require.NoError(t, err)
	_, err = small.Encode("xyz")
	require.ErrorIs(t, err, ErrInvalidAlphabet)
	require.Nil(t, small.Tree())
}

func TestCodec_WideAlphabet(t *testing.T) {
	c, err := NewCodec(Options{AlphabetSize: MaxAlphabetSize})
	require.NoError(t, err)
	require.Equal(t, MaxAlphabetSize, c.AlphabetSize())

	message := []byte{0x00, 0x80, 0xff, 0xff, 0x7f}
	encoded, err := c.EncodeBytes(message)
	require.NoError(t, err)

	decoded, err := c.DecodeBytes(encoded)
	require.NoError(t, err)
	require.Equal(t, message, decoded)
}

func TestNewCodec_InvalidAlphabetSize(t *testing.T) {
	for _, size := range []int{-1, MaxAlphabetSize + 1} {
		_, err := NewCodec(Options{AlphabetSize: size})
		require.ErrorIs(t, err, ErrInvalidAlphabetSize)
	}

	c, err := NewCodec(Options{})
	require.NoError(t, err)
	require.Equal(t, DefaultAlphabetSize, c.AlphabetSize())
}

func TestCodec_InvalidBit(t *testing.T) {
	var c Codec
	encoded, err := c.Encode("Levon")
	require.NoError(t, err)

	for _, bits := range []string{"2", encoded + "x", "01 1", encoded[:3] + "\x00" + encoded[3:]} {
		_, err := c.Decode(bits)
		require.ErrorIs(t, err, ErrInvalidBit, "input %q", bits)
	}
}

func TestCodec_IncompleteCodeword(t *testing.T) {
	var c Codec
	encoded, err := c.Encode("Levon")
	require.NoError(t, err)

	// Five equally frequent symbols all get codes of at least 2 bits.
	require.GreaterOrEqual(t, c.CodeTable().MinSize(), 2)

	_, err = c.Decode(encoded[:len(encoded)-1])
	require.ErrorIs(t, err, ErrIncompleteCodeword)

	_, err = c.Decode(encoded[:1])
	require.ErrorIs(t, err, ErrIncompleteCodeword)
}

func TestCodec_NoTreeAvailable(t *testing.T) {
	var c Codec
	_, err := c.Decode("0101")
	require.ErrorIs(t, err, ErrNoTreeAvailable)

	_, err = c.Decode("")
	require.ErrorIs(t, err, ErrNoTreeAvailable)
	require.Nil(t, c.Tree())
}

func TestCodec_EmptyInput(t *testing.T) {
	var c Codec
	encoded, err := c.Encode("")
	require.NoError(t, err)
	require.Equal(t, "", encoded)
	require.NotNil(t, c.Tree())
	require.True(t, c.Tree().IsEmpty())

	decoded, err := c.Decode("")
	require.NoError(t, err)
	require.Equal(t, "", decoded)

	_, err = c.Decode("0")
	require.ErrorIs(t, err, ErrNoTreeAvailable)
}

func TestCodec_RejectEmpty(t *testing.T) {
	c, err := NewCodec(Options{RejectEmpty: true})
	require.NoError(t, err)

	_, err = c.Encode("")
	require.ErrorIs(t, err, ErrEmptyInput)
	require.Nil(t, c.Tree())

	_, err = c.Encode("ab")
	require.NoError(t, err)

	_, err = c.Decode("")
	require.ErrorIs(t, err, ErrEmptyInput)
}
