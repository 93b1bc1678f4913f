// Package huffman implements Huffman coding over a single-byte alphabet.
//
// A Codec counts symbol frequencies in a message, builds an optimal prefix
// tree with a min-heap merge, assigns each symbol the root-to-leaf path as its
// codeword, and concatenates the codewords into a bit-string of '0' and '1'
// characters.  Decode walks the tree retained by the most recent Encode call
// to recover the message.
//
// A Codec holds mutable state and is not safe for concurrent use.  Serialize
// each Encode/Decode pair, or use one Codec per stream.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
