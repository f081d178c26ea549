// Package levdist computes the Levenshtein (edit) distance between two
// strings: the minimum number of single-element insertions, deletions and
// substitutions that turn one into the other. All three operations cost 1.
//
// Two comparison modes are offered. Byte mode treats the raw UTF-8
// encoding as the element sequence and is allocation-light; rune mode
// decodes both strings first and counts edits per Unicode scalar value.
// Results are plain ints: a distance is bounded by the longer input's
// length, which Go already bounds by int, so no overflow is possible.
//
// No Unicode normalization is performed on either input. Callers that
// need NFC/NFD-insensitive comparison must normalize beforehand.
package levdist

import "github.com/Alfex4936/levdist/internal/dp"

// Distance returns the edit distance between a and b.
//
// When fast is true the strings are compared byte-by-byte, skipping UTF-8
// decoding entirely. That is only accurate for single-byte text: a
// multi-byte character counts as one element per encoded byte, so byte
// mode overcounts edits on non-ASCII input (and two characters sharing a
// byte prefix look partially equal). This is a deliberate, silent
// trade-off, not an error; pass fast=false for character-accurate
// distances on arbitrary text.
func Distance(a, b string, fast bool) int {
	if fast {
		return DistanceBytes(a, b)
	}
	return DistanceRunes(a, b)
}

// DistanceBytes returns the byte-wise edit distance between a and b.
// The result is measured in encoded bytes; see Distance for the caveat
// on multi-byte characters.
func DistanceBytes(a, b string) int {
	return dp.Distance([]byte(a), []byte(b))
}

// DistanceRunes returns the rune-wise edit distance between a and b,
// measured in Unicode scalar values. Correct for any well-formed text.
func DistanceRunes(a, b string) int {
	return dp.Distance([]rune(a), []rune(b))
}
