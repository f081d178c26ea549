// Package dp holds the dynamic-programming core shared by both distance
// modes.
package dp

import "slices"

// Distance returns the Levenshtein edit distance between two element
// sequences. It works for any comparable element type, so the same loop
// serves byte-wise and rune-wise comparison.
//
// Uses the standard DP approach with a single rolling row to keep
// allocations minimal: one []int of len(b)+1 per call, nothing shared
// between calls.
func Distance[T comparable](a, b []T) int {
	// Trivial cases first, in this order: slices.Equal also covers
	// two empty sequences.
	if slices.Equal(a, b) {
		return 0
	}
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// row[j] = distance(a[:i], b[:j])
	row := make([]int, lb+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= la; i++ {
		prev := i
		for j := 1; j <= lb; j++ {
			cost := row[j-1]
			if a[i-1] != b[j-1] {
				cost++ // substitute
				if row[j]+1 < cost {
					cost = row[j] + 1 // delete
				}
				if prev+1 < cost {
					cost = prev + 1 // insert
				}
			}
			row[j-1] = prev
			prev = cost
		}
		row[lb] = prev
	}
	return row[lb]
}
