package sort

import "github.com/ajroetker/sortbench/elem"

// Helper functions shared across the algorithms.

// IsSorted reports whether s is in non-decreasing order.
// It stops at the first adjacent inversion; empty and single-element
// slices are sorted.
func IsSorted[T elem.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if elem.Less(s[i], s[i-1]) {
			return false
		}
	}
	return true
}

// rotateRight moves the last element of s to the front and shifts the rest
// one position right, as one block move.
func rotateRight[T any](s []T) {
	n := len(s)
	if n <= 1 {
		return
	}
	last := s[n-1]
	copy(s[1:], s[:n-1])
	s[0] = last
}
