// Package sort provides the elementary in-place sorting algorithms compared
// by sortbench: bubble sort, selection sort, insertion sort and two of its
// variants, and shellsort.
//
// # Algorithms
//
// All algorithms are generic over elem.Ordered, sort in place into
// non-decreasing order and use O(1) auxiliary space:
//   - Bubble: n full passes over adjacent pairs, no early exit
//   - Selection: one swap per position, O(n²) comparisons
//   - Insertion: backward pairwise swaps, O(n) on nearly sorted input
//   - InsertionWithoutExchanges: finds the insertion point, then shifts the
//     block in one rotation
//   - InsertionWithSentinel: moves the minimum to the front so the inner
//     loop needs no lower-bound check
//   - Shell: gapped insertion sort over the 1, 4, 13, 40, ... sequence
//
// None of the algorithms is stable.
//
// # Example Usage
//
//	import "github.com/ajroetker/sortbench/elem/sort"
//
//	func Process(data []int32) {
//	    sort.Shell(data)
//	    if !sort.IsSorted(data) {
//	        panic("unreachable")
//	    }
//	}
//
// Algorithms can also be selected by name through Algorithm and Func, which
// is what the benchmark driver does.
package sort
