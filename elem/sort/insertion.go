// Copyright 2025 sortbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sort

import "github.com/ajroetker/sortbench/elem"

// Insertion sorts s by swapping each element backward while it is less
// than its left neighbour.
func Insertion[T elem.Ordered](s []T) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && elem.Less(s[j], s[j-1]); j-- {
			elem.Exchange(s, j, j-1)
		}
	}
}

// InsertionWithoutExchanges is insertion sort that first scans for the
// insertion point j of s[i] and then moves s[j:i+1] right by one position
// in a single rotation, instead of i-j pairwise exchanges.
func InsertionWithoutExchanges[T elem.Ordered](s []T) {
	for i := 1; i < len(s); i++ {
		j := i
		for j > 0 && elem.Less(s[i], s[j-1]) {
			j--
		}
		rotateRight(s[j : i+1])
	}
}

// InsertionWithSentinel moves the minimum of s to s[0] and then runs the
// insertion inner loop without the j > 0 guard: s[0] stops every backward
// walk.
func InsertionWithSentinel[T elem.Ordered](s []T) {
	n := len(s)
	if n == 0 {
		return
	}

	minIndex := 0
	for i := 1; i < n; i++ {
		if elem.Less(s[i], s[minIndex]) {
			minIndex = i
		}
	}
	elem.Exchange(s, 0, minIndex)

	for i := 1; i < n; i++ {
		for j := i; elem.Less(s[j], s[j-1]); j-- {
			elem.Exchange(s, j, j-1)
		}
	}
}
