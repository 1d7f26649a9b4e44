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

// Bubble sorts s with n full passes of adjacent compare-and-swap.
// There is no early exit on a pass without swaps: sorted input still costs
// O(n²) comparisons.
func Bubble[T elem.Ordered](s []T) {
	n := len(s)
	for range n {
		for i := 1; i < n; i++ {
			if elem.Less(s[i], s[i-1]) {
				elem.Exchange(s, i, i-1)
			}
		}
	}
}

// Selection sorts s by swapping the minimum of s[i:] into position i for
// every i. Ties keep the first occurrence, and exactly len(s) exchanges are
// made (some of them self-exchanges).
func Selection[T elem.Ordered](s []T) {
	n := len(s)
	for i := range n {
		minIndex := i
		for j := i + 1; j < n; j++ {
			if elem.Less(s[j], s[minIndex]) {
				minIndex = j
			}
		}
		elem.Exchange(s, minIndex, i)
	}
}
