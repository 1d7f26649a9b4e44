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

// shellGrowth is the multiplier of the h = 3h+1 gap sequence.
const shellGrowth = 3

// ShellGap returns the first gap Shell uses for a sequence of length n: the
// largest h in 1, 4, 13, 40, ... with h < n/3 (integer division), or 1 when
// no such h exists. It is 1 for n < 15.
func ShellGap(n int) int {
	h := 1
	for shellGrowth*h+1 < n/shellGrowth {
		h = shellGrowth*h + 1
	}
	return h
}

// Shell sorts s with gapped insertion passes for h = ShellGap(len(s)),
// h/3, h/9, ... down to 1. The final pass is a plain insertion sort.
func Shell[T elem.Ordered](s []T) {
	n := len(s)
	for h := ShellGap(n); h >= 1; h /= shellGrowth {
		for i := h; i < n; i++ {
			for j := i; j >= h && elem.Less(s[j], s[j-h]); j -= h {
				elem.Exchange(s, j, j-h)
			}
		}
	}
}
