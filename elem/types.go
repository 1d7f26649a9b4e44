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

package elem

import "cmp"

// Ordered is the constraint for sortable elements: any type with a total
// order under < (integers, floats, strings).
//
// Floats are accepted but NaN breaks the total order; sorting a slice with
// NaNs leaves it in an unspecified permutation.
type Ordered interface {
	cmp.Ordered
}

// Sorter sorts a sequence in place into non-decreasing order.
type Sorter[T Ordered] interface {
	Sort(s []T)
}

// SortFunc adapts an ordinary function to the Sorter interface.
type SortFunc[T Ordered] func(s []T)

// Sort calls f(s).
func (f SortFunc[T]) Sort(s []T) {
	f(s)
}
