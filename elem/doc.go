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

// Package elem defines the element contract shared by every sorting
// algorithm in sortbench: the Ordered constraint, the Less and Exchange
// primitives, and the Sorter abstraction.
//
// # Example Usage
//
//	import "github.com/ajroetker/sortbench/elem"
//
//	func Reverse[T elem.Ordered](s []T) {
//	    for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
//	        elem.Exchange(s, i, j)
//	    }
//	}
//
// The package also reports the host the benchmark runs on (see Host) and
// reads the SORTBENCH_* environment variables.
package elem
