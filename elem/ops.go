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

// Less reports whether a is ordered before b.
func Less[T Ordered](a, b T) bool {
	return a < b
}

// Exchange swaps s[i] and s[j] in place.
// Indices outside [0, len(s)) panic.
func Exchange[T any](s []T, i, j int) {
	s[i], s[j] = s[j], s[i]
}
