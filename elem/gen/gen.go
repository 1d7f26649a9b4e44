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

// Package gen generates benchmark input for the sorting algorithms.
//
// A generated sequence of length 2n interleaves n uniformly random int32
// values with the descending run n, n-1, ..., 1, so it is neither fully
// random nor fully adversarial.
package gen

import "math/rand/v2"

// source is the subset of *rand.Rand used by Generator.
type source interface {
	Uint32() uint32
}

// globalSource draws from the process-wide math/rand/v2 source.
type globalSource struct{}

func (globalSource) Uint32() uint32 { return rand.Uint32() }

// Generator produces benchmark sequences from a random source.
// A Generator is not safe for concurrent use unless it wraps the global
// source.
type Generator struct {
	src source
}

// Default returns a Generator backed by the process-wide random source.
func Default() *Generator {
	return &Generator{src: globalSource{}}
}

// New returns a deterministic Generator seeded with seed.
func New(seed uint64) *Generator {
	return FromRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// FromRand returns a Generator that draws from r.
func FromRand(r *rand.Rand) *Generator {
	return &Generator{src: r}
}

// Generate returns a sequence of length 2n: for i in [0, n), a random int32
// followed by n-i. n <= 0 yields an empty, non-nil sequence.
func (g *Generator) Generate(n int) []int32 {
	if n <= 0 {
		return []int32{}
	}
	s := make([]int32, 0, 2*n)
	for i := range n {
		s = append(s, int32(g.src.Uint32()), int32(n-i))
	}
	return s
}

// Generate is Default().Generate(n).
func Generate(n int) []int32 {
	return Default().Generate(n)
}
