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

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// namedSort pairs an int32 instantiation of an algorithm with its name.
type namedSort struct {
	name string
	sort func([]int32)
}

func allSorts() []namedSort {
	return []namedSort{
		{"Bubble", Bubble[int32]},
		{"Selection", Selection[int32]},
		{"Insertion", Insertion[int32]},
		{"Shell", Shell[int32]},
		{"InsertionWithoutExchanges", InsertionWithoutExchanges[int32]},
		{"InsertionWithSentinel", InsertionWithSentinel[int32]},
	}
}

// TestSortFixedInput checks the reference seven element scenario.
func TestSortFixedInput(t *testing.T) {
	want := []int32{-2, 0, 1, 2, 3, 4, 5}
	for _, alg := range allSorts() {
		t.Run(alg.name, func(t *testing.T) {
			data := []int32{1, 2, 5, 3, 0, -2, 4}
			alg.sort(data)
			if diff := cmp.Diff(want, data); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", alg.name, diff)
			}
		})
	}
}

// TestSortEmpty tests sorting empty and nil slices
func TestSortEmpty(t *testing.T) {
	for _, alg := range allSorts() {
		var nilSlice []int32
		alg.sort(nilSlice)
		empty := []int32{}
		alg.sort(empty)
		if len(empty) != 0 {
			t.Errorf("%s(empty) should not modify empty slice", alg.name)
		}
	}
}

// TestSortSingle tests sorting single element slices
func TestSortSingle(t *testing.T) {
	for _, alg := range allSorts() {
		data := []int32{42}
		alg.sort(data)
		if data[0] != 42 {
			t.Errorf("%s([42]) = %v, want [42]", alg.name, data)
		}
	}
}

// TestSortPatterns sorts structured inputs and compares with slices.Sort,
// which checks both ordering and that the result is a permutation of the
// input.
func TestSortPatterns(t *testing.T) {
	patterns := map[string][]int32{
		"two":        {2, 1},
		"sorted":     {1, 2, 3, 4, 5, 6, 7, 8},
		"reverse":    {8, 7, 6, 5, 4, 3, 2, 1},
		"duplicates": {3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5},
		"allSame":    {5, 5, 5, 5, 5, 5, 5, 5},
		"extremes":   {2147483647, -2147483648, 0, -1, 2147483647, -2147483648},
		"minLast":    {4, 3, 9, 7, 1, 8, -5},
	}
	for _, alg := range allSorts() {
		for name, input := range patterns {
			data := slices.Clone(input)
			want := slices.Clone(input)
			slices.Sort(want)

			alg.sort(data)
			if diff := cmp.Diff(want, data); diff != "" {
				t.Errorf("%s(%s) mismatch (-want +got):\n%s", alg.name, name, diff)
			}
		}
	}
}

// TestSortRandom tests sorting random int32 data of several sizes
func TestSortRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	sizes := []int{0, 1, 2, 3, 5, 6, 7, 10, 13, 14, 40, 41, 100, 257}
	for _, alg := range allSorts() {
		for _, n := range sizes {
			data := make([]int32, n)
			for i := range data {
				data[i] = rng.Int32N(200) - 100
			}
			want := slices.Clone(data)
			slices.Sort(want)

			alg.sort(data)
			if !IsSorted(data) {
				t.Errorf("%s(random, n=%d) produced unsorted result", alg.name, n)
			}
			if diff := cmp.Diff(want, data); diff != "" {
				t.Errorf("%s(random, n=%d) is not a permutation of the input (-want +got):\n%s", alg.name, n, diff)
			}
		}
	}
}

// TestSortIdempotent checks that sorting a sorted slice leaves it unchanged.
func TestSortIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for _, alg := range allSorts() {
		data := make([]int32, 64)
		for i := range data {
			data[i] = rng.Int32N(16)
		}
		alg.sort(data)
		once := slices.Clone(data)
		alg.sort(data)
		if diff := cmp.Diff(once, data); diff != "" {
			t.Errorf("%s applied twice differs from once (-once +twice):\n%s", alg.name, diff)
		}
	}
}

// TestSortGenericTypes instantiates the algorithms for non-integer types.
func TestSortGenericTypes(t *testing.T) {
	words := []string{"pear", "apple", "fig", "banana", "apple"}
	wantWords := []string{"apple", "apple", "banana", "fig", "pear"}
	floats := []float64{2.5, -1, 0, 3.25, -7.5}
	wantFloats := []float64{-7.5, -1, 0, 2.5, 3.25}

	for _, a := range Algorithms() {
		w := slices.Clone(words)
		Func[string](a)(w)
		if diff := cmp.Diff(wantWords, w); diff != "" {
			t.Errorf("%s[string] mismatch (-want +got):\n%s", a, diff)
		}

		f := slices.Clone(floats)
		Func[float64](a).Sort(f)
		if diff := cmp.Diff(wantFloats, f); diff != "" {
			t.Errorf("%s[float64] mismatch (-want +got):\n%s", a, diff)
		}
	}
}

func TestShellGap(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 1},
		{1, 1},
		{3, 1},
		{5, 1},
		{6, 1},
		{10, 1},
		{13, 1},
		{14, 1},
		{15, 4},
		{40, 4},
		{42, 13},
		{120, 13},
		{123, 40},
		{6000, 1093},
	}
	for _, tt := range tests {
		got := ShellGap(tt.n)
		if got != tt.want {
			t.Errorf("ShellGap(%d) = %d, want %d", tt.n, got, tt.want)
		}
		// The gap stays below n/3 whenever the sequence has a term that does.
		if tt.n/3 > 1 && got >= tt.n/3 {
			t.Errorf("ShellGap(%d) = %d, want < n/3 = %d", tt.n, got, tt.n/3)
		}
	}
}

// TestShellSmallIsInsertion checks that with a starting gap of 1 Shell
// performs exactly the exchanges of Insertion.
func TestShellSmallIsInsertion(t *testing.T) {
	inputs := [][]int32{
		{3, 1, 2},
		{5, -1, 4, 0, 2},
		{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
		{1, 2, 5, 3, 0, -2, 4, 7, -7, 6},
	}
	for _, input := range inputs {
		if g := ShellGap(len(input)); g != 1 {
			t.Fatalf("ShellGap(%d) = %d, want 1", len(input), g)
		}
		shell := slices.Clone(input)
		ins := slices.Clone(input)
		Shell(shell)
		Insertion(ins)
		if diff := cmp.Diff(ins, shell); diff != "" {
			t.Errorf("Shell(%v) differs from Insertion (-insertion +shell):\n%s", input, diff)
		}
	}

	// +0 and -0 compare equal but keep their sign bit, so matching bit
	// patterns show both algorithms moved equal elements the same way.
	negZero := math.Copysign(0, -1)
	zeros := []float64{0, 3, negZero, -1, 0, 2, negZero, negZero, 1, 0}
	shell := slices.Clone(zeros)
	ins := slices.Clone(zeros)
	Shell(shell)
	Insertion(ins)
	for i := range ins {
		if math.Float64bits(shell[i]) != math.Float64bits(ins[i]) {
			t.Errorf("Shell and Insertion differ at %d on signed zeros: shell=%v insertion=%v", i, shell, ins)
			break
		}
	}

	data := []int32{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	Shell(data)
	if diff := cmp.Diff([]int32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, data); diff != "" {
		t.Errorf("Shell(10 reversed) mismatch (-want +got):\n%s", diff)
	}
}

func TestIsSorted(t *testing.T) {
	tests := []struct {
		data []int32
		want bool
	}{
		{nil, true},
		{[]int32{7}, true},
		{[]int32{1, 1, 2, 2}, true},
		{[]int32{-3, 0, 5}, true},
		{[]int32{2, 1}, false},
		{[]int32{1, 2, 3, 0}, false},
	}
	for _, tt := range tests {
		if got := IsSorted(tt.data); got != tt.want {
			t.Errorf("IsSorted(%v) = %v, want %v", tt.data, got, tt.want)
		}
	}
}

func TestRotateRight(t *testing.T) {
	tests := []struct {
		in, want []int
	}{
		{nil, nil},
		{[]int{1}, []int{1}},
		{[]int{1, 2}, []int{2, 1}},
		{[]int{1, 2, 3, 4}, []int{4, 1, 2, 3}},
	}
	for _, tt := range tests {
		got := slices.Clone(tt.in)
		rotateRight(got)
		if !slices.Equal(got, tt.want) {
			t.Errorf("rotateRight(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSelectionDuplicates(t *testing.T) {
	data := []int32{4, 4, 1, 3, 1}
	Selection(data)
	if diff := cmp.Diff([]int32{1, 1, 3, 4, 4}, data); diff != "" {
		t.Errorf("Selection mismatch (-want +got):\n%s", diff)
	}
}
