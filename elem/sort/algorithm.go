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
	"errors"
	"fmt"
	"strings"

	"github.com/ajroetker/sortbench/elem"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm for unrecognized names.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm identifies one of the sorting algorithms in this package.
type Algorithm int

const (
	// AlgBubble selects Bubble.
	AlgBubble Algorithm = iota

	// AlgSelection selects Selection.
	AlgSelection

	// AlgInsertion selects Insertion.
	AlgInsertion

	// AlgShell selects Shell.
	AlgShell

	// AlgInsertionWithoutExchanges selects InsertionWithoutExchanges.
	AlgInsertionWithoutExchanges

	// AlgInsertionWithSentinel selects InsertionWithSentinel.
	AlgInsertionWithSentinel

	numAlgorithms
)

var algorithmNames = [numAlgorithms]string{
	AlgBubble:                    "bubble",
	AlgSelection:                 "selection",
	AlgInsertion:                 "insertion",
	AlgShell:                     "shell",
	AlgInsertionWithoutExchanges: "insertion-without-exchanges",
	AlgInsertionWithSentinel:     "insertion-with-sentinel",
}

// Valid reports whether a is one of the declared algorithms.
func (a Algorithm) Valid() bool {
	return a >= 0 && a < numAlgorithms
}

// String returns the name accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	if !a.Valid() {
		return "unknown"
	}
	return algorithmNames[a]
}

// Algorithms returns every algorithm, in declaration order.
func Algorithms() []Algorithm {
	algs := make([]Algorithm, numAlgorithms)
	for i := range algs {
		algs[i] = Algorithm(i)
	}
	return algs
}

// ParseAlgorithm returns the algorithm with the given name.
// Matching ignores case, surrounding spaces, and treats '_' like '-'.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range algorithmNames {
		if n == key {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q (valid: %s)", ErrUnknownAlgorithm, name, strings.Join(algorithmNames[:], ", "))
}

// Func returns the sort function for a, instantiated for T.
// It panics if a is not one of the declared algorithms.
func Func[T elem.Ordered](a Algorithm) elem.SortFunc[T] {
	switch a {
	case AlgBubble:
		return Bubble[T]
	case AlgSelection:
		return Selection[T]
	case AlgInsertion:
		return Insertion[T]
	case AlgShell:
		return Shell[T]
	case AlgInsertionWithoutExchanges:
		return InsertionWithoutExchanges[T]
	case AlgInsertionWithSentinel:
		return InsertionWithSentinel[T]
	}
	panic(fmt.Sprintf("sort: invalid Algorithm %d", int(a)))
}
