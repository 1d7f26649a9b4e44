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

// Package bench is the sortbench microbenchmark driver: it times two
// sorting algorithms over freshly generated sequences and reports the ratio
// of their total elapsed times.
package bench

import (
	"errors"
	"fmt"

	"github.com/ajroetker/sortbench/elem/sort"
)

// Default parameters: n = 3000 (so sequences of 6000
// elements), 20 trials, sentinel insertion sort against insertion sort.
const (
	DefaultN      = 3000
	DefaultTrials = 20
	DefaultFirst  = sort.AlgInsertionWithSentinel
	DefaultSecond = sort.AlgInsertion
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid benchmark config")

// Config holds the benchmark parameters.
type Config struct {
	// N is the generator parameter; each sequence has 2*N elements.
	N int

	// Trials is the number of sequences sorted per algorithm.
	Trials int

	// First and Second are the algorithms being compared. The reported
	// ratio is First / Second.
	First, Second sort.Algorithm

	// Seed selects a deterministic generator when non-zero. Zero uses the
	// process-wide random source.
	Seed uint64

	// Strict turns a failed sortedness check into an error. Otherwise
	// failures are only counted in the Result.
	Strict bool
}

// DefaultConfig returns the default benchmark parameters.
func DefaultConfig() Config {
	return Config{
		N:      DefaultN,
		Trials: DefaultTrials,
		First:  DefaultFirst,
		Second: DefaultSecond,
	}
}

// Validate reports whether c can be run.
func (c Config) Validate() error {
	if c.N < 0 {
		return fmt.Errorf("%w: n must be >= 0, got %d", ErrInvalidConfig, c.N)
	}
	if c.Trials < 1 {
		return fmt.Errorf("%w: trials must be >= 1, got %d", ErrInvalidConfig, c.Trials)
	}
	for _, a := range []sort.Algorithm{c.First, c.Second} {
		if !a.Valid() {
			return fmt.Errorf("%w: algorithm %d", ErrInvalidConfig, int(a))
		}
	}
	return nil
}
