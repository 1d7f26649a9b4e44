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

package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/ajroetker/sortbench/elem"
	"github.com/ajroetker/sortbench/elem/gen"
	"github.com/ajroetker/sortbench/elem/sort"
	"github.com/google/uuid"
)

// ErrNotSorted is returned in strict mode when an algorithm leaves a
// sequence out of order.
var ErrNotSorted = errors.New("sequence not sorted")

// Result holds the accumulated timings of a benchmark run.
type Result struct {
	// RunID identifies the run in verbose reports.
	RunID string

	// Config is the configuration the run used.
	Config Config

	// First and Second are the total elapsed sort times over all trials.
	First, Second time.Duration

	// Unsorted1 and Unsorted2 count trials whose output failed the
	// sortedness check.
	Unsorted1, Unsorted2 int
}

// Ratio returns First / Second. It is NaN when both totals are zero and
// +Inf when only Second is zero.
func (r Result) Ratio() float64 {
	return float64(r.First) / float64(r.Second)
}

// Run executes the benchmark described by cfg.
//
// Each trial generates a fresh sequence and times cfg.First on it, then
// generates another and times cfg.Second. Trials run sequentially on the
// calling goroutine.
func Run(cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	r := &runner{
		cfg:    cfg,
		gen:    newGenerator(cfg.Seed),
		first:  sort.Func[int32](cfg.First),
		second: sort.Func[int32](cfg.Second),
		now:    time.Now,
	}
	return r.run()
}

func newGenerator(seed uint64) *gen.Generator {
	if seed == 0 {
		return gen.Default()
	}
	return gen.New(seed)
}

// runner carries the pieces of a run so tests can swap the sorters and
// the clock.
type runner struct {
	cfg           Config
	gen           *gen.Generator
	first, second elem.Sorter[int32]
	now           func() time.Time
}

func (r *runner) run() (Result, error) {
	res := Result{
		RunID:  uuid.NewString(),
		Config: r.cfg,
	}
	for trial := range r.cfg.Trials {
		elapsed, ok := r.timeSort(r.first)
		res.First += elapsed
		if !ok {
			res.Unsorted1++
			if r.cfg.Strict {
				return res, fmt.Errorf("%w: %s, trial %d", ErrNotSorted, r.cfg.First, trial)
			}
		}

		elapsed, ok = r.timeSort(r.second)
		res.Second += elapsed
		if !ok {
			res.Unsorted2++
			if r.cfg.Strict {
				return res, fmt.Errorf("%w: %s, trial %d", ErrNotSorted, r.cfg.Second, trial)
			}
		}
	}
	return res, nil
}

// timeSort sorts one freshly generated sequence with s and returns the
// elapsed time of the Sort call and whether the output is sorted.
func (r *runner) timeSort(s elem.Sorter[int32]) (time.Duration, bool) {
	data := r.gen.Generate(r.cfg.N)
	start := r.now()
	s.Sort(data)
	elapsed := r.now().Sub(start)
	return elapsed, sort.IsSorted(data)
}
