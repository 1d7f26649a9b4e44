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

// Command sortbench compares the running time of two elementary sorting
// algorithms.
//
// Usage:
//
//	sortbench                                  # insertion-with-sentinel vs insertion, n=3000, 20 trials
//	sortbench -first shell -second insertion   # pick the pair
//	sortbench -n 500 -trials 5 -seed 1 -v      # smaller, reproducible, with a report on stderr
//	sortbench -list                            # print algorithm names
//
// It prints a single line "1 / 2 = <ratio>", the total sort time of the
// first algorithm divided by that of the second.
//
// Setting SORTBENCH_STRICT=1 has the same effect as -strict: a sequence left
// unsorted aborts the run with a non-zero exit status.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ajroetker/sortbench/bench"
	"github.com/ajroetker/sortbench/elem"
	"github.com/ajroetker/sortbench/elem/sort"
)

// runBench is bench.Run; tests replace it to exercise failure paths.
var runBench = bench.Run

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the parsed command line.
type options struct {
	n       int
	trials  int
	first   string
	second  string
	seed    uint64
	strict  bool
	verbose bool
	list    bool

	// strictSet records whether -strict appeared on the command line.
	strictSet bool
}

func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("sortbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.n, "n", bench.DefaultN, "Generator size; each sequence has 2*n elements")
	fs.IntVar(&opts.trials, "trials", bench.DefaultTrials, "Number of sequences sorted per algorithm")
	fs.StringVar(&opts.first, "first", bench.DefaultFirst.String(), "First algorithm ("+algorithmList()+")")
	fs.StringVar(&opts.second, "second", bench.DefaultSecond.String(), "Second algorithm ("+algorithmList()+")")
	fs.Uint64Var(&opts.seed, "seed", 0, "Random seed; 0 uses the process-wide random source")
	fs.BoolVar(&opts.strict, "strict", false, "Fail if an algorithm leaves a sequence unsorted (default from $"+elem.StrictEnvVar+")")
	fs.BoolVar(&opts.verbose, "v", false, "Print host, run id and per-algorithm totals to stderr")
	fs.BoolVar(&opts.list, "list", false, "List the available algorithms and exit")
	return fs
}

// run executes the command with args (without the program name) and returns
// the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := newFlagSet(&opts, stderr)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 1
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "strict" {
			opts.strictSet = true
		}
	})

	if opts.list {
		for _, a := range sort.Algorithms() {
			fmt.Fprintln(stdout, a)
		}
		return 0
	}

	cfg, err := opts.config()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		fs.Usage()
		return 1
	}

	res, err := runBench(cfg)
	if opts.verbose && res.RunID != "" {
		if werr := bench.WriteReport(stderr, res, elem.Host()); werr != nil {
			fmt.Fprintf(stderr, "Error: %v\n", werr)
		}
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, bench.FormatRatio(res.Ratio()))
	return 0
}

// config builds the benchmark configuration. An explicit -strict wins over
// the environment.
func (o options) config() (bench.Config, error) {
	cfg := bench.DefaultConfig()
	cfg.N = o.n
	cfg.Trials = o.trials
	cfg.Seed = o.seed

	var err error
	if cfg.First, err = sort.ParseAlgorithm(o.first); err != nil {
		return cfg, fmt.Errorf("-first: %w", err)
	}
	if cfg.Second, err = sort.ParseAlgorithm(o.second); err != nil {
		return cfg, fmt.Errorf("-second: %w", err)
	}

	cfg.Strict = elem.StrictEnv()
	if o.strictSet {
		cfg.Strict = o.strict
	}

	return cfg, cfg.Validate()
}

func algorithmList() string {
	names := make([]string, 0, len(sort.Algorithms()))
	for _, a := range sort.Algorithms() {
		names = append(names, a.String())
	}
	return strings.Join(names, ",")
}
