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
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/ajroetker/sortbench/elem"
)

// FormatRatio renders the single output line of the benchmark, e.g.
// "1 / 2 = 0.4975". The ratio uses the shortest decimal form that round
// trips; infinities are written as "inf" and "-inf".
func FormatRatio(ratio float64) string {
	var s string
	switch {
	case math.IsInf(ratio, 1):
		s = "inf"
	case math.IsInf(ratio, -1):
		s = "-inf"
	default:
		s = strconv.FormatFloat(ratio, 'f', -1, 64)
	}
	return "1 / 2 = " + s
}

// WriteReport writes a human-readable summary of res to w: run id, host,
// parameters and per-algorithm totals. It does not include the ratio line.
func WriteReport(w io.Writer, res Result, host elem.HostInfo) error {
	cfg := res.Config
	lines := []string{
		fmt.Sprintf("run:      %s", res.RunID),
		fmt.Sprintf("host:     %s", host),
		fmt.Sprintf("sequence: %d elements x %d trials", 2*cfg.N, cfg.Trials),
		fmt.Sprintf("1:        %-28s total %-12v mean %v", cfg.First, res.First, mean(res.First, cfg.Trials)),
		fmt.Sprintf("2:        %-28s total %-12v mean %v", cfg.Second, res.Second, mean(res.Second, cfg.Trials)),
	}
	if res.Unsorted1 > 0 || res.Unsorted2 > 0 {
		lines = append(lines, fmt.Sprintf("unsorted: 1=%d 2=%d", res.Unsorted1, res.Unsorted2))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	return nil
}

func mean(total time.Duration, trials int) time.Duration {
	if trials <= 0 {
		return 0
	}
	return total / time.Duration(trials)
}
