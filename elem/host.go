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

import (
	"runtime"
	"strconv"
	"strings"
)

// HostInfo describes the machine a benchmark ran on.
type HostInfo struct {
	// Arch is runtime.GOARCH.
	Arch string

	// CPUs is runtime.NumCPU. The benchmark itself is single-threaded.
	CPUs int

	// Features lists the notable instruction set extensions detected on
	// the CPU, in a fixed order. Empty on architectures without detection.
	Features []string
}

// hostFeatures is filled by init() in host_*.go files.
var hostFeatures []string

// Host returns a description of the current machine.
func Host() HostInfo {
	return HostInfo{
		Arch:     runtime.GOARCH,
		CPUs:     runtime.NumCPU(),
		Features: append([]string(nil), hostFeatures...),
	}
}

// String returns e.g. "amd64/8cpu [sse4.2 avx2]".
func (h HostInfo) String() string {
	var sb strings.Builder
	sb.WriteString(h.Arch)
	sb.WriteString("/")
	sb.WriteString(strconv.Itoa(h.CPUs))
	sb.WriteString("cpu")
	if len(h.Features) > 0 {
		sb.WriteString(" [")
		sb.WriteString(strings.Join(h.Features, " "))
		sb.WriteString("]")
	}
	return sb.String()
}

// detectFeatures records the enabled features following featureOrder.
func detectFeatures(has map[string]bool) {
	var features []string
	for _, name := range featureOrder {
		if has[name] {
			features = append(features, name)
		}
	}
	hostFeatures = features
}
