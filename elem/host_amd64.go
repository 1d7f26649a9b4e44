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

//go:build amd64

package elem

import "golang.org/x/sys/cpu"

func init() {
	detectFeatures(x86Features())
}

func x86Features() map[string]bool {
	return map[string]bool{
		"sse4.2":   cpu.X86.HasSSE42,
		"popcnt":   cpu.X86.HasPOPCNT,
		"avx":      cpu.X86.HasAVX,
		"avx2":     cpu.X86.HasAVX2,
		"bmi2":     cpu.X86.HasBMI2,
		"fma":      cpu.X86.HasFMA,
		"avx512f":  cpu.X86.HasAVX512F,
		"avx512bw": cpu.X86.HasAVX512BW,
	}
}

var featureOrder = []string{"sse4.2", "popcnt", "avx", "avx2", "bmi2", "fma", "avx512f", "avx512bw"}
