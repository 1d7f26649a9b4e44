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

//go:build arm64

package elem

import "golang.org/x/sys/cpu"

func init() {
	detectFeatures(arm64Features())
}

func arm64Features() map[string]bool {
	return map[string]bool{
		"asimd":   cpu.ARM64.HasASIMD,
		"atomics": cpu.ARM64.HasATOMICS,
		"crc32":   cpu.ARM64.HasCRC32,
		"sve":     cpu.ARM64.HasSVE,
		"sve2":    cpu.ARM64.HasSVE2,
	}
}

var featureOrder = []string{"asimd", "atomics", "crc32", "sve", "sve2"}
