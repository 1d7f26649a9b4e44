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
	"os"
	"strconv"
)

// StrictEnvVar names the environment variable that turns sortedness
// checks in the benchmark into hard failures.
const StrictEnvVar = "SORTBENCH_STRICT"

// StrictEnv checks if the SORTBENCH_STRICT environment variable is set.
// Any non-empty value that does not parse as a bool counts as true.
func StrictEnv() bool {
	val := os.Getenv(StrictEnvVar)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
