// Copyright 2025 Quercus Lab
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

package datasets

import "math/rand"

// Generator produces one arrangement of integer keys for the experiment.
// Implementations that need randomness hold an explicit *rand.Rand owned
// by the registry; nothing in this package touches the global generator,
// so a pinned seed reproduces every dataset exactly.
type Generator interface {
	// Name is the mode key used in config and on the command line.
	Name() string
	// Label is the heading used in reports.
	Label() string
	// Generate returns a fresh slice of n keys.
	Generate(n int) []int
}

// RandomMax bounds the keys produced by the random arrangement, matching
// the uniform [0, 10000) draw the experiment is calibrated for.
const RandomMax = 10000

// Shuffle permutes arr in place with a Fisher-Yates walk.
func Shuffle(rng *rand.Rand, arr []int) {
	for i := len(arr) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		arr[i], arr[j] = arr[j], arr[i]
	}
}
