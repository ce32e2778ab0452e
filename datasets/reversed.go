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

// ReversedGenerator produces n..1 descending.
type ReversedGenerator struct{}

func (g *ReversedGenerator) Name() string {
	return "reverse"
}

func (g *ReversedGenerator) Label() string {
	return "REVERSE SORTED (DESCENDING)"
}

func (g *ReversedGenerator) Generate(n int) []int {
	arr := make([]int, n)
	for i := range arr {
		arr[i] = n - i
	}
	return arr
}
