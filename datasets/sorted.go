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

// SortedGenerator produces 1..n ascending, the worst case for an
// unbalanced BST.
type SortedGenerator struct{}

func (g *SortedGenerator) Name() string {
	return "sorted"
}

func (g *SortedGenerator) Label() string {
	return "SORTED (ASCENDING)"
}

func (g *SortedGenerator) Generate(n int) []int {
	arr := make([]int, n)
	for i := range arr {
		arr[i] = i + 1
	}
	return arr
}
