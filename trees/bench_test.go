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

package trees

import (
	"math/rand"
	"testing"
)

func benchKeys(n int) []int {
	rng := rand.New(rand.NewSource(1))
	keys := make([]int, n)
	for i := range keys {
		keys[i] = rng.Intn(1 << 20)
	}
	return keys
}

func BenchmarkBSTInsertRandom(b *testing.B) {
	keys := benchKeys(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := NewBST()
		m := &Metrics{}
		for _, k := range keys {
			tree.Insert(k, m)
		}
	}
}

func BenchmarkAVLInsertRandom(b *testing.B) {
	keys := benchKeys(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := NewAVL()
		m := &Metrics{}
		for _, k := range keys {
			tree.Insert(k, m)
		}
	}
}

func BenchmarkBSTInsertAscending(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tree := NewBST()
		m := &Metrics{}
		for k := 1; k <= 2000; k++ {
			tree.Insert(k, m)
		}
	}
}

func BenchmarkAVLInsertAscending(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tree := NewAVL()
		m := &Metrics{}
		for k := 1; k <= 2000; k++ {
			tree.Insert(k, m)
		}
	}
}

func BenchmarkAVLSearch(b *testing.B) {
	keys := benchKeys(10000)
	tree := NewAVL()
	m := &Metrics{}
	for _, k := range keys {
		tree.Insert(k, m)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sm := Metrics{}
		tree.Search(keys[i%len(keys)], &sm)
	}
}
