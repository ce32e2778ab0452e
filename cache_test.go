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

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheDatasetAndGetDataset(t *testing.T) {
	data := []int{3, 1, 2}

	// Initially, GetDataset should miss.
	assert.Nil(t, GetDataset("random", 3, 42))

	CacheDataset("random", 3, 42, data)
	assert.Equal(t, data, GetDataset("random", 3, 42))

	// Same mode and size under a different seed is a different dataset.
	assert.Nil(t, GetDataset("random", 3, 43))
}

func TestCacheSurvivesAcrossLookups(t *testing.T) {
	data := []int{5, 4, 3, 2, 1}
	CacheDataset("reverse", 5, 99, data)

	first := GetDataset("reverse", 5, 99)
	second := GetDataset("reverse", 5, 99)

	// Both hits must return the same backing slice, not a regenerated one.
	assert.Equal(t, &first[0], &second[0])
}

func TestCacheExpiration(t *testing.T) {
	datasetCache.Set(datasetCacheKey("sorted", 10, 1), []int{1, 2}, 100*time.Millisecond)

	assert.Equal(t, []int{1, 2}, GetDataset("sorted", 10, 1))

	time.Sleep(150 * time.Millisecond)

	assert.Nil(t, GetDataset("sorted", 10, 1))
}
