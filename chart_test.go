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

	"github.com/gizak/termui/v3/widgets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChartPagesGroupsBySize(t *testing.T) {
	results := []*RunResult{
		{Mode: "random", Size: 100},
		{Mode: "sorted", Size: 100},
		{Mode: "random", Size: 1000},
		{Mode: "sorted", Size: 1000},
	}

	pages := buildChartPages(results)
	require.Len(t, pages, 2)
	assert.Equal(t, 100, pages[0].size)
	assert.Len(t, pages[0].runs, 2)
	assert.Equal(t, 1000, pages[1].size)
	assert.Len(t, pages[1].runs, 2)
}

func TestFillBarChartsInterleavesEngines(t *testing.T) {
	res := sampleResult()
	page := chartPage{size: res.Size, runs: []*RunResult{res}}

	heights := widgets.NewBarChart()
	comparisons := widgets.NewBarChart()
	fillBarCharts(page, heights, comparisons)

	assert.Equal(t, []string{"BST sorted", "AVL sorted"}, heights.Labels)
	assert.Equal(t, []float64{100, 7}, heights.Data)
	assert.Equal(t, []float64{4950, 580}, comparisons.Data)
	assert.Contains(t, heights.Title, "100 elements")
}

func TestResultItemStrings(t *testing.T) {
	item := resultItem{res: sampleResult()}

	assert.Equal(t, "SORTED (ASCENDING) — 100 elements", item.Title())
	assert.Contains(t, item.Description(), "height 100 vs 7")
	assert.Equal(t, "SORTED (ASCENDING)", item.FilterValue())
}
