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
	"fmt"
	"log"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// chartPage groups the runs that share one dataset size.
type chartPage struct {
	size int
	runs []*RunResult
}

func buildChartPages(results []*RunResult) []chartPage {
	var pages []chartPage
	for _, res := range results {
		if len(pages) == 0 || pages[len(pages)-1].size != res.Size {
			pages = append(pages, chartPage{size: res.Size})
		}
		last := &pages[len(pages)-1]
		last.runs = append(last.runs, res)
	}
	return pages
}

// fillBarCharts loads one page into the two charts: bars interleave
// BST and AVL per arrangement so the pairs sit side by side.
func fillBarCharts(page chartPage, heights, comparisons *widgets.BarChart) {
	var labels []string
	var heightData []float64
	var comparisonData []float64

	for _, res := range page.runs {
		labels = append(labels, "BST "+res.Mode, "AVL "+res.Mode)
		heightData = append(heightData,
			float64(res.BSTBuild.FinalHeight), float64(res.AVLBuild.FinalHeight))
		comparisonData = append(comparisonData,
			float64(res.BSTBuild.Comparisons), float64(res.AVLBuild.Comparisons))
	}

	heights.Title = fmt.Sprintf(" Final Height — %d elements ", page.size)
	heights.Labels = labels
	heights.Data = heightData

	comparisons.Title = fmt.Sprintf(" Insert Comparisons — %d elements ", page.size)
	comparisons.Labels = labels
	comparisons.Data = comparisonData
}

// runChart draws per-size bar charts of both engines and lets the
// arrow keys page through dataset sizes.
func runChart(results []*RunResult) {
	pages := buildChartPages(results)
	if len(pages) == 0 {
		fmt.Println("No results to chart.")
		return
	}

	if err := ui.Init(); err != nil {
		log.Fatalf("failed to initialize termui: %v", err)
	}
	DisableMouseInput()
	defer ui.Close()

	scheme := GetColorScheme()

	heights := widgets.NewBarChart()
	heights.BarWidth = 9
	heights.BarColors = []ui.Color{scheme.Primary, scheme.Secondary}
	heights.LabelStyles = []ui.Style{StyleTextMuted()}
	heights.NumStyles = []ui.Style{ui.NewStyle(ui.ColorBlack)}
	heights.BorderStyle = ui.NewStyle(scheme.Border)

	comparisons := widgets.NewBarChart()
	comparisons.BarWidth = 9
	comparisons.BarColors = []ui.Color{scheme.Primary, scheme.Secondary}
	comparisons.LabelStyles = []ui.Style{StyleTextMuted()}
	comparisons.NumStyles = []ui.Style{ui.NewStyle(ui.ColorBlack)}
	comparisons.BorderStyle = ui.NewStyle(scheme.Border)

	shortcuts := widgets.NewParagraph()
	shortcuts.Title = " Keyboard Shortcuts "
	shortcuts.Text = `[<left>/<right>](fg:green) -> Page through dataset sizes
[q / <ctrl> + c](fg:green) -> Quit`
	shortcuts.TextStyle = StyleText()
	shortcuts.BorderStyle = ui.NewStyle(scheme.Border)

	grid := ui.NewGrid()
	termWidth, termHeight := ui.TerminalDimensions()
	grid.SetRect(0, 0, termWidth, termHeight)
	grid.Set(
		ui.NewRow(0.45, heights),
		ui.NewRow(0.45, comparisons),
		ui.NewRow(0.10, shortcuts),
	)

	current := 0
	fillBarCharts(pages[current], heights, comparisons)
	ui.Render(grid)

	uiEvents := ui.PollEvents()
	for {
		e := <-uiEvents
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			return
		case "<Left>":
			if current > 0 {
				current--
				fillBarCharts(pages[current], heights, comparisons)
			}
		case "<Right>":
			if current < len(pages)-1 {
				current++
				fillBarCharts(pages[current], heights, comparisons)
			}
		case "<Resize>":
			payload := e.Payload.(ui.Resize)
			grid.SetRect(0, 0, payload.Width, payload.Height)
			ui.Clear()
		}
		ui.Render(grid)
	}
}
