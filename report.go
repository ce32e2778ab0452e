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
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Elapsed times below this are reported as too small to compare,
// mirroring the usual clock-resolution caveat for tiny datasets.
const minComparableSeconds = 0.000001

// reportFs is swapped for a memory filesystem in tests.
var reportFs afero.Fs = afero.NewOsFs()

var (
	reportTitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true)
	reportSectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)
	reportAnalysisStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("46"))
)

// analysisLines derives the height, time and comparison ratios between
// the two engines for one run.
func analysisLines(res *RunResult) []string {
	var lines []string

	if res.BSTBuild.FinalHeight > res.AVLBuild.FinalHeight && res.AVLBuild.FinalHeight > 0 {
		ratio := float64(res.BSTBuild.FinalHeight) / float64(res.AVLBuild.FinalHeight)
		lines = append(lines, fmt.Sprintf("BST is %.2fx taller than AVL", ratio))
	}

	bstSec := res.BSTBuild.Elapsed.Seconds()
	avlSec := res.AVLBuild.Elapsed.Seconds()
	if bstSec > minComparableSeconds && avlSec > minComparableSeconds {
		if bstSec > avlSec {
			lines = append(lines, fmt.Sprintf("AVL is %.2fx faster for insertions", bstSec/avlSec))
		} else {
			lines = append(lines, fmt.Sprintf("BST is %.2fx faster for insertions", avlSec/bstSec))
		}
	} else {
		lines = append(lines, "Insertion times too small to measure accurately")
	}

	if res.BSTBuild.Comparisons > res.AVLBuild.Comparisons && res.AVLBuild.Comparisons > 0 {
		ratio := float64(res.BSTBuild.Comparisons) / float64(res.AVLBuild.Comparisons)
		lines = append(lines, fmt.Sprintf("BST made %.2fx more comparisons", ratio))
	}

	return lines
}

func searchAnalysisLine(res *RunResult) string {
	if res.BSTSearch.Comparisons > res.AVLSearch.Comparisons && res.AVLSearch.Comparisons > 0 {
		ratio := float64(res.BSTSearch.Comparisons) / float64(res.AVLSearch.Comparisons)
		return fmt.Sprintf("BST required %.2fx more comparisons for search", ratio)
	}
	return ""
}

func foundLabel(found bool) string {
	if found {
		return "FOUND"
	}
	return "NOT FOUND"
}

// renderRunReport produces the styled terminal report for one run.
func renderRunReport(res *RunResult) string {
	var b strings.Builder
	sep := strings.Repeat("=", 40)

	fmt.Fprintln(&b, sep)
	fmt.Fprintln(&b, reportTitleStyle.Render("PERFORMANCE COMPARISON REPORT"))
	fmt.Fprintln(&b, sep)
	fmt.Fprintf(&b, "Dataset Type: %s\n", res.Label)
	fmt.Fprintf(&b, "Dataset Size: %d elements\n\n", res.Size)

	fmt.Fprintln(&b, reportSectionStyle.Render("--- Binary Search Tree (BST) ---"))
	fmt.Fprintf(&b, "Final Height:        %d\n", res.BSTBuild.FinalHeight)
	fmt.Fprintf(&b, "Total Comparisons:   %d\n", res.BSTBuild.Comparisons)
	fmt.Fprintf(&b, "Insertion Time:      %.6f seconds\n\n", res.BSTBuild.Elapsed.Seconds())

	fmt.Fprintln(&b, reportSectionStyle.Render("--- AVL Tree (Balanced) ---"))
	fmt.Fprintf(&b, "Final Height:        %d\n", res.AVLBuild.FinalHeight)
	fmt.Fprintf(&b, "Total Comparisons:   %d\n", res.AVLBuild.Comparisons)
	fmt.Fprintf(&b, "Total Rotations:     %d\n", res.AVLBuild.Rotations)
	fmt.Fprintf(&b, "Insertion Time:      %.6f seconds\n\n", res.AVLBuild.Elapsed.Seconds())

	fmt.Fprintln(&b, reportSectionStyle.Render("--- Analysis ---"))
	for _, line := range analysisLines(res) {
		fmt.Fprintln(&b, reportAnalysisStyle.Render(line))
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, reportSectionStyle.Render("--- Search Performance Test ---"))
	fmt.Fprintf(&b, "Searching for key: %d\n", res.SearchKey)
	fmt.Fprintf(&b, "BST: %d comparisons, %.6f seconds, %s\n",
		res.BSTSearch.Comparisons, res.BSTSearch.Elapsed.Seconds(), foundLabel(res.BSTFound))
	fmt.Fprintf(&b, "AVL: %d comparisons, %.6f seconds, %s\n",
		res.AVLSearch.Comparisons, res.AVLSearch.Elapsed.Seconds(), foundLabel(res.AVLFound))
	if line := searchAnalysisLine(res); line != "" {
		fmt.Fprintln(&b, reportAnalysisStyle.Render(line))
	}
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, sep)

	return b.String()
}

// renderMarkdownRunReport produces the markdown variant used by the
// browser detail pane, by `run --markdown`, and for file output.
func renderMarkdownRunReport(res *RunResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s — %d elements\n\n", res.Label, res.Size)

	fmt.Fprintf(&b, "## Binary Search Tree (BST)\n\n")
	fmt.Fprintf(&b, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Final height | %d |\n", res.BSTBuild.FinalHeight)
	fmt.Fprintf(&b, "| Comparisons | %d |\n", res.BSTBuild.Comparisons)
	fmt.Fprintf(&b, "| Insertion time | %.6fs |\n\n", res.BSTBuild.Elapsed.Seconds())

	fmt.Fprintf(&b, "## AVL Tree (Balanced)\n\n")
	fmt.Fprintf(&b, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Final height | %d |\n", res.AVLBuild.FinalHeight)
	fmt.Fprintf(&b, "| Comparisons | %d |\n", res.AVLBuild.Comparisons)
	fmt.Fprintf(&b, "| Rotations | %d |\n", res.AVLBuild.Rotations)
	fmt.Fprintf(&b, "| Insertion time | %.6fs |\n\n", res.AVLBuild.Elapsed.Seconds())

	fmt.Fprintf(&b, "## Analysis\n\n")
	for _, line := range analysisLines(res) {
		fmt.Fprintf(&b, "* %s\n", line)
	}
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "## Search probe (key %d)\n\n", res.SearchKey)
	fmt.Fprintf(&b, "* BST: %d comparisons, %.6fs, %s\n",
		res.BSTSearch.Comparisons, res.BSTSearch.Elapsed.Seconds(), foundLabel(res.BSTFound))
	fmt.Fprintf(&b, "* AVL: %d comparisons, %.6fs, %s\n",
		res.AVLSearch.Comparisons, res.AVLSearch.Elapsed.Seconds(), foundLabel(res.AVLFound))
	if line := searchAnalysisLine(res); line != "" {
		fmt.Fprintf(&b, "* %s\n", line)
	}

	return b.String()
}

// renderMarkdownSuiteReport concatenates per-run markdown reports into
// one document, for file output and clipboard copy.
func renderMarkdownSuiteReport(results []*RunResult) string {
	parts := make([]string, 0, len(results))
	for _, res := range results {
		parts = append(parts, renderMarkdownRunReport(res))
	}
	return strings.Join(parts, "\n---\n\n")
}

// renderMarkdownToTerminal runs a markdown report through glamour for
// styled in-terminal display.
func renderMarkdownToTerminal(md string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", errors.Wrap(err, "failed to initialize markdown renderer")
	}
	out, err := renderer.Render(md)
	if err != nil {
		return "", errors.Wrap(err, "failed to render markdown")
	}
	return out, nil
}

// WriteReportFile writes a report through the given filesystem so tests
// can use an in-memory one.
func WriteReportFile(fs afero.Fs, path, content string) error {
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, "failed to write report to %s", path)
	}
	return nil
}

// copyReport puts the report text on the system clipboard.
func copyReport(content string) error {
	if err := clipboard.WriteAll(content); err != nil {
		return errors.Wrap(err, "failed to copy report to clipboard")
	}
	return nil
}
