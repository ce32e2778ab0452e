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

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

// Styles holds all the styling for the result browser
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// resultItem adapts a RunResult to the list widget.
type resultItem struct {
	res *RunResult
}

func (i resultItem) Title() string {
	return fmt.Sprintf("%s — %d elements", i.res.Label, i.res.Size)
}

func (i resultItem) Description() string {
	return fmt.Sprintf("height %d vs %d · rotations %d",
		i.res.BSTBuild.FinalHeight, i.res.AVLBuild.FinalHeight, i.res.AVLBuild.Rotations)
}

func (i resultItem) FilterValue() string {
	return i.res.Label
}

// browserModel is the Bubble Tea application state
type browserModel struct {
	ready bool

	resultsList    list.Model
	detailViewport viewport.Model

	results []*RunResult

	focusOnDetail bool
	statusMessage string

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

func newBrowserModel(results []*RunResult) (*browserModel, error) {
	items := make([]list.Item, 0, len(results))
	for _, res := range results {
		items = append(items, resultItem{res: res})
	}

	delegate := list.NewDefaultDelegate()
	resultsList := list.New(items, delegate, 0, 0)
	resultsList.Title = "Experiment Runs"
	resultsList.SetShowHelp(false)
	resultsList.SetFilteringEnabled(false)

	// Initialize glamour renderer with auto-detection
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize glamour renderer")
	}

	return &browserModel{
		resultsList:     resultsList,
		results:         results,
		styles:          NewStyles(),
		glamourRenderer: renderer,
	}, nil
}

func (m *browserModel) Init() tea.Cmd {
	return nil
}

func (m *browserModel) selectedResult() *RunResult {
	item, ok := m.resultsList.SelectedItem().(resultItem)
	if !ok {
		return nil
	}
	return item.res
}

func (m *browserModel) refreshDetail() {
	res := m.selectedResult()
	if res == nil {
		m.detailViewport.SetContent("")
		return
	}
	rendered, err := m.glamourRenderer.Render(renderMarkdownRunReport(res))
	if err != nil {
		rendered = renderMarkdownRunReport(res)
	}
	m.detailViewport.SetContent(rendered)
	m.detailViewport.GotoTop()
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		listWidth := m.width / 3
		detailWidth := m.width - listWidth - 6
		contentHeight := m.height - 4

		m.resultsList.SetSize(listWidth, contentHeight)
		if !m.ready {
			m.detailViewport = viewport.New(detailWidth, contentHeight)
			m.refreshDetail()
			m.ready = true
		} else {
			// Resizing must not lose the reader's place in the report.
			m.detailViewport.Width = detailWidth
			m.detailViewport.Height = contentHeight
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "tab":
			m.focusOnDetail = !m.focusOnDetail
			m.statusMessage = ""

		case "c":
			if res := m.selectedResult(); res != nil {
				if err := clipboard.WriteAll(renderMarkdownRunReport(res)); err != nil {
					m.statusMessage = m.styles.ErrorMessage.Render("✗ Copy failed: " + err.Error())
				} else {
					m.statusMessage = m.styles.SuccessMessage.Render("✓ Report copied to clipboard!")
				}
			}

		default:
			if m.focusOnDetail {
				var cmd tea.Cmd
				m.detailViewport, cmd = m.detailViewport.Update(msg)
				cmds = append(cmds, cmd)
			} else {
				before := m.resultsList.Index()
				var cmd tea.Cmd
				m.resultsList, cmd = m.resultsList.Update(msg)
				cmds = append(cmds, cmd)
				if m.resultsList.Index() != before {
					m.refreshDetail()
					m.statusMessage = ""
				}
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *browserModel) View() string {
	if !m.ready {
		return "Loading results..."
	}

	listStyle := m.styles.BorderBlurred
	detailStyle := m.styles.BorderFocused
	if !m.focusOnDetail {
		listStyle, detailStyle = detailStyle, listStyle
	}

	listPane := listStyle.Render(m.resultsList.View())
	detailPane := detailStyle.Render(m.detailViewport.View())

	help := lipgloss.JoinHorizontal(lipgloss.Left,
		m.styles.HelpKey.Render("tab"), m.styles.HelpDesc.Render(" switch pane  "),
		m.styles.HelpKey.Render("↑/↓"), m.styles.HelpDesc.Render(" navigate  "),
		m.styles.HelpKey.Render("c"), m.styles.HelpDesc.Render(" copy report  "),
		m.styles.HelpKey.Render("q"), m.styles.HelpDesc.Render(" quit"),
	)
	footer := help
	if m.statusMessage != "" {
		footer = lipgloss.JoinHorizontal(lipgloss.Left, help, "   ", m.statusMessage)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.Title.Render("Treebench Results"),
		lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane),
		footer,
	)
}

// runBrowser opens the interactive result browser.
func runBrowser(results []*RunResult) error {
	model, err := newBrowserModel(results)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "browser terminated abnormally")
	}
	return nil
}
