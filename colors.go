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
	"os"
	"strings"

	ui "github.com/gizak/termui/v3"
)

// ANSI escapes for plain fmt output outside any widget UI.
const (
	Green = "\033[32m"
	Cyan  = "\033[36m"
	Reset = "\033[0m"
)

type ColorScheme struct {
	Primary     ui.Color
	Secondary   ui.Color
	Accent      ui.Color
	Border      ui.Color
	BorderFocus ui.Color
	Text        ui.Color
	TextMuted   ui.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var (
	currentColorScheme *ColorScheme
	detectedMode       TerminalMode
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"; higher
	// background numbers usually indicate dark mode
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	// Some terminals export an explicit theme hint
	for _, envVar := range []string{"TERM_THEME", "THEME"} {
		if theme := strings.ToLower(os.Getenv(envVar)); theme != "" {
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:     ui.Color(4), // Dark blue
		Secondary:   ui.Color(2), // Dark green
		Accent:      ui.Color(5), // Dark magenta
		Border:      ui.Color(8),
		BorderFocus: ui.Color(4),
		Text:        ui.Color(0), // Black
		TextMuted:   ui.Color(8),
	}
}

func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:     ui.Color(12), // Bright blue
		Secondary:   ui.Color(10), // Bright green
		Accent:      ui.Color(13), // Bright magenta
		Border:      ui.Color(8),
		BorderFocus: ui.Color(12),
		Text:        ui.Color(15), // White
		TextMuted:   ui.Color(7),
	}
}

// GetColorScheme returns the scheme for the detected terminal mode,
// detecting it on first use.
func GetColorScheme() *ColorScheme {
	if currentColorScheme == nil {
		detectedMode = detectTerminalMode()
		if detectedMode == TerminalModeLight {
			currentColorScheme = createLightColorScheme()
		} else {
			currentColorScheme = createDarkColorScheme()
		}
	}
	return currentColorScheme
}

func StyleText() ui.Style {
	scheme := GetColorScheme()
	return ui.NewStyle(scheme.Text)
}

func StyleTextMuted() ui.Style {
	scheme := GetColorScheme()
	return ui.NewStyle(scheme.TextMuted)
}

func StylePrimary() ui.Style {
	scheme := GetColorScheme()
	return ui.NewStyle(scheme.Primary)
}

func StyleSecondary() ui.Style {
	scheme := GetColorScheme()
	return ui.NewStyle(scheme.Secondary)
}
