// Copyright 2025 Naren Yellavula
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

	"github.com/charmbracelet/lipgloss"
	ui "github.com/gizak/termui/v3"
)

// ColorScheme holds the colors for one terminal background: termui colors for
// the dashboard, lipgloss colors for translated text and ANSI sequences for
// plain CLI output.
type ColorScheme struct {
	Primary     ui.Color
	Accent      ui.Color
	Success     ui.Color
	Warning     ui.Color
	Info        ui.Color
	OnPrimary   ui.Color
	Border      ui.Color
	BorderFocus ui.Color
	Text        ui.Color

	Hit  lipgloss.Color
	Miss lipgloss.Color

	ANSISuccess string
	ANSIInfo    string
	ANSIWarning string
	ANSIError   string
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var colorSchemes = map[TerminalMode]ColorScheme{
	// Darker tones so words stay readable on white backgrounds
	TerminalModeLight: {
		Primary:     ui.Color(4),
		Accent:      ui.ColorMagenta,
		Success:     ui.Color(2),
		Warning:     ui.Color(3),
		Info:        ui.Color(4),
		OnPrimary:   ui.ColorWhite,
		Border:      ui.Color(8),
		BorderFocus: ui.Color(4),
		Text:        ui.ColorBlack,
		Hit:         lipgloss.Color("22"),
		Miss:        lipgloss.Color("242"),
		ANSISuccess: "\033[32m",
		ANSIInfo:    "\033[34m",
		ANSIWarning: "\033[33m",
		ANSIError:   "\033[31m",
	},
	TerminalModeDark: {
		Primary:     ui.Color(6),
		Accent:      ui.ColorMagenta,
		Success:     ui.Color(2),
		Warning:     ui.Color(11),
		Info:        ui.Color(14),
		OnPrimary:   ui.ColorBlack,
		Border:      ui.Color(240),
		BorderFocus: ui.Color(14),
		Text:        ui.ColorWhite,
		Hit:         lipgloss.Color("46"),
		Miss:        lipgloss.Color("245"),
		ANSISuccess: "\033[92m",
		ANSIInfo:    "\033[96m",
		ANSIWarning: "\033[93m",
		ANSIError:   "\033[91m",
	},
}

var (
	currentColorScheme *ColorScheme
	detectedMode       TerminalMode
)

// ANSI sequences for plain terminal output, refreshed by InitializeColors
var (
	Green   = "\033[92m"
	Info    = "\033[96m"
	Warning = "\033[93m"
	Error   = "\033[91m"
	Reset   = "\033[0m"
)

// modeFromName reads a theme name such as "light", "Solarized Dark" or "auto".
func modeFromName(name string) TerminalMode {
	name = strings.ToLower(name)
	switch {
	case strings.Contains(name, "dark"):
		return TerminalModeDark
	case strings.Contains(name, "light"):
		return TerminalModeLight
	}
	return TerminalModeUnknown
}

// modeFromColorFGBG reads the background index of a "fg;bg" COLORFGBG value.
func modeFromColorFGBG(value string) TerminalMode {
	parts := strings.Split(value, ";")
	if len(parts) < 2 {
		return TerminalModeUnknown
	}
	switch parts[len(parts)-1] {
	case "0", "8", "16":
		return TerminalModeDark
	case "7", "15", "255":
		return TerminalModeLight
	}
	return TerminalModeUnknown
}

// detectTerminalMode guesses the background from the environment, dark when
// nothing says otherwise.
func detectTerminalMode() TerminalMode {
	if mode := modeFromColorFGBG(os.Getenv("COLORFGBG")); mode != TerminalModeUnknown {
		return mode
	}
	for _, name := range []string{"TERM_THEME", "THEME"} {
		if mode := modeFromName(os.Getenv(name)); mode != TerminalModeUnknown {
			return mode
		}
	}
	return TerminalModeDark
}

// resolveTerminalMode honours an explicit display.theme before detecting.
func resolveTerminalMode(theme string) TerminalMode {
	if mode := modeFromName(theme); mode != TerminalModeUnknown {
		return mode
	}
	return detectTerminalMode()
}

// schemeFor returns a copy of the scheme for mode.
func schemeFor(mode TerminalMode) *ColorScheme {
	scheme, ok := colorSchemes[mode]
	if !ok {
		scheme = colorSchemes[TerminalModeDark]
	}
	return &scheme
}

// InitializeColors picks the scheme for theme ("light", "dark" or "auto")
// and refreshes the ANSI globals.
func InitializeColors(theme string) {
	detectedMode = resolveTerminalMode(theme)
	currentColorScheme = schemeFor(detectedMode)

	Green = currentColorScheme.ANSISuccess
	Info = currentColorScheme.ANSIInfo
	Warning = currentColorScheme.ANSIWarning
	Error = currentColorScheme.ANSIError
}

// GetColorScheme returns the current color scheme
func GetColorScheme() *ColorScheme {
	if currentColorScheme == nil {
		InitializeColors(themeAuto)
	}
	return currentColorScheme
}

func StyleBorder(focused bool) ui.Style {
	scheme := GetColorScheme()
	if focused {
		return ui.NewStyle(scheme.BorderFocus)
	}
	return ui.NewStyle(scheme.Border)
}

func StyleText() ui.Style {
	return ui.NewStyle(GetColorScheme().Text)
}
