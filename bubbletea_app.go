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
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	textInput       textinput.Model
	outputViewport  viewport.Model
	statsViewport   viewport.Model
	glamourRenderer *glamour.TermRenderer

	// Data
	translator *Translator
	load       *LoadStats
	report     Report // Rebuilt on resize, not per keystroke
	highlight  bool

	// State
	tokens      []Token
	translation string
	lastQuery   string
	chosen      string // Translation picked with enter, copied after exit

	styles *Styles

	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused lipgloss.Style
	BorderBlurred lipgloss.Style
	Title         lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	Hit           lipgloss.Style
	Miss          lipgloss.Style
}

// NewStyles creates the styles, taking word highlighting from scheme
func NewStyles(scheme *ColorScheme) *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")). // Bright cyan/blue, more visible on dark backgrounds
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		Hit: lipgloss.NewStyle().
			Foreground(scheme.Hit).
			Bold(true),
		Miss: lipgloss.NewStyle().
			Foreground(scheme.Miss),
	}
}

// renderTokens joins token outputs, styling translated words apart from
// words the dictionary does not know.
func renderTokens(tokens []Token, styles *Styles) string {
	parts := make([]string, len(tokens))
	for i, token := range tokens {
		if token.Hit {
			parts[i] = styles.Hit.Render(token.Output)
		} else {
			parts[i] = styles.Miss.Render(token.Output)
		}
	}
	return strings.Join(parts, " ")
}

// InitialModel creates the initial model
func InitialModel(translator *Translator, load *LoadStats, config *Config) Model {
	ti := textinput.New()
	ti.Placeholder = GetRandomSample()
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 50

	outputViewport := viewport.New(0, 0)
	outputViewport.SetContent("Start typing to translate...")

	statsViewport := viewport.New(0, 0)

	// Initialize glamour renderer with auto-detection
	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(40),
	)

	model := Model{
		textInput:       ti,
		outputViewport:  outputViewport,
		statsViewport:   statsViewport,
		glamourRenderer: glamourRenderer,
		translator:      translator,
		load:            load,
		highlight:       config.Display.Highlight,
		styles:          NewStyles(GetColorScheme()),
	}
	model.refreshReport()

	return model
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if m.translation != "" {
				m.chosen = m.translation
				return m, tea.Quit
			}
			return m, nil
		case "ctrl+r":
			// Reset input and offer another sample sentence
			m.textInput.SetValue("")
			m.textInput.Placeholder = GetRandomSample()
			m.updateTranslation("")
			return m, nil
		case "ctrl+s":
			// Try the placeholder sentence
			m.textInput.SetValue(m.textInput.Placeholder)
			m.textInput.CursorEnd()
			m.updateTranslation(m.textInput.Value())
			return m, nil
		case "pgup", "pgdown":
			m.statsViewport, cmd = m.statsViewport.Update(msg)
			return m, cmd
		}

		m.textInput, cmd = m.textInput.Update(msg)
		if query := m.textInput.Value(); query != m.lastQuery {
			m.updateTranslation(query)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

// updateTranslation translates query and refreshes the output panel
func (m *Model) updateTranslation(query string) {
	m.lastQuery = query
	if strings.TrimSpace(query) == "" {
		m.tokens = nil
		m.translation = ""
		m.outputViewport.SetContent("Start typing to translate...")
		m.updateStats()
		return
	}

	m.tokens = m.translator.Preview(query)
	m.translation = JoinTokens(m.tokens)

	content := m.translation
	if m.highlight {
		content = renderTokens(m.tokens, m.styles)
	}
	m.outputViewport.SetContent(lipgloss.NewStyle().Width(m.outputViewport.Width).Render(content))
	m.updateStats()
}

// refreshReport rebuilds the dictionary report, which walks the whole tree
func (m *Model) refreshReport() {
	m.report = BuildReport(m.translator.Dictionary(), m.load)
	m.updateStats()
}

// updateStats refreshes the side panel with the cached report and the
// counts for the current text
func (m *Model) updateStats() {
	md := m.report.Markdown()

	hits, misses := 0, 0
	for _, token := range m.tokens {
		if token.Hit {
			hits++
		} else {
			misses++
		}
	}
	md += fmt.Sprintf("\n## Current text\n\n* %d words translated\n* %d words unknown\n", hits, misses)

	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(md); err == nil {
			m.statsViewport.SetContent(rendered)
			return
		}
	}
	m.statsViewport.SetContent(md)
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 3
	outputHeight := m.height - inputHeight - 6
	leftWidth := (m.width * 6 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.textInput.Width = leftWidth - 4
	m.outputViewport.Width = leftWidth - 2
	m.outputViewport.Height = outputHeight - 2
	m.statsViewport.Width = rightWidth - 2
	m.statsViewport.Height = inputHeight + outputHeight

	m.report = BuildReport(m.translator.Dictionary(), m.load)
	m.updateTranslation(m.textInput.Value())
}

// View renders the program's UI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	outputHeight := m.height - inputHeight - 6
	leftWidth := (m.width * 6 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	inputBox := m.styles.BorderFocused.
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(" ✍️  Source Text\n"),
			m.textInput.View(),
		))

	outputBox := m.styles.BorderBlurred.
		Width(leftWidth).
		Height(outputHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(" 🌍 Translation "),
			m.outputViewport.View(),
		))

	statsBox := m.styles.BorderBlurred.
		Width(rightWidth).
		Height(outputHeight + inputHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(" 🌳 Dictionary "),
			m.statsViewport.View(),
		))

	leftColumn := lipgloss.JoinVertical(lipgloss.Left, inputBox, outputBox)
	main := lipgloss.JoinHorizontal(lipgloss.Top, leftColumn, statsBox)

	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderHelp())
}

// renderHelp renders the key bindings footer
func (m Model) renderHelp() string {
	keys := []string{"enter", "ctrl+s", "ctrl+r", "pgup/pgdown", "esc"}
	descs := []string{"copy translation", "use sample", "new sample", "scroll stats", "quit"}

	var parts []string
	for i := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			m.styles.HelpKey.Render(keys[i]),
			m.styles.HelpDesc.Render(descs[i])))
	}
	return " " + strings.Join(parts, " • ")
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "📋 Copied %s%s%s to clipboard.\n", Green, text, Reset)
	return nil
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(translator *Translator, load *LoadStats, config *Config) error {
	model := InitialModel(translator, load, config)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := program.Run()
	if err != nil {
		return err
	}

	if m, ok := final.(Model); ok && m.chosen != "" {
		if err := copyToClipboard(m.chosen); err != nil {
			// Still show the result when no clipboard tool is installed
			fmt.Println(m.chosen)
			return fmt.Errorf("failed to copy to clipboard: %v", err)
		}
	}
	return nil
}
