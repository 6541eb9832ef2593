// Package tuitest provides testing utilities for TUI components.
package tuitest

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes and trailing whitespace for cleaner
// golden files. This makes golden files human-readable and less fragile to
// style changes.
func StripANSI(s string) string {
	s = ansi.Strip(s)
	lines := strings.Split(s, "\n")
	var result []string
	for _, line := range lines {
		result = append(result, strings.TrimRight(line, " "))
	}
	return strings.TrimRight(strings.Join(result, "\n"), "\n")
}

// KeyPress creates a key press message for a single rune.
func KeyPress(key rune) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{key}}
}

// KeyDown creates a down arrow key press message.
func KeyDown() tea.Msg {
	return tea.KeyMsg{Type: tea.KeyDown}
}

// KeyUp creates an up arrow key press message.
func KeyUp() tea.Msg {
	return tea.KeyMsg{Type: tea.KeyUp}
}

// KeyEnter creates an enter key press message.
func KeyEnter() tea.Msg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

// KeyEsc creates an escape key press message.
func KeyEsc() tea.Msg {
	return tea.KeyMsg{Type: tea.KeyEsc}
}

// MousePress creates a left button press at the given cell.
func MousePress(x, y int) tea.Msg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// MouseMotion creates a drag motion sample at the given cell.
func MouseMotion(x, y int) tea.Msg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

// MouseRelease creates a left button release at the given cell.
func MouseRelease(x, y int) tea.Msg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

// WindowSize creates a window size message.
func WindowSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}
