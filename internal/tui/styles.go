package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Done    lipgloss.Color
	Cursor  lipgloss.Color
	Error   lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Done:    lipgloss.Color("#00B894"), // Green
	Cursor:  lipgloss.Color("#FFEAA7"), // Yellow
	Error:   lipgloss.Color("#D63031"), // Red
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary)
	cursorStyle = lipgloss.NewStyle().Foreground(Colors.Cursor)
	doneStyle   = lipgloss.NewStyle().Foreground(Colors.Done).Strikethrough(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(Colors.Muted)
	errorStyle  = lipgloss.NewStyle().Foreground(Colors.Error)
)
