package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme for the chat console.
type Theme struct {
	Primary lipgloss.Color // Main accent color
	Model   lipgloss.Color // Model output color
	Dim     lipgloss.Color // Dimmed/help text color
	Error   lipgloss.Color // Error color
}

// DefaultTheme is the default bright green theme.
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Model:   lipgloss.Color("#79c0ff"),
	Dim:     lipgloss.Color("#6e7681"),
	Error:   lipgloss.Color("#ff7b72"),
}

// ConsoleStyles holds all styles derived from a theme.
type ConsoleStyles struct {
	Banner lipgloss.Style
	Prompt lipgloss.Style
	Model  lipgloss.Style
	Info   lipgloss.Style
	Error  lipgloss.Style
}

// NewConsoleStyles creates styles from a theme.
func NewConsoleStyles(t Theme) ConsoleStyles {
	return ConsoleStyles{
		Banner: lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Padding(0, 1),
		Prompt: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Model:  lipgloss.NewStyle().Foreground(t.Model),
		Info:   lipgloss.NewStyle().Foreground(t.Dim),
		Error:  lipgloss.NewStyle().Foreground(t.Error),
	}
}
