// Package styles defines the visual styling for aliashdr's terminal output.
//
// All styles use semantic names and adaptive colors that adjust to light
// and dark terminal themes.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	errorColor   = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
	successColor = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#5FD700"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#909090"}
)

// StyleRegistry maps semantic names to lipgloss styles
var StyleRegistry = map[string]lipgloss.Style{
	"Error":   lipgloss.NewStyle().Foreground(errorColor).Bold(true),
	"Success": lipgloss.NewStyle().Foreground(successColor),
	"Muted":   lipgloss.NewStyle().Foreground(mutedColor),
	"Title":   lipgloss.NewStyle().Bold(true),
}

// GetStyle returns the style for a semantic name, or an empty style for
// unknown names so callers never render garbage.
func GetStyle(name string) lipgloss.Style {
	if s, ok := StyleRegistry[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
