package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("12")  // bright blue
	colorDim    = lipgloss.Color("240") // gray

	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	styleHint = lipgloss.NewStyle().
			Foreground(colorDim)

	styleEmpty = lipgloss.NewStyle().
			Italic(true).
			Foreground(colorDim)

	styleMarker = lipgloss.NewStyle().
			Foreground(colorAccent)

	styleDate = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")) // cyan

	styleTitle = lipgloss.NewStyle().
			Bold(true)

	styleBody = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)
