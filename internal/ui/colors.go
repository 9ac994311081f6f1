package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors for status indication. ANSI codes keep them readable on
// any terminal theme.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorMuted   lipgloss.Color = "8" // Gray (bright black)
)

// GradientColors cycle through the spinner frames.
var GradientColors = []lipgloss.Color{
	lipgloss.Color("#FF6AD5"),
	lipgloss.Color("#C774E8"),
	lipgloss.Color("#94D0FF"),
	lipgloss.Color("#8CFFA0"),
}
