package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Palette
var (
	AccentColor  = lipgloss.Color("#7D56F4")
	SuccessColor = lipgloss.Color("#43BF6D")
	ErrorColor   = lipgloss.Color("#FF5555")
	WarningColor = lipgloss.Color("#FFA500")
	MutedColor   = lipgloss.Color("#626262")
	TextColor    = lipgloss.Color("#FFFFFF")
)

// Rendering width bounds
const (
	MinWidth = 60
	MaxWidth = 100
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(TextColor).Bold(true).PaddingLeft(2)
	mutedStyle = lipgloss.NewStyle().Foreground(MutedColor)
	textStyle  = lipgloss.NewStyle().Foreground(TextColor)
	noteStyle  = lipgloss.NewStyle().Foreground(MutedColor).Italic(true)
	indent     = lipgloss.NewStyle().PaddingLeft(2)

	// detailKeyStyle aligns "Bits:", "Frames:" and friends in result boxes.
	detailKeyStyle = lipgloss.NewStyle().Foreground(MutedColor).Width(15)
)

// Step and result markers
const (
	MarkerDone    = "✓"
	MarkerRunning = "●"
	MarkerPending = "·"
	MarkerSkipped = "⊘"
	MarkerFailed  = "✗"
	MarkerWarning = "⚠"
)

// statusStyle colours a marker or step name by outcome.
func statusStyle(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(color)
}

// TerminalWidth returns the stdout width clamped to [MinWidth, MaxWidth].
// Anything that is not a terminal gets MinWidth.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinWidth
	}
	return clampWidth(width)
}

func clampWidth(width int) int {
	switch {
	case width < MinWidth:
		return MinWidth
	case width > MaxWidth:
		return MaxWidth
	default:
		return width
	}
}
