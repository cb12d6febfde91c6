package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Header is the banner printed before a command runs: the title, the
// command line as typed, and the inputs it was given (bitstream, part,
// database directory).
type Header struct {
	Title   string
	Command string
	Params  map[string]string
	Width   int
}

// NewHeader creates a header sized to the terminal.
func NewHeader(title, command string, params map[string]string) *Header {
	return &Header{Title: title, Command: command, Params: params, Width: TerminalWidth()}
}

// SetWidth overrides the rendering width.
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the header inside a rounded accent border. Params are
// listed in key order so output is stable between runs.
func (h *Header) Render() string {
	width := clampWidth(h.Width)

	sections := []string{
		titleStyle.Render(strings.ToUpper(h.Title)),
		mutedStyle.PaddingLeft(2).Render(h.Command),
	}
	if len(h.Params) > 0 {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(AccentColor).
			Render(strings.Repeat("─", max(width-6, 10))))
		for _, key := range sortedKeys(h.Params) {
			sections = append(sections,
				mutedStyle.PaddingLeft(2).Render(key+":")+" "+textStyle.Render(h.Params[key]))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(AccentColor).
		Width(width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (h *Header) String() string {
	return h.Render()
}
