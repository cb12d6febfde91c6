package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Outcome selects the colour and marker of a result box.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeFailure
	OutcomeWarning
)

func (o Outcome) label() (marker, word string, color lipgloss.Color) {
	switch o {
	case OutcomeFailure:
		return MarkerFailed, "FAILED", ErrorColor
	case OutcomeWarning:
		return MarkerWarning, "WARNING", WarningColor
	default:
		return MarkerDone, "SUCCESS", SuccessColor
	}
}

// Result is the box printed when a command finishes. Success and warning
// boxes list Details; failure boxes show Err and any troubleshooting tips.
type Result struct {
	Outcome Outcome
	Title   string
	Details map[string]string
	Err     error
	Tips    []string
	Width   int
}

// NewSuccessResult creates a success box.
func NewSuccessResult(title string, details map[string]string) *Result {
	return &Result{Outcome: OutcomeSuccess, Title: title, Details: details, Width: TerminalWidth()}
}

// NewFailureResult creates a failure box.
func NewFailureResult(title string, err error, tips []string) *Result {
	return &Result{Outcome: OutcomeFailure, Title: title, Err: err, Tips: tips, Width: TerminalWidth()}
}

// NewWarningResult creates a warning box.
func NewWarningResult(title string, details map[string]string) *Result {
	return &Result{Outcome: OutcomeWarning, Title: title, Details: details, Width: TerminalWidth()}
}

// SetWidth overrides the rendering width.
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail adds a key/value line.
func (r *Result) AddDetail(key, value string) *Result {
	if r.Details == nil {
		r.Details = make(map[string]string)
	}
	r.Details[key] = value
	return r
}

// Render returns the result inside a double border in the outcome colour.
func (r *Result) Render() string {
	width := clampWidth(r.Width)
	marker, word, color := r.Outcome.label()

	lines := []string{
		"",
		statusStyle(color).Bold(true).Render(fmt.Sprintf("   %s  %s  ─  %s", marker, word, r.Title)),
		"",
	}
	for _, key := range sortedKeys(r.Details) {
		lines = append(lines, detailKeyStyle.Render("   "+key+":")+" "+textStyle.Render(r.Details[key]))
	}
	if r.Err != nil {
		lines = append(lines, statusStyle(ErrorColor).Render("   Error: "+r.Err.Error()), "")
	}
	if len(r.Tips) > 0 {
		lines = append(lines, r.renderTips(width), "")
	}
	if len(r.Details) > 0 {
		lines = append(lines, "")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(color).
		Width(width-2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

func (r *Result) renderTips(width int) string {
	lines := []string{mutedStyle.Bold(true).Render("Troubleshooting:"), ""}
	for _, tip := range r.Tips {
		lines = append(lines, mutedStyle.Render("  • "+tip))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(max(width-12, 40)).
		Padding(0, 1).
		MarginLeft(3).
		Render(strings.Join(lines, "\n"))
}

func (r *Result) String() string {
	return r.Render()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
