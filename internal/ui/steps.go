package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StepStatus is the state of one pipeline step.
type StepStatus int

const (
	StepPending StepStatus = iota
	StepRunning
	StepComplete
	StepFailed
	StepSkipped
)

func (s StepStatus) finished() bool {
	return s == StepComplete || s == StepFailed || s == StepSkipped
}

// Step is one line of the step list. Note carries the stage result
// ("xc7a35tcpg236-1", "10,008 frames") or the failure message.
type Step struct {
	Name   string
	Status StepStatus
	Note   string
}

// StepList tracks the numbered steps of a command.
type StepList struct {
	Steps   []Step
	Current int // 1-based, 0 before the first step starts
}

// NewStepList creates a list with every step pending.
func NewStepList(names []string) *StepList {
	steps := make([]Step, len(names))
	for i, name := range names {
		steps[i] = Step{Name: name}
	}
	return &StepList{Steps: steps}
}

// Update sets the status and note of step n. Out of range steps are ignored.
func (l *StepList) Update(n int, status StepStatus, note string) bool {
	if n < 1 || n > len(l.Steps) {
		return false
	}
	l.Steps[n-1].Status = status
	l.Steps[n-1].Note = note
	if status == StepRunning {
		l.Current = n
	}
	return true
}

// Done returns the fraction of steps completed or skipped.
func (l *StepList) Done() float64 {
	if len(l.Steps) == 0 {
		return 0
	}
	n := 0
	for _, s := range l.Steps {
		if s.Status == StepComplete || s.Status == StepSkipped {
			n++
		}
	}
	return float64(n) / float64(len(l.Steps))
}

// Line renders step n as "  [n/total] name   marker  (note)".
func (l *StepList) Line(n int) string {
	step := l.Steps[n-1]

	var marker string
	var style lipgloss.Style
	switch step.Status {
	case StepComplete:
		marker, style = MarkerDone, statusStyle(SuccessColor)
	case StepRunning:
		marker, style = MarkerRunning, statusStyle(WarningColor)
	case StepFailed:
		marker, style = MarkerFailed, statusStyle(ErrorColor).Bold(true)
	case StepSkipped:
		marker, style = MarkerSkipped, mutedStyle
	default:
		marker, style = MarkerPending, mutedStyle
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  [%d/%d] ", n, len(l.Steps))
	b.WriteString(style.Render(step.Name))
	b.WriteString(strings.Repeat(" ", max(45-lipgloss.Width(step.Name), 1)))
	b.WriteString(style.Render(marker))
	if step.Note != "" {
		b.WriteString("  ")
		b.WriteString(noteStyle.Render("(" + step.Note + ")"))
	}
	return b.String()
}

// Render returns every step line.
func (l *StepList) Render() string {
	lines := make([]string, len(l.Steps))
	for i := range l.Steps {
		lines[i] = l.Line(i + 1)
	}
	return strings.Join(lines, "\n")
}

// StepCallback reports a step transition. A non-empty name renames the step.
type StepCallback func(step int, name string, status StepStatus, note string)
