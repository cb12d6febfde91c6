package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Messages driving the live progress model
type (
	frameMsg struct {
		done  int
		total int
	}
	finishMsg struct {
		err error
	}
)

// FrameProgressModel is a Bubble Tea model showing a progress bar for the
// frame decode walk. It exits when it receives the finish message.
type FrameProgressModel struct {
	label    string
	done     int
	total    int
	bar      progress.Model
	finished bool
	err      error
}

// NewFrameProgressModel creates a model with the given label.
func NewFrameProgressModel(label string, width int) FrameProgressModel {
	barWidth := width - 30
	if barWidth < 20 {
		barWidth = 20
	}
	if barWidth > 50 {
		barWidth = 50
	}
	return FrameProgressModel{
		label: label,
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(barWidth),
			progress.WithoutPercentage(),
		),
	}
}

// Init implements tea.Model
func (m FrameProgressModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m FrameProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.done, m.total = msg.done, msg.total
	case finishMsg:
		m.finished = true
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}
	return m, nil
}

// Percent returns the fraction of frames decoded
func (m FrameProgressModel) Percent() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.done) / float64(m.total)
}

// View implements tea.Model
func (m FrameProgressModel) View() string {
	marker := statusStyle(WarningColor).Render(MarkerRunning)
	if m.finished {
		if m.err != nil {
			marker = statusStyle(ErrorColor).Bold(true).Render(MarkerFailed)
		} else {
			marker = statusStyle(SuccessColor).Render(MarkerDone)
		}
	}
	counter := mutedStyle.Render(fmt.Sprintf("%3.0f%%  %d/%d frames", m.Percent()*100, m.done, m.total))
	return indent.Render(fmt.Sprintf("%s %s  %s  %s", marker, m.label, m.bar.ViewAs(m.Percent()), counter)) + "\n"
}

// LiveProgress runs a FrameProgressModel in the background.
type LiveProgress struct {
	program  *tea.Program
	done     chan struct{}
	stopOnce sync.Once

	mu      sync.Mutex
	lastPct int
}

// StartLiveProgress starts rendering frame progress to out.
func StartLiveProgress(out io.Writer, label string, width int) *LiveProgress {
	l := &LiveProgress{
		program: tea.NewProgram(NewFrameProgressModel(label, width),
			tea.WithOutput(out),
			tea.WithInput(nil),
		),
		done:    make(chan struct{}),
		lastPct: -1,
	}
	go func() {
		defer close(l.done)
		_, _ = l.program.Run()
	}()
	return l
}

// Frames reports decode progress. Updates are forwarded only when the
// whole percentage changes.
func (l *LiveProgress) Frames(done, total int) {
	pct := 100
	if total > 0 {
		pct = done * 100 / total
	}
	l.mu.Lock()
	changed := pct != l.lastPct
	l.lastPct = pct
	l.mu.Unlock()
	if changed || done == total {
		l.program.Send(frameMsg{done: done, total: total})
	}
}

// Stop ends the display and waits for the final frame to render.
func (l *LiveProgress) Stop(err error) {
	l.stopOnce.Do(func() {
		l.program.Send(finishMsg{err: err})
		<-l.done
	})
}
