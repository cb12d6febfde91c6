package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// RunnerConfig holds configuration for a command run
type RunnerConfig struct {
	Title     string            // Command title (e.g., "Decode Bitstream")
	Command   string            // Full command (e.g., "bitread bits design.bit")
	Params    map[string]string // Parameters to display in header
	StepNames []string          // Names for each step, in order
	Output    io.Writer         // Output writer (default: os.Stdout)
	Width     int               // Rendering width (default: terminal width)

	// Live shows a Bubble Tea progress bar while frames are decoded.
	// Only enable it when Output is a terminal.
	Live bool

	// Troubleshoot returns tips for a failure. Nil shows none.
	Troubleshoot func(err error) []string
}

// FrameCallback receives frame decode progress.
type FrameCallback func(done, total int)

// Operation is the work performed under a Runner. It reports step
// transitions through onStep and frame progress through onFrames, and
// returns the details shown in the success box.
type Operation func(onStep StepCallback, onFrames FrameCallback) (map[string]string, error)

// Runner orchestrates the UI for a command execution.
// It manages the header, step list and result box in order.
type Runner struct {
	config    RunnerConfig
	header    *Header
	steps     *StepList
	output    io.Writer
	live      *LiveProgress
	startTime time.Time
	width     int
}

// NewRunner creates a new runner
func NewRunner(config RunnerConfig) *Runner {
	if config.Output == nil {
		config.Output = os.Stdout
	}

	width := config.Width
	if width == 0 {
		width = TerminalWidth()
	}

	header := NewHeader(config.Title, config.Command, config.Params)
	header.SetWidth(width)

	var steps *StepList
	if len(config.StepNames) > 0 {
		steps = NewStepList(config.StepNames)
	}

	return &Runner{
		config: config,
		header: header,
		steps:  steps,
		output: config.Output,
		width:  width,
	}
}

// Run executes the operation with UI updates.
// It displays the header, tracks progress, and shows the result.
func (r *Runner) Run(operation Operation) (map[string]string, error) {
	r.startTime = time.Now()

	_, _ = fmt.Fprintln(r.output, r.header.Render())
	_, _ = fmt.Fprintln(r.output)

	details, err := operation(r.stepCallback(), r.frameCallback())
	r.stopLive(err)
	duration := time.Since(r.startTime)

	if err != nil {
		r.printFailure(err)
	} else {
		r.printSuccess(details, duration)
	}

	return details, err
}

func (r *Runner) stepCallback() StepCallback {
	return func(step int, name string, status StepStatus, note string) {
		if r.steps == nil || step < 1 || step > len(r.steps.Steps) {
			return
		}
		switch status {
		case StepFailed:
			r.stopLive(errors.New(note))
		case StepComplete, StepSkipped:
			r.stopLive(nil)
		}

		if name != "" {
			r.steps.Steps[step-1].Name = name
		}
		r.steps.Update(step, status, note)

		switch {
		case status.finished():
			_, _ = fmt.Fprintln(r.output, r.steps.Line(step))
		case status == StepRunning && !r.config.Live:
			// Overwritten when the step completes
			_, _ = fmt.Fprint(r.output, r.steps.Line(step)+"\r")
		}
	}
}

func (r *Runner) frameCallback() FrameCallback {
	return func(done, total int) {
		if !r.config.Live {
			return
		}
		if r.live == nil {
			label := "Decoding frames"
			if r.steps != nil && r.steps.Current > 0 {
				label = r.steps.Steps[r.steps.Current-1].Name
			}
			r.live = StartLiveProgress(r.output, label, r.width)
		}
		r.live.Frames(done, total)
	}
}

func (r *Runner) stopLive(err error) {
	if r.live != nil {
		r.live.Stop(err)
		r.live = nil
	}
}

func (r *Runner) printSuccess(details map[string]string, duration time.Duration) {
	_, _ = fmt.Fprintln(r.output)

	if details == nil {
		details = make(map[string]string)
	}
	details["Duration"] = duration.Round(time.Millisecond).String()

	result := NewSuccessResult(r.config.Title+" complete", details)
	result.SetWidth(r.width)
	_, _ = fmt.Fprintln(r.output, result.Render())
}

func (r *Runner) printFailure(err error) {
	_, _ = fmt.Fprintln(r.output)

	var troubleshooting []string
	if r.config.Troubleshoot != nil {
		troubleshooting = r.config.Troubleshoot(err)
	}

	result := NewFailureResult(r.config.Title+" failed", err, troubleshooting)
	result.SetWidth(r.width)
	_, _ = fmt.Fprintln(r.output, result.Render())
}

// FormatCount renders n with thousands separators (e.g., 10,008).
func FormatCount(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if n < 0 {
		neg = true
		s = s[1:]
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
