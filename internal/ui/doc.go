// Package ui provides terminal UI components for the bitread CLI.
//
// This package uses Bubble Tea and Lipgloss to render polished terminal
// output. The components follow a "run once and exit" pattern: they render
// output compellingly but don't require user interaction.
//
// # Architecture
//
// The UI package provides these component types:
//
//   - Header: Command banner showing operation name and parameters
//   - StepList: numbered pipeline steps with status markers
//   - FrameProgressModel: Live Bubble Tea progress bar for the frame walk
//   - Result: Success/failure boxes with styled information
//
// These components are orchestrated by the Runner, which manages the
// header, steps and result flow. Commands without steps use a Printer.
//
// # Usage Pattern
//
//	runner := ui.NewRunner(ui.RunnerConfig{
//	    Title:     "Decode Bitstream",
//	    Command:   "bitread bits design.bit",
//	    Params:    map[string]string{"Bitstream": "design.bit"},
//	    StepNames: []string{"Reading header", "Decoding frames"},
//	    Live:      term.IsTerminal(int(os.Stdout.Fd())),
//	})
//
//	details, err := runner.Run(func(onStep ui.StepCallback, onFrames ui.FrameCallback) (map[string]string, error) {
//	    onStep(1, "", ui.StepRunning, "")
//	    // ... do work ...
//	    onStep(1, "", ui.StepComplete, "xc7a35tcpg236-1")
//	    return map[string]string{"Bits": "1,024"}, nil
//	})
//
// When Live is false, frame progress is ignored and the step list is
// written line by line, which keeps redirected output readable.
//
// # Logging Integration
//
// zap logging is silent unless BITREAD_LOG_LEVEL or --log-level is set,
// and it writes to stderr, so the curated UI output on stdout stays clean.
package ui
