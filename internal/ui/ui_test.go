package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestHeaderRender(t *testing.T) {
	h := NewHeader("Decode Bitstream", "bitread bits design.bit", map[string]string{
		"Part":      "xc7a35t",
		"Bitstream": "design.bit",
	}).SetWidth(80)

	out := h.Render()
	for _, want := range []string{"DECODE BITSTREAM", "bitread bits design.bit", "Part:", "xc7a35t"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Bitstream:") > strings.Index(out, "Part:") {
		t.Error("params should render in sorted order")
	}
}

func TestResultRender(t *testing.T) {
	ok := NewSuccessResult("Decode complete", map[string]string{"Bits": "1,024"}).SetWidth(80).Render()
	if !strings.Contains(ok, "SUCCESS") || !strings.Contains(ok, "1,024") {
		t.Errorf("success box:\n%s", ok)
	}

	fail := NewFailureResult("Decode failed", errors.New("sync word not found"),
		[]string{"Check the file is a .bit"}).SetWidth(80).Render()
	for _, want := range []string{"FAILED", "sync word not found", "Troubleshooting:", "Check the file"} {
		if !strings.Contains(fail, want) {
			t.Errorf("failure box missing %q:\n%s", want, fail)
		}
	}

	warn := NewWarningResult("Sample clamped", nil).AddDetail("Requested", "500").SetWidth(80).Render()
	if !strings.Contains(warn, "WARNING") || !strings.Contains(warn, "500") {
		t.Errorf("warning box:\n%s", warn)
	}
}

func TestStepList(t *testing.T) {
	l := NewStepList([]string{"Reading header", "Checking device family", "Locating frame data", "Decoding frames"})

	l.Update(1, StepRunning, "")
	if l.Current != 1 {
		t.Errorf("Current = %d, want 1", l.Current)
	}
	l.Update(1, StepComplete, "xc7a35tcpg236-1")
	l.Update(2, StepSkipped, "")
	if l.Done() != 0.5 {
		t.Errorf("Done() = %v, want 0.5", l.Done())
	}
	l.Update(3, StepFailed, "no FDRI write")
	if l.Update(9, StepComplete, "") {
		t.Error("Update() accepted an out of range step")
	}

	out := l.Render()
	for _, want := range []string{"[1/4]", MarkerDone, MarkerSkipped, MarkerFailed, "(no FDRI write)", "(xc7a35tcpg236-1)"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q:\n%s", want, out)
		}
	}
}

func TestClampWidth(t *testing.T) {
	for in, want := range map[int]int{0: MinWidth, 80: 80, 500: MaxWidth} {
		if got := clampWidth(in); got != want {
			t.Errorf("clampWidth(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestRunnerSuccess(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(RunnerConfig{
		Title:     "Decode Bitstream",
		Command:   "bitread bits design.bit",
		StepNames: []string{"Reading header", "Decoding frames"},
		Output:    &buf,
		Width:     80,
	})

	var frames int
	details, err := r.Run(func(onStep StepCallback, onFrames FrameCallback) (map[string]string, error) {
		onStep(1, "", StepRunning, "")
		onStep(1, "", StepComplete, "xc7a35tcpg236-1")
		onStep(2, "", StepRunning, "")
		for i := 1; i <= 3; i++ {
			onFrames(i, 3)
			frames++
		}
		onStep(2, "", StepComplete, "")
		return map[string]string{"Bits": "21"}, nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if frames != 3 {
		t.Errorf("frame callback ran %d times", frames)
	}
	if details["Duration"] == "" {
		t.Error("Run() should add a Duration detail")
	}

	out := buf.String()
	for _, want := range []string{"DECODE BITSTREAM", "Reading header", "xc7a35tcpg236-1", "SUCCESS", "Decode Bitstream complete"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunnerFailure(t *testing.T) {
	var buf bytes.Buffer
	wantErr := errors.New("unsupported device")
	r := NewRunner(RunnerConfig{
		Title:     "Decode Bitstream",
		StepNames: []string{"Checking device family"},
		Output:    &buf,
		Width:     80,
		Troubleshoot: func(err error) []string {
			return []string{"Only Series-7 parts are supported"}
		},
	})

	_, err := r.Run(func(onStep StepCallback, onFrames FrameCallback) (map[string]string, error) {
		onStep(1, "", StepRunning, "")
		onStep(1, "", StepFailed, wantErr.Error())
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Run() error = %v, want %v", err, wantErr)
	}

	out := buf.String()
	for _, want := range []string{"FAILED", "unsupported device", "Only Series-7"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFrameProgressModel(t *testing.T) {
	m := NewFrameProgressModel("Decoding frames", 80)
	if m.Percent() != 0 {
		t.Errorf("initial Percent() = %v", m.Percent())
	}

	next, cmd := m.Update(frameMsg{done: 25, total: 100})
	if cmd != nil {
		t.Error("frame update should not return a command")
	}
	m = next.(FrameProgressModel)
	if m.Percent() != 0.25 {
		t.Errorf("Percent() = %v, want 0.25", m.Percent())
	}
	if view := m.View(); !strings.Contains(view, "25/100 frames") {
		t.Errorf("View() = %q", view)
	}

	next, cmd = m.Update(finishMsg{})
	if cmd == nil {
		t.Error("finish should quit the program")
	}
	m = next.(FrameProgressModel)
	if !strings.Contains(m.View(), MarkerDone) {
		t.Errorf("finished View() = %q", m.View())
	}

	next, _ = m.Update(finishMsg{err: errors.New("x")})
	if !strings.Contains(next.View(), MarkerFailed) {
		t.Errorf("failed View() = %q", next.View())
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(80)
	p.PrintSuccess("Frame list", map[string]string{"Frames": "7"})
	if !strings.Contains(buf.String(), "Frame list") {
		t.Errorf("PrintSuccess() output = %q", buf.String())
	}

	q := NewQuietPrinter()
	if !q.Quiet() {
		t.Error("NewQuietPrinter().Quiet() = false")
	}
	q.PrintFailure("x", errors.New("y"), nil) // must not panic
}

func TestFormatCount(t *testing.T) {
	tests := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		10008:    "10,008",
		1234567:  "1,234,567",
		-2500000: "-2,500,000",
	}
	for in, want := range tests {
		if got := FormatCount(in); got != want {
			t.Errorf("FormatCount(%d) = %q, want %q", in, got, want)
		}
	}
}
