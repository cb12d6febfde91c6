package llsample

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

const testLL = `Revision 3
; Created by bitgen 2021.2
; Bit lines have the following form:
; <offset> <frame address> <frame offset> <information>
Info 0x00000000 0 Design=top
Bit  1234 0x00400100     44 Block=SLICE_X0Y1 Latch=AQ Net=q0
Bit  1300 0x00400100     63 Block=RAMB18_X0Y0 Ram=B:BIT0
Bit  5678 0x00020080   3231 Block=SLICE_X12Y60 Latch=BQ Net=q1

Bit  9999 0x00000000      0 Block=SLICE_X1Y1 Latch=CQ Net=q2
`

func TestParse(t *testing.T) {
	bits, err := Parse(strings.NewReader(testLL))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []Bit{
		{Frame: "00400100", Word: 1, Bit: 12},
		{Frame: "00020080", Word: 100, Bit: 31},
		{Frame: "00000000", Word: 0, Bit: 0},
	}
	if len(bits) != len(want) {
		t.Fatalf("Parse() returned %d bits, want %d: %v", len(bits), len(want), bits)
	}
	for i := range want {
		if bits[i] != want[i] {
			t.Errorf("bit %d = %+v, want %+v", i, bits[i], want[i])
		}
	}
	if got := bits[1].String(); got != "bit_00020080_100_31" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		line int
	}{
		{"bad frame", "Info x\nBit 1 00400100 4 Block=SLICE_X0Y0\n", 2},
		{"bad offset", "Bit 1 0x00400100 four Block=SLICE_X0Y0\n", 1},
		{"negative offset", "Bit 1 0x00400100 -4 Block=SLICE_X0Y0\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.in))
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse() error = %v, want ParseError", err)
			}
			if perr.Line != tt.line {
				t.Errorf("Line = %d, want %d", perr.Line, tt.line)
			}
		})
	}
}

func TestSample(t *testing.T) {
	var bits []Bit
	for i := 0; i < 50; i++ {
		bits = append(bits, Bit{Frame: "00000000", Word: i / 32, Bit: i % 32})
	}
	orig := append([]Bit(nil), bits...)

	got := Sample(bits, 20, NewRand(7))
	if len(got) != 20 {
		t.Fatalf("Sample() returned %d bits, want 20", len(got))
	}
	seen := make(map[Bit]bool)
	for _, b := range got {
		if seen[b] {
			t.Errorf("Sample() returned %v twice", b)
		}
		seen[b] = true
	}
	for i := range bits {
		if bits[i] != orig[i] {
			t.Fatal("Sample() modified its input")
		}
	}

	again := Sample(bits, 20, NewRand(7))
	for i := range got {
		if got[i] != again[i] {
			t.Fatal("Sample() with the same seed should repeat")
		}
	}

	if n := len(Sample(bits, 500, NewRand(1))); n != len(bits) {
		t.Errorf("Sample(n > len) returned %d bits, want %d", n, len(bits))
	}
	if n := len(Sample(nil, 3, NewRand(1))); n != 0 {
		t.Errorf("Sample(nil) returned %d bits, want 0", n)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	sample := []Bit{{Frame: "00400100", Word: 1, Bit: 12}}
	if err := WriteJSON(&buf, sample); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	want := `[
    [
        [
            "00400100",
            "001",
            "12"
        ]
    ]
]`
	if buf.String() != want {
		t.Errorf("WriteJSON() =\n%s\nwant\n%s", buf.String(), want)
	}

	buf.Reset()
	if err := WriteJSON(&buf, nil); err != nil || buf.String() != "[]" {
		t.Errorf("WriteJSON(nil) = %q, %v", buf.String(), err)
	}
}

func TestOutputPath(t *testing.T) {
	tests := map[string]string{
		"design.ll":            "design_ll_sample_bits.json",
		"/work/impl/top.v2.ll": "top_ll_sample_bits.json",
		"noext":                "noext_ll_sample_bits.json",
	}
	for in, want := range tests {
		if got := OutputPath(in); got != want {
			t.Errorf("OutputPath(%q) = %q, want %q", in, got, want)
		}
	}
}
