package bitstream

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestWordFromBytesBitPositions(t *testing.T) {
	patterns := [][4]byte{
		{0x00, 0x00, 0x00, 0x01},
		{0x80, 0x00, 0x00, 0x00},
		{0xAA, 0x99, 0x55, 0x66},
		{0x12, 0x34, 0x56, 0x78},
		{0xFF, 0x00, 0xF0, 0x0F},
	}

	for _, p := range patterns {
		w := WordFromBytes(p)
		for k := 0; k < 32; k++ {
			want := (p[3-k/8] >> uint(k%8)) & 1
			if got := w.Bit(k); got != want {
				t.Errorf("bytes % x: bit %d = %d, want %d", p[:], k, got, want)
			}
		}
	}
}

func TestWordBitsRoundTrip(t *testing.T) {
	w := WordFromBytes([4]byte{0xDE, 0xAD, 0xBE, 0xEF})
	bits := w.Bits()
	if got := BitsToInt(bits[:]); got != 0xDEADBEEF {
		t.Errorf("BitsToInt(Bits()) = 0x%08x, want 0xdeadbeef", got)
	}
}

func TestBitsToInt(t *testing.T) {
	tests := []struct {
		name string
		bits []uint8
		want uint64
	}{
		{"empty", nil, 0},
		{"lsb only", []uint8{1}, 1},
		{"msb of three", []uint8{0, 0, 1}, 4},
		{"sync lead byte", []uint8{0, 1, 0, 1, 0, 1, 0, 1}, 0xAA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BitsToInt(tt.bits); got != tt.want {
				t.Errorf("BitsToInt(%v) = %d, want %d", tt.bits, got, tt.want)
			}
		})
	}
}

func TestWordField(t *testing.T) {
	w := Word(0x30004000)
	if got := w.Field(29, 3); got != 1 {
		t.Errorf("tag = %d, want 1", got)
	}
	if got := w.Field(13, 14); got != 2 {
		t.Errorf("address = %d, want 2", got)
	}
	if got := Word(0xFFFFFFFF).Field(0, 32); got != 0xFFFFFFFF {
		t.Errorf("full-width field = 0x%08x, want 0xffffffff", got)
	}
}

func TestReadWord(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xAA, 0x99, 0x55, 0x66, 0x01}))

	w, err := r.ReadWord()
	if err != nil {
		t.Fatalf("ReadWord() error = %v", err)
	}
	if w != SyncWord {
		t.Errorf("ReadWord() = 0x%08x, want 0x%08x", uint32(w), uint32(SyncWord))
	}
	if r.Offset() != 4 {
		t.Errorf("Offset() = %d, want 4", r.Offset())
	}

	_, err = r.ReadWord()
	var truncErr *TruncatedStreamError
	if !errors.As(err, &truncErr) {
		t.Fatalf("ReadWord() on 1 byte error = %v, want TruncatedStreamError", err)
	}
	if truncErr.Got != 1 || truncErr.Want != 4 {
		t.Errorf("TruncatedStreamError got/want = %d/%d, want 1/4", truncErr.Got, truncErr.Want)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("error should wrap io.ErrUnexpectedEOF, got %v", err)
	}
}

func TestSkipWords(t *testing.T) {
	r := NewReader(bytes.NewReader(make([]byte, 10)))

	if err := r.SkipWords(2); err != nil {
		t.Fatalf("SkipWords(2) error = %v", err)
	}
	if r.Offset() != 8 {
		t.Errorf("Offset() = %d, want 8", r.Offset())
	}

	var truncErr *TruncatedStreamError
	if err := r.SkipWords(1); !errors.As(err, &truncErr) {
		t.Errorf("SkipWords past end error = %v, want TruncatedStreamError", err)
	}
}
