package bitstream

import (
	"bytes"
	"errors"
	"testing"

	"github.com/muurk/bitread/internal/bitstream/bitstreamtest"
)

func TestReadField(t *testing.T) {
	data := []byte{0x00, 0x03, 'a', 'b', 'c', 0x00, 0x01, 'z'}
	r := NewReader(bytes.NewReader(data))

	got, err := ReadField(r)
	if err != nil {
		t.Fatalf("ReadField() error = %v", err)
	}
	if string(got) != "abc" {
		t.Errorf("ReadField() = %q, want %q", got, "abc")
	}

	got, err = ReadField(r)
	if err != nil {
		t.Fatalf("second ReadField() error = %v", err)
	}
	if string(got) != "z" {
		t.Errorf("second ReadField() = %q, want %q", got, "z")
	}
}

func TestReadFieldTruncated(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x00, 0x05, 'a', 'b'}))

	_, err := ReadField(r)
	var truncErr *TruncatedStreamError
	if !errors.As(err, &truncErr) {
		t.Fatalf("ReadField() error = %v, want TruncatedStreamError", err)
	}
	if truncErr.What != "field data" {
		t.Errorf("What = %q, want %q", truncErr.What, "field data")
	}
}

func TestLocatePartAndSync(t *testing.T) {
	b := bitstreamtest.New().HeaderNoSync("a", "7a35tcpg236")
	headerLen := b.Len()
	b.Words(bitstreamtest.DummyWord, bitstreamtest.BusWidthSync, bitstreamtest.SyncWord, bitstreamtest.NOPWord)

	r := NewReader(bytes.NewReader(b.Bytes()))
	hdr, err := LocatePartAndSync(r)
	if err != nil {
		t.Fatalf("LocatePartAndSync() error = %v", err)
	}

	if hdr.Part != "xc7a35tcpg236-1" {
		t.Errorf("Part = %q, want %q", hdr.Part, "xc7a35tcpg236-1")
	}
	if hdr.RawPart != "7a35tcpg236" {
		t.Errorf("RawPart = %q, want %q", hdr.RawPart, "7a35tcpg236")
	}
	if hdr.DesignInfo == "" {
		t.Error("DesignInfo should not be empty")
	}

	wantOffset := int64(headerLen + 3*WordSize)
	if r.Offset() != wantOffset {
		t.Errorf("Offset() after sync = %d, want %d", r.Offset(), wantOffset)
	}

	w, err := r.ReadWord()
	if err != nil {
		t.Fatalf("ReadWord() after sync error = %v", err)
	}
	if w != bitstreamtest.NOPWord {
		t.Errorf("first word after sync = 0x%08x, want NOP", uint32(w))
	}
}

func TestLocatePartAndSyncFalseLeads(t *testing.T) {
	// 0xAA bytes that do not start the sync word, including one that
	// overlaps the real sync word.
	b := bitstreamtest.New().HeaderNoSync("a", "xc7z020clg400-1").
		Raw(0xAA, 0x00, 0x00, 0x00).
		Raw(0xAA, 0x99, 0x55, 0x00).
		Raw(0xAA).
		Words(bitstreamtest.SyncWord, 0x12345678)

	r := NewReader(bytes.NewReader(b.Bytes()))
	hdr, err := LocatePartAndSync(r)
	if err != nil {
		t.Fatalf("LocatePartAndSync() error = %v", err)
	}
	if hdr.Part != "xc7z020clg400-1" {
		t.Errorf("Part = %q, want unchanged full name", hdr.Part)
	}

	w, err := r.ReadWord()
	if err != nil {
		t.Fatalf("ReadWord() error = %v", err)
	}
	if w != 0x12345678 {
		t.Errorf("word after sync = 0x%08x, want 0x12345678", uint32(w))
	}
}

func TestLocatePartAndSyncErrors(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		check func(t *testing.T, err error)
	}{
		{
			name:  "wrong format marker",
			input: bitstreamtest.New().Header("b", "7a35tcpg236").Bytes(),
			check: func(t *testing.T, err error) {
				var fmtErr *UnrecognizedFormatError
				if !errors.As(err, &fmtErr) {
					t.Fatalf("error = %v, want UnrecognizedFormatError", err)
				}
				if fmtErr.Got != "b" {
					t.Errorf("Got = %q, want %q", fmtErr.Got, "b")
				}
			},
		},
		{
			name:  "no sync word",
			input: bitstreamtest.New().HeaderNoSync("a", "7a35tcpg236").Words(0xAA000000, 0xFFFFFFFF).Bytes(),
			check: func(t *testing.T, err error) {
				var syncErr *SyncNotFoundError
				if !errors.As(err, &syncErr) {
					t.Fatalf("error = %v, want SyncNotFoundError", err)
				}
			},
		},
		{
			name:  "sync lead at end of stream",
			input: bitstreamtest.New().HeaderNoSync("a", "7a35tcpg236").Raw(0xAA, 0x99).Bytes(),
			check: func(t *testing.T, err error) {
				var syncErr *SyncNotFoundError
				if !errors.As(err, &syncErr) {
					t.Fatalf("error = %v, want SyncNotFoundError", err)
				}
			},
		},
		{
			name:  "truncated header",
			input: []byte{0x00, 0x09, 0x0f, 0xf0},
			check: func(t *testing.T, err error) {
				var truncErr *TruncatedStreamError
				if !errors.As(err, &truncErr) {
					t.Fatalf("error = %v, want TruncatedStreamError", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LocatePartAndSync(NewReader(bytes.NewReader(tt.input)))
			if err == nil {
				t.Fatal("LocatePartAndSync() expected error, got nil")
			}
			tt.check(t, err)
		})
	}
}

func TestNormalizePart(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"7a35tcpg236", "xc7a35tcpg236-1"},
		{"7z020clg400", "xc7z020clg400-1"},
		{"xc7k70tfbg676-2", "xc7k70tfbg676-2"},
		{"xc6slx4", "xc6slx4"},
	}

	for _, tt := range tests {
		if got := NormalizePart(tt.raw); got != tt.want {
			t.Errorf("NormalizePart(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
