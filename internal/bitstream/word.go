package bitstream

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
)

// WordSize is the size of a configuration word in bytes.
const WordSize = 4

// readBufferSize covers a few hundred frames per refill.
const readBufferSize = 64 * 1024

// Word is a 32-bit configuration word. Bit 0 is the least significant bit.
type Word uint32

// WordFromBytes assembles a Word with b[0] as the most significant byte.
func WordFromBytes(b [WordSize]byte) Word {
	return Word(binary.BigEndian.Uint32(b[:]))
}

// Bit returns bit i (0 = LSB) as 0 or 1.
func (w Word) Bit(i int) uint8 {
	return uint8(w>>uint(i)) & 1
}

// Bits returns all 32 bits, LSB first.
func (w Word) Bits() [32]uint8 {
	var bits [32]uint8
	for i := range bits {
		bits[i] = w.Bit(i)
	}
	return bits
}

// Field extracts width bits starting at bit lo.
func (w Word) Field(lo, width uint) uint32 {
	mask := uint64(1)<<width - 1
	return uint32((uint64(w) >> lo) & mask)
}

// BitsToInt converts a bit sequence to an integer, treating bits[0] as the
// least significant bit. Values other than 0 are treated as 1.
func BitsToInt(bits []uint8) uint64 {
	var v uint64
	for i, b := range bits {
		if b != 0 {
			v |= 1 << uint(i)
		}
	}
	return v
}

// Reader reads bytes and words from a bitstream and tracks the byte offset
// of its cursor.
type Reader struct {
	br     *bufio.Reader
	offset int64
}

// NewReader wraps r in a buffered bitstream reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReaderSize(r, readBufferSize)}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 {
	return r.offset
}

// ReadWord reads the next 4 bytes as a Word.
func (r *Reader) ReadWord() (Word, error) {
	var buf [WordSize]byte
	if err := r.readFull("word", buf[:]); err != nil {
		return 0, err
	}
	return WordFromBytes(buf), nil
}

// ReadByte reads a single raw byte.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.br.ReadByte()
	if err != nil {
		return 0, &TruncatedStreamError{What: "byte", Offset: r.offset, Want: 1, Err: err}
	}
	r.offset++
	return b, nil
}

// ReadBytes reads exactly n raw bytes.
func (r *Reader) ReadBytes(what string, n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := r.readFull(what, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// SkipWords discards n words.
func (r *Reader) SkipWords(n int) error {
	return r.skipBytes("skipped words", n*WordSize)
}

func (r *Reader) skipBytes(what string, n int) error {
	start := r.offset
	got, err := r.br.Discard(n)
	r.offset += int64(got)
	if err != nil {
		return &TruncatedStreamError{What: what, Offset: start, Want: n, Got: got, Err: err}
	}
	return nil
}

// peek returns the next n bytes without advancing the cursor.
func (r *Reader) peek(n int) ([]byte, error) {
	return r.br.Peek(n)
}

func (r *Reader) readFull(what string, buf []byte) error {
	start := r.offset
	n, err := io.ReadFull(r.br, buf)
	r.offset += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return &TruncatedStreamError{What: what, Offset: start, Want: len(buf), Got: n, Err: err}
	}
	return nil
}
