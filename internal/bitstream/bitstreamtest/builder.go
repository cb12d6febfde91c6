// Package bitstreamtest builds synthetic .bit files for tests.
package bitstreamtest

import (
	"bytes"
	"encoding/binary"
)

// Common header words
const (
	DummyWord    = 0xFFFFFFFF
	BusWidthSync = 0x000000BB
	BusWidthTest = 0x11220044
	SyncWord     = 0xAA995566
	NOPWord      = 0x20000000
)

// preamble is the fixed first field of a Vivado .bit header.
var preamble = []byte{0x0f, 0xf0, 0x0f, 0xf0, 0x0f, 0xf0, 0x0f, 0xf0, 0x00}

// Builder accumulates bitstream bytes.
type Builder struct {
	buf bytes.Buffer
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Bytes returns the bytes written so far.
func (b *Builder) Bytes() []byte {
	return b.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int {
	return b.buf.Len()
}

// Raw appends raw bytes.
func (b *Builder) Raw(p ...byte) *Builder {
	b.buf.Write(p)
	return b
}

// Field appends a 2-byte length prefix followed by data.
func (b *Builder) Field(data []byte) *Builder {
	var n [2]byte
	binary.BigEndian.PutUint16(n[:], uint16(len(data)))
	b.buf.Write(n[:])
	b.buf.Write(data)
	return b
}

// Header appends a Vivado-style header using the given format marker and
// raw part field (without terminator), followed by the sync sequence.
func (b *Builder) Header(marker, part string) *Builder {
	b.HeaderNoSync(marker, part)
	return b.Words(DummyWord, DummyWord, BusWidthSync, BusWidthTest, DummyWord, DummyWord, SyncWord)
}

// HeaderNoSync appends the length-prefixed header fields only.
func (b *Builder) HeaderNoSync(marker, part string) *Builder {
	b.Field(preamble)
	b.Field([]byte(marker))
	b.Field([]byte("top;UserID=0XFFFFFFFF;Version=2021.2\x00"))
	b.Raw('b')
	b.Field(append([]byte(part), 0))
	b.Raw('c')
	b.Field([]byte("2022/03/14\x00"))
	b.Raw('d')
	b.Field([]byte("10:15:00\x00"))
	b.Raw('e')
	return b.Raw(0x00, 0x01, 0x00, 0x00)
}

// Words appends 32-bit words, most significant byte first.
func (b *Builder) Words(words ...uint32) *Builder {
	var w [4]byte
	for _, v := range words {
		binary.BigEndian.PutUint32(w[:], v)
		b.buf.Write(w[:])
	}
	return b
}

// Type1 appends a Type 1 header and its payload words.
func (b *Builder) Type1(opcode, address uint32, payload ...uint32) *Builder {
	return b.Words(Type1Word(opcode, address, uint32(len(payload)))).Words(payload...)
}

// Type2 appends a Type 2 header announcing length words.
func (b *Builder) Type2(length uint32) *Builder {
	return b.Words(Type2Word(length))
}

// FDRIWrite appends the FDRI write idiom for a payload of length words.
// The payload itself is not written.
func (b *Builder) FDRIWrite(length uint32) *Builder {
	return b.Words(Type1Word(2, 2, 0)).Type2(length)
}

// Type1Word encodes a Type 1 header.
func Type1Word(opcode, address, length uint32) uint32 {
	return 1<<29 | (opcode&0x3)<<27 | (address&0x3FFF)<<13 | length&0x7FF
}

// Type2Word encodes a Type 2 header.
func Type2Word(length uint32) uint32 {
	return 2<<29 | length&0x7FFFFFF
}
