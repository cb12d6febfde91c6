// Package llsample draws random fault-injection bit lists from Vivado
// logic location (.ll) files.
//
// Only "Bit" records that belong to a SLICE are used. Each record's frame
// offset is split into the same frame/word/bit triple the decoder emits, so
// the sampled list can be compared against decoded .bits output directly.
package llsample

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	recordTag     = "Bit"
	sliceMarker   = "SLICE"
	minFields     = 5
	wordBits      = 32
	outputSuffix  = "_ll_sample_bits.json"
	maxLineLength = 1024 * 1024
)

// Bit is one logic location bit.
type Bit struct {
	Frame string // frame address hex digits, without the 0x prefix
	Word  int
	Bit   int
}

// Triple returns the bit as [frame, word, bit] strings, with the word
// zero-padded to 3 digits and the bit to 2.
func (b Bit) Triple() [3]string {
	return [3]string{b.Frame, fmt.Sprintf("%03d", b.Word), fmt.Sprintf("%02d", b.Bit)}
}

// String renders the bit in the decoder's bit_<frame>_<word>_<bit> form.
func (b Bit) String() string {
	return fmt.Sprintf("bit_%s_%03d_%02d", b.Frame, b.Word, b.Bit)
}

// ParseError reports a malformed Bit record.
type ParseError struct {
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("logic location line %d: %s: %v", e.Line, e.Msg, e.Err)
	}
	return fmt.Sprintf("logic location line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads a logic location file and returns its SLICE bits in file
// order. Lines that are not SLICE Bit records are ignored.
func Parse(r io.Reader) ([]Bit, error) {
	var bits []Bit

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineLength)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) < minFields || fields[0] != recordTag || !strings.Contains(fields[4], sliceMarker) {
			continue
		}

		_, frame, ok := strings.Cut(fields[2], "x")
		if !ok || frame == "" {
			return nil, &ParseError{Line: line, Msg: fmt.Sprintf("frame address %q has no 0x prefix", fields[2])}
		}
		offset, err := strconv.Atoi(fields[3])
		if err != nil || offset < 0 {
			return nil, &ParseError{Line: line, Msg: fmt.Sprintf("invalid frame offset %q", fields[3]), Err: err}
		}

		bits = append(bits, Bit{Frame: frame, Word: offset / wordBits, Bit: offset % wordBits})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read logic location file: %w", err)
	}
	return bits, nil
}

// Sample picks n distinct entries of bits uniformly at random, in draw
// order. n is clamped to len(bits). bits is not modified.
func Sample(bits []Bit, n int, rng *rand.Rand) []Bit {
	if n > len(bits) {
		n = len(bits)
	}
	if n < 0 {
		n = 0
	}

	pool := make([]Bit, len(bits))
	copy(pool, bits)

	out := make([]Bit, 0, n)
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		out = append(out, pool[i])
	}
	return out
}

// NewRand returns a generator for Sample. A zero seed draws a random one.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// WriteJSON writes sample as a 4-space indented JSON array in which every
// element is a one-element array holding a [frame, word, bit] triple.
func WriteJSON(w io.Writer, sample []Bit) error {
	doc := make([][1][3]string, 0, len(sample))
	for _, b := range sample {
		doc = append(doc, [1][3]string{b.Triple()})
	}
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// OutputPath returns the sample file name for a logic location path: the
// base name up to its first dot, plus "_ll_sample_bits.json". The result is
// relative to the working directory.
func OutputPath(llPath string) string {
	stem, _, _ := strings.Cut(filepath.Base(llPath), ".")
	return stem + outputSuffix
}
