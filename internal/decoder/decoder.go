// Package decoder walks the FDRI frame data payload of a Series-7
// bitstream and reports every set configuration bit.
package decoder

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/muurk/bitread/internal/bitstream"
	"github.com/muurk/bitread/internal/frames"
)

// Series-7 frame geometry
const (
	FrameLength         = 101 // words per frame
	RowPaddingFrames    = 2   // padding frames at every row boundary
	TrailingDummyFrames = 2   // dummy frames left at the end of the payload

	// The low 13 bits of word 50 in every frame hold the horizontal clock
	// row and are never reported.
	ClockRowWord = 50
	ClockRowBits = 13
)

// WordReader is the source of payload words.
type WordReader interface {
	ReadWord() (bitstream.Word, error)
}

// wordSkipper is implemented by readers that can discard words without
// decoding them.
type wordSkipper interface {
	SkipWords(n int) error
}

// Bit addresses one set configuration bit.
type Bit struct {
	Frame frames.Address
	Word  int // word offset within the frame, 0..FrameLength-1
	Bit   int // bit offset within the word, 0..31
}

// String renders the bit as bit_<frame>_<word>_<bit>.
func (b Bit) String() string {
	return fmt.Sprintf("bit_%s_%03d_%02d", b.Frame.Hex, b.Word, b.Bit)
}

// InClockRow reports whether a word/bit offset falls in the reserved
// horizontal clock row region.
func InClockRow(word, bit int) bool {
	return word == ClockRowWord && bit < ClockRowBits
}

// Decoder decodes frame data payloads.
type Decoder struct {
	logger   *zap.Logger
	progress ProgressCallback
}

// New creates a Decoder.
func New(opts ...Option) *Decoder {
	d := &Decoder{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode reads the frame data payload of payloadWords words from r, in the
// order given by list, and returns every set bit outside the clock row
// region. Bits are ordered by frame, then word, then bit.
//
// When the half or row of a frame differs from the previous frame, two
// padding frames are read and discarded first. After the last frame exactly
// TrailingDummyFrames frames of the payload must remain; they are not read.
func (d *Decoder) Decode(r WordReader, payloadWords uint32, list []frames.Address) ([]Bit, error) {
	if payloadWords%FrameLength != 0 {
		return nil, &MalformedPacketError{PayloadWords: payloadWords, FrameLength: FrameLength}
	}

	remaining := int64(payloadWords)
	var bits []Bit
	var prev frames.Address
	if len(list) > 0 {
		prev = list[0]
	}

	d.logger.Info("decoding frame data",
		zap.Uint32("payload_words", payloadWords),
		zap.Int("frames", len(list)),
	)

	for i, frame := range list {
		if frame.RowKey() != prev.RowKey() {
			if err := skipWords(r, RowPaddingFrames*FrameLength); err != nil {
				return nil, err
			}
			remaining -= RowPaddingFrames * FrameLength
			d.logger.Debug("row boundary",
				zap.String("from", prev.Hex),
				zap.String("to", frame.Hex),
			)
		}

		for wordOffset := 0; wordOffset < FrameLength; wordOffset++ {
			w, err := r.ReadWord()
			if err != nil {
				return nil, fmt.Errorf("frame %s word %d: %w", frame.Hex, wordOffset, err)
			}
			remaining--

			if w == 0 {
				continue
			}
			for bitOffset := 0; bitOffset < 32; bitOffset++ {
				if w.Bit(bitOffset) == 1 && !InClockRow(wordOffset, bitOffset) {
					bits = append(bits, Bit{Frame: frame, Word: wordOffset, Bit: bitOffset})
				}
			}
		}

		prev = frame
		if d.progress != nil {
			d.progress(i+1, len(list))
		}
	}

	expected := int64(TrailingDummyFrames * FrameLength)
	if remaining != expected {
		return nil, &IncompletePacketError{Remaining: remaining, Expected: expected}
	}

	d.logger.Info("frame data decoded",
		zap.Int("bits", len(bits)),
	)
	return bits, nil
}

func skipWords(r WordReader, n int) error {
	if s, ok := r.(wordSkipper); ok {
		return s.SkipWords(n)
	}
	for i := 0; i < n; i++ {
		if _, err := r.ReadWord(); err != nil {
			return err
		}
	}
	return nil
}
