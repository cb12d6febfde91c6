package bitstream

import (
	"fmt"

	"go.uber.org/zap"
)

// Packet types (header bits [31:29])
const (
	PacketType1 = 0x1
	PacketType2 = 0x2
)

// Type 1 opcodes
const (
	OpcodeNOP   = 0x0
	OpcodeRead  = 0x1
	OpcodeWrite = 0x2
)

// RegisterFDRI is the frame data input register address.
const RegisterFDRI = 0x02

// PacketType returns the 3-bit type tag of a header word.
func PacketType(w Word) uint8 {
	return uint8(w.Field(29, 3))
}

// Type1Header is a decoded Type 1 packet header.
type Type1Header struct {
	Opcode  uint8
	Address uint16
	Length  uint16 // payload words following the header
}

// ParseType1 decodes a Type 1 header word. The tag is not checked.
func ParseType1(w Word) Type1Header {
	return Type1Header{
		Opcode:  uint8(w.Field(27, 2)),
		Address: uint16(w.Field(13, 14)),
		Length:  uint16(w.Field(0, 11)),
	}
}

// IsFDRIWriteSetup reports whether the header is a zero-length write to
// FDRI, which announces a Type 2 frame data packet.
func (h Type1Header) IsFDRIWriteSetup() bool {
	return h.Opcode == OpcodeWrite && h.Address == RegisterFDRI && h.Length == 0
}

func (h Type1Header) String() string {
	return fmt.Sprintf("Type1{opcode=%d, addr=0x%04x, len=%d}", h.Opcode, h.Address, h.Length)
}

// Type2Header is a decoded Type 2 packet header.
type Type2Header struct {
	Length uint32
}

// ParseType2 decodes a Type 2 header word. The tag is not checked.
func ParseType2(w Word) Type2Header {
	return Type2Header{Length: w.Field(0, 27)}
}

// ScanState is the state of the configuration packet search.
type ScanState int

const (
	// StateSearching: no FDRI write setup seen immediately before
	StateSearching ScanState = iota
	// StatePendingType2: the previous header was an FDRI write setup
	StatePendingType2
	// StateFound: the Type 2 frame data header has been read
	StateFound
)

func (s ScanState) String() string {
	switch s {
	case StateSearching:
		return "searching"
	case StatePendingType2:
		return "pending_type2"
	case StateFound:
		return "found"
	default:
		return fmt.Sprintf("ScanState(%d)", int(s))
	}
}

// PacketScanner walks packet headers after the sync word until it finds the
// main configuration data packet.
type PacketScanner struct {
	r       *Reader
	logger  *zap.Logger
	state   ScanState
	headers int64
	payload uint32
}

// NewPacketScanner creates a scanner reading from r. A nil logger disables
// logging.
func NewPacketScanner(r *Reader, logger *zap.Logger) *PacketScanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PacketScanner{r: r, logger: logger}
}

// State returns the current scan state.
func (s *PacketScanner) State() ScanState {
	return s.state
}

// PayloadLength returns the frame data length in words once StateFound is
// reached, and 0 before that.
func (s *PacketScanner) PayloadLength() uint32 {
	return s.payload
}

// Step feeds one packet header word to the state machine. It returns the
// number of payload words that follow the header and must be skipped before
// the next header.
func (s *PacketScanner) Step(w Word) uint32 {
	if s.state == StateFound {
		return 0
	}
	s.headers++

	switch {
	case PacketType(w) == PacketType1:
		h := ParseType1(w)
		if h.IsFDRIWriteSetup() {
			s.state = StatePendingType2
		} else {
			s.state = StateSearching
		}
		s.logger.Debug("type 1 packet",
			zap.Uint8("opcode", h.Opcode),
			zap.Uint16("address", h.Address),
			zap.Uint16("length", h.Length),
			zap.Stringer("state", s.state),
		)
		return uint32(h.Length)

	case PacketType(w) == PacketType2 && s.state == StatePendingType2:
		s.payload = ParseType2(w).Length
		s.state = StateFound
		s.logger.Debug("type 2 frame data packet",
			zap.Uint32("length", s.payload),
		)
		return 0

	default:
		s.state = StateSearching
		return 0
	}
}

// Scan reads headers until the frame data packet is found and returns its
// length in words. On success the reader sits on the first payload word.
func (s *PacketScanner) Scan() (uint32, error) {
	for s.state != StateFound {
		w, err := s.r.ReadWord()
		if err != nil {
			return 0, &ConfigPacketNotFoundError{WordsScanned: s.headers, Err: err}
		}
		if skip := s.Step(w); skip > 0 {
			if err := s.r.SkipWords(int(skip)); err != nil {
				return 0, &ConfigPacketNotFoundError{WordsScanned: s.headers, Err: err}
			}
		}
	}

	s.logger.Info("configuration data packet located",
		zap.Uint32("payload_words", s.payload),
		zap.Int64("headers_scanned", s.headers),
		zap.Int64("offset", s.r.Offset()),
	)
	return s.payload, nil
}
