package bitstream

import "strings"

// Header constants
const (
	SyncWord     Word = 0xAA995566
	FormatMarker      = "a"

	syncLeadByte = 0xAA
	seriesPrefix = "7" // part names in the header drop the "xc" prefix
)

// Header holds the fields recovered from the .bit file header.
type Header struct {
	// Part is the normalized part identifier (e.g. "xc7a35tcpg236-1")
	Part string
	// RawPart is the part field as stored, without its terminator
	RawPart string
	// DesignInfo is the third header field (design name and tool options)
	DesignInfo string
}

// ReadField reads a 2-byte length followed by that many raw bytes.
func ReadField(r *Reader) ([]byte, error) {
	lenBytes, err := r.ReadBytes("field length", 2)
	if err != nil {
		return nil, err
	}
	n := int(lenBytes[0])<<8 | int(lenBytes[1])
	return r.ReadBytes("field data", n)
}

// LocatePartAndSync reads the header, returns the part identifier, and
// leaves the cursor on the first word after the sync word.
func LocatePartAndSync(r *Reader) (*Header, error) {
	// Field 1: opaque preamble
	if _, err := ReadField(r); err != nil {
		return nil, err
	}

	marker, err := ReadField(r)
	if err != nil {
		return nil, err
	}
	if string(marker) != FormatMarker {
		return nil, &UnrecognizedFormatError{Field: "format marker", Got: string(marker)}
	}

	design, err := ReadField(r)
	if err != nil {
		return nil, err
	}

	// Key byte ('b') in front of the part field
	if _, err := r.ReadByte(); err != nil {
		return nil, err
	}

	partField, err := ReadField(r)
	if err != nil {
		return nil, err
	}
	if len(partField) == 0 {
		return nil, &UnrecognizedFormatError{Field: "part name", Got: ""}
	}
	raw := string(partField[:len(partField)-1])

	hdr := &Header{
		Part:       NormalizePart(raw),
		RawPart:    raw,
		DesignInfo: strings.TrimRight(string(design), "\x00"),
	}

	if err := findSync(r); err != nil {
		return nil, err
	}
	return hdr, nil
}

// NormalizePart expands the truncated Series-7 names found in bitstream
// headers ("7a35tcpg236") into full part names ("xc7a35tcpg236-1").
func NormalizePart(raw string) string {
	if strings.HasPrefix(raw, seriesPrefix) {
		return "xc" + raw + "-1"
	}
	return raw
}

// findSync advances byte by byte until the sync word has been consumed.
func findSync(r *Reader) error {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return &SyncNotFoundError{Offset: r.Offset()}
		}
		if b != syncLeadByte {
			continue
		}

		// Validate the word starting at this byte without consuming the rest
		rest, err := r.peek(WordSize - 1)
		if err != nil {
			return &SyncNotFoundError{Offset: r.Offset()}
		}
		if WordFromBytes([WordSize]byte{b, rest[0], rest[1], rest[2]}) == SyncWord {
			return r.skipBytes("sync word", WordSize-1)
		}
	}
}
