package decoder

import "fmt"

// MalformedPacketError reports a frame data payload whose length is not a
// whole number of frames.
type MalformedPacketError struct {
	PayloadWords uint32
	FrameLength  int
}

func (e *MalformedPacketError) Error() string {
	return fmt.Sprintf("malformed configuration packet: length %d words is not a multiple of the %d-word frame length",
		e.PayloadWords, e.FrameLength)
}

// IncompletePacketError reports that walking the frame list did not leave
// exactly the trailing dummy frames unread.
type IncompletePacketError struct {
	// Remaining is the number of payload words left after the last frame
	Remaining int64
	// Expected is the number of words that should have been left
	Expected int64
}

func (e *IncompletePacketError) Error() string {
	return fmt.Sprintf("configuration packet not fully parsed: %d words remaining, expected %d",
		e.Remaining, e.Expected)
}
