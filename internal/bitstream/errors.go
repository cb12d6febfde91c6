package bitstream

import "fmt"

// TruncatedStreamError reports that the stream ended in the middle of a
// fixed-size read.
type TruncatedStreamError struct {
	// What names the value being read (e.g. "word", "field length")
	What string
	// Offset is the byte offset at which the read started
	Offset int64
	// Want is the number of bytes the read needed
	Want int
	// Got is the number of bytes actually available
	Got int
	// Underlying error from the source reader
	Err error
}

func (e *TruncatedStreamError) Error() string {
	return fmt.Sprintf("truncated stream reading %s at offset %d: want %d bytes, got %d",
		e.What, e.Offset, e.Want, e.Got)
}

func (e *TruncatedStreamError) Unwrap() error {
	return e.Err
}

// UnrecognizedFormatError reports a header that does not follow the .bit
// layout, most commonly a format marker field other than "a".
type UnrecognizedFormatError struct {
	// Field is the header field that failed validation
	Field string
	// Got is the value found in the file
	Got string
}

func (e *UnrecognizedFormatError) Error() string {
	return fmt.Sprintf("unrecognized bitstream format: %s field is %q", e.Field, e.Got)
}

// SyncNotFoundError reports that the stream ended before the sync word.
type SyncNotFoundError struct {
	// Offset is the byte offset where scanning gave up
	Offset int64
}

func (e *SyncNotFoundError) Error() string {
	return fmt.Sprintf("sync word 0x%08X not found (scanned to offset %d)", SyncWord, e.Offset)
}

// ConfigPacketNotFoundError reports that the packet stream ended before the
// FDRI write idiom was seen.
type ConfigPacketNotFoundError struct {
	// WordsScanned is the number of packet header words examined
	WordsScanned int64
	// Underlying read error
	Err error
}

func (e *ConfigPacketNotFoundError) Error() string {
	return fmt.Sprintf("configuration data packet not found after %d packet headers: %v",
		e.WordsScanned, e.Err)
}

func (e *ConfigPacketNotFoundError) Unwrap() error {
	return e.Err
}
