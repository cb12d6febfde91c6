package bitfile

import (
	"errors"
	"fmt"

	"github.com/muurk/bitread/internal/bitstream"
	"github.com/muurk/bitread/internal/decoder"
	"github.com/muurk/bitread/internal/frames"
)

// ErrorKind is the category of a pipeline failure
type ErrorKind int

const (
	// KindNone means no error
	KindNone ErrorKind = iota
	// KindTruncatedStream means the stream ended mid-read
	KindTruncatedStream
	// KindUnrecognizedFormat means the header is not a .bit header
	KindUnrecognizedFormat
	// KindSyncNotFound means the sync word was never found
	KindSyncNotFound
	// KindConfigPacketNotFound means no frame data write was found
	KindConfigPacketNotFound
	// KindUnsupportedDevice means the part is not a Series-7 part
	KindUnsupportedDevice
	// KindMalformedPacket means the payload is not whole frames
	KindMalformedPacket
	// KindIncompletePacket means the frame walk did not end on the dummy frames
	KindIncompletePacket
	// KindDescriptor means the device descriptor is missing or invalid
	KindDescriptor
	// KindIO covers file system and other errors
	KindIO
)

// String returns a human-readable name for the kind
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindTruncatedStream:
		return "Truncated Stream"
	case KindUnrecognizedFormat:
		return "Unrecognized Format"
	case KindSyncNotFound:
		return "Sync Word Not Found"
	case KindConfigPacketNotFound:
		return "Configuration Packet Not Found"
	case KindUnsupportedDevice:
		return "Unsupported Device"
	case KindMalformedPacket:
		return "Malformed Packet"
	case KindIncompletePacket:
		return "Incomplete Packet"
	case KindDescriptor:
		return "Device Descriptor Error"
	case KindIO:
		return "I/O Error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// Classify returns the kind of err. Wrapped errors are unwrapped; the
// outermost pipeline error wins, so a missing FDRI write that was detected
// by running off the end of the stream is KindConfigPacketNotFound rather
// than KindTruncatedStream.
func Classify(err error) ErrorKind {
	if err == nil {
		return KindNone
	}

	var (
		unsupported *frames.UnsupportedDeviceError
		descriptor  *frames.DescriptorError
		malformed   *decoder.MalformedPacketError
		incomplete  *decoder.IncompletePacketError
		notFound    *bitstream.ConfigPacketNotFoundError
		noSync      *bitstream.SyncNotFoundError
		format      *bitstream.UnrecognizedFormatError
		truncated   *bitstream.TruncatedStreamError
	)

	switch {
	case errors.As(err, &unsupported):
		return KindUnsupportedDevice
	case errors.As(err, &descriptor):
		return KindDescriptor
	case errors.As(err, &malformed):
		return KindMalformedPacket
	case errors.As(err, &incomplete):
		return KindIncompletePacket
	case errors.As(err, &notFound):
		return KindConfigPacketNotFound
	case errors.As(err, &noSync):
		return KindSyncNotFound
	case errors.As(err, &format):
		return KindUnrecognizedFormat
	case errors.As(err, &truncated):
		return KindTruncatedStream
	default:
		return KindIO
	}
}
