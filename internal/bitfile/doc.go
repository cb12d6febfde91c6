// Package bitfile runs the full .bit decoding pipeline and writes its
// results.
//
// # Pipeline
//
// Decode drives the stages in order over a single stream cursor:
//
//  1. Header: the length-prefixed header fields are read and the part
//     identifier recovered, then the stream is scanned for the sync word.
//  2. Family: the part is matched against the embedded Series-7 family
//     catalog. Unsupported parts fail here, before any frame work begins
//     and before the database is touched.
//  3. Packets: the packet stream is walked until the FDRI write idiom
//     announces the frame data payload.
//  4. Frames: the part's descriptor is loaded from the prjxray database
//     and expanded into the sorted frame address list.
//  5. Decode: the payload is walked frame by frame and every set bit is
//     collected.
//
// The database is a FrameSource consulted only in stage 4. Wrap an opener
// in LazyDatabase to defer opening it until then.
//
// Inspect stops after stage 3 and needs no database.
//
// # Output
//
// WriteBits writes one bit_<frame>_<word>_<bit> line per set bit.
// OutputPath gives the conventional output name, which appends "s" to the
// input path (design.bit becomes design.bits). WriteBitsFile writes
// through a temporary file so a failed run never leaves partial output.
//
// # Errors
//
// Every failure surfaces as one of the typed errors of the bitstream,
// frames and decoder packages, possibly wrapped with context. Classify
// maps any of them to an ErrorKind:
//
//	res, err := bitfile.DecodeFile("design.bit", db)
//	switch bitfile.Classify(err) {
//	case bitfile.KindNone:
//	    // use res.Bits
//	case bitfile.KindUnsupportedDevice:
//	    // not a Series-7 part
//	}
package bitfile
