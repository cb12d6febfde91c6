// Package bitstream reads the framing layer of a Xilinx Series-7 .bit file.
//
// A .bit file has three regions, read strictly in order with a single
// cursor:
//
//   - Header: 2-byte length-prefixed fields. The second field is the
//     format marker "a"; the fourth carries the part name.
//   - Sync word: 0xAA995566, somewhere after the header.
//   - Packets: 32-bit configuration packet headers, each optionally
//     followed by payload words.
//
// # Word Layout
//
// Words are assembled from four bytes with the first byte read as the most
// significant. Bit 0 of a Word is the least significant bit of the last byte
// read. Every multi-byte quantity in the file (field lengths, the sync word,
// packet headers, frame data) uses this convention.
//
// # Packet Headers
//
// The top three bits of a header word select the packet type:
//
//	[31:29] = 001  Type 1: [28:27] opcode, [26:13] register address, [10:0] length
//	[31:29] = 010  Type 2: [26:0] length, register inherited from the preceding Type 1
//
// The main configuration payload is introduced by the "FDRI write" idiom: a
// Type 1 write to the frame-data register with length zero, immediately
// followed by a Type 2 header whose length is the payload size in words.
// PacketScanner recognises this idiom with an explicit three-state machine
// (searching, pending Type 2, found).
//
// # Usage Example
//
//	r := bitstream.NewReader(f)
//	hdr, err := bitstream.LocatePartAndSync(r)
//	if err != nil {
//	    return err
//	}
//	payloadWords, err := bitstream.NewPacketScanner(r, logger).Scan()
//	if err != nil {
//	    return err
//	}
//	// r now sits on the first configuration frame word.
//
// # Error Handling
//
// Each failure mode has its own error type (TruncatedStreamError,
// UnrecognizedFormatError, SyncNotFoundError, ConfigPacketNotFoundError).
// Use errors.As to tell them apart.
package bitstream
