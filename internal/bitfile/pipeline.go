package bitfile

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/muurk/bitread/internal/bitstream"
	"github.com/muurk/bitread/internal/decoder"
	"github.com/muurk/bitread/internal/frames"
)

// Info describes a bitstream without decoding its frames.
type Info struct {
	Part          string
	RawPart       string
	DesignInfo    string
	SyncOffset    int64 // byte offset just after the sync word
	PayloadWords  uint32
	PayloadFrames int
}

// Result is the outcome of a successful decode.
type Result struct {
	Info
	Family frames.Family
	Frames []frames.Address
	Bits   []decoder.Bit
}

// FrameSource builds the frame address list of a part. *frames.Database
// implements it.
type FrameSource interface {
	BuildFrameList(part string) ([]frames.Address, error)
}

// LazyDatabase opens a database the first time a frame list is needed, so
// a bitstream for an unsupported part fails on its family before any
// database is looked for.
type LazyDatabase func() (*frames.Database, error)

// BuildFrameList opens the database and builds the frame list for part.
func (open LazyDatabase) BuildFrameList(part string) ([]frames.Address, error) {
	db, err := open()
	if err != nil {
		return nil, err
	}
	return db.BuildFrameList(part)
}

// Inspect reads the header and packet stream of r and reports the part and
// frame data payload size.
func Inspect(r io.Reader, opts ...Option) (*Info, error) {
	return inspect(bitstream.NewReader(r), newOptions(opts))
}

// InspectFile runs Inspect on the file at path.
func InspectFile(path string, opts ...Option) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bitstream: %w", err)
	}
	defer f.Close()
	return Inspect(f, opts...)
}

// Decode runs the full pipeline over r. The part's family is checked
// against the embedded catalog; src is only consulted once the frame data
// packet has been found. A nil src fails at that point with
// frames.ErrNoDatabase.
func Decode(r io.Reader, src FrameSource, opts ...Option) (*Result, error) {
	o := newOptions(opts)
	br := bitstream.NewReader(r)

	info, err := readHeader(br, o)
	if err != nil {
		return nil, err
	}
	res := &Result{Info: *info}

	o.stage(StageFamily)
	catalog, err := frames.LoadCatalog()
	if err != nil {
		return nil, err
	}
	res.Family, err = catalog.Lookup(res.Part)
	if err != nil {
		return nil, err
	}

	o.stage(StagePackets)
	n, err := bitstream.NewPacketScanner(br, o.logger).Scan()
	if err != nil {
		return nil, err
	}
	res.PayloadWords = n
	res.PayloadFrames = int(n / decoder.FrameLength)

	o.stage(StageFrames)
	if src == nil {
		return nil, frames.ErrNoDatabase
	}
	res.Frames, err = src.BuildFrameList(res.Part)
	if err != nil {
		return nil, err
	}

	o.stage(StageDecode)
	d := decoder.New(decoder.WithLogger(o.logger), decoder.WithProgress(o.progress))
	res.Bits, err = d.Decode(br, n, res.Frames)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// DecodeFile runs Decode on the file at path.
func DecodeFile(path string, src FrameSource, opts ...Option) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bitstream: %w", err)
	}
	defer f.Close()
	return Decode(f, src, opts...)
}

func inspect(br *bitstream.Reader, o *options) (*Info, error) {
	info, err := readHeader(br, o)
	if err != nil {
		return nil, err
	}

	o.stage(StagePackets)
	n, err := bitstream.NewPacketScanner(br, o.logger).Scan()
	if err != nil {
		return nil, err
	}
	info.PayloadWords = n
	info.PayloadFrames = int(n / decoder.FrameLength)
	return info, nil
}

func readHeader(br *bitstream.Reader, o *options) (*Info, error) {
	o.stage(StageHeader)
	hdr, err := bitstream.LocatePartAndSync(br)
	if err != nil {
		return nil, err
	}
	o.logger.Info("bitstream header read",
		zap.String("part", hdr.Part),
		zap.Int64("sync_offset", br.Offset()),
	)
	return &Info{
		Part:       hdr.Part,
		RawPart:    hdr.RawPart,
		DesignInfo: hdr.DesignInfo,
		SyncOffset: br.Offset(),
	}, nil
}
