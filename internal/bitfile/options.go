package bitfile

import (
	"go.uber.org/zap"

	"github.com/muurk/bitread/internal/decoder"
)

// Stage identifies a pipeline stage.
type Stage int

const (
	StageHeader Stage = iota
	StageFamily
	StagePackets
	StageFrames
	StageDecode
)

// String returns the stage description shown to users.
func (s Stage) String() string {
	switch s {
	case StageHeader:
		return "Reading header"
	case StageFamily:
		return "Checking device family"
	case StagePackets:
		return "Locating frame data"
	case StageFrames:
		return "Building frame address list"
	case StageDecode:
		return "Decoding frames"
	default:
		return "Unknown stage"
	}
}

// StageCallback is called when a stage starts.
type StageCallback func(stage Stage)

type options struct {
	logger   *zap.Logger
	onStage  StageCallback
	progress decoder.ProgressCallback
}

// Option configures Decode and Inspect.
type Option func(*options)

// WithLogger sets the logger passed to every stage.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithStageCallback registers a callback for stage starts.
func WithStageCallback(cb StageCallback) Option {
	return func(o *options) {
		o.onStage = cb
	}
}

// WithProgress registers a per-frame progress callback for the decode stage.
func WithProgress(cb decoder.ProgressCallback) Option {
	return func(o *options) {
		o.progress = cb
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) stage(s Stage) {
	o.logger.Debug("stage", zap.String("stage", s.String()))
	if o.onStage != nil {
		o.onStage(s)
	}
}
