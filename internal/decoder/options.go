package decoder

import "go.uber.org/zap"

// ProgressCallback receives the number of frames decoded so far and the
// total number of frames.
type ProgressCallback func(done, total int)

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Decoder) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithProgress sets a callback invoked after every decoded frame.
func WithProgress(cb ProgressCallback) Option {
	return func(d *Decoder) {
		d.progress = cb
	}
}
