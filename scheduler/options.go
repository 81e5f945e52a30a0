package scheduler

import "github.com/rs/zerolog"

type options struct {
	turnLimit int
	logger    zerolog.Logger
}

type Option func(*options)

// WithTurnLimit stops handing out turns once the board has counted n turns. Zero means no limit.
func WithTurnLimit(n int) Option {
	return func(o *options) {
		o.turnLimit = n
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
