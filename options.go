package toolcall

import "log/slog"

// Options contains configuration shared by parsers and their streams.
type Options struct {
	Logger      *slog.Logger
	IDGenerator func() string
	Repair      bool
}

// Option is a functional option for configuring a parser.
type Option func(*Options)

// WithLogger sets the logger that receives skipped-span and recovery logs.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithIDGenerator sets the source of correlation ids for streamed calls.
func WithIDGenerator(gen func() string) Option {
	return func(o *Options) {
		o.IDGenerator = gen
	}
}

// WithRepair enables jsonrepair on malformed candidate spans.
func WithRepair() Option {
	return func(o *Options) {
		o.Repair = true
	}
}

// ApplyOptions applies functional options and fills in defaults.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.IDGenerator == nil {
		o.IDGenerator = GenerateCallID
	}
	return o
}
