package transcript

import (
	"time"

	"go.uber.org/zap"
)

// defaultSource names input that did not come from a file.
const defaultSource = "<input>"

type options struct {
	source   string
	location *time.Location
	logger   *zap.Logger
}

// Option configures Scan, Parse and ParseFile.
type Option func(*options)

// WithSource sets the name used in errors and Table.Source.
func WithSource(name string) Option {
	return func(o *options) {
		if name != "" {
			o.source = name
		}
	}
}

// WithLocation sets the time zone timestamps are interpreted in (default UTC).
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.location = loc
		}
	}
}

// WithLogger sets the logger for recovered line-level problems.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		source:   defaultSource,
		location: time.UTC,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
