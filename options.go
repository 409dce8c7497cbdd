package melt

import "log/slog"

// Option configures a single Introspect, GlyphInfos or GlyphShapes call.
//
// Example:
//
//	// Describe glyphs on the calling goroutine only
//	infos := melt.GlyphInfos(data, 0, codepoints, melt.WithWorkers(1))
type Option func(*options)

// options holds the per-call configuration.
type options struct {
	workers int
	logger  *slog.Logger
}

// defaultOptions returns the default call options: GOMAXPROCS workers and
// the package logger.
func defaultOptions() options {
	return options{
		workers: 0, // GOMAXPROCS
		logger:  nil, // Logger()
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}
	return o
}

// WithWorkers bounds the number of goroutines a batch call uses. One runs
// every element on the calling goroutine; zero or negative means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger overrides the package logger for one call.
//
// Example:
//
//	var buf bytes.Buffer
//	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	infos := melt.Introspect(data, melt.WithLogger(l))
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
