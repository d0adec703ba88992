package lang

import "github.com/ardnew/lambda/log"

// Option configures [Eval].
type Option func(*config)

type config struct {
	file     string
	capacity int
	logger   log.Logger
}

func makeConfig(opts ...Option) config {
	var cfg config

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithFile sets the file name reported in token positions and errors.
func WithFile(file string) Option {
	return func(cfg *config) {
		cfg.file = file
	}
}

// WithArenaCapacity sets the region capacity of the per-call arena.
func WithArenaCapacity(n int) Option {
	return func(cfg *config) {
		cfg.capacity = n
	}
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}
