package repl

import (
	"github.com/ardnew/lambda/lang"
	"github.com/ardnew/lambda/log"
)

// DefaultPrompt is written before each line read by [Loop].
const DefaultPrompt = "> "

// Option configures [Loop] and [Run].
type Option func(*config)

type config struct {
	prompt   string
	banner   bool
	file     string
	capacity int
	logger   log.Logger
}

func makeConfig(opts ...Option) config {
	cfg := config{prompt: DefaultPrompt, banner: true}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// evalOptions returns the options passed to [lang.Eval] for each turn.
func (c config) evalOptions() []lang.Option {
	return []lang.Option{
		lang.WithFile(c.file),
		lang.WithArenaCapacity(c.capacity),
		lang.WithLogger(c.logger),
	}
}

// WithPrompt sets the prompt written before each line.
func WithPrompt(prompt string) Option {
	return func(cfg *config) {
		cfg.prompt = prompt
	}
}

// WithBanner enables or disables the usage line printed on start.
func WithBanner(enabled bool) Option {
	return func(cfg *config) {
		cfg.banner = enabled
	}
}

// WithFile sets the file name reported in error positions.
func WithFile(file string) Option {
	return func(cfg *config) {
		cfg.file = file
	}
}

// WithArenaCapacity sets the region capacity of each turn's arena.
func WithArenaCapacity(n int) Option {
	return func(cfg *config) {
		cfg.capacity = n
	}
}

// WithLogger sets the logger used by the turn loop and the evaluator.
func WithLogger(logger log.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}
