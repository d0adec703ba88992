package lexer

import "github.com/ardnew/lambda/log"

// Option configures a [Lexer].
type Option func(*Lexer) *Lexer

func apply(l *Lexer, opts ...Option) *Lexer {
	for _, opt := range opts {
		if opt != nil {
			l = opt(l)
		}
	}

	return l
}

// WithLogger sets the logger used for diagnostics. The zero [log.Logger]
// discards everything.
func WithLogger(logger log.Logger) Option {
	return func(l *Lexer) *Lexer {
		l.logger = logger

		return l
	}
}
