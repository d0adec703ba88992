package log

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

// Defaults applied by [Make] before any option.
const (
	DefaultTimeLayout = time.RFC3339
	DefaultCaller     = false
	DefaultPretty     = true
)

// Option adjusts the settings of a [Logger] under construction.
type Option func(*settings)

type settings struct {
	out    io.Writer
	level  Level
	format Format
	stamp  func(time.Time) string
	caller bool
	pretty bool
}

func newSettings(w io.Writer) settings {
	s := settings{
		level:  DefaultLevel,
		format: DefaultFormat,
		stamp:  stamper(DefaultTimeLayout),
		caller: DefaultCaller,
		pretty: DefaultPretty,
	}
	WithOutput(w)(&s)

	return s
}

func (s settings) with(opts ...Option) settings {
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	return s
}

// WithOutput sends records to w. A nil writer discards them.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w == nil {
			w = io.Discard
		}

		s.out = w
	}
}

// WithLevel drops records below level.
func WithLevel(level Level) Option {
	return func(s *settings) { s.level = level }
}

// WithFormat selects JSON or text records.
func WithFormat(format Format) Option {
	return func(s *settings) { s.format = format }
}

// WithCaller adds the source file and line of each call.
func WithCaller(enable bool) Option {
	return func(s *settings) { s.caller = enable }
}

// WithPretty enables colorized output.
func WithPretty(enable bool) Option {
	return func(s *settings) { s.pretty = enable }
}

// WithTimeLayout sets the timestamp layout. Names of the layout constants in
// package time are recognized regardless of case and punctuation ("rfc3339",
// "StampMilli"), as are the short forms "ms", "us" and "ns". Any other text
// is used verbatim. An empty layout or "none" omits timestamps.
func WithTimeLayout(layout string) Option {
	return func(s *settings) { s.stamp = stamper(layout) }
}

var namedLayouts = map[string]string{
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rubydate":    time.RubyDate,
	"rfc822":      time.RFC822,
	"rfc822z":     time.RFC822Z,
	"rfc850":      time.RFC850,
	"rfc1123":     time.RFC1123,
	"rfc1123z":    time.RFC1123Z,
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"kitchen":     time.Kitchen,
	"datetime":    time.DateTime,
	"stamp":       time.Stamp,
	"stampmilli":  time.StampMilli,
	"stampmicro":  time.StampMicro,
	"stampnano":   time.StampNano,
	"ms":          time.StampMilli,
	"us":          time.StampMicro,
	"ns":          time.StampNano,
	"none":        "",
}

func stamper(layout string) func(time.Time) string {
	key := strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z', '0' <= r && r <= '9':
			return r
		case 'A' <= r && r <= 'Z':
			return r + 'a' - 'A'
		}

		return -1
	}, layout)

	if named, ok := namedLayouts[key]; ok {
		layout = named
	}

	if key == "" || layout == "" {
		return nil
	}

	return func(t time.Time) string { return t.Format(layout) }
}

// replaceAttr rewrites the built-in time and level attributes of slog's own
// handlers.
func (s settings) replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}

	switch a.Key {
	case slog.TimeKey:
		if s.stamp == nil {
			return slog.Attr{}
		}

		if t, ok := a.Value.Any().(time.Time); ok {
			a.Value = slog.StringValue(s.stamp(t))
		}

	case slog.LevelKey:
		if l, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(Level(l).label())
		}
	}

	return a
}

func (s settings) handler() slog.Handler {
	if s.pretty {
		return newPrettyHandler(s)
	}

	opts := &slog.HandlerOptions{
		AddSource:   s.caller,
		Level:       slog.Level(s.level),
		ReplaceAttr: s.replaceAttr,
	}

	if s.format == FormatText {
		return slog.NewTextHandler(s.out, opts)
	}

	return slog.NewJSONHandler(s.out, opts)
}
