package log

import (
	"bytes"
	"context"
	"log/slog"
	"strconv"
	"sync"
)

const (
	ansiReset   = "\033[0m"
	ansiRed     = "\033[31m"
	ansiGreen   = "\033[32m"
	ansiYellow  = "\033[33m"
	ansiBlue    = "\033[34m"
	ansiMagenta = "\033[35m"
	ansiCyan    = "\033[36m"
	ansiGray    = "\033[90m"
)

// prettyHandler writes colorized records for a terminal. Text records are
// one line of key=value pairs; JSON records put each field on its own line.
// String values are never quoted.
type prettyHandler struct {
	set    settings
	mu     *sync.Mutex
	attrs  []slog.Attr // from WithAttrs, keys already qualified
	prefix string      // open groups joined with "."
}

func newPrettyHandler(s settings) *prettyHandler {
	return &prettyHandler{set: s, mu: &sync.Mutex{}}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.Level(h.set.level)
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(c.attrs[:len(c.attrs):len(c.attrs)], h.qualify(attrs)...)

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

func (h *prettyHandler) qualify(attrs []slog.Attr) []slog.Attr {
	if h.prefix == "" {
		return attrs
	}

	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = slog.Attr{Key: h.prefix + a.Key, Value: a.Value}
	}

	return out
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	w := prettyWriter{json: h.set.format == FormatJSON}

	if h.set.stamp != nil && !r.Time.IsZero() {
		w.field(slog.TimeKey, ansiGray, h.set.stamp(r.Time))
	}

	w.field(slog.LevelKey, levelColor(r.Level), Level(r.Level).label())

	if h.set.caller && r.PC != 0 {
		if src := r.Source(); src != nil {
			w.field(slog.SourceKey, ansiGray, src.File+":"+strconv.Itoa(src.Line))
		}
	}

	w.field(slog.MessageKey, ansiReset, r.Message)

	for _, a := range h.attrs {
		w.attr("", a)
	}

	r.Attrs(func(a slog.Attr) bool {
		w.attr(h.prefix, a)

		return true
	})

	w.end()

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.set.out.Write(w.buf.Bytes())

	return err
}

func levelColor(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return ansiRed
	case l >= slog.LevelWarn:
		return ansiYellow
	case l >= slog.LevelInfo:
		return ansiGreen
	case l >= slog.LevelDebug:
		return ansiBlue
	}

	return ansiMagenta
}

type prettyWriter struct {
	buf  bytes.Buffer
	json bool
	n    int
}

func (w *prettyWriter) field(key, color, value string) {
	switch {
	case w.json && w.n == 0:
		w.buf.WriteString("{\n  ")
	case w.json:
		w.buf.WriteString(",\n  ")
	case w.n > 0:
		w.buf.WriteByte(' ')
	}

	w.n++

	w.buf.WriteString(ansiGray + key + ansiReset)

	if w.json {
		w.buf.WriteString(": ")
	} else {
		w.buf.WriteByte('=')
	}

	w.buf.WriteString(color + value + ansiReset)
}

// attr writes a, flattening groups into dotted keys.
func (w *prettyWriter) attr(prefix string, a slog.Attr) {
	v := a.Value.Resolve()

	if v.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, g := range v.Group() {
			w.attr(prefix, g)
		}

		return
	}

	if a.Key == "" {
		return
	}

	color, text := valueColor(v)
	w.field(prefix+a.Key, color, text)
}

func valueColor(v slog.Value) (color, text string) {
	switch v.Kind() {
	case slog.KindInt64, slog.KindUint64, slog.KindFloat64:
		return ansiYellow, v.String()
	case slog.KindBool:
		if v.Bool() {
			return ansiGreen, "true"
		}

		return ansiRed, "false"
	case slog.KindDuration:
		return ansiMagenta, v.String()
	case slog.KindTime:
		return ansiBlue, v.String()
	case slog.KindAny:
		if v.Any() == nil {
			return ansiGray, "null"
		}
	}

	return ansiCyan, v.String()
}

func (w *prettyWriter) end() {
	if w.json {
		w.buf.WriteString("\n}")
	}

	w.buf.WriteByte('\n')
}
