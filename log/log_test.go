package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func plain(buf *bytes.Buffer, opts ...Option) Logger {
	base := []Option{WithPretty(false), WithTimeLayout("none")}

	return Make(buf, append(base, opts...)...)
}

func TestMake_Defaults(t *testing.T) {
	l := Make(nil)

	if l.Level() != DefaultLevel {
		t.Errorf("level = %v, want %v", l.Level(), DefaultLevel)
	}

	if l.Format() != DefaultFormat {
		t.Errorf("format = %v, want %v", l.Format(), DefaultFormat)
	}

	if l.set.caller != DefaultCaller || l.set.pretty != DefaultPretty {
		t.Errorf("caller/pretty = %v/%v", l.set.caller, l.set.pretty)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	emit := map[string]func(Logger, string, ...slog.Attr){
		"TRACE": Logger.Trace,
		"DEBUG": Logger.Debug,
		"INFO":  Logger.Info,
		"WARN":  Logger.Warn,
		"ERROR": Logger.Error,
	}

	tests := []struct {
		min     Level
		written []string
	}{
		{LevelTrace, []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR"}},
		{LevelInfo, []string{"INFO", "WARN", "ERROR"}},
		{LevelError, []string{"ERROR"}},
	}

	for _, tt := range tests {
		t.Run(tt.min.String(), func(t *testing.T) {
			for label, fn := range emit {
				var buf bytes.Buffer

				fn(plain(&buf, WithFormat(FormatText), WithLevel(tt.min)), "m")

				want := strings.Contains(strings.Join(tt.written, " "), label)
				got := strings.Contains(buf.String(), "level="+label)

				if got != want {
					t.Errorf("%s at %s: written = %v, want %v (%q)",
						label, tt.min, got, want, buf.String())
				}
			}
		})
	}
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer

	l := plain(&buf, WithLevel(LevelTrace)).With(slog.String("file", "stdin"))
	l.TraceContext(t.Context(), "funcall", slog.String("name", "+"), slog.Int("args", 2))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}

	for key, want := range map[string]any{
		"level": "TRACE",
		"msg":   "funcall",
		"file":  "stdin",
		"name":  "+",
		"args":  float64(2),
	} {
		if rec[key] != want {
			t.Errorf("%s = %v, want %v", key, rec[key], want)
		}
	}

	if _, ok := rec["time"]; ok {
		t.Error("time present with layout none")
	}
}

func TestLogger_Caller(t *testing.T) {
	var buf bytes.Buffer

	plain(&buf, WithFormat(FormatText), WithCaller(true)).Info("here")

	if !strings.Contains(buf.String(), "log_test.go:") {
		t.Errorf("source does not name the calling file: %q", buf.String())
	}

	buf.Reset()
	plain(&buf, WithFormat(FormatText)).Info("here")

	if strings.Contains(buf.String(), "source=") {
		t.Errorf("source written without WithCaller: %q", buf.String())
	}
}

func TestLogger_Wrap(t *testing.T) {
	var buf bytes.Buffer

	base := plain(&buf)
	text := base.Wrap(WithFormat(FormatText))

	if base.Format() != FormatJSON || text.Format() != FormatText {
		t.Fatalf("formats = %v, %v", base.Format(), text.Format())
	}

	text.Info("x")

	if !strings.HasPrefix(buf.String(), "level=INFO") {
		t.Errorf("wrapped logger wrote %q", buf.String())
	}
}

func TestLogger_ZeroValue(t *testing.T) {
	var l Logger

	l.Error("dropped")
	l.With(slog.Int("k", 1)).TraceContext(context.Background(), "dropped")

	if l.Enabled(context.Background(), LevelError) {
		t.Error("zero logger reports enabled")
	}

	if l.Level() != DefaultLevel || l.Format() != DefaultFormat {
		t.Error("zero logger does not report defaults")
	}

	var buf bytes.Buffer

	l.Wrap(WithOutput(&buf), WithFormat(FormatText)).Info("revived")

	if !strings.Contains(buf.String(), "revived") {
		t.Errorf("wrapped zero logger wrote %q", buf.String())
	}
}

func TestLogger_Concurrent(t *testing.T) {
	var buf bytes.Buffer

	l := plain(&buf, WithPretty(true), WithFormat(FormatText))

	var wg sync.WaitGroup

	for i := range 16 {
		wg.Go(func() {
			l.Info("turn", slog.Int("n", i))
		})
	}

	wg.Wait()

	if n := strings.Count(buf.String(), "\n"); n != 16 {
		t.Errorf("got %d lines, want 16", n)
	}
}

func TestPretty(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer

		l := Make(&buf, WithFormat(FormatText), WithTimeLayout(""))
		l.With(slog.String("file", "arg1")).
			Warn("eval", slog.Group("result", slog.Bool("ok", false)), slog.Any("err", nil))

		out := buf.String()
		for _, want := range []string{
			ansiGray + "level" + ansiReset + "=" + ansiYellow + "WARN",
			"file" + ansiReset + "=" + ansiCyan + "arg1",
			"result.ok" + ansiReset + "=" + ansiRed + "false",
			"err" + ansiReset + "=" + ansiGray + "null",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("missing %q in %q", want, out)
			}
		}

		if strings.Count(out, "\n") != 1 {
			t.Errorf("text record spans lines: %q", out)
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer

		l := Make(&buf, WithTimeLayout("none"), WithLevel(LevelTrace))
		l.WithGroup("lexer").Trace("token", slog.Int("col", 3))

		out := buf.String()
		if !strings.HasPrefix(out, "{\n  ") || !strings.HasSuffix(out, "\n}\n") {
			t.Errorf("unexpected framing %q", out)
		}

		if !strings.Contains(out, "lexer.col"+ansiReset+": "+ansiYellow+"3") {
			t.Errorf("grouped attr missing in %q", out)
		}
	})
}

func TestStamper(t *testing.T) {
	for _, layout := range []string{"", "  ", "none", "NONE"} {
		if stamper(layout) != nil {
			t.Errorf("stamper(%q) should disable timestamps", layout)
		}
	}

	for _, layout := range []string{"RFC3339", "rfc-3339", "StampMilli", "ms", "15:04"} {
		if stamper(layout) == nil {
			t.Errorf("stamper(%q) = nil", layout)
		}
	}
}

func TestParse(t *testing.T) {
	levels := map[string]Level{
		"trace":  LevelTrace,
		"DEBUG":  LevelDebug,
		" warn ": LevelWarn,
		"error":  LevelError,
		"info+2": Level(slog.LevelInfo + 2),
		"bogus":  DefaultLevel,
	}

	for in, want := range levels {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}

	if ParseFormat("TEXT") != FormatText || ParseFormat("json") != FormatJSON ||
		ParseFormat("yaml") != DefaultFormat {
		t.Error("ParseFormat mismatch")
	}

	var names []string
	for name := range Levels() {
		names = append(names, name)
	}

	if got := strings.Join(names, ","); got != "trace,debug,info,warn,error" {
		t.Errorf("Levels() = %s", got)
	}
}
