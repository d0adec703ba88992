// Package log is a thin leveled logger over [log/slog].
//
// A [Logger] is an immutable value built with [Make] and refined with
// [Logger.Wrap] and [Logger.With]. Its zero value discards every message, so
// components accept a Logger option and stay silent unless one is given.
//
//	logger := log.Make(os.Stderr, log.WithLevel(log.LevelTrace))
//	logger.TraceContext(ctx, "funcall", slog.String("name", "+"))
//
// Attributes are always [slog.Attr] values; there is no key/value variadic
// form.
//
// The package-level functions write through a process-wide default that
// [Config] replaces. The command line configures it while flags are still
// being parsed, so parse errors already use the requested format.
//
// Output is JSON or logfmt-style text. Pretty output colorizes either form
// and prints JSON records one field per line. [LevelTrace] sits below
// [LevelDebug] and carries per-token and per-funcall detail.
package log
