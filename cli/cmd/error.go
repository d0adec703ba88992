package cmd

import "log/slog"

// Error is a command failure carrying structured attributes for the log.
//
// Package-level sentinels are refined with [Error.With] and [Error.Wrap];
// every refinement still matches its sentinel under [errors.Is].
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
	base  *Error
}

// NewError returns a sentinel with the given message.
func NewError(msg string) *Error { return &Error{msg: msg} }

// Error returns "msg: cause", or whichever of the two is set.
func (e *Error) Error() string {
	switch {
	case e.err == nil:
		return e.msg
	case e.msg == "":
		return e.err.Error()
	}

	return e.msg + ": " + e.err.Error()
}

func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e derives from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && (e == t || e.sentinel() == t.sentinel())
}

func (e *Error) sentinel() *Error {
	if e.base == nil {
		return e
	}

	return e.base
}

// LogValue groups the message, the cause and the attributes.
func (e *Error) LogValue() slog.Value {
	var attrs []slog.Attr

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.Any("cause", e.err))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

func (e *Error) derive() *Error {
	return &Error{msg: e.msg, err: e.err, attrs: e.attrs, base: e.sentinel()}
}

// Wrap returns a copy of e caused by err.
func (e *Error) Wrap(err error) *Error {
	d := e.derive()
	d.err = err

	return d
}

// With returns a copy of e with attrs appended.
func (e *Error) With(attrs ...slog.Attr) *Error {
	d := e.derive()
	d.attrs = append(e.attrs[:len(e.attrs):len(e.attrs)], attrs...)

	return d
}

var (
	ErrJSONMarshal = NewError("marshal JSON")
	ErrYAMLMarshal = NewError("marshal YAML")
	ErrWriteConfig = NewError("write configuration file")
	ErrFileExists  = NewError("file exists (use --force to overwrite)")
	ErrEvaluate    = NewError("evaluate")
	ErrParse       = NewError("parse")
)
