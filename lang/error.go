package lang

import (
	"errors"
	"log/slog"
)

// Predefined errors (sentinel values).
//
// A grammar error aborts the statement being parsed. The evaluation errors
// (unknown function through divide by zero) reject a single funcall. Both
// classes are recoverable: the caller reports them and moves on to the next
// line. [ErrInternal] marks a broken invariant and is never caused by input.
var (
	ErrGrammar         = NewError("grammar error")
	ErrUnknownFunction = NewError("unknown function")
	ErrMissingArgument = NewError("missing argument")
	ErrNotAtom         = NewError("argument is not an atom")
	ErrInvalidOperand  = NewError("invalid operand")
	ErrInvalidNumber   = NewError("invalid number value")
	ErrDivideByZero    = NewError("integer division by zero")
	ErrInternal        = NewError("internal invariant violated")
)

// IsInternal reports whether err is, or wraps, [ErrInternal].
func IsInternal(err error) bool { return errors.Is(err, ErrInternal) }

// Error is a diagnostic with structured attributes for the log. Errors
// derived from a sentinel with [Error.Wrap], [Error.With] or
// [Error.WithPosition] match that sentinel under [errors.Is].
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
	base  *Error // sentinel, nil for sentinels themselves
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

// WithPosition records the 1-based source position of the error.
func (e *Error) WithPosition(row, col int) *Error {
	return e.With(slog.Int("row", row), slog.Int("col", col))
}

// Attrs returns the structured attributes attached to the error.
func (e *Error) Attrs() []slog.Attr { return e.attrs }
