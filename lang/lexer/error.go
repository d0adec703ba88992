package lexer

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ardnew/lambda/lang/token"
)

// ErrUnexpectedToken is wrapped by every [*Error].
var ErrUnexpectedToken = errors.New("unexpected token")

// Error reports a token of the wrong type.
type Error struct {
	Expected token.Type
	Actual   token.Token
	File     string
	Row      int
	Col      int
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	if e.File != "" {
		b.WriteString(e.File)
		b.WriteByte(':')
	}

	b.WriteString(strconv.Itoa(e.Row))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(e.Col))
	b.WriteString(": expected ")
	b.WriteString(e.Expected.String())
	b.WriteString(", but provided ")
	b.WriteString(e.Actual.Describe())

	return b.String()
}

// Unwrap returns [ErrUnexpectedToken].
func (e *Error) Unwrap() error { return ErrUnexpectedToken }

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", ErrUnexpectedToken.Error()),
		slog.String("expected", e.Expected.String()),
		slog.String("actual", e.Actual.Describe()),
		slog.Int("row", e.Row),
		slog.Int("col", e.Col),
	)
}
