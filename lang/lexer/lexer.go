// Package lexer splits S-expression source text into tokens.
//
// A [Lexer] walks a borrowed [sv.View] and never copies the source: every
// token it returns views the original text. The lexer moves through three
// states. It starts [StatusOK], becomes [StatusEmpty] when the source is
// exhausted, and becomes [StatusError] when [Lexer.Yield] sees a token of the
// wrong type. Both Empty and Error are terminal.
package lexer

import (
	"iter"
	"log/slog"
	"strings"

	"github.com/ardnew/lambda/lang/sv"
	"github.com/ardnew/lambda/lang/token"
	"github.com/ardnew/lambda/log"
)

// Status is the state of a [Lexer].
type Status int

const (
	StatusError Status = iota
	StatusOK
	StatusEmpty
)

func (s Status) String() string {
	switch s {
	case StatusError:
		return "error"
	case StatusOK:
		return "ok"
	case StatusEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Lexer produces tokens from a source view.
//
// A Lexer is a small value. Copying it yields an independent cursor over the
// same source, which is how [Lexer.Peek] looks ahead.
type Lexer struct {
	src       sv.View
	size      int
	line      int
	lineStart int
	status    Status
	file      string
	logger    log.Logger
}

// New returns a lexer positioned at the start of src. The file name is
// recorded in every token for diagnostics and may be empty.
func New(file string, src sv.View, opts ...Option) *Lexer {
	l := &Lexer{
		src:    src,
		size:   src.Len(),
		line:   1,
		status: StatusOK,
		file:   file,
	}

	return apply(l, opts...)
}

// Status returns the current lexer state.
func (l *Lexer) Status() Status { return l.status }

// OK reports whether more tokens may be produced.
func (l *Lexer) OK() bool { return l.status == StatusOK }

// Empty reports whether the source is exhausted.
func (l *Lexer) Empty() bool { return l.status == StatusEmpty }

// Err reports whether a call to [Lexer.Yield] failed.
func (l *Lexer) Err() bool { return l.status == StatusError }

// File returns the file name given to [New].
func (l *Lexer) File() string { return l.file }

// Position returns the 1-based row and column of the next unread byte.
func (l *Lexer) Position() (row, col int) {
	return l.line, l.offset() - l.lineStart + 1
}

// Logger returns the logger given by [WithLogger].
func (l *Lexer) Logger() log.Logger { return l.logger }

// Rest returns the unread source.
func (l *Lexer) Rest() sv.View { return l.src }

func (l *Lexer) offset() int { return l.size - l.src.Len() }

func (l *Lexer) advance(n int) {
	l.src.CutLeft(n)
}

func (l *Lexer) space() {
	i := 0
	for i < l.src.Len() && sv.IsSpace(l.src[i]) {
		if l.src[i] == '\n' {
			l.line++
			l.lineStart = l.offset() + i + 1
		}

		i++
	}

	l.advance(i)
}

// Next returns the next token.
//
// Next returns the zero token when the lexer is not [StatusOK], when the
// source is exhausted (the status becomes [StatusEmpty]), and after
// discarding a comment. In the last case the status stays OK; use
// [Lexer.Scan] to skip comments transparently.
func (l *Lexer) Next() token.Token {
	if l.status != StatusOK {
		return token.Token{}
	}

	l.space()

	if l.src.Len() == 0 {
		l.status = StatusEmpty

		return token.Token{}
	}

	row, col := l.Position()
	tok := token.Token{Row: row, Col: col, File: l.file}

	switch c := l.src[0]; {
	case sv.IsDigit(c):
		tok.Type = token.Number
		tok.Text = l.src.CutValue()

	case strings.IndexByte(token.Operators, c) >= 0:
		tok.Type = token.Operator
		tok.Text = l.src[:1]
		l.advance(1)

	case c == '(':
		tok.Type = token.OpenParen
		tok.Text = l.src[:1]
		l.advance(1)

	case c == ')':
		tok.Type = token.CloseParen
		tok.Text = l.src[:1]
		l.advance(1)

	case c == '"' || c == '\'':
		tok.Type = token.String
		tok.Text = l.quoted()

	case c == ';':
		l.src.CutLine()

		return token.Token{}

	case c == 0:
		l.status = StatusEmpty

		return token.Token{}

	default:
		tok.Type = token.Text
		tok.Text = l.src.CutText()
	}

	return tok
}

// quoted consumes a string literal. The literal ends at the first quote of
// either kind; an unterminated literal runs to the end of the source.
func (l *Lexer) quoted() sv.View {
	l.advance(1)

	i := strings.IndexAny(string(l.src), `"'`)
	if i < 0 {
		i = l.src.Len()
	}

	text := l.src[:i]
	l.advance(i + 1)

	return text
}

// Scan returns the next token, skipping any number of comments.
func (l *Lexer) Scan() token.Token {
	for {
		tok := l.Next()
		if !tok.IsZero() || l.status != StatusOK {
			return tok
		}
	}
}

// Peek returns the token [Lexer.Scan] would return without advancing.
func (l *Lexer) Peek() token.Token {
	dup := *l

	return dup.Scan()
}

// Yield scans the next token and requires it to have the expected type.
// On mismatch the lexer enters [StatusError] and the returned error is an
// [*Error] wrapping [ErrUnexpectedToken].
func (l *Lexer) Yield(expected token.Type) (token.Token, error) {
	tok := l.Scan()
	if tok.Type == expected {
		return tok, nil
	}

	row, col := tok.Row, tok.Col
	if tok.IsZero() {
		row, col = l.Position()
	}

	l.status = StatusError

	err := &Error{
		Expected: expected,
		Actual:   tok,
		File:     l.file,
		Row:      row,
		Col:      col,
	}

	l.logger.Debug("unexpected token",
		slog.String("expected", expected.String()),
		slog.String("actual", tok.Type.String()),
		slog.Int("row", row),
		slog.Int("col", col))

	return tok, err
}

// Tokens returns the remaining tokens of a copy of l, stopping at the first
// token that leaves the copy in a state other than [StatusOK].
// The receiver is not advanced.
func (l *Lexer) Tokens() iter.Seq[token.Token] {
	start := *l

	return func(yield func(token.Token) bool) {
		dup := start

		for {
			tok := dup.Scan()
			if dup.status != StatusOK {
				return
			}

			if !yield(tok) {
				return
			}
		}
	}
}
