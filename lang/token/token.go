// Package token defines the lexical tokens produced by the lexer.
package token

//go:generate go tool stringer --linecomment --type Type --output type_string.go

import (
	"fmt"
	"strconv"

	"github.com/ardnew/lambda/lang/sv"
)

// Type identifies the lexical class of a [Token].
type Type int

const (
	None       Type = iota // none
	Nil                    // nil
	Text                   // text
	Number                 // number
	String                 // string
	Operator               // operator
	OpenParen              // open-paren
	CloseParen             // close-paren
)

// Operators lists the bytes that lex as single-character [Operator] tokens.
const Operators = "+-*/^%"

// Token is one lexeme of source text.
//
// Row and Col are 1-based and locate the first byte of the token. Text views
// the source buffer and is valid only while that buffer is.
type Token struct {
	Type Type
	Text sv.View
	Row  int
	Col  int
	File string
}

// IsZero reports whether t is the zero Token, as returned for comments and
// exhausted input.
func (t Token) IsZero() bool { return t == Token{} }

// String formats the token as a single diagnostic line.
func (t Token) String() string {
	pos := fmt.Sprintf("[row: %d, col: %d] ", t.Row, t.Col)

	switch t.Type {
	case Number, Text, String:
		return pos + t.Type.String() + " [" + t.Text.String() + "]"

	case Operator, OpenParen, CloseParen:
		return pos + "char [" + t.Text.String() + "]"

	default:
		return pos + t.Type.String()
	}
}

// Describe names the token for error messages: its type and quoted text, or
// "end of input" for the zero Token.
func (t Token) Describe() string {
	if t.IsZero() {
		return "end of input"
	}

	return t.Type.String() + " " + strconv.Quote(t.Text.String())
}
