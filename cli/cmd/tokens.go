package cmd

import (
	"context"
	"fmt"

	"github.com/ardnew/lambda/lang/lexer"
	"github.com/ardnew/lambda/lang/sv"
	"github.com/ardnew/lambda/log"
)

// Tokens prints the token stream of a statement, one token per line.
type Tokens struct {
	Expr string `arg:"" help:"Source text to tokenize" name:"expr"`
}

// Run executes the tokens command.
func (t *Tokens) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	out := streamsFrom(ctx).Out

	l := lexer.New("", sv.From(t.Expr), lexer.WithLogger(log.Default()))

	for tok := range l.Tokens() {
		if _, err := fmt.Fprintln(out, tok); err != nil {
			return err
		}
	}

	return nil
}
