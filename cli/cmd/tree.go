package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/lambda/lang"
	"github.com/ardnew/lambda/lang/lexer"
	"github.com/ardnew/lambda/lang/sv"
	"github.com/ardnew/lambda/log"
)

// Tree prints the parsed statement. Parenthesized arguments are reduced while
// parsing, so only the outermost funcall keeps its shape.
type Tree struct {
	Expr  string `arg:"" help:"Statement to parse"                  name:"expr"`
	Arena bool   `       help:"Also print arena usage after parsing"`
}

// Run executes the tree command.
func (t *Tree) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	out := streamsFrom(ctx).Out
	logger := log.Default()

	a := lang.NewArena(0)
	defer a.Free()

	l := lexer.New("", sv.From(t.Expr), lexer.WithLogger(logger))

	s, err := lang.ParseStatement(log.NewContext(ctx, logger), a, l)
	if err != nil {
		return ErrParse.With(slog.String("expr", t.Expr)).Wrap(err)
	}

	if err := lang.FormatStatement(out, s); err != nil {
		return err
	}

	if t.Arena {
		return a.Dump(out)
	}

	return nil
}
