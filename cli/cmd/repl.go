package cmd

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ardnew/lambda/cli/cmd/repl"
	"github.com/ardnew/lambda/log"
)

// Repl runs the interactive turn loop. A terminal gets the line editor with
// history; any other input is read line by line.
type Repl struct {
	Prompt string `help:"Prompt written before each line of non-terminal input" default:"> "`
	Banner bool   `help:"Print the usage line on start"                          default:"true" negatable:""`
	Arena  int    `help:"Region capacity in bytes of each turn's arena"          default:"${arena}"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	s := streamsFrom(ctx)

	opts := []repl.Option{
		repl.WithPrompt(r.Prompt),
		repl.WithBanner(r.Banner),
		repl.WithArenaCapacity(r.Arena),
		repl.WithLogger(log.Default()),
	}

	if isTerminal(s.In) && isTerminal(s.Out) {
		return repl.Run(ctx, kongVar(ctx, CacheIdentifier), opts...)
	}

	return repl.Loop(ctx, s.In, s.Out, s.Err, opts...)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
