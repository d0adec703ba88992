package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ardnew/lambda/lang"
)

const (
	quitCommand = "quit"
	usage       = `Lambda REPL mode. To exit type "quit".`

	// maxLineSize bounds a single line read by [Loop].
	maxLineSize = 1 << 20
)

// Loop runs the turn loop over r without a terminal.
//
// Each line is one turn: a fresh lexer and arena evaluate it, the result is
// written to w, and the arena is released. A line that is exactly "quit" ends
// the loop, as does end of input, and both return nil. Grammar and evaluation
// errors are written to ew and the loop continues. An internal error stops the
// loop and is returned.
func Loop(
	ctx context.Context,
	r io.Reader,
	w, ew io.Writer,
	opts ...Option,
) error {
	cfg := makeConfig(opts...)

	if cfg.banner {
		if _, err := fmt.Fprintln(w, usage); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	for turn := 1; ; turn++ {
		if _, err := io.WriteString(w, cfg.prompt); err != nil {
			return err
		}

		if !scanner.Scan() {
			err := scanner.Err()
			if errors.Is(err, bufio.ErrTooLong) {
				return fmt.Errorf("%w: line %d", ErrLineTooLong, turn)
			}

			cfg.logger.TraceContext(ctx, "repl end of input",
				slog.Int("turns", turn-1))

			return err
		}

		line := scanner.Text()
		if line == quitCommand {
			return nil
		}

		out, err := evaluate(ctx, line, cfg)

		switch {
		case lang.IsInternal(err):
			return err

		case err != nil:
			if _, werr := fmt.Fprintln(ew, "error:", err); werr != nil {
				return werr
			}

		case out != "":
			if _, werr := fmt.Fprintln(w, out); werr != nil {
				return werr
			}
		}
	}
}

// evaluate runs one turn and returns the text of its result. A blank or
// comment-only line yields the empty string.
func evaluate(ctx context.Context, line string, cfg config) (string, error) {
	cfg.logger.TraceContext(ctx, "repl eval", slog.String("input", line))

	res, err := lang.Eval(ctx, line, cfg.evalOptions()...)
	if err != nil {
		cfg.logger.DebugContext(ctx, "repl eval result",
			slog.String("result_type", "error"),
			slog.String("error", err.Error()))

		return "", err
	}

	if res.Empty {
		return "", nil
	}

	cfg.logger.TraceContext(ctx, "repl eval result",
		slog.String("result_type", res.Object.Kind.String()))

	return res.Object.String(), nil
}
