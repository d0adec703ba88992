package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/lambda/lang"
	"github.com/ardnew/lambda/log"
)

// Output formats accepted by [Eval].
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Eval evaluates each argument as one turn.
type Eval struct {
	Exprs  []string `arg:"" help:"Statements to evaluate, one turn each"       name:"expr"`
	Format string   `       help:"Output format (${enum})"                                  default:"text" enum:"text,json,yaml" short:"o"`
	Indent int      `       help:"Indent width for JSON and YAML output"                    default:"2"                          short:"i"`
	Arena  int      `       help:"Region capacity in bytes of each turn's arena"             default:"${arena}"`
}

// evalRecord is one evaluated argument in JSON or YAML output.
type evalRecord map[string]any

// Run executes the eval command.
//
// Empty statements produce no output. Evaluation stops at the first error,
// after the results of the preceding arguments have been written.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	out := streamsFrom(ctx).Out

	records := make([]evalRecord, 0, len(e.Exprs))

	defer func() {
		if e.Format != FormatText {
			err = firstError(err, e.encode(ctx, out, records))
		}
	}()

	for i, expr := range e.Exprs {
		res, err := lang.Eval(ctx, expr,
			lang.WithFile("arg"+strconv.Itoa(i+1)),
			lang.WithArenaCapacity(e.Arena),
			lang.WithLogger(log.Default()),
		)
		if err != nil {
			return ErrEvaluate.
				With(slog.Int("arg", i+1), slog.String("expr", expr)).
				Wrap(err)
		}

		if res.Empty {
			continue
		}

		if e.Format == FormatText {
			if _, err := fmt.Fprintln(out, res.Object); err != nil {
				return err
			}

			continue
		}

		records = append(records, newEvalRecord(expr, res.Object))
	}

	return nil
}

func newEvalRecord(expr string, o lang.Object) evalRecord {
	r := evalRecord(o.ToMap())
	r["expr"] = expr

	// JSON has no representation for non-finite numbers.
	if f, ok := r["value"].(float64); ok && (math.IsInf(f, 0) || math.IsNaN(f)) {
		r["value"] = o.String()
	}

	return r
}

// encode writes records in the selected structured format.
func (e *Eval) encode(ctx context.Context, w io.Writer, records []evalRecord) error {
	switch e.Format {
	case FormatJSON:
		data, err := json.MarshalIndent(records, "", strings.Repeat(" ", max(e.Indent, 0)))
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

		_, err = fmt.Fprintln(w, string(data))

		return err

	case FormatYAML:
		if len(records) == 0 {
			return nil
		}

		var opts []yaml.EncodeOption
		if e.Indent > 0 {
			opts = append(opts, yaml.Indent(e.Indent), yaml.IndentSequence(true))
		} else {
			opts = append(opts, yaml.Flow(true))
		}

		data, err := yaml.MarshalContext(ctx, records, opts...)
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

		_, err = fmt.Fprint(w, string(data))

		return err
	}

	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
