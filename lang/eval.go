package lang

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ardnew/lambda/lang/lexer"
	"github.com/ardnew/lambda/lang/sv"
	"github.com/ardnew/lambda/log"
)

// Stateval evaluates a void statement. A funcall is reduced with
// [Statfuncall]; an atom is returned unchanged.
func Stateval(ctx context.Context, s Statement) (Expr, error) {
	if s.Kind != StatementVoid {
		return Expr{}, ErrInternal.Wrap(
			fmt.Errorf("evaluate %s statement", s.Kind))
	}

	switch s.Expr.Kind {
	case ExprFuncall:
		return Statfuncall(ctx, s.Expr.Call)

	case ExprAtom:
		return s.Expr, nil

	default:
		return Expr{}, ErrInternal.Wrap(
			fmt.Errorf("evaluate %s expression", s.Expr.Kind))
	}
}

// Statfuncall applies a builtin to the arguments of f and returns the result
// as an atom expression.
//
// The result takes the numeric kind of the first argument. Remaining
// arguments are converted to that kind (an integer widens to float, a float
// truncates to integer) and folded in from the left.
//
// Every argument must already be an atom. Parenthesized arguments are
// reduced during parsing, so only an unparenthesized funcall argument
// fails this check.
func Statfuncall(ctx context.Context, f *Funcall) (Expr, error) {
	if f == nil {
		return Expr{}, ErrInternal.Wrap(errors.New("evaluate nil funcall"))
	}

	name := f.Name.String()

	op, ok := lookupBuiltin(name)
	if !ok {
		return Expr{}, ErrUnknownFunction.
			With(slog.String("name", name)).
			Wrap(fmt.Errorf("%q (builtins: %s)", name, strings.Join(Builtins(), " ")))
	}

	if len(f.Args) == 0 {
		return Expr{}, ErrMissingArgument.
			With(slog.String("name", name)).
			Wrap(fmt.Errorf("%q requires at least one argument", name))
	}

	result, err := operand(name, f.Args, 0)
	if err != nil {
		return Expr{}, err
	}

	for i := 1; i < len(f.Args); i++ {
		arg, err := operand(name, f.Args, i)
		if err != nil {
			return Expr{}, err
		}

		arg = coerce(arg, result.Kind)

		switch result.Kind {
		case AtomInt:
			result.Int, err = op.ints(result.Int, arg.Int)
			if err != nil {
				return Expr{}, ErrDivideByZero.
					With(slog.String("name", name), slog.Int("arg", i+1)).
					Wrap(fmt.Errorf("argument %d of %q", i+1, name))
			}

		case AtomFloat:
			result.Float = op.floats(result.Float, arg.Float)
		}
	}

	log.FromContext(ctx).TraceContext(ctx, "statfuncall",
		slog.String("name", name),
		slog.Int("args", len(f.Args)),
		slog.String("result", result.Kind.String()))

	return Expr{Kind: ExprAtom, Atom: result}, nil
}

// operand returns argument i of a funcall, which must be a numeric atom.
func operand(name string, args []Expr, i int) (Atom, error) {
	arg := args[i]
	if arg.Kind != ExprAtom {
		return Atom{}, ErrNotAtom.
			With(slog.String("name", name), slog.Int("arg", i+1)).
			Wrap(fmt.Errorf("argument %d of %q is a %s", i+1, name, arg.Kind))
	}

	if !arg.Atom.Kind.Numeric() {
		return Atom{}, ErrInvalidOperand.
			With(slog.String("name", name), slog.Int("arg", i+1)).
			Wrap(fmt.Errorf("argument %d of %q is a %s", i+1, name, arg.Atom.Kind))
	}

	return arg.Atom, nil
}

// coerce returns a copy of a numeric atom converted to kind.
func coerce(a Atom, kind AtomKind) Atom {
	if a.Kind == kind {
		return a
	}

	switch kind {
	case AtomFloat:
		return FloatAtom(float64(a.Int))
	case AtomInt:
		return IntAtom(int64(a.Float))
	}

	return a
}

// ObjectFromAtom converts an atom to a display [Object]. String bytes are
// copied into a, decoupling them from the source line, and the object's
// string is built from that copy. The object owns its string, so it stays
// valid after a is reset or freed.
func ObjectFromAtom(a *Arena, atom Atom) (Object, error) {
	switch atom.Kind {
	case AtomNil:
		return Object{}, nil
	case AtomInt:
		return IntObject(atom.Int), nil
	case AtomFloat:
		return FloatObject(atom.Float), nil
	case AtomString:
		return StringObject(string(a.bytes.Clone(atom.Str.String()))), nil
	default:
		return Object{}, ErrInternal.Wrap(
			fmt.Errorf("convert atom of kind %d", atom.Kind))
	}
}

// Result is the outcome of one call to [Eval].
type Result struct {
	Object Object
	Empty  bool // the line held no statement
}

// Eval parses and evaluates one line of source text.
//
// A blank or comment-only line yields a Result with Empty set and a nil
// error. On error the Result holds the nil Object.
func Eval(ctx context.Context, line string, opts ...Option) (Result, error) {
	cfg := makeConfig(opts...)

	a := NewArena(cfg.capacity)
	defer a.Free()

	ctx = log.NewContext(ctx, cfg.logger)

	l := lexer.New(cfg.file, sv.From(line), lexer.WithLogger(cfg.logger))

	s, err := ParseStatement(ctx, a, l)
	if err != nil {
		return Result{}, err
	}

	if s.Kind == StatementNone {
		return Result{Empty: true}, nil
	}

	e, err := Stateval(ctx, s)
	if err != nil {
		cfg.logger.DebugContext(ctx, "evaluation failed", slog.Any("error", err))

		return Result{}, err
	}

	if e.Kind != ExprAtom {
		return Result{}, ErrInternal.Wrap(
			fmt.Errorf("statement reduced to %s", e.Kind))
	}

	o, err := ObjectFromAtom(a, e.Atom)
	if err != nil {
		return Result{}, err
	}

	cfg.logger.TraceContext(ctx, "eval",
		slog.String("kind", o.Kind.String()),
		slog.String("value", o.String()),
		slog.Int("arena", a.bytes.Len()))

	return Result{Object: o}, nil
}
