package lang

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/lambda/lang/lexer"
	"github.com/ardnew/lambda/lang/token"
)

// MaxDepth is the deepest expression nesting the parser accepts. Deeper
// input fails with [ErrGrammar] instead of exhausting the goroutine stack.
const MaxDepth = 1024

// ParseStatement parses one statement from l.
//
// Source that holds no tokens (blank or comment-only) yields the none
// statement and a nil error. Any other failure yields the none statement
// and an error: [ErrGrammar] for malformed input, or an evaluation error
// from a parenthesized argument, which is reduced while it is parsed.
//
// Input after the closing parenthesis is left unread.
func ParseStatement(
	ctx context.Context,
	a *Arena,
	l *lexer.Lexer,
) (Statement, error) {
	if l.Err() {
		return Statement{}, ErrInternal.Wrap(
			fmt.Errorf("parse from lexer in %s state", l.Status()))
	}

	if l.Peek().IsZero() {
		l.Scan()
		l.Logger().TraceContext(ctx, "empty statement")

		return Statement{}, nil
	}

	s, err := parseStatement(ctx, a, l, 0)
	if err != nil {
		l.Logger().DebugContext(ctx, "parse statement failed",
			slog.Any("error", err))

		return Statement{}, err
	}

	return s, nil
}

// parseStatement parses '(' expr ')'.
func parseStatement(
	ctx context.Context,
	a *Arena,
	l *lexer.Lexer,
	depth int,
) (Statement, error) {
	if _, err := l.Yield(token.OpenParen); err != nil {
		return Statement{}, ErrGrammar.Wrap(err)
	}

	// A statement must hold an expression.
	if tok := l.Peek(); tok.IsZero() || tok.Type == token.CloseParen {
		return Statement{}, expectedExpression(l, tok)
	}

	e, err := parseExpr(ctx, a, l, depth+1)
	if err != nil {
		return Statement{}, err
	}

	if _, err := l.Yield(token.CloseParen); err != nil {
		return Statement{}, ErrGrammar.Wrap(err)
	}

	return Statement{Kind: StatementVoid, Expr: e}, nil
}

func expectedExpression(l *lexer.Lexer, tok token.Token) error {
	row, col := tok.Row, tok.Col
	if tok.IsZero() {
		dup := *l
		dup.Scan()
		row, col = dup.Position()
	}

	pos := fmt.Sprintf("%d:%d", row, col)
	if file := l.File(); file != "" {
		pos = file + ":" + pos
	}

	return ErrGrammar.WithPosition(row, col).Wrap(
		fmt.Errorf("%s: expected expression, but provided %s", pos, tok.Describe()))
}

// ParseExpr parses one expression from l.
//
// A literal becomes an atom expression. An operator or name starts a funcall
// whose arguments run until the closing parenthesis or the end of input. An
// open parenthesis starts a nested statement, which is evaluated at once
// with [Stateval] and replaced by its value.
//
// Any other leading token is an [ErrInternal]: callers check for it first.
// Nesting beyond [MaxDepth] is an [ErrGrammar].
func ParseExpr(ctx context.Context, a *Arena, l *lexer.Lexer) (Expr, error) {
	return parseExpr(ctx, a, l, 0)
}

func parseExpr(
	ctx context.Context,
	a *Arena,
	l *lexer.Lexer,
	depth int,
) (Expr, error) {
	tok := l.Peek()

	if depth > MaxDepth {
		return Expr{}, ErrGrammar.WithPosition(tok.Row, tok.Col).Wrap(
			fmt.Errorf("nesting deeper than %d at %s", MaxDepth, tok.Describe()))
	}

	switch tok.Type {
	case token.Nil, token.String, token.Number:
		l.Scan()

		atom, err := ParseAtom(tok)
		if err != nil {
			return Expr{}, err
		}

		return Expr{Kind: ExprAtom, Atom: atom}, nil

	case token.Operator, token.Text:
		f, err := parseFuncall(ctx, a, l, depth)
		if err != nil {
			return Expr{}, err
		}

		return Expr{Kind: ExprFuncall, Call: f}, nil

	case token.OpenParen:
		s, err := parseStatement(ctx, a, l, depth)
		if err != nil {
			return Expr{}, err
		}

		return Stateval(ctx, s)

	default:
		return Expr{}, ErrInternal.WithPosition(tok.Row, tok.Col).Wrap(
			fmt.Errorf("cannot parse expression from %s", tok.Describe()))
	}
}

// parseFuncall parses (Operator|Text) expr*.
func parseFuncall(
	ctx context.Context,
	a *Arena,
	l *lexer.Lexer,
	depth int,
) (*Funcall, error) {
	name := l.Scan()
	f := a.NewFuncall(name.Text)

	for tok := l.Peek(); !tok.IsZero() && tok.Type != token.CloseParen; tok = l.Peek() {
		e, err := parseExpr(ctx, a, l, depth+1)
		if err != nil {
			return nil, err
		}

		a.AppendArg(f, e)
	}

	l.Logger().TraceContext(ctx, "funcall",
		slog.String("name", f.Name.String()),
		slog.Int("args", len(f.Args)),
		slog.Int("row", name.Row),
		slog.Int("col", name.Col))

	return f, nil
}

// ParseAtom converts a literal token to an [Atom]. A number holding a
// decimal point becomes a float; any other number an integer.
func ParseAtom(tok token.Token) (Atom, error) {
	switch tok.Type {
	case token.String:
		return StringAtom(tok.Text), nil

	case token.Nil:
		return Atom{Kind: AtomNil}, nil

	case token.Number:
		if tok.Text.IsFloat() {
			f, err := tok.Text.Float()
			if err != nil {
				return Atom{}, ErrInvalidNumber.WithPosition(tok.Row, tok.Col).Wrap(err)
			}

			return FloatAtom(f), nil
		}

		i, err := tok.Text.Int()
		if err != nil {
			return Atom{}, ErrInvalidNumber.WithPosition(tok.Row, tok.Col).Wrap(err)
		}

		return IntAtom(i), nil

	default:
		return Atom{}, ErrInternal.WithPosition(tok.Row, tok.Col).Wrap(
			fmt.Errorf("%s is not a literal", tok.Describe()))
	}
}
