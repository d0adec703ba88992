package lang

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/lambda/lang/lexer"
	"github.com/ardnew/lambda/lang/sv"
	"github.com/ardnew/lambda/lang/token"
)

func parse(t *testing.T, input string) (Statement, *lexer.Lexer, error) {
	t.Helper()

	l := lexer.New("", sv.From(input))
	s, err := ParseStatement(t.Context(), NewArena(0), l)

	return s, l, err
}

func TestParseStatement_Funcall(t *testing.T) {
	s, l, err := parse(t, "(+ 1 2.5 'x')")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Kind != StatementVoid || s.Expr.Kind != ExprFuncall {
		t.Fatalf("unexpected statement %+v", s)
	}

	f := s.Expr.Call
	if f.Name != "+" {
		t.Errorf("expected name +, got %q", f.Name)
	}

	want := []Atom{IntAtom(1), FloatAtom(2.5), StringAtom("x")}
	if len(f.Args) != len(want) {
		t.Fatalf("expected %d args, got %d", len(want), len(f.Args))
	}

	for i, arg := range f.Args {
		if arg.Kind != ExprAtom || arg.Atom != want[i] {
			t.Errorf("arg %d: expected %+v, got %+v", i, want[i], arg)
		}
	}

	if !l.OK() {
		t.Errorf("expected lexer ok after statement, got %v", l.Status())
	}
}

func TestParseStatement_TextName(t *testing.T) {
	s, _, err := parse(t, "(foo 1)")
	if err != nil {
		t.Fatalf("unknown names must parse: %v", err)
	}

	if s.Expr.Call == nil || s.Expr.Call.Name != "foo" {
		t.Errorf("unexpected statement %+v", s)
	}
}

func TestParseStatement_EagerReduction(t *testing.T) {
	s, _, err := parse(t, "(* 2 (+ 1 1) (- 9 (* 2 3)))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, arg := range s.Expr.Call.Args {
		if arg.Kind != ExprAtom {
			t.Errorf("arg %d was not reduced: %+v", i, arg)
		}
	}

	if got := s.Expr.Call.Args[2].Atom; got != IntAtom(3) {
		t.Errorf("expected nested value 3, got %+v", got)
	}
}

func TestParseStatement_Empty(t *testing.T) {
	for _, input := range []string{"", " \n ", "; nothing here"} {
		s, l, err := parse(t, input)
		if err != nil || s.Kind != StatementNone {
			t.Errorf("%q: expected none statement, got %+v, %v", input, s, err)
		}

		if !l.Empty() {
			t.Errorf("%q: expected lexer empty, got %v", input, l.Status())
		}
	}
}

func TestParseStatement_Grammar(t *testing.T) {
	tests := []string{"()", "(", ")", "(+ 1 2", "foo", "(+ (", "(1 2"}

	for _, input := range tests {
		s, _, err := parse(t, input)
		if !errors.Is(err, ErrGrammar) {
			t.Errorf("%q: expected grammar error, got %v", input, err)
		}

		if s.Kind != StatementNone {
			t.Errorf("%q: expected none statement, got %+v", input, s)
		}
	}
}

func TestParseStatement_DepthLimit(t *testing.T) {
	nest := func(n int) string {
		return strings.Repeat("(+ 1 ", n) + "1" + strings.Repeat(")", n)
	}

	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"shallow", nest(100), true},
		{"nested statements", nest(MaxDepth), false},
		{"open parens", strings.Repeat("(", 1<<20-1), false},
		{"bare funcalls", "(" + strings.Repeat("+ ", MaxDepth+1) + "1)", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parse(t, tt.input)

			if tt.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}

				return
			}

			if !errors.Is(err, ErrGrammar) {
				t.Fatalf("expected grammar error, got %v", err)
			}
		})
	}

	res, err := Eval(t.Context(), strings.Repeat("(", 1<<20-1))
	if !errors.Is(err, ErrGrammar) || !res.Object.IsNil() {
		t.Errorf("expected grammar error from Eval, got %v, %v", res, err)
	}
}

func TestParseStatement_LexerError(t *testing.T) {
	l := lexer.New("", ")")
	if _, err := l.Yield(token.OpenParen); err == nil {
		t.Fatal("expected yield to fail")
	}

	if _, err := ParseStatement(t.Context(), NewArena(0), l); !IsInternal(err) {
		t.Errorf("expected internal error, got %v", err)
	}
}

func TestParseStatement_TrailingInput(t *testing.T) {
	s, l, err := parse(t, "(+ 1 2) (+ 3 4)")
	if err != nil || s.Kind != StatementVoid {
		t.Fatalf("unexpected result %+v, %v", s, err)
	}

	if l.Rest() != " (+ 3 4)" {
		t.Errorf("expected trailing input unread, got %q", l.Rest())
	}
}

func TestParseExpr_Internal(t *testing.T) {
	l := lexer.New("", ")")

	if _, err := ParseExpr(t.Context(), NewArena(0), l); !IsInternal(err) {
		t.Errorf("expected internal error, got %v", err)
	}
}

func TestParseAtom(t *testing.T) {
	tests := []struct {
		tok  token.Token
		want Atom
		err  error
	}{
		{token.Token{Type: token.Number, Text: "12"}, IntAtom(12), nil},
		{token.Token{Type: token.Number, Text: "1."}, FloatAtom(1), nil},
		{token.Token{Type: token.String, Text: "s"}, StringAtom("s"), nil},
		{token.Token{Type: token.Nil}, Atom{}, nil},
		{token.Token{Type: token.Number, Text: "99999999999999999999"}, Atom{}, ErrInvalidNumber},
		{token.Token{Type: token.Operator, Text: "+"}, Atom{}, ErrInternal},
	}

	for _, tt := range tests {
		got, err := ParseAtom(tt.tok)
		if !errors.Is(err, tt.err) {
			t.Errorf("%v: expected error %v, got %v", tt.tok, tt.err, err)
		}

		if got != tt.want {
			t.Errorf("%v: expected %+v, got %+v", tt.tok, tt.want, got)
		}
	}
}

func TestFormatStatement(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "funcall",
			input: "(+ 1 (* 2.0 1.5))",
			want: `(Statement
  (type (void))
  (value
    (funcall
      (name (+))
      (args (1 3.000000))
    )
  )
)
`,
		},
		{
			name:  "unreduced argument",
			input: "(- 'a' * 2)",
			want: `(Statement
  (type (void))
  (value
    (funcall
      (name (-))
      (args (
        a
        (funcall
          (name (*))
          (args (2))
        )
      ))
    )
  )
)
`,
		},
		{
			name:  "atom",
			input: "(7)",
			want: `(Statement
  (type (void))
  (value
    7
  )
)
`,
		},
		{
			name:  "none",
			input: "",
			want: `(Statement
  (type (none))
)
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, err := parse(t, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var buf bytes.Buffer
			if err := FormatStatement(&buf, s); err != nil {
				t.Fatalf("format: %v", err)
			}

			if buf.String() != tt.want {
				t.Errorf("expected:\n%s\ngot:\n%s", tt.want, buf.String())
			}
		})
	}
}

func TestArena_Dump(t *testing.T) {
	a := NewArena(128)
	f := a.NewFuncall("+")

	for i := range 20 {
		a.AppendArg(f, Expr{Kind: ExprAtom, Atom: IntAtom(int64(i))})
	}

	a.Clone("hello")

	var buf bytes.Buffer
	if err := a.Dump(&buf); err != nil {
		t.Fatal(err)
	}

	const want = "region 0: 5/128 bytes\nfuncalls: 1 in 1 chunks\nexprs: 48 in 1 chunks\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}

	a.Free()

	buf.Reset()
	_ = a.Dump(&buf)

	if buf.String() != "funcalls: 0 in 0 chunks\nexprs: 0 in 0 chunks\n" {
		t.Errorf("unexpected dump after free: %q", buf.String())
	}
}
