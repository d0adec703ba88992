package lang

import (
	"io"
	"strconv"
	"strings"
)

// FormatAtom returns the display form of an atom: a decimal integer, a float
// with six fractional digits, the raw string, or nil.
func FormatAtom(a Atom) string {
	switch a.Kind {
	case AtomInt:
		return strconv.FormatInt(a.Int, 10)
	case AtomFloat:
		return strconv.FormatFloat(a.Float, 'f', 6, 64)
	case AtomString:
		return a.Str.String()
	default:
		return "nil"
	}
}

// FormatStatement writes s to w as an S-expression tree:
//
//	(Statement
//	  (type (void))
//	  (value
//	    (funcall
//	      (name (+))
//	      (args (1 2))
//	    )
//	  )
//	)
func FormatStatement(w io.Writer, s Statement) error {
	var b strings.Builder

	b.WriteString("(Statement\n")
	b.WriteString("  (type (" + s.Kind.String() + "))\n")

	if s.Kind == StatementVoid {
		b.WriteString("  (value\n")
		formatExpr(&b, s.Expr, 2)
		b.WriteString("  )\n")
	}

	b.WriteString(")\n")

	_, err := io.WriteString(w, b.String())

	return err
}

func formatExpr(b *strings.Builder, e Expr, depth int) {
	pad := strings.Repeat("  ", depth)

	switch e.Kind {
	case ExprAtom:
		b.WriteString(pad + FormatAtom(e.Atom) + "\n")

	case ExprFuncall:
		f := e.Call

		b.WriteString(pad + "(funcall\n")
		b.WriteString(pad + "  (name (" + f.Name.String() + "))\n")

		if allAtoms(f.Args) {
			args := make([]string, len(f.Args))
			for i, arg := range f.Args {
				args[i] = FormatAtom(arg.Atom)
			}

			b.WriteString(pad + "  (args (" + strings.Join(args, " ") + "))\n")
		} else {
			b.WriteString(pad + "  (args (\n")

			for _, arg := range f.Args {
				formatExpr(b, arg, depth+2)
			}

			b.WriteString(pad + "  ))\n")
		}

		b.WriteString(pad + ")\n")

	default:
		b.WriteString(pad + "(" + e.Kind.String() + ")\n")
	}
}

func allAtoms(args []Expr) bool {
	for _, arg := range args {
		if arg.Kind != ExprAtom {
			return false
		}
	}

	return true
}
