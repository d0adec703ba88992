package lang

import "github.com/ardnew/lambda/lang/sv"

// AtomKind identifies the literal held by an [Atom].
type AtomKind int

const (
	AtomNil AtomKind = iota
	AtomInt
	AtomFloat
	AtomString
)

// String returns a string representation of the atom kind.
func (k AtomKind) String() string {
	switch k {
	case AtomNil:
		return "nil"
	case AtomInt:
		return "int"
	case AtomFloat:
		return "float"
	case AtomString:
		return "string"
	default:
		return "unknown"
	}
}

// Numeric reports whether arithmetic is defined on atoms of kind k.
func (k AtomKind) Numeric() bool { return k == AtomInt || k == AtomFloat }

// Atom is a literal value at a leaf of the expression tree.
// Only the field selected by Kind is meaningful.
type Atom struct {
	Kind  AtomKind
	Int   int64
	Float float64
	Str   sv.View
}

// IntAtom returns an integer atom.
func IntAtom(v int64) Atom { return Atom{Kind: AtomInt, Int: v} }

// FloatAtom returns a float atom.
func FloatAtom(v float64) Atom { return Atom{Kind: AtomFloat, Float: v} }

// StringAtom returns a string atom viewing s.
func StringAtom(s sv.View) Atom { return Atom{Kind: AtomString, Str: s} }

// ExprKind identifies the variant held by an [Expr].
type ExprKind int

const (
	ExprNone ExprKind = iota
	ExprAtom
	ExprFuncall
)

// String returns a string representation of the expression kind.
func (k ExprKind) String() string {
	switch k {
	case ExprNone:
		return "none"
	case ExprAtom:
		return "atom"
	case ExprFuncall:
		return "funcall"
	default:
		return "unknown"
	}
}

// Expr is either an [Atom] or a pointer to a [Funcall].
// The zero Expr is the empty expression.
type Expr struct {
	Kind ExprKind
	Atom Atom
	Call *Funcall
}

// Funcall applies a named builtin to a sequence of argument expressions.
// Name views the source line and Args is allocated from the turn's [Arena].
type Funcall struct {
	Name sv.View
	Args []Expr
}

// StatementKind identifies the variant held by a [Statement].
type StatementKind int

const (
	StatementNone StatementKind = iota
	StatementVoid
)

// String returns a string representation of the statement kind.
func (k StatementKind) String() string {
	switch k {
	case StatementNone:
		return "none"
	case StatementVoid:
		return "void"
	default:
		return "unknown"
	}
}

// Statement is one parenthesized top-level form. A void statement holds a
// single expression; the none statement marks an absent or aborted parse.
type Statement struct {
	Kind StatementKind
	Expr Expr
}
