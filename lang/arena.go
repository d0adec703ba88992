package lang

import (
	"fmt"
	"io"

	"github.com/ardnew/lambda/arena"
	"github.com/ardnew/lambda/lang/sv"
)

// Arena owns every allocation made while parsing and evaluating one turn.
//
// Raw bytes (deep-copied strings) come from a byte [arena.Arena]; funcall
// nodes and argument lists come from typed pools so that the pointers they
// hold stay visible to the garbage collector. Everything is released at once
// with [Arena.Reset] or [Arena.Free].
//
// The zero value is ready to use.
type Arena struct {
	bytes arena.Arena
	calls arena.Pool[Funcall]
	exprs arena.Pool[Expr]
}

// NewArena returns an empty arena whose byte regions hold capacity bytes.
// A non-positive capacity selects [arena.DefaultCapacity].
func NewArena(capacity int) *Arena {
	a := &Arena{}
	a.bytes = *arena.New(arena.WithCapacity(capacity))

	return a
}

// NewFuncall allocates a funcall with the given name and no arguments.
func (a *Arena) NewFuncall(name sv.View) *Funcall {
	f := a.calls.New()
	f.Name = name

	return f
}

// AppendArg appends e to the argument list of f, growing the list from the
// arena when it is full.
func (a *Arena) AppendArg(f *Funcall, e Expr) {
	f.Args = a.exprs.Append(f.Args, e)
}

// Clone copies the bytes of s into the arena and returns a view of the copy.
// The copy is valid until the arena is reset.
func (a *Arena) Clone(s sv.View) sv.View {
	return sv.FromBytes(a.bytes.Clone(s.String()))
}

// Reset releases every allocation while keeping the underlying memory.
func (a *Arena) Reset() {
	a.bytes.Reset()
	a.calls.Reset()
	a.exprs.Reset()
}

// Free releases every allocation and the underlying memory.
func (a *Arena) Free() {
	a.bytes.Free()
	a.calls.Free()
	a.exprs.Free()
}

// Dump writes a summary of the arena's usage.
func (a *Arena) Dump(w io.Writer) error {
	if err := a.bytes.Dump(w); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "funcalls: %d in %d chunks\nexprs: %d in %d chunks\n",
		a.calls.Len(), a.calls.Regions(), a.exprs.Len(), a.exprs.Regions())

	return err
}
