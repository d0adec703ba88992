// Package sv implements string views: non-owning windows into text owned by
// someone else.
//
// A [View] is a named string. Slicing a Go string shares its bytes, so
// narrowing a View never copies, and a View is valid for as long as the text
// it was cut from. Values that must outlive their source buffer are copied
// explicitly (see [github.com/ardnew/lambda/arena.Arena.Clone]).
package sv

import (
	"strconv"
	"unsafe"
)

// View is a borrowed window into source text.
type View string

// From returns a view of s.
func From(s string) View { return View(s) }

// FromBytes returns a view of b without copying.
// The caller must not modify b while the view is in use.
func FromBytes(b []byte) View {
	if len(b) == 0 {
		return ""
	}

	return View(unsafe.String(&b[0], len(b)))
}

// Len returns the number of bytes in the view.
func (v View) Len() int { return len(v) }

// String returns the viewed text.
func (v View) String() string { return string(v) }

// Bytes returns a copy of the viewed text.
func (v View) Bytes() []byte { return []byte(v) }

// At returns the byte at index i, or NUL if i is out of range.
func (v View) At(i int) byte {
	if i < 0 || i >= len(v) {
		return 0
	}

	return v[i]
}

// CutLeft advances the start of the view by n bytes, clamped to its length.
func (v *View) CutLeft(n int) {
	n = min(max(n, 0), len(*v))
	*v = (*v)[n:]
}

// CutValue removes and returns the longest leading run of digits containing
// at most one decimal point.
func (v *View) CutValue() View {
	i, dot := 0, false

	for ; i < len(*v); i++ {
		c := (*v)[i]
		if c == '.' && !dot {
			dot = true

			continue
		}

		if !IsDigit(c) {
			break
		}
	}

	head := (*v)[:i]
	*v = (*v)[i:]

	return head
}

// CutText removes and returns the longest leading run of bytes that are not
// delimiters. At least one byte is removed from a non-empty view so that a
// stray delimiter never stalls the caller.
func (v *View) CutText() View {
	i := 0
	for i < len(*v) && !IsDelimiter((*v)[i]) {
		i++
	}

	if i == 0 && len(*v) > 0 {
		i = 1
	}

	head := (*v)[:i]
	*v = (*v)[i:]

	return head
}

// CutLine removes and returns everything up to, but excluding, the next
// newline.
func (v *View) CutLine() View {
	i := 0
	for i < len(*v) && (*v)[i] != '\n' {
		i++
	}

	head := (*v)[:i]
	*v = (*v)[i:]

	return head
}

// IsFloat reports whether the view contains a decimal point.
func (v View) IsFloat() bool { return v.ContainsByte('.') }

// Int parses the view as a base-10 signed 64-bit integer.
func (v View) Int() (int64, error) {
	return strconv.ParseInt(string(v), 10, 64)
}

// Float parses the view as a 64-bit floating point number.
func (v View) Float() (float64, error) {
	return strconv.ParseFloat(string(v), 64)
}

// Equal reports whether v and w hold identical bytes.
func (v View) Equal(w View) bool { return v == w }

// ContainsByte reports whether c occurs in the view.
func (v View) ContainsByte(c byte) bool {
	for i := range len(v) {
		if v[i] == c {
			return true
		}
	}

	return false
}

// TrimLeft returns the view without leading ASCII whitespace.
func (v View) TrimLeft() View {
	i := 0
	for i < len(v) && IsSpace(v[i]) {
		i++
	}

	return v[i:]
}

// TrimRight returns the view without trailing ASCII whitespace.
func (v View) TrimRight() View {
	i := len(v)
	for i > 0 && IsSpace(v[i-1]) {
		i--
	}

	return v[:i]
}

// Trim returns the view without leading or trailing ASCII whitespace.
func (v View) Trim() View { return v.TrimLeft().TrimRight() }

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool { return '0' <= c && c <= '9' }

// IsSpace reports whether c is ASCII whitespace as classified by C isspace.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

// IsDelimiter reports whether c ends an identifier-like run.
func IsDelimiter(c byte) bool {
	switch c {
	case 0, '(', ')', '"', '\'', ';':
		return true
	}

	return IsSpace(c)
}
