package sv

import "testing"

func TestView_CutLeft(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"partial", "hello", 2, "llo"},
		{"exact", "hello", 5, ""},
		{"clamped", "hello", 10, ""},
		{"negative", "hello", -1, "hello"},
		{"empty", "", 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := From(tt.in)
			v.CutLeft(tt.n)

			if string(v) != tt.want {
				t.Errorf("expected %q, got %q", tt.want, v)
			}
		})
	}
}

func TestView_CutValue(t *testing.T) {
	tests := []struct {
		in, head, rest string
		float          bool
	}{
		{"123 rest", "123", " rest", false},
		{"1.5)", "1.5", ")", true},
		{"1.2.3", "1.2", ".3", true},
		{"42", "42", "", false},
		{"7.", "7.", "", true},
		{"abc", "", "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v := From(tt.in)
			head := v.CutValue()

			if string(head) != tt.head {
				t.Errorf("expected head %q, got %q", tt.head, head)
			}

			if string(v) != tt.rest {
				t.Errorf("expected rest %q, got %q", tt.rest, v)
			}

			if head.IsFloat() != tt.float {
				t.Errorf("expected IsFloat=%v for %q", tt.float, head)
			}
		})
	}
}

func TestView_CutText(t *testing.T) {
	tests := []struct {
		in, head, rest string
	}{
		{"foo bar", "foo", " bar"},
		{"foo)", "foo", ")"},
		{"foo-bar_baz", "foo-bar_baz", ""},
		{"x;comment", "x", ";comment"},
		{".3)", ".3", ")"},
		{"(", "(", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v := From(tt.in)
			head := v.CutText()

			if string(head) != tt.head {
				t.Errorf("expected head %q, got %q", tt.head, head)
			}

			if string(v) != tt.rest {
				t.Errorf("expected rest %q, got %q", tt.rest, v)
			}
		})
	}
}

func TestView_CutLine(t *testing.T) {
	v := From("; note\n(+ 1 2)")

	if head := v.CutLine(); head != "; note" {
		t.Errorf("expected comment text, got %q", head)
	}

	if v != "\n(+ 1 2)" {
		t.Errorf("expected newline to remain, got %q", v)
	}
}

func TestView_Numbers(t *testing.T) {
	i, err := From("1234").Int()
	if err != nil || i != 1234 {
		t.Errorf("expected 1234, got %d (%v)", i, err)
	}

	f, err := From("2.25").Float()
	if err != nil || f != 2.25 {
		t.Errorf("expected 2.25, got %v (%v)", f, err)
	}

	if _, err := From("99999999999999999999").Int(); err == nil {
		t.Error("expected overflow error")
	}
}

func TestView_Compare(t *testing.T) {
	if !From("quit").Equal(From("quit")) {
		t.Error("identical views must be equal")
	}

	if From("quit").Equal(From("quit now")) {
		t.Error("prefix must not compare equal")
	}

	if From("Quit").Equal(From("quit")) {
		t.Error("comparison must be case-sensitive")
	}

	if !From("+-*/").ContainsByte('*') {
		t.Error("expected '*' to be found")
	}

	if From("+-*/").ContainsByte('%') {
		t.Error("did not expect '%' to be found")
	}
}

func TestView_Trim(t *testing.T) {
	v := From(" \t(+ 1 2)\r\n")

	if got := v.Trim(); got != "(+ 1 2)" {
		t.Errorf("Trim: got %q", got)
	}

	if got := v.TrimLeft(); got != "(+ 1 2)\r\n" {
		t.Errorf("TrimLeft: got %q", got)
	}

	if got := v.TrimRight(); got != " \t(+ 1 2)" {
		t.Errorf("TrimRight: got %q", got)
	}
}

func TestFromBytes(t *testing.T) {
	b := []byte("abc")
	v := FromBytes(b)

	if v != "abc" {
		t.Errorf("expected %q, got %q", "abc", v)
	}

	if FromBytes(nil) != "" {
		t.Error("expected empty view for nil slice")
	}

	if v.At(1) != 'b' || v.At(3) != 0 {
		t.Error("At returned unexpected bytes")
	}
}
