package repl

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

func runLoop(t *testing.T, input string, opts ...Option) (out, errOut string, err error) {
	t.Helper()

	var w, ew bytes.Buffer

	opts = append([]Option{WithPrompt(""), WithBanner(false)}, opts...)
	err = Loop(t.Context(), strings.NewReader(input), &w, &ew, opts...)

	return w.String(), ew.String(), err
}

func TestLoop_Turns(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantOut string
		wantErr string
	}{
		{"int", "(+ 1 2)\n", "3\n", ""},
		{"float", "(* 2.0 1.5)\n", "3.000000\n", ""},
		{"string", "(\"hello\")\n", "hello\n", ""},
		{"nested", "(+ 1 (* 2 3))\n", "7\n", ""},
		{"blank", "\n   \n", "", ""},
		{"comment", "; nothing here\n", "", ""},
		{"no trailing newline", "(- 10 4)", "6\n", ""},
		{"several", "(+ 1 1)\n(+ 2 2)\n", "2\n4\n", ""},
		{
			"grammar error continues",
			"(+ 1\n(+ 2 2)\n",
			"4\n",
			"error: grammar error: 1:5: expected close-paren, but provided end of input\n",
		},
		{
			"unknown function continues",
			"(max 1 2)\n(+ 1 0)\n",
			"1\n",
			"error: unknown function: \"max\" (builtins: + - * /)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, err := runLoop(t, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if out != tt.wantOut {
				t.Errorf("output = %q, want %q", out, tt.wantOut)
			}

			if errOut != tt.wantErr {
				t.Errorf("error output = %q, want %q", errOut, tt.wantErr)
			}
		})
	}
}

func TestLoop_Quit(t *testing.T) {
	out, errOut, err := runLoop(t, "(+ 1 2)\nquit\n(+ 3 4)\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out != "3\n" {
		t.Errorf("expected evaluation to stop at quit, got %q", out)
	}

	if errOut != "" {
		t.Errorf("unexpected error output %q", errOut)
	}
}

func TestLoop_QuitIsExact(t *testing.T) {
	for _, line := range []string{"quit now", "Quit", " quit"} {
		t.Run(line, func(t *testing.T) {
			_, errOut, err := runLoop(t, line+"\n")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !strings.HasPrefix(errOut, "error: grammar error") {
				t.Errorf("expected %q to be evaluated as a statement, got %q", line, errOut)
			}
		})
	}
}

func TestLoop_PromptAndBanner(t *testing.T) {
	var w, ew bytes.Buffer

	err := Loop(t.Context(), strings.NewReader("(+ 1 2)\n"), &w, &ew)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := usage + "\n" + DefaultPrompt + "3\n" + DefaultPrompt
	if w.String() != want {
		t.Errorf("output = %q, want %q", w.String(), want)
	}
}

func TestLoop_ReadError(t *testing.T) {
	boom := errors.New("boom")

	var w, ew bytes.Buffer

	err := Loop(t.Context(), iotest.ErrReader(boom), &w, &ew, WithBanner(false))
	if !errors.Is(err, boom) {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestLoop_LineTooLong(t *testing.T) {
	input := "(+ " + strings.Repeat("1 ", maxLineSize) + ")\n"

	_, _, err := runLoop(t, input)
	if !errors.Is(err, ErrLineTooLong) {
		t.Errorf("expected ErrLineTooLong, got %v", err)
	}
}

func TestLoop_File(t *testing.T) {
	_, errOut, err := runLoop(t, ")\n", WithFile("stdin"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(errOut, "stdin:1:1") {
		t.Errorf("expected file position in %q", errOut)
	}
}
