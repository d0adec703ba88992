package repl

import (
	"strings"

	"github.com/ardnew/lambda/lang"
	"github.com/ardnew/lambda/lang/lexer"
	"github.com/ardnew/lambda/lang/sv"
	"github.com/ardnew/lambda/lang/token"
)

// functionCall is the innermost funcall enclosing the cursor.
type functionCall struct {
	name     string
	argIndex int  // 0-based index of the argument under the cursor
	inCall   bool // true once the funcall has a name
}

// detectFunctionCall tokenizes the input left of the cursor and reports the
// innermost open funcall.
func detectFunctionCall(input string, cursor int) functionCall {
	cursor = min(max(cursor, 0), len(input))
	prefix := input[:cursor]

	type frame struct {
		name  string
		named bool
		args  int
	}

	var stack []frame

	for tok := range lexer.New("", sv.From(prefix)).Tokens() {
		switch tok.Type {
		case token.OpenParen:
			if n := len(stack); n > 0 && stack[n-1].named {
				stack[n-1].args++
			}

			stack = append(stack, frame{})

		case token.CloseParen:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		default:
			if len(stack) == 0 {
				continue
			}

			top := &stack[len(stack)-1]
			if top.named {
				top.args++
			} else {
				top.name, top.named = tok.Text.String(), true
			}
		}
	}

	if len(stack) == 0 || !stack[len(stack)-1].named {
		return functionCall{}
	}

	top := stack[len(stack)-1]
	index := top.args

	// The cursor still touches the last argument until whitespace follows it.
	if last := sv.From(prefix).At(len(prefix) - 1); index > 0 && !sv.IsSpace(last) {
		index--
	}

	return functionCall{name: top.name, argIndex: index, inCall: true}
}

// getSignature returns the usage summary of the named builtin and its
// parameter names. The signature is empty for unknown names.
func getSignature(name string) (signature string, params []string) {
	signature, ok := lang.Signature(name)
	if !ok {
		return "", nil
	}

	inner, _, _ := strings.Cut(strings.TrimPrefix(signature, "("), ")")

	fields := strings.Fields(inner)
	if len(fields) == 0 {
		return signature, nil
	}

	return signature, fields[1:]
}

// renderSignatureHint renders the signature with the parameter at
// currentArgIdx highlighted. A variadic parameter (suffix "...") stays
// highlighted for every argument at or beyond its position.
func renderSignatureHint(
	signature string,
	params []string,
	currentArgIdx int,
) string {
	if signature == "" {
		return ""
	}

	inner, result, ok := strings.Cut(strings.TrimPrefix(signature, "("), ")")
	if !ok {
		return signatureStyle.Render(signature)
	}

	name, _, _ := strings.Cut(strings.TrimSpace(inner), " ")

	var b strings.Builder

	b.WriteString(signatureStyle.Render("("))
	b.WriteString(signatureNameStyle.Render(name))

	for i, param := range params {
		b.WriteString(signatureStyle.Render(" "))

		variadic := strings.HasSuffix(param, "...")
		if currentArgIdx == i || (variadic && currentArgIdx >= i) {
			b.WriteString(currentParamStyle.Render(param))
		} else {
			b.WriteString(signatureStyle.Render(param))
		}
	}

	b.WriteString(signatureStyle.Render(")" + result))

	return b.String()
}
