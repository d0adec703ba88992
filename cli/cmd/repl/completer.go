package repl

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// ctrlCommands are the available control-mode commands.
var ctrlCommands = []string{"help", "history", "clear", "quit"}

// isWordBoundary reports whether r delimits a word for completion purposes.
func isWordBoundary(r rune) bool {
	switch r {
	case ' ', '\t', '(', ')', '"', '\'', ';':
		return true
	}

	return false
}

// wordBounds returns the word at the cursor and its byte boundaries within
// input. The word is empty when the cursor sits on a boundary.
func wordBounds(input string, cursor int) (word string, start, end int) {
	cursor = min(max(cursor, 0), len(input))

	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// computeMatches ranks the control commands against the word at the cursor
// and returns the word's byte span. Statements have no completions: every
// builtin name is a single operator.
func (m model) computeMatches() (matches fuzzy.Matches, start, end int) {
	line := m.input.Value()

	word, start, end := wordBounds(line, m.input.Position())

	// Only the first word of a command line is completed.
	if m.mode != modeCtrl || word == "" || strings.TrimSpace(line[:start]) != "" {
		return nil, start, end
	}

	return fuzzy.Find(word, ctrlCommands), start, end
}

// renderCandidateBar lists matches on one line, cut short with an ellipsis
// where it would exceed width. The candidate at index sel, if any, is drawn
// selected.
func renderCandidateBar(matches fuzzy.Matches, sel, width int) string {
	const sep = "  "

	more := hintStyle.Render("...")

	var b strings.Builder

	for i, match := range matches {
		item := renderCandidate(match, i == sel)
		if i > 0 {
			item = sep + item
		}

		room := width - lipgloss.Width(b.String()) - lipgloss.Width(item)
		if i < len(matches)-1 {
			room -= len(sep) + lipgloss.Width(more)
		}

		if room < 0 && i > 0 {
			b.WriteString(sep + more)

			break
		}

		b.WriteString(item)
	}

	return b.String()
}

// renderCandidate renders a candidate with its matched characters
// highlighted.
func renderCandidate(match fuzzy.Match, selected bool) string {
	base, hit := candidateStyle, candidateMatchStyle
	if selected {
		base, hit = selectedStyle, selectedMatchStyle
	}

	var b strings.Builder

	next := 0

	for i, r := range match.Str {
		style := base
		if next < len(match.MatchedIndexes) && match.MatchedIndexes[next] == i {
			style = hit
			next++
		}

		b.WriteString(style.Render(string(r)))
	}

	return b.String()
}
