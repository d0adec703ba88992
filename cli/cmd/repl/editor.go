package repl

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/lambda/lang"
)

// Prompts of the two input modes.
const (
	evalPrompt = "λ "
	ctrlPrompt = " :"
)

const helpText = `
Commands (Esc switches between statements and commands):
  help      show this text
  history   list previous statements
  clear     clear the screen
  quit      leave the editor

Keys:
  Enter              evaluate the statement, or run the command
  Tab, Shift+Tab     cycle command completions; Space accepts one
  Up, Down           walk the history, switching mode to match each entry
  Shift+Up/Down      walk the history of the current mode only
  Alt+Up/Down        walk the command history, then return to the line you left
  Ctrl+C             clear the line, or leave on an empty line
  Ctrl+D             leave on an empty line

While a funcall is open, the hint line shows its operator's signature with
the argument under the cursor highlighted.`

// inputMode selects whether the line is a statement or an editor command.
type inputMode int

const (
	modeEval inputMode = iota
	modeCtrl
)

// prefix marks the mode of an entry in the history file.
func (m inputMode) prefix() string {
	if m == modeCtrl {
		return "C:"
	}

	return "E:"
}

func (m inputMode) prompt() string {
	if m == modeCtrl {
		return ctrlPromptStyle.Render(ctrlPrompt)
	}

	return evalPromptStyle.Render(evalPrompt)
}

// draft is a line under edit.
type draft struct {
	text   string
	cursor int
}

// completion tracks the candidates for the word at the cursor.
type completion struct {
	matches    fuzzy.Matches
	start, end int   // byte span of the word being completed
	sel        int   // selected candidate while cycling, else -1
	cycling    bool  // Tab has replaced the word with a candidate
	before     draft // line before cycling began
}

// recall tracks the position in history.
type recall struct {
	pos     int // entry shown in the input; the history length on a fresh line
	alt     bool
	altMode inputMode // mode to restore when Alt navigation runs out
	altLine draft
}

// model is the bubbletea model of the line editor.
type model struct {
	ctx     func() context.Context
	cfg     config
	history *History
	input   textinput.Model
	mode    inputMode
	drafts  [2]draft // the other mode's line, indexed by inputMode
	comp    completion
	nav     recall
	width   int
	done    bool
	err     error // internal error that ended the session
}

// Run starts the interactive line editor with its history kept in cacheDir.
//
// Turns behave as in [Loop]: grammar and evaluation errors are shown and the
// session continues, while an internal error ends the session and is
// returned.
func Run(ctx context.Context, cacheDir string, opts ...Option) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	cfg := makeConfig(opts...)

	history := NewHistory(filepath.Join(cacheDir, baseHistory))
	if err := history.Load(); err != nil {
		cfg.logger.WarnContext(ctx, "history not loaded",
			slog.String("path", history.Path()),
			slog.Any("error", err))
	}

	cfg.logger.TraceContext(ctx, "line editor start",
		slog.String("history", history.Path()),
		slog.Int("entries", history.Len()))

	final, err := tea.NewProgram(newModel(ctx, cfg, history), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if m, ok := final.(model); ok {
		return m.err
	}

	return nil
}

const defaultWidth = 80

func newModel(ctx context.Context, cfg config, history *History) model {
	in := textinput.New()
	in.Prompt = modeEval.prompt()
	in.CharLimit = maxLineSize
	in.Width = defaultWidth
	in.Focus()

	return model{
		ctx:     func() context.Context { return ctx },
		cfg:     cfg,
		history: history,
		input:   in,
		mode:    modeEval,
		comp:    completion{sel: -1},
		nav:     recall{pos: history.Len()},
		width:   defaultWidth,
	}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-len(evalPrompt)-2, 1)

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.done {
		return ""
	}

	return m.input.View() + "\n" + m.hint() + "\n"
}

// hint is the line under the input.
func (m model) hint() string {
	line := m.input.Value()

	if m.nav.pos < m.history.Len() {
		return hintStyle.Render(fmt.Sprintf("%s/%d",
			hintBoldStyle.Render(strconv.Itoa(m.nav.pos+1)), m.history.Len()))
	}

	if strings.TrimSpace(line) == "" {
		if m.mode == modeCtrl {
			return hintStyle.Render("Type: " + strings.Join(ctrlCommands, ", ") +
				" (press Esc to return)")
		}

		return hintStyle.Render("Type a statement or press Esc for commands")
	}

	if m.mode == modeEval {
		call := detectFunctionCall(line, m.input.Position())
		if !call.inCall {
			return ""
		}

		sig, params := getSignature(call.name)
		if sig == "" {
			return hintStyle.Render(fmt.Sprintf("unknown function %q (builtins: %s)",
				call.name, strings.Join(lang.Builtins(), " ")))
		}

		return renderSignatureHint(sig, params, call.argIndex)
	}

	sel := -1
	if m.comp.cycling {
		sel = m.comp.sel
	}

	return renderCandidateBar(m.comp.matches, sel, m.width)
}

// submit runs the line in the input.
func (m model) submit() (model, tea.Cmd) {
	line := m.input.Value()
	if strings.TrimSpace(line) == "" {
		return m, nil
	}

	if _, err := m.history.Write(line, m.mode); err != nil {
		m.cfg.logger.WarnContext(m.ctx(), "history not written", slog.Any("error", err))
	}

	m.drafts = [2]draft{}
	m.input.SetValue("")
	m.nav.pos = m.history.Len()
	m.refresh(false)

	if m.mode == modeCtrl {
		return m.command(strings.TrimSpace(line))
	}

	echo := tea.Println(m.mode.prompt() + echoStyle.Render(line))

	if line == quitCommand {
		m.done = true

		return m, tea.Sequence(echo, tea.Quit)
	}

	out, err := evaluate(m.ctx(), line, m.cfg)

	switch {
	case lang.IsInternal(err):
		m.err, m.done = err, true

		return m, tea.Sequence(echo, printError(err), tea.Quit)

	case err != nil:
		return m, tea.Sequence(echo, printError(err))

	case out == "":
		return m, echo
	}

	return m, tea.Sequence(echo, tea.Println(resultStyle.Render(out)))
}

func printError(err error) tea.Cmd {
	return tea.Println(errorStyle.Render("error: " + err.Error()))
}

// command runs an editor command.
func (m model) command(line string) (model, tea.Cmd) {
	name, _, _ := strings.Cut(line, " ")

	m.cfg.logger.TraceContext(m.ctx(), "editor command", slog.String("line", line))

	echo := tea.Println(m.mode.prompt() + echoStyle.Render(line))

	switch name {
	case "quit", "q", "exit":
		m.done = true

		return m, tea.Sequence(echo, tea.Quit)

	case "help", "h":
		return m, tea.Sequence(echo, tea.Println(helpText))

	case "history":
		return m, tea.Sequence(echo, tea.Println(m.historyView()))

	case "clear", "c":
		return m, tea.ClearScreen
	}

	return m, tea.Sequence(echo,
		tea.Println(errorStyle.Render(fmt.Sprintf("unknown command %q (try help)", name))))
}

// historyView numbers the statements in history, oldest first.
func (m model) historyView() string {
	var lines []string

	for _, e := range m.history.Entries() {
		if e.Mode == modeEval {
			n := hintStyle.Render(fmt.Sprintf("%4d", len(lines)+1))
			lines = append(lines, "  "+n+" "+e.Line)
		}
	}

	if len(lines) == 0 {
		return hintStyle.Render("  (empty)")
	}

	return strings.Join(lines, "\n")
}
