package repl

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.cfg.logger.TraceContext(m.ctx(), "editor key", slog.String("key", msg.String()))

	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			return m.quit()
		}

		m.input.SetValue("")
		m.comp.cycling, m.nav.alt = false, false
		m.nav.pos = m.history.Len()
		m.refresh(false)

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			return m.quit()
		}

		return m, nil

	case tea.KeyEnter:
		m.nav.alt = false

		if m.comp.cycling && len(m.comp.matches) > 0 {
			// Keep the candidate without running the line.
			m.comp.cycling = false
			m.refresh(true)

			return m, nil
		}

		return m.submit()

	case tea.KeyTab:
		return m.cycle(1), nil

	case tea.KeyShiftTab:
		return m.cycle(-1), nil

	case tea.KeyUp:
		if msg.Alt {
			return m.altStep(-1), nil
		}

		return m.step(-1), nil

	case tea.KeyDown:
		if msg.Alt {
			return m.altStep(1), nil
		}

		return m.step(1), nil

	case tea.KeyShiftUp:
		return m.modeStep(-1), nil

	case tea.KeyShiftDown:
		return m.modeStep(1), nil

	case tea.KeyEsc:
		if m.comp.cycling {
			m.comp.cycling = false
			m.restore(m.comp.before)
			m.refresh(false)

			return m, nil
		}

		m.nav.alt = false

		return m.switchToMode(1 - m.mode), nil

	case tea.KeyRunes, tea.KeySpace:
		if msg.Type == tea.KeySpace {
			m.comp.cycling = false
		}

		m.nav.pos = m.history.Len()

		var cmd tea.Cmd

		m.input, cmd = m.input.Update(msg)
		m.refresh(true)

		return m, cmd
	}

	// Deleting or moving the cursor never confirms a completion.
	m.comp.cycling, m.nav.alt = false, false
	m.nav.pos = m.history.Len()

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	m.refresh(false)

	return m, cmd
}

func (m model) quit() (model, tea.Cmd) {
	m.done = true

	return m, tea.Quit
}

func (m *model) restore(d draft) {
	m.input.SetValue(d.text)
	m.input.SetCursor(d.cursor)
}

func (m model) line() draft {
	return draft{text: m.input.Value(), cursor: m.input.Position()}
}

// cycle moves the candidate selection by step. A sole candidate is
// completed at once.
func (m model) cycle(step int) model {
	n := len(m.comp.matches)

	switch {
	case n == 0:
		return m

	case n == 1:
		m.complete(m.comp.matches[0].Str)

		return m

	case m.comp.cycling:
		m.comp.sel = (m.comp.sel + step + n) % n

	default:
		m.comp.cycling = true
		m.comp.before = m.line()
		m.comp.sel = 0

		if step < 0 {
			m.comp.sel = n - 1
		}
	}

	m.replaceWord(m.comp.matches[m.comp.sel].Str)

	return m
}

// complete replaces the word with s and closes the candidate list.
func (m *model) complete(s string) {
	m.replaceWord(s)
	m.comp.cycling = false
	m.comp.sel = -1
	m.comp.matches = nil
}

func (m *model) replaceWord(s string) {
	line := m.input.Value()
	end := m.comp.start + len(s)

	m.input.SetValue(line[:m.comp.start] + s + line[m.comp.end:])
	m.input.SetCursor(end)

	m.comp.end = end
}

// refresh recomputes the candidates after an edit. With confirm set, a word
// that already spells its only candidate is completed.
func (m *model) refresh(confirm bool) {
	m.comp.matches, m.comp.start, m.comp.end = m.computeMatches()

	if !m.comp.cycling {
		m.comp.sel = -1
	}

	if !confirm || len(m.comp.matches) != 1 {
		return
	}

	if only := m.comp.matches[0].Str; m.input.Value()[m.comp.start:m.comp.end] == only {
		m.complete(only)
	}
}

// switchToMode changes the input mode, parking the current line and
// restoring the one last edited in mode.
func (m model) switchToMode(mode inputMode) model {
	m.drafts[m.mode] = m.line()
	m.mode = mode
	m.input.Prompt = mode.prompt()
	m.restore(m.drafts[mode])
	m.refresh(false)

	return m
}
