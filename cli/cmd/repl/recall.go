package repl

// show puts history entry i in the input.
func (m *model) show(i int, e HistoryEntry) {
	m.nav.pos = i
	m.restore(draft{text: e.Line, cursor: len(e.Line)})
	m.refresh(false)
}

// fresh leaves history for an empty line.
func (m *model) fresh() {
	m.nav.pos = m.history.Len()
	m.input.SetValue("")
	m.refresh(false)
}

// step moves through all of history by step, adopting the mode of each
// entry. Stepping past the newest entry gives an empty line.
func (m model) step(step int) model {
	i := m.nav.pos + step

	e, err := m.history.GetEntry(i)
	if err != nil {
		if step > 0 && m.nav.pos < m.history.Len() {
			m.fresh()
		}

		return m
	}

	if e.Mode != m.mode {
		m = m.switchToMode(e.Mode)
	}

	m.show(i, e)

	return m
}

// find returns the nearest entry in mode from the current position in the
// direction of step.
func (m model) find(step int, mode inputMode) (int, HistoryEntry, bool) {
	for i := m.nav.pos + step; i >= 0 && i < m.history.Len(); i += step {
		if e, err := m.history.GetEntry(i); err == nil && e.Mode == mode {
			return i, e, true
		}
	}

	return 0, HistoryEntry{}, false
}

// modeStep moves through the entries of the current mode only.
func (m model) modeStep(step int) model {
	if i, e, ok := m.find(step, m.mode); ok {
		m.show(i, e)
	} else if step > 0 && m.nav.pos < m.history.Len() {
		m.fresh()
	}

	return m
}

// altStep moves through command entries from any mode. The first step
// switches to command mode; running off either end returns to the mode and
// line where navigation began.
func (m model) altStep(step int) model {
	if !m.nav.alt {
		m.nav.alt = true
		m.nav.altMode = m.mode
		m.nav.altLine = m.line()

		if m.mode != modeCtrl {
			m = m.switchToMode(modeCtrl)
		}
	}

	if i, e, ok := m.find(step, modeCtrl); ok {
		m.show(i, e)

		return m
	}

	m.nav.alt = false

	if m.mode != m.nav.altMode {
		m = m.switchToMode(m.nav.altMode)
	}

	m.restore(m.nav.altLine)
	m.nav.pos = m.history.Len()
	m.refresh(false)

	return m
}
