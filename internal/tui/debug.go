package tui

import tea "github.com/charmbracelet/bubbletea"

// logKeyPress logs a key press event.
func (m Model) logKeyPress(msg tea.KeyMsg) {
	m.logger.Debug("key press",
		"key", msg.String(),
		"type", msg.Type.String(),
		"mode", m.mode.String(),
	)
}

// logModeChange logs a mode change.
func (m Model) logModeChange(from, to Mode, reason string) {
	m.logger.Debug("mode change",
		"from", from.String(),
		"to", to.String(),
		"reason", reason,
	)
}

// logClick logs a mouse press and what it hit.
func (m Model) logClick(msg tea.MouseMsg, h hit) {
	m.logger.Debug("mouse press",
		"x", msg.X,
		"y", msg.Y,
		"event", tea.MouseEvent(msg).String(),
		"target", h.kind.String(),
		"row", h.row,
		"col", h.col,
	)
}

// logState logs the calendar state after an action.
func (m Model) logState(reason string) {
	w := m.widget()
	m.logger.Debug("state",
		"reason", reason,
		"year", w.Year(),
		"month", w.Month(),
		"day", w.SelectedDay(),
		"disabled", w.Disabled(),
		"draws", m.screen.draws,
	)
}

func (k hitKind) String() string {
	switch k {
	case hitPrevious:
		return "previous"
	case hitNext:
		return "next"
	case hitCell:
		return "cell"
	default:
		return "none"
	}
}
