package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// handleMouseMsg resolves left clicks against the layout and invokes the
// action bound to whatever was hit.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeNormal {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	h := m.layoutCache.hitTest(msg.X, msg.Y)
	m.logClick(msg, h)

	v := m.screen.view
	switch h.kind {
	case hitPrevious:
		return m.runAction(v.Previous, "click previous")
	case hitNext:
		return m.runAction(v.Next, "click next")
	case hitCell:
		cell, ok := v.Cell(h.row, h.col)
		if !ok || cell.IsBlank() {
			return m, nil
		}
		if cell.OnClick == nil {
			return m.withStatus(fmt.Sprintf("Day %d is disabled", cell.Day))
		}
		return m.runAction(cell.OnClick, "click day")
	}
	return m, nil
}
