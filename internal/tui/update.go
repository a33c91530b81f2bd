package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/mescal/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutCache = m.buildLayoutCache(m.width, m.height)
		m.styleCache = NewStyleCache(m.styles, m.layoutCache.CellW)
		m.renderCache.Invalidate()
		return m, nil

	case commands.ErrMsg:
		return m.withError(msg.Err)

	case commands.StatusMsg:
		return m.withStatus(msg.Msg)

	case commands.CopiedMsg:
		return m.withStatus("Copied " + msg.Text)

	case commands.NotificationsMsg:
		if len(msg.Notifications) == 0 {
			return m.withStatus("No notifications recorded")
		}
		parts := make([]string, 0, len(msg.Notifications))
		for _, n := range msg.Notifications {
			parts = append(parts, fmt.Sprintf("%s %s", n.Event, n.Date.Format("2006-01-02")))
		}
		return m.withStatus("Recent: " + strings.Join(parts, " · "))

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil
	}

	// Cursor blink and other prompt-internal messages
	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}
