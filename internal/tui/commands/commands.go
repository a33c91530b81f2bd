// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/mescal/internal/store"
)

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsg is sent for temporary status messages.
type StatusMsg struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// CopiedMsg is sent after text was written to the clipboard.
type CopiedMsg struct {
	Text string
}

// NotificationsMsg carries the most recent recorded notifications.
type NotificationsMsg struct {
	Notifications []*store.Notification
}

// ClearStatusAfter clears the status line once d has elapsed.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// Copy writes text with write, normally clipboard.WriteAll.
func Copy(text string, write func(string) error) tea.Cmd {
	return func() tea.Msg {
		if err := write(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return CopiedMsg{Text: text}
	}
}

// LoadNotifications loads up to limit recorded notifications, newest first.
func LoadNotifications(repo store.Repository, limit int) tea.Cmd {
	return func() tea.Msg {
		ns, err := repo.ListNotifications(context.Background(), limit)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading notifications: %w", err)}
		}
		return NotificationsMsg{Notifications: ns}
	}
}
