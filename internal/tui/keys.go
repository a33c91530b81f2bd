package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/mescal/internal/calendar"
	"github.com/javiermolinar/mescal/internal/dateutil"
	"github.com/javiermolinar/mescal/internal/tui/commands"
	"github.com/javiermolinar/mescal/internal/tui/input"
)

const (
	statusDuration      = 3 * time.Second
	errorStatusDuration = 5 * time.Second
	historyLimit        = 5
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.logKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v := m.screen.view

	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Month navigation goes through the view's actions, as a click would
	case "n", ">", "right":
		return m.runAction(v.Next, "next month")
	case "p", "<", "left":
		return m.runAction(v.Previous, "previous month")

	// Prompts
	case "g":
		return m.openPrompt("/select ")
	case "x":
		return m.openPrompt("/disable ")
	case "u":
		return m.openPrompt("/enable ")
	case "/", ":":
		return m.openPrompt("/")

	case "y":
		return m.copySelected()
	}
	return m, nil
}

func (m Model) openPrompt(value string) (tea.Model, tea.Cmd) {
	m.logModeChange(m.mode, ModePrompt, "open prompt")
	m.mode = ModePrompt
	m.prompt.SetValue(value)
	m.prompt.CursorEnd()
	cmd := m.prompt.Focus()
	return m, cmd
}

func (m *Model) closePrompt(reason string) {
	m.logModeChange(m.mode, ModeNormal, reason)
	m.mode = ModeNormal
	m.prompt.Blur()
	m.prompt.SetValue("")
}

// handlePromptKeys handles keys in prompt mode.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt("cancel")
		return m, nil

	case "enter":
		value := m.prompt.Value()
		m.closePrompt("submit")
		return m.handlePromptSubmit(value)

	case "tab":
		if completion, ok := input.PromptAutocomplete(m.prompt.Value(), promptCommands); ok {
			m.prompt.SetValue(completion)
			m.prompt.CursorEnd()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// handlePromptSubmit processes the submitted prompt.
func (m Model) handlePromptSubmit(value string) (tea.Model, tea.Cmd) {
	name, args, ok := input.ParseCommand(value)
	if !ok {
		return m, nil
	}
	v := m.screen.view

	switch name {
	case "/select", "/s":
		day, err := strconv.Atoi(args)
		if err != nil {
			return m.withError(fmt.Errorf("not a day: %q", args))
		}
		return m.runAction(calendar.SelectAction(day), "select")

	case "/disable", "/d":
		days, err := dateutil.ParseDayList(args)
		if err != nil {
			return m.withError(err)
		}
		return m.disableDays(days)

	case "/enable", "/e":
		days, err := dateutil.ParseDayList(args)
		if err != nil {
			return m.withError(err)
		}
		if err := m.session.EnableDays(context.Background(), days...); err != nil {
			return m.withError(err)
		}
		m.logState("enable")
		return m.withStatus("Enabled " + joinDays(days))

	case "/next", "/n":
		return m.runAction(v.Next, "next month")
	case "/prev", "/p":
		return m.runAction(v.Previous, "previous month")
	case "/copy":
		return m.copySelected()
	case "/log":
		return m, commands.LoadNotifications(m.repo, historyLimit)
	case "/help":
		names := make([]string, 0, len(promptCommands))
		for _, c := range promptCommands {
			names = append(names, c.Name)
		}
		return m.withStatus("Commands: " + strings.Join(names, ", "))
	default:
		return m.withError(fmt.Errorf("unknown command: %s", name))
	}
}

// runAction invokes a widget action and reports the outcome on the status line.
func (m Model) runAction(action calendar.Action, reason string) (tea.Model, tea.Cmd) {
	if action == nil {
		return m, nil
	}
	if err := action(m.widget()); err != nil {
		return m.withError(err)
	}
	m.logState(reason)
	if err := m.unreportedStorageErr(); err != nil {
		m.reportedErr = err
		return m.withError(err)
	}
	return m.withStatus("Selected " + m.widget().Date().Format("Mon 2006-01-02"))
}

func (m Model) disableDays(days []int) (tea.Model, tea.Cmd) {
	err := m.session.DisableDays(context.Background(), days...)
	m.logState("disable")

	var derr *calendar.DisableError
	switch {
	case errors.As(err, &derr):
		return m.withError(fmt.Errorf("not in %s: %s", m.widget().Title(), joinDays(derr.Rejected)))
	case err != nil:
		return m.withError(err)
	}
	return m.withStatus("Disabled " + joinDays(days))
}

func (m Model) copySelected() (tea.Model, tea.Cmd) {
	date := m.widget().Date().Format("2006-01-02")
	return m, commands.Copy(date, m.writeClip)
}

// unreportedStorageErr returns the session's storage failure if it has not
// been shown yet.
func (m Model) unreportedStorageErr() error {
	err := m.session.Err()
	if err == nil || err == m.reportedErr {
		return nil
	}
	return err
}

func (m Model) withStatus(msg string) (tea.Model, tea.Cmd) {
	m.statusMsg = msg
	m.statusErr = false
	m.statusTime = time.Now().Add(statusDuration)
	return m, commands.ClearStatusAfter(statusDuration)
}

func (m Model) withError(err error) (tea.Model, tea.Cmd) {
	m.statusMsg = "Error: " + err.Error()
	m.statusErr = true
	m.statusTime = time.Now().Add(errorStatusDuration)
	return m, commands.ClearStatusAfter(errorStatusDuration)
}

func joinDays(days []int) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ", ")
}
