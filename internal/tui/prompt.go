// Package tui provides the terminal user interface for mescal.
package tui

import (
	"github.com/javiermolinar/mescal/internal/tui/input"
	"github.com/javiermolinar/mescal/internal/tui/view"
)

var promptCommands = []input.PromptCommand{
	{Name: "/select", Args: "DAY", Description: "Select a day of the month"},
	{Name: "/disable", Args: "DAYS", Description: "Disable days, e.g. 6,7,20-21"},
	{Name: "/enable", Args: "DAYS", Description: "Enable disabled days"},
	{Name: "/next", Description: "Show the next month"},
	{Name: "/prev", Description: "Show the previous month"},
	{Name: "/copy", Description: "Copy the selected date"},
	{Name: "/log", Description: "Show recent notifications"},
	{Name: "/help", Description: "Show available commands"},
}

// promptCursor returns the cursor character if in prompt mode.
func (m Model) promptCursor() string {
	if m.mode == ModePrompt {
		return "_"
	}
	return ""
}

func (m Model) promptLines(contentWidth int) []string {
	state := view.PromptState{
		Value:      m.prompt.Value(),
		Cursor:     m.promptCursor(),
		ModePrompt: m.mode == ModePrompt,
	}
	return view.PromptLines(state, contentWidth, promptCommands)
}
