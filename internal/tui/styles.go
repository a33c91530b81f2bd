// Package tui provides the terminal user interface for mescal.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/mescal/internal/tui/theme"
)

// Default cell width - recalculated from the terminal width.
const defaultCellWidth = 5

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorSelected    lipgloss.Color
	colorDisabled    lipgloss.Color
	colorToday       lipgloss.Color
	colorWarning     lipgloss.Color

	colorSelectedBg lipgloss.Color
	colorDisabledBg lipgloss.Color
	colorWeekendBg  lipgloss.Color

	colorTextOnSelected lipgloss.Color
	colorTextOnWarning  lipgloss.Color

	// Month title and navigation symbols
	TitleStyle lipgloss.Style
	NavStyle   lipgloss.Style

	// Weekday header
	HeaderStyle        lipgloss.Style
	HeaderWeekendStyle lipgloss.Style

	// Day cells
	CellStyle         lipgloss.Style
	CellWeekendStyle  lipgloss.Style
	CellTodayStyle    lipgloss.Style
	CellSelectedStyle lipgloss.Style
	CellDisabledStyle lipgloss.Style
	CellBlankStyle    lipgloss.Style

	// Grid borders
	BorderStyle lipgloss.Style

	// Prompt box
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style

	// Status and help lines
	StatusStyle      lipgloss.Style
	StatusErrorStyle lipgloss.Style
	HelpStyle        lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorSelected = palette.Selected
	s.colorDisabled = palette.Disabled
	s.colorToday = palette.Today
	s.colorWarning = palette.Warning

	s.colorSelectedBg = palette.SelectedBg
	s.colorDisabledBg = palette.DisabledBg
	s.colorWeekendBg = palette.WeekendBg

	s.colorTextOnSelected = palette.TextOnSelected
	s.colorTextOnWarning = palette.TextOnWarning

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.NavStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Padding(0, 1)

	s.HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Foreground(s.colorFg).
		Background(s.colorBgHighlight).
		Width(defaultCellWidth)

	s.HeaderWeekendStyle = s.HeaderStyle.
		Foreground(s.colorFgMuted)

	s.CellStyle = lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(s.colorFg).
		Background(s.colorBg).
		Width(defaultCellWidth)

	s.CellWeekendStyle = s.CellStyle.
		Foreground(s.colorFgMuted).
		Background(s.colorWeekendBg)

	// Today keeps its background so weekend shading still shows through
	s.CellTodayStyle = s.CellStyle.
		Foreground(s.colorToday).
		Bold(true).
		Underline(true)

	s.CellSelectedStyle = s.CellStyle.
		Background(s.colorSelectedBg).
		Foreground(s.colorTextOnSelected).
		Bold(true)

	s.CellDisabledStyle = s.CellStyle.
		Background(s.colorDisabledBg).
		Foreground(s.colorDisabled).
		Strikethrough(true)

	s.CellBlankStyle = s.CellStyle

	s.BorderStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.PromptStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		BorderBackground(s.colorBg).
		Background(s.colorBgHighlight).
		Foreground(s.colorFg).
		Padding(0, 1)

	s.PromptFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		BorderBackground(s.colorBg).
		Background(s.colorBgSelection).
		Foreground(s.colorFg).
		Bold(true).
		Padding(0, 1)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.StatusErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorTextOnWarning).
		Background(s.colorWarning).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		Padding(appPaddingY, appPaddingX)

	return s
}

// CellStyleWidth returns the style for a cell of the given kind at width.
func (s *Styles) CellStyleWidth(kind cellKind, width int) lipgloss.Style {
	switch kind {
	case cellWeekend:
		return s.CellWeekendStyle.Width(width)
	case cellToday:
		return s.CellTodayStyle.Width(width)
	case cellSelected:
		return s.CellSelectedStyle.Width(width)
	case cellDisabled:
		return s.CellDisabledStyle.Width(width)
	case cellBlank:
		return s.CellBlankStyle.Width(width)
	default:
		return s.CellStyle.Width(width)
	}
}

// HeaderStyleWidth returns the weekday header style at width.
func (s *Styles) HeaderStyleWidth(width int, weekend bool) lipgloss.Style {
	if weekend {
		return s.HeaderWeekendStyle.Width(width)
	}
	return s.HeaderStyle.Width(width)
}
