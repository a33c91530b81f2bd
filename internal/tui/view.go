package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/mescal/internal/calendar"
	"github.com/javiermolinar/mescal/internal/grid"
	"github.com/javiermolinar/mescal/internal/tui/view"
)

// View renders the TUI.
func (m Model) View() string {
	return view.Render(view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      m.renderAppContent(),
		EmptyPlaceholder: "Loading...",
	})
}

func (m Model) renderAppContent() string {
	layout := m.layoutCache
	if layout.InnerW <= 0 || layout.InnerH <= 0 {
		return "Terminal too small"
	}

	month := m.renderMonth(layout)
	footer := view.RenderFooter(m.footerModel(layout))

	content := lipgloss.JoinVertical(lipgloss.Left, month, "", footer)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

func (m Model) renderMonth(layout LayoutCache) string {
	v := m.screen.view
	key := monthKey{
		Title:    v.Title,
		Header:   v.Header,
		Previous: v.PreviousSymbol,
		Next:     v.NextSymbol,
		Rows:     viewCells(v),
		CellW:    layout.CellW,
		Today:    m.todayInView(),
		Theme:    m.theme.Name,
	}
	return m.renderCache.Month(key, func() string {
		return view.RenderMonth(m.monthViewState(layout, key))
	})
}

func (m Model) monthViewState(layout LayoutCache, key monthKey) view.MonthViewState {
	weekStarts := m.widget().WeekStarts()

	var headerStyles [grid.DaysPerWeek]lipgloss.Style
	for col := range headerStyles {
		headerStyles[col] = m.styleCache.Header
		if isWeekend(weekStarts, col) {
			headerStyles[col] = m.styleCache.HeaderWeekend
		}
	}

	rows := make([][]string, len(key.Rows))
	cellStyles := make([][]lipgloss.Style, len(key.Rows))
	for i, week := range key.Rows {
		labels := make([]string, len(week))
		styles := make([]lipgloss.Style, grid.DaysPerWeek)
		for col := range styles {
			styles[col] = m.styleCache.Cells[cellBlank]
		}
		for col, c := range week {
			if !c.IsBlank() {
				labels[col] = strconv.Itoa(c.Day)
			}
			styles[col] = m.styleCache.Cells[classifyCell(c, isWeekend(weekStarts, col), key.Today)]
		}
		rows[i] = view.PadRow(labels)
		cellStyles[i] = styles
	}

	return view.MonthViewState{
		Title:          key.Title,
		PreviousSymbol: key.Previous,
		NextSymbol:     key.Next,
		Header:         key.Header,
		HeaderStyles:   headerStyles,
		Rows:           rows,
		CellStyles:     cellStyles,
		CellW:          layout.CellW,
		TitleStyle:     m.styles.TitleStyle,
		NavStyle:       m.styles.NavStyle,
		BorderStyle:    m.styles.BorderStyle,
		Bg:             m.styles.colorBg,
	}
}

func (m Model) footerModel(layout LayoutCache) view.FooterModel {
	statusStyle := m.styles.StatusStyle
	if m.statusErr {
		statusStyle = m.styles.StatusErrorStyle
	}

	return view.FooterModel{
		InnerW:           layout.InnerW,
		StatusText:       m.statusText(),
		HelpText:         m.renderHelp(),
		PromptLines:      m.promptLines(layout.PromptContentWidth),
		PromptMax:        promptMaxLines,
		PromptFocus:      m.mode == ModePrompt,
		ShowPrompt:       m.mode == ModePrompt,
		StatusStyle:      statusStyle,
		HelpStyle:        m.styles.HelpStyle,
		PromptStyle:      m.styles.PromptStyle,
		PromptFocusStyle: m.styles.PromptFocusedStyle,
		Bg:               m.styles.colorBg,
	}
}

// statusText returns the temporary status message, or a summary of the
// selection when there is none.
func (m Model) statusText() string {
	if m.statusMsg != "" {
		return m.statusMsg
	}
	w := m.widget()
	s := w.Date().Format("Monday, January 2, 2006")
	if disabled := w.Disabled(); len(disabled) > 0 {
		s += "  ·  disabled: " + joinDays(disabled)
	}
	return s
}

// renderHelp renders the help bar.
func (m Model) renderHelp() string {
	if m.mode == ModePrompt {
		return "enter run  tab complete  esc cancel"
	}
	opts := m.widget().Options()
	return strings.Join([]string{
		"n/" + opts.NextSymbol + " next",
		"p/" + opts.PreviousSymbol + " prev",
		"g select",
		"x disable",
		"u enable",
		"y copy",
		"/ prompt",
		"q quit",
	}, "  ")
}

// todayInView returns today's day of month when the displayed month is the
// current one, otherwise 0.
func (m Model) todayInView() int {
	now := m.now()
	w := m.widget()
	if now.Year() != w.Year() || int(now.Month())-1 != w.Month() {
		return 0
	}
	return now.Day()
}

func viewCells(v calendar.View) [][]grid.Cell {
	rows := make([][]grid.Cell, len(v.Rows))
	for i, row := range v.Rows {
		cells := make([]grid.Cell, len(row))
		for j, c := range row {
			cells[j] = c.Cell
		}
		rows[i] = cells
	}
	return rows
}

func isWeekend(weekStarts, col int) bool {
	wd := grid.NormalizeWeekday(weekStarts + col)
	return wd == grid.Saturday || wd == grid.Sunday
}

func classifyCell(c grid.Cell, weekend bool, today int) cellKind {
	switch {
	case c.IsBlank():
		return cellBlank
	case c.Disabled:
		return cellDisabled
	case c.Selected:
		return cellSelected
	case c.Day == today:
		return cellToday
	case weekend:
		return cellWeekend
	default:
		return cellDay
	}
}
