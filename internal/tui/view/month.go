package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/javiermolinar/mescal/internal/grid"
)

// MonthBorderWidth is the horizontal space taken by the grid borders:
// left and right edges plus one separator between each pair of columns.
const MonthBorderWidth = grid.DaysPerWeek + 1

// MonthHeaderLines is the number of lines above the first week row:
// the navigation line, the top border, the weekday header and its separator.
const MonthHeaderLines = 4

// MonthWidth returns the rendered width of a month grid with cells of cellW.
func MonthWidth(cellW int) int {
	return grid.DaysPerWeek*cellW + MonthBorderWidth
}

// MonthViewState holds what is needed to render one month.
type MonthViewState struct {
	Title          string
	PreviousSymbol string
	NextSymbol     string
	Header         [grid.DaysPerWeek]string
	HeaderStyles   [grid.DaysPerWeek]lipgloss.Style
	Rows           [][]string // padded to DaysPerWeek columns
	CellStyles     [][]lipgloss.Style
	CellW          int
	TitleStyle     lipgloss.Style
	NavStyle       lipgloss.Style
	BorderStyle    lipgloss.Style
	Bg             lipgloss.Color
}

// RenderMonth renders the navigation line above a bordered weekday grid.
func RenderMonth(state MonthViewState) string {
	width := MonthWidth(state.CellW)

	nav := RenderNav(state, width)

	t := table.New().
		Headers(state.Header[:]...).
		Border(lipgloss.RoundedBorder()).
		BorderTop(true).
		BorderBottom(true).
		BorderLeft(true).
		BorderRight(true).
		BorderHeader(true).
		BorderColumn(true).
		BorderRow(false).
		BorderStyle(state.BorderStyle).
		Rows(state.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				if col >= 0 && col < len(state.HeaderStyles) {
					return state.HeaderStyles[col]
				}
				return lipgloss.NewStyle().Width(state.CellW)
			}
			if row < 0 || row >= len(state.CellStyles) || col < 0 || col >= len(state.CellStyles[row]) {
				return lipgloss.NewStyle().Width(state.CellW)
			}
			return state.CellStyles[row][col]
		})

	return lipgloss.JoinVertical(lipgloss.Left, nav, t.Render())
}

// RenderNav renders "<  title  >" across width.
func RenderNav(state MonthViewState, width int) string {
	prev := state.NavStyle.Render(state.PreviousSymbol)
	next := state.NavStyle.Render(state.NextSymbol)
	titleW := max(0, width-lipgloss.Width(prev)-lipgloss.Width(next))
	title := state.TitleStyle.Width(titleW).Render(state.Title)
	return lipgloss.JoinHorizontal(lipgloss.Top, prev, title, next)
}

// PadRow pads a week row to a full week of blank cells.
func PadRow(cells []string) []string {
	if len(cells) >= grid.DaysPerWeek {
		return cells
	}
	out := make([]string, grid.DaysPerWeek)
	copy(out, cells)
	return out
}
