// Package tui provides the terminal user interface for mescal.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/mescal/internal/grid"
	"github.com/javiermolinar/mescal/internal/tui/view"
)

const (
	appPaddingX = 2
	appPaddingY = 1

	minCellWidth = 4
	maxCellWidth = 9

	footerLines       = 2 // status + help
	promptBorderLines = 2
	promptMaxLines    = 4
)

// LayoutCache stores layout dimensions derived from the window size. It is
// also what mouse clicks are resolved against.
type LayoutCache struct {
	InnerW int
	InnerH int

	CellW   int
	MonthW  int
	OriginX int // left edge of the month block
	OriginY int // navigation line

	PrevW int // width of the rendered previous symbol
	NextW int // width of the rendered next symbol

	PromptContentWidth int
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	appH, appV := m.styles.AppStyle.GetFrameSize()
	innerW := max(0, width-appH)
	innerH := max(0, height-appV)

	cellW := defaultCellWidth
	if width > 0 {
		cellW = (innerW - view.MonthBorderWidth) / grid.DaysPerWeek
		cellW = min(max(cellW, minCellWidth), maxCellWidth)
	}

	opts := m.widget().Options()
	promptFrameW, _ := m.styles.PromptStyle.GetFrameSize()

	return LayoutCache{
		InnerW:             innerW,
		InnerH:             innerH,
		CellW:              cellW,
		MonthW:             view.MonthWidth(cellW),
		OriginX:            appPaddingX,
		OriginY:            appPaddingY,
		PrevW:              lipgloss.Width(m.styles.NavStyle.Render(opts.PreviousSymbol)),
		NextW:              lipgloss.Width(m.styles.NavStyle.Render(opts.NextSymbol)),
		PromptContentWidth: max(0, innerW-promptFrameW),
	}
}

type hitKind int

const (
	hitNone hitKind = iota
	hitPrevious
	hitNext
	hitCell
)

// hit is the target under a terminal coordinate.
type hit struct {
	kind     hitKind
	row, col int
}

// hitTest maps a terminal cell to the navigation symbols or a grid cell.
// Borders and separators hit nothing.
func (l LayoutCache) hitTest(x, y int) hit {
	if y == l.OriginY {
		switch {
		case x >= l.OriginX && x < l.OriginX+l.PrevW:
			return hit{kind: hitPrevious}
		case x >= l.OriginX+l.MonthW-l.NextW && x < l.OriginX+l.MonthW:
			return hit{kind: hitNext}
		}
		return hit{}
	}

	row := y - l.OriginY - view.MonthHeaderLines
	rel := x - l.OriginX - 1
	if row < 0 || rel < 0 || l.CellW <= 0 {
		return hit{}
	}
	stride := l.CellW + 1
	col := rel / stride
	if rel%stride == l.CellW || col >= grid.DaysPerWeek {
		return hit{}
	}
	return hit{kind: hitCell, row: row, col: col}
}
