package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/mescal/internal/calendar"
	"github.com/javiermolinar/mescal/internal/grid"
)

// textTarget is the only mount target the printed calendar offers.
const textTarget = "#calendar"

// cellWidth is the printed width of one day column, e.g. "[17]".
const cellWidth = 4

// textRenderer records the widget's latest view; commands print it once
// they are done mutating the widget.
type textRenderer struct {
	view  calendar.View
	draws int
}

var _ calendar.Renderer = (*textRenderer)(nil)

func newTextRenderer() *textRenderer {
	return &textRenderer{}
}

func (r *textRenderer) Mount(selector string) error {
	if selector != textTarget {
		return fmt.Errorf("%w: %q", calendar.ErrMissingMountTarget, selector)
	}
	return nil
}

func (r *textRenderer) Draw(v calendar.View) error {
	r.view = v
	r.draws++
	return nil
}

// printMonth writes the navigation line, weekday header and week rows of v,
// followed by the selection summary.
//
//	<    Jan - 2024    >
//	 Mon Tue Wed Thu Fri Sat Sun
//	   1   2   3   4   5 ( 6)( 7)
//	   8   9  10  11  12  13  14
//	  15  16[17]  18 ...
//
// Brackets mark the selected day and parentheses disabled days, so the
// output stays readable with colors off.
func printMonth(out io.Writer, w *calendar.Widget, v calendar.View, now time.Time) {
	width := grid.DaysPerWeek * cellWidth
	weekStarts := w.WeekStarts()
	today := 0
	if now.Year() == w.Year() && int(now.Month())-1 == w.Month() {
		today = now.Day()
	}

	var b strings.Builder
	b.WriteString(navLine(v, width))
	b.WriteByte('\n')

	for col, label := range v.Header {
		cell := runewidth.FillLeft(runewidth.Truncate(label, cellWidth-1, ""), cellWidth)
		if isWeekendColumn(weekStarts, col) {
			cell = formatMuted(cell)
		} else {
			cell = formatHeader(cell)
		}
		b.WriteString(cell)
	}
	b.WriteByte('\n')

	for _, row := range v.Rows {
		for col, c := range row {
			b.WriteString(styleCell(c.Cell, isWeekendColumn(weekStarts, col), today))
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	fmt.Fprintf(&b, "%s %s\n", formatHeader("Selected:"), w.Date().Format("Monday, January 2, 2006"))
	if disabled := w.Disabled(); len(disabled) > 0 {
		fmt.Fprintf(&b, "%s %s\n", formatHeader("Disabled:"), joinDays(disabled))
	}

	_, _ = io.WriteString(out, b.String())
}

// navLine centers the title between the previous and next symbols.
func navLine(v calendar.View, width int) string {
	prev := v.PreviousSymbol
	next := v.NextSymbol
	inner := max(0, width-runewidth.StringWidth(prev)-runewidth.StringWidth(next))
	title := runewidth.Truncate(v.Title, inner, "…")
	pad := inner - runewidth.StringWidth(title)
	left := pad / 2
	return colorNav.Sprint(prev) +
		strings.Repeat(" ", left) + formatHeader(title) + strings.Repeat(" ", pad-left) +
		colorNav.Sprint(next)
}

// cellText returns the uncolored, padded text of a cell.
func cellText(c grid.Cell) string {
	switch {
	case c.IsBlank():
		return strings.Repeat(" ", cellWidth)
	case c.Disabled:
		return fmt.Sprintf("(%2d)", c.Day)
	case c.Selected:
		return fmt.Sprintf("[%2d]", c.Day)
	default:
		return fmt.Sprintf("%*d", cellWidth, c.Day)
	}
}

func styleCell(c grid.Cell, weekend bool, today int) string {
	text := cellText(c)
	switch {
	case c.IsBlank():
		return text
	case c.Disabled:
		return colorDisabled.Sprint(text)
	case c.Selected:
		return colorSelected.Sprint(text)
	case c.Day == today:
		return colorToday.Sprint(text)
	case weekend:
		return formatMuted(text)
	default:
		return text
	}
}

func isWeekendColumn(weekStarts, col int) bool {
	wd := grid.NormalizeWeekday(weekStarts + col)
	return wd == grid.Saturday || wd == grid.Sunday
}

func joinDays(days []int) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ", ")
}
