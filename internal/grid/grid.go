// Package grid computes the cell layout of a month-view calendar.
//
// Months are 0-based (0 = January) and weekdays are 0-based with 0 = Sunday,
// matching the order of the day-name table. Every function is pure: callers
// own all state and the engine never retains what it returns.
package grid

import "time"

// Weekday indexes, in day-name table order.
const (
	Sunday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// DaysPerWeek is the width of every full row.
const DaysPerWeek = 7

// Cell is one slot of the grid. A zero Day marks a blank placeholder.
type Cell struct {
	Day      int
	Selected bool
	Disabled bool
}

// IsBlank reports whether the cell is padding before day 1.
func (c Cell) IsBlank() bool {
	return c.Day == 0
}

// WeekRow is one displayed week. Only the last row of a month may hold
// fewer than seven cells.
type WeekRow []Cell

// DaySet is a set of day-of-month numbers.
type DaySet map[int]struct{}

// NewDaySet builds a set from a list of days.
func NewDaySet(days ...int) DaySet {
	s := make(DaySet, len(days))
	for _, d := range days {
		s[d] = struct{}{}
	}
	return s
}

// Has reports whether day is in the set. A nil set is empty.
func (s DaySet) Has(day int) bool {
	_, ok := s[day]
	return ok
}

// DaysInMonth returns the number of days in month of year.
// Day 0 of the following month is the last day of this one.
func DaysInMonth(month, year int) int {
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOfMonth returns the weekday index (0 = Sunday) of the 1st.
func FirstWeekdayOfMonth(month, year int) int {
	return int(time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// LeadingBlanks returns how many blank cells precede day 1 so that it lands
// in column (first weekday - weekStarts) mod 7.
func LeadingBlanks(month, year, weekStarts int) int {
	first := FirstWeekdayOfMonth(month, year)
	ws := mod(weekStarts, DaysPerWeek)
	if first >= ws {
		return first - ws
	}
	return ((DaysPerWeek - ws) + first) % DaysPerWeek
}

// BuildWeeks lays out the month as week rows: the leading blanks first, then
// one cell per day. Rows break every seventh cell counting the blanks, and
// the final row is never padded.
func BuildWeeks(month, year, weekStarts, selectedDay int, disabled DaySet) []WeekRow {
	blanks := LeadingBlanks(month, year, weekStarts)
	days := DaysInMonth(month, year)

	weeks := make([]WeekRow, 0, rowCount(blanks, days))
	row := make(WeekRow, 0, DaysPerWeek)
	for i := 0; i < blanks; i++ {
		row = append(row, Cell{})
	}

	for day := 1; day <= days; day++ {
		if (day+blanks)%DaysPerWeek == 1 && len(row) > 0 {
			weeks = append(weeks, row)
			row = make(WeekRow, 0, DaysPerWeek)
		}
		row = append(row, Cell{
			Day:      day,
			Selected: day == selectedDay,
			Disabled: disabled.Has(day),
		})
	}

	return append(weeks, row)
}

// RowCount returns how many week rows BuildWeeks produces.
func RowCount(month, year, weekStarts int) int {
	return rowCount(LeadingBlanks(month, year, weekStarts), DaysInMonth(month, year))
}

func rowCount(blanks, days int) int {
	return (blanks + days + DaysPerWeek - 1) / DaysPerWeek
}

// AdvanceMonth moves month by delta months, folding any overflow or
// underflow into the year. delta may be any integer.
func AdvanceMonth(month, year, delta int) (int, int) {
	total := month + delta
	return mod(total, 12), year + floorDiv(total, 12)
}

// NormalizeWeekday folds any integer into a weekday index in [0,6].
func NormalizeWeekday(d int) int {
	return mod(d, DaysPerWeek)
}

// mod is the non-negative remainder of a / n.
func mod(a, n int) int {
	return ((a % n) + n) % n
}

func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && (a < 0) != (n < 0) {
		q--
	}
	return q
}
