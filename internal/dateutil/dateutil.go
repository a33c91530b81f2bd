// Package dateutil provides date parsing and validation utilities.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/javiermolinar/mescal/internal/grid"
)

// Validation errors.
var (
	ErrInvalidMonthFormat = errors.New("month must be YYYY-MM, YYYY-MM-DD, a keyword (this, next, prev) or an offset like +2")
	ErrInvalidWeekday     = errors.New("weekday must be a day name (monday, mon, ...) or an index 0-6 starting on sunday")
	ErrInvalidDayList     = errors.New("days must be a comma-separated list of numbers or ranges like 7,9-11")
)

// weekdayMap maps weekday names to grid weekday indexes.
var weekdayMap = map[string]int{
	"sunday":    grid.Sunday,
	"monday":    grid.Monday,
	"tuesday":   grid.Tuesday,
	"wednesday": grid.Wednesday,
	"thursday":  grid.Thursday,
	"friday":    grid.Friday,
	"saturday":  grid.Saturday,
}

var weekdayNames = [grid.DaysPerWeek]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

var titleCaser = cases.Title(language.English)

// maxMonthDay bounds range endpoints in day lists.
const maxMonthDay = 31

// ParseWeekday parses a weekday name, a three-letter prefix, or an index
// 0-6 (0 = sunday). Matching is case-insensitive.
func ParseWeekday(s string) (int, error) {
	input := strings.ToLower(strings.TrimSpace(s))
	if idx, ok := weekdayMap[input]; ok {
		return idx, nil
	}
	if len(input) == 3 {
		for i, name := range weekdayNames {
			if strings.HasPrefix(name, input) {
				return i, nil
			}
		}
	}
	if n, err := strconv.Atoi(input); err == nil && n >= 0 && n < grid.DaysPerWeek {
		return n, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
}

// WeekdayName returns the lowercase name used in config files.
func WeekdayName(idx int) string {
	return weekdayNames[grid.NormalizeWeekday(idx)]
}

// WeekdayDisplayName returns the title-cased weekday name, e.g. "Monday".
func WeekdayDisplayName(idx int) string {
	return titleCaser.String(WeekdayName(idx))
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FirstOfMonth returns midnight on the 1st of t's month.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// ParseMonth parses a month reference relative to a date:
//   - Empty string, "this" or "today": the date itself
//   - "next", "prev", "previous", "last": one month away, day 1
//   - Offsets: "+3", "-12", day 1
//   - Absolute: "2024-02" (day 1) or "2024-02-14"
//
// The day is kept only when the input names it (empty, "today" or a full date).
func ParseMonth(s string, relativeTo time.Time) (time.Time, error) {
	today := TruncateToDay(relativeTo)
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return today, nil
	case "this":
		return FirstOfMonth(today), nil
	case "next":
		return shiftMonth(today, 1), nil
	case "prev", "previous", "last":
		return shiftMonth(today, -1), nil
	}

	if strings.HasPrefix(input, "+") || strings.HasPrefix(input, "-") {
		n, err := strconv.Atoi(input)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMonthFormat, s)
		}
		return shiftMonth(today, n), nil
	}

	if t, err := time.ParseInLocation("2006-01-02", input, relativeTo.Location()); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01", input, relativeTo.Location()); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMonthFormat, s)
}

func shiftMonth(t time.Time, delta int) time.Time {
	month, year := grid.AdvanceMonth(int(t.Month())-1, t.Year(), delta)
	return time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, t.Location())
}

// ParseDayList parses "7", "7,8" or "7,10-12" into day numbers in input
// order. Range endpoints must lie in 1-31; single days are not range
// checked, that is left to the caller's month.
func ParseDayList(s string) ([]int, error) {
	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, isRange := strings.Cut(part, "-")
		if !isRange {
			d, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidDayList, part)
			}
			days = append(days, d)
			continue
		}
		from, err1 := strconv.Atoi(strings.TrimSpace(lo))
		to, err2 := strconv.Atoi(strings.TrimSpace(hi))
		if err1 != nil || err2 != nil || to < from || from < 1 || to > maxMonthDay {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDayList, part)
		}
		for d := from; d <= to; d++ {
			days = append(days, d)
		}
	}
	if len(days) == 0 {
		return nil, ErrInvalidDayList
	}
	return days, nil
}

// ParseDayArgs parses each argument with ParseDayList and concatenates them.
func ParseDayArgs(args []string) ([]int, error) {
	var days []int
	for _, a := range args {
		d, err := ParseDayList(a)
		if err != nil {
			return nil, err
		}
		days = append(days, d...)
	}
	return days, nil
}
