package grid

import "strconv"

// Names holds the abbreviation tables used for titles and day headers.
// Arrays are copied on assignment, so a Names value cannot be mutated
// through another holder.
type Names struct {
	Days   [DaysPerWeek]string
	Months [12]string
}

var defaultNames = Names{
	Days:   [DaysPerWeek]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	Months: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

// DefaultNames returns the English three-letter tables.
func DefaultNames() Names {
	return defaultNames
}

// Day returns the abbreviation for a weekday index, wrapping out-of-range values.
func (n Names) Day(weekday int) string {
	return n.Days[mod(weekday, DaysPerWeek)]
}

// Month returns the abbreviation for a 0-based month, wrapping out-of-range values.
func (n Names) Month(month int) string {
	return n.Months[mod(month, 12)]
}

// Title builds the header title, e.g. "Jan - 2024".
func Title(n Names, month, year int) string {
	return n.Month(month) + " - " + strconv.Itoa(year)
}

// HeaderLabels returns the day abbreviations in column order for weekStarts.
func HeaderLabels(n Names, weekStarts int) [DaysPerWeek]string {
	var labels [DaysPerWeek]string
	for i := range labels {
		labels[i] = n.Day(weekStarts + i)
	}
	return labels
}
