package constants

import "strings"

// Axis identifies one independent axis of the recurrence time specification.
type Axis string

// Recurrence axes.
const (
	// AxisMinute is the minute-of-hour axis.
	AxisMinute Axis = "minute"

	// AxisHour is the hour-of-day axis.
	AxisHour Axis = "hour"

	// AxisDay is the day axis (weekday names or day-of-month numbers).
	AxisDay Axis = "day"

	// AxisMonth is the month axis.
	AxisMonth Axis = "month"
)

// AxisMode selects how an axis constrains the recurrence.
// Exactly one mode is active per axis at any time; which modes are legal
// depends on the axis (minute/hour: specific or between; day: weekdays or
// specific; month: specific, between or all).
type AxisMode string

// Axis mode constants.
const (
	// ModeUnset means the axis carries no constraint yet.
	ModeUnset AxisMode = ""

	// ModeSpecific constrains the axis to an explicit value set.
	ModeSpecific AxisMode = "specific"

	// ModeBetween constrains the axis to an inclusive start-end range.
	ModeBetween AxisMode = "between"

	// ModeWeekdays constrains the day axis to named weekdays.
	ModeWeekdays AxisMode = "weekdays"

	// ModeAll leaves the axis unconstrained.
	ModeAll AxisMode = "all"
)

// weekdayNumbers maps weekday names to the 1-7 cron numbering (Sunday=1).
var weekdayNumbers = map[string]int{
	"sunday":    1,
	"monday":    2,
	"tuesday":   3,
	"wednesday": 4,
	"thursday":  5,
	"friday":    6,
	"saturday":  7,
}

// monthNumbers maps month names to the 1-12 cron numbering.
var monthNumbers = map[string]int{
	"january":   1,
	"february":  2,
	"march":     3,
	"april":     4,
	"may":       5,
	"june":      6,
	"july":      7,
	"august":    8,
	"september": 9,
	"october":   10,
	"november":  11,
	"december":  12,
}

// WeekdayNumber resolves a weekday name to its 1-7 cron number (Sunday=1).
// Matching is case-insensitive. Returns 0 for unknown names.
func WeekdayNumber(name string) int {
	return weekdayNumbers[strings.ToLower(strings.TrimSpace(name))]
}

// MonthNumber resolves a month name to its 1-12 cron number.
// Matching is case-insensitive. Returns 0 for unknown names.
func MonthNumber(name string) int {
	return monthNumbers[strings.ToLower(strings.TrimSpace(name))]
}

// WeekdayNames lists weekday names in cron numbering order (Sunday first).
func WeekdayNames() []string {
	return []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
}

// MonthNames lists month names in calendar order.
func MonthNames() []string {
	return []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
}
