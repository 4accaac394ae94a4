// Package cron compiles a wizard TimeSpecification into a five-field
// cron-style expression.
//
// The compiler is a pure function: same input, same output, no side effects.
// Field order is `minute hour day-of-month month day-of-week`. `*` means
// unconstrained; `?` means "not applicable because the other day axis is
// active" (day-of-month and day-of-week are mutually exclusive, standard
// cron convention).
//
// Absence of explicit values under a selecting mode compiles to the
// unconstrained wildcard for that field. That is deliberate: missing values
// are a validation concern, not a compilation one.
package cron

import (
	"strconv"
	"strings"

	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/constants"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/domain"
)

// Wildcard is the unconstrained field value.
const Wildcard = "*"

// NotApplicable marks the inactive member of the day-of-month/day-of-week pair.
const NotApplicable = "?"

// Result holds the compiled cron fields plus the per-axis enabled flags the
// wire payload carries alongside the expression.
type Result struct {
	// Minute, Hour, DayOfMonth, Month and DayOfWeek are the five fields.
	Minute     string
	Hour       string
	DayOfMonth string
	Month      string
	DayOfWeek  string

	// MinuteEnabled, HourEnabled, DayEnabled and MonthEnabled report whether
	// the axis contributes an explicit constraint. The backend expects these
	// as on/off flags in addition to the compiled expression.
	MinuteEnabled bool
	HourEnabled   bool
	DayEnabled    bool
	MonthEnabled  bool
}

// Expression returns the five-field space-separated cron expression.
func (r Result) Expression() string {
	return strings.Join([]string{r.Minute, r.Hour, r.DayOfMonth, r.Month, r.DayOfWeek}, " ")
}

// Compile maps a TimeSpecification to its cron fields.
func Compile(spec domain.TimeSpecification) Result {
	r := Result{
		Minute:     Wildcard,
		Hour:       Wildcard,
		DayOfMonth: Wildcard,
		Month:      Wildcard,
		DayOfWeek:  Wildcard,
	}

	r.Minute = compileClockAxis(spec.Minute)
	r.MinuteEnabled = r.Minute != Wildcard

	r.Hour = compileClockAxis(spec.Hour)
	r.HourEnabled = r.Hour != Wildcard

	r.DayOfMonth, r.DayOfWeek = compileDayAxis(spec.Day)
	r.DayEnabled = r.DayOfMonth != Wildcard || r.DayOfWeek != Wildcard

	r.Month = compileMonthAxis(spec.Month)
	r.MonthEnabled = r.Month != Wildcard

	return r
}

// compileClockAxis handles the minute and hour axes (modes: specific, between).
func compileClockAxis(axis domain.AxisSpec) string {
	switch axis.Mode {
	case constants.ModeSpecific:
		return joinOrWildcard(axis.Selected)
	case constants.ModeBetween:
		return rangeOrWildcard(axis.RangeStart, axis.RangeEnd)
	default:
		return Wildcard
	}
}

// compileDayAxis handles the day axis (modes: weekdays, specific). The two
// day fields are mutually exclusive: whichever side is active forces the
// other to `?`.
func compileDayAxis(axis domain.AxisSpec) (dayOfMonth, dayOfWeek string) {
	switch axis.Mode {
	case constants.ModeWeekdays:
		nums := make([]string, 0, len(axis.Selected))
		for _, name := range axis.Selected {
			if n := constants.WeekdayNumber(name); n > 0 {
				nums = append(nums, strconv.Itoa(n))
			}
		}
		if len(nums) == 0 {
			return NotApplicable, Wildcard
		}
		return NotApplicable, strings.Join(nums, ",")
	case constants.ModeSpecific:
		if len(axis.Selected) == 0 {
			return Wildcard, NotApplicable
		}
		return strings.Join(axis.Selected, ","), NotApplicable
	default:
		return Wildcard, Wildcard
	}
}

// compileMonthAxis handles the month axis (modes: specific, between, all).
func compileMonthAxis(axis domain.AxisSpec) string {
	switch axis.Mode {
	case constants.ModeSpecific:
		nums := make([]string, 0, len(axis.Selected))
		for _, name := range axis.Selected {
			if n := constants.MonthNumber(name); n > 0 {
				nums = append(nums, strconv.Itoa(n))
			}
		}
		if len(nums) == 0 {
			return Wildcard
		}
		return strings.Join(nums, ",")
	case constants.ModeBetween:
		start := constants.MonthNumber(axis.RangeStart)
		end := constants.MonthNumber(axis.RangeEnd)
		if start == 0 || end == 0 {
			return Wildcard
		}
		return strconv.Itoa(start) + "-" + strconv.Itoa(end)
	default:
		// ModeAll and unset both leave the field unconstrained.
		return Wildcard
	}
}

// joinOrWildcard comma-joins values, falling back to the wildcard when empty.
func joinOrWildcard(values []string) string {
	if len(values) == 0 {
		return Wildcard
	}
	return strings.Join(values, ",")
}

// rangeOrWildcard emits "start-end", falling back to the wildcard when either
// endpoint is missing.
func rangeOrWildcard(start, end string) string {
	if start == "" || end == "" {
		return Wildcard
	}
	return start + "-" + end
}

// OnOff renders an enabled flag in the on/off form the wire payload expects.
func OnOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
