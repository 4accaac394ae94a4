package domain

import "github.com/helloakshay27/fm-matrix-revamp-sub008/internal/constants"

// AxisSpec describes the constraint on one recurrence axis.
// Exactly one mode is active per axis at any time; Selected is only
// meaningful when the mode requires an explicit value set, RangeStart and
// RangeEnd only when the mode is between.
type AxisSpec struct {
	// Mode selects how this axis constrains the recurrence.
	Mode constants.AxisMode `json:"mode"`

	// Selected holds the explicit values for the axis, in selection order.
	// Meaning depends on the axis: zero-padded clock values, weekday names,
	// day-of-month numbers, or month names.
	Selected []string `json:"selected"`

	// RangeStart and RangeEnd bound a between-mode constraint, inclusive.
	RangeStart string `json:"range_start"`
	RangeEnd   string `json:"range_end"`
}

// TimeSpecification carries the four independent axis descriptors built by
// the Time Setup wizard step. The cron compiler folds it into a five-field
// expression.
type TimeSpecification struct {
	Minute AxisSpec `json:"minute"`
	Hour   AxisSpec `json:"hour"`
	Day    AxisSpec `json:"day"`
	Month  AxisSpec `json:"month"`
}

// Clone returns a structural copy of the time specification.
func (ts TimeSpecification) Clone() TimeSpecification {
	out := ts
	out.Minute.Selected = append([]string(nil), ts.Minute.Selected...)
	out.Hour.Selected = append([]string(nil), ts.Hour.Selected...)
	out.Day.Selected = append([]string(nil), ts.Day.Selected...)
	out.Month.Selected = append([]string(nil), ts.Month.Selected...)
	return out
}
