package cron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/constants"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/domain"
)

func TestCompile_Unconstrained(t *testing.T) {
	r := Compile(domain.TimeSpecification{})

	assert.Equal(t, "* * * * *", r.Expression())
	assert.False(t, r.MinuteEnabled)
	assert.False(t, r.HourEnabled)
	assert.False(t, r.DayEnabled)
	assert.False(t, r.MonthEnabled)
}

func TestCompile_WeekdayMode(t *testing.T) {
	spec := domain.TimeSpecification{
		Day: domain.AxisSpec{
			Mode:     constants.ModeWeekdays,
			Selected: []string{"Monday", "Friday"},
		},
	}

	r := Compile(spec)

	assert.Equal(t, "2,6", r.DayOfWeek)
	assert.Equal(t, NotApplicable, r.DayOfMonth)
	assert.True(t, r.DayEnabled)
	assert.Equal(t, "* * ? * 2,6", r.Expression())
}

func TestCompile_DayOfMonthMode(t *testing.T) {
	spec := domain.TimeSpecification{
		Day: domain.AxisSpec{
			Mode:     constants.ModeSpecific,
			Selected: []string{"1", "15"},
		},
	}

	r := Compile(spec)

	assert.Equal(t, "1,15", r.DayOfMonth)
	assert.Equal(t, NotApplicable, r.DayOfWeek)
}

func TestCompile_DayAxesMutuallyExclusive(t *testing.T) {
	weekday := Compile(domain.TimeSpecification{
		Day: domain.AxisSpec{Mode: constants.ModeWeekdays, Selected: []string{"Sunday"}},
	})
	require.Equal(t, NotApplicable, weekday.DayOfMonth)
	require.NotEqual(t, NotApplicable, weekday.DayOfWeek)

	dom := Compile(domain.TimeSpecification{
		Day: domain.AxisSpec{Mode: constants.ModeSpecific, Selected: []string{"3"}},
	})
	require.Equal(t, NotApplicable, dom.DayOfWeek)
	require.NotEqual(t, NotApplicable, dom.DayOfMonth)
}

func TestCompile_MinuteSpecific(t *testing.T) {
	spec := domain.TimeSpecification{
		Minute: domain.AxisSpec{
			Mode:     constants.ModeSpecific,
			Selected: []string{"00", "30"},
		},
	}

	r := Compile(spec)

	assert.Equal(t, "00,30", r.Minute)
	assert.True(t, r.MinuteEnabled)
}

func TestCompile_HourBetween(t *testing.T) {
	spec := domain.TimeSpecification{
		Hour: domain.AxisSpec{
			Mode:       constants.ModeBetween,
			RangeStart: "09",
			RangeEnd:   "18",
		},
	}

	r := Compile(spec)

	assert.Equal(t, "09-18", r.Hour)
	assert.True(t, r.HourEnabled)
}

func TestCompile_MonthBetween(t *testing.T) {
	spec := domain.TimeSpecification{
		Month: domain.AxisSpec{
			Mode:       constants.ModeBetween,
			RangeStart: "January",
			RangeEnd:   "June",
		},
	}

	r := Compile(spec)

	assert.Equal(t, "1-6", r.Month)
	assert.True(t, r.MonthEnabled)
}

func TestCompile_MonthSpecific(t *testing.T) {
	spec := domain.TimeSpecification{
		Month: domain.AxisSpec{
			Mode:     constants.ModeSpecific,
			Selected: []string{"March", "September"},
		},
	}

	r := Compile(spec)

	assert.Equal(t, "3,9", r.Month)
}

func TestCompile_MonthAll(t *testing.T) {
	spec := domain.TimeSpecification{
		Month: domain.AxisSpec{Mode: constants.ModeAll},
	}

	r := Compile(spec)

	assert.Equal(t, Wildcard, r.Month)
	assert.False(t, r.MonthEnabled)
}

func TestCompile_EmptySelectionCompilesToWildcard(t *testing.T) {
	// A mode that requires explicit values but has none compiles to the
	// wildcard; rejecting that state is the validator's job, not ours.
	spec := domain.TimeSpecification{
		Minute: domain.AxisSpec{Mode: constants.ModeSpecific},
		Month:  domain.AxisSpec{Mode: constants.ModeSpecific},
	}

	r := Compile(spec)

	assert.Equal(t, Wildcard, r.Minute)
	assert.Equal(t, Wildcard, r.Month)
	assert.False(t, r.MinuteEnabled)
	assert.False(t, r.MonthEnabled)
}

func TestCompile_UnknownNamesAreSkipped(t *testing.T) {
	spec := domain.TimeSpecification{
		Day: domain.AxisSpec{
			Mode:     constants.ModeWeekdays,
			Selected: []string{"Monday", "Blursday"},
		},
	}

	r := Compile(spec)

	assert.Equal(t, "2", r.DayOfWeek)
}

func TestCompile_Deterministic(t *testing.T) {
	spec := domain.TimeSpecification{
		Minute: domain.AxisSpec{Mode: constants.ModeSpecific, Selected: []string{"15", "45"}},
		Hour:   domain.AxisSpec{Mode: constants.ModeBetween, RangeStart: "08", RangeEnd: "20"},
		Day:    domain.AxisSpec{Mode: constants.ModeWeekdays, Selected: []string{"Tuesday", "Thursday"}},
		Month:  domain.AxisSpec{Mode: constants.ModeBetween, RangeStart: "February", RangeEnd: "November"},
	}

	first := Compile(spec)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Compile(spec))
	}
	assert.Equal(t, "15,45 08-20 ? 2-11 3,5", first.Expression())
}

func TestOnOff(t *testing.T) {
	assert.Equal(t, "on", OnOff(true))
	assert.Equal(t, "off", OnOff(false))
}
