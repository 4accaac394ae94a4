package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/constants"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/errors"
)

// newOutputCmd returns a bare command carrying the output flag the run
// functions read.
func newOutputCmd(format string) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().String("output", format, "")
	return cmd
}

// TestTimeSpecFromFlags verifies the flag-to-axis folding.
func TestTimeSpecFromFlags(t *testing.T) {
	t.Run("empty flags leave every axis unset", func(t *testing.T) {
		spec, err := timeSpecFromFlags(&cronFlags{})
		require.NoError(t, err)
		assert.Equal(t, constants.ModeUnset, spec.Minute.Mode)
		assert.Equal(t, constants.ModeUnset, spec.Hour.Mode)
		assert.Equal(t, constants.ModeUnset, spec.Day.Mode)
		assert.Equal(t, constants.ModeUnset, spec.Month.Mode)
	})

	t.Run("specific minutes and hour range", func(t *testing.T) {
		spec, err := timeSpecFromFlags(&cronFlags{
			minutes:   []string{"00", "30"},
			hourRange: "09-18",
		})
		require.NoError(t, err)
		assert.Equal(t, constants.ModeSpecific, spec.Minute.Mode)
		assert.Equal(t, []string{"00", "30"}, spec.Minute.Selected)
		assert.Equal(t, constants.ModeBetween, spec.Hour.Mode)
		assert.Equal(t, "09", spec.Hour.RangeStart)
		assert.Equal(t, "18", spec.Hour.RangeEnd)
	})

	t.Run("weekdays resolve to the weekday mode", func(t *testing.T) {
		spec, err := timeSpecFromFlags(&cronFlags{weekdays: []string{"Monday", "Friday"}})
		require.NoError(t, err)
		assert.Equal(t, constants.ModeWeekdays, spec.Day.Mode)
		assert.Equal(t, []string{"Monday", "Friday"}, spec.Day.Selected)
	})

	t.Run("unknown weekday is rejected", func(t *testing.T) {
		_, err := timeSpecFromFlags(&cronFlags{weekdays: []string{"Funday"}})
		require.ErrorIs(t, err, errors.ErrValueOutOfRange)
	})

	t.Run("days of month", func(t *testing.T) {
		spec, err := timeSpecFromFlags(&cronFlags{days: []string{"1", "15"}})
		require.NoError(t, err)
		assert.Equal(t, constants.ModeSpecific, spec.Day.Mode)
		assert.Equal(t, []string{"1", "15"}, spec.Day.Selected)
	})

	t.Run("unknown month is rejected", func(t *testing.T) {
		_, err := timeSpecFromFlags(&cronFlags{months: []string{"Smarch"}})
		require.ErrorIs(t, err, errors.ErrValueOutOfRange)
	})

	t.Run("month range", func(t *testing.T) {
		spec, err := timeSpecFromFlags(&cronFlags{monthRange: "January-June"})
		require.NoError(t, err)
		assert.Equal(t, constants.ModeBetween, spec.Month.Mode)
		assert.Equal(t, "January", spec.Month.RangeStart)
		assert.Equal(t, "June", spec.Month.RangeEnd)
	})

	t.Run("malformed month range is rejected", func(t *testing.T) {
		_, err := timeSpecFromFlags(&cronFlags{monthRange: "January"})
		require.ErrorIs(t, err, errors.ErrValueOutOfRange)
	})
}

// TestRunCronPreview verifies the compiled expression output.
func TestRunCronPreview(t *testing.T) {
	t.Run("text output prints the expression", func(t *testing.T) {
		var buf bytes.Buffer
		err := runCronPreview(newOutputCmd(OutputText), &cronFlags{
			minutes:   []string{"00", "30"},
			hourRange: "09-18",
		}, &buf)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "00,30 09-18 * * *")
	})

	t.Run("weekdays force day-of-month to question mark", func(t *testing.T) {
		var buf bytes.Buffer
		err := runCronPreview(newOutputCmd(OutputText), &cronFlags{
			weekdays: []string{"Monday", "Friday"},
		}, &buf)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "* * ? * 2,6")
	})

	t.Run("days of month force day-of-week to question mark", func(t *testing.T) {
		var buf bytes.Buffer
		err := runCronPreview(newOutputCmd(OutputText), &cronFlags{
			days: []string{"1", "15"},
		}, &buf)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "* * 1,15 * ?")
	})

	t.Run("json output carries fields and enabled flags", func(t *testing.T) {
		var buf bytes.Buffer
		err := runCronPreview(newOutputCmd(OutputJSON), &cronFlags{
			minutes:    []string{"15"},
			monthRange: "January-June",
		}, &buf)
		require.NoError(t, err)

		var result cronPreviewResult
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, "15 * * 1-6 *", result.Expression)
		assert.Equal(t, "15", result.Minute)
		assert.Equal(t, "1-6", result.Month)
		assert.Equal(t, "on", result.MinuteEnabled)
		assert.Equal(t, "off", result.HourEnabled)
		assert.Equal(t, "off", result.DayEnabled)
		assert.Equal(t, "on", result.MonthEnabled)
	})

	t.Run("bad weekday surfaces the range error", func(t *testing.T) {
		var buf bytes.Buffer
		err := runCronPreview(newOutputCmd(OutputText), &cronFlags{
			weekdays: []string{"Funday"},
		}, &buf)
		require.ErrorIs(t, err, errors.ErrValueOutOfRange)
	})
}
