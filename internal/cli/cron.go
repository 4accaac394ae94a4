package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/constants"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/cron"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/domain"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/errors"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/tui"
)

// cronFlags holds the axis selections for cron preview.
type cronFlags struct {
	minutes     []string
	minuteRange string
	hours       []string
	hourRange   string
	weekdays    []string
	days        []string
	months      []string
	monthRange  string
}

// AddCronCommand adds the cron command group to the root command.
func AddCronCommand(root *cobra.Command) {
	cronCmd := &cobra.Command{
		Use:   "cron",
		Short: "Work with recurrence expressions",
	}
	cronCmd.AddCommand(newCronPreviewCmd())
	root.AddCommand(cronCmd)
}

func newCronPreviewCmd() *cobra.Command {
	flags := &cronFlags{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Compile a recurrence into its cron expression",
		Long: `Build a recurrence from axis flags and print the compiled five-field
cron expression (minute hour day-of-month month day-of-week).

Day-of-month and day-of-week are mutually exclusive: selecting weekdays
forces day-of-month to '?', and vice versa. An axis with no flag compiles
to the unconstrained '*'.

Examples:
  fmsched cron preview --minutes 00,30 --hour-range 09-18
  fmsched cron preview --weekdays Monday,Friday --months January,June
  fmsched cron preview --days 1,15 --month-range January-June --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCronPreview(cmd, flags, os.Stdout)
		},
	}

	cmd.Flags().StringSliceVar(&flags.minutes, "minutes", nil, "specific minutes (e.g. 00,30)")
	cmd.Flags().StringVar(&flags.minuteRange, "minute-range", "", "inclusive minute range (e.g. 00-15)")
	cmd.Flags().StringSliceVar(&flags.hours, "hours", nil, "specific hours (e.g. 09,14)")
	cmd.Flags().StringVar(&flags.hourRange, "hour-range", "", "inclusive hour range (e.g. 09-18)")
	cmd.Flags().StringSliceVar(&flags.weekdays, "weekdays", nil, "weekday names (e.g. Monday,Friday)")
	cmd.Flags().StringSliceVar(&flags.days, "days", nil, "day-of-month numbers (e.g. 1,15)")
	cmd.Flags().StringSliceVar(&flags.months, "months", nil, "month names (e.g. January,June)")
	cmd.Flags().StringVar(&flags.monthRange, "month-range", "", "inclusive month-name range (e.g. January-June)")
	cmd.MarkFlagsMutuallyExclusive("minutes", "minute-range")
	cmd.MarkFlagsMutuallyExclusive("hours", "hour-range")
	cmd.MarkFlagsMutuallyExclusive("weekdays", "days")
	cmd.MarkFlagsMutuallyExclusive("months", "month-range")

	return cmd
}

// cronPreviewResult is the JSON shape of the preview output.
type cronPreviewResult struct {
	Expression    string `json:"expression"`
	Minute        string `json:"minute"`
	Hour          string `json:"hour"`
	DayOfMonth    string `json:"day_of_month"`
	Month         string `json:"month"`
	DayOfWeek     string `json:"day_of_week"`
	MinuteEnabled string `json:"minute_enabled"`
	HourEnabled   string `json:"hour_enabled"`
	DayEnabled    string `json:"day_enabled"`
	MonthEnabled  string `json:"month_enabled"`
}

func runCronPreview(cmd *cobra.Command, flags *cronFlags, w io.Writer) error {
	spec, err := timeSpecFromFlags(flags)
	if err != nil {
		return err
	}

	compiled := cron.Compile(spec)
	out := tui.NewOutput(w, cmd.Flag("output").Value.String())

	if cmd.Flag("output").Value.String() == OutputJSON {
		return out.JSON(cronPreviewResult{
			Expression:    compiled.Expression(),
			Minute:        compiled.Minute,
			Hour:          compiled.Hour,
			DayOfMonth:    compiled.DayOfMonth,
			Month:         compiled.Month,
			DayOfWeek:     compiled.DayOfWeek,
			MinuteEnabled: cron.OnOff(compiled.MinuteEnabled),
			HourEnabled:   cron.OnOff(compiled.HourEnabled),
			DayEnabled:    cron.OnOff(compiled.DayEnabled),
			MonthEnabled:  cron.OnOff(compiled.MonthEnabled),
		})
	}

	out.Info(compiled.Expression())
	return nil
}

// timeSpecFromFlags folds the axis flags into a TimeSpecification.
func timeSpecFromFlags(flags *cronFlags) (domain.TimeSpecification, error) {
	var spec domain.TimeSpecification

	spec.Minute = clockAxisFromFlags(flags.minutes, flags.minuteRange)
	spec.Hour = clockAxisFromFlags(flags.hours, flags.hourRange)

	switch {
	case len(flags.weekdays) > 0:
		for _, name := range flags.weekdays {
			if constants.WeekdayNumber(name) == 0 {
				return spec, fmt.Errorf("weekday %q: %w", name, errors.ErrValueOutOfRange)
			}
		}
		spec.Day = domain.AxisSpec{Mode: constants.ModeWeekdays, Selected: flags.weekdays}
	case len(flags.days) > 0:
		spec.Day = domain.AxisSpec{Mode: constants.ModeSpecific, Selected: flags.days}
	}

	switch {
	case len(flags.months) > 0:
		for _, name := range flags.months {
			if constants.MonthNumber(name) == 0 {
				return spec, fmt.Errorf("month %q: %w", name, errors.ErrValueOutOfRange)
			}
		}
		spec.Month = domain.AxisSpec{Mode: constants.ModeSpecific, Selected: flags.months}
	case flags.monthRange != "":
		start, end, ok := strings.Cut(flags.monthRange, "-")
		if !ok || constants.MonthNumber(start) == 0 || constants.MonthNumber(end) == 0 {
			return spec, fmt.Errorf("month range %q: %w", flags.monthRange, errors.ErrValueOutOfRange)
		}
		spec.Month = domain.AxisSpec{Mode: constants.ModeBetween, RangeStart: start, RangeEnd: end}
	}

	return spec, nil
}

// clockAxisFromFlags builds a minute or hour axis from its two flag forms.
func clockAxisFromFlags(specific []string, between string) domain.AxisSpec {
	if len(specific) > 0 {
		return domain.AxisSpec{Mode: constants.ModeSpecific, Selected: specific}
	}
	if between != "" {
		start, end, _ := strings.Cut(between, "-")
		return domain.AxisSpec{Mode: constants.ModeBetween, RangeStart: start, RangeEnd: end}
	}
	return domain.AxisSpec{}
}
