package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/constants"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/cron"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/domain"
	fmerrors "github.com/helloakshay27/fm-matrix-revamp-sub008/internal/errors"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/fmapi"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/refdata"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/tui"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/wizard"
)

// errDryRunDone signals that the dry run printed its payload and the loop
// should exit without submitting.
var errDryRunDone = stderrors.New("dry run complete")

// noneValue marks the "(none)" entry of optional selects.
const noneValue = ""

// wizardRunner drives one interactive schedule-definition run: it renders
// the step trail, prompts for the active step's fields and dispatches
// navigation events to the session.
type wizardRunner struct {
	sess     *wizard.Session
	provider *refdata.Provider
	api      *fmapi.Client
	out      tui.Output
	log      zerolog.Logger
	dryRun   bool
}

// Run loops until the session reaches its terminal state. Validation blocks
// re-enter the same step with the violation list shown; a canceled prompt
// offers to abandon the run; a failed submission is reported and retryable.
func (r *wizardRunner) Run(ctx context.Context) error {
	for !r.sess.Finished() {
		if err := ctx.Err(); err != nil {
			return err
		}

		r.out.Info("")
		r.out.Info(tui.StepTrail(r.sess.ActiveStep(), r.completedSteps()))

		err := r.runStep(ctx, r.sess.ActiveStep())
		switch {
		case err == nil:
		case stderrors.Is(err, errDryRunDone):
			return nil
		case stderrors.Is(err, tui.ErrMenuCanceled):
			abandon, cerr := tui.Confirm("Abandon this schedule? All entered data will be lost.", false)
			if cerr != nil || abandon {
				return fmerrors.ErrOperationCanceled
			}
		case stderrors.Is(err, fmerrors.ErrStepBlocked):
			r.out.Warning("Resolve the following before continuing:")
			r.out.ValidationList(r.blockedMessages(err))
		case stderrors.Is(err, fmerrors.ErrSubmitFailed):
			r.out.Error(err)
			r.out.Warning("Nothing was lost. Adjust any step and save again.")
		default:
			return err
		}
	}

	r.sess.WaitPending()
	r.out.Success("Schedule created")
	return nil
}

func (r *wizardRunner) runStep(ctx context.Context, step constants.StepID) error {
	switch step {
	case constants.StepBasicConfig:
		return r.stepBasicConfig(ctx)
	case constants.StepScheduleSetup:
		return r.stepScheduleSetup(ctx)
	case constants.StepQuestionSetup:
		return r.stepQuestionSetup(ctx)
	case constants.StepTimeSetup:
		return r.stepTimeSetup(ctx)
	case constants.StepMapping:
		return r.stepMapping(ctx)
	default:
		return fmt.Errorf("step %d: %w", int(step), fmerrors.ErrInvalidTransition)
	}
}

// blockedMessages returns the full violation list for the active step. A
// SaveAndContinue block spans every step, so it falls back to ValidateAll.
func (r *wizardRunner) blockedMessages(err error) []string {
	if msgs := r.sess.Validate(r.sess.ActiveStep()); len(msgs) > 0 {
		return msgs
	}
	if msgs := r.sess.ValidateAll(); len(msgs) > 0 {
		return msgs
	}
	return []string{err.Error()}
}

func (r *wizardRunner) completedSteps() [constants.StepCount]bool {
	var completed [constants.StepCount]bool
	for step := constants.StepID(0); step < constants.StepCount; step++ {
		completed[step] = r.sess.Completed(step)
	}
	return completed
}

// refOptions lists a reference collection as menu options, substituting the
// built-in placeholders when no backend is configured.
func (r *wizardRunner) refOptions(ctx context.Context, kind refdata.Kind) []tui.Option {
	var items []domain.CatalogItem
	if r.provider != nil {
		items = r.provider.List(ctx, kind)
	} else {
		items = refdata.Placeholders(kind)
	}
	return catalogOptions(items)
}

func catalogOptions(items []domain.CatalogItem) []tui.Option {
	options := make([]tui.Option, 0, len(items))
	for _, item := range items {
		options = append(options, tui.Option{Label: item.Name, Value: item.ID})
	}
	return options
}

// withNone prepends a "(none)" entry so optional selections can be cleared.
func withNone(options []tui.Option) []tui.Option {
	return append([]tui.Option{{Label: "(none)", Value: noneValue}}, options...)
}

func (r *wizardRunner) stepBasicConfig(ctx context.Context) error {
	basic := r.sess.Basic()

	kindOptions := make([]tui.Option, 0, len(constants.ScheduleKinds()))
	for _, kind := range constants.ScheduleKinds() {
		kindOptions = append(kindOptions, tui.Option{Label: kind.String(), Value: string(kind)})
	}
	kind, err := tui.Select("Schedule type", kindOptions)
	if err != nil {
		return err
	}
	basic.Kind = constants.ScheduleKind(kind)

	target, err := tui.Select("Schedule for", []tui.Option{
		{Label: "Asset", Value: string(constants.TargetAsset)},
		{Label: "Service", Value: string(constants.TargetService)},
	})
	if err != nil {
		return err
	}
	basic.Target = constants.TargetType(target)

	name, err := tui.InputWithValidation("Activity name", basic.Name, func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmerrors.ErrEmptyValue
		}
		return nil
	})
	if err != nil {
		return err
	}
	basic.Name = name

	description, err := tui.TextArea("Description", basic.Description)
	if err != nil {
		return err
	}
	basic.Description = description

	r.sess.SetBasic(basic)
	return r.sess.Transition(ctx, wizard.Next{})
}

func (r *wizardRunner) stepScheduleSetup(ctx context.Context) error {
	setup := r.sess.Setup()

	checklistType, err := tui.Select("Checklist type", []tui.Option{
		{Label: "Individual", Value: string(constants.ChecklistIndividual)},
		{Label: "Asset Group", Value: string(constants.ChecklistAssetGroup)},
	})
	if err != nil {
		return err
	}
	setup.ChecklistType = constants.ChecklistType(checklistType)

	if setup.ChecklistType == constants.ChecklistIndividual {
		assetID, err := tui.Select("Asset", r.refOptions(ctx, refdata.KindAsset))
		if err != nil {
			return err
		}
		setup.AssetID = assetID
		setup.GroupID = ""
		setup.SubGroupID = ""
	} else {
		groupID, err := tui.Select("Asset group", r.refOptions(ctx, refdata.KindAssetGroup))
		if err != nil {
			return err
		}
		if groupID != setup.GroupID {
			setup.SubGroupID = ""
		}
		setup.GroupID = groupID
		setup.AssetID = ""

		subGroupID, err := r.promptAssetSubGroup(ctx, groupID)
		if err != nil {
			return err
		}
		setup.SubGroupID = subGroupID
	}

	assignTo, err := tui.Select("Assign to", []tui.Option{
		{Label: "Users", Value: string(constants.AssignToUser)},
		{Label: "User groups", Value: string(constants.AssignToGroup)},
	})
	if err != nil {
		return err
	}
	setup.AssignTo = constants.AssignToType(assignTo)

	if setup.AssignTo == constants.AssignToUser {
		userIDs, err := tui.MultiSelect("Assigned users", r.refOptions(ctx, refdata.KindUser), setup.UserIDs)
		if err != nil {
			return err
		}
		setup.UserIDs = userIDs
		setup.UserGroupIDs = nil
	} else {
		groupIDs, err := tui.MultiSelect("Assigned user groups", r.refOptions(ctx, refdata.KindUserGroup), setup.UserGroupIDs)
		if err != nil {
			return err
		}
		setup.UserGroupIDs = groupIDs
		setup.UserIDs = nil
	}

	backupID, err := tui.Select("Backup assignee", withNone(r.refOptions(ctx, refdata.KindUser)))
	if err != nil {
		return err
	}
	setup.BackupAssigneeID = backupID

	if setup.PlanDuration, err = promptDuration("Plan duration", setup.PlanDuration); err != nil {
		return err
	}
	if setup.SubmissionTime, err = promptDuration("Submission time", setup.SubmissionTime); err != nil {
		return err
	}
	if setup.GraceTime, err = promptDuration("Grace time", setup.GraceTime); err != nil {
		return err
	}

	frequency, err := tui.Select("Frequency", []tui.Option{
		{Label: "Daily", Value: "Daily"},
		{Label: "Weekly", Value: "Weekly"},
		{Label: "Monthly", Value: "Monthly"},
		{Label: "Quarterly", Value: "Quarterly"},
		{Label: "Half Yearly", Value: "Half Yearly"},
		{Label: "Yearly", Value: "Yearly"},
	})
	if err != nil {
		return err
	}
	setup.Frequency = frequency

	if setup.StartDate, err = tui.Input("Start date (YYYY-MM-DD)", setup.StartDate); err != nil {
		return err
	}
	if setup.EndDate, err = tui.Input("End date (YYYY-MM-DD)", setup.EndDate); err != nil {
		return err
	}

	if r.sess.Basic().Kind == constants.KindAMC {
		supplierID, err := tui.Select("AMC supplier", withNone(r.refOptions(ctx, refdata.KindSupplier)))
		if err != nil {
			return err
		}
		setup.SupplierID = supplierID
	}
	if r.sess.Basic().Kind == constants.KindPPM {
		ruleIDs, err := tui.MultiSelect("Email escalation rules", r.refOptions(ctx, refdata.KindEmailRule), setup.EmailRuleIDs)
		if err != nil {
			return err
		}
		setup.EmailRuleIDs = ruleIDs
	}

	r.sess.SetSetup(setup)
	return r.sess.Transition(ctx, wizard.Next{})
}

// promptAssetSubGroup offers the sub-groups of an asset group when a backend
// is available. Fetch failures degrade to no sub-group selection.
func (r *wizardRunner) promptAssetSubGroup(ctx context.Context, groupID string) (string, error) {
	if r.api == nil {
		return "", nil
	}
	items, err := r.api.AssetSubGroups(ctx, groupID)
	if err != nil {
		r.log.Warn().Err(err).Str("group_id", groupID).Msg("asset sub-group fetch failed")
		return "", nil
	}
	if len(items) == 0 {
		return "", nil
	}
	return tui.Select("Asset sub-group", withNone(catalogOptions(items)))
}

// promptDuration collects a unit-plus-magnitude pair. Choosing "(not set)"
// clears the field; choosing a unit then requires a numeric magnitude.
func promptDuration(title string, current domain.DurationField) (domain.DurationField, error) {
	unit, err := tui.Select(title+" unit", []tui.Option{
		{Label: "(not set)", Value: ""},
		{Label: "Minutes", Value: "minutes"},
		{Label: "Hours", Value: "hour"},
		{Label: "Days", Value: "day"},
		{Label: "Weeks", Value: "week"},
		{Label: "Months", Value: "month"},
	})
	if err != nil {
		return current, err
	}
	if unit == "" {
		return domain.DurationField{}, nil
	}

	value, err := tui.Input(title+" value", current.Value)
	if err != nil {
		return current, err
	}
	return domain.DurationField{Unit: unit, Value: value}, nil
}

func (r *wizardRunner) stepQuestionSetup(ctx context.Context) error {
	for {
		sections := r.sess.Sections()

		options := []tui.Option{{Label: "Add section", Value: "add"}}
		for _, section := range sections {
			options = append(options, tui.Option{
				Label:       "Edit section: " + section.Title,
				Description: fmt.Sprintf("%d question(s)", len(section.Tasks)),
				Value:       "section:" + section.ID,
			})
		}
		options = append(options,
			tui.Option{Label: "Continue to Time Setup", Value: "next"},
			tui.Option{Label: "Back to Schedule Setup", Value: "back"},
		)

		choice, err := tui.Select("Question setup", options)
		if err != nil {
			return err
		}

		switch {
		case choice == "add":
			r.sess.AddSection()
		case choice == "next":
			return r.sess.Transition(ctx, wizard.Next{})
		case choice == "back":
			return r.sess.Transition(ctx, wizard.Back{})
		case strings.HasPrefix(choice, "section:"):
			if err := r.editSection(ctx, strings.TrimPrefix(choice, "section:")); err != nil {
				return err
			}
		}
	}
}

// editSection loops over one section's menu until the operator is done.
func (r *wizardRunner) editSection(ctx context.Context, sectionID string) error {
	for {
		section, ok := r.findSection(sectionID)
		if !ok {
			return nil
		}

		options := []tui.Option{
			{Label: "Rename section", Value: "rename"},
			{Label: "Auto-ticket settings", Value: "ticket"},
			{Label: "Add question", Value: "add"},
		}
		for _, task := range section.Tasks {
			label := task.Label
			if label == "" {
				label = "(blank)"
			}
			options = append(options,
				tui.Option{Label: "Edit question: " + label, Value: "edit:" + task.ID},
				tui.Option{Label: "Remove question: " + label, Value: "remove:" + task.ID},
			)
		}
		options = append(options, tui.Option{Label: "Done", Value: "done"})

		choice, err := tui.Select("Section: "+section.Title, options)
		if err != nil {
			return err
		}

		switch {
		case choice == "rename":
			title, err := tui.Input("Section title", section.Title)
			if err != nil {
				return err
			}
			r.sess.UpdateSectionField(sectionID, wizard.SectionFieldTitle, title)
		case choice == "ticket":
			if err := r.editAutoTicket(ctx, section); err != nil {
				return err
			}
		case choice == "add":
			taskID := r.sess.AddTask(sectionID)
			if err := r.editTask(ctx, sectionID, taskID); err != nil {
				return err
			}
		case choice == "done":
			return nil
		case strings.HasPrefix(choice, "edit:"):
			if err := r.editTask(ctx, sectionID, strings.TrimPrefix(choice, "edit:")); err != nil {
				return err
			}
		case strings.HasPrefix(choice, "remove:"):
			r.sess.RemoveTask(sectionID, strings.TrimPrefix(choice, "remove:"))
		}
	}
}

func (r *wizardRunner) editAutoTicket(ctx context.Context, section domain.QuestionSection) error {
	enabled, err := tui.Confirm("Raise tickets automatically for this section?", section.AutoTicket)
	if err != nil {
		return err
	}
	r.sess.UpdateSectionField(section.ID, wizard.SectionFieldAutoTicket, fmt.Sprintf("%t", enabled))
	if !enabled {
		return nil
	}

	level, err := tui.Select("Ticket level", []tui.Option{
		{Label: "One ticket per checklist", Value: string(constants.TicketLevelChecklist)},
		{Label: "One ticket per failing question", Value: string(constants.TicketLevelQuestion)},
	})
	if err != nil {
		return err
	}
	r.sess.UpdateSectionField(section.ID, wizard.SectionFieldTicketLevel, level)

	assignee, err := tui.Select("Ticket assigned to", withNone(r.refOptions(ctx, refdata.KindUser)))
	if err != nil {
		return err
	}
	r.sess.UpdateSectionField(section.ID, wizard.SectionFieldTicketAssignedTo, assignee)

	category, err := tui.Select("Ticket category", withNone(r.refOptions(ctx, refdata.KindHelpdeskCategory)))
	if err != nil {
		return err
	}
	r.sess.UpdateSectionField(section.ID, wizard.SectionFieldTicketCategory, category)
	return nil
}

func (r *wizardRunner) editTask(ctx context.Context, sectionID, taskID string) error {
	task, ok := r.findTask(sectionID, taskID)
	if !ok {
		return nil
	}

	label, err := tui.Input("Question label", task.Label)
	if err != nil {
		return err
	}
	r.sess.UpdateTask(ctx, sectionID, taskID, wizard.TaskFieldLabel, label)

	inputOptions := make([]tui.Option, 0, len(constants.InputTypes()))
	for _, t := range constants.InputTypes() {
		inputOptions = append(inputOptions, tui.Option{Label: string(t), Value: string(t)})
	}
	inputType, err := tui.Select("Input type", inputOptions)
	if err != nil {
		return err
	}
	r.sess.UpdateTask(ctx, sectionID, taskID, wizard.TaskFieldInputType, inputType)

	mandatory, err := tui.Confirm("Mandatory question?", task.Mandatory)
	if err != nil {
		return err
	}
	r.sess.UpdateTask(ctx, sectionID, taskID, wizard.TaskFieldMandatory, fmt.Sprintf("%t", mandatory))

	groupID, err := tui.Select("Task group", withNone(r.refOptions(ctx, refdata.KindTaskGroup)))
	if err != nil {
		return err
	}
	if groupID != task.GroupID {
		r.sess.UpdateTask(ctx, sectionID, taskID, wizard.TaskFieldGroup, groupID)
		// The sub-group fetch runs in the background; wait so the options
		// below reflect the group just chosen.
		r.sess.WaitPending()
	}
	if opts := r.sess.SubGroupOptions(taskID); len(opts) > 0 {
		subGroupID, err := tui.Select("Task sub-group", withNone(catalogOptions(opts)))
		if err != nil {
			return err
		}
		r.sess.UpdateTask(ctx, sectionID, taskID, wizard.TaskFieldSubGroup, subGroupID)
	}

	helpText, err := tui.Confirm("Attach a hint for operators?", task.HelpText)
	if err != nil {
		return err
	}
	r.sess.UpdateTask(ctx, sectionID, taskID, wizard.TaskFieldHelpText, fmt.Sprintf("%t", helpText))
	if helpText {
		hint, err := tui.Input("Hint text", task.HelpTextValue)
		if err != nil {
			return err
		}
		r.sess.UpdateTask(ctx, sectionID, taskID, wizard.TaskFieldHelpTextValue, hint)
	}

	reading, err := tui.Confirm("Meter or gauge reading?", task.Reading)
	if err != nil {
		return err
	}
	r.sess.UpdateTask(ctx, sectionID, taskID, wizard.TaskFieldReading, fmt.Sprintf("%t", reading))

	if r.sess.Flags().WeightageEnabled {
		rating, err := tui.Confirm("Rated question?", task.Rating)
		if err != nil {
			return err
		}
		r.sess.UpdateTask(ctx, sectionID, taskID, wizard.TaskFieldRating, fmt.Sprintf("%t", rating))
		if rating {
			weightage, err := tui.Input("Weightage", task.Weightage)
			if err != nil {
				return err
			}
			r.sess.UpdateTask(ctx, sectionID, taskID, wizard.TaskFieldWeightage, weightage)
		}
	}
	return nil
}

func (r *wizardRunner) stepTimeSetup(ctx context.Context) error {
	spec := r.sess.TimeSpec()
	var err error

	if spec.Minute, err = promptClockAxis("Minutes", minuteValues(), spec.Minute); err != nil {
		return err
	}
	if spec.Hour, err = promptClockAxis("Hours", hourValues(), spec.Hour); err != nil {
		return err
	}
	if spec.Day, err = promptDayAxis(spec.Day); err != nil {
		return err
	}
	if spec.Month, err = promptMonthAxis(spec.Month); err != nil {
		return err
	}
	r.sess.SetTimeSpec(spec)

	compiled := cron.Compile(spec)
	r.out.Info("Cron expression: " + compiled.Expression())

	if r.dryRun {
		if msgs := r.sess.ValidateAll(); len(msgs) > 0 {
			return fmt.Errorf("%s: %w", msgs[0], fmerrors.ErrStepBlocked)
		}
		if err := r.out.JSON(r.sess.Payload()); err != nil {
			return err
		}
		return errDryRunDone
	}

	save, err := tui.Confirm("Save and continue? This submits the schedule.", true)
	if err != nil {
		return err
	}
	if !save {
		return nil
	}
	return r.sess.Transition(ctx, wizard.SaveAndContinue{})
}

// promptClockAxis collects the minute or hour axis: unconstrained, a specific
// value set or an inclusive range.
func promptClockAxis(title string, values []string, current domain.AxisSpec) (domain.AxisSpec, error) {
	mode, err := tui.Select(title, []tui.Option{
		{Label: "Every " + strings.ToLower(title)[:len(title)-1], Value: string(constants.ModeUnset)},
		{Label: "Specific " + strings.ToLower(title), Value: string(constants.ModeSpecific)},
		{Label: "Between", Value: string(constants.ModeBetween)},
	})
	if err != nil {
		return current, err
	}

	switch constants.AxisMode(mode) {
	case constants.ModeSpecific:
		options := make([]tui.Option, 0, len(values))
		for _, v := range values {
			options = append(options, tui.Option{Label: v, Value: v})
		}
		selected, err := tui.MultiSelect(title, options, current.Selected)
		if err != nil {
			return current, err
		}
		return domain.AxisSpec{Mode: constants.ModeSpecific, Selected: selected}, nil
	case constants.ModeBetween:
		start, err := tui.Input(title+" range start", current.RangeStart)
		if err != nil {
			return current, err
		}
		end, err := tui.Input(title+" range end", current.RangeEnd)
		if err != nil {
			return current, err
		}
		return domain.AxisSpec{Mode: constants.ModeBetween, RangeStart: start, RangeEnd: end}, nil
	default:
		return domain.AxisSpec{}, nil
	}
}

// promptDayAxis collects the day axis. Weekday names and day-of-month
// numbers are mutually exclusive constraints.
func promptDayAxis(current domain.AxisSpec) (domain.AxisSpec, error) {
	mode, err := tui.Select("Days", []tui.Option{
		{Label: "Any day", Value: string(constants.ModeUnset)},
		{Label: "Weekdays", Value: string(constants.ModeWeekdays)},
		{Label: "Days of month", Value: string(constants.ModeSpecific)},
	})
	if err != nil {
		return current, err
	}

	switch constants.AxisMode(mode) {
	case constants.ModeWeekdays:
		options := make([]tui.Option, 0, 7)
		for _, name := range constants.WeekdayNames() {
			options = append(options, tui.Option{Label: name, Value: name})
		}
		selected, err := tui.MultiSelect("Weekdays", options, current.Selected)
		if err != nil {
			return current, err
		}
		return domain.AxisSpec{Mode: constants.ModeWeekdays, Selected: selected}, nil
	case constants.ModeSpecific:
		entered, err := tui.Input("Days of month (comma-separated)", strings.Join(current.Selected, ","))
		if err != nil {
			return current, err
		}
		return domain.AxisSpec{Mode: constants.ModeSpecific, Selected: splitList(entered)}, nil
	default:
		return domain.AxisSpec{}, nil
	}
}

// promptMonthAxis collects the month axis.
func promptMonthAxis(current domain.AxisSpec) (domain.AxisSpec, error) {
	mode, err := tui.Select("Months", []tui.Option{
		{Label: "All months", Value: string(constants.ModeUnset)},
		{Label: "Specific months", Value: string(constants.ModeSpecific)},
		{Label: "Between", Value: string(constants.ModeBetween)},
	})
	if err != nil {
		return current, err
	}

	monthOptions := make([]tui.Option, 0, 12)
	for _, name := range constants.MonthNames() {
		monthOptions = append(monthOptions, tui.Option{Label: name, Value: name})
	}

	switch constants.AxisMode(mode) {
	case constants.ModeSpecific:
		selected, err := tui.MultiSelect("Months", monthOptions, current.Selected)
		if err != nil {
			return current, err
		}
		return domain.AxisSpec{Mode: constants.ModeSpecific, Selected: selected}, nil
	case constants.ModeBetween:
		start, err := tui.Select("First month", monthOptions)
		if err != nil {
			return current, err
		}
		end, err := tui.Select("Last month", monthOptions)
		if err != nil {
			return current, err
		}
		return domain.AxisSpec{Mode: constants.ModeBetween, RangeStart: start, RangeEnd: end}, nil
	default:
		return domain.AxisSpec{}, nil
	}
}

func (r *wizardRunner) stepMapping(ctx context.Context) error {
	assetIDs, err := tui.MultiSelect("Map assets to this schedule", r.refOptions(ctx, refdata.KindAsset), r.sess.AssetIDs())
	if err != nil {
		return err
	}
	r.sess.SetAssetIDs(assetIDs)

	done, err := tui.Confirm(fmt.Sprintf("Finish with %d mapped asset(s)?", len(assetIDs)), true)
	if err != nil {
		return err
	}
	if !done {
		return nil
	}
	return r.sess.Transition(ctx, wizard.Finish{})
}

func (r *wizardRunner) findSection(sectionID string) (domain.QuestionSection, bool) {
	for _, section := range r.sess.Sections() {
		if section.ID == sectionID {
			return section, true
		}
	}
	return domain.QuestionSection{}, false
}

func (r *wizardRunner) findTask(sectionID, taskID string) (domain.TaskQuestion, bool) {
	section, ok := r.findSection(sectionID)
	if !ok {
		return domain.TaskQuestion{}, false
	}
	for _, task := range section.Tasks {
		if task.ID == taskID {
			return task, true
		}
	}
	return domain.TaskQuestion{}, false
}

// minuteValues lists the selectable minutes in five-minute increments.
func minuteValues() []string {
	values := make([]string, 0, 12)
	for m := 0; m < 60; m += 5 {
		values = append(values, fmt.Sprintf("%02d", m))
	}
	return values
}

// hourValues lists the 24 selectable hours.
func hourValues() []string {
	values := make([]string, 0, 24)
	for h := 0; h < 24; h++ {
		values = append(values, fmt.Sprintf("%02d", h))
	}
	return values
}

// splitList splits a comma-separated entry, trimming blanks.
func splitList(entry string) []string {
	var out []string
	for _, part := range strings.Split(entry, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
