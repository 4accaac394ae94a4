package wizard

import (
	"strconv"
	"strings"

	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/constants"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/cron"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/domain"
)

// Assemble folds the question tree, time specification and configuration
// fields into the exact wire-format payload the schedule-creation endpoint
// consumes. It is a pure function of its inputs.
//
// Content ordering preserves section order then task order within each
// section. Blank-labeled tasks are scratch rows and are silently dropped.
func Assemble(
	basic domain.BasicConfig,
	setup domain.ScheduleSetup,
	sections []domain.QuestionSection,
	timeSpec domain.TimeSpecification,
	flags Flags,
	assetIDs []string,
) *domain.SchedulePayload {
	kind := strings.ToLower(string(basic.Kind))
	compiled := cron.Compile(timeSpec)

	p := &domain.SchedulePayload{
		ScheduleType:        kind,
		SchType:             kind,
		PmsCustomForm:       assembleCustomForm(basic, sections, flags),
		ChecklistFor:        string(basic.Target),
		ChecklistType:       string(setup.ChecklistType),
		GroupID:             setup.GroupID,
		SubGroupID:          setup.SubGroupID,
		Content:             assembleContent(sections),
		ChecklistUploadType: setup.ChecklistUploadType,
		AssetIDs:            assembleAssetIDs(setup, assetIDs),
		PeopleAssignedToIDs: stringList(setup.UserIDs),
		UserGroupIDs:        stringList(setup.UserGroupIDs),
		BackupAssignedToID:  setup.BackupAssigneeID,
		SupplierID:          setup.SupplierID,
		PmsAssetTask: domain.AssetTask{
			AssignmentType:      string(setup.AssignTo),
			PlanType:            setup.PlanDuration.Unit,
			PlanValue:           setup.PlanDuration.Value,
			SubmissionTimeType:  setup.SubmissionTime.Unit,
			SubmissionTimeValue: setup.SubmissionTime.Value,
			GraceTimeType:       setup.GraceTime.Unit,
			GraceTimeValue:      setup.GraceTime.Value,
			Frequency:           setup.Frequency,
			StartDate:           setup.StartDate,
			EndDate:             setup.EndDate,
		},
		PpmRuleIDs: stringList(setup.EmailRuleIDs),

		CronMinute:                 cron.OnOff(compiled.MinuteEnabled),
		CronMinuteSpecificSpecific: strings.Join(timeSpec.Minute.Selected, ","),
		CronHour:                   cron.OnOff(compiled.HourEnabled),
		CronHourSpecificSpecific:   strings.Join(timeSpec.Hour.Selected, ","),
		CronDay:                    activeDayField(compiled),
		CronMonth:                  compiled.Month,
		CronExpression:             compiled.Expression(),
	}

	if p.Content == nil {
		p.Content = []domain.ContentItem{}
	}
	return p
}

// assembleCustomForm builds the flat pms_custom_form block. Auto-ticket
// settings come from the first section that has auto-ticketing enabled.
func assembleCustomForm(basic domain.BasicConfig, sections []domain.QuestionSection, flags Flags) domain.CustomForm {
	form := domain.CustomForm{
		FormName:         basic.Name,
		Description:      basic.Description,
		CreateTicket:     strconv.FormatBool(false),
		WeightageEnabled: strconv.FormatBool(flags.WeightageEnabled),
	}
	for _, section := range sections {
		if !section.AutoTicket {
			continue
		}
		form.CreateTicket = strconv.FormatBool(true)
		form.TicketLevel = string(section.TicketLevel)
		form.TaskAssignerID = section.TicketAssignedTo
		form.HelpdeskCategoryID = section.TicketCategory
		break
	}
	return form
}

// assembleContent flattens the question tree into wire content items.
func assembleContent(sections []domain.QuestionSection) []domain.ContentItem {
	var content []domain.ContentItem
	for _, section := range sections {
		for _, task := range section.Tasks {
			if task.Blank() {
				continue
			}
			content = append(content, domain.ContentItem{
				Label:         task.Label,
				Name:          task.ID,
				GroupID:       task.GroupID,
				SubGroupID:    task.SubGroupID,
				Type:          task.InputType.WireToken(),
				Required:      strconv.FormatBool(task.Mandatory),
				IsReading:     strconv.FormatBool(task.Reading),
				Hint:          task.HelpTextValue,
				Weightage:     task.Weightage,
				RatingEnabled: strconv.FormatBool(task.Rating),
			})
		}
	}
	return content
}

// assembleAssetIDs prefers the explicit mapping; an Individual checklist
// falls back to its single target entity.
func assembleAssetIDs(setup domain.ScheduleSetup, assetIDs []string) []string {
	if len(assetIDs) > 0 {
		return append([]string(nil), assetIDs...)
	}
	if setup.ChecklistType == constants.ChecklistIndividual && setup.AssetID != "" {
		return []string{setup.AssetID}
	}
	return []string{}
}

// stringList copies values, normalizing empty to a non-nil list so every
// id-list field serializes as a JSON array, never null.
func stringList(values []string) []string {
	if len(values) == 0 {
		return []string{}
	}
	return append([]string(nil), values...)
}

// activeDayField returns the day field the wire payload carries: whichever
// of the two mutually exclusive day fields is active.
func activeDayField(r cron.Result) string {
	if r.DayOfWeek != cron.Wildcard && r.DayOfWeek != cron.NotApplicable {
		return r.DayOfWeek
	}
	if r.DayOfMonth != cron.Wildcard && r.DayOfMonth != cron.NotApplicable {
		return r.DayOfMonth
	}
	return cron.Wildcard
}
