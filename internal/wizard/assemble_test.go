package wizard

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/constants"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/domain"
)

func assembleInput() (domain.BasicConfig, domain.ScheduleSetup, []domain.QuestionSection, domain.TimeSpecification) {
	basic := domain.BasicConfig{
		Kind:        constants.KindPPM,
		Target:      constants.TargetAsset,
		Name:        "Chiller inspection",
		Description: "Monthly round",
	}
	setup := domain.ScheduleSetup{
		ChecklistType:       constants.ChecklistIndividual,
		AssetID:             "42",
		AssignTo:            constants.AssignToUser,
		UserIDs:             []string{"7", "8"},
		Frequency:           "Monthly",
		PlanDuration:        domain.DurationField{Unit: "day", Value: "2"},
		GraceTime:           domain.DurationField{Unit: "hour", Value: "4"},
		StartDate:           "2026-09-01",
		EndDate:             "2027-08-31",
		EmailRuleIDs:        []string{"r1"},
		ChecklistUploadType: "manual",
	}
	sections := []domain.QuestionSection{
		{
			ID:    "s1",
			Title: "Mechanical",
			Tasks: []domain.TaskQuestion{
				{ID: "t1", Label: "Compressor noise normal?", InputType: constants.InputRadio, Mandatory: true},
				{ID: "t2"}, // scratch row, dropped
				{ID: "t3", Label: "Oil pressure", InputType: constants.InputNumber, Reading: true, GroupID: "g1", SubGroupID: "sg1"},
			},
		},
		{
			ID:         "s2",
			Title:      "Electrical",
			AutoTicket: true,
			TicketLevel: constants.TicketLevelQuestion,
			TicketAssignedTo: "u9",
			TicketCategory:   "c3",
			Tasks: []domain.TaskQuestion{
				{ID: "t4", Label: "Panel temperature", InputType: constants.InputDropdown, Rating: true, Weightage: "5", HelpText: true, HelpTextValue: "Use IR gun"},
			},
		},
	}
	timeSpec := domain.TimeSpecification{
		Minute: domain.AxisSpec{Mode: constants.ModeSpecific, Selected: []string{"00"}},
		Hour:   domain.AxisSpec{Mode: constants.ModeSpecific, Selected: []string{"09"}},
		Day:    domain.AxisSpec{Mode: constants.ModeWeekdays, Selected: []string{"Monday", "Friday"}},
		Month:  domain.AxisSpec{Mode: constants.ModeAll},
	}
	return basic, setup, sections, timeSpec
}

func TestAssemble_ContentCountMatchesNonBlankTasks(t *testing.T) {
	basic, setup, sections, timeSpec := assembleInput()

	p := Assemble(basic, setup, sections, timeSpec, Flags{}, nil)

	nonBlank := 0
	for _, s := range sections {
		for _, task := range s.Tasks {
			if !task.Blank() {
				nonBlank++
			}
		}
	}
	assert.Len(t, p.Content, nonBlank)
}

func TestAssemble_ContentOrderAndFields(t *testing.T) {
	basic, setup, sections, timeSpec := assembleInput()

	p := Assemble(basic, setup, sections, timeSpec, Flags{WeightageEnabled: true}, nil)

	require.Len(t, p.Content, 3)
	assert.Equal(t, "Compressor noise normal?", p.Content[0].Label)
	assert.Equal(t, "t1", p.Content[0].Name)
	assert.Equal(t, "radio-group", p.Content[0].Type)
	assert.Equal(t, "true", p.Content[0].Required)
	assert.Equal(t, "false", p.Content[0].IsReading)

	assert.Equal(t, "Oil pressure", p.Content[1].Label)
	assert.Equal(t, "number", p.Content[1].Type)
	assert.Equal(t, "true", p.Content[1].IsReading)
	assert.Equal(t, "g1", p.Content[1].GroupID)
	assert.Equal(t, "sg1", p.Content[1].SubGroupID)

	assert.Equal(t, "Panel temperature", p.Content[2].Label)
	assert.Equal(t, "select", p.Content[2].Type)
	assert.Equal(t, "5", p.Content[2].Weightage)
	assert.Equal(t, "true", p.Content[2].RatingEnabled)
	assert.Equal(t, "Use IR gun", p.Content[2].Hint)
}

func TestAssemble_ScheduleTypeLowercase(t *testing.T) {
	basic, setup, sections, timeSpec := assembleInput()

	p := Assemble(basic, setup, sections, timeSpec, Flags{}, nil)

	assert.Equal(t, "ppm", p.ScheduleType)
	assert.Equal(t, "ppm", p.SchType)
}

func TestAssemble_CustomFormFromFirstAutoTicketSection(t *testing.T) {
	basic, setup, sections, timeSpec := assembleInput()

	p := Assemble(basic, setup, sections, timeSpec, Flags{WeightageEnabled: true}, nil)

	assert.Equal(t, "Chiller inspection", p.PmsCustomForm.FormName)
	assert.Equal(t, "true", p.PmsCustomForm.CreateTicket)
	assert.Equal(t, "question", p.PmsCustomForm.TicketLevel)
	assert.Equal(t, "u9", p.PmsCustomForm.TaskAssignerID)
	assert.Equal(t, "c3", p.PmsCustomForm.HelpdeskCategoryID)
	assert.Equal(t, "true", p.PmsCustomForm.WeightageEnabled)
}

func TestAssemble_CronFields(t *testing.T) {
	basic, setup, sections, timeSpec := assembleInput()

	p := Assemble(basic, setup, sections, timeSpec, Flags{}, nil)

	assert.Equal(t, "on", p.CronMinute)
	assert.Equal(t, "00", p.CronMinuteSpecificSpecific)
	assert.Equal(t, "on", p.CronHour)
	assert.Equal(t, "09", p.CronHourSpecificSpecific)
	assert.Equal(t, "2,6", p.CronDay)
	assert.Equal(t, "*", p.CronMonth)
	assert.Equal(t, "00 09 ? * 2,6", p.CronExpression)
}

func TestAssemble_AssetIDFallbackForIndividualChecklist(t *testing.T) {
	basic, setup, sections, timeSpec := assembleInput()

	p := Assemble(basic, setup, sections, timeSpec, Flags{}, nil)
	assert.Equal(t, []string{"42"}, p.AssetIDs)

	mapped := Assemble(basic, setup, sections, timeSpec, Flags{}, []string{"42", "43"})
	assert.Equal(t, []string{"42", "43"}, mapped.AssetIDs)
}

func TestAssemble_AssignmentAndTiming(t *testing.T) {
	basic, setup, sections, timeSpec := assembleInput()

	p := Assemble(basic, setup, sections, timeSpec, Flags{}, nil)

	assert.Equal(t, "user", p.PmsAssetTask.AssignmentType)
	assert.Equal(t, "day", p.PmsAssetTask.PlanType)
	assert.Equal(t, "2", p.PmsAssetTask.PlanValue)
	assert.Equal(t, "hour", p.PmsAssetTask.GraceTimeType)
	assert.Equal(t, "4", p.PmsAssetTask.GraceTimeValue)
	assert.Equal(t, "Monthly", p.PmsAssetTask.Frequency)
	assert.Equal(t, []string{"7", "8"}, p.PeopleAssignedToIDs)
	assert.Equal(t, []string{"r1"}, p.PpmRuleIDs)
}

func TestAssemble_GroupAssignmentCarriesGroupIDs(t *testing.T) {
	basic, setup, sections, timeSpec := assembleInput()
	setup.AssignTo = constants.AssignToGroup
	setup.UserIDs = nil
	setup.UserGroupIDs = []string{"ug-1", "ug-2"}

	p := Assemble(basic, setup, sections, timeSpec, Flags{}, nil)

	assert.Equal(t, "group", p.PmsAssetTask.AssignmentType)
	assert.Equal(t, []string{"ug-1", "ug-2"}, p.UserGroupIDs)

	body, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"ug-1"`)
	assert.Contains(t, string(body), `"user_group_ids":["ug-1","ug-2"]`)
}

func TestAssemble_SetupFieldsReachTheWire(t *testing.T) {
	basic, setup, sections, timeSpec := assembleInput()
	basic.Target = constants.TargetService
	setup.SubmissionTime = domain.DurationField{Unit: "hour", Value: "6"}
	setup.BackupAssigneeID = "u2"
	setup.SupplierID = "sup-3"

	p := Assemble(basic, setup, sections, timeSpec, Flags{}, nil)

	assert.Equal(t, "Service", p.ChecklistFor)
	assert.Equal(t, "hour", p.PmsAssetTask.SubmissionTimeType)
	assert.Equal(t, "6", p.PmsAssetTask.SubmissionTimeValue)
	assert.Equal(t, "u2", p.BackupAssignedToID)
	assert.Equal(t, "sup-3", p.SupplierID)
}

func TestAssemble_EmptyListsSerializeAsArrays(t *testing.T) {
	basic, setup, _, timeSpec := assembleInput()
	setup.ChecklistType = constants.ChecklistAssetGroup
	setup.AssetID = ""
	setup.UserIDs = nil
	setup.UserGroupIDs = nil
	setup.EmailRuleIDs = nil

	p := Assemble(basic, setup, nil, timeSpec, Flags{}, nil)

	body, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"asset_ids":[]`)
	assert.Contains(t, string(body), `"people_assigned_to_ids":[]`)
	assert.Contains(t, string(body), `"user_group_ids":[]`)
	assert.Contains(t, string(body), `"ppm_rule_ids":[]`)
	assert.NotContains(t, string(body), "null")
}

func TestAssemble_EmptyTreeYieldsEmptyContent(t *testing.T) {
	basic, setup, _, timeSpec := assembleInput()

	p := Assemble(basic, setup, nil, timeSpec, Flags{}, nil)

	require.NotNil(t, p.Content)
	assert.Empty(t, p.Content)
}
