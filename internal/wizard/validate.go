package wizard

import (
	"fmt"
	"strings"

	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/constants"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/domain"
)

// The validation engine is three pure functions, one per gated step. Each
// returns an ordered list of human-readable violation messages; an empty
// list means the step is valid. Messages are data, never errors: they are
// recomputed reactively after every relevant mutation, so gate state is
// always current.

// ValidateBasicConfig checks the Basic Configuration step.
func ValidateBasicConfig(b domain.BasicConfig) []string {
	var errs []string
	if strings.TrimSpace(b.Name) == "" {
		errs = append(errs, "Activity Name is required")
	}
	if strings.TrimSpace(b.Description) == "" {
		errs = append(errs, "Description is required")
	}
	if b.Kind == "" {
		errs = append(errs, "Schedule type is required")
	}
	return errs
}

// ValidateScheduleSetup checks the Schedule Setup step.
func ValidateScheduleSetup(v domain.ScheduleSetup) []string {
	var errs []string

	switch v.ChecklistType {
	case "":
		errs = append(errs, "Checklist type is required")
	case constants.ChecklistIndividual:
		if v.AssetID == "" {
			errs = append(errs, "Asset must be selected")
		}
	case constants.ChecklistAssetGroup:
		if v.GroupID == "" {
			errs = append(errs, "Asset group must be selected")
		}
	}

	switch v.AssignTo {
	case constants.AssignToGroup:
		if len(v.UserGroupIDs) == 0 {
			errs = append(errs, "At least one group must be selected")
		}
	default:
		// User assignment is the default mode.
		if len(v.UserIDs) == 0 {
			errs = append(errs, "At least one user must be selected")
		}
	}

	if v.Frequency == "" {
		errs = append(errs, "Frequency is required")
	}

	// Dependent-pair fields: a chosen unit without a magnitude is the
	// specific error condition.
	if v.PlanDuration.Incomplete() {
		errs = append(errs, "Plan duration value is required")
	}
	if v.SubmissionTime.Incomplete() {
		errs = append(errs, "Submission time value is required")
	}
	if v.GraceTime.Incomplete() {
		errs = append(errs, "Grace time value is required")
	}

	return errs
}

// ValidateQuestionSetup checks the Question Setup step. flags carries the
// wizard-level toggles so the function stays pure.
func ValidateQuestionSetup(sections []domain.QuestionSection, flags Flags) []string {
	var errs []string

	for i, section := range sections {
		n := i + 1

		if strings.TrimSpace(section.Title) == "" {
			errs = append(errs, fmt.Sprintf("Section %d: title is required", n))
		}

		labeled := 0
		for j, task := range section.Tasks {
			if task.Blank() {
				// Scratch row; dropped at assembly, not a violation.
				continue
			}
			labeled++

			if task.InputType == "" {
				errs = append(errs, fmt.Sprintf("Section %d, Task %d: input type is required", n, j+1))
			}
			if task.HelpText && strings.TrimSpace(task.HelpTextValue) == "" {
				errs = append(errs, fmt.Sprintf("Section %d, Task %d: help text is required", n, j+1))
			}
			if task.Rating && flags.WeightageEnabled && strings.TrimSpace(task.Weightage) == "" {
				errs = append(errs, fmt.Sprintf("Section %d, Task %d: weightage is required", n, j+1))
			}
		}

		if labeled == 0 {
			errs = append(errs, fmt.Sprintf("Section %d: at least one task is required", n))
		}

		if section.AutoTicket {
			if section.TicketAssignedTo == "" {
				errs = append(errs, fmt.Sprintf("Section %d: auto-ticket assignee is required", n))
			}
			if section.TicketCategory == "" {
				errs = append(errs, fmt.Sprintf("Section %d: auto-ticket category is required", n))
			}
		}
	}

	return errs
}
