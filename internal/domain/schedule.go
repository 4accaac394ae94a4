// Package domain provides shared domain types for the fmsched schedule wizard.
// These types are used across all internal packages to ensure consistent
// data structures.
//
// This package follows strict import rules:
//   - CAN import: internal/constants, internal/errors, standard library
//   - MUST NOT import: any other internal packages
//
// All JSON field names use snake_case per the FM backend wire contract,
// except the handful of legacy camelCase cron fields the backend expects.
package domain

import "github.com/helloakshay27/fm-matrix-revamp-sub008/internal/constants"

// BasicConfig holds the first wizard step's fields. It is created at wizard
// start, mutated throughout the Basic Configuration step, and discarded on
// wizard abandonment.
type BasicConfig struct {
	// Kind is the schedule category (PPM, AMC, Preparedness, ...).
	Kind constants.ScheduleKind `json:"kind"`

	// Target is the entity kind the schedule applies to.
	Target constants.TargetType `json:"target"`

	// Name is the operator-facing activity name.
	Name string `json:"name"`

	// Description is the free-text schedule description.
	Description string `json:"description"`
}

// DurationField is a dependent-pair field: a unit together with a numeric
// magnitude. Selecting the unit without a magnitude is the specific error
// condition the Schedule Setup validator checks for.
type DurationField struct {
	// Unit is the chosen time unit (e.g. "day", "hour"). Empty means unset.
	Unit string `json:"unit"`

	// Value is the numeric magnitude, kept as entered.
	Value string `json:"value"`
}

// Set reports whether a unit has been chosen.
func (d DurationField) Set() bool {
	return d.Unit != ""
}

// Incomplete reports whether a unit was chosen without a magnitude.
func (d DurationField) Incomplete() bool {
	return d.Unit != "" && d.Value == ""
}

// ScheduleSetup holds the second wizard step's fields: checklist scoping,
// assignment, frequency and the duration-like compound fields.
type ScheduleSetup struct {
	// ChecklistType scopes the checklist to a single entity or a group.
	ChecklistType constants.ChecklistType `json:"checklist_type"`

	// AssetID is the single target entity, required when ChecklistType is
	// Individual.
	AssetID string `json:"asset_id"`

	// GroupID and SubGroupID scope an Asset Group checklist.
	GroupID    string `json:"group_id"`
	SubGroupID string `json:"sub_group_id"`

	// AssignTo selects which assignment list is active.
	AssignTo constants.AssignToType `json:"assign_to"`

	// UserIDs are the assigned users (AssignTo == user).
	UserIDs []string `json:"user_ids"`

	// UserGroupIDs are the assigned user groups (AssignTo == group).
	UserGroupIDs []string `json:"user_group_ids"`

	// BackupAssigneeID is the optional escalation target.
	BackupAssigneeID string `json:"backup_assignee_id"`

	// PlanDuration, SubmissionTime and GraceTime are dependent-pair fields.
	PlanDuration   DurationField `json:"plan_duration"`
	SubmissionTime DurationField `json:"submission_time"`
	GraceTime      DurationField `json:"grace_time"`

	// Frequency is the recurrence label shown to operators (e.g. "Daily").
	Frequency string `json:"frequency"`

	// StartDate and EndDate bound the schedule, formatted as entered.
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	// SupplierID is the optional AMC supplier.
	SupplierID string `json:"supplier_id"`

	// EmailRuleIDs are the PPM email escalation rules to attach.
	EmailRuleIDs []string `json:"email_rule_ids"`

	// ChecklistUploadType selects how checklist answers are captured.
	ChecklistUploadType string `json:"checklist_upload_type"`
}
