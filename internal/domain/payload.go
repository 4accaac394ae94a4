package domain

// SchedulePayload is the single JSON object submitted to create a schedule.
// Field names are the backend contract and must be reproduced exactly,
// including the legacy camelCase cron fields.
type SchedulePayload struct {
	// ScheduleType is the lowercase schedule kind.
	ScheduleType string `json:"schedule_type"`

	// PmsCustomForm carries the flat custom-form fields.
	PmsCustomForm CustomForm `json:"pms_custom_form"`

	// SchType mirrors the schedule kind for the legacy scheduler.
	SchType string `json:"sch_type"`

	// ChecklistFor is the target entity kind the schedule applies to.
	ChecklistFor string `json:"checklist_for"`

	// ChecklistType is the checklist scoping mode.
	ChecklistType string `json:"checklist_type"`

	// GroupID and SubGroupID scope an asset-group checklist.
	GroupID    string `json:"group_id"`
	SubGroupID string `json:"sub_group_id"`

	// Content is the flat question list, one entry per non-blank task across
	// all sections, preserving section order then task order.
	Content []ContentItem `json:"content"`

	// ChecklistUploadType selects how checklist answers are captured.
	ChecklistUploadType string `json:"checklist_upload_type"`

	// AssetIDs are the mapped assets.
	AssetIDs []string `json:"asset_ids"`

	// PeopleAssignedToIDs are the assigned users.
	PeopleAssignedToIDs []string `json:"people_assigned_to_ids"`

	// UserGroupIDs are the assigned user groups (group assignment mode).
	UserGroupIDs []string `json:"user_group_ids"`

	// BackupAssignedToID is the optional escalation target.
	BackupAssignedToID string `json:"backup_assigned_to_id"`

	// SupplierID is the optional AMC supplier.
	SupplierID string `json:"supplier_id"`

	// PmsAssetTask carries assignment and timing fields.
	PmsAssetTask AssetTask `json:"pms_asset_task"`

	// PpmRuleIDs are the attached email escalation rules.
	PpmRuleIDs []string `json:"ppm_rule_ids"`

	// Per-axis enabled flags ("on"/"off") plus the raw selections, required
	// by the backend alongside the compiled expression.
	CronMinute                 string `json:"cronMinute"`
	CronMinuteSpecificSpecific string `json:"cronMinuteSpecificSpecific"`
	CronHour                   string `json:"cronHour"`
	CronHourSpecificSpecific   string `json:"cronHourSpecificSpecific"`
	CronDay                    string `json:"cronDay"`
	CronMonth                  string `json:"cronMonth"`

	// CronExpression is the compiled five-field expression.
	CronExpression string `json:"cron_expression"`
}

// CustomForm carries the flat pms_custom_form fields of the wire payload.
type CustomForm struct {
	// FormName is the activity name.
	FormName string `json:"form_name"`

	// Description is the schedule description.
	Description string `json:"description"`

	// CreateTicket is a string-boolean enabling auto-ticketing.
	CreateTicket string `json:"create_ticket"`

	// TicketLevel is checklist or question.
	TicketLevel string `json:"ticket_level"`

	// TaskAssignerID is the auto-ticket assignee.
	TaskAssignerID string `json:"task_assigner_id"`

	// HelpdeskCategoryID is the auto-ticket helpdesk category.
	HelpdeskCategoryID string `json:"helpdesk_category_id"`

	// WeightageEnabled is a string-boolean mirroring the wizard-level toggle.
	WeightageEnabled string `json:"weightage_enabled"`
}

// ContentItem is one flattened task-question in the wire payload.
// Boolean flags are carried as string-booleans ("true"/"false") per the
// backend contract.
type ContentItem struct {
	Label         string `json:"label"`
	Name          string `json:"name"`
	GroupID       string `json:"group_id"`
	SubGroupID    string `json:"sub_group_id"`
	Type          string `json:"type"`
	Required      string `json:"required"`
	IsReading     string `json:"is_reading"`
	Hint          string `json:"hint"`
	Weightage     string `json:"weightage"`
	RatingEnabled string `json:"rating_enabled"`
}

// AssetTask carries the pms_asset_task assignment and timing fields.
type AssetTask struct {
	AssignmentType      string `json:"assignment_type"`
	PlanType            string `json:"plan_type"`
	PlanValue           string `json:"plan_value"`
	SubmissionTimeType  string `json:"submission_time_type"`
	SubmissionTimeValue string `json:"submission_time_value"`
	GraceTimeType       string `json:"grace_time_type"`
	GraceTimeValue      string `json:"grace_time_value"`
	Frequency           string `json:"frequency"`
	StartDate           string `json:"start_date"`
	EndDate             string `json:"end_date"`
}
