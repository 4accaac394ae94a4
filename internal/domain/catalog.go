package domain

import "github.com/helloakshay27/fm-matrix-revamp-sub008/internal/constants"

// CatalogItem is one id+display-name entry from a reference-data collection
// (assets, groups, users, suppliers, helpdesk categories, ...).
type CatalogItem struct {
	// ID is the backend identifier, normalized to a string.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`
}

// TemplateSummary is one entry of the remote template list.
type TemplateSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TemplateQuestion is one pre-authored question within a template detail.
// Type carries the wire-format input token (text, number, select, ...).
type TemplateQuestion struct {
	Label      string `json:"label"`
	Type       string `json:"type"`
	GroupID    string `json:"group_id"`
	SubGroupID string `json:"sub_group_id"`
	Required   string `json:"required"`
	Hint       string `json:"hint"`
}

// TemplateDetail is a full template fetched by id. Its content bulk-populates
// the question tree's first section; the top-level fields fill only
// currently-empty basic-config fields, never overwriting operator input.
type TemplateDetail struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Kind        constants.ScheduleKind `json:"schedule_kind"`
	Content     []TemplateQuestion     `json:"content"`
}
