package domain

import "github.com/helloakshay27/fm-matrix-revamp-sub008/internal/constants"

// QuestionSection is one named, ordered group of task-questions within a
// schedule. Sections are ordered; order is display and submission order
// (content blocks are keyed by position, 1-based).
//
// An empty Tasks list is representable but rejected by the Question Setup
// validator at submit time.
type QuestionSection struct {
	// ID is opaque and unique for the wizard lifetime.
	ID string `json:"id"`

	// Title is the section heading. Auto-named "Section {n+1}" on creation.
	Title string `json:"title"`

	// AutoTicket enables conditional auto-ticketing for this section.
	AutoTicket bool `json:"auto_ticket"`

	// TicketLevel selects checklist- or question-level tickets.
	TicketLevel constants.TicketLevel `json:"ticket_level"`

	// TicketAssignedTo is the user the auto-raised ticket is assigned to.
	TicketAssignedTo string `json:"ticket_assigned_to"`

	// TicketCategory is the helpdesk category for the auto-raised ticket.
	TicketCategory string `json:"ticket_category"`

	// Tasks is the ordered list of task-questions in this section.
	Tasks []TaskQuestion `json:"tasks"`
}

// TaskQuestion is one inspectable/answerable item within a section.
//
// SubGroupID is meaningful only relative to the currently resolved set of
// sub-groups for GroupID. Selecting a new GroupID invalidates any previously
// chosen SubGroupID: sub-group selection is cleared synchronously with a
// group change, never left pointing at a stale group's sub-group.
type TaskQuestion struct {
	// ID is opaque and unique within the wizard lifetime.
	ID string `json:"id"`

	// GroupID and SubGroupID classify the question against task groups.
	GroupID    string `json:"group_id"`
	SubGroupID string `json:"sub_group_id"`

	// Label is the question text. Blank-labeled tasks are scratch rows and
	// are silently dropped at payload assembly.
	Label string `json:"label"`

	// InputType selects the answer widget.
	InputType constants.InputType `json:"input_type"`

	// Mandatory marks the question as required on submission.
	Mandatory bool `json:"mandatory"`

	// HelpText enables an operator hint; HelpTextValue is required iff true.
	HelpText      bool   `json:"help_text"`
	HelpTextValue string `json:"help_text_value"`

	// Reading marks the question as a meter/gauge reading.
	Reading bool `json:"reading"`

	// Rating marks the question as rated. Meaningful only when the
	// wizard-level weightage toggle is on; Weightage is then required.
	Rating    bool   `json:"rating"`
	Weightage string `json:"weightage"`
}

// Blank reports whether the task is a scratch row (no label entered).
func (t TaskQuestion) Blank() bool {
	return t.Label == ""
}

// CloneSections returns a structural deep copy of sections. Mutation paths
// copy before writing so concurrent readers (the validation engine re-running
// after every edit) never observe a torn update.
func CloneSections(sections []QuestionSection) []QuestionSection {
	if sections == nil {
		return nil
	}
	out := make([]QuestionSection, len(sections))
	for i, s := range sections {
		out[i] = s
		out[i].Tasks = make([]TaskQuestion, len(s.Tasks))
		copy(out[i].Tasks, s.Tasks)
	}
	return out
}
