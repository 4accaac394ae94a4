package wizard

import (
	"context"
	"fmt"

	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/constants"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/domain"
)

// TaskField names a mutable TaskQuestion field for UpdateTask.
type TaskField string

// Task fields addressable through UpdateTask.
const (
	TaskFieldGroup         TaskField = "group"
	TaskFieldSubGroup      TaskField = "sub_group"
	TaskFieldLabel         TaskField = "label"
	TaskFieldInputType     TaskField = "input_type"
	TaskFieldMandatory     TaskField = "mandatory"
	TaskFieldHelpText      TaskField = "help_text"
	TaskFieldHelpTextValue TaskField = "help_text_value"
	TaskFieldReading       TaskField = "reading"
	TaskFieldRating        TaskField = "rating"
	TaskFieldWeightage     TaskField = "weightage"
)

// SectionField names a mutable QuestionSection field for UpdateSectionField.
type SectionField string

// Section fields addressable through UpdateSectionField.
const (
	SectionFieldTitle            SectionField = "title"
	SectionFieldAutoTicket       SectionField = "auto_ticket"
	SectionFieldTicketLevel      SectionField = "ticket_level"
	SectionFieldTicketAssignedTo SectionField = "ticket_assigned_to"
	SectionFieldTicketCategory   SectionField = "ticket_category"
)

// Sections returns a structural snapshot of the question tree. The snapshot
// is stable: later mutations never alias into it.
func (s *Session) Sections() []domain.QuestionSection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneSections(s.sections)
}

// AddSection appends a new section titled "Section {n+1}" containing one
// blank task, and returns the section id.
func (s *Session) AddSection() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	section := domain.QuestionSection{
		ID:    newID(),
		Title: fmt.Sprintf("Section %d", len(s.sections)+1),
		Tasks: []domain.TaskQuestion{{ID: newID()}},
	}
	s.sections = append(domain.CloneSections(s.sections), section)
	return section.ID
}

// AddTask appends a blank task to the section and returns the task id.
// Returns the empty string if the section does not exist.
func (s *Session) AddTask(sectionID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.sectionIndexLocked(sectionID)
	if idx < 0 {
		return ""
	}
	next := domain.CloneSections(s.sections)
	task := domain.TaskQuestion{ID: newID()}
	next[idx].Tasks = append(next[idx].Tasks, task)
	s.sections = next
	return task.ID
}

// RemoveTask deletes the task from the section. Unknown ids are a no-op.
func (s *Session) RemoveTask(sectionID, taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	si, ti := s.taskIndexLocked(sectionID, taskID)
	if si < 0 {
		return
	}
	next := domain.CloneSections(s.sections)
	next[si].Tasks = append(next[si].Tasks[:ti], next[si].Tasks[ti+1:]...)
	s.sections = next
	delete(s.taskSubGroups, taskID)
	delete(s.taskGen, taskID)
}

// UpdateTask sets one field of the task located by the (section, task) id
// pair. Unknown ids are a no-op, not an error.
//
// Setting TaskFieldGroup additionally clears the task's sub-group in the
// same logical update and triggers the cached sub-group fetch for the new
// group (see fetchSubGroups).
func (s *Session) UpdateTask(ctx context.Context, sectionID, taskID string, field TaskField, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	si, ti := s.taskIndexLocked(sectionID, taskID)
	if si < 0 {
		return
	}
	next := domain.CloneSections(s.sections)
	task := &next[si].Tasks[ti]

	switch field {
	case TaskFieldGroup:
		task.GroupID = value
		// Hard invariant: sub-group selection never survives a group change.
		task.SubGroupID = ""
		s.sections = next
		s.refreshSubGroupsLocked(ctx, task.ID, value)
		return
	case TaskFieldSubGroup:
		task.SubGroupID = value
	case TaskFieldLabel:
		task.Label = value
	case TaskFieldInputType:
		task.InputType = toInputType(value)
	case TaskFieldMandatory:
		task.Mandatory = parseBoolValue(value)
	case TaskFieldHelpText:
		task.HelpText = parseBoolValue(value)
		if !task.HelpText {
			task.HelpTextValue = ""
		}
	case TaskFieldHelpTextValue:
		task.HelpTextValue = value
	case TaskFieldReading:
		task.Reading = parseBoolValue(value)
	case TaskFieldRating:
		task.Rating = parseBoolValue(value)
		if !task.Rating {
			task.Weightage = ""
		}
	case TaskFieldWeightage:
		task.Weightage = value
	default:
		return
	}
	s.sections = next
}

// UpdateSectionField sets one field of the section. Unknown ids are a no-op.
func (s *Session) UpdateSectionField(sectionID string, field SectionField, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.sectionIndexLocked(sectionID)
	if idx < 0 {
		return
	}
	next := domain.CloneSections(s.sections)
	section := &next[idx]

	switch field {
	case SectionFieldTitle:
		section.Title = value
	case SectionFieldAutoTicket:
		section.AutoTicket = parseBoolValue(value)
	case SectionFieldTicketLevel:
		section.TicketLevel = toTicketLevel(value)
	case SectionFieldTicketAssignedTo:
		section.TicketAssignedTo = value
	case SectionFieldTicketCategory:
		section.TicketCategory = value
	default:
		return
	}
	s.sections = next
}

// SubGroupOptions returns the sub-group options currently visible for the
// task, or nil if none have resolved yet.
func (s *Session) SubGroupOptions(taskID string) []domain.CatalogItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CatalogItem(nil), s.taskSubGroups[taskID]...)
}

// refreshSubGroupsLocked updates the task's visible sub-group options after
// a group change. Cached groups resolve immediately; otherwise a fetch is
// launched. Each group change bumps the task's generation counter, and a
// resolved fetch applies its result only if the generation is unchanged, so
// a stale response for a previous group can never populate the options of
// the group the operator has since moved to.
func (s *Session) refreshSubGroupsLocked(ctx context.Context, taskID, groupID string) {
	gen := s.taskGen[taskID] + 1
	s.taskGen[taskID] = gen
	delete(s.taskSubGroups, taskID)

	if groupID == "" {
		return
	}
	if cached, ok := s.subGroupCache[groupID]; ok {
		s.taskSubGroups[taskID] = cached
		return
	}
	if s.loader == nil {
		return
	}

	s.fetches.Add(1)
	go func() {
		defer s.fetches.Done()
		items, err := s.loader.SubGroups(ctx, groupID)
		if err != nil {
			s.log.Warn().Err(err).Str("group_id", groupID).Msg("sub-group fetch failed")
			return
		}
		s.applySubGroups(taskID, groupID, gen, items)
	}()
}

// applySubGroups stores a resolved fetch. The cache is keyed by group id and
// always updated; the task's visible options are updated only when the task
// still points at the fetched group at resolution time.
func (s *Session) applySubGroups(taskID, groupID string, gen uint64, items []domain.CatalogItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subGroupCache[groupID] = items

	if s.taskGen[taskID] != gen {
		// Superseded while in flight; discard silently.
		s.log.Debug().Str("task_id", taskID).Str("group_id", groupID).Msg("discarding stale sub-group response")
		return
	}
	s.taskSubGroups[taskID] = items
}

// toInputType validates an input-type value; unknown values clear the field.
func toInputType(v string) constants.InputType {
	for _, t := range constants.InputTypes() {
		if string(t) == v {
			return t
		}
	}
	return ""
}

// toTicketLevel validates a ticket-level value; unknown values clear the field.
func toTicketLevel(v string) constants.TicketLevel {
	switch constants.TicketLevel(v) {
	case constants.TicketLevelChecklist, constants.TicketLevelQuestion:
		return constants.TicketLevel(v)
	default:
		return ""
	}
}

// sectionIndexLocked returns the index of the section, or -1.
func (s *Session) sectionIndexLocked(sectionID string) int {
	for i := range s.sections {
		if s.sections[i].ID == sectionID {
			return i
		}
	}
	return -1
}

// taskIndexLocked returns the (section, task) indexes, or (-1, -1).
func (s *Session) taskIndexLocked(sectionID, taskID string) (int, int) {
	si := s.sectionIndexLocked(sectionID)
	if si < 0 {
		return -1, -1
	}
	for ti := range s.sections[si].Tasks {
		if s.sections[si].Tasks[ti].ID == taskID {
			return si, ti
		}
	}
	return -1, -1
}
