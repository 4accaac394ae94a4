package wizard

import (
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/constants"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/domain"
)

// ApplyTemplate bulk-populates the session from a template detail.
//
// The template's content fills the question tree's first section, creating
// it if the tree is empty. The top-level name/description/kind fields fill
// only currently-empty basic-config fields: operator-entered text is never
// overwritten.
func (s *Session) ApplyTemplate(detail *domain.TemplateDetail) {
	if detail == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.basic.Name == "" {
		s.basic.Name = detail.Name
	}
	if s.basic.Description == "" {
		s.basic.Description = detail.Description
	}
	if s.basic.Kind == "" {
		s.basic.Kind = detail.Kind
	}

	if len(detail.Content) == 0 {
		return
	}

	next := domain.CloneSections(s.sections)
	if len(next) == 0 {
		next = append(next, domain.QuestionSection{
			ID:    newID(),
			Title: "Section 1",
		})
	}

	first := &next[0]
	// Template questions replace any still-blank scratch rows.
	kept := first.Tasks[:0:0]
	for _, task := range first.Tasks {
		if !task.Blank() {
			kept = append(kept, task)
		}
	}
	for _, q := range detail.Content {
		task := domain.TaskQuestion{
			ID:            newID(),
			Label:         q.Label,
			GroupID:       q.GroupID,
			SubGroupID:    q.SubGroupID,
			Mandatory:     parseBoolValue(q.Required),
			HelpTextValue: q.Hint,
			HelpText:      q.Hint != "",
		}
		if t, ok := constants.InputTypeFromWire(q.Type); ok {
			task.InputType = t
		}
		kept = append(kept, task)
	}
	first.Tasks = kept
	s.sections = next
}
