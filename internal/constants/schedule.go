package constants

// StepID identifies one step of the schedule-definition wizard.
// Steps are ordered; the integer value is the navigation order.
type StepID int

// Wizard steps in navigation order.
//
// The wizard state machine allows:
//
//	Next:            step N → N+1, gated by step N's validator
//	Back:            step N → N-1, always allowed
//	JumpTo(M), M<=N: ungated, strips completion from steps >= M
//	JumpTo(M), M>N:  repeated Next, each hop gated
//	SaveAndContinue: TimeSetup only, full cross-step validation + remote create
//	Finish:          Mapping only, terminal
const (
	// StepBasicConfig collects schedule kind, target kind, name and description.
	StepBasicConfig StepID = iota

	// StepScheduleSetup collects checklist type, assignment, frequency and
	// the duration-like compound fields.
	StepScheduleSetup

	// StepQuestionSetup builds the section/task question tree.
	StepQuestionSetup

	// StepTimeSetup collects the recurrence time specification.
	StepTimeSetup

	// StepMapping maps assets to the assembled questions.
	StepMapping

	// StepCount is the number of wizard steps.
	StepCount
)

// stepNames maps StepID values to display names.
var stepNames = [StepCount]string{
	"Basic Configuration",
	"Schedule Setup",
	"Question Setup",
	"Time Setup",
	"Mapping",
}

// String returns the display name of the step.
// This implements fmt.Stringer for convenient logging and debugging.
func (s StepID) String() string {
	if s < 0 || s >= StepCount {
		return "unknown"
	}
	return stepNames[s]
}

// Valid reports whether s is a defined wizard step.
func (s StepID) Valid() bool {
	return s >= 0 && s < StepCount
}

// ScheduleKind enumerates the supported schedule categories.
type ScheduleKind string

// Schedule kind constants. The wire payload carries the lowercase form.
const (
	// KindPPM is planned preventive maintenance.
	KindPPM ScheduleKind = "PPM"

	// KindAMC is annual maintenance contract work.
	KindAMC ScheduleKind = "AMC"

	// KindPreparedness is emergency-preparedness inspection.
	KindPreparedness ScheduleKind = "Preparedness"

	// KindHoto is handover/takeover inspection.
	KindHoto ScheduleKind = "Hoto"

	// KindRoutine is routine inspection.
	KindRoutine ScheduleKind = "Routine"

	// KindAudit is audit inspection.
	KindAudit ScheduleKind = "Audit"
)

// ScheduleKinds lists all schedule kinds in display order.
func ScheduleKinds() []ScheduleKind {
	return []ScheduleKind{KindPPM, KindAMC, KindPreparedness, KindHoto, KindRoutine, KindAudit}
}

// String returns the display form of the schedule kind.
func (k ScheduleKind) String() string {
	return string(k)
}

// TargetType identifies the entity kind a schedule applies to.
type TargetType string

// Target type constants.
const (
	// TargetAsset schedules work against assets.
	TargetAsset TargetType = "Asset"

	// TargetService schedules work against services.
	TargetService TargetType = "Service"
)

// ChecklistType selects how the checklist is scoped.
type ChecklistType string

// Checklist type constants.
const (
	// ChecklistIndividual scopes the checklist to a single target entity.
	ChecklistIndividual ChecklistType = "Individual"

	// ChecklistAssetGroup scopes the checklist to an asset group.
	ChecklistAssetGroup ChecklistType = "Asset Group"
)

// AssignToType selects the active assignment mode.
type AssignToType string

// Assignment mode constants.
const (
	// AssignToUser assigns the schedule to individual users.
	AssignToUser AssignToType = "user"

	// AssignToGroup assigns the schedule to user groups.
	AssignToGroup AssignToType = "group"
)

// TicketLevel selects the granularity of auto-raised tickets.
type TicketLevel string

// Ticket level constants.
const (
	// TicketLevelChecklist raises one ticket per checklist.
	TicketLevelChecklist TicketLevel = "checklist"

	// TicketLevelQuestion raises one ticket per failing question.
	TicketLevelQuestion TicketLevel = "question"
)

// InputType enumerates the answer input widgets a task-question can use.
type InputType string

// Input type constants (internal form).
const (
	// InputText is a free-text answer.
	InputText InputType = "text"

	// InputNumber is a numeric answer.
	InputNumber InputType = "number"

	// InputDropdown is a single selection from a list.
	InputDropdown InputType = "dropdown"

	// InputCheckbox is a multi-selection.
	InputCheckbox InputType = "checkbox"

	// InputRadio is a single selection rendered as radio buttons.
	InputRadio InputType = "radio"
)

// InputTypes lists all input types in display order.
func InputTypes() []InputType {
	return []InputType{InputText, InputNumber, InputDropdown, InputCheckbox, InputRadio}
}

// inputTypeTokens maps internal input types to wire-format tokens.
var inputTypeTokens = map[InputType]string{
	InputText:     "text",
	InputNumber:   "number",
	InputDropdown: "select",
	InputCheckbox: "checkbox-group",
	InputRadio:    "radio-group",
}

// WireToken returns the wire-format token for the input type.
// Unknown input types map to the empty string.
func (t InputType) WireToken() string {
	return inputTypeTokens[t]
}

// InputTypeFromWire resolves a wire-format token back to the internal
// input type. The second return value reports whether the token is known.
func InputTypeFromWire(token string) (InputType, bool) {
	for t, w := range inputTypeTokens {
		if w == token {
			return t, true
		}
	}
	return "", false
}
