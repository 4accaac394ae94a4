// Package errors provides centralized error handling for fmsched.
//
// This package defines sentinel errors used for programmatic error
// categorization throughout the application. All error types can be checked
// using errors.Is().
//
// Validation messages are deliberately NOT errors: the wizard's per-step
// validators return ordered []string message lists. Sentinels here cover the
// state machine, transport and configuration failure modes.
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
var (
	// ErrStepBlocked indicates forward navigation was attempted while the
	// active step still has validation errors.
	ErrStepBlocked = errors.New("step has validation errors")

	// ErrInvalidTransition indicates an event is not legal from the current
	// wizard step (e.g. SaveAndContinue outside Time Setup).
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrSessionFinished indicates an event was sent to a wizard session
	// that already reached the terminal state.
	ErrSessionFinished = errors.New("wizard session already finished")

	// ErrSectionNotFound indicates the referenced question section does not exist.
	ErrSectionNotFound = errors.New("section not found")

	// ErrTaskNotFound indicates the referenced task-question does not exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrSubmitFailed indicates the schedule creation endpoint rejected the
	// payload or was unreachable. The action is retryable; no wizard state
	// is lost.
	ErrSubmitFailed = errors.New("schedule creation failed")

	// ErrFetchFailed indicates a reference-data fetch failed. Callers
	// substitute placeholder data and continue.
	ErrFetchFailed = errors.New("reference data fetch failed")

	// ErrStaleResponse indicates a fetch resolved after its selection
	// context changed. The result is discarded silently.
	ErrStaleResponse = errors.New("stale fetch response")

	// ErrHTTPStatus indicates a non-2xx response from the FM backend.
	ErrHTTPStatus = errors.New("unexpected HTTP status")

	// ErrTemplateNotFound indicates the requested schedule template does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrTemplateParse indicates a local template file has invalid YAML syntax.
	ErrTemplateParse = errors.New("template parse error")

	// ErrConfigNil indicates a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidAPI indicates an invalid API configuration value.
	ErrConfigInvalidAPI = errors.New("invalid API configuration")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrValueOutOfRange indicates that a value is outside the allowed range.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrUnknownScheduleKind indicates an unrecognized schedule kind.
	ErrUnknownScheduleKind = errors.New("unknown schedule kind")

	// ErrUnknownInputType indicates an unrecognized task input type.
	ErrUnknownInputType = errors.New("unknown input type")

	// ErrUnknownAxisMode indicates an axis mode that is not legal for the axis.
	ErrUnknownAxisMode = errors.New("unknown axis mode")

	// ErrNoMenuOptions indicates that no options were provided to a menu.
	ErrNoMenuOptions = errors.New("no menu options provided")

	// ErrMenuCanceled indicates that the user canceled a menu operation.
	ErrMenuCanceled = errors.New("menu canceled by user")

	// ErrOperationCanceled indicates the user canceled an operation.
	ErrOperationCanceled = errors.New("operation canceled by user")

	// ErrNonInteractiveMode indicates an interactive wizard was requested
	// without a terminal attached.
	ErrNonInteractiveMode = errors.New("interactive terminal required")
)
