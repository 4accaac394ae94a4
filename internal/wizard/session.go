// Package wizard implements the multi-step schedule-definition wizard: its
// step state machine, the mutable question tree, the per-step validation
// engine and the payload assembler.
//
// A Session owns all wizard state for one schedule-definition run. Sessions
// are created fresh, live purely in process memory and are discarded on
// cancellation; state is durably persisted only once, at final submission.
// No two sessions share mutable state.
//
// Import rules:
//   - CAN import: internal/constants, internal/domain, internal/errors, internal/cron
//   - MUST NOT import: internal/cli, internal/fmapi, internal/refdata
package wizard

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/constants"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/domain"
	fmerrors "github.com/helloakshay27/fm-matrix-revamp-sub008/internal/errors"
)

// SubGroupLoader fetches the sub-groups scoped to a task group. Implemented
// by refdata.Provider. Calls may be slow; the session never blocks a state
// mutation on one.
type SubGroupLoader interface {
	SubGroups(ctx context.Context, groupID string) ([]domain.CatalogItem, error)
}

// Submitter performs the remote schedule create. Implemented by fmapi.Client.
type Submitter interface {
	CreateSchedule(ctx context.Context, payload *domain.SchedulePayload) error
}

// Flags are the wizard-level capability toggles threaded through validator
// calls, so validators stay pure functions of (state, flags).
type Flags struct {
	// WeightageEnabled turns on per-question weightage entry; a rated task
	// then requires a weightage value.
	WeightageEnabled bool
}

// Session is the wizard state machine plus the state it gates: basic config,
// schedule setup, the question tree, the time specification and the asset
// mapping.
//
// All exported methods are safe for concurrent use. Event processing is
// synchronous; the only asynchronous work is the sub-group fetch triggered
// by a task group change, whose result is applied under the session lock and
// only if the task still points at the fetched group.
type Session struct {
	mu  sync.Mutex
	log zerolog.Logger

	loader    SubGroupLoader
	submitter Submitter

	active    constants.StepID
	completed [constants.StepCount]bool
	finished  bool

	basic    domain.BasicConfig
	setup    domain.ScheduleSetup
	sections []domain.QuestionSection
	timeSpec domain.TimeSpecification
	flags    Flags
	assetIDs []string

	// subGroupCache caches fetch results per group id so re-selecting a
	// previously seen group does not re-fetch.
	subGroupCache map[string][]domain.CatalogItem

	// taskSubGroups holds the sub-group options currently visible per task.
	// A resolved fetch writes here only when the task's generation still
	// matches, guarding against stale out-of-order responses.
	taskSubGroups map[string][]domain.CatalogItem
	taskGen       map[string]uint64

	fetches sync.WaitGroup
}

// Option configures a Session.
type Option func(*Session)

// WithLoader sets the sub-group loader.
func WithLoader(l SubGroupLoader) Option {
	return func(s *Session) { s.loader = l }
}

// WithSubmitter sets the schedule create client.
func WithSubmitter(sub Submitter) Option {
	return func(s *Session) { s.submitter = sub }
}

// WithLogger sets the session logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithFlags sets the wizard capability flags.
func WithFlags(f Flags) Option {
	return func(s *Session) { s.flags = f }
}

// NewSession creates a fresh wizard session positioned at the first step.
func NewSession(opts ...Option) *Session {
	s := &Session{
		log:           zerolog.Nop(),
		active:        constants.StepBasicConfig,
		subGroupCache: make(map[string][]domain.CatalogItem),
		taskSubGroups: make(map[string][]domain.CatalogItem),
		taskGen:       make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ActiveStep returns the currently active wizard step.
func (s *Session) ActiveStep() constants.StepID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Completed reports whether the given step has been completed.
func (s *Session) Completed(step constants.StepID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return step.Valid() && s.completed[step]
}

// Finished reports whether the session reached the terminal state.
func (s *Session) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finished
}

// Basic returns the basic-config fields.
func (s *Session) Basic() domain.BasicConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.basic
}

// SetBasic replaces the basic-config fields.
func (s *Session) SetBasic(b domain.BasicConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.basic = b
}

// Setup returns the schedule-setup fields.
func (s *Session) Setup() domain.ScheduleSetup {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setup
}

// SetSetup replaces the schedule-setup fields.
func (s *Session) SetSetup(v domain.ScheduleSetup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setup = v
}

// TimeSpec returns a copy of the recurrence time specification.
func (s *Session) TimeSpec() domain.TimeSpecification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeSpec.Clone()
}

// SetTimeSpec replaces the recurrence time specification.
func (s *Session) SetTimeSpec(ts domain.TimeSpecification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeSpec = ts.Clone()
}

// Flags returns the wizard capability flags.
func (s *Session) Flags() Flags {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flags
}

// SetFlags replaces the wizard capability flags.
func (s *Session) SetFlags(f Flags) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags = f
}

// AssetIDs returns the mapped asset ids.
func (s *Session) AssetIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.assetIDs...)
}

// SetAssetIDs replaces the mapped asset ids.
func (s *Session) SetAssetIDs(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assetIDs = append([]string(nil), ids...)
}

// WaitPending blocks until all in-flight sub-group fetches have resolved.
// Superseded fetches still complete; their results are discarded.
func (s *Session) WaitPending() {
	s.fetches.Wait()
}

// Payload assembles the outbound schedule-creation payload from the current
// session state.
func (s *Session) Payload() *domain.SchedulePayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Assemble(s.basic, s.setup, s.sections, s.timeSpec, s.flags, s.assetIDs)
}

// Validate runs the step's validator against the current state and returns
// the ordered violation messages. Steps without a validator return nil.
func (s *Session) Validate(step constants.StepID) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validateLocked(step)
}

// ValidateAll concatenates all step validators' outputs in step order.
func (s *Session) ValidateAll() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validateAllLocked()
}

func (s *Session) validateLocked(step constants.StepID) []string {
	switch step {
	case constants.StepBasicConfig:
		return ValidateBasicConfig(s.basic)
	case constants.StepScheduleSetup:
		return ValidateScheduleSetup(s.setup)
	case constants.StepQuestionSetup:
		return ValidateQuestionSetup(s.sections, s.flags)
	default:
		return nil
	}
}

func (s *Session) validateAllLocked() []string {
	var all []string
	all = append(all, ValidateBasicConfig(s.basic)...)
	all = append(all, ValidateScheduleSetup(s.setup)...)
	all = append(all, ValidateQuestionSetup(s.sections, s.flags)...)
	return all
}

// gateLocked blocks forward navigation while the active step has validation
// errors. The first message is surfaced as the user-facing error.
func (s *Session) gateLocked() error {
	if errs := s.validateLocked(s.active); len(errs) > 0 {
		return fmt.Errorf("%s: %w", errs[0], fmerrors.ErrStepBlocked)
	}
	return nil
}

// newID returns a fresh opaque identifier.
func newID() string {
	return uuid.NewString()
}

// parseBoolValue interprets a string-boolean field value. Anything
// unparsable counts as false, matching the lenient form inputs.
func parseBoolValue(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
