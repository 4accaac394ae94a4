package wizard

import (
	"context"
	"fmt"

	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/constants"
	fmerrors "github.com/helloakshay27/fm-matrix-revamp-sub008/internal/errors"
)

// Event is one wizard navigation action. Events are processed synchronously
// by Transition; a failed event leaves the session unchanged.
type Event interface {
	// event returns the event name for logging.
	event() string
}

// Next advances one step, gated by the active step's validator.
type Next struct{}

func (Next) event() string { return "next" }

// Back moves one step backward. Always allowed. Completion status is
// stripped from every step at or after the new active step: editing an
// earlier step invalidates trust in everything after it.
type Back struct{}

func (Back) event() string { return "back" }

// JumpTo navigates directly to a step. Jumping backward behaves like Back
// with no validation gate; jumping forward behaves like repeated Next, each
// hop gated by the then-active step's validator.
type JumpTo struct {
	Step constants.StepID
}

func (JumpTo) event() string { return "jump_to" }

// SaveAndContinue is offered at the Time Setup step only. It runs the full
// cross-step validation, assembles the payload, performs the remote create
// and advances exactly one step on success. On failure the active step does
// not change and the action is retryable.
type SaveAndContinue struct{}

func (SaveAndContinue) event() string { return "save_and_continue" }

// Finish is the terminal action from the Mapping step. No payload is
// re-submitted; it is purely a navigation exit.
type Finish struct{}

func (Finish) event() string { return "finish" }

// Transition applies one event to the session.
func (s *Session) Transition(ctx context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished {
		return fmt.Errorf("%s: %w", ev.event(), fmerrors.ErrSessionFinished)
	}

	var err error
	switch e := ev.(type) {
	case Next:
		err = s.nextLocked()
	case Back:
		err = s.backLocked()
	case JumpTo:
		err = s.jumpToLocked(e.Step)
	case SaveAndContinue:
		err = s.saveAndContinueLocked(ctx)
	case Finish:
		err = s.finishLocked()
	default:
		err = fmt.Errorf("%s: %w", ev.event(), fmerrors.ErrInvalidTransition)
	}

	s.log.Debug().
		Str("event", ev.event()).
		Stringer("active_step", s.active).
		Err(err).
		Msg("wizard transition")
	return err
}

func (s *Session) nextLocked() error {
	if s.active >= constants.StepMapping {
		return fmt.Errorf("next from %s: %w", s.active, fmerrors.ErrInvalidTransition)
	}
	if err := s.gateLocked(); err != nil {
		return err
	}
	// Completion is recorded only at transition away, with zero errors.
	s.completed[s.active] = true
	s.active++
	return nil
}

func (s *Session) backLocked() error {
	if s.active == constants.StepBasicConfig {
		return nil
	}
	s.active--
	s.stripCompletionLocked(s.active)
	return nil
}

func (s *Session) jumpToLocked(step constants.StepID) error {
	if !step.Valid() {
		return fmt.Errorf("jump to step %d: %w", int(step), fmerrors.ErrInvalidTransition)
	}
	if step <= s.active {
		s.active = step
		s.stripCompletionLocked(step)
		return nil
	}
	for s.active < step {
		if err := s.nextLocked(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) saveAndContinueLocked(ctx context.Context) error {
	if s.active != constants.StepTimeSetup {
		return fmt.Errorf("save from %s: %w", s.active, fmerrors.ErrInvalidTransition)
	}
	if errs := s.validateAllLocked(); len(errs) > 0 {
		return fmt.Errorf("%s: %w", errs[0], fmerrors.ErrStepBlocked)
	}
	if s.submitter == nil {
		return fmt.Errorf("no submitter configured: %w", fmerrors.ErrSubmitFailed)
	}

	payload := Assemble(s.basic, s.setup, s.sections, s.timeSpec, s.flags, s.assetIDs)
	if err := s.submitter.CreateSchedule(ctx, payload); err != nil {
		// Retryable: prior step data is untouched, no rollback needed.
		return fmt.Errorf("%w: %w", fmerrors.ErrSubmitFailed, err)
	}

	s.completed[s.active] = true
	s.active = constants.StepMapping
	return nil
}

func (s *Session) finishLocked() error {
	if s.active != constants.StepMapping {
		return fmt.Errorf("finish from %s: %w", s.active, fmerrors.ErrInvalidTransition)
	}
	s.completed[s.active] = true
	s.finished = true
	return nil
}

// stripCompletionLocked removes completion status from every step at or
// after from. No "completed" status survives being re-opened for editing.
func (s *Session) stripCompletionLocked(from constants.StepID) {
	for step := from; step < constants.StepCount; step++ {
		s.completed[step] = false
	}
}
