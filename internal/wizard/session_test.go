package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/constants"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/domain"
	fmerrors "github.com/helloakshay27/fm-matrix-revamp-sub008/internal/errors"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/testutil"
)

// fakeSubmitter records CreateSchedule calls and returns a configured error.
type fakeSubmitter struct {
	calls    int
	payloads []*domain.SchedulePayload
	err      error
}

func (f *fakeSubmitter) CreateSchedule(_ context.Context, p *domain.SchedulePayload) error {
	f.calls++
	f.payloads = append(f.payloads, p)
	return f.err
}

// readySession returns a session whose first four steps validate cleanly.
func readySession(opts ...Option) *Session {
	s := NewSession(opts...)
	s.SetBasic(domain.BasicConfig{
		Kind:        constants.KindPPM,
		Target:      constants.TargetAsset,
		Name:        "Chiller inspection",
		Description: "Monthly chiller inspection round",
	})
	s.SetSetup(validSetup())
	secID := s.AddSection()
	taskID := s.Sections()[0].Tasks[0].ID
	ctx := context.Background()
	s.UpdateTask(ctx, secID, taskID, TaskFieldLabel, "Compressor noise normal?")
	s.UpdateTask(ctx, secID, taskID, TaskFieldInputType, string(constants.InputRadio))
	return s
}

func TestSession_StartsAtBasicConfig(t *testing.T) {
	s := NewSession()

	assert.Equal(t, constants.StepBasicConfig, s.ActiveStep())
	assert.False(t, s.Finished())
}

func TestTransition_NextBlockedByValidation(t *testing.T) {
	s := NewSession()

	err := s.Transition(context.Background(), Next{})

	require.Error(t, err)
	assert.ErrorIs(t, err, fmerrors.ErrStepBlocked)
	// First validator message is the user-facing error.
	assert.Contains(t, err.Error(), "Activity Name is required")
	assert.Equal(t, constants.StepBasicConfig, s.ActiveStep())
	assert.False(t, s.Completed(constants.StepBasicConfig))
}

func TestTransition_NextAdvancesAndMarksCompleted(t *testing.T) {
	s := readySession()

	require.NoError(t, s.Transition(context.Background(), Next{}))

	assert.Equal(t, constants.StepScheduleSetup, s.ActiveStep())
	assert.True(t, s.Completed(constants.StepBasicConfig))
}

func TestTransition_BackStripsCompletion(t *testing.T) {
	s := readySession()
	ctx := context.Background()
	require.NoError(t, s.Transition(ctx, Next{}))
	require.NoError(t, s.Transition(ctx, Next{}))
	require.True(t, s.Completed(constants.StepScheduleSetup))

	require.NoError(t, s.Transition(ctx, Back{}))

	assert.Equal(t, constants.StepScheduleSetup, s.ActiveStep())
	// Re-opened steps lose completed status, earlier ones keep it.
	assert.False(t, s.Completed(constants.StepScheduleSetup))
	assert.True(t, s.Completed(constants.StepBasicConfig))
}

func TestTransition_BackFromFirstStepIsNoop(t *testing.T) {
	s := NewSession()

	require.NoError(t, s.Transition(context.Background(), Back{}))
	assert.Equal(t, constants.StepBasicConfig, s.ActiveStep())
}

func TestTransition_JumpBackwardUngated(t *testing.T) {
	s := readySession()
	ctx := context.Background()
	require.NoError(t, s.Transition(ctx, Next{}))
	require.NoError(t, s.Transition(ctx, Next{}))

	// Invalidate the first step, then jump back: no gate applies.
	s.SetBasic(domain.BasicConfig{})
	require.NoError(t, s.Transition(ctx, JumpTo{Step: constants.StepBasicConfig}))

	assert.Equal(t, constants.StepBasicConfig, s.ActiveStep())
	assert.False(t, s.Completed(constants.StepBasicConfig))
	assert.False(t, s.Completed(constants.StepScheduleSetup))
}

func TestTransition_JumpForwardGatedPerHop(t *testing.T) {
	s := readySession()
	ctx := context.Background()

	require.NoError(t, s.Transition(ctx, JumpTo{Step: constants.StepTimeSetup}))

	assert.Equal(t, constants.StepTimeSetup, s.ActiveStep())
	assert.True(t, s.Completed(constants.StepBasicConfig))
	assert.True(t, s.Completed(constants.StepScheduleSetup))
	assert.True(t, s.Completed(constants.StepQuestionSetup))
}

func TestTransition_JumpForwardStopsAtFailingStep(t *testing.T) {
	s := NewSession()

	err := s.Transition(context.Background(), JumpTo{Step: constants.StepQuestionSetup})

	require.ErrorIs(t, err, fmerrors.ErrStepBlocked)
	assert.Equal(t, constants.StepBasicConfig, s.ActiveStep())
}

func TestTransition_JumpToInvalidStep(t *testing.T) {
	s := NewSession()

	err := s.Transition(context.Background(), JumpTo{Step: constants.StepID(99)})

	assert.ErrorIs(t, err, fmerrors.ErrInvalidTransition)
}

func TestTransition_SaveAndContinueOnlyFromTimeSetup(t *testing.T) {
	s := readySession(WithSubmitter(&fakeSubmitter{}))

	err := s.Transition(context.Background(), SaveAndContinue{})

	assert.ErrorIs(t, err, fmerrors.ErrInvalidTransition)
}

func TestTransition_SaveAndContinueSuccess(t *testing.T) {
	sub := &fakeSubmitter{}
	s := readySession(WithSubmitter(sub))
	ctx := context.Background()
	require.NoError(t, s.Transition(ctx, JumpTo{Step: constants.StepTimeSetup}))

	require.NoError(t, s.Transition(ctx, SaveAndContinue{}))

	assert.Equal(t, 1, sub.calls)
	assert.Equal(t, constants.StepMapping, s.ActiveStep())
	assert.True(t, s.Completed(constants.StepTimeSetup))
	require.Len(t, sub.payloads, 1)
	assert.Equal(t, "ppm", sub.payloads[0].ScheduleType)
}

func TestTransition_SaveAndContinueFailureKeepsStateAndRetries(t *testing.T) {
	sub := &fakeSubmitter{err: testutil.ErrMockAPIError}
	s := readySession(WithSubmitter(sub))
	ctx := context.Background()
	require.NoError(t, s.Transition(ctx, JumpTo{Step: constants.StepTimeSetup}))

	err := s.Transition(ctx, SaveAndContinue{})
	require.ErrorIs(t, err, fmerrors.ErrSubmitFailed)
	assert.Equal(t, constants.StepTimeSetup, s.ActiveStep())
	assert.False(t, s.Completed(constants.StepTimeSetup))

	// Retry the same action after the backend recovers.
	sub.err = nil
	require.NoError(t, s.Transition(ctx, SaveAndContinue{}))
	assert.Equal(t, 2, sub.calls)
	assert.Equal(t, constants.StepMapping, s.ActiveStep())
}

func TestTransition_SaveAndContinueRunsCrossStepValidation(t *testing.T) {
	sub := &fakeSubmitter{}
	s := readySession(WithSubmitter(sub))
	ctx := context.Background()
	require.NoError(t, s.Transition(ctx, JumpTo{Step: constants.StepTimeSetup}))

	// Break an earlier step after passing it.
	s.SetBasic(domain.BasicConfig{})

	err := s.Transition(ctx, SaveAndContinue{})

	require.ErrorIs(t, err, fmerrors.ErrStepBlocked)
	assert.Zero(t, sub.calls)
	assert.Equal(t, constants.StepTimeSetup, s.ActiveStep())
}

func TestTransition_FinishOnlyFromMapping(t *testing.T) {
	s := readySession()

	err := s.Transition(context.Background(), Finish{})

	assert.ErrorIs(t, err, fmerrors.ErrInvalidTransition)
}

func TestTransition_FinishTerminal(t *testing.T) {
	sub := &fakeSubmitter{}
	s := readySession(WithSubmitter(sub))
	ctx := context.Background()
	require.NoError(t, s.Transition(ctx, JumpTo{Step: constants.StepTimeSetup}))
	require.NoError(t, s.Transition(ctx, SaveAndContinue{}))

	require.NoError(t, s.Transition(ctx, Finish{}))

	assert.True(t, s.Finished())
	// Finish never re-submits.
	assert.Equal(t, 1, sub.calls)

	err := s.Transition(ctx, Next{})
	assert.ErrorIs(t, err, fmerrors.ErrSessionFinished)
}

func TestValidateAll_ConcatenatesInStepOrder(t *testing.T) {
	s := NewSession()

	errs := s.ValidateAll()

	require.NotEmpty(t, errs)
	assert.Equal(t, "Activity Name is required", errs[0])
	assert.Contains(t, errs, "Checklist type is required")
}
