package wizard

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/constants"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/domain"
	"github.com/helloakshay27/fm-matrix-revamp-sub008/internal/testutil"
)

// fakeLoader serves sub-group fetches with optional per-group gates so tests
// can control resolution order.
type fakeLoader struct {
	mu    sync.Mutex
	calls map[string]int
	gates map[string]chan struct{}
	items map[string][]domain.CatalogItem
	errs  map[string]error
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{
		calls: make(map[string]int),
		gates: make(map[string]chan struct{}),
		items: make(map[string][]domain.CatalogItem),
		errs:  make(map[string]error),
	}
}

func (f *fakeLoader) gate(groupID string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{})
	f.gates[groupID] = ch
	return ch
}

func (f *fakeLoader) callCount(groupID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[groupID]
}

func (f *fakeLoader) SubGroups(_ context.Context, groupID string) ([]domain.CatalogItem, error) {
	f.mu.Lock()
	f.calls[groupID]++
	gate := f.gates[groupID]
	items := f.items[groupID]
	err := f.errs[groupID]
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return items, err
}

func TestAddSection_AutoTitleAndBlankTask(t *testing.T) {
	s := NewSession()

	first := s.AddSection()
	second := s.AddSection()

	sections := s.Sections()
	require.Len(t, sections, 2)
	assert.Equal(t, first, sections[0].ID)
	assert.Equal(t, "Section 1", sections[0].Title)
	assert.Equal(t, second, sections[1].ID)
	assert.Equal(t, "Section 2", sections[1].Title)
	require.Len(t, sections[0].Tasks, 1)
	assert.True(t, sections[0].Tasks[0].Blank())
}

func TestAddTask_UnknownSection(t *testing.T) {
	s := NewSession()

	assert.Empty(t, s.AddTask("nope"))
}

func TestAddThenRemoveTask_RestoresStructure(t *testing.T) {
	s := NewSession()
	secID := s.AddSection()
	before := s.Sections()

	taskID := s.AddTask(secID)
	require.NotEmpty(t, taskID)
	s.RemoveTask(secID, taskID)

	assert.Equal(t, before, s.Sections())
}

func TestUpdateTask_UnknownIDsAreNoops(t *testing.T) {
	s := NewSession()
	secID := s.AddSection()
	before := s.Sections()
	ctx := context.Background()

	s.UpdateTask(ctx, "nope", "nope", TaskFieldLabel, "x")
	s.UpdateTask(ctx, secID, "nope", TaskFieldLabel, "x")

	assert.Equal(t, before, s.Sections())
}

func TestUpdateTask_Fields(t *testing.T) {
	s := NewSession()
	secID := s.AddSection()
	taskID := s.Sections()[0].Tasks[0].ID
	ctx := context.Background()

	s.UpdateTask(ctx, secID, taskID, TaskFieldLabel, "Belt tension ok?")
	s.UpdateTask(ctx, secID, taskID, TaskFieldInputType, "checkbox")
	s.UpdateTask(ctx, secID, taskID, TaskFieldMandatory, "true")
	s.UpdateTask(ctx, secID, taskID, TaskFieldHelpText, "true")
	s.UpdateTask(ctx, secID, taskID, TaskFieldHelpTextValue, "Check at idle speed")
	s.UpdateTask(ctx, secID, taskID, TaskFieldReading, "true")
	s.UpdateTask(ctx, secID, taskID, TaskFieldRating, "true")
	s.UpdateTask(ctx, secID, taskID, TaskFieldWeightage, "5")

	task := s.Sections()[0].Tasks[0]
	assert.Equal(t, "Belt tension ok?", task.Label)
	assert.Equal(t, constants.InputCheckbox, task.InputType)
	assert.True(t, task.Mandatory)
	assert.True(t, task.HelpText)
	assert.Equal(t, "Check at idle speed", task.HelpTextValue)
	assert.True(t, task.Reading)
	assert.True(t, task.Rating)
	assert.Equal(t, "5", task.Weightage)
}

func TestUpdateTask_DisablingHelpTextClearsValue(t *testing.T) {
	s := NewSession()
	secID := s.AddSection()
	taskID := s.Sections()[0].Tasks[0].ID
	ctx := context.Background()

	s.UpdateTask(ctx, secID, taskID, TaskFieldHelpText, "true")
	s.UpdateTask(ctx, secID, taskID, TaskFieldHelpTextValue, "hint")
	s.UpdateTask(ctx, secID, taskID, TaskFieldHelpText, "false")

	task := s.Sections()[0].Tasks[0]
	assert.False(t, task.HelpText)
	assert.Empty(t, task.HelpTextValue)
}

func TestUpdateTask_GroupChangeClearsSubGroup(t *testing.T) {
	s := NewSession()
	secID := s.AddSection()
	taskID := s.Sections()[0].Tasks[0].ID
	ctx := context.Background()

	s.UpdateTask(ctx, secID, taskID, TaskFieldGroup, "g1")
	s.UpdateTask(ctx, secID, taskID, TaskFieldSubGroup, "sg1")
	require.Equal(t, "sg1", s.Sections()[0].Tasks[0].SubGroupID)

	s.UpdateTask(ctx, secID, taskID, TaskFieldGroup, "g2")

	task := s.Sections()[0].Tasks[0]
	assert.Equal(t, "g2", task.GroupID)
	assert.Empty(t, task.SubGroupID)
}

func TestUpdateSectionField(t *testing.T) {
	s := NewSession()
	secID := s.AddSection()

	s.UpdateSectionField(secID, SectionFieldTitle, "Electrical")
	s.UpdateSectionField(secID, SectionFieldAutoTicket, "true")
	s.UpdateSectionField(secID, SectionFieldTicketLevel, "question")
	s.UpdateSectionField(secID, SectionFieldTicketAssignedTo, "u9")
	s.UpdateSectionField(secID, SectionFieldTicketCategory, "c3")

	section := s.Sections()[0]
	assert.Equal(t, "Electrical", section.Title)
	assert.True(t, section.AutoTicket)
	assert.Equal(t, constants.TicketLevelQuestion, section.TicketLevel)
	assert.Equal(t, "u9", section.TicketAssignedTo)
	assert.Equal(t, "c3", section.TicketCategory)
}

func TestSections_SnapshotIsStable(t *testing.T) {
	s := NewSession()
	secID := s.AddSection()
	snapshot := s.Sections()

	s.UpdateSectionField(secID, SectionFieldTitle, "Changed")

	assert.Equal(t, "Section 1", snapshot[0].Title)
}

func TestSubGroupFetch_ResolvesAndCaches(t *testing.T) {
	loader := newFakeLoader()
	loader.items["g1"] = []domain.CatalogItem{{ID: "sg1", Name: "Compressors"}}
	s := NewSession(WithLoader(loader))
	secID := s.AddSection()
	taskID := s.Sections()[0].Tasks[0].ID
	ctx := context.Background()

	s.UpdateTask(ctx, secID, taskID, TaskFieldGroup, "g1")
	s.WaitPending()

	assert.Equal(t, loader.items["g1"], s.SubGroupOptions(taskID))
	assert.Equal(t, 1, loader.callCount("g1"))

	// A second task selecting the same group resolves from cache, no re-fetch.
	otherID := s.AddTask(secID)
	s.UpdateTask(ctx, secID, otherID, TaskFieldGroup, "g1")
	s.WaitPending()

	assert.Equal(t, loader.items["g1"], s.SubGroupOptions(otherID))
	assert.Equal(t, 1, loader.callCount("g1"))
}

func TestSubGroupFetch_StaleResponseDiscarded(t *testing.T) {
	loader := newFakeLoader()
	loader.items["g1"] = []domain.CatalogItem{{ID: "sg1", Name: "Old"}}
	loader.items["g2"] = []domain.CatalogItem{{ID: "sg2", Name: "New"}}
	g1Gate := loader.gate("g1")
	s := NewSession(WithLoader(loader))
	secID := s.AddSection()
	taskID := s.Sections()[0].Tasks[0].ID
	ctx := context.Background()

	// Select g1 (fetch blocks), then move on to g2 before g1 resolves.
	s.UpdateTask(ctx, secID, taskID, TaskFieldGroup, "g1")
	s.UpdateTask(ctx, secID, taskID, TaskFieldGroup, "g2")
	require.Eventually(t, func() bool {
		opts := s.SubGroupOptions(taskID)
		return len(opts) == 1 && opts[0].ID == "sg2"
	}, time.Second, 5*time.Millisecond)

	// Late g1 resolution must not touch the task now pointing at g2.
	close(g1Gate)
	s.WaitPending()

	assert.Equal(t, loader.items["g2"], s.SubGroupOptions(taskID))
	assert.Equal(t, "g2", s.Sections()[0].Tasks[0].GroupID)
}

func TestSubGroupFetch_FailureLeavesOptionsEmpty(t *testing.T) {
	loader := newFakeLoader()
	loader.errs["g1"] = testutil.ErrMockNetwork
	s := NewSession(WithLoader(loader))
	secID := s.AddSection()
	taskID := s.Sections()[0].Tasks[0].ID

	s.UpdateTask(context.Background(), secID, taskID, TaskFieldGroup, "g1")
	s.WaitPending()

	assert.Empty(t, s.SubGroupOptions(taskID))
}

func TestRemoveTask_DropsSubGroupState(t *testing.T) {
	loader := newFakeLoader()
	loader.items["g1"] = []domain.CatalogItem{{ID: "sg1", Name: "Compressors"}}
	s := NewSession(WithLoader(loader))
	secID := s.AddSection()
	taskID := s.Sections()[0].Tasks[0].ID

	s.UpdateTask(context.Background(), secID, taskID, TaskFieldGroup, "g1")
	s.WaitPending()
	s.RemoveTask(secID, taskID)

	assert.Empty(t, s.SubGroupOptions(taskID))
}
