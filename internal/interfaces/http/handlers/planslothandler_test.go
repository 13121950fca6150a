package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdto "github.com/szentjozsefhackathon/cantores/internal/application/catalog/dto"
	catalogusecases "github.com/szentjozsefhackathon/cantores/internal/application/catalog/usecases"
	plandto "github.com/szentjozsefhackathon/cantores/internal/application/plan/dto"
	planusecases "github.com/szentjozsefhackathon/cantores/internal/application/plan/usecases"
	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/interfaces/http/handlers/testutil"
	"github.com/szentjozsefhackathon/cantores/internal/shared/authorization"
	"github.com/szentjozsefhackathon/cantores/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockOwnerGuard struct {
	err   error
	calls int
}

func (m *mockOwnerGuard) Execute(ctx context.Context, planID uint, viewer *authorization.Viewer) (*plan.Plan, error) {
	m.calls++
	return nil, m.err
}

type mockAttachSlotUC struct {
	cmd planusecases.AttachSlotCommand
}

func (m *mockAttachSlotUC) Execute(ctx context.Context, cmd planusecases.AttachSlotCommand) (*plandto.AttachResult, error) {
	m.cmd = cmd
	return &plandto.AttachResult{Changed: true, Occurrence: &plandto.OccurrenceDTO{ID: 1, SlotID: cmd.SlotID, Sequence: 1}}, nil
}

type mockCreateCustomSlotUC struct {
	cmd catalogusecases.CreateCustomSlotCommand
}

func (m *mockCreateCustomSlotUC) Execute(ctx context.Context, cmd catalogusecases.CreateCustomSlotCommand) (*catalogdto.CustomSlotResult, error) {
	m.cmd = cmd
	return &catalogdto.CustomSlotResult{Slot: &catalogdto.SlotDTO{ID: 9, Name: cmd.Name, IsCustom: true}, OccurrenceID: 4, Sequence: 2}, nil
}

type mockAttachTemplateUC struct {
	cmd planusecases.AttachTemplateCommand
}

func (m *mockAttachTemplateUC) Execute(ctx context.Context, cmd planusecases.AttachTemplateCommand) (*plandto.TemplateExpansionResult, error) {
	m.cmd = cmd
	return &plandto.TemplateExpansionResult{Changed: true, Added: 2}, nil
}

type mockMoveOccurrenceUC struct {
	cmd    planusecases.MoveOccurrenceCommand
	result *plandto.SequenceResult
}

func (m *mockMoveOccurrenceUC) Execute(ctx context.Context, cmd planusecases.MoveOccurrenceCommand) (*plandto.SequenceResult, error) {
	m.cmd = cmd
	return m.result, nil
}

type mockRemoveOccurrenceUC struct {
	cmd planusecases.RemoveOccurrenceCommand
}

func (m *mockRemoveOccurrenceUC) Execute(ctx context.Context, cmd planusecases.RemoveOccurrenceCommand) (*plandto.SequenceResult, error) {
	m.cmd = cmd
	return &plandto.SequenceResult{Changed: true}, nil
}

type mockAssignMusicUC struct {
	cmd planusecases.AssignMusicCommand
}

func (m *mockAssignMusicUC) Execute(ctx context.Context, cmd planusecases.AssignMusicCommand) (*plandto.AssignResult, error) {
	m.cmd = cmd
	return &plandto.AssignResult{Changed: true}, nil
}

type mockMoveAssignmentUC struct {
	cmd planusecases.MoveAssignmentCommand
}

func (m *mockMoveAssignmentUC) Execute(ctx context.Context, cmd planusecases.MoveAssignmentCommand) (*plandto.SequenceResult, error) {
	m.cmd = cmd
	return &plandto.SequenceResult{Changed: true}, nil
}

type mockUnassignMusicUC struct {
	cmd planusecases.UnassignMusicCommand
}

func (m *mockUnassignMusicUC) Execute(ctx context.Context, cmd planusecases.UnassignMusicCommand) (*plandto.SequenceResult, error) {
	m.cmd = cmd
	return &plandto.SequenceResult{Changed: true}, nil
}

type mockUpdateAssignmentUC struct {
	cmd planusecases.UpdateAssignmentCommand
	err error
}

func (m *mockUpdateAssignmentUC) Execute(ctx context.Context, cmd planusecases.UpdateAssignmentCommand) error {
	m.cmd = cmd
	return m.err
}

type mockAddScopeUC struct {
	cmd planusecases.AddScopeCommand
}

func (m *mockAddScopeUC) Execute(ctx context.Context, cmd planusecases.AddScopeCommand) (*plandto.ScopeDTO, error) {
	m.cmd = cmd
	return &plandto.ScopeDTO{ID: 1, Type: cmd.ScopeType, Number: cmd.ScopeNumber}, nil
}

type mockRemoveScopeUC struct {
	cmd planusecases.RemoveScopeCommand
}

func (m *mockRemoveScopeUC) Execute(ctx context.Context, cmd planusecases.RemoveScopeCommand) (*plandto.SequenceResult, error) {
	m.cmd = cmd
	return &plandto.SequenceResult{Changed: false}, nil
}

// =====================================================================
// Test helpers
// =====================================================================

type planSlotMocks struct {
	owner            *mockOwnerGuard
	attachSlot       *mockAttachSlotUC
	customSlot       *mockCreateCustomSlotUC
	attachTemplate   *mockAttachTemplateUC
	moveOccurrence   *mockMoveOccurrenceUC
	removeOccurrence *mockRemoveOccurrenceUC
	assignMusic      *mockAssignMusicUC
	moveAssignment   *mockMoveAssignmentUC
	unassignMusic    *mockUnassignMusicUC
	updateAssignment *mockUpdateAssignmentUC
	addScope         *mockAddScopeUC
	removeScope      *mockRemoveScopeUC
}

func newTestPlanSlotHandler() (*PlanSlotHandler, *planSlotMocks) {
	m := &planSlotMocks{
		owner:            &mockOwnerGuard{},
		attachSlot:       &mockAttachSlotUC{},
		customSlot:       &mockCreateCustomSlotUC{},
		attachTemplate:   &mockAttachTemplateUC{},
		moveOccurrence:   &mockMoveOccurrenceUC{result: &plandto.SequenceResult{Changed: true}},
		removeOccurrence: &mockRemoveOccurrenceUC{},
		assignMusic:      &mockAssignMusicUC{},
		moveAssignment:   &mockMoveAssignmentUC{},
		unassignMusic:    &mockUnassignMusicUC{},
		updateAssignment: &mockUpdateAssignmentUC{},
		addScope:         &mockAddScopeUC{},
		removeScope:      &mockRemoveScopeUC{},
	}
	h := NewPlanSlotHandler(PlanSlotUseCases{
		Owner:            m.owner,
		AttachSlot:       m.attachSlot,
		CreateCustomSlot: m.customSlot,
		AttachTemplate:   m.attachTemplate,
		MoveOccurrence:   m.moveOccurrence,
		RemoveOccurrence: m.removeOccurrence,
		AssignMusic:      m.assignMusic,
		MoveAssignment:   m.moveAssignment,
		UnassignMusic:    m.unassignMusic,
		UpdateAssignment: m.updateAssignment,
		AddScope:         m.addScope,
		RemoveScope:      m.removeScope,
	}, testutil.NewMockLogger())
	return h, m
}

// =====================================================================
// Tests
// =====================================================================

func TestPlanSlotHandler_OwnershipIsCheckedFirst(t *testing.T) {
	h, m := newTestPlanSlotHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/plans/1/slots", AttachSlotRequest{SlotID: 2})
	testutil.SetURLParam(c, "id", "1")
	h.AttachSlot(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, m.owner.calls)

	m.owner.err = errors.NewForbiddenError("not the plan owner")
	c, w = testutil.NewTestContext(http.MethodPost, "/plans/1/slots", AttachSlotRequest{SlotID: 2})
	testutil.SetURLParam(c, "id", "1")
	testutil.SetAuthContext(c, 4)
	h.AttachSlot(c)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, 1, m.owner.calls)
	assert.Zero(t, m.attachSlot.cmd.PlanID, "sequencer must not run")

	m.owner.err = nil
	c, w = testutil.NewTestContext(http.MethodPost, "/plans/1/slots", AttachSlotRequest{SlotID: 2})
	testutil.SetURLParam(c, "id", "1")
	testutil.SetAuthContext(c, 4)
	h.AttachSlot(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, planusecases.AttachSlotCommand{PlanID: 1, SlotID: 2}, m.attachSlot.cmd)
	assert.Contains(t, w.Body.String(), `"changed":true`)
}

func TestPlanSlotHandler_CreateCustomSlot(t *testing.T) {
	h, m := newTestPlanSlotHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/plans/3/custom-slots", CreateCustomSlotRequest{Name: "Meditation"})
	testutil.SetURLParam(c, "id", "3")
	testutil.SetAuthContext(c, 4)
	h.CreateCustomSlot(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(3), m.customSlot.cmd.PlanID)
	assert.Equal(t, "Meditation", m.customSlot.cmd.Name)

	c, w = testutil.NewTestContext(http.MethodPost, "/plans/3/custom-slots", CreateCustomSlotRequest{})
	testutil.SetURLParam(c, "id", "3")
	testutil.SetAuthContext(c, 4)
	h.CreateCustomSlot(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlanSlotHandler_AttachTemplate(t *testing.T) {
	h, m := newTestPlanSlotHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/plans/3/templates/8", nil)
	testutil.SetURLParam(c, "id", "3")
	testutil.SetURLParam(c, "template_id", "8")
	testutil.SetQueryParams(c, map[string]string{"default_only": "true"})
	testutil.SetAuthContext(c, 4)
	h.AttachTemplate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, planusecases.AttachTemplateCommand{PlanID: 3, TemplateID: 8, DefaultOnly: true}, m.attachTemplate.cmd)
}

func TestPlanSlotHandler_MoveOccurrence(t *testing.T) {
	h, m := newTestPlanSlotHandler()

	for _, dir := range []plan.Direction{plan.DirectionUp, plan.DirectionDown} {
		c, w := testutil.NewTestContext(http.MethodPost, "/plans/3/slots/5/move", nil)
		testutil.SetURLParam(c, "id", "3")
		testutil.SetURLParam(c, "occurrence_id", "5")
		testutil.SetAuthContext(c, 4)
		h.MoveOccurrence(dir)(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, dir, m.moveOccurrence.cmd.Direction)
		assert.Equal(t, uint(5), m.moveOccurrence.cmd.OccurrenceID)
	}

	// a stale move is a 200 with changed=false
	m.moveOccurrence.result = &plandto.SequenceResult{Changed: false}
	c, w := testutil.NewTestContext(http.MethodPost, "/plans/3/slots/5/move-up", nil)
	testutil.SetURLParam(c, "id", "3")
	testutil.SetURLParam(c, "occurrence_id", "5")
	testutil.SetAuthContext(c, 4)
	h.MoveOccurrence(plan.DirectionUp)(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"changed":false`)
}

func TestPlanSlotHandler_RemoveOccurrence(t *testing.T) {
	h, m := newTestPlanSlotHandler()

	c, w := testutil.NewTestContext(http.MethodDelete, "/plans/3/slots/5", nil)
	testutil.SetURLParam(c, "id", "3")
	testutil.SetURLParam(c, "occurrence_id", "5")
	testutil.SetAuthContext(c, 4)
	h.RemoveOccurrence(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, planusecases.RemoveOccurrenceCommand{PlanID: 3, OccurrenceID: 5}, m.removeOccurrence.cmd)
}

func TestPlanSlotHandler_MusicRoutes(t *testing.T) {
	h, m := newTestPlanSlotHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/plans/3/slots/5/music", AssignMusicRequest{MusicID: 12})
	testutil.SetURLParam(c, "id", "3")
	testutil.SetURLParam(c, "occurrence_id", "5")
	testutil.SetAuthContext(c, 4)
	h.AssignMusic(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, planusecases.AssignMusicCommand{PlanID: 3, OccurrenceID: 5, MusicID: 12, ActorID: 4}, m.assignMusic.cmd)

	c, w = testutil.NewTestContext(http.MethodPost, "/plans/3/assignments/7/move-down", nil)
	testutil.SetURLParam(c, "id", "3")
	testutil.SetURLParam(c, "assignment_id", "7")
	testutil.SetAuthContext(c, 4)
	h.MoveAssignment(plan.DirectionDown)(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, planusecases.MoveAssignmentCommand{PlanID: 3, AssignmentID: 7, Direction: plan.DirectionDown}, m.moveAssignment.cmd)

	c, w = testutil.NewTestContext(http.MethodDelete, "/plans/3/assignments/7", nil)
	testutil.SetURLParam(c, "id", "3")
	testutil.SetURLParam(c, "assignment_id", "7")
	testutil.SetAuthContext(c, 4)
	h.UnassignMusic(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), m.unassignMusic.cmd.AssignmentID)
}

func TestPlanSlotHandler_UpdateAssignment(t *testing.T) {
	h, m := newTestPlanSlotHandler()
	notes := "second verse only"
	flags := []uint{1, 2}

	c, w := testutil.NewTestContext(http.MethodPatch, "/plans/3/assignments/7", UpdateAssignmentRequest{Notes: &notes, FlagIDs: &flags})
	testutil.SetURLParam(c, "id", "3")
	testutil.SetURLParam(c, "assignment_id", "7")
	testutil.SetAuthContext(c, 4)
	h.UpdateAssignment(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, m.updateAssignment.cmd.Notes)
	assert.Equal(t, notes, *m.updateAssignment.cmd.Notes)
	require.NotNil(t, m.updateAssignment.cmd.FlagIDs)
	assert.Equal(t, flags, *m.updateAssignment.cmd.FlagIDs)

	m.updateAssignment.err = errors.NewValidationError("unknown flag")
	c, w = testutil.NewTestContext(http.MethodPatch, "/plans/3/assignments/7", UpdateAssignmentRequest{FlagIDs: &flags})
	testutil.SetURLParam(c, "id", "3")
	testutil.SetURLParam(c, "assignment_id", "7")
	testutil.SetAuthContext(c, 4)
	h.UpdateAssignment(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlanSlotHandler_Scopes(t *testing.T) {
	h, m := newTestPlanSlotHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/plans/3/assignments/7/scopes", AddScopeRequest{ScopeType: "verse", ScopeNumber: 2})
	testutil.SetURLParam(c, "id", "3")
	testutil.SetURLParam(c, "assignment_id", "7")
	testutil.SetAuthContext(c, 4)
	h.AddScope(c)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, planusecases.AddScopeCommand{PlanID: 3, AssignmentID: 7, ScopeType: "verse", ScopeNumber: 2}, m.addScope.cmd)

	c, w = testutil.NewTestContext(http.MethodPost, "/plans/3/assignments/7/scopes", AddScopeRequest{ScopeType: "chorus", ScopeNumber: 1})
	testutil.SetURLParam(c, "id", "3")
	testutil.SetURLParam(c, "assignment_id", "7")
	testutil.SetAuthContext(c, 4)
	h.AddScope(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	c, w = testutil.NewTestContext(http.MethodDelete, "/plans/3/scopes/8", nil)
	testutil.SetURLParam(c, "id", "3")
	testutil.SetURLParam(c, "scope_id", "8")
	testutil.SetAuthContext(c, 4)
	h.RemoveScope(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, planusecases.RemoveScopeCommand{PlanID: 3, ScopeID: 8}, m.removeScope.cmd)
}
