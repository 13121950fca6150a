package usecases

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szentjozsefhackathon/cantores/internal/domain/celebration"
	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/shared/errors"
)

func TestCreatePlan_ValidatesCelebrations(t *testing.T) {
	h := newHarness(t)
	uc := NewCreatePlanUseCase(h.plans, h.celebrations, h.log)
	feast := h.liturgical("Christmas")
	foreign, err := celebration.NewCustom("Their jubilee", nil, 2)
	require.NoError(t, err)
	require.NoError(t, h.celebrations.Create(h.ctx, foreign))

	created, err := uc.Execute(h.ctx, CreatePlanCommand{OwnerID: 1, CelebrationIDs: []uint{feast.ID()}})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, []uint{feast.ID()}, created.CelebrationIDs)

	for _, id := range []uint{foreign.ID(), 9999} {
		_, err := uc.Execute(h.ctx, CreatePlanCommand{OwnerID: 1, CelebrationIDs: []uint{id}})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	}

	_, err = uc.Execute(h.ctx, CreatePlanCommand{OwnerID: 0})
	assert.True(t, errors.IsValidationError(err))
}

func TestEnsurePlanOwner(t *testing.T) {
	h := newHarness(t)
	public := h.plan(1, false)
	private := h.plan(1, true)

	_, err := h.owner().Execute(h.ctx, public.ID(), nil)
	assert.True(t, errors.IsUnauthorizedError(err))

	_, err = h.owner().Execute(h.ctx, public.ID(), viewer(2))
	assert.True(t, errors.IsForbiddenError(err))
	assert.True(t, stderrors.Is(err, plan.ErrNotOwner))

	_, err = h.owner().Execute(h.ctx, private.ID(), viewer(2))
	assert.True(t, errors.IsNotFoundError(err))

	_, err = h.owner().Execute(h.ctx, 9999, viewer(1))
	assert.True(t, errors.IsNotFoundError(err))

	p, err := h.owner().Execute(h.ctx, private.ID(), viewer(1))
	require.NoError(t, err)
	assert.Equal(t, private.ID(), p.ID())
}

func TestGetPlanView_OwnerAndVisitor(t *testing.T) {
	h := newHarness(t)
	notes := "**bring** the choir folders"
	p, err := plan.NewPlan(1, false, nil, &notes, nil)
	require.NoError(t, err)
	require.NoError(t, h.plans.Create(h.ctx, p))

	occurrence := h.attach(p, h.globalSlot("Communion", true))
	h.assign(p, occurrence, h.piece("Adoro te", false, nil))
	secret := h.assign(p, occurrence, h.piece("Owner arrangement", true, uintPtr(1)))

	update := NewUpdateAssignmentUseCase(h.assignments, h.flags, h.txMgr, h.log)
	assignmentNotes := "verse 2 *solo*"
	require.NoError(t, update.Execute(h.ctx, UpdateAssignmentCommand{
		PlanID:       p.ID(),
		AssignmentID: secret,
		Notes:        &assignmentNotes,
		FlagIDs:      &[]uint{1},
	}))

	owned, err := h.planView().Execute(h.ctx, p.ID(), viewer(1))
	require.NoError(t, err)
	assert.True(t, owned.IsOwner)
	require.NotNil(t, owned.PrivateNotes)
	assert.Contains(t, owned.PrivateNotesHTML, "<strong>bring</strong>")
	require.Len(t, owned.Occurrences, 1)
	assert.Equal(t, "Communion", owned.Occurrences[0].SlotName)
	require.Len(t, owned.Occurrences[0].Assignments, 2)
	mine := owned.Occurrences[0].Assignments[1]
	assert.Equal(t, "Owner arrangement", mine.MusicTitle)
	assert.False(t, mine.Hidden)
	assert.Equal(t, []string{"important"}, mine.Flags)
	assert.Contains(t, mine.NotesHTML, "<em>solo</em>")

	visitor, err := h.planView().Execute(h.ctx, p.ID(), nil)
	require.NoError(t, err)
	assert.False(t, visitor.IsOwner)
	assert.Nil(t, visitor.PrivateNotes)
	assert.Empty(t, visitor.PrivateNotesHTML)
	hidden := visitor.Occurrences[0].Assignments[1]
	assert.True(t, hidden.Hidden)
	assert.Empty(t, hidden.MusicTitle)
	assert.Equal(t, "Adoro te", visitor.Occurrences[0].Assignments[0].MusicTitle)
}

func TestGetPlanView_PrivatePlanIsHidden(t *testing.T) {
	h := newHarness(t)
	p := h.plan(1, true)

	_, err := h.planView().Execute(h.ctx, p.ID(), viewer(2))
	assert.True(t, errors.IsNotFoundError(err))
	_, err = h.planView().Execute(h.ctx, p.ID(), nil)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListPlans_Visibility(t *testing.T) {
	h := newHarness(t)
	uc := NewListPlansUseCase(h.plans, h.log)
	h.plan(1, true)
	h.plan(1, false)
	h.plan(2, false)
	h.plan(2, true)

	guest, err := uc.Execute(h.ctx, ListPlansQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), guest.Total)
	assert.Equal(t, 1, guest.Page)

	mine, err := uc.Execute(h.ctx, ListPlansQuery{Viewer: viewer(1)})
	require.NoError(t, err)
	assert.Equal(t, int64(3), mine.Total)

	own, err := uc.Execute(h.ctx, ListPlansQuery{Viewer: viewer(1), OwnerOnly: true})
	require.NoError(t, err)
	assert.Equal(t, int64(2), own.Total)
	for _, p := range own.Plans {
		assert.Equal(t, uint(1), p.OwnerID)
	}
}

func TestUpdatePlan_OwnerOnly(t *testing.T) {
	h := newHarness(t)
	uc := NewUpdatePlanUseCase(h.plans, h.owner(), h.log)
	p := h.plan(1, false)
	private := true
	notes := "  rehearse at 9  "

	_, err := uc.Execute(h.ctx, UpdatePlanCommand{PlanID: p.ID(), Viewer: viewer(2), IsPrivate: &private})
	assert.True(t, errors.IsForbiddenError(err))

	updated, err := uc.Execute(h.ctx, UpdatePlanCommand{
		PlanID:       p.ID(),
		Viewer:       viewer(1),
		IsPrivate:    &private,
		PrivateNotes: &notes,
	})
	require.NoError(t, err)
	assert.True(t, updated.IsPrivate)
	require.NotNil(t, updated.PrivateNotes)
	assert.Equal(t, "rehearse at 9", *updated.PrivateNotes)

	stored, err := h.plans.GetByID(h.ctx, p.ID())
	require.NoError(t, err)
	assert.True(t, stored.IsPrivate())
}

func TestDeletePlan_RetiresCustomSlots(t *testing.T) {
	h := newHarness(t)
	uc := NewDeletePlanUseCase(h.plans, h.slots, h.owner(), h.txMgr, h.log)
	p := h.plan(1, false)
	custom := h.customSlot(p, "Blessing of throats")
	global := h.globalSlot("Entrance", true)
	h.attach(p, custom)
	occurrence := h.attach(p, global)
	h.assign(p, occurrence, h.piece("Lauda Sion", false, nil))

	err := uc.Execute(h.ctx, p.ID(), viewer(2))
	assert.True(t, errors.IsForbiddenError(err))

	require.NoError(t, uc.Execute(h.ctx, p.ID(), viewer(1)))

	gone, err := h.plans.GetByID(h.ctx, p.ID())
	require.NoError(t, err)
	assert.Nil(t, gone)
	assert.Empty(t, h.order(p.ID()))

	retired, err := h.slots.GetByID(h.ctx, custom.ID())
	require.NoError(t, err)
	require.NotNil(t, retired)
	assert.True(t, retired.IsRetired())

	kept, err := h.slots.GetByID(h.ctx, global.ID())
	require.NoError(t, err)
	assert.False(t, kept.IsRetired())
}

func TestUpdateAssignment_Validation(t *testing.T) {
	h := newHarness(t)
	uc := NewUpdateAssignmentUseCase(h.assignments, h.flags, h.txMgr, h.log)
	p := h.plan(1, false)
	other := h.plan(1, false)
	occurrence := h.attach(p, h.globalSlot("Hymn", true))
	id := h.assign(p, occurrence, h.piece("Regina caeli", false, nil))

	err := uc.Execute(h.ctx, UpdateAssignmentCommand{PlanID: p.ID(), AssignmentID: id})
	assert.True(t, errors.IsValidationError(err))

	err = uc.Execute(h.ctx, UpdateAssignmentCommand{PlanID: p.ID(), AssignmentID: id, FlagIDs: &[]uint{1, 999}})
	assert.True(t, errors.IsValidationError(err))
	assert.True(t, stderrors.Is(err, plan.ErrUnknownFlag))

	notes := "x"
	err = uc.Execute(h.ctx, UpdateAssignmentCommand{PlanID: other.ID(), AssignmentID: id, Notes: &notes})
	assert.True(t, errors.IsNotFoundError(err))

	require.NoError(t, uc.Execute(h.ctx, UpdateAssignmentCommand{PlanID: p.ID(), AssignmentID: id, FlagIDs: &[]uint{2, 3}}))
	stored, err := h.assignments.GetByID(h.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []uint{2, 3}, stored.FlagIDs())
	assert.Equal(t, 1, stored.MusicSequence())
}

func TestAssignmentScopes(t *testing.T) {
	h := newHarness(t)
	add := NewAddScopeUseCase(h.assignments, h.log)
	remove := NewRemoveScopeUseCase(h.assignments, h.log)
	p := h.plan(1, false)
	other := h.plan(1, false)
	occurrence := h.attach(p, h.globalSlot("Sequence", true))
	id := h.assign(p, occurrence, h.piece("Victimae paschali", false, nil))

	_, err := add.Execute(h.ctx, AddScopeCommand{PlanID: p.ID(), AssignmentID: id, ScopeType: "chorus", ScopeNumber: 1})
	assert.True(t, errors.IsValidationError(err))
	_, err = add.Execute(h.ctx, AddScopeCommand{PlanID: p.ID(), AssignmentID: id, ScopeType: "verse", ScopeNumber: 0})
	assert.True(t, errors.IsValidationError(err))

	scope, err := add.Execute(h.ctx, AddScopeCommand{PlanID: p.ID(), AssignmentID: id, ScopeType: "verse", ScopeNumber: 2})
	require.NoError(t, err)
	assert.NotZero(t, scope.ID)

	result, err := remove.Execute(h.ctx, RemoveScopeCommand{PlanID: other.ID(), ScopeID: scope.ID})
	require.NoError(t, err)
	assert.False(t, result.Changed)

	result, err = remove.Execute(h.ctx, RemoveScopeCommand{PlanID: p.ID(), ScopeID: scope.ID})
	require.NoError(t, err)
	assert.True(t, result.Changed)

	result, err = remove.Execute(h.ctx, RemoveScopeCommand{PlanID: p.ID(), ScopeID: scope.ID})
	require.NoError(t, err)
	assert.False(t, result.Changed)
}

func TestFindSuggestions_RanksByPlanCount(t *testing.T) {
	h := newHarness(t)
	uc := NewFindSuggestionsUseCase(h.plans, h.suggestions, h.celebrations, h.slots, h.music, h.log)
	feast := h.liturgical("Corpus Christi")
	s := h.globalSlot("Sequence", true)
	popular := h.piece("Lauda Sion", false, nil)
	rare := h.piece("Ecce panis", false, nil)

	for i := 0; i < 2; i++ {
		prior := h.plan(uint(10+i), false, feast.ID())
		h.assign(prior, h.attach(prior, s), popular)
	}
	prior := h.plan(20, false, feast.ID())
	h.assign(prior, h.attach(prior, s), rare)

	target := h.plan(1, false, feast.ID())
	result, err := uc.Execute(h.ctx, FindSuggestionsQuery{PlanID: target.ID(), Viewer: viewer(1)})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Sequence", result[0].SlotName)
	require.Len(t, result[0].Music, 2)
	assert.Equal(t, popular.ID(), result[0].Music[0].MusicID)
	assert.Equal(t, "Lauda Sion", result[0].Music[0].Title)
	assert.Equal(t, 2, result[0].Music[0].PlanCount)
	assert.Equal(t, rare.ID(), result[0].Music[1].MusicID)

	limited, err := uc.Execute(h.ctx, FindSuggestionsQuery{PlanID: target.ID(), Viewer: viewer(1), Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited[0].Music, 1)

	bare := h.plan(1, false)
	none, err := uc.Execute(h.ctx, FindSuggestionsQuery{PlanID: bare.ID(), Viewer: viewer(1)})
	require.NoError(t, err)
	assert.Empty(t, none)
}
