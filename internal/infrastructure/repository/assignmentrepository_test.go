package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/persistence/models"
)

func TestAssignmentRepository_CreateStoresFlagsAndScopes(t *testing.T) {
	f := newFixture(t)
	s := f.globalSlot("Gloria")
	m := f.piece("Missa de Angelis", false, nil)
	p := f.plan(1, false)
	o := f.occurrence(p.ID(), s.ID(), 1)

	a, err := plan.NewAssignment(o, m.ID(), 1)
	require.NoError(t, err)
	a.SetFlags([]uint{2, 1, 2})
	a.SetNotes("  sung by the schola ")
	require.NoError(t, f.assignments.Create(f.ctx, a))

	scope, err := plan.NewScope("verse", 2)
	require.NoError(t, err)
	stored, err := f.assignments.AddScope(f.ctx, a.ID(), scope)
	require.NoError(t, err)
	assert.NotZero(t, stored.ID)

	got, err := f.assignments.GetByID(f.ctx, a.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []uint{1, 2}, got.FlagIDs())
	assert.Equal(t, "sung by the schola", got.Notes())
	require.Len(t, got.Scopes(), 1)
	assert.Equal(t, plan.ScopeVerse, got.Scopes()[0].Type)
	assert.Equal(t, 2, got.Scopes()[0].Number)
	assert.Equal(t, p.ID(), got.PlanID())
	assert.Equal(t, s.ID(), got.SlotID())
}

func TestAssignmentRepository_MaxMusicSequence(t *testing.T) {
	f := newFixture(t)
	s := f.globalSlot("Psalm")
	m := f.piece("Psalm 23", false, nil)
	p := f.plan(1, false)
	o := f.occurrence(p.ID(), s.ID(), 1)

	highest, err := f.assignments.MaxMusicSequence(f.ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, 0, highest)

	f.assign(o, m.ID(), 1)
	f.assign(o, m.ID(), 2)

	highest, err = f.assignments.MaxMusicSequence(f.ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, 2, highest)
}

func TestAssignmentRepository_DeleteClosesGapWithinOccurrence(t *testing.T) {
	f := newFixture(t)
	s := f.globalSlot("Communion")
	m := f.piece("Ubi caritas", false, nil)
	p := f.plan(1, false)
	o := f.occurrence(p.ID(), s.ID(), 1)
	other := f.occurrence(p.ID(), s.ID(), 2)
	a1 := f.assign(o, m.ID(), 1)
	a2 := f.assign(o, m.ID(), 2)
	a3 := f.assign(o, m.ID(), 3)
	b2 := f.assign(other, m.ID(), 2)
	f.assign(other, m.ID(), 1)

	a2.SetFlags([]uint{1})
	require.NoError(t, f.assignments.ReplaceFlags(f.ctx, a2))

	require.NoError(t, f.assignments.DeleteAndCloseGap(f.ctx, a2))

	assert.Equal(t, map[uint]int{a1.ID(): 1, a3.ID(): 2}, f.musicSequences(o.ID()))
	assert.Equal(t, 2, f.musicSequences(other.ID())[b2.ID()])

	var flags int64
	require.NoError(t, f.db.Model(&models.AssignmentFlagModel{}).Where("assignment_id = ?", a2.ID()).Count(&flags).Error)
	assert.Zero(t, flags)
}

func TestAssignmentRepository_ListByPlanFollowsRunningOrder(t *testing.T) {
	f := newFixture(t)
	s := f.globalSlot("Hymn")
	m := f.piece("Salve Regina", false, nil)
	p := f.plan(1, false)
	second := f.occurrence(p.ID(), s.ID(), 2)
	first := f.occurrence(p.ID(), s.ID(), 1)
	x := f.assign(second, m.ID(), 1)
	y := f.assign(first, m.ID(), 2)
	z := f.assign(first, m.ID(), 1)

	list, err := f.assignments.ListByPlan(f.ctx, p.ID())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []uint{z.ID(), y.ID(), x.ID()}, []uint{list[0].ID(), list[1].ID(), list[2].ID()})
}

func TestAssignmentRepository_RemoveScopeChecksOwner(t *testing.T) {
	f := newFixture(t)
	s := f.globalSlot("Sanctus")
	m := f.piece("Sanctus XVIII", false, nil)
	p := f.plan(1, false)
	o := f.occurrence(p.ID(), s.ID(), 1)
	a := f.assign(o, m.ID(), 1)
	b := f.assign(o, m.ID(), 2)

	scope, err := plan.NewScope("part", 1)
	require.NoError(t, err)
	stored, err := f.assignments.AddScope(f.ctx, a.ID(), scope)
	require.NoError(t, err)

	owner, err := f.assignments.FindScopeOwner(f.ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID(), owner)

	removed, err := f.assignments.RemoveScope(f.ctx, b.ID(), stored.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = f.assignments.RemoveScope(f.ctx, a.ID(), stored.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	owner, err = f.assignments.FindScopeOwner(f.ctx, stored.ID)
	require.NoError(t, err)
	assert.Zero(t, owner)
}

func TestAssignmentRepository_SwapLeavesOccurrenceOrderAlone(t *testing.T) {
	f := newFixture(t)
	s := f.globalSlot("Kyrie")
	m := f.piece("Kyrie IV", false, nil)
	p := f.plan(1, false)
	o1 := f.occurrence(p.ID(), s.ID(), 1)
	o2 := f.occurrence(p.ID(), s.ID(), 2)
	a1 := f.assign(o1, m.ID(), 1)
	a2 := f.assign(o1, m.ID(), 2)
	before := f.sequences(p.ID())

	require.NoError(t, f.assignments.SwapMusicSequence(f.ctx, a1, a2))

	assert.Equal(t, map[uint]int{a1.ID(): 2, a2.ID(): 1}, f.musicSequences(o1.ID()))
	assert.Equal(t, before, f.sequences(p.ID()))
	assert.Equal(t, map[uint]int{o1.ID(): 1, o2.ID(): 2}, before)
}
