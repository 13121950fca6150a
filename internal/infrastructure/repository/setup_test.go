package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/szentjozsefhackathon/cantores/internal/domain/music"
	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/domain/slot"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/persistence/testdb"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

type fixture struct {
	t           *testing.T
	ctx         context.Context
	db          *gorm.DB
	log         logger.Interface
	slots       slot.Repository
	music       music.Repository
	plans       plan.Repository
	occurrences plan.OccurrenceRepository
	assignments plan.AssignmentRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	database := testdb.Open(t)

	log := logger.NewDiscardLogger()
	return &fixture{
		t:           t,
		ctx:         context.Background(),
		db:          database,
		log:         log,
		slots:       NewSlotRepository(database, log),
		music:       NewMusicRepository(database, log),
		plans:       NewPlanRepository(database, log),
		occurrences: NewPlanSlotRepository(database, log),
		assignments: NewAssignmentRepository(database, log),
	}
}

func (f *fixture) globalSlot(name string) *slot.SlotDefinition {
	f.t.Helper()
	s, err := slot.NewGlobalSlot(name, "", true)
	require.NoError(f.t, err)
	require.NoError(f.t, f.slots.Create(f.ctx, s))
	return s
}

func (f *fixture) piece(title string, private bool, owner *uint) *music.Music {
	f.t.Helper()
	m, err := music.NewMusic(title, private, owner)
	require.NoError(f.t, err)
	require.NoError(f.t, f.music.Create(f.ctx, m))
	return m
}

func (f *fixture) plan(owner uint, private bool, celebrationIDs ...uint) *plan.Plan {
	f.t.Helper()
	p, err := plan.NewPlan(owner, private, nil, nil, celebrationIDs)
	require.NoError(f.t, err)
	require.NoError(f.t, f.plans.Create(f.ctx, p))
	return p
}

func (f *fixture) occurrence(planID, slotID uint, sequence int) *plan.SlotOccurrence {
	f.t.Helper()
	o, err := plan.NewSlotOccurrence(planID, slotID, sequence)
	require.NoError(f.t, err)
	require.NoError(f.t, f.occurrences.Create(f.ctx, o))
	return o
}

func (f *fixture) assign(o *plan.SlotOccurrence, musicID uint, sequence int) *plan.Assignment {
	f.t.Helper()
	a, err := plan.NewAssignment(o, musicID, sequence)
	require.NoError(f.t, err)
	require.NoError(f.t, f.assignments.Create(f.ctx, a))
	return a
}

func (f *fixture) sequences(planID uint) map[uint]int {
	f.t.Helper()
	list, err := f.occurrences.ListByPlan(f.ctx, planID)
	require.NoError(f.t, err)
	out := make(map[uint]int, len(list))
	for _, o := range list {
		out[o.ID()] = o.Sequence()
	}
	return out
}

func (f *fixture) musicSequences(occurrenceID uint) map[uint]int {
	f.t.Helper()
	list, err := f.assignments.ListByOccurrence(f.ctx, occurrenceID)
	require.NoError(f.t, err)
	out := make(map[uint]int, len(list))
	for _, a := range list {
		out[a.ID()] = a.MusicSequence()
	}
	return out
}

func uintPtr(v uint) *uint { return &v }
