package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/szentjozsefhackathon/cantores/internal/domain/celebration"
	"github.com/szentjozsefhackathon/cantores/internal/domain/music"
	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/domain/slot"
	"github.com/szentjozsefhackathon/cantores/internal/domain/template"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/persistence/testdb"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/repository"
	"github.com/szentjozsefhackathon/cantores/internal/shared/authorization"
	"github.com/szentjozsefhackathon/cantores/internal/shared/db"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
	"github.com/szentjozsefhackathon/cantores/internal/shared/services/markdown"
)

// harness wires every plan use case against a real SQLite database.
type harness struct {
	t   *testing.T
	ctx context.Context
	log logger.Interface

	plans        plan.Repository
	occurrences  plan.OccurrenceRepository
	assignments  plan.AssignmentRepository
	flags        plan.FlagRepository
	suggestions  plan.SuggestionRepository
	slots        slot.Repository
	templates    template.Repository
	music        music.Repository
	celebrations celebration.Repository
	txMgr        *db.TransactionManager
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	database := testdb.Open(t)
	log := logger.NewDiscardLogger()
	return &harness{
		t:            t,
		ctx:          context.Background(),
		log:          log,
		plans:        repository.NewPlanRepository(database, log),
		occurrences:  repository.NewPlanSlotRepository(database, log),
		assignments:  repository.NewAssignmentRepository(database, log),
		flags:        repository.NewFlagRepository(database, log),
		suggestions:  repository.NewSuggestionRepository(database, log),
		slots:        repository.NewSlotRepository(database, log),
		templates:    repository.NewTemplateRepository(database, log),
		music:        repository.NewMusicRepository(database, log),
		celebrations: repository.NewCelebrationRepository(database, log),
		txMgr:        db.NewTransactionManager(database),
	}
}

func (h *harness) attachSlot() *AttachSlotUseCase {
	return NewAttachSlotUseCase(h.plans, h.occurrences, h.slots, h.txMgr, h.log)
}

func (h *harness) attachTemplate() *AttachTemplateUseCase {
	return NewAttachTemplateUseCase(h.plans, h.occurrences, h.templates, h.txMgr, h.log)
}

func (h *harness) moveOccurrence() *MoveOccurrenceUseCase {
	return NewMoveOccurrenceUseCase(h.plans, h.occurrences, h.txMgr, h.log)
}

func (h *harness) removeOccurrence() *RemoveOccurrenceUseCase {
	return NewRemoveOccurrenceUseCase(h.plans, h.occurrences, h.txMgr, h.log)
}

func (h *harness) assignMusic() *AssignMusicUseCase {
	return NewAssignMusicUseCase(h.plans, h.occurrences, h.assignments, h.music, h.txMgr, h.log)
}

func (h *harness) moveAssignment() *MoveAssignmentUseCase {
	return NewMoveAssignmentUseCase(h.plans, h.assignments, h.txMgr, h.log)
}

func (h *harness) unassignMusic() *UnassignMusicUseCase {
	return NewUnassignMusicUseCase(h.plans, h.assignments, h.txMgr, h.log)
}

func (h *harness) clonePlan() *ClonePlanUseCase {
	return NewClonePlanUseCase(h.plans, h.occurrences, h.assignments, h.slots, h.music, h.celebrations, h.txMgr, h.log)
}

func (h *harness) planView() *GetPlanViewUseCase {
	return NewGetPlanViewUseCase(h.plans, h.occurrences, h.assignments, h.flags, h.slots, h.music, h.celebrations,
		markdown.NewRenderer(), h.log)
}

func (h *harness) owner() *EnsurePlanOwnerUseCase {
	return NewEnsurePlanOwnerUseCase(h.plans, h.log)
}

func (h *harness) globalSlot(name string, includedByDefault bool) *slot.SlotDefinition {
	h.t.Helper()
	s, err := slot.NewGlobalSlot(name, "", includedByDefault)
	require.NoError(h.t, err)
	require.NoError(h.t, h.slots.Create(h.ctx, s))
	return s
}

func (h *harness) customSlot(p *plan.Plan, name string) *slot.SlotDefinition {
	h.t.Helper()
	s, err := slot.NewCustomSlot(p.ID(), p.OwnerID(), name, "")
	require.NoError(h.t, err)
	require.NoError(h.t, h.slots.Create(h.ctx, s))
	return s
}

func (h *harness) piece(title string, private bool, owner *uint) *music.Music {
	h.t.Helper()
	m, err := music.NewMusic(title, private, owner)
	require.NoError(h.t, err)
	require.NoError(h.t, h.music.Create(h.ctx, m))
	return m
}

func (h *harness) liturgical(name string) *celebration.Celebration {
	h.t.Helper()
	c, err := celebration.NewLiturgical(name, nil)
	require.NoError(h.t, err)
	require.NoError(h.t, h.celebrations.Create(h.ctx, c))
	return c
}

func (h *harness) plan(owner uint, private bool, celebrationIDs ...uint) *plan.Plan {
	h.t.Helper()
	p, err := plan.NewPlan(owner, private, nil, nil, celebrationIDs)
	require.NoError(h.t, err)
	require.NoError(h.t, h.plans.Create(h.ctx, p))
	return p
}

func (h *harness) attach(p *plan.Plan, s *slot.SlotDefinition) uint {
	h.t.Helper()
	result, err := h.attachSlot().Execute(h.ctx, AttachSlotCommand{PlanID: p.ID(), SlotID: s.ID()})
	require.NoError(h.t, err)
	require.True(h.t, result.Changed)
	return result.Occurrence.ID
}

func (h *harness) assign(p *plan.Plan, occurrenceID uint, m *music.Music) uint {
	h.t.Helper()
	result, err := h.assignMusic().Execute(h.ctx, AssignMusicCommand{
		PlanID:       p.ID(),
		OccurrenceID: occurrenceID,
		MusicID:      m.ID(),
		ActorID:      p.OwnerID(),
	})
	require.NoError(h.t, err)
	require.True(h.t, result.Changed)
	return result.Assignment.ID
}

// order returns occurrence IDs of planID in running order.
func (h *harness) order(planID uint) []uint {
	h.t.Helper()
	list, err := h.occurrences.ListByPlan(h.ctx, planID)
	require.NoError(h.t, err)
	ids := make([]uint, 0, len(list))
	for _, o := range list {
		ids = append(ids, o.ID())
	}
	return ids
}

func (h *harness) sequences(planID uint) map[uint]int {
	h.t.Helper()
	list, err := h.occurrences.ListByPlan(h.ctx, planID)
	require.NoError(h.t, err)
	out := make(map[uint]int, len(list))
	for _, o := range list {
		out[o.ID()] = o.Sequence()
	}
	return out
}

func (h *harness) musicOrder(occurrenceID uint) []uint {
	h.t.Helper()
	list, err := h.assignments.ListByOccurrence(h.ctx, occurrenceID)
	require.NoError(h.t, err)
	ids := make([]uint, 0, len(list))
	for _, a := range list {
		ids = append(ids, a.ID())
	}
	return ids
}

func (h *harness) musicSequences(occurrenceID uint) []int {
	h.t.Helper()
	list, err := h.assignments.ListByOccurrence(h.ctx, occurrenceID)
	require.NoError(h.t, err)
	out := make([]int, 0, len(list))
	for _, a := range list {
		out = append(out, a.MusicSequence())
	}
	return out
}

// allMusicSequences returns the music sequences of every occurrence of planID.
func (h *harness) allMusicSequences(planID uint) map[uint][]int {
	h.t.Helper()
	out := make(map[uint][]int)
	for _, occurrenceID := range h.order(planID) {
		out[occurrenceID] = h.musicSequences(occurrenceID)
	}
	return out
}

func viewer(id uint) *authorization.Viewer {
	return authorization.NewViewer(id, authorization.RoleUser)
}

func uintPtr(v uint) *uint { return &v }
