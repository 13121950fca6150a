package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/szentjozsefhackathon/cantores/internal/application/catalog/dto"
	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/domain/slot"
	"github.com/szentjozsefhackathon/cantores/internal/domain/template"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/persistence/testdb"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/repository"
	"github.com/szentjozsefhackathon/cantores/internal/shared/db"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

type harness struct {
	t           *testing.T
	ctx         context.Context
	log         logger.Interface
	slots       slot.Repository
	templates   template.Repository
	plans       plan.Repository
	occurrences plan.OccurrenceRepository
	assignments plan.AssignmentRepository
	txMgr       *db.TransactionManager
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	database := testdb.Open(t)
	log := logger.NewDiscardLogger()
	return &harness{
		t:           t,
		ctx:         context.Background(),
		log:         log,
		slots:       repository.NewSlotRepository(database, log),
		templates:   repository.NewTemplateRepository(database, log),
		plans:       repository.NewPlanRepository(database, log),
		occurrences: repository.NewPlanSlotRepository(database, log),
		assignments: repository.NewAssignmentRepository(database, log),
		txMgr:       db.NewTransactionManager(database),
	}
}

func (h *harness) globalSlot(name string) *dto.SlotDTO {
	h.t.Helper()
	created, err := NewCreateGlobalSlotUseCase(h.slots, h.log).Execute(h.ctx, CreateGlobalSlotCommand{
		Name:                name,
		IsIncludedByDefault: true,
	})
	require.NoError(h.t, err)
	return created
}

func (h *harness) plan(owner uint) *plan.Plan {
	h.t.Helper()
	p, err := plan.NewPlan(owner, false, nil, nil, nil)
	require.NoError(h.t, err)
	require.NoError(h.t, h.plans.Create(h.ctx, p))
	return p
}

func cacheKey(genreID *uint) string {
	if genreID == nil {
		return "all"
	}
	return fmt.Sprintf("%d", *genreID)
}

// memoryCache is a TemplateCache counting reads and writes.
type memoryCache struct {
	entries     map[string][]*dto.TemplateDTO
	hits        int
	sets        int
	invalidated int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]*dto.TemplateDTO)}
}

func (c *memoryCache) Get(_ context.Context, genreID *uint) ([]*dto.TemplateDTO, bool, error) {
	entry, ok := c.entries[cacheKey(genreID)]
	if ok {
		c.hits++
	}
	return entry, ok, nil
}

func (c *memoryCache) Set(_ context.Context, genreID *uint, templates []*dto.TemplateDTO) error {
	c.sets++
	c.entries[cacheKey(genreID)] = templates
	return nil
}

func (c *memoryCache) Invalidate(context.Context) error {
	c.invalidated++
	c.entries = make(map[string][]*dto.TemplateDTO)
	return nil
}

var errCacheDown = stderrors.New("cache unavailable")

type brokenCache struct{}

func (brokenCache) Get(context.Context, *uint) ([]*dto.TemplateDTO, bool, error) {
	return nil, false, errCacheDown
}

func (brokenCache) Set(context.Context, *uint, []*dto.TemplateDTO) error { return errCacheDown }

func (brokenCache) Invalidate(context.Context) error { return errCacheDown }
