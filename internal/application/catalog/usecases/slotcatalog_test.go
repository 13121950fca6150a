package usecases

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/domain/slot"
	"github.com/szentjozsefhackathon/cantores/internal/shared/authorization"
	"github.com/szentjozsefhackathon/cantores/internal/shared/errors"
)

func TestCreateGlobalSlot(t *testing.T) {
	h := newHarness(t)
	uc := NewCreateGlobalSlotUseCase(h.slots, h.log)

	created, err := uc.Execute(h.ctx, CreateGlobalSlotCommand{Name: "  Kyrie  ", Description: "ordinary"})
	require.NoError(t, err)
	assert.Equal(t, "Kyrie", created.Name)
	assert.False(t, created.IsCustom)
	assert.Equal(t, "active", created.Lifecycle)

	tests := []struct {
		name  string
		input string
		check func(error) bool
	}{
		{"empty", "   ", errors.IsValidationError},
		{"same name", "Kyrie", errors.IsConflictError},
		{"other case", "KYRIE", errors.IsConflictError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(h.ctx, CreateGlobalSlotCommand{Name: tt.input})
			require.Error(t, err)
			assert.True(t, tt.check(err))
		})
	}
}

func TestCreateCustomSlot_AttachesToPlan(t *testing.T) {
	h := newHarness(t)
	uc := NewCreateCustomSlotUseCase(h.plans, h.occurrences, h.slots, h.txMgr, h.log)
	p := h.plan(1)
	global := h.globalSlot("Entrance")
	o, err := plan.NewSlotOccurrence(p.ID(), global.ID, 1)
	require.NoError(t, err)
	require.NoError(t, h.occurrences.Create(h.ctx, o))

	result, err := uc.Execute(h.ctx, CreateCustomSlotCommand{PlanID: p.ID(), Name: "Entrance"})
	require.NoError(t, err)
	assert.True(t, result.Slot.IsCustom)
	require.NotNil(t, result.Slot.OwnerPlanID)
	assert.Equal(t, p.ID(), *result.Slot.OwnerPlanID)
	assert.Equal(t, 2, result.Sequence)

	second, err := uc.Execute(h.ctx, CreateCustomSlotCommand{PlanID: p.ID(), Name: "Entrance"})
	require.NoError(t, err)
	assert.Equal(t, 3, second.Sequence)

	_, err = uc.Execute(h.ctx, CreateCustomSlotCommand{PlanID: 9999, Name: "Lost"})
	assert.True(t, errors.IsNotFoundError(err))

	_, err = uc.Execute(h.ctx, CreateCustomSlotCommand{PlanID: p.ID(), Name: ""})
	assert.True(t, errors.IsValidationError(err))
	count, err := h.occurrences.CountByPlan(h.ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestListSlots_OnlyOwnCustomSlots(t *testing.T) {
	h := newHarness(t)
	custom := NewCreateCustomSlotUseCase(h.plans, h.occurrences, h.slots, h.txMgr, h.log)
	list := NewListSlotsUseCase(h.slots, h.log)
	h.globalSlot("Gloria")
	mine := h.plan(1)
	theirs := h.plan(2)
	_, err := custom.Execute(h.ctx, CreateCustomSlotCommand{PlanID: mine.ID(), Name: "My antiphon"})
	require.NoError(t, err)
	_, err = custom.Execute(h.ctx, CreateCustomSlotCommand{PlanID: theirs.ID(), Name: "Their antiphon"})
	require.NoError(t, err)

	names := func(v *authorization.Viewer, search string) []string {
		slots, err := list.Execute(h.ctx, ListSlotsQuery{Viewer: v, Search: search})
		require.NoError(t, err)
		out := make([]string, 0, len(slots))
		for _, s := range slots {
			out = append(out, s.Name)
		}
		return out
	}

	assert.Equal(t, []string{"Gloria"}, names(nil, ""))
	assert.Equal(t, []string{"Gloria", "My antiphon"}, names(authorization.NewViewer(1, authorization.RoleUser), ""))
	assert.Equal(t, []string{"Their antiphon"}, names(authorization.NewViewer(2, authorization.RoleUser), "antiphon"))
}

func TestRetireSlot(t *testing.T) {
	h := newHarness(t)
	uc := NewRetireSlotUseCase(h.slots, h.log)
	created := h.globalSlot("Gradual")

	result, err := uc.Execute(h.ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, result.Changed)

	result, err = uc.Execute(h.ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, result.Changed)

	_, err = uc.Execute(h.ctx, 9999)
	assert.True(t, errors.IsNotFoundError(err))

	visible, err := NewListSlotsUseCase(h.slots, h.log).Execute(h.ctx, ListSlotsQuery{})
	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestHardDeleteSlot_RefusedWhileReferenced(t *testing.T) {
	h := newHarness(t)
	uc := NewHardDeleteSlotUseCase(h.slots, h.log)
	created := h.globalSlot("Alleluia")
	p := h.plan(1)
	o, err := plan.NewSlotOccurrence(p.ID(), created.ID, 1)
	require.NoError(t, err)
	require.NoError(t, h.occurrences.Create(h.ctx, o))

	err = uc.Execute(h.ctx, created.ID)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.True(t, stderrors.Is(err, slot.ErrSlotReferenced))

	require.NoError(t, h.plans.Delete(h.ctx, p.ID()))
	require.NoError(t, uc.Execute(h.ctx, created.ID))

	err = uc.Execute(h.ctx, created.ID)
	assert.True(t, errors.IsNotFoundError(err))
}
