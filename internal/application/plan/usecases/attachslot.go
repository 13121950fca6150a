package usecases

import (
	"context"
	"fmt"

	"github.com/szentjozsefhackathon/cantores/internal/application/plan/dto"
	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/domain/slot"
	"github.com/szentjozsefhackathon/cantores/internal/shared/db"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// AttachSlotCommand appends one occurrence of a slot to a plan.
type AttachSlotCommand struct {
	PlanID uint
	SlotID uint
}

// AttachSlotUseCase appends a slot occurrence at the end of the running order.
type AttachSlotUseCase struct {
	planRepo       plan.Repository
	occurrenceRepo plan.OccurrenceRepository
	slotRepo       slot.Repository
	txMgr          *db.TransactionManager
	logger         logger.Interface
}

// NewAttachSlotUseCase creates a new AttachSlotUseCase.
func NewAttachSlotUseCase(
	planRepo plan.Repository,
	occurrenceRepo plan.OccurrenceRepository,
	slotRepo slot.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *AttachSlotUseCase {
	return &AttachSlotUseCase{
		planRepo:       planRepo,
		occurrenceRepo: occurrenceRepo,
		slotRepo:       slotRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

// Execute attaches the slot. Unknown plans or slots, retired slots, and
// custom slots of other plans leave the plan unchanged.
func (uc *AttachSlotUseCase) Execute(ctx context.Context, cmd AttachSlotCommand) (*dto.AttachResult, error) {
	result := &dto.AttachResult{}

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		p, err := uc.planRepo.LockByID(txCtx, cmd.PlanID)
		if err != nil {
			return fmt.Errorf("failed to lock plan: %w", err)
		}
		if p == nil {
			return nil
		}

		def, err := uc.slotRepo.GetByID(txCtx, cmd.SlotID)
		if err != nil {
			return fmt.Errorf("failed to get slot: %w", err)
		}
		if !attachable(def, p.ID()) {
			uc.logger.Warnw("slot not attachable to plan", "plan_id", p.ID(), "slot_id", cmd.SlotID)
			return nil
		}

		o, err := appendOccurrence(txCtx, uc.occurrenceRepo, p.ID(), def.ID())
		if err != nil {
			return err
		}

		occurrence := dto.ToOccurrenceDTO(o)
		occurrence.SlotName = def.Name()
		occurrence.IsCustom = def.IsCustom()
		result.Changed = true
		result.Occurrence = occurrence
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to attach slot", "plan_id", cmd.PlanID, "slot_id", cmd.SlotID, "error", err)
		return nil, err
	}

	if result.Changed {
		uc.logger.Infow("slot attached", "plan_id", cmd.PlanID, "slot_id", cmd.SlotID, "sequence", result.Occurrence.Sequence)
	}
	return result, nil
}

// attachable reports whether def may gain a new occurrence in planID.
func attachable(def *slot.SlotDefinition, planID uint) bool {
	if def == nil || def.IsRetired() {
		return false
	}
	if owner := def.Owner(); owner != nil && owner.PlanID != planID {
		return false
	}
	return true
}

// appendOccurrence places slotID after the current last occurrence.
// The caller holds the plan lock.
func appendOccurrence(ctx context.Context, repo plan.OccurrenceRepository, planID, slotID uint) (*plan.SlotOccurrence, error) {
	count, err := repo.CountByPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to count occurrences: %w", err)
	}
	o, err := plan.NewSlotOccurrence(planID, slotID, plan.NextPosition(count))
	if err != nil {
		return nil, err
	}
	if err := repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}
