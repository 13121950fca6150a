package usecases

import (
	"context"
	"fmt"

	"github.com/szentjozsefhackathon/cantores/internal/application/catalog/dto"
	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/domain/slot"
	"github.com/szentjozsefhackathon/cantores/internal/shared/db"
	"github.com/szentjozsefhackathon/cantores/internal/shared/errors"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// CreateCustomSlotCommand describes a slot private to one plan.
// Ownership of the plan is checked by the caller.
type CreateCustomSlotCommand struct {
	PlanID      uint
	Name        string
	Description string
}

// CreateCustomSlotUseCase creates a custom slot and appends it to its plan.
type CreateCustomSlotUseCase struct {
	planRepo       plan.Repository
	occurrenceRepo plan.OccurrenceRepository
	slotRepo       slot.Repository
	txMgr          *db.TransactionManager
	logger         logger.Interface
}

// NewCreateCustomSlotUseCase creates a new CreateCustomSlotUseCase.
func NewCreateCustomSlotUseCase(
	planRepo plan.Repository,
	occurrenceRepo plan.OccurrenceRepository,
	slotRepo slot.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *CreateCustomSlotUseCase {
	return &CreateCustomSlotUseCase{
		planRepo:       planRepo,
		occurrenceRepo: occurrenceRepo,
		slotRepo:       slotRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *CreateCustomSlotUseCase) Execute(ctx context.Context, cmd CreateCustomSlotCommand) (*dto.CustomSlotResult, error) {
	var result *dto.CustomSlotResult

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		p, err := uc.planRepo.LockByID(txCtx, cmd.PlanID)
		if err != nil {
			return fmt.Errorf("failed to lock plan: %w", err)
		}
		if p == nil {
			return errors.NewNotFoundError("plan not found")
		}

		def, err := slot.NewCustomSlot(p.ID(), p.OwnerID(), cmd.Name, cmd.Description)
		if err != nil {
			return toAppError(err)
		}
		if err := uc.slotRepo.Create(txCtx, def); err != nil {
			return err
		}

		count, err := uc.occurrenceRepo.CountByPlan(txCtx, p.ID())
		if err != nil {
			return fmt.Errorf("failed to count occurrences: %w", err)
		}
		o, err := plan.NewSlotOccurrence(p.ID(), def.ID(), plan.NextPosition(count))
		if err != nil {
			return err
		}
		if err := uc.occurrenceRepo.Create(txCtx, o); err != nil {
			return err
		}

		result = &dto.CustomSlotResult{
			Slot:         dto.ToSlotDTO(def),
			OccurrenceID: o.ID(),
			Sequence:     o.Sequence(),
		}
		return nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			uc.logger.Warnw("custom slot rejected", "plan_id", cmd.PlanID, "error", err)
		} else {
			uc.logger.Errorw("failed to create custom slot", "plan_id", cmd.PlanID, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("custom slot created",
		"plan_id", cmd.PlanID,
		"slot_id", result.Slot.ID,
		"sequence", result.Sequence,
	)
	return result, nil
}
