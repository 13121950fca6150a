package usecases

import (
	"context"
	"fmt"

	"github.com/szentjozsefhackathon/cantores/internal/application/catalog/dto"
	"github.com/szentjozsefhackathon/cantores/internal/domain/slot"
	"github.com/szentjozsefhackathon/cantores/internal/shared/errors"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// RetireSlotUseCase soft-deletes a slot definition. Existing occurrences
// keep pointing at it; new attachments are refused.
type RetireSlotUseCase struct {
	slotRepo slot.Repository
	logger   logger.Interface
}

// NewRetireSlotUseCase creates a new RetireSlotUseCase.
func NewRetireSlotUseCase(slotRepo slot.Repository, logger logger.Interface) *RetireSlotUseCase {
	return &RetireSlotUseCase{slotRepo: slotRepo, logger: logger}
}

func (uc *RetireSlotUseCase) Execute(ctx context.Context, slotID uint) (*dto.ChangeResult, error) {
	def, err := uc.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		uc.logger.Errorw("failed to get slot", "slot_id", slotID, "error", err)
		return nil, fmt.Errorf("failed to get slot: %w", err)
	}
	if def == nil {
		return nil, errors.NewNotFoundError("slot not found")
	}

	if !def.Retire() {
		return &dto.ChangeResult{Changed: false}, nil
	}
	if err := uc.slotRepo.UpdateLifecycle(ctx, def); err != nil {
		uc.logger.Errorw("failed to retire slot", "slot_id", slotID, "error", err)
		return nil, toAppError(err)
	}

	uc.logger.Infow("slot retired", "slot_id", slotID)
	return &dto.ChangeResult{Changed: true}, nil
}
