package usecases

import (
	"context"

	"github.com/szentjozsefhackathon/cantores/internal/domain/slot"
	"github.com/szentjozsefhackathon/cantores/internal/shared/errors"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// HardDeleteSlotUseCase removes a slot definition that nothing references.
type HardDeleteSlotUseCase struct {
	slotRepo slot.Repository
	logger   logger.Interface
}

// NewHardDeleteSlotUseCase creates a new HardDeleteSlotUseCase.
func NewHardDeleteSlotUseCase(slotRepo slot.Repository, logger logger.Interface) *HardDeleteSlotUseCase {
	return &HardDeleteSlotUseCase{slotRepo: slotRepo, logger: logger}
}

// Execute deletes the slot. A referenced slot yields a conflict error
// wrapping slot.ErrSlotReferenced.
func (uc *HardDeleteSlotUseCase) Execute(ctx context.Context, slotID uint) error {
	if err := uc.slotRepo.HardDelete(ctx, slotID); err != nil {
		appErr := toAppError(err)
		if errors.IsAppError(appErr) {
			uc.logger.Warnw("slot delete refused", "slot_id", slotID, "error", err)
		} else {
			uc.logger.Errorw("failed to delete slot", "slot_id", slotID, "error", err)
		}
		return appErr
	}

	uc.logger.Infow("slot deleted", "slot_id", slotID)
	return nil
}
