package usecases

import (
	"context"
	"fmt"

	"github.com/szentjozsefhackathon/cantores/internal/application/catalog/dto"
	"github.com/szentjozsefhackathon/cantores/internal/domain/slot"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// CreateGlobalSlotCommand describes a new catalog-wide slot.
type CreateGlobalSlotCommand struct {
	Name                string
	Description         string
	IsIncludedByDefault bool
}

// CreateGlobalSlotUseCase adds a slot definition available to every plan.
type CreateGlobalSlotUseCase struct {
	slotRepo slot.Repository
	logger   logger.Interface
}

// NewCreateGlobalSlotUseCase creates a new CreateGlobalSlotUseCase.
func NewCreateGlobalSlotUseCase(slotRepo slot.Repository, logger logger.Interface) *CreateGlobalSlotUseCase {
	return &CreateGlobalSlotUseCase{slotRepo: slotRepo, logger: logger}
}

func (uc *CreateGlobalSlotUseCase) Execute(ctx context.Context, cmd CreateGlobalSlotCommand) (*dto.SlotDTO, error) {
	def, err := slot.NewGlobalSlot(cmd.Name, cmd.Description, cmd.IsIncludedByDefault)
	if err != nil {
		uc.logger.Warnw("invalid global slot", "name", cmd.Name, "error", err)
		return nil, toAppError(err)
	}

	exists, err := uc.slotRepo.ExistsGlobalName(ctx, def.NameKey())
	if err != nil {
		uc.logger.Errorw("failed to check slot name", "name", def.Name(), "error", err)
		return nil, fmt.Errorf("failed to check slot name: %w", err)
	}
	if exists {
		uc.logger.Warnw("global slot name already taken", "name", def.Name())
		return nil, toAppError(slot.ErrNameExists)
	}

	if err := uc.slotRepo.Create(ctx, def); err != nil {
		uc.logger.Errorw("failed to create global slot", "name", def.Name(), "error", err)
		return nil, toAppError(err)
	}

	uc.logger.Infow("global slot created", "slot_id", def.ID(), "name", def.Name())
	return dto.ToSlotDTO(def), nil
}
