package usecases

import (
	"context"
	"fmt"

	"github.com/szentjozsefhackathon/cantores/internal/application/catalog/dto"
	"github.com/szentjozsefhackathon/cantores/internal/domain/slot"
	"github.com/szentjozsefhackathon/cantores/internal/shared/authorization"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
	"github.com/szentjozsefhackathon/cantores/internal/shared/mapper"
)

// ListSlotsQuery selects catalog slots for a viewer.
type ListSlotsQuery struct {
	Viewer  *authorization.Viewer
	GenreID *uint
	Search  string
}

// ListSlotsUseCase lists global slots plus the viewer's own custom slots.
type ListSlotsUseCase struct {
	slotRepo slot.Repository
	logger   logger.Interface
}

// NewListSlotsUseCase creates a new ListSlotsUseCase.
func NewListSlotsUseCase(slotRepo slot.Repository, logger logger.Interface) *ListSlotsUseCase {
	return &ListSlotsUseCase{slotRepo: slotRepo, logger: logger}
}

func (uc *ListSlotsUseCase) Execute(ctx context.Context, query ListSlotsQuery) ([]*dto.SlotDTO, error) {
	slots, err := uc.slotRepo.VisibleTo(ctx, query.Viewer.UserIDPtr(), slot.CatalogFilter{
		GenreID: query.GenreID,
		Search:  query.Search,
	})
	if err != nil {
		uc.logger.Errorw("failed to list slots", "error", err)
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}
	return mapper.MapSlice(slots, dto.ToSlotDTO), nil
}
