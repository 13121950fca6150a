package handlers

import (
	"context"

	catalogdto "github.com/szentjozsefhackathon/cantores/internal/application/catalog/dto"
	catalogusecases "github.com/szentjozsefhackathon/cantores/internal/application/catalog/usecases"
)

// Use case interfaces for CatalogHandler

type listSlotsUseCase interface {
	Execute(ctx context.Context, query catalogusecases.ListSlotsQuery) ([]*catalogdto.SlotDTO, error)
}

type createGlobalSlotUseCase interface {
	Execute(ctx context.Context, cmd catalogusecases.CreateGlobalSlotCommand) (*catalogdto.SlotDTO, error)
}

type createCustomSlotUseCase interface {
	Execute(ctx context.Context, cmd catalogusecases.CreateCustomSlotCommand) (*catalogdto.CustomSlotResult, error)
}

type retireSlotUseCase interface {
	Execute(ctx context.Context, slotID uint) (*catalogdto.ChangeResult, error)
}

type hardDeleteSlotUseCase interface {
	Execute(ctx context.Context, slotID uint) error
}

type listTemplatesUseCase interface {
	Execute(ctx context.Context, genreID *uint) ([]*catalogdto.TemplateDTO, error)
}

type createTemplateUseCase interface {
	Execute(ctx context.Context, cmd catalogusecases.CreateTemplateCommand) (*catalogdto.TemplateDTO, error)
}

type setTemplateActiveUseCase interface {
	Execute(ctx context.Context, cmd catalogusecases.SetTemplateActiveCommand) (*catalogdto.ChangeResult, error)
}
