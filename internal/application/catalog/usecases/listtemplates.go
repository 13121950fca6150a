package usecases

import (
	"context"
	"fmt"

	"github.com/szentjozsefhackathon/cantores/internal/application/catalog/dto"
	"github.com/szentjozsefhackathon/cantores/internal/domain/template"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
	"github.com/szentjozsefhackathon/cantores/internal/shared/mapper"
)

// ListActiveTemplatesUseCase lists usable templates, served from the
// cache when possible.
type ListActiveTemplatesUseCase struct {
	templateRepo template.Repository
	cache        TemplateCache
	logger       logger.Interface
}

// NewListActiveTemplatesUseCase creates a new ListActiveTemplatesUseCase.
// cache may be nil.
func NewListActiveTemplatesUseCase(templateRepo template.Repository, cache TemplateCache, logger logger.Interface) *ListActiveTemplatesUseCase {
	return &ListActiveTemplatesUseCase{templateRepo: templateRepo, cache: cache, logger: logger}
}

func (uc *ListActiveTemplatesUseCase) Execute(ctx context.Context, genreID *uint) ([]*dto.TemplateDTO, error) {
	if uc.cache != nil {
		cached, ok, err := uc.cache.Get(ctx, genreID)
		if err != nil {
			uc.logger.Warnw("template cache read failed, falling back to database", "error", err)
		} else if ok {
			return cached, nil
		}
	}

	templates, err := uc.templateRepo.ListActive(ctx, genreID)
	if err != nil {
		uc.logger.Errorw("failed to list templates", "error", err)
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	result := mapper.MapSlice(templates, dto.ToTemplateDTO)
	if result == nil {
		result = []*dto.TemplateDTO{}
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, genreID, result); err != nil {
			uc.logger.Warnw("failed to cache templates", "error", err)
		}
	}
	return result, nil
}
