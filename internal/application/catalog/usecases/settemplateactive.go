package usecases

import (
	"context"
	"fmt"

	"github.com/szentjozsefhackathon/cantores/internal/application/catalog/dto"
	"github.com/szentjozsefhackathon/cantores/internal/domain/template"
	"github.com/szentjozsefhackathon/cantores/internal/shared/errors"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// SetTemplateActiveCommand toggles whether a template is offered to users.
type SetTemplateActiveCommand struct {
	TemplateID uint
	Active     bool
}

// SetTemplateActiveUseCase activates or deactivates a template.
type SetTemplateActiveUseCase struct {
	templateRepo template.Repository
	cache        TemplateCache
	logger       logger.Interface
}

// NewSetTemplateActiveUseCase creates a new SetTemplateActiveUseCase.
func NewSetTemplateActiveUseCase(templateRepo template.Repository, cache TemplateCache, logger logger.Interface) *SetTemplateActiveUseCase {
	return &SetTemplateActiveUseCase{templateRepo: templateRepo, cache: cache, logger: logger}
}

func (uc *SetTemplateActiveUseCase) Execute(ctx context.Context, cmd SetTemplateActiveCommand) (*dto.ChangeResult, error) {
	t, err := uc.templateRepo.GetByID(ctx, cmd.TemplateID)
	if err != nil {
		uc.logger.Errorw("failed to get template", "template_id", cmd.TemplateID, "error", err)
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError("template not found")
	}

	if !t.SetActive(cmd.Active) {
		return &dto.ChangeResult{Changed: false}, nil
	}
	if err := uc.templateRepo.UpdateStatus(ctx, t); err != nil {
		uc.logger.Errorw("failed to update template status", "template_id", cmd.TemplateID, "error", err)
		return nil, toAppError(err)
	}

	invalidate(ctx, uc.cache, uc.logger)
	uc.logger.Infow("template status updated", "template_id", cmd.TemplateID, "active", cmd.Active)
	return &dto.ChangeResult{Changed: true}, nil
}
