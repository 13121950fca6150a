package usecases

import (
	"context"
	"fmt"

	"github.com/szentjozsefhackathon/cantores/internal/application/catalog/dto"
	"github.com/szentjozsefhackathon/cantores/internal/domain/slot"
	"github.com/szentjozsefhackathon/cantores/internal/domain/template"
	"github.com/szentjozsefhackathon/cantores/internal/shared/errors"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// CreateTemplateCommand describes a new template.
type CreateTemplateCommand struct {
	Name        string
	Description string
	GenreID     *uint
	Slots       []template.Slot
}

// CreateTemplateUseCase adds a template built from active global slots.
type CreateTemplateUseCase struct {
	templateRepo template.Repository
	slotRepo     slot.Repository
	cache        TemplateCache
	logger       logger.Interface
}

// NewCreateTemplateUseCase creates a new CreateTemplateUseCase.
// cache may be nil.
func NewCreateTemplateUseCase(
	templateRepo template.Repository,
	slotRepo slot.Repository,
	cache TemplateCache,
	logger logger.Interface,
) *CreateTemplateUseCase {
	return &CreateTemplateUseCase{
		templateRepo: templateRepo,
		slotRepo:     slotRepo,
		cache:        cache,
		logger:       logger,
	}
}

func (uc *CreateTemplateUseCase) Execute(ctx context.Context, cmd CreateTemplateCommand) (*dto.TemplateDTO, error) {
	t, err := template.NewTemplate(cmd.Name, cmd.Description, cmd.GenreID, cmd.Slots)
	if err != nil {
		uc.logger.Warnw("invalid template", "name", cmd.Name, "error", err)
		return nil, toAppError(err)
	}

	exists, err := uc.templateRepo.ExistsByName(ctx, t.Name())
	if err != nil {
		uc.logger.Errorw("failed to check template name", "name", t.Name(), "error", err)
		return nil, fmt.Errorf("failed to check template name: %w", err)
	}
	if exists {
		return nil, toAppError(template.ErrNameExists)
	}

	slots, err := uc.slotRepo.GetByIDs(ctx, t.SlotIDs())
	if err != nil {
		uc.logger.Errorw("failed to load template slots", "error", err)
		return nil, fmt.Errorf("failed to load template slots: %w", err)
	}
	for _, id := range t.SlotIDs() {
		def, ok := slots[id]
		if !ok || def.IsCustom() || def.IsRetired() {
			uc.logger.Warnw("template references unusable slot", "name", t.Name(), "slot_id", id)
			return nil, errors.NewValidationError(
				"template slots must be active global slots",
				fmt.Sprintf("slot %d", id),
			).WithCause(template.ErrInvalidSlot)
		}
	}

	if err := uc.templateRepo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to create template", "name", t.Name(), "error", err)
		return nil, toAppError(err)
	}

	invalidate(ctx, uc.cache, uc.logger)
	uc.logger.Infow("template created", "template_id", t.ID(), "name", t.Name(), "slots", len(t.Slots()))
	return dto.ToTemplateDTO(t), nil
}

// invalidate drops cached listings. Failures only leave stale entries
// until their TTL expires.
func invalidate(ctx context.Context, cache TemplateCache, log logger.Interface) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		log.Warnw("failed to invalidate template cache", "error", err)
	}
}
