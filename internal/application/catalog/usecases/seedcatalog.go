package usecases

import (
	"context"
	"fmt"

	"github.com/szentjozsefhackathon/cantores/internal/domain/slot"
	"github.com/szentjozsefhackathon/cantores/internal/domain/template"
	"github.com/szentjozsefhackathon/cantores/internal/shared/errors"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

type SeedSlot struct {
	Name                string
	Description         string
	IsIncludedByDefault bool
}

// SeedTemplateSlot references a global slot by name.
type SeedTemplateSlot struct {
	Name                string
	IsIncludedByDefault bool
}

type SeedTemplate struct {
	Name        string
	Description string
	GenreID     *uint
	Slots       []SeedTemplateSlot
}

// SeedCatalogCommand is a full catalog description. Template slots are
// stored in the listed order.
type SeedCatalogCommand struct {
	Slots     []SeedSlot
	Templates []SeedTemplate
}

type SeedCatalogResult struct {
	SlotsCreated     int `json:"slots_created"`
	SlotsSkipped     int `json:"slots_skipped"`
	TemplatesCreated int `json:"templates_created"`
	TemplatesSkipped int `json:"templates_skipped"`
}

// SeedCatalogUseCase loads global slots and templates, skipping names
// that already exist so it can run repeatedly.
type SeedCatalogUseCase struct {
	slotRepo       slot.Repository
	templateRepo   template.Repository
	createSlot     *CreateGlobalSlotUseCase
	createTemplate *CreateTemplateUseCase
	logger         logger.Interface
}

func NewSeedCatalogUseCase(
	slotRepo slot.Repository,
	templateRepo template.Repository,
	cache TemplateCache,
	logger logger.Interface,
) *SeedCatalogUseCase {
	return &SeedCatalogUseCase{
		slotRepo:       slotRepo,
		templateRepo:   templateRepo,
		createSlot:     NewCreateGlobalSlotUseCase(slotRepo, logger),
		createTemplate: NewCreateTemplateUseCase(templateRepo, slotRepo, cache, logger),
		logger:         logger,
	}
}

func (uc *SeedCatalogUseCase) Execute(ctx context.Context, cmd SeedCatalogCommand) (*SeedCatalogResult, error) {
	result := &SeedCatalogResult{}

	for _, s := range cmd.Slots {
		exists, err := uc.slotRepo.ExistsGlobalName(ctx, slot.NameKey(s.Name))
		if err != nil {
			return result, fmt.Errorf("failed to check slot name: %w", err)
		}
		if exists {
			result.SlotsSkipped++
			continue
		}
		if _, err := uc.createSlot.Execute(ctx, CreateGlobalSlotCommand{
			Name:                s.Name,
			Description:         s.Description,
			IsIncludedByDefault: s.IsIncludedByDefault,
		}); err != nil {
			return result, err
		}
		result.SlotsCreated++
	}

	active, err := uc.slotRepo.VisibleTo(ctx, nil, slot.CatalogFilter{})
	if err != nil {
		return result, fmt.Errorf("failed to list global slots: %w", err)
	}
	byName := make(map[string]uint, len(active))
	for _, def := range active {
		if !def.IsCustom() {
			byName[def.NameKey()] = def.ID()
		}
	}

	for _, t := range cmd.Templates {
		exists, err := uc.templateRepo.ExistsByName(ctx, t.Name)
		if err != nil {
			return result, fmt.Errorf("failed to check template name: %w", err)
		}
		if exists {
			result.TemplatesSkipped++
			continue
		}

		slots := make([]template.Slot, 0, len(t.Slots))
		for i, ts := range t.Slots {
			id, ok := byName[slot.NameKey(ts.Name)]
			if !ok {
				uc.logger.Warnw("seed template references unknown slot", "template", t.Name, "slot", ts.Name)
				return result, errors.NewValidationError(
					fmt.Sprintf("template %q references unknown slot", t.Name),
					ts.Name,
				)
			}
			slots = append(slots, template.Slot{
				SlotID:              id,
				Sequence:            i + 1,
				IsIncludedByDefault: ts.IsIncludedByDefault,
			})
		}

		if _, err := uc.createTemplate.Execute(ctx, CreateTemplateCommand{
			Name:        t.Name,
			Description: t.Description,
			GenreID:     t.GenreID,
			Slots:       slots,
		}); err != nil {
			return result, err
		}
		result.TemplatesCreated++
	}

	uc.logger.Infow("catalog seeded",
		"slots_created", result.SlotsCreated,
		"slots_skipped", result.SlotsSkipped,
		"templates_created", result.TemplatesCreated,
		"templates_skipped", result.TemplatesSkipped,
	)
	return result, nil
}
