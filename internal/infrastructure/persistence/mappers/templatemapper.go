package mappers

import (
	"fmt"

	"github.com/szentjozsefhackathon/cantores/internal/domain/template"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/persistence/models"
	"github.com/szentjozsefhackathon/cantores/internal/shared/mapper"
)

// TemplateMapper handles the conversion between templates and persistence models.
type TemplateMapper interface {
	// ToEntity converts a template row and its slot rows, ordered by sequence
	ToEntity(model *models.TemplateModel, slots []*models.TemplateSlotModel) (*template.Template, error)
	ToModel(entity *template.Template) (*models.TemplateModel, []*models.TemplateSlotModel)
}

// TemplateMapperImpl is the concrete implementation of TemplateMapper.
type TemplateMapperImpl struct{}

// NewTemplateMapper creates a new template mapper.
func NewTemplateMapper() TemplateMapper {
	return &TemplateMapperImpl{}
}

func (m *TemplateMapperImpl) ToEntity(model *models.TemplateModel, slots []*models.TemplateSlotModel) (*template.Template, error) {
	if model == nil {
		return nil, nil
	}

	entitySlots := mapper.MapSlice(slots, func(s *models.TemplateSlotModel) template.Slot {
		return template.Slot{
			SlotID:              s.SlotID,
			Sequence:            s.Sequence,
			IsIncludedByDefault: s.IsIncludedByDefault,
		}
	})

	entity, err := template.ReconstructTemplate(
		model.ID,
		model.Name,
		model.Description,
		model.GenreID,
		model.IsActive,
		entitySlots,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct template entity: %w", err)
	}
	return entity, nil
}

// ToModel returns the template row and its slot rows; slot rows carry no
// TemplateID until the template row is stored.
func (m *TemplateMapperImpl) ToModel(entity *template.Template) (*models.TemplateModel, []*models.TemplateSlotModel) {
	if entity == nil {
		return nil, nil
	}

	model := &models.TemplateModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		GenreID:     entity.GenreID(),
		IsActive:    entity.IsActive(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
	slots := mapper.MapSlice(entity.Slots(), func(s template.Slot) *models.TemplateSlotModel {
		return &models.TemplateSlotModel{
			TemplateID:          entity.ID(),
			SlotID:              s.SlotID,
			Sequence:            s.Sequence,
			IsIncludedByDefault: s.IsIncludedByDefault,
		}
	})
	return model, slots
}
