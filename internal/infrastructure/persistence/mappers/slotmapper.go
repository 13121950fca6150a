package mappers

import (
	"fmt"

	"github.com/szentjozsefhackathon/cantores/internal/domain/slot"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/persistence/models"
	"github.com/szentjozsefhackathon/cantores/internal/shared/mapper"
)

// SlotMapper handles the conversion between slot definitions and persistence models.
type SlotMapper interface {
	ToEntity(model *models.SlotModel) (*slot.SlotDefinition, error)
	ToModel(entity *slot.SlotDefinition) *models.SlotModel
	ToEntities(models []*models.SlotModel) ([]*slot.SlotDefinition, error)
}

// SlotMapperImpl is the concrete implementation of SlotMapper.
type SlotMapperImpl struct{}

// NewSlotMapper creates a new slot mapper.
func NewSlotMapper() SlotMapper {
	return &SlotMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *SlotMapperImpl) ToEntity(model *models.SlotModel) (*slot.SlotDefinition, error) {
	if model == nil {
		return nil, nil
	}

	var owner *slot.CustomOwner
	if model.IsCustom {
		if model.OwnerPlanID == nil || model.OwnerUserID == nil {
			return nil, fmt.Errorf("custom slot %d has no owner", model.ID)
		}
		owner = &slot.CustomOwner{PlanID: *model.OwnerPlanID, UserID: *model.OwnerUserID}
	}

	entity, err := slot.ReconstructSlotDefinition(
		model.ID,
		model.Name,
		model.Description,
		model.IsIncludedByDefault,
		owner,
		model.Lifecycle,
		model.RetiredAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct slot entity: %w", err)
	}
	return entity, nil
}

// ToModel converts a domain entity to a persistence model.
func (m *SlotMapperImpl) ToModel(entity *slot.SlotDefinition) *models.SlotModel {
	if entity == nil {
		return nil
	}

	model := &models.SlotModel{
		ID:                  entity.ID(),
		Name:                entity.Name(),
		Description:         entity.Description(),
		IsIncludedByDefault: entity.IsIncludedByDefault(),
		IsCustom:            entity.IsCustom(),
		Lifecycle:           entity.Lifecycle().String(),
		RetiredAt:           entity.RetiredAt(),
		CreatedAt:           entity.CreatedAt(),
		UpdatedAt:           entity.UpdatedAt(),
	}

	if owner := entity.Owner(); owner != nil {
		model.OwnerPlanID = &owner.PlanID
		model.OwnerUserID = &owner.UserID
	} else {
		key := entity.NameKey()
		model.GlobalNameKey = &key
	}
	return model
}

// ToEntities converts multiple persistence models to domain entities.
func (m *SlotMapperImpl) ToEntities(modelList []*models.SlotModel) ([]*slot.SlotDefinition, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.SlotModel) uint { return model.ID })
}
