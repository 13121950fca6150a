package mappers

import (
	"fmt"

	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/persistence/models"
	"github.com/szentjozsefhackathon/cantores/internal/shared/mapper"
)

// PlanMapper handles the conversion between the plan aggregate's parts and
// their persistence models.
type PlanMapper interface {
	ToEntity(model *models.PlanModel, celebrationIDs []uint) (*plan.Plan, error)
	ToModel(entity *plan.Plan) *models.PlanModel

	OccurrenceToEntity(model *models.PlanSlotModel) (*plan.SlotOccurrence, error)
	OccurrenceToModel(entity *plan.SlotOccurrence) *models.PlanSlotModel
	OccurrencesToEntities(models []*models.PlanSlotModel) ([]*plan.SlotOccurrence, error)

	AssignmentToEntity(model *models.AssignmentModel, flagIDs []uint, scopes []*models.AssignmentScopeModel) (*plan.Assignment, error)
	AssignmentToModel(entity *plan.Assignment) *models.AssignmentModel
	ScopeToEntity(model *models.AssignmentScopeModel) plan.Scope
}

// PlanMapperImpl is the concrete implementation of PlanMapper.
type PlanMapperImpl struct{}

// NewPlanMapper creates a new plan mapper.
func NewPlanMapper() PlanMapper {
	return &PlanMapperImpl{}
}

func (m *PlanMapperImpl) ToEntity(model *models.PlanModel, celebrationIDs []uint) (*plan.Plan, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := plan.ReconstructPlan(
		model.ID,
		model.UserID,
		model.IsPrivate,
		model.GenreID,
		model.PrivateNotes,
		celebrationIDs,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plan entity: %w", err)
	}
	return entity, nil
}

func (m *PlanMapperImpl) ToModel(entity *plan.Plan) *models.PlanModel {
	if entity == nil {
		return nil
	}
	return &models.PlanModel{
		ID:           entity.ID(),
		UserID:       entity.OwnerID(),
		IsPrivate:    entity.IsPrivate(),
		GenreID:      entity.GenreID(),
		PrivateNotes: entity.PrivateNotes(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func (m *PlanMapperImpl) OccurrenceToEntity(model *models.PlanSlotModel) (*plan.SlotOccurrence, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := plan.ReconstructSlotOccurrence(model.ID, model.PlanID, model.SlotID, model.Sequence)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct slot occurrence entity: %w", err)
	}
	return entity, nil
}

func (m *PlanMapperImpl) OccurrenceToModel(entity *plan.SlotOccurrence) *models.PlanSlotModel {
	if entity == nil {
		return nil
	}
	return &models.PlanSlotModel{
		ID:       entity.ID(),
		PlanID:   entity.PlanID(),
		SlotID:   entity.SlotID(),
		Sequence: entity.Sequence(),
	}
}

func (m *PlanMapperImpl) OccurrencesToEntities(modelList []*models.PlanSlotModel) ([]*plan.SlotOccurrence, error) {
	return mapper.MapSlicePtrWithID(modelList, m.OccurrenceToEntity, func(model *models.PlanSlotModel) uint { return model.ID })
}

func (m *PlanMapperImpl) AssignmentToEntity(model *models.AssignmentModel, flagIDs []uint, scopes []*models.AssignmentScopeModel) (*plan.Assignment, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := plan.ReconstructAssignment(
		model.ID,
		model.PlanSlotID,
		model.PlanID,
		model.SlotID,
		model.MusicID,
		model.MusicSequence,
		model.Notes,
		flagIDs,
		mapper.MapSlice(scopes, m.ScopeToEntity),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct assignment entity: %w", err)
	}
	return entity, nil
}

func (m *PlanMapperImpl) AssignmentToModel(entity *plan.Assignment) *models.AssignmentModel {
	if entity == nil {
		return nil
	}
	return &models.AssignmentModel{
		ID:            entity.ID(),
		PlanSlotID:    entity.OccurrenceID(),
		PlanID:        entity.PlanID(),
		SlotID:        entity.SlotID(),
		MusicID:       entity.MusicID(),
		MusicSequence: entity.MusicSequence(),
		Notes:         entity.Notes(),
	}
}

func (m *PlanMapperImpl) ScopeToEntity(model *models.AssignmentScopeModel) plan.Scope {
	return plan.Scope{
		ID:     model.ID,
		Type:   plan.ScopeType(model.ScopeType),
		Number: model.ScopeNumber,
	}
}
