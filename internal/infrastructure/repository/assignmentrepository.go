package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/persistence/mappers"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/persistence/models"
	"github.com/szentjozsefhackathon/cantores/internal/shared/constants"
	"github.com/szentjozsefhackathon/cantores/internal/shared/db"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
	"github.com/szentjozsefhackathon/cantores/internal/shared/mapper"
)

// AssignmentRepositoryImpl implements the plan.AssignmentRepository interface.
type AssignmentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

// NewAssignmentRepository creates a new assignment repository instance.
func NewAssignmentRepository(database *gorm.DB, logger logger.Interface) plan.AssignmentRepository {
	return &AssignmentRepositoryImpl{
		db:     database,
		mapper: mappers.NewPlanMapper(),
		logger: logger,
	}
}

// Create stores the assignment with its flag links and scopes.
func (r *AssignmentRepositoryImpl) Create(ctx context.Context, a *plan.Assignment) error {
	model := r.mapper.AssignmentToModel(a)

	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		if err := insertFlags(tx, model.ID, a.FlagIDs()); err != nil {
			return err
		}
		scopes := make([]models.AssignmentScopeModel, 0, len(a.Scopes()))
		for _, s := range a.Scopes() {
			scopes = append(scopes, models.AssignmentScopeModel{
				AssignmentID: model.ID,
				ScopeType:    string(s.Type),
				ScopeNumber:  s.Number,
			})
		}
		if len(scopes) > 0 {
			return tx.Create(&scopes).Error
		}
		return nil
	})
	if err != nil {
		r.logger.Errorw("failed to create assignment", "occurrence_id", a.OccurrenceID(), "error", err)
		return fmt.Errorf("failed to create assignment: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set assignment ID: %w", err)
	}
	return nil
}

func insertFlags(tx *gorm.DB, assignmentID uint, flagIDs []uint) error {
	if len(flagIDs) == 0 {
		return nil
	}
	links := make([]models.AssignmentFlagModel, 0, len(flagIDs))
	for _, flagID := range flagIDs {
		links = append(links, models.AssignmentFlagModel{AssignmentID: assignmentID, FlagID: flagID})
	}
	return tx.Create(&links).Error
}

// GetByID retrieves an assignment with its flags and scopes.
func (r *AssignmentRepositoryImpl) GetByID(ctx context.Context, id uint) (*plan.Assignment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.AssignmentModel
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get assignment", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	entities, err := r.toEntities(tx, []*models.AssignmentModel{&model})
	if err != nil {
		return nil, err
	}
	return entities[0], nil
}

// ListByOccurrence returns the occurrence's assignments by music sequence.
func (r *AssignmentRepositoryImpl) ListByOccurrence(ctx context.Context, occurrenceID uint) ([]*plan.Assignment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []*models.AssignmentModel
	if err := tx.Where("plan_slot_id = ?", occurrenceID).
		Order("music_sequence ASC, id ASC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list assignments", "occurrence_id", occurrenceID, "error", err)
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return r.toEntities(tx, modelList)
}

// ListByPlan returns every assignment of the plan in running order.
func (r *AssignmentRepositoryImpl) ListByPlan(ctx context.Context, planID uint) ([]*plan.Assignment, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	a := constants.TableAssignments
	ps := constants.TablePlanSlots

	var modelList []*models.AssignmentModel
	if err := tx.Select(a+".*").
		Joins("JOIN "+ps+" ON "+ps+".id = "+a+".plan_slot_id").
		Where(a+".plan_id = ?", planID).
		Order(ps + ".sequence ASC, " + a + ".music_sequence ASC, " + a + ".id ASC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list plan assignments", "plan_id", planID, "error", err)
		return nil, fmt.Errorf("failed to list plan assignments: %w", err)
	}
	return r.toEntities(tx, modelList)
}

// MaxMusicSequence returns the highest music sequence in the occurrence.
func (r *AssignmentRepositoryImpl) MaxMusicSequence(ctx context.Context, occurrenceID uint) (int, error) {
	var highest int
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.AssignmentModel{}).
		Select("COALESCE(MAX(music_sequence), 0)").
		Where("plan_slot_id = ?", occurrenceID).
		Scan(&highest).Error; err != nil {
		return 0, fmt.Errorf("failed to read music sequence: %w", err)
	}
	return highest, nil
}

// SwapMusicSequence exchanges the two music sequence values.
func (r *AssignmentRepositoryImpl) SwapMusicSequence(ctx context.Context, a, b *plan.Assignment) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.AssignmentModel{}).Where("id = ?", a.ID()).
		Update("music_sequence", b.MusicSequence()).Error; err != nil {
		return fmt.Errorf("failed to move assignment %d: %w", a.ID(), err)
	}
	if err := tx.Model(&models.AssignmentModel{}).Where("id = ?", b.ID()).
		Update("music_sequence", a.MusicSequence()).Error; err != nil {
		return fmt.Errorf("failed to move assignment %d: %w", b.ID(), err)
	}
	return nil
}

// DeleteAndCloseGap removes the assignment with its flags and scopes and
// shifts the occurrence's later assignments up by one.
func (r *AssignmentRepositoryImpl) DeleteAndCloseGap(ctx context.Context, a *plan.Assignment) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("assignment_id = ?", a.ID()).Delete(&models.AssignmentFlagModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete assignment flags: %w", err)
	}
	if err := tx.Where("assignment_id = ?", a.ID()).Delete(&models.AssignmentScopeModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete assignment scopes: %w", err)
	}
	if err := tx.Delete(&models.AssignmentModel{}, a.ID()).Error; err != nil {
		r.logger.Errorw("failed to delete assignment", "id", a.ID(), "error", err)
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	if err := tx.Model(&models.AssignmentModel{}).
		Where("plan_slot_id = ? AND music_sequence > ?", a.OccurrenceID(), a.MusicSequence()).
		Update("music_sequence", gorm.Expr("music_sequence - 1")).Error; err != nil {
		r.logger.Errorw("failed to close music sequence gap", "occurrence_id", a.OccurrenceID(), "error", err)
		return fmt.Errorf("failed to close music sequence gap: %w", err)
	}
	return nil
}

func (r *AssignmentRepositoryImpl) UpdateNotes(ctx context.Context, a *plan.Assignment) error {
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.AssignmentModel{}).
		Where("id = ?", a.ID()).
		Update("notes", a.Notes()).Error; err != nil {
		return fmt.Errorf("failed to update assignment notes: %w", err)
	}
	return nil
}

// ReplaceFlags swaps the stored flag links for the assignment's current set.
func (r *AssignmentRepositoryImpl) ReplaceFlags(ctx context.Context, a *plan.Assignment) error {
	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assignment_id = ?", a.ID()).Delete(&models.AssignmentFlagModel{}).Error; err != nil {
			return err
		}
		return insertFlags(tx, a.ID(), a.FlagIDs())
	})
	if err != nil {
		r.logger.Errorw("failed to replace assignment flags", "id", a.ID(), "error", err)
		return fmt.Errorf("failed to replace assignment flags: %w", err)
	}
	return nil
}

func (r *AssignmentRepositoryImpl) AddScope(ctx context.Context, assignmentID uint, scope plan.Scope) (plan.Scope, error) {
	model := models.AssignmentScopeModel{
		AssignmentID: assignmentID,
		ScopeType:    string(scope.Type),
		ScopeNumber:  scope.Number,
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(&model).Error; err != nil {
		r.logger.Errorw("failed to add assignment scope", "assignment_id", assignmentID, "error", err)
		return plan.Scope{}, fmt.Errorf("failed to add assignment scope: %w", err)
	}
	return r.mapper.ScopeToEntity(&model), nil
}

func (r *AssignmentRepositoryImpl) RemoveScope(ctx context.Context, assignmentID, scopeID uint) (bool, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("id = ? AND assignment_id = ?", scopeID, assignmentID).
		Delete(&models.AssignmentScopeModel{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to remove assignment scope: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *AssignmentRepositoryImpl) FindScopeOwner(ctx context.Context, scopeID uint) (uint, error) {
	var model models.AssignmentScopeModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, scopeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get assignment scope: %w", err)
	}
	return model.AssignmentID, nil
}

func (r *AssignmentRepositoryImpl) CountBySlot(ctx context.Context, slotID uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.AssignmentModel{}).
		Where("slot_id = ?", slotID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count slot assignments: %w", err)
	}
	return count, nil
}

// toEntities loads flags and scopes for all rows in two queries.
func (r *AssignmentRepositoryImpl) toEntities(tx *gorm.DB, modelList []*models.AssignmentModel) ([]*plan.Assignment, error) {
	if len(modelList) == 0 {
		return []*plan.Assignment{}, nil
	}

	ids := make([]uint, 0, len(modelList))
	for _, m := range modelList {
		ids = append(ids, m.ID)
	}

	var flagRows []models.AssignmentFlagModel
	if err := tx.Where("assignment_id IN ?", ids).
		Order("assignment_id ASC, flag_id ASC").
		Find(&flagRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load assignment flags: %w", err)
	}
	flags := make(map[uint][]uint, len(ids))
	for _, row := range flagRows {
		flags[row.AssignmentID] = append(flags[row.AssignmentID], row.FlagID)
	}

	var scopeRows []*models.AssignmentScopeModel
	if err := tx.Where("assignment_id IN ?", ids).
		Order("assignment_id ASC, id ASC").
		Find(&scopeRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load assignment scopes: %w", err)
	}
	scopes := mapper.GroupBy(scopeRows, func(row *models.AssignmentScopeModel) uint { return row.AssignmentID })

	result := make([]*plan.Assignment, 0, len(modelList))
	for _, m := range modelList {
		entity, err := r.mapper.AssignmentToEntity(m, flags[m.ID], scopes[m.ID])
		if err != nil {
			return nil, fmt.Errorf("failed to map assignment %d: %w", m.ID, err)
		}
		result = append(result, entity)
	}
	return result, nil
}
