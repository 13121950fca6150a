package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/persistence/mappers"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/persistence/models"
	"github.com/szentjozsefhackathon/cantores/internal/shared/db"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// PlanSlotRepositoryImpl implements plan.OccurrenceRepository over the
// plan_slots table.
type PlanSlotRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

// NewPlanSlotRepository creates a new slot occurrence repository instance.
func NewPlanSlotRepository(database *gorm.DB, logger logger.Interface) plan.OccurrenceRepository {
	return &PlanSlotRepositoryImpl{
		db:     database,
		mapper: mappers.NewPlanMapper(),
		logger: logger,
	}
}

func (r *PlanSlotRepositoryImpl) Create(ctx context.Context, o *plan.SlotOccurrence) error {
	model := r.mapper.OccurrenceToModel(o)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create slot occurrence", "plan_id", o.PlanID(), "slot_id", o.SlotID(), "error", err)
		return fmt.Errorf("failed to create slot occurrence: %w", err)
	}
	if err := o.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set slot occurrence ID: %w", err)
	}
	return nil
}

func (r *PlanSlotRepositoryImpl) GetByID(ctx context.Context, id uint) (*plan.SlotOccurrence, error) {
	var model models.PlanSlotModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get slot occurrence", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get slot occurrence: %w", err)
	}
	return r.mapper.OccurrenceToEntity(&model)
}

func (r *PlanSlotRepositoryImpl) ListByPlan(ctx context.Context, planID uint) ([]*plan.SlotOccurrence, error) {
	var modelList []*models.PlanSlotModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("plan_id = ?", planID).
		Order("sequence ASC, id ASC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list slot occurrences", "plan_id", planID, "error", err)
		return nil, fmt.Errorf("failed to list slot occurrences: %w", err)
	}
	return r.mapper.OccurrencesToEntities(modelList)
}

func (r *PlanSlotRepositoryImpl) CountByPlan(ctx context.Context, planID uint) (int, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.PlanSlotModel{}).
		Where("plan_id = ?", planID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count slot occurrences: %w", err)
	}
	return int(count), nil
}

// SwapSequence exchanges the two sequence values with one UPDATE per row.
// Both must run in the caller's transaction.
func (r *PlanSlotRepositoryImpl) SwapSequence(ctx context.Context, a, b *plan.SlotOccurrence) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.PlanSlotModel{}).Where("id = ?", a.ID()).
		Update("sequence", b.Sequence()).Error; err != nil {
		return fmt.Errorf("failed to move slot occurrence %d: %w", a.ID(), err)
	}
	if err := tx.Model(&models.PlanSlotModel{}).Where("id = ?", b.ID()).
		Update("sequence", a.Sequence()).Error; err != nil {
		return fmt.Errorf("failed to move slot occurrence %d: %w", b.ID(), err)
	}
	return nil
}

// DeleteAndCloseGap removes the occurrence's assignments, the occurrence,
// then shifts the plan's tail up by one position.
func (r *PlanSlotRepositoryImpl) DeleteAndCloseGap(ctx context.Context, o *plan.SlotOccurrence) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("plan_slot_id = ?", o.ID()).Delete(&models.AssignmentModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete occurrence assignments", "occurrence_id", o.ID(), "error", err)
		return fmt.Errorf("failed to delete occurrence assignments: %w", err)
	}
	if err := tx.Delete(&models.PlanSlotModel{}, o.ID()).Error; err != nil {
		r.logger.Errorw("failed to delete slot occurrence", "occurrence_id", o.ID(), "error", err)
		return fmt.Errorf("failed to delete slot occurrence: %w", err)
	}
	if err := tx.Model(&models.PlanSlotModel{}).
		Where("plan_id = ? AND sequence > ?", o.PlanID(), o.Sequence()).
		Update("sequence", gorm.Expr("sequence - 1")).Error; err != nil {
		r.logger.Errorw("failed to close sequence gap", "plan_id", o.PlanID(), "error", err)
		return fmt.Errorf("failed to close sequence gap: %w", err)
	}
	return nil
}

func (r *PlanSlotRepositoryImpl) CountBySlot(ctx context.Context, slotID uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.PlanSlotModel{}).
		Where("slot_id = ?", slotID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count slot usage: %w", err)
	}
	return count, nil
}
