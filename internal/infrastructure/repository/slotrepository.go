package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/szentjozsefhackathon/cantores/internal/domain/slot"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/persistence/mappers"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/persistence/models"
	"github.com/szentjozsefhackathon/cantores/internal/shared/constants"
	"github.com/szentjozsefhackathon/cantores/internal/shared/db"
	"github.com/szentjozsefhackathon/cantores/internal/shared/errors"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// SlotRepositoryImpl implements the slot.Repository interface.
type SlotRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SlotMapper
	logger logger.Interface
}

// NewSlotRepository creates a new slot repository instance.
func NewSlotRepository(database *gorm.DB, logger logger.Interface) slot.Repository {
	return &SlotRepositoryImpl{
		db:     database,
		mapper: mappers.NewSlotMapper(),
		logger: logger,
	}
}

// Create creates a new slot definition in the database.
func (r *SlotRepositoryImpl) Create(ctx context.Context, s *slot.SlotDefinition) error {
	model := r.mapper.ToModel(s)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return slot.ErrNameExists
		}
		r.logger.Errorw("failed to create slot in database", "name", s.Name(), "error", err)
		return fmt.Errorf("failed to create slot: %w", err)
	}

	if err := s.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set slot ID: %w", err)
	}
	return nil
}

// GetByID retrieves a slot definition by its ID.
func (r *SlotRepositoryImpl) GetByID(ctx context.Context, id uint) (*slot.SlotDefinition, error) {
	var model models.SlotModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get slot by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get slot: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByIDs retrieves slot definitions keyed by ID.
func (r *SlotRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) (map[uint]*slot.SlotDefinition, error) {
	result := make(map[uint]*slot.SlotDefinition, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var modelList []*models.SlotModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get slots by IDs", "count", len(ids), "error", err)
		return nil, fmt.Errorf("failed to get slots: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, err
	}
	for _, e := range entities {
		result[e.ID()] = e
	}
	return result, nil
}

// ExistsGlobalName checks whether a global slot uses the folded name.
func (r *SlotRepositoryImpl) ExistsGlobalName(ctx context.Context, nameKey string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.SlotModel{}).
		Where("global_name_key = ?", nameKey).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check slot name", "name_key", nameKey, "error", err)
		return false, fmt.Errorf("failed to check slot name: %w", err)
	}
	return count > 0, nil
}

// VisibleTo lists the active global slots plus the active custom slots
// owned by userID. Guests only see global slots.
func (r *SlotRepositoryImpl) VisibleTo(ctx context.Context, userID *uint, filter slot.CatalogFilter) ([]*slot.SlotDefinition, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.SlotModel{}).Where("lifecycle = ?", slot.LifecycleActive.String())

	if userID == nil {
		query = query.Where("is_custom = ?", false)
	} else {
		custom := tx.Where("is_custom = ? AND owner_user_id = ?", true, *userID)
		if filter.GenreID != nil {
			custom = custom.Where("owner_plan_id IN (?)",
				tx.Table(constants.TablePlans).Select("id").Where("genre_id = ?", *filter.GenreID))
		}
		query = query.Where(tx.Where("is_custom = ?", false).Or(custom))
	}

	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	var modelList []*models.SlotModel
	if err := query.Order("is_custom ASC, name ASC, id ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list visible slots", "error", err)
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

// UpdateLifecycle persists the lifecycle state of a slot.
func (r *SlotRepositoryImpl) UpdateLifecycle(ctx context.Context, s *slot.SlotDefinition) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.SlotModel{}).
		Where("id = ?", s.ID()).
		Updates(map[string]interface{}{
			"lifecycle":  s.Lifecycle().String(),
			"retired_at": s.RetiredAt(),
			"updated_at": s.UpdatedAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update slot lifecycle", "id", s.ID(), "error", result.Error)
		return fmt.Errorf("failed to update slot lifecycle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return slot.ErrSlotNotFound
	}
	return nil
}

// RetireByOwnerPlan retires every active custom slot owned by planID.
func (r *SlotRepositoryImpl) RetireByOwnerPlan(ctx context.Context, planID uint) (int64, error) {
	now := nowUTC()
	result := db.GetTxFromContext(ctx, r.db).Model(&models.SlotModel{}).
		Where("is_custom = ? AND owner_plan_id = ? AND lifecycle = ?", true, planID, slot.LifecycleActive.String()).
		Updates(map[string]interface{}{
			"lifecycle":  slot.LifecycleRetired.String(),
			"retired_at": now,
			"updated_at": now,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to retire custom slots", "plan_id", planID, "error", result.Error)
		return 0, fmt.Errorf("failed to retire custom slots: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// HardDelete removes the slot row. The store's restrict constraints reject
// the delete while occurrences, assignments, or templates reference it.
func (r *SlotRepositoryImpl) HardDelete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.SlotModel{}, id)
	if result.Error != nil {
		if errors.IsForeignKeyError(result.Error) {
			return fmt.Errorf("%w: %w", slot.ErrSlotReferenced, result.Error)
		}
		r.logger.Errorw("failed to delete slot", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete slot: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return slot.ErrSlotNotFound
	}

	r.logger.Infow("slot deleted", "id", id)
	return nil
}
