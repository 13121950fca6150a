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
)

// PlanRepositoryImpl implements the plan.Repository interface.
type PlanRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

// NewPlanRepository creates a new plan repository instance.
func NewPlanRepository(database *gorm.DB, logger logger.Interface) plan.Repository {
	return &PlanRepositoryImpl{
		db:     database,
		mapper: mappers.NewPlanMapper(),
		logger: logger,
	}
}

// Create stores the plan row and its celebration links.
func (r *PlanRepositoryImpl) Create(ctx context.Context, p *plan.Plan) error {
	model := r.mapper.ToModel(p)

	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		links := make([]models.PlanCelebrationModel, 0, len(p.CelebrationIDs()))
		for _, celebrationID := range p.CelebrationIDs() {
			links = append(links, models.PlanCelebrationModel{PlanID: model.ID, CelebrationID: celebrationID})
		}
		if len(links) > 0 {
			if err := tx.Create(&links).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Errorw("failed to create plan", "user_id", p.OwnerID(), "error", err)
		return fmt.Errorf("failed to create plan: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set plan ID: %w", err)
	}
	return nil
}

// GetByID retrieves a plan by its ID.
func (r *PlanRepositoryImpl) GetByID(ctx context.Context, id uint) (*plan.Plan, error) {
	return r.get(ctx, id, false)
}

// LockByID retrieves a plan taking a row lock held until the surrounding
// transaction ends. Concurrent reorders of one plan queue behind it.
func (r *PlanRepositoryImpl) LockByID(ctx context.Context, id uint) (*plan.Plan, error) {
	return r.get(ctx, id, true)
}

func (r *PlanRepositoryImpl) get(ctx context.Context, id uint, lock bool) (*plan.Plan, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx
	if lock {
		query = db.ForUpdate(tx)
	}

	var model models.PlanModel
	if err := query.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	links, err := r.loadCelebrationIDs(tx, []uint{model.ID})
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(&model, links[model.ID])
}

// Update persists the mutable plan fields.
func (r *PlanRepositoryImpl) Update(ctx context.Context, p *plan.Plan) error {
	model := r.mapper.ToModel(p)

	result := db.GetTxFromContext(ctx, r.db).Model(&models.PlanModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"is_private":    model.IsPrivate,
			"genre_id":      model.GenreID,
			"private_notes": model.PrivateNotes,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update plan", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return plan.ErrPlanNotFound
	}
	return nil
}

// Delete hard-deletes the plan. Celebration links, occurrences, and
// assignments go with it through cascading foreign keys.
func (r *PlanRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.PlanModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete plan", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return plan.ErrPlanNotFound
	}
	return nil
}

// List retrieves plans visible to the filter's viewer with pagination.
func (r *PlanRepositoryImpl) List(ctx context.Context, filter plan.ListFilter) ([]*plan.Plan, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.PlanModel{})

	switch {
	case filter.OwnerOnly && filter.ViewerID == nil:
		return []*plan.Plan{}, 0, nil
	case filter.OwnerOnly:
		query = query.Where("user_id = ?", *filter.ViewerID)
	case filter.ViewerID != nil:
		query = query.Where("is_private = ? OR user_id = ?", false, *filter.ViewerID)
	default:
		query = query.Where("is_private = ?", false)
	}

	if filter.GenreID != nil {
		query = query.Where("genre_id = ?", *filter.GenreID)
	}
	if filter.CelebrationID != nil {
		query = query.Where("id IN (?)",
			tx.Table(constants.TablePlanCelebrations).Select("plan_id").Where("celebration_id = ?", *filter.CelebrationID))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count plans", "error", err)
		return nil, 0, fmt.Errorf("failed to count plans: %w", err)
	}

	var modelList []*models.PlanModel
	if err := query.Order("created_at DESC, id DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list plans", "error", err)
		return nil, 0, fmt.Errorf("failed to list plans: %w", err)
	}

	ids := make([]uint, 0, len(modelList))
	for _, m := range modelList {
		ids = append(ids, m.ID)
	}
	links, err := r.loadCelebrationIDs(tx, ids)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*plan.Plan, 0, len(modelList))
	for _, m := range modelList {
		entity, err := r.mapper.ToEntity(m, links[m.ID])
		if err != nil {
			return nil, 0, err
		}
		result = append(result, entity)
	}
	return result, total, nil
}

func (r *PlanRepositoryImpl) loadCelebrationIDs(tx *gorm.DB, planIDs []uint) (map[uint][]uint, error) {
	result := make(map[uint][]uint, len(planIDs))
	if len(planIDs) == 0 {
		return result, nil
	}

	var rows []models.PlanCelebrationModel
	if err := tx.Where("plan_id IN ?", planIDs).
		Order("plan_id ASC, celebration_id ASC").
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to load plan celebrations", "error", err)
		return nil, fmt.Errorf("failed to load plan celebrations: %w", err)
	}
	for _, row := range rows {
		result[row.PlanID] = append(result[row.PlanID], row.CelebrationID)
	}
	return result, nil
}
