package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/szentjozsefhackathon/cantores/internal/domain/celebration"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/persistence/mappers"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/persistence/models"
	"github.com/szentjozsefhackathon/cantores/internal/shared/db"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// CelebrationRepositoryImpl implements the celebration.Repository interface.
type CelebrationRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewCelebrationRepository creates a new celebration repository instance.
func NewCelebrationRepository(database *gorm.DB, logger logger.Interface) celebration.Repository {
	return &CelebrationRepositoryImpl{db: database, logger: logger}
}

func (r *CelebrationRepositoryImpl) Create(ctx context.Context, c *celebration.Celebration) error {
	model := mappers.CelebrationToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create celebration", "name", c.Name(), "error", err)
		return fmt.Errorf("failed to create celebration: %w", err)
	}
	if err := c.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set celebration ID: %w", err)
	}
	return nil
}

func (r *CelebrationRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) (map[uint]*celebration.Celebration, error) {
	result := make(map[uint]*celebration.Celebration, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var modelList []*models.CelebrationModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get celebrations", "count", len(ids), "error", err)
		return nil, fmt.Errorf("failed to get celebrations: %w", err)
	}
	for _, model := range modelList {
		entity, err := mappers.CelebrationToEntity(model)
		if err != nil {
			return nil, err
		}
		result[entity.ID()] = entity
	}
	return result, nil
}

func (r *CelebrationRepositoryImpl) FindLiturgicalByName(ctx context.Context, name string) (*celebration.Celebration, error) {
	var model models.CelebrationModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("kind = ? AND name = ?", string(celebration.KindLiturgical), name).
		Order("id ASC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find celebration: %w", err)
	}
	return mappers.CelebrationToEntity(&model)
}
