package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/persistence/models"
	"github.com/szentjozsefhackathon/cantores/internal/shared/db"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// FlagRepositoryImpl implements the plan.FlagRepository interface.
type FlagRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewFlagRepository creates a new flag repository instance.
func NewFlagRepository(database *gorm.DB, logger logger.Interface) plan.FlagRepository {
	return &FlagRepositoryImpl{db: database, logger: logger}
}

// List returns the whole flag catalog ordered by ID.
func (r *FlagRepositoryImpl) List(ctx context.Context) ([]plan.Flag, error) {
	var modelList []models.FlagModel
	if err := db.GetTxFromContext(ctx, r.db).Order("id ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list flags", "error", err)
		return nil, fmt.Errorf("failed to list flags: %w", err)
	}
	return toFlags(modelList), nil
}

// GetByIDs returns the flags that exist among ids.
func (r *FlagRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) ([]plan.Flag, error) {
	if len(ids) == 0 {
		return []plan.Flag{}, nil
	}
	var modelList []models.FlagModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Order("id ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get flags", "ids", ids, "error", err)
		return nil, fmt.Errorf("failed to get flags: %w", err)
	}
	return toFlags(modelList), nil
}

func toFlags(modelList []models.FlagModel) []plan.Flag {
	flags := make([]plan.Flag, 0, len(modelList))
	for _, m := range modelList {
		flags = append(flags, plan.Flag{ID: m.ID, Name: m.Name})
	}
	return flags
}
