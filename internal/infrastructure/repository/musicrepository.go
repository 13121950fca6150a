package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/szentjozsefhackathon/cantores/internal/domain/music"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/persistence/mappers"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/persistence/models"
	"github.com/szentjozsefhackathon/cantores/internal/shared/db"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// MusicRepositoryImpl implements the music.Repository interface.
type MusicRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewMusicRepository creates a new music repository instance.
func NewMusicRepository(database *gorm.DB, logger logger.Interface) music.Repository {
	return &MusicRepositoryImpl{db: database, logger: logger}
}

func (r *MusicRepositoryImpl) Create(ctx context.Context, m *music.Music) error {
	model := mappers.MusicToModel(m)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create music", "title", m.Title(), "error", err)
		return fmt.Errorf("failed to create music: %w", err)
	}
	if err := m.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set music ID: %w", err)
	}
	return nil
}

func (r *MusicRepositoryImpl) GetByID(ctx context.Context, id uint) (*music.Music, error) {
	var model models.MusicModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get music", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get music: %w", err)
	}
	return mappers.MusicToEntity(&model)
}

func (r *MusicRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) (map[uint]*music.Music, error) {
	result := make(map[uint]*music.Music, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var modelList []*models.MusicModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get music by IDs", "count", len(ids), "error", err)
		return nil, fmt.Errorf("failed to get music by IDs: %w", err)
	}
	for _, model := range modelList {
		entity, err := mappers.MusicToEntity(model)
		if err != nil {
			return nil, err
		}
		result[entity.ID()] = entity
	}
	return result, nil
}

func (r *MusicRepositoryImpl) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.MusicModel{}).
		Where("title = ?", title).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check music title: %w", err)
	}
	return count > 0, nil
}
