package mappers

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/szentjozsefhackathon/cantores/internal/domain/celebration"
	"github.com/szentjozsefhackathon/cantores/internal/domain/music"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/persistence/models"
)

// MusicToEntity converts a music row to a domain entity.
func MusicToEntity(model *models.MusicModel) (*music.Music, error) {
	entity, err := music.ReconstructMusic(model.ID, model.Title, model.IsPrivate, model.OwnerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct music entity: %w", err)
	}
	return entity, nil
}

// MusicToModel converts a music entity to a row.
func MusicToModel(entity *music.Music) *models.MusicModel {
	return &models.MusicModel{
		ID:          entity.ID(),
		Title:       entity.Title(),
		IsPrivate:   entity.IsPrivate(),
		OwnerUserID: entity.OwnerID(),
	}
}

// CelebrationToEntity converts a celebration row to a domain entity.
func CelebrationToEntity(model *models.CelebrationModel) (*celebration.Celebration, error) {
	var date *time.Time
	if model.Date != nil {
		d := time.Time(*model.Date)
		date = &d
	}
	entity, err := celebration.ReconstructCelebration(model.ID, model.Kind, model.Name, date, model.OwnerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct celebration entity: %w", err)
	}
	return entity, nil
}

// CelebrationToModel converts a celebration entity to a row.
func CelebrationToModel(entity *celebration.Celebration) *models.CelebrationModel {
	model := &models.CelebrationModel{
		ID:          entity.ID(),
		Kind:        string(entity.Kind()),
		Name:        entity.Name(),
		OwnerUserID: entity.OwnerID(),
	}
	if entity.Date() != nil {
		d := datatypes.Date(*entity.Date())
		model.Date = &d
	}
	return model
}
