package models

import (
	"time"

	"github.com/szentjozsefhackathon/cantores/internal/shared/constants"
)

// MusicModel represents the database persistence model for music pieces.
type MusicModel struct {
	ID          uint   `gorm:"primarykey"`
	Title       string `gorm:"not null;size:255;index:idx_music_title"`
	IsPrivate   bool   `gorm:"not null;default:false;index:idx_music_private"`
	OwnerUserID *uint  `gorm:"index:idx_music_owner"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM.
func (MusicModel) TableName() string {
	return constants.TableMusic
}
