package models

import (
	"gorm.io/datatypes"

	"github.com/szentjozsefhackathon/cantores/internal/shared/constants"
)

// CelebrationModel represents the database persistence model for celebrations.
type CelebrationModel struct {
	ID          uint            `gorm:"primarykey"`
	Kind        string          `gorm:"not null;size:20;index:idx_celebration_kind"`
	Name        string          `gorm:"not null;size:255;index:idx_celebration_name"`
	Date        *datatypes.Date `gorm:"index:idx_celebration_date"`
	OwnerUserID *uint           `gorm:"index:idx_celebration_owner"`
}

// TableName specifies the table name for GORM.
func (CelebrationModel) TableName() string {
	return constants.TableCelebrations
}
