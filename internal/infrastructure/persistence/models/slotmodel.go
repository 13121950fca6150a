package models

import (
	"time"

	"github.com/szentjozsefhackathon/cantores/internal/shared/constants"
)

// SlotModel represents the database persistence model for slot definitions.
// GlobalNameKey is set only for global slots so the unique index applies to
// them alone. Custom slots record their owning plan without a foreign key:
// they are retired, not deleted, when the plan goes away.
type SlotModel struct {
	ID                  uint    `gorm:"primarykey"`
	Name                string  `gorm:"not null;size:255;index:idx_slot_name"`
	GlobalNameKey       *string `gorm:"size:255;uniqueIndex:idx_slot_global_name_key"`
	Description         string  `gorm:"type:text"`
	IsIncludedByDefault bool    `gorm:"not null;default:false"`
	IsCustom            bool    `gorm:"not null;default:false;index:idx_slot_custom"`
	OwnerPlanID         *uint   `gorm:"index:idx_slot_owner_plan"`
	OwnerUserID         *uint   `gorm:"index:idx_slot_owner_user"`
	Lifecycle           string  `gorm:"not null;size:20;default:active;index:idx_slot_lifecycle"`
	RetiredAt           *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName specifies the table name for GORM.
func (SlotModel) TableName() string {
	return constants.TableSlots
}
