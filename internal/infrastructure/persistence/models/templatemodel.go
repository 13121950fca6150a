package models

import (
	"time"

	"github.com/szentjozsefhackathon/cantores/internal/shared/constants"
)

// TemplateModel represents the database persistence model for templates.
type TemplateModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"not null;size:255;uniqueIndex:idx_template_name"`
	Description string `gorm:"type:text"`
	GenreID     *uint  `gorm:"index:idx_template_genre"`
	IsActive    bool   `gorm:"not null;index:idx_template_active"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM.
func (TemplateModel) TableName() string {
	return constants.TableTemplates
}

// TemplateSlotModel is one slot reference inside a template.
// Parents carry no has-many fields so the belongs-to constraints below are
// the ones AutoMigrate creates.
type TemplateSlotModel struct {
	ID                  uint           `gorm:"primarykey"`
	TemplateID          uint           `gorm:"not null;index:idx_template_slot_order,priority:1"`
	SlotID              uint           `gorm:"not null;index:idx_template_slot_slot"`
	Sequence            int            `gorm:"not null;index:idx_template_slot_order,priority:2"`
	IsIncludedByDefault bool           `gorm:"not null;default:false"`
	Template            *TemplateModel `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE"`
	Slot                *SlotModel     `gorm:"foreignKey:SlotID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for GORM.
func (TemplateSlotModel) TableName() string {
	return constants.TableTemplateSlots
}
