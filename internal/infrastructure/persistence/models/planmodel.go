package models

import (
	"time"

	"github.com/szentjozsefhackathon/cantores/internal/shared/constants"
)

// PlanModel represents the database persistence model for music plans.
type PlanModel struct {
	ID           uint    `gorm:"primarykey"`
	UserID       uint    `gorm:"not null;index:idx_plan_user"`
	IsPrivate    bool    `gorm:"not null;index:idx_plan_private"`
	GenreID      *uint   `gorm:"index:idx_plan_genre"`
	PrivateNotes *string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM.
func (PlanModel) TableName() string {
	return constants.TablePlans
}

// PlanCelebrationModel links a plan to a celebration.
type PlanCelebrationModel struct {
	PlanID        uint              `gorm:"primaryKey;autoIncrement:false"`
	CelebrationID uint              `gorm:"primaryKey;autoIncrement:false;index:idx_plan_celebration_celebration"`
	Plan          *PlanModel        `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
	Celebration   *CelebrationModel `gorm:"foreignKey:CelebrationID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM.
func (PlanCelebrationModel) TableName() string {
	return constants.TablePlanCelebrations
}

// PlanSlotModel is one slot occurrence within a plan. Sequence is dense
// per plan but not unique in the schema: a swap passes through duplicates.
type PlanSlotModel struct {
	ID       uint       `gorm:"primarykey"`
	PlanID   uint       `gorm:"not null;index:idx_plan_slot_order,priority:1"`
	SlotID   uint       `gorm:"not null;index:idx_plan_slot_slot"`
	Sequence int        `gorm:"not null;index:idx_plan_slot_order,priority:2"`
	Plan     *PlanModel `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
	Slot     *SlotModel `gorm:"foreignKey:SlotID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for GORM.
func (PlanSlotModel) TableName() string {
	return constants.TablePlanSlots
}
