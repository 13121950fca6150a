package models

import (
	"time"

	"github.com/szentjozsefhackathon/cantores/internal/shared/constants"
)

// AssignmentModel is one music piece placed in a slot occurrence.
// PlanID and SlotID are denormalized from the occurrence.
type AssignmentModel struct {
	ID            uint           `gorm:"primarykey"`
	PlanSlotID    uint           `gorm:"not null;index:idx_assignment_order,priority:1"`
	PlanID        uint           `gorm:"not null;index:idx_assignment_plan"`
	SlotID        uint           `gorm:"not null;index:idx_assignment_slot"`
	MusicID       uint           `gorm:"not null;index:idx_assignment_music"`
	MusicSequence int            `gorm:"not null;index:idx_assignment_order,priority:2"`
	Notes         string         `gorm:"type:text"`
	PlanSlot      *PlanSlotModel `gorm:"foreignKey:PlanSlotID;constraint:OnDelete:CASCADE"`
	Plan          *PlanModel     `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
	Slot          *SlotModel     `gorm:"foreignKey:SlotID;constraint:OnDelete:RESTRICT"`
	Music         *MusicModel    `gorm:"foreignKey:MusicID;constraint:OnDelete:RESTRICT"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM.
func (AssignmentModel) TableName() string {
	return constants.TableAssignments
}

// FlagModel is an entry of the seeded flag catalog.
type FlagModel struct {
	ID   uint   `gorm:"primarykey"`
	Name string `gorm:"not null;size:50;uniqueIndex:idx_flag_name"`
}

// TableName specifies the table name for GORM.
func (FlagModel) TableName() string {
	return constants.TableFlags
}

// AssignmentFlagModel links an assignment to a flag.
type AssignmentFlagModel struct {
	AssignmentID uint             `gorm:"primaryKey;autoIncrement:false"`
	FlagID       uint             `gorm:"primaryKey;autoIncrement:false;index:idx_assignment_flag_flag"`
	Assignment   *AssignmentModel `gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE"`
	Flag         *FlagModel       `gorm:"foreignKey:FlagID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM.
func (AssignmentFlagModel) TableName() string {
	return constants.TableAssignmentFlags
}

// AssignmentScopeModel limits an assignment to e.g. verse 2.
type AssignmentScopeModel struct {
	ID           uint             `gorm:"primarykey"`
	AssignmentID uint             `gorm:"not null;index:idx_assignment_scope_assignment"`
	ScopeType    string           `gorm:"not null;size:20"`
	ScopeNumber  int              `gorm:"not null"`
	Assignment   *AssignmentModel `gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM.
func (AssignmentScopeModel) TableName() string {
	return constants.TableAssignmentScopes
}
