// Package migrations lists the persistence models in dependency order for
// GORM auto-migration. Production schemas come from the goose scripts;
// this path serves development databases and tests.
package migrations

import (
	"gorm.io/gorm"

	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/persistence/models"
)

// Models returns every persistence model, parents first.
func Models() []interface{} {
	return []interface{}{
		&models.SlotModel{},
		&models.TemplateModel{},
		&models.TemplateSlotModel{},
		&models.MusicModel{},
		&models.CelebrationModel{},
		&models.PlanModel{},
		&models.PlanCelebrationModel{},
		&models.PlanSlotModel{},
		&models.AssignmentModel{},
		&models.FlagModel{},
		&models.AssignmentFlagModel{},
		&models.AssignmentScopeModel{},
	}
}

// MigrateAll creates or updates every table.
func MigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
