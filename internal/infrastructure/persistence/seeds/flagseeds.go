package seeds

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/persistence/models"
)

// DefaultFlags is the assignment flag catalog shipped with every database.
var DefaultFlags = []string{"important", "alternative", "optional", "instrumental", "congregation"}

// SeedFlags inserts the default flags, skipping names that already exist.
func SeedFlags(db *gorm.DB) error {
	flags := make([]models.FlagModel, 0, len(DefaultFlags))
	for _, name := range DefaultFlags {
		flags = append(flags, models.FlagModel{Name: name})
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&flags).Error
}
