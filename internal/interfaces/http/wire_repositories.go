package http

import (
	"gorm.io/gorm"

	"github.com/szentjozsefhackathon/cantores/internal/domain/celebration"
	"github.com/szentjozsefhackathon/cantores/internal/domain/music"
	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/domain/slot"
	"github.com/szentjozsefhackathon/cantores/internal/domain/template"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/repository"
	"github.com/szentjozsefhackathon/cantores/internal/shared/db"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// repositories holds all repository instances.
type repositories struct {
	slot        slot.Repository
	template    template.Repository
	plan        plan.Repository
	occurrence  plan.OccurrenceRepository
	assignment  plan.AssignmentRepository
	flag        plan.FlagRepository
	suggestion  plan.SuggestionRepository
	music       music.Repository
	celebration celebration.Repository

	txMgr *db.TransactionManager
}

func newRepositories(database *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		slot:        repository.NewSlotRepository(database, log),
		template:    repository.NewTemplateRepository(database, log),
		plan:        repository.NewPlanRepository(database, log),
		occurrence:  repository.NewPlanSlotRepository(database, log),
		assignment:  repository.NewAssignmentRepository(database, log),
		flag:        repository.NewFlagRepository(database, log),
		suggestion:  repository.NewSuggestionRepository(database, log),
		music:       repository.NewMusicRepository(database, log),
		celebration: repository.NewCelebrationRepository(database, log),
		txMgr:       db.NewTransactionManager(database),
	}
}
