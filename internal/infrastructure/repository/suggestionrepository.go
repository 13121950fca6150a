package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/domain/slot"
	"github.com/szentjozsefhackathon/cantores/internal/shared/constants"
	"github.com/szentjozsefhackathon/cantores/internal/shared/db"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// SuggestionRepositoryImpl implements the plan.SuggestionRepository interface.
type SuggestionRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewSuggestionRepository creates a new suggestion repository instance.
func NewSuggestionRepository(database *gorm.DB, logger logger.Interface) plan.SuggestionRepository {
	return &SuggestionRepositoryImpl{db: database, logger: logger}
}

type suggestionRow struct {
	SlotID    uint
	MusicID   uint
	PlanCount int
}

func (r *SuggestionRepositoryImpl) FindCandidates(ctx context.Context, celebrationIDs []uint, excludePlanID uint, viewerID *uint) ([]plan.Suggestion, error) {
	if len(celebrationIDs) == 0 {
		return []plan.Suggestion{}, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	linked := tx.Table(constants.TablePlanCelebrations).
		Select("plan_id").
		Where("celebration_id IN ?", celebrationIDs)

	q := tx.Table(constants.TableAssignments+" a").
		Select("a.slot_id AS slot_id, a.music_id AS music_id, COUNT(DISTINCT a.plan_id) AS plan_count").
		Joins("JOIN "+constants.TablePlans+" p ON p.id = a.plan_id").
		Joins("JOIN "+constants.TableSlots+" s ON s.id = a.slot_id").
		Joins("JOIN "+constants.TableMusic+" m ON m.id = a.music_id").
		Where("a.plan_id <> ?", excludePlanID).
		Where("a.plan_id IN (?)", linked).
		Where("s.is_custom = ? AND s.lifecycle = ?", false, string(slot.LifecycleActive))

	if viewerID == nil {
		q = q.Where("p.is_private = ?", false).
			Where("m.is_private = ?", false)
	} else {
		q = q.Where("(p.is_private = ? OR p.user_id = ?)", false, *viewerID).
			Where("(m.is_private = ? OR m.owner_user_id = ?)", false, *viewerID)
	}

	var rows []suggestionRow
	if err := q.Group("a.slot_id, a.music_id").Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to aggregate suggestions", "plan_id", excludePlanID, "error", err)
		return nil, fmt.Errorf("failed to aggregate suggestions: %w", err)
	}

	result := make([]plan.Suggestion, 0, len(rows))
	for _, row := range rows {
		result = append(result, plan.Suggestion{SlotID: row.SlotID, MusicID: row.MusicID, PlanCount: row.PlanCount})
	}
	return result, nil
}
