package usecases

import (
	"context"
	"fmt"

	"github.com/szentjozsefhackathon/cantores/internal/application/plan/dto"
	"github.com/szentjozsefhackathon/cantores/internal/domain/celebration"
	"github.com/szentjozsefhackathon/cantores/internal/domain/music"
	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/domain/slot"
	"github.com/szentjozsefhackathon/cantores/internal/shared/authorization"
	"github.com/szentjozsefhackathon/cantores/internal/shared/errors"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

const (
	defaultSuggestionLimit = 5
	maxSuggestionLimit     = 20
)

// FindSuggestionsQuery asks for music used by other plans of the same
// liturgical celebrations.
type FindSuggestionsQuery struct {
	PlanID uint
	Viewer *authorization.Viewer
	Limit  int
}

// FindSuggestionsUseCase ranks music from prior plans per slot.
type FindSuggestionsUseCase struct {
	planRepo        plan.Repository
	suggestionRepo  plan.SuggestionRepository
	celebrationRepo celebration.Repository
	slotRepo        slot.Repository
	musicRepo       music.Repository
	logger          logger.Interface
}

// NewFindSuggestionsUseCase creates a new FindSuggestionsUseCase.
func NewFindSuggestionsUseCase(
	planRepo plan.Repository,
	suggestionRepo plan.SuggestionRepository,
	celebrationRepo celebration.Repository,
	slotRepo slot.Repository,
	musicRepo music.Repository,
	logger logger.Interface,
) *FindSuggestionsUseCase {
	return &FindSuggestionsUseCase{
		planRepo:        planRepo,
		suggestionRepo:  suggestionRepo,
		celebrationRepo: celebrationRepo,
		slotRepo:        slotRepo,
		musicRepo:       musicRepo,
		logger:          logger,
	}
}

// Execute returns suggestions grouped by slot, most used music first.
// Plans without liturgical celebrations get none.
func (uc *FindSuggestionsUseCase) Execute(ctx context.Context, q FindSuggestionsQuery) ([]*dto.SlotSuggestionsDTO, error) {
	viewerID := q.Viewer.UserIDPtr()

	p, err := uc.planRepo.GetByID(ctx, q.PlanID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if p == nil || !p.CanView(viewerID) {
		return nil, errors.NewNotFoundError("plan not found")
	}

	found, err := uc.celebrationRepo.GetByIDs(ctx, p.CelebrationIDs())
	if err != nil {
		return nil, fmt.Errorf("failed to load celebrations: %w", err)
	}
	liturgical := make([]uint, 0, len(found))
	for _, id := range p.CelebrationIDs() {
		if c, ok := found[id]; ok && c.IsLiturgical() {
			liturgical = append(liturgical, id)
		}
	}
	if len(liturgical) == 0 {
		return []*dto.SlotSuggestionsDTO{}, nil
	}

	candidates, err := uc.suggestionRepo.FindCandidates(ctx, liturgical, p.ID(), viewerID)
	if err != nil {
		uc.logger.Errorw("failed to find suggestions", "plan_id", p.ID(), "error", err)
		return nil, err
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultSuggestionLimit
	}
	if limit > maxSuggestionLimit {
		limit = maxSuggestionLimit
	}
	ranked := plan.RankSuggestions(candidates, limit)

	slotIDs := make([]uint, 0, len(ranked))
	musicIDs := make([]uint, 0, len(candidates))
	for _, group := range ranked {
		slotIDs = append(slotIDs, group.SlotID)
		for _, s := range group.Suggestions {
			musicIDs = append(musicIDs, s.MusicID)
		}
	}
	defs, err := uc.slotRepo.GetByIDs(ctx, slotIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load slots: %w", err)
	}
	pieces, err := uc.musicRepo.GetByIDs(ctx, musicIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load music: %w", err)
	}

	result := make([]*dto.SlotSuggestionsDTO, 0, len(ranked))
	for _, group := range ranked {
		item := &dto.SlotSuggestionsDTO{SlotID: group.SlotID, Music: make([]*dto.SuggestedMusicDTO, 0, len(group.Suggestions))}
		if def, ok := defs[group.SlotID]; ok {
			item.SlotName = def.Name()
		}
		for _, s := range group.Suggestions {
			entry := &dto.SuggestedMusicDTO{MusicID: s.MusicID, PlanCount: s.PlanCount}
			if piece, ok := pieces[s.MusicID]; ok {
				entry.Title = piece.Title()
			}
			item.Music = append(item.Music, entry)
		}
		result = append(result, item)
	}
	return result, nil
}
