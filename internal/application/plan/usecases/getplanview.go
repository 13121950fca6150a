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
	"github.com/szentjozsefhackathon/cantores/internal/shared/mapper"
)

// GetPlanViewUseCase assembles a plan with its full running order.
type GetPlanViewUseCase struct {
	planRepo        plan.Repository
	occurrenceRepo  plan.OccurrenceRepository
	assignmentRepo  plan.AssignmentRepository
	flagRepo        plan.FlagRepository
	slotRepo        slot.Repository
	musicRepo       music.Repository
	celebrationRepo celebration.Repository
	renderer        NotesRenderer
	logger          logger.Interface
}

// NewGetPlanViewUseCase creates a new GetPlanViewUseCase.
func NewGetPlanViewUseCase(
	planRepo plan.Repository,
	occurrenceRepo plan.OccurrenceRepository,
	assignmentRepo plan.AssignmentRepository,
	flagRepo plan.FlagRepository,
	slotRepo slot.Repository,
	musicRepo music.Repository,
	celebrationRepo celebration.Repository,
	renderer NotesRenderer,
	logger logger.Interface,
) *GetPlanViewUseCase {
	return &GetPlanViewUseCase{
		planRepo:        planRepo,
		occurrenceRepo:  occurrenceRepo,
		assignmentRepo:  assignmentRepo,
		flagRepo:        flagRepo,
		slotRepo:        slotRepo,
		musicRepo:       musicRepo,
		celebrationRepo: celebrationRepo,
		renderer:        renderer,
		logger:          logger,
	}
}

// Execute returns the plan view. Private plans of other users are
// reported as missing; private notes are shown to the owner only.
func (uc *GetPlanViewUseCase) Execute(ctx context.Context, planID uint, viewer *authorization.Viewer) (*dto.PlanViewDTO, error) {
	p, err := uc.planRepo.GetByID(ctx, planID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "plan_id", planID, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	viewerID := viewer.UserIDPtr()
	if p == nil || !p.CanView(viewerID) {
		return nil, errors.NewNotFoundError("plan not found")
	}
	isOwner := p.IsOwnedBy(viewerID)

	view := &dto.PlanViewDTO{
		PlanDTO: *dto.ToPlanDTO(p, isOwner),
		IsOwner: isOwner,
	}
	if isOwner && p.PrivateNotes() != nil {
		if view.PrivateNotesHTML, err = uc.renderer.ToHTMLSanitized(*p.PrivateNotes()); err != nil {
			return nil, fmt.Errorf("failed to render plan notes: %w", err)
		}
	}

	if view.Celebrations, err = uc.celebrations(ctx, p.CelebrationIDs()); err != nil {
		return nil, err
	}
	if view.Occurrences, err = uc.runningOrder(ctx, p.ID(), viewerID); err != nil {
		return nil, err
	}
	return view, nil
}

func (uc *GetPlanViewUseCase) celebrations(ctx context.Context, ids []uint) ([]*dto.CelebrationDTO, error) {
	found, err := uc.celebrationRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load celebrations: %w", err)
	}
	result := make([]*dto.CelebrationDTO, 0, len(ids))
	for _, id := range ids {
		if c, ok := found[id]; ok {
			result = append(result, &dto.CelebrationDTO{
				ID:   c.ID(),
				Kind: string(c.Kind()),
				Name: c.Name(),
				Date: c.Date(),
			})
		}
	}
	return result, nil
}

func (uc *GetPlanViewUseCase) runningOrder(ctx context.Context, planID uint, viewerID *uint) ([]*dto.OccurrenceDTO, error) {
	occurrences, err := uc.occurrenceRepo.ListByPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to list occurrences: %w", err)
	}
	assignments, err := uc.assignmentRepo.ListByPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	defs, err := uc.slotRepo.GetByIDs(ctx, mapper.IDs(occurrences, (*plan.SlotOccurrence).SlotID))
	if err != nil {
		return nil, fmt.Errorf("failed to load slots: %w", err)
	}
	pieces, err := uc.musicRepo.GetByIDs(ctx, mapper.IDs(assignments, (*plan.Assignment).MusicID))
	if err != nil {
		return nil, fmt.Errorf("failed to load music: %w", err)
	}
	flags, err := uc.flagRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load flags: %w", err)
	}
	flagNames := make(map[uint]string, len(flags))
	for _, f := range flags {
		flagNames[f.ID] = f.Name
	}

	result := make([]*dto.OccurrenceDTO, 0, len(occurrences))
	byID := make(map[uint]*dto.OccurrenceDTO, len(occurrences))
	for _, o := range occurrences {
		item := dto.ToOccurrenceDTO(o)
		if def, ok := defs[o.SlotID()]; ok {
			item.SlotName = def.Name()
			item.IsCustom = def.IsCustom()
		}
		result = append(result, item)
		byID[o.ID()] = item
	}

	for _, a := range assignments {
		parent, ok := byID[a.OccurrenceID()]
		if !ok {
			continue
		}
		item, err := uc.assignment(a, pieces[a.MusicID()], viewerID, flagNames)
		if err != nil {
			return nil, err
		}
		parent.Assignments = append(parent.Assignments, item)
	}
	return result, nil
}

func (uc *GetPlanViewUseCase) assignment(a *plan.Assignment, piece *music.Music, viewerID *uint, flagNames map[uint]string) (*dto.AssignmentDTO, error) {
	item := &dto.AssignmentDTO{
		ID:            a.ID(),
		OccurrenceID:  a.OccurrenceID(),
		MusicID:       a.MusicID(),
		MusicSequence: a.MusicSequence(),
		Notes:         a.Notes(),
		Flags:         make([]string, 0, len(a.FlagIDs())),
		Scopes:        mapper.MapSlice(a.Scopes(), dto.ToScopeDTO),
	}
	if piece != nil && piece.VisibleTo(viewerID) {
		item.MusicTitle = piece.Title()
	} else {
		item.Hidden = true
	}
	for _, id := range a.FlagIDs() {
		if name, ok := flagNames[id]; ok {
			item.Flags = append(item.Flags, name)
		}
	}
	if a.Notes() != "" {
		html, err := uc.renderer.ToHTMLSanitized(a.Notes())
		if err != nil {
			return nil, fmt.Errorf("failed to render assignment notes: %w", err)
		}
		item.NotesHTML = html
	}
	return item, nil
}
