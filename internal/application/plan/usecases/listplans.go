package usecases

import (
	"context"

	"github.com/szentjozsefhackathon/cantores/internal/application/plan/dto"
	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/shared/authorization"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
	"github.com/szentjozsefhackathon/cantores/internal/shared/query"
)

// ListPlansQuery narrows the plan listing.
type ListPlansQuery struct {
	Viewer        *authorization.Viewer
	OwnerOnly     bool
	CelebrationID *uint
	GenreID       *uint
	Page          int
	PageSize      int
}

// ListPlansResult is one page of plans.
type ListPlansResult struct {
	Plans    []*dto.PlanDTO `json:"plans"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// ListPlansUseCase lists the viewer's own plans plus published plans.
type ListPlansUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

// NewListPlansUseCase creates a new ListPlansUseCase.
func NewListPlansUseCase(planRepo plan.Repository, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{planRepo: planRepo, logger: logger}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context, q ListPlansQuery) (*ListPlansResult, error) {
	filter := plan.ListFilter{
		PageFilter:    query.PageFilter{Page: q.Page, PageSize: q.PageSize},
		ViewerID:      q.Viewer.UserIDPtr(),
		OwnerOnly:     q.OwnerOnly,
		CelebrationID: q.CelebrationID,
		GenreID:       q.GenreID,
	}

	plans, total, err := uc.planRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, err
	}

	viewerID := q.Viewer.UserIDPtr()
	items := make([]*dto.PlanDTO, 0, len(plans))
	for _, p := range plans {
		items = append(items, dto.ToPlanDTO(p, p.IsOwnedBy(viewerID)))
	}

	return &ListPlansResult{
		Plans:    items,
		Total:    total,
		Page:     filter.Offset()/filter.Limit() + 1,
		PageSize: filter.Limit(),
	}, nil
}
