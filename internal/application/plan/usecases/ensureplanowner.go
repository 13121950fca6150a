package usecases

import (
	"context"
	"fmt"

	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/shared/authorization"
	"github.com/szentjozsefhackathon/cantores/internal/shared/errors"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// EnsurePlanOwnerUseCase confirms that the viewer may modify a plan.
// Sequencers assume this check has already passed.
type EnsurePlanOwnerUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

// NewEnsurePlanOwnerUseCase creates a new EnsurePlanOwnerUseCase.
func NewEnsurePlanOwnerUseCase(planRepo plan.Repository, logger logger.Interface) *EnsurePlanOwnerUseCase {
	return &EnsurePlanOwnerUseCase{planRepo: planRepo, logger: logger}
}

// Execute returns the plan when viewer owns it. Private plans of other
// users are reported as missing.
func (uc *EnsurePlanOwnerUseCase) Execute(ctx context.Context, planID uint, viewer *authorization.Viewer) (*plan.Plan, error) {
	if viewer.IsGuest() {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	p, err := uc.planRepo.GetByID(ctx, planID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "plan_id", planID, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if p == nil || !p.CanView(viewer.UserIDPtr()) {
		return nil, errors.NewNotFoundError("plan not found")
	}
	if !p.IsOwnedBy(viewer.UserIDPtr()) {
		uc.logger.Warnw("user attempted to modify plan they don't own",
			"user_id", viewer.UserID,
			"plan_id", planID,
			"owner_id", p.OwnerID(),
		)
		return nil, errors.NewForbiddenError("only the plan owner may change it").WithCause(plan.ErrNotOwner)
	}
	return p, nil
}
