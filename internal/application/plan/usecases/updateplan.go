package usecases

import (
	"context"

	"github.com/szentjozsefhackathon/cantores/internal/application/plan/dto"
	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/shared/authorization"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// UpdatePlanCommand changes plan header fields. Nil fields are kept.
type UpdatePlanCommand struct {
	PlanID       uint
	Viewer       *authorization.Viewer
	IsPrivate    *bool
	PrivateNotes *string
	GenreID      *uint
	ClearGenre   bool
}

// UpdatePlanUseCase edits a plan header on behalf of its owner.
type UpdatePlanUseCase struct {
	planRepo plan.Repository
	owner    *EnsurePlanOwnerUseCase
	logger   logger.Interface
}

// NewUpdatePlanUseCase creates a new UpdatePlanUseCase.
func NewUpdatePlanUseCase(planRepo plan.Repository, owner *EnsurePlanOwnerUseCase, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{planRepo: planRepo, owner: owner, logger: logger}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error) {
	p, err := uc.owner.Execute(ctx, cmd.PlanID, cmd.Viewer)
	if err != nil {
		return nil, err
	}

	if !p.Update(cmd.IsPrivate, cmd.PrivateNotes, cmd.GenreID, cmd.ClearGenre) {
		return dto.ToPlanDTO(p, true), nil
	}

	if err := uc.planRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update plan", "plan_id", p.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("plan updated", "plan_id", p.ID(), "user_id", cmd.Viewer.UserID)
	return dto.ToPlanDTO(p, true), nil
}
