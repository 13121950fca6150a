package usecases

import (
	"context"
	"fmt"

	"github.com/szentjozsefhackathon/cantores/internal/application/plan/dto"
	"github.com/szentjozsefhackathon/cantores/internal/domain/celebration"
	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/shared/errors"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// CreatePlanCommand represents the input for creating a music plan.
type CreatePlanCommand struct {
	OwnerID        uint
	IsPrivate      bool
	GenreID        *uint
	PrivateNotes   *string
	CelebrationIDs []uint
}

// CreatePlanUseCase creates an empty music plan.
type CreatePlanUseCase struct {
	planRepo        plan.Repository
	celebrationRepo celebration.Repository
	logger          logger.Interface
}

// NewCreatePlanUseCase creates a new CreatePlanUseCase.
func NewCreatePlanUseCase(
	planRepo plan.Repository,
	celebrationRepo celebration.Repository,
	logger logger.Interface,
) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo:        planRepo,
		celebrationRepo: celebrationRepo,
		logger:          logger,
	}
}

// Execute validates the celebrations and stores the plan. Custom
// celebrations can only be linked by their owner.
func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error) {
	p, err := plan.NewPlan(cmd.OwnerID, cmd.IsPrivate, cmd.GenreID, cmd.PrivateNotes, cmd.CelebrationIDs)
	if err != nil {
		return nil, errors.NewValidationError(err.Error()).WithCause(err)
	}

	found, err := uc.celebrationRepo.GetByIDs(ctx, p.CelebrationIDs())
	if err != nil {
		uc.logger.Errorw("failed to load celebrations", "error", err)
		return nil, fmt.Errorf("failed to load celebrations: %w", err)
	}
	for _, id := range p.CelebrationIDs() {
		c, ok := found[id]
		if !ok || (!c.IsLiturgical() && !ownedBy(c.OwnerID(), cmd.OwnerID)) {
			return nil, errors.NewValidationError(celebration.ErrCelebrationNotFound.Error(),
				fmt.Sprintf("celebration_ids: %d", id))
		}
	}

	if err := uc.planRepo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to create plan", "user_id", cmd.OwnerID, "error", err)
		return nil, err
	}

	uc.logger.Infow("plan created", "plan_id", p.ID(), "user_id", cmd.OwnerID, "is_private", p.IsPrivate())
	return dto.ToPlanDTO(p, true), nil
}

func ownedBy(ownerID *uint, userID uint) bool {
	return ownerID != nil && *ownerID == userID
}
