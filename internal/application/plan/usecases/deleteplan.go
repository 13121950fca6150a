package usecases

import (
	"context"

	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/domain/slot"
	"github.com/szentjozsefhackathon/cantores/internal/shared/authorization"
	"github.com/szentjozsefhackathon/cantores/internal/shared/db"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// DeletePlanUseCase hard-deletes a plan on behalf of its owner.
type DeletePlanUseCase struct {
	planRepo plan.Repository
	slotRepo slot.Repository
	owner    *EnsurePlanOwnerUseCase
	txMgr    *db.TransactionManager
	logger   logger.Interface
}

// NewDeletePlanUseCase creates a new DeletePlanUseCase.
func NewDeletePlanUseCase(
	planRepo plan.Repository,
	slotRepo slot.Repository,
	owner *EnsurePlanOwnerUseCase,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *DeletePlanUseCase {
	return &DeletePlanUseCase{
		planRepo: planRepo,
		slotRepo: slotRepo,
		owner:    owner,
		txMgr:    txMgr,
		logger:   logger,
	}
}

// Execute deletes the plan. Occurrences, assignments, flags and scopes
// cascade in the store; the plan's custom slots are retired in the same
// transaction.
func (uc *DeletePlanUseCase) Execute(ctx context.Context, planID uint, viewer *authorization.Viewer) error {
	if _, err := uc.owner.Execute(ctx, planID, viewer); err != nil {
		return err
	}

	var retired int64
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.planRepo.Delete(txCtx, planID); err != nil {
			return err
		}
		n, err := uc.slotRepo.RetireByOwnerPlan(txCtx, planID)
		retired = n
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to delete plan", "plan_id", planID, "error", err)
		return err
	}

	uc.logger.Infow("plan deleted", "plan_id", planID, "user_id", viewer.UserID, "retired_custom_slots", retired)
	return nil
}
