package usecases

import (
	"context"
	"fmt"

	"github.com/szentjozsefhackathon/cantores/internal/application/plan/dto"
	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/shared/db"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// UnassignMusicCommand removes one assignment.
type UnassignMusicCommand struct {
	PlanID       uint
	AssignmentID uint
}

// UnassignMusicUseCase deletes an assignment and closes the gap it leaves.
type UnassignMusicUseCase struct {
	planRepo       plan.Repository
	assignmentRepo plan.AssignmentRepository
	txMgr          *db.TransactionManager
	logger         logger.Interface
}

// NewUnassignMusicUseCase creates a new UnassignMusicUseCase.
func NewUnassignMusicUseCase(
	planRepo plan.Repository,
	assignmentRepo plan.AssignmentRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *UnassignMusicUseCase {
	return &UnassignMusicUseCase{
		planRepo:       planRepo,
		assignmentRepo: assignmentRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

// Execute deletes the assignment with its flags and scopes and shifts the
// later assignments of the occurrence down by one.
func (uc *UnassignMusicUseCase) Execute(ctx context.Context, cmd UnassignMusicCommand) (*dto.SequenceResult, error) {
	result := &dto.SequenceResult{}

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		p, err := uc.planRepo.LockByID(txCtx, cmd.PlanID)
		if err != nil {
			return fmt.Errorf("failed to lock plan: %w", err)
		}
		if p == nil {
			return nil
		}

		a, err := uc.assignmentRepo.GetByID(txCtx, cmd.AssignmentID)
		if err != nil {
			return fmt.Errorf("failed to get assignment: %w", err)
		}
		if a == nil || a.PlanID() != p.ID() {
			return nil
		}

		if err := uc.assignmentRepo.DeleteAndCloseGap(txCtx, a); err != nil {
			return err
		}
		result.Changed = true
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to unassign music", "plan_id", cmd.PlanID, "assignment_id", cmd.AssignmentID, "error", err)
		return nil, err
	}

	if result.Changed {
		uc.logger.Infow("music unassigned", "plan_id", cmd.PlanID, "assignment_id", cmd.AssignmentID)
	}
	return result, nil
}
