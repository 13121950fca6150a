package usecases

import (
	"context"
	"fmt"

	"github.com/szentjozsefhackathon/cantores/internal/application/plan/dto"
	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/shared/db"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// MoveAssignmentCommand moves one assignment by one position.
type MoveAssignmentCommand struct {
	PlanID       uint
	AssignmentID uint
	Direction    plan.Direction
}

// MoveAssignmentUseCase swaps an assignment with its neighbour in the
// same occurrence.
type MoveAssignmentUseCase struct {
	planRepo       plan.Repository
	assignmentRepo plan.AssignmentRepository
	txMgr          *db.TransactionManager
	logger         logger.Interface
}

// NewMoveAssignmentUseCase creates a new MoveAssignmentUseCase.
func NewMoveAssignmentUseCase(
	planRepo plan.Repository,
	assignmentRepo plan.AssignmentRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *MoveAssignmentUseCase {
	return &MoveAssignmentUseCase{
		planRepo:       planRepo,
		assignmentRepo: assignmentRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

// Execute exchanges the music sequence values of the assignment and its
// neighbour. Occurrence order is never touched.
func (uc *MoveAssignmentUseCase) Execute(ctx context.Context, cmd MoveAssignmentCommand) (*dto.SequenceResult, error) {
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

		ordered, err := uc.assignmentRepo.ListByOccurrence(txCtx, a.OccurrenceID())
		if err != nil {
			return fmt.Errorf("failed to list assignments: %w", err)
		}

		item, neighbour, ok := plan.FindSwapPartner(ordered, a.ID(), cmd.Direction)
		if !ok {
			return nil
		}
		if err := uc.assignmentRepo.SwapMusicSequence(txCtx, item, neighbour); err != nil {
			return err
		}
		result.Changed = true
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to move assignment",
			"plan_id", cmd.PlanID,
			"assignment_id", cmd.AssignmentID,
			"direction", cmd.Direction.String(),
			"error", err,
		)
		return nil, err
	}

	if result.Changed {
		uc.logger.Infow("assignment moved", "plan_id", cmd.PlanID, "assignment_id", cmd.AssignmentID, "direction", cmd.Direction.String())
	}
	return result, nil
}
