package usecases

import (
	"context"
	"fmt"

	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/shared/db"
	"github.com/szentjozsefhackathon/cantores/internal/shared/errors"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// UpdateAssignmentCommand changes the notes and/or flags of an assignment.
// Nil fields are left unchanged; an empty FlagIDs clears every flag.
type UpdateAssignmentCommand struct {
	PlanID       uint
	AssignmentID uint
	Notes        *string
	FlagIDs      *[]uint
}

// UpdateAssignmentUseCase edits assignment details without touching order.
type UpdateAssignmentUseCase struct {
	assignmentRepo plan.AssignmentRepository
	flagRepo       plan.FlagRepository
	txMgr          *db.TransactionManager
	logger         logger.Interface
}

// NewUpdateAssignmentUseCase creates a new UpdateAssignmentUseCase.
func NewUpdateAssignmentUseCase(
	assignmentRepo plan.AssignmentRepository,
	flagRepo plan.FlagRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *UpdateAssignmentUseCase {
	return &UpdateAssignmentUseCase{
		assignmentRepo: assignmentRepo,
		flagRepo:       flagRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

// Execute applies the changes. Unknown flag IDs are rejected.
func (uc *UpdateAssignmentUseCase) Execute(ctx context.Context, cmd UpdateAssignmentCommand) error {
	if cmd.Notes == nil && cmd.FlagIDs == nil {
		return errors.NewValidationError("nothing to update", "notes or flag_ids is required")
	}

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		a, err := loadPlanAssignment(txCtx, uc.assignmentRepo, cmd.PlanID, cmd.AssignmentID)
		if err != nil {
			return err
		}

		if cmd.Notes != nil {
			a.SetNotes(*cmd.Notes)
			if err := uc.assignmentRepo.UpdateNotes(txCtx, a); err != nil {
				return err
			}
		}

		if cmd.FlagIDs != nil {
			a.SetFlags(*cmd.FlagIDs)
			known, err := uc.flagRepo.GetByIDs(txCtx, a.FlagIDs())
			if err != nil {
				return err
			}
			if len(known) != len(a.FlagIDs()) {
				return errors.NewValidationError(plan.ErrUnknownFlag.Error(), "flag_ids").WithCause(plan.ErrUnknownFlag)
			}
			if err := uc.assignmentRepo.ReplaceFlags(txCtx, a); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to update assignment", "assignment_id", cmd.AssignmentID, "error", err)
		}
		return err
	}

	uc.logger.Infow("assignment updated", "plan_id", cmd.PlanID, "assignment_id", cmd.AssignmentID)
	return nil
}

// loadPlanAssignment returns the assignment when it belongs to planID.
func loadPlanAssignment(ctx context.Context, repo plan.AssignmentRepository, planID, assignmentID uint) (*plan.Assignment, error) {
	a, err := repo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	if a == nil || a.PlanID() != planID {
		return nil, errors.NewNotFoundError(plan.ErrAssignmentNotFound.Error()).WithCause(plan.ErrAssignmentNotFound)
	}
	return a, nil
}
