package usecases

import (
	"context"
	"fmt"

	"github.com/szentjozsefhackathon/cantores/internal/application/plan/dto"
	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/shared/db"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// RemoveOccurrenceCommand removes one occurrence from a plan.
type RemoveOccurrenceCommand struct {
	PlanID       uint
	OccurrenceID uint
}

// RemoveOccurrenceUseCase deletes an occurrence and closes the gap it leaves.
type RemoveOccurrenceUseCase struct {
	planRepo       plan.Repository
	occurrenceRepo plan.OccurrenceRepository
	txMgr          *db.TransactionManager
	logger         logger.Interface
}

// NewRemoveOccurrenceUseCase creates a new RemoveOccurrenceUseCase.
func NewRemoveOccurrenceUseCase(
	planRepo plan.Repository,
	occurrenceRepo plan.OccurrenceRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *RemoveOccurrenceUseCase {
	return &RemoveOccurrenceUseCase{
		planRepo:       planRepo,
		occurrenceRepo: occurrenceRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

// Execute deletes the occurrence with its assignments and shifts every
// later occurrence down by one. Unknown occurrences change nothing.
func (uc *RemoveOccurrenceUseCase) Execute(ctx context.Context, cmd RemoveOccurrenceCommand) (*dto.SequenceResult, error) {
	result := &dto.SequenceResult{}

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		p, err := uc.planRepo.LockByID(txCtx, cmd.PlanID)
		if err != nil {
			return fmt.Errorf("failed to lock plan: %w", err)
		}
		if p == nil {
			return nil
		}

		o, err := uc.occurrenceRepo.GetByID(txCtx, cmd.OccurrenceID)
		if err != nil {
			return fmt.Errorf("failed to get occurrence: %w", err)
		}
		if o == nil || o.PlanID() != p.ID() {
			return nil
		}

		if err := uc.occurrenceRepo.DeleteAndCloseGap(txCtx, o); err != nil {
			return err
		}
		result.Changed = true
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to remove occurrence", "plan_id", cmd.PlanID, "occurrence_id", cmd.OccurrenceID, "error", err)
		return nil, err
	}

	if result.Changed {
		uc.logger.Infow("occurrence removed", "plan_id", cmd.PlanID, "occurrence_id", cmd.OccurrenceID)
	}
	return result, nil
}
