package usecases

import (
	"context"
	"fmt"

	"github.com/szentjozsefhackathon/cantores/internal/application/plan/dto"
	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/shared/db"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// MoveOccurrenceCommand moves one occurrence by one position.
type MoveOccurrenceCommand struct {
	PlanID       uint
	OccurrenceID uint
	Direction    plan.Direction
}

// MoveOccurrenceUseCase swaps an occurrence with its neighbour.
type MoveOccurrenceUseCase struct {
	planRepo       plan.Repository
	occurrenceRepo plan.OccurrenceRepository
	txMgr          *db.TransactionManager
	logger         logger.Interface
}

// NewMoveOccurrenceUseCase creates a new MoveOccurrenceUseCase.
func NewMoveOccurrenceUseCase(
	planRepo plan.Repository,
	occurrenceRepo plan.OccurrenceRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *MoveOccurrenceUseCase {
	return &MoveOccurrenceUseCase{
		planRepo:       planRepo,
		occurrenceRepo: occurrenceRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

// Execute exchanges the sequence values of the occurrence and its
// neighbour in the given direction. Nothing else is renumbered. Moving
// past either end, or an occurrence outside the plan, changes nothing.
func (uc *MoveOccurrenceUseCase) Execute(ctx context.Context, cmd MoveOccurrenceCommand) (*dto.SequenceResult, error) {
	result := &dto.SequenceResult{}

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		p, err := uc.planRepo.LockByID(txCtx, cmd.PlanID)
		if err != nil {
			return fmt.Errorf("failed to lock plan: %w", err)
		}
		if p == nil {
			return nil
		}

		ordered, err := uc.occurrenceRepo.ListByPlan(txCtx, p.ID())
		if err != nil {
			return fmt.Errorf("failed to list occurrences: %w", err)
		}

		item, neighbour, ok := plan.FindSwapPartner(ordered, cmd.OccurrenceID, cmd.Direction)
		if !ok {
			return nil
		}
		if err := uc.occurrenceRepo.SwapSequence(txCtx, item, neighbour); err != nil {
			return err
		}
		result.Changed = true
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to move occurrence",
			"plan_id", cmd.PlanID,
			"occurrence_id", cmd.OccurrenceID,
			"direction", cmd.Direction.String(),
			"error", err,
		)
		return nil, err
	}

	if result.Changed {
		uc.logger.Infow("occurrence moved", "plan_id", cmd.PlanID, "occurrence_id", cmd.OccurrenceID, "direction", cmd.Direction.String())
	}
	return result, nil
}
