package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/szentjozsefhackathon/cantores/internal/application/plan/dto"
	"github.com/szentjozsefhackathon/cantores/internal/domain/celebration"
	"github.com/szentjozsefhackathon/cantores/internal/domain/music"
	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/domain/slot"
	"github.com/szentjozsefhackathon/cantores/internal/shared/authorization"
	"github.com/szentjozsefhackathon/cantores/internal/shared/db"
	"github.com/szentjozsefhackathon/cantores/internal/shared/errors"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// ClonePlanCommand copies a plan for the viewer.
type ClonePlanCommand struct {
	SourcePlanID uint
	Viewer       *authorization.Viewer
}

// ClonePlanUseCase deep-copies a plan's running order into a new plan.
type ClonePlanUseCase struct {
	planRepo        plan.Repository
	occurrenceRepo  plan.OccurrenceRepository
	assignmentRepo  plan.AssignmentRepository
	slotRepo        slot.Repository
	musicRepo       music.Repository
	celebrationRepo celebration.Repository
	txMgr           *db.TransactionManager
	logger          logger.Interface
}

// NewClonePlanUseCase creates a new ClonePlanUseCase.
func NewClonePlanUseCase(
	planRepo plan.Repository,
	occurrenceRepo plan.OccurrenceRepository,
	assignmentRepo plan.AssignmentRepository,
	slotRepo slot.Repository,
	musicRepo music.Repository,
	celebrationRepo celebration.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *ClonePlanUseCase {
	return &ClonePlanUseCase{
		planRepo:        planRepo,
		occurrenceRepo:  occurrenceRepo,
		assignmentRepo:  assignmentRepo,
		slotRepo:        slotRepo,
		musicRepo:       musicRepo,
		celebrationRepo: celebrationRepo,
		txMgr:           txMgr,
		logger:          logger,
	}
}

// Execute creates a private copy of the source plan in one transaction.
//
// The owner gets everything, with custom slots and custom celebrations
// duplicated under the new plan. Anyone else copying a published plan
// gets only global slot occurrences and music they can see, and never
// the private notes. Copied sequences are renumbered from 1.
func (uc *ClonePlanUseCase) Execute(ctx context.Context, cmd ClonePlanCommand) (*dto.CloneResult, error) {
	var result *dto.CloneResult

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		source, err := uc.planRepo.GetByID(txCtx, cmd.SourcePlanID)
		if err != nil {
			return fmt.Errorf("failed to get source plan: %w", err)
		}
		if source == nil {
			return errors.NewNotFoundError("plan not found")
		}

		if err := source.AuthorizeClone(cmd.Viewer.UserIDPtr()); err != nil {
			return cloneAuthorizationError(err)
		}
		copierID := cmd.Viewer.UserID
		isOwner := source.IsOwnedBy(&copierID)

		celebrationIDs, err := uc.copyCelebrations(txCtx, source.CelebrationIDs(), copierID)
		if err != nil {
			return err
		}

		target, err := source.CloneFor(copierID, celebrationIDs)
		if err != nil {
			return err
		}
		if err := uc.planRepo.Create(txCtx, target); err != nil {
			return err
		}

		occurrences, assignments, err := uc.copyRunningOrder(txCtx, source, target, copierID, isOwner)
		if err != nil {
			return err
		}

		result = &dto.CloneResult{
			Plan:        dto.ToPlanDTO(target, true),
			Occurrences: occurrences,
			Assignments: assignments,
		}
		return nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			uc.logger.Warnw("clone rejected", "source_plan_id", cmd.SourcePlanID, "user_id", cmd.Viewer.UserIDPtr(), "error", err)
		} else {
			uc.logger.Errorw("failed to clone plan", "source_plan_id", cmd.SourcePlanID, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("plan cloned",
		"source_plan_id", cmd.SourcePlanID,
		"plan_id", result.Plan.ID,
		"user_id", cmd.Viewer.UserID,
		"occurrences", result.Occurrences,
		"assignments", result.Assignments,
	)
	return result, nil
}

func cloneAuthorizationError(err error) error {
	if stderrors.Is(err, plan.ErrCloneUnauthenticated) {
		return errors.NewUnauthorizedError(err.Error()).WithCause(err)
	}
	return errors.NewForbiddenError(err.Error()).WithCause(err)
}

// copyCelebrations keeps liturgical celebrations by reference and
// duplicates custom ones for the copier.
func (uc *ClonePlanUseCase) copyCelebrations(ctx context.Context, ids []uint, copierID uint) ([]uint, error) {
	existing, err := uc.celebrationRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get celebrations: %w", err)
	}

	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		c, ok := existing[id]
		if !ok {
			continue
		}
		if c.IsLiturgical() {
			result = append(result, c.ID())
			continue
		}
		dup, err := c.DuplicateFor(copierID)
		if err != nil {
			return nil, err
		}
		if err := uc.celebrationRepo.Create(ctx, dup); err != nil {
			return nil, err
		}
		result = append(result, dup.ID())
	}
	return result, nil
}

func (uc *ClonePlanUseCase) copyRunningOrder(ctx context.Context, source, target *plan.Plan, copierID uint, isOwner bool) (int, int, error) {
	occurrences, err := uc.occurrenceRepo.ListByPlan(ctx, source.ID())
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list source occurrences: %w", err)
	}
	assignments, err := uc.assignmentRepo.ListByPlan(ctx, source.ID())
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list source assignments: %w", err)
	}

	byOccurrence := make(map[uint][]*plan.Assignment, len(occurrences))
	musicIDs := make([]uint, 0, len(assignments))
	for _, a := range assignments {
		byOccurrence[a.OccurrenceID()] = append(byOccurrence[a.OccurrenceID()], a)
		musicIDs = append(musicIDs, a.MusicID())
	}

	slotIDs := make([]uint, 0, len(occurrences))
	for _, o := range occurrences {
		slotIDs = append(slotIDs, o.SlotID())
	}
	defs, err := uc.slotRepo.GetByIDs(ctx, slotIDs)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get slots: %w", err)
	}
	pieces, err := uc.musicRepo.GetByIDs(ctx, musicIDs)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get music: %w", err)
	}

	duplicated := make(map[uint]uint)
	copiedOccurrences, copiedAssignments := 0, 0

	for _, o := range occurrences {
		def, ok := defs[o.SlotID()]
		if !ok {
			continue
		}

		slotID := def.ID()
		if def.IsCustom() {
			if !isOwner {
				continue
			}
			if dupID, seen := duplicated[def.ID()]; seen {
				slotID = dupID
			} else {
				dup, err := def.DuplicateFor(target.ID(), copierID)
				if err != nil {
					return 0, 0, err
				}
				if err := uc.slotRepo.Create(ctx, dup); err != nil {
					return 0, 0, err
				}
				duplicated[def.ID()] = dup.ID()
				slotID = dup.ID()
			}
		}

		copiedOccurrences++
		newOccurrence, err := plan.NewSlotOccurrence(target.ID(), slotID, copiedOccurrences)
		if err != nil {
			return 0, 0, err
		}
		if err := uc.occurrenceRepo.Create(ctx, newOccurrence); err != nil {
			return 0, 0, err
		}

		musicSequence := 0
		for _, a := range byOccurrence[o.ID()] {
			piece, ok := pieces[a.MusicID()]
			if !ok || (!isOwner && !piece.VisibleTo(&copierID)) {
				continue
			}
			musicSequence++
			cp, err := a.CopyInto(newOccurrence, musicSequence)
			if err != nil {
				return 0, 0, err
			}
			if err := uc.assignmentRepo.Create(ctx, cp); err != nil {
				return 0, 0, err
			}
			copiedAssignments++
		}
	}
	return copiedOccurrences, copiedAssignments, nil
}
