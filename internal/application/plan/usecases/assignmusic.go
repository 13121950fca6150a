package usecases

import (
	"context"
	"fmt"

	"github.com/szentjozsefhackathon/cantores/internal/application/plan/dto"
	"github.com/szentjozsefhackathon/cantores/internal/domain/music"
	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/shared/db"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// AssignMusicCommand places a piece at the end of an occurrence.
type AssignMusicCommand struct {
	PlanID       uint
	OccurrenceID uint
	MusicID      uint
	ActorID      uint
}

// AssignMusicUseCase appends a music assignment to a slot occurrence.
type AssignMusicUseCase struct {
	planRepo       plan.Repository
	occurrenceRepo plan.OccurrenceRepository
	assignmentRepo plan.AssignmentRepository
	musicRepo      music.Repository
	txMgr          *db.TransactionManager
	logger         logger.Interface
}

// NewAssignMusicUseCase creates a new AssignMusicUseCase.
func NewAssignMusicUseCase(
	planRepo plan.Repository,
	occurrenceRepo plan.OccurrenceRepository,
	assignmentRepo plan.AssignmentRepository,
	musicRepo music.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *AssignMusicUseCase {
	return &AssignMusicUseCase{
		planRepo:       planRepo,
		occurrenceRepo: occurrenceRepo,
		assignmentRepo: assignmentRepo,
		musicRepo:      musicRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

// Execute assigns the piece with music_sequence one past the current
// maximum. The same piece may be assigned more than once. Unknown
// occurrences and music the actor cannot see change nothing.
func (uc *AssignMusicUseCase) Execute(ctx context.Context, cmd AssignMusicCommand) (*dto.AssignResult, error) {
	result := &dto.AssignResult{}

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

		piece, err := uc.musicRepo.GetByID(txCtx, cmd.MusicID)
		if err != nil {
			return fmt.Errorf("failed to get music: %w", err)
		}
		actor := cmd.ActorID
		if piece == nil || !piece.VisibleTo(&actor) {
			uc.logger.Warnw("music not assignable", "plan_id", p.ID(), "music_id", cmd.MusicID, "user_id", cmd.ActorID)
			return nil
		}

		highest, err := uc.assignmentRepo.MaxMusicSequence(txCtx, o.ID())
		if err != nil {
			return err
		}
		a, err := plan.NewAssignment(o, piece.ID(), highest+1)
		if err != nil {
			return err
		}
		if err := uc.assignmentRepo.Create(txCtx, a); err != nil {
			return err
		}

		result.Changed = true
		result.Assignment = &dto.AssignmentDTO{
			ID:            a.ID(),
			OccurrenceID:  a.OccurrenceID(),
			MusicID:       a.MusicID(),
			MusicTitle:    piece.Title(),
			MusicSequence: a.MusicSequence(),
			Flags:         []string{},
			Scopes:        []dto.ScopeDTO{},
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to assign music", "plan_id", cmd.PlanID, "occurrence_id", cmd.OccurrenceID, "error", err)
		return nil, err
	}

	if result.Changed {
		uc.logger.Infow("music assigned",
			"plan_id", cmd.PlanID,
			"occurrence_id", cmd.OccurrenceID,
			"music_id", cmd.MusicID,
			"music_sequence", result.Assignment.MusicSequence,
		)
	}
	return result, nil
}
