package usecases

import (
	"context"
	"fmt"

	"github.com/szentjozsefhackathon/cantores/internal/application/plan/dto"
	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/shared/errors"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// AddScopeCommand limits an assignment to e.g. verse 2.
type AddScopeCommand struct {
	PlanID       uint
	AssignmentID uint
	ScopeType    string
	ScopeNumber  int
}

// AddScopeUseCase stores a new scope for an assignment.
type AddScopeUseCase struct {
	assignmentRepo plan.AssignmentRepository
	logger         logger.Interface
}

// NewAddScopeUseCase creates a new AddScopeUseCase.
func NewAddScopeUseCase(assignmentRepo plan.AssignmentRepository, logger logger.Interface) *AddScopeUseCase {
	return &AddScopeUseCase{assignmentRepo: assignmentRepo, logger: logger}
}

// Execute validates and stores the scope.
func (uc *AddScopeUseCase) Execute(ctx context.Context, cmd AddScopeCommand) (*dto.ScopeDTO, error) {
	scope, err := plan.NewScope(cmd.ScopeType, cmd.ScopeNumber)
	if err != nil {
		return nil, errors.NewValidationError(err.Error()).WithCause(err)
	}

	a, err := loadPlanAssignment(ctx, uc.assignmentRepo, cmd.PlanID, cmd.AssignmentID)
	if err != nil {
		return nil, err
	}

	stored, err := uc.assignmentRepo.AddScope(ctx, a.ID(), scope)
	if err != nil {
		uc.logger.Errorw("failed to add scope", "assignment_id", a.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("scope added", "assignment_id", a.ID(), "scope_id", stored.ID, "scope_type", stored.Type)
	result := dto.ToScopeDTO(stored)
	return &result, nil
}

// RemoveScopeCommand deletes one scope.
type RemoveScopeCommand struct {
	PlanID  uint
	ScopeID uint
}

// RemoveScopeUseCase deletes a scope of one of the plan's assignments.
type RemoveScopeUseCase struct {
	assignmentRepo plan.AssignmentRepository
	logger         logger.Interface
}

// NewRemoveScopeUseCase creates a new RemoveScopeUseCase.
func NewRemoveScopeUseCase(assignmentRepo plan.AssignmentRepository, logger logger.Interface) *RemoveScopeUseCase {
	return &RemoveScopeUseCase{assignmentRepo: assignmentRepo, logger: logger}
}

// Execute reports whether a scope was removed.
func (uc *RemoveScopeUseCase) Execute(ctx context.Context, cmd RemoveScopeCommand) (*dto.SequenceResult, error) {
	assignmentID, err := uc.assignmentRepo.FindScopeOwner(ctx, cmd.ScopeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find scope: %w", err)
	}
	if assignmentID == 0 {
		return &dto.SequenceResult{}, nil
	}

	a, err := uc.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	if a == nil || a.PlanID() != cmd.PlanID {
		return &dto.SequenceResult{}, nil
	}

	removed, err := uc.assignmentRepo.RemoveScope(ctx, a.ID(), cmd.ScopeID)
	if err != nil {
		uc.logger.Errorw("failed to remove scope", "scope_id", cmd.ScopeID, "error", err)
		return nil, err
	}
	if removed {
		uc.logger.Infow("scope removed", "assignment_id", a.ID(), "scope_id", cmd.ScopeID)
	}
	return &dto.SequenceResult{Changed: removed}, nil
}
