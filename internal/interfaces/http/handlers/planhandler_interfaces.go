package handlers

import (
	"context"

	plandto "github.com/szentjozsefhackathon/cantores/internal/application/plan/dto"
	planusecases "github.com/szentjozsefhackathon/cantores/internal/application/plan/usecases"
	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/shared/authorization"
)

// Use case interfaces for PlanHandler

type createPlanUseCase interface {
	Execute(ctx context.Context, cmd planusecases.CreatePlanCommand) (*plandto.PlanDTO, error)
}

type getPlanViewUseCase interface {
	Execute(ctx context.Context, planID uint, viewer *authorization.Viewer) (*plandto.PlanViewDTO, error)
}

type listPlansUseCase interface {
	Execute(ctx context.Context, q planusecases.ListPlansQuery) (*planusecases.ListPlansResult, error)
}

type updatePlanUseCase interface {
	Execute(ctx context.Context, cmd planusecases.UpdatePlanCommand) (*plandto.PlanDTO, error)
}

type deletePlanUseCase interface {
	Execute(ctx context.Context, planID uint, viewer *authorization.Viewer) error
}

type clonePlanUseCase interface {
	Execute(ctx context.Context, cmd planusecases.ClonePlanCommand) (*plandto.CloneResult, error)
}

type findSuggestionsUseCase interface {
	Execute(ctx context.Context, q planusecases.FindSuggestionsQuery) ([]*plandto.SlotSuggestionsDTO, error)
}

// Use case interfaces for PlanSlotHandler

type planOwnerGuard interface {
	Execute(ctx context.Context, planID uint, viewer *authorization.Viewer) (*plan.Plan, error)
}

type attachSlotUseCase interface {
	Execute(ctx context.Context, cmd planusecases.AttachSlotCommand) (*plandto.AttachResult, error)
}

type attachTemplateUseCase interface {
	Execute(ctx context.Context, cmd planusecases.AttachTemplateCommand) (*plandto.TemplateExpansionResult, error)
}

type moveOccurrenceUseCase interface {
	Execute(ctx context.Context, cmd planusecases.MoveOccurrenceCommand) (*plandto.SequenceResult, error)
}

type removeOccurrenceUseCase interface {
	Execute(ctx context.Context, cmd planusecases.RemoveOccurrenceCommand) (*plandto.SequenceResult, error)
}

type assignMusicUseCase interface {
	Execute(ctx context.Context, cmd planusecases.AssignMusicCommand) (*plandto.AssignResult, error)
}

type moveAssignmentUseCase interface {
	Execute(ctx context.Context, cmd planusecases.MoveAssignmentCommand) (*plandto.SequenceResult, error)
}

type unassignMusicUseCase interface {
	Execute(ctx context.Context, cmd planusecases.UnassignMusicCommand) (*plandto.SequenceResult, error)
}

type updateAssignmentUseCase interface {
	Execute(ctx context.Context, cmd planusecases.UpdateAssignmentCommand) error
}

type addScopeUseCase interface {
	Execute(ctx context.Context, cmd planusecases.AddScopeCommand) (*plandto.ScopeDTO, error)
}

type removeScopeUseCase interface {
	Execute(ctx context.Context, cmd planusecases.RemoveScopeCommand) (*plandto.SequenceResult, error)
}
