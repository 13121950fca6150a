package http

import (
	catalogUsecases "github.com/szentjozsefhackathon/cantores/internal/application/catalog/usecases"
	planUsecases "github.com/szentjozsefhackathon/cantores/internal/application/plan/usecases"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
	"github.com/szentjozsefhackathon/cantores/internal/shared/services/markdown"
)

// allUseCases holds every use case served over HTTP.
type allUseCases struct {
	// Catalog
	listSlots         *catalogUsecases.ListSlotsUseCase
	createGlobalSlot  *catalogUsecases.CreateGlobalSlotUseCase
	createCustomSlot  *catalogUsecases.CreateCustomSlotUseCase
	retireSlot        *catalogUsecases.RetireSlotUseCase
	hardDeleteSlot    *catalogUsecases.HardDeleteSlotUseCase
	listTemplates     *catalogUsecases.ListActiveTemplatesUseCase
	createTemplate    *catalogUsecases.CreateTemplateUseCase
	setTemplateActive *catalogUsecases.SetTemplateActiveUseCase

	// Plans
	createPlan       *planUsecases.CreatePlanUseCase
	getPlanView      *planUsecases.GetPlanViewUseCase
	listPlans        *planUsecases.ListPlansUseCase
	ensurePlanOwner  *planUsecases.EnsurePlanOwnerUseCase
	updatePlan       *planUsecases.UpdatePlanUseCase
	deletePlan       *planUsecases.DeletePlanUseCase
	clonePlan        *planUsecases.ClonePlanUseCase
	findSuggestions  *planUsecases.FindSuggestionsUseCase
	attachSlot       *planUsecases.AttachSlotUseCase
	attachTemplate   *planUsecases.AttachTemplateUseCase
	moveOccurrence   *planUsecases.MoveOccurrenceUseCase
	removeOccurrence *planUsecases.RemoveOccurrenceUseCase
	assignMusic      *planUsecases.AssignMusicUseCase
	moveAssignment   *planUsecases.MoveAssignmentUseCase
	unassignMusic    *planUsecases.UnassignMusicUseCase
	updateAssignment *planUsecases.UpdateAssignmentUseCase
	addScope         *planUsecases.AddScopeUseCase
	removeScope      *planUsecases.RemoveScopeUseCase
}

// newUseCases wires use cases against the repositories. cache may be nil,
// in which case template listings always hit the database.
func newUseCases(r *repositories, cache catalogUsecases.TemplateCache, log logger.Interface) *allUseCases {
	owner := planUsecases.NewEnsurePlanOwnerUseCase(r.plan, log)

	return &allUseCases{
		listSlots:         catalogUsecases.NewListSlotsUseCase(r.slot, log),
		createGlobalSlot:  catalogUsecases.NewCreateGlobalSlotUseCase(r.slot, log),
		createCustomSlot:  catalogUsecases.NewCreateCustomSlotUseCase(r.plan, r.occurrence, r.slot, r.txMgr, log),
		retireSlot:        catalogUsecases.NewRetireSlotUseCase(r.slot, log),
		hardDeleteSlot:    catalogUsecases.NewHardDeleteSlotUseCase(r.slot, log),
		listTemplates:     catalogUsecases.NewListActiveTemplatesUseCase(r.template, cache, log),
		createTemplate:    catalogUsecases.NewCreateTemplateUseCase(r.template, r.slot, cache, log),
		setTemplateActive: catalogUsecases.NewSetTemplateActiveUseCase(r.template, cache, log),

		createPlan: planUsecases.NewCreatePlanUseCase(r.plan, r.celebration, log),
		getPlanView: planUsecases.NewGetPlanViewUseCase(
			r.plan, r.occurrence, r.assignment, r.flag, r.slot, r.music, r.celebration,
			markdown.NewRenderer(), log,
		),
		listPlans:       planUsecases.NewListPlansUseCase(r.plan, log),
		ensurePlanOwner: owner,
		updatePlan:      planUsecases.NewUpdatePlanUseCase(r.plan, owner, log),
		deletePlan:      planUsecases.NewDeletePlanUseCase(r.plan, r.slot, owner, r.txMgr, log),
		clonePlan: planUsecases.NewClonePlanUseCase(
			r.plan, r.occurrence, r.assignment, r.slot, r.music, r.celebration, r.txMgr, log,
		),
		findSuggestions: planUsecases.NewFindSuggestionsUseCase(
			r.plan, r.suggestion, r.celebration, r.slot, r.music, log,
		),
		attachSlot:       planUsecases.NewAttachSlotUseCase(r.plan, r.occurrence, r.slot, r.txMgr, log),
		attachTemplate:   planUsecases.NewAttachTemplateUseCase(r.plan, r.occurrence, r.template, r.txMgr, log),
		moveOccurrence:   planUsecases.NewMoveOccurrenceUseCase(r.plan, r.occurrence, r.txMgr, log),
		removeOccurrence: planUsecases.NewRemoveOccurrenceUseCase(r.plan, r.occurrence, r.txMgr, log),
		assignMusic:      planUsecases.NewAssignMusicUseCase(r.plan, r.occurrence, r.assignment, r.music, r.txMgr, log),
		moveAssignment:   planUsecases.NewMoveAssignmentUseCase(r.plan, r.assignment, r.txMgr, log),
		unassignMusic:    planUsecases.NewUnassignMusicUseCase(r.plan, r.assignment, r.txMgr, log),
		updateAssignment: planUsecases.NewUpdateAssignmentUseCase(r.assignment, r.flag, r.txMgr, log),
		addScope:         planUsecases.NewAddScopeUseCase(r.assignment, log),
		removeScope:      planUsecases.NewRemoveScopeUseCase(r.assignment, log),
	}
}
