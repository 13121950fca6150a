package http

import (
	"github.com/szentjozsefhackathon/cantores/internal/interfaces/http/handlers"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// allHandlers holds all HTTP handler instances.
type allHandlers struct {
	catalog  *handlers.CatalogHandler
	plan     *handlers.PlanHandler
	planSlot *handlers.PlanSlotHandler
	health   *handlers.HealthHandler
}

func newHandlers(ucs *allUseCases, checks map[string]handlers.HealthChecker, log logger.Interface) *allHandlers {
	return &allHandlers{
		catalog: handlers.NewCatalogHandler(
			ucs.listSlots, ucs.createGlobalSlot, ucs.retireSlot, ucs.hardDeleteSlot,
			ucs.listTemplates, ucs.createTemplate, ucs.setTemplateActive, log,
		),
		plan: handlers.NewPlanHandler(
			ucs.createPlan, ucs.getPlanView, ucs.listPlans, ucs.updatePlan,
			ucs.deletePlan, ucs.clonePlan, ucs.findSuggestions, log,
		),
		planSlot: handlers.NewPlanSlotHandler(handlers.PlanSlotUseCases{
			Owner:            ucs.ensurePlanOwner,
			AttachSlot:       ucs.attachSlot,
			CreateCustomSlot: ucs.createCustomSlot,
			AttachTemplate:   ucs.attachTemplate,
			MoveOccurrence:   ucs.moveOccurrence,
			RemoveOccurrence: ucs.removeOccurrence,
			AssignMusic:      ucs.assignMusic,
			MoveAssignment:   ucs.moveAssignment,
			UnassignMusic:    ucs.unassignMusic,
			UpdateAssignment: ucs.updateAssignment,
			AddScope:         ucs.addScope,
			RemoveScope:      ucs.removeScope,
		}, log),
		health: handlers.NewHealthHandler(checks),
	}
}
