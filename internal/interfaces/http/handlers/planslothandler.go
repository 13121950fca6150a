package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogusecases "github.com/szentjozsefhackathon/cantores/internal/application/catalog/usecases"
	planusecases "github.com/szentjozsefhackathon/cantores/internal/application/plan/usecases"
	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/shared/authorization"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
	"github.com/szentjozsefhackathon/cantores/internal/shared/utils"
)

// PlanSlotHandler serves the slot, music and assignment routes of a plan.
// Every route checks plan ownership before calling the sequencers.
type PlanSlotHandler struct {
	owner              planOwnerGuard
	attachSlotUC       attachSlotUseCase
	createCustomSlotUC createCustomSlotUseCase
	attachTemplateUC   attachTemplateUseCase
	moveOccurrenceUC   moveOccurrenceUseCase
	removeOccurrenceUC removeOccurrenceUseCase
	assignMusicUC      assignMusicUseCase
	moveAssignmentUC   moveAssignmentUseCase
	unassignMusicUC    unassignMusicUseCase
	updateAssignmentUC updateAssignmentUseCase
	addScopeUC         addScopeUseCase
	removeScopeUC      removeScopeUseCase
	logger             logger.Interface
}

// PlanSlotUseCases groups the use cases behind PlanSlotHandler.
type PlanSlotUseCases struct {
	Owner            planOwnerGuard
	AttachSlot       attachSlotUseCase
	CreateCustomSlot createCustomSlotUseCase
	AttachTemplate   attachTemplateUseCase
	MoveOccurrence   moveOccurrenceUseCase
	RemoveOccurrence removeOccurrenceUseCase
	AssignMusic      assignMusicUseCase
	MoveAssignment   moveAssignmentUseCase
	UnassignMusic    unassignMusicUseCase
	UpdateAssignment updateAssignmentUseCase
	AddScope         addScopeUseCase
	RemoveScope      removeScopeUseCase
}

func NewPlanSlotHandler(uc PlanSlotUseCases, logger logger.Interface) *PlanSlotHandler {
	return &PlanSlotHandler{
		owner:              uc.Owner,
		attachSlotUC:       uc.AttachSlot,
		createCustomSlotUC: uc.CreateCustomSlot,
		attachTemplateUC:   uc.AttachTemplate,
		moveOccurrenceUC:   uc.MoveOccurrence,
		removeOccurrenceUC: uc.RemoveOccurrence,
		assignMusicUC:      uc.AssignMusic,
		moveAssignmentUC:   uc.MoveAssignment,
		unassignMusicUC:    uc.UnassignMusic,
		updateAssignmentUC: uc.UpdateAssignment,
		addScopeUC:         uc.AddScope,
		removeScopeUC:      uc.RemoveScope,
		logger:             logger,
	}
}

type AttachSlotRequest struct {
	SlotID uint `json:"slot_id" binding:"required,gt=0"`
}

type CreateCustomSlotRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=2000"`
}

type AssignMusicRequest struct {
	MusicID uint `json:"music_id" binding:"required,gt=0"`
}

type UpdateAssignmentRequest struct {
	Notes   *string `json:"notes" binding:"omitempty,max=5000"`
	FlagIDs *[]uint `json:"flag_ids"`
}

type AddScopeRequest struct {
	ScopeType   string `json:"scope_type" binding:"required,oneof=verse part stanza movement"`
	ScopeNumber int    `json:"scope_number" binding:"required,gte=1"`
}

// ownedPlan resolves the :id plan and checks the caller owns it.
// On failure the response is already written.
func (h *PlanSlotHandler) ownedPlan(c *gin.Context) (uint, *authorization.Viewer, bool) {
	viewer, ok := requireViewer(c)
	if !ok {
		return 0, nil, false
	}
	planID, err := parsePlanID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, nil, false
	}
	if _, err := h.owner.Execute(c.Request.Context(), planID, viewer); err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, nil, false
	}
	return planID, viewer, true
}

func (h *PlanSlotHandler) AttachSlot(c *gin.Context) {
	planID, _, ok := h.ownedPlan(c)
	if !ok {
		return
	}

	var req AttachSlotRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for attach slot", "plan_id", planID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.attachSlotUC.Execute(c.Request.Context(), planusecases.AttachSlotCommand{
		PlanID: planID,
		SlotID: req.SlotID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *PlanSlotHandler) CreateCustomSlot(c *gin.Context) {
	planID, _, ok := h.ownedPlan(c)
	if !ok {
		return
	}

	var req CreateCustomSlotRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create custom slot", "plan_id", planID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createCustomSlotUC.Execute(c.Request.Context(), catalogusecases.CreateCustomSlotCommand{
		PlanID:      planID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Custom slot created successfully")
}

func (h *PlanSlotHandler) AttachTemplate(c *gin.Context) {
	planID, _, ok := h.ownedPlan(c)
	if !ok {
		return
	}
	templateID, err := utils.ParseUintParam(c, "template_id", "template")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.attachTemplateUC.Execute(c.Request.Context(), planusecases.AttachTemplateCommand{
		PlanID:      planID,
		TemplateID:  templateID,
		DefaultOnly: utils.ParseBoolQuery(c, "default_only", false),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MoveOccurrence returns a handler swapping the occurrence with its neighbour in dir.
func (h *PlanSlotHandler) MoveOccurrence(dir plan.Direction) gin.HandlerFunc {
	return func(c *gin.Context) {
		planID, _, ok := h.ownedPlan(c)
		if !ok {
			return
		}
		occurrenceID, err := utils.ParseUintParam(c, "occurrence_id", "slot occurrence")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		result, err := h.moveOccurrenceUC.Execute(c.Request.Context(), planusecases.MoveOccurrenceCommand{
			PlanID:       planID,
			OccurrenceID: occurrenceID,
			Direction:    dir,
		})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "", result)
	}
}

func (h *PlanSlotHandler) RemoveOccurrence(c *gin.Context) {
	planID, _, ok := h.ownedPlan(c)
	if !ok {
		return
	}
	occurrenceID, err := utils.ParseUintParam(c, "occurrence_id", "slot occurrence")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.removeOccurrenceUC.Execute(c.Request.Context(), planusecases.RemoveOccurrenceCommand{
		PlanID:       planID,
		OccurrenceID: occurrenceID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *PlanSlotHandler) AssignMusic(c *gin.Context) {
	planID, viewer, ok := h.ownedPlan(c)
	if !ok {
		return
	}
	occurrenceID, err := utils.ParseUintParam(c, "occurrence_id", "slot occurrence")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignMusicRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for assign music", "plan_id", planID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assignMusicUC.Execute(c.Request.Context(), planusecases.AssignMusicCommand{
		PlanID:       planID,
		OccurrenceID: occurrenceID,
		MusicID:      req.MusicID,
		ActorID:      viewer.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MoveAssignment returns a handler swapping the assignment with its neighbour in dir.
func (h *PlanSlotHandler) MoveAssignment(dir plan.Direction) gin.HandlerFunc {
	return func(c *gin.Context) {
		planID, _, ok := h.ownedPlan(c)
		if !ok {
			return
		}
		assignmentID, err := utils.ParseUintParam(c, "assignment_id", "assignment")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		result, err := h.moveAssignmentUC.Execute(c.Request.Context(), planusecases.MoveAssignmentCommand{
			PlanID:       planID,
			AssignmentID: assignmentID,
			Direction:    dir,
		})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "", result)
	}
}

func (h *PlanSlotHandler) UnassignMusic(c *gin.Context) {
	planID, _, ok := h.ownedPlan(c)
	if !ok {
		return
	}
	assignmentID, err := utils.ParseUintParam(c, "assignment_id", "assignment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.unassignMusicUC.Execute(c.Request.Context(), planusecases.UnassignMusicCommand{
		PlanID:       planID,
		AssignmentID: assignmentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *PlanSlotHandler) UpdateAssignment(c *gin.Context) {
	planID, _, ok := h.ownedPlan(c)
	if !ok {
		return
	}
	assignmentID, err := utils.ParseUintParam(c, "assignment_id", "assignment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateAssignmentRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update assignment", "plan_id", planID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.updateAssignmentUC.Execute(c.Request.Context(), planusecases.UpdateAssignmentCommand{
		PlanID:       planID,
		AssignmentID: assignmentID,
		Notes:        req.Notes,
		FlagIDs:      req.FlagIDs,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Assignment updated successfully", nil)
}

func (h *PlanSlotHandler) AddScope(c *gin.Context) {
	planID, _, ok := h.ownedPlan(c)
	if !ok {
		return
	}
	assignmentID, err := utils.ParseUintParam(c, "assignment_id", "assignment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddScopeRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for add scope", "plan_id", planID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addScopeUC.Execute(c.Request.Context(), planusecases.AddScopeCommand{
		PlanID:       planID,
		AssignmentID: assignmentID,
		ScopeType:    req.ScopeType,
		ScopeNumber:  req.ScopeNumber,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Scope added successfully")
}

func (h *PlanSlotHandler) RemoveScope(c *gin.Context) {
	planID, _, ok := h.ownedPlan(c)
	if !ok {
		return
	}
	scopeID, err := utils.ParseUintParam(c, "scope_id", "scope")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.removeScopeUC.Execute(c.Request.Context(), planusecases.RemoveScopeCommand{
		PlanID:  planID,
		ScopeID: scopeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
