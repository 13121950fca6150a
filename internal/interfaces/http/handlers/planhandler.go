package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	planusecases "github.com/szentjozsefhackathon/cantores/internal/application/plan/usecases"
	"github.com/szentjozsefhackathon/cantores/internal/shared/authorization"
	"github.com/szentjozsefhackathon/cantores/internal/shared/errors"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
	"github.com/szentjozsefhackathon/cantores/internal/shared/query"
	"github.com/szentjozsefhackathon/cantores/internal/shared/utils"
)

type PlanHandler struct {
	createPlanUC      createPlanUseCase
	getPlanViewUC     getPlanViewUseCase
	listPlansUC       listPlansUseCase
	updatePlanUC      updatePlanUseCase
	deletePlanUC      deletePlanUseCase
	clonePlanUC       clonePlanUseCase
	findSuggestionsUC findSuggestionsUseCase
	logger            logger.Interface
}

func NewPlanHandler(
	createPlanUC createPlanUseCase,
	getPlanViewUC getPlanViewUseCase,
	listPlansUC listPlansUseCase,
	updatePlanUC updatePlanUseCase,
	deletePlanUC deletePlanUseCase,
	clonePlanUC clonePlanUseCase,
	findSuggestionsUC findSuggestionsUseCase,
	logger logger.Interface,
) *PlanHandler {
	return &PlanHandler{
		createPlanUC:      createPlanUC,
		getPlanViewUC:     getPlanViewUC,
		listPlansUC:       listPlansUC,
		updatePlanUC:      updatePlanUC,
		deletePlanUC:      deletePlanUC,
		clonePlanUC:       clonePlanUC,
		findSuggestionsUC: findSuggestionsUC,
		logger:            logger,
	}
}

type CreatePlanRequest struct {
	IsPrivate      bool    `json:"is_private"`
	GenreID        *uint   `json:"genre_id" binding:"omitempty,gt=0"`
	PrivateNotes   *string `json:"private_notes" binding:"omitempty,max=20000"`
	CelebrationIDs []uint  `json:"celebration_ids" binding:"omitempty,dive,gt=0"`
}

type UpdatePlanRequest struct {
	IsPrivate    *bool   `json:"is_private"`
	PrivateNotes *string `json:"private_notes" binding:"omitempty,max=20000"`
	GenreID      *uint   `json:"genre_id" binding:"omitempty,gt=0"`
	ClearGenre   bool    `json:"clear_genre"`
}

func requireViewer(c *gin.Context) (*authorization.Viewer, bool) {
	viewer := authorization.ViewerFromContext(c)
	if viewer.IsGuest() {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return nil, false
	}
	return viewer, true
}

func parsePlanID(c *gin.Context) (uint, error) {
	return utils.ParseUintParam(c, "id", "plan")
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	viewer, ok := requireViewer(c)
	if !ok {
		return
	}

	var req CreatePlanRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createPlanUC.Execute(c.Request.Context(), planusecases.CreatePlanCommand{
		OwnerID:        viewer.UserID,
		IsPrivate:      req.IsPrivate,
		GenreID:        req.GenreID,
		PrivateNotes:   req.PrivateNotes,
		CelebrationIDs: req.CelebrationIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Plan created successfully")
}

func (h *PlanHandler) GetPlan(c *gin.Context) {
	planID, err := parsePlanID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getPlanViewUC.Execute(c.Request.Context(), planID, authorization.ViewerFromContext(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	celebrationID, err := utils.ParseOptionalUintQuery(c, "celebration_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	genreID, err := utils.ParseOptionalUintQuery(c, "genre_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	viewer := authorization.ViewerFromContext(c)
	ownerOnly := utils.ParseBoolQuery(c, "owner_only", false)
	if ownerOnly && viewer.IsGuest() {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	result, err := h.listPlansUC.Execute(c.Request.Context(), planusecases.ListPlansQuery{
		Viewer:        viewer,
		OwnerOnly:     ownerOnly,
		CelebrationID: celebrationID,
		GenreID:       genreID,
		Page:          pagination.Page,
		PageSize:      pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Plans, result.Total, query.PageFilter{Page: result.Page, PageSize: result.PageSize})
}

func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	viewer, ok := requireViewer(c)
	if !ok {
		return
	}
	planID, err := parsePlanID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePlanRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update plan", "plan_id", planID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updatePlanUC.Execute(c.Request.Context(), planusecases.UpdatePlanCommand{
		PlanID:       planID,
		Viewer:       viewer,
		IsPrivate:    req.IsPrivate,
		PrivateNotes: req.PrivateNotes,
		GenreID:      req.GenreID,
		ClearGenre:   req.ClearGenre,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan updated successfully", result)
}

func (h *PlanHandler) DeletePlan(c *gin.Context) {
	viewer, ok := requireViewer(c)
	if !ok {
		return
	}
	planID, err := parsePlanID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deletePlanUC.Execute(c.Request.Context(), planID, viewer); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *PlanHandler) ClonePlan(c *gin.Context) {
	planID, err := parsePlanID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// guests reach the use case so it can report the unauthenticated clone
	result, err := h.clonePlanUC.Execute(c.Request.Context(), planusecases.ClonePlanCommand{
		SourcePlanID: planID,
		Viewer:       authorization.ViewerFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Plan cloned successfully")
}

func (h *PlanHandler) GetSuggestions(c *gin.Context) {
	planID, err := parsePlanID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	rawLimit, err := utils.ParseOptionalUintQuery(c, "limit")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	limit := 0
	if rawLimit != nil {
		limit = int(*rawLimit)
	}

	result, err := h.findSuggestionsUC.Execute(c.Request.Context(), planusecases.FindSuggestionsQuery{
		PlanID: planID,
		Viewer: authorization.ViewerFromContext(c),
		Limit:  limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
