package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	catalogusecases "github.com/szentjozsefhackathon/cantores/internal/application/catalog/usecases"
	"github.com/szentjozsefhackathon/cantores/internal/domain/template"
	"github.com/szentjozsefhackathon/cantores/internal/shared/authorization"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
	"github.com/szentjozsefhackathon/cantores/internal/shared/utils"
)

// CatalogHandler serves global slot and template management.
type CatalogHandler struct {
	listSlotsUC         listSlotsUseCase
	createGlobalSlotUC  createGlobalSlotUseCase
	retireSlotUC        retireSlotUseCase
	hardDeleteSlotUC    hardDeleteSlotUseCase
	listTemplatesUC     listTemplatesUseCase
	createTemplateUC    createTemplateUseCase
	setTemplateActiveUC setTemplateActiveUseCase
	logger              logger.Interface
}

func NewCatalogHandler(
	listSlotsUC listSlotsUseCase,
	createGlobalSlotUC createGlobalSlotUseCase,
	retireSlotUC retireSlotUseCase,
	hardDeleteSlotUC hardDeleteSlotUseCase,
	listTemplatesUC listTemplatesUseCase,
	createTemplateUC createTemplateUseCase,
	setTemplateActiveUC setTemplateActiveUseCase,
	logger logger.Interface,
) *CatalogHandler {
	return &CatalogHandler{
		listSlotsUC:         listSlotsUC,
		createGlobalSlotUC:  createGlobalSlotUC,
		retireSlotUC:        retireSlotUC,
		hardDeleteSlotUC:    hardDeleteSlotUC,
		listTemplatesUC:     listTemplatesUC,
		createTemplateUC:    createTemplateUC,
		setTemplateActiveUC: setTemplateActiveUC,
		logger:              logger,
	}
}

type CreateSlotRequest struct {
	Name                string `json:"name" binding:"required,max=200"`
	Description         string `json:"description" binding:"max=2000"`
	IsIncludedByDefault bool   `json:"is_included_by_default"`
}

type TemplateSlotRequest struct {
	SlotID              uint `json:"slot_id" binding:"required,gt=0"`
	Sequence            int  `json:"sequence" binding:"required,gte=1"`
	IsIncludedByDefault bool `json:"is_included_by_default"`
}

type CreateTemplateRequest struct {
	Name        string                `json:"name" binding:"required,max=200"`
	Description string                `json:"description" binding:"max=2000"`
	GenreID     *uint                 `json:"genre_id" binding:"omitempty,gt=0"`
	Slots       []TemplateSlotRequest `json:"slots" binding:"required,min=1,dive"`
}

type UpdateTemplateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

func (h *CatalogHandler) ListSlots(c *gin.Context) {
	genreID, err := utils.ParseOptionalUintQuery(c, "genre_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listSlotsUC.Execute(c.Request.Context(), catalogusecases.ListSlotsQuery{
		Viewer:  authorization.ViewerFromContext(c),
		GenreID: genreID,
		Search:  strings.TrimSpace(c.Query("q")),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CatalogHandler) CreateSlot(c *gin.Context) {
	var req CreateSlotRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create slot", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createGlobalSlotUC.Execute(c.Request.Context(), catalogusecases.CreateGlobalSlotCommand{
		Name:                req.Name,
		Description:         req.Description,
		IsIncludedByDefault: req.IsIncludedByDefault,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Slot created successfully")
}

func (h *CatalogHandler) RetireSlot(c *gin.Context) {
	slotID, err := utils.ParseUintParam(c, "id", "slot")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.retireSlotUC.Execute(c.Request.Context(), slotID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteSlot hard-deletes a slot definition. Referenced slots yield 409.
func (h *CatalogHandler) DeleteSlot(c *gin.Context) {
	slotID, err := utils.ParseUintParam(c, "id", "slot")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.hardDeleteSlotUC.Execute(c.Request.Context(), slotID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *CatalogHandler) ListTemplates(c *gin.Context) {
	genreID, err := utils.ParseOptionalUintQuery(c, "genre_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTemplatesUC.Execute(c.Request.Context(), genreID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CatalogHandler) CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create template", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	slots := make([]template.Slot, 0, len(req.Slots))
	for _, s := range req.Slots {
		slots = append(slots, template.Slot{
			SlotID:              s.SlotID,
			Sequence:            s.Sequence,
			IsIncludedByDefault: s.IsIncludedByDefault,
		})
	}

	result, err := h.createTemplateUC.Execute(c.Request.Context(), catalogusecases.CreateTemplateCommand{
		Name:        req.Name,
		Description: req.Description,
		GenreID:     req.GenreID,
		Slots:       slots,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Template created successfully")
}

func (h *CatalogHandler) UpdateTemplateStatus(c *gin.Context) {
	templateID, err := utils.ParseUintParam(c, "id", "template")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTemplateStatusRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for template status", "template_id", templateID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.setTemplateActiveUC.Execute(c.Request.Context(), catalogusecases.SetTemplateActiveCommand{
		TemplateID: templateID,
		Active:     req.Status == "active",
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
