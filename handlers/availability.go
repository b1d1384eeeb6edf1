package handlers

import (
	"net/http"

	"agendapro/models"
	"agendapro/services/availability"
	"agendapro/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes the weekly schedule CRUD for the dashboard.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

func (h *AvailabilityHandler) List(c *gin.Context) {
	blocks, err := h.Service.ListBlocks(c.Request.Context(), professionalID(c))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, blocks)
}

func (h *AvailabilityHandler) Create(c *gin.Context) {
	var in models.AvailabilityCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	block, err := h.Service.CreateBlock(c.Request.Context(), professionalID(c), in)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, block)
}

func (h *AvailabilityHandler) Delete(c *gin.Context) {
	if err := h.Service.DeleteBlock(c.Request.Context(), professionalID(c), c.Param("id")); err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "availability block removed"})
}

// BulkReplace swaps the professional's entire weekly schedule in one call.
func (h *AvailabilityHandler) BulkReplace(c *gin.Context) {
	var in models.BulkReplaceRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	blocks, err := h.Service.BulkReplace(c.Request.Context(), professionalID(c), in.Blocks)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, blocks)
}
