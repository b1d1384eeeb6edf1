package handlers

import (
	"net/http"

	"agendapro/models"
	"agendapro/services/catalog"
	"agendapro/utils"

	"github.com/gin-gonic/gin"
)

// ServiceHandler exposes the service catalog CRUD for the dashboard.
type ServiceHandler struct {
	Service catalog.CatalogService
}

func NewServiceHandler(svc catalog.CatalogService) *ServiceHandler {
	return &ServiceHandler{Service: svc}
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.Service.List(c.Request.Context(), professionalID(c))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var in models.ServiceCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	svc, err := h.Service.Create(c.Request.Context(), professionalID(c), in)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	svc, err := h.Service.Get(c.Request.Context(), professionalID(c), c.Param("id"))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var in models.ServiceUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	svc, err := h.Service.Update(c.Request.Context(), professionalID(c), c.Param("id"), in)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), professionalID(c), c.Param("id")); err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service removed"})
}
