package handlers

import (
	"net/http"

	"agendapro/models"
	"agendapro/services/booking"
	"agendapro/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler exposes appointment management for the dashboard.
type AppointmentHandler struct {
	Service booking.BookingService
}

func NewAppointmentHandler(svc booking.BookingService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

func (h *AppointmentHandler) List(c *gin.Context) {
	appts, err := h.Service.ListAppointments(c.Request.Context(), professionalID(c), c.Query("status"))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	appt, err := h.Service.GetAppointment(c.Request.Context(), professionalID(c), c.Param("id"))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// UpdateStatus confirms or cancels an appointment.
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var in models.AppointmentStatusUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Service.UpdateAppointmentStatus(c.Request.Context(), professionalID(c), c.Param("id"), in.Status)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}
