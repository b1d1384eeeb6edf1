package handlers

import (
	"net/http"
	"time"

	"agendapro/models"
	"agendapro/services/availability"
	"agendapro/services/booking"
	"agendapro/services/catalog"
	"agendapro/services/professional"
	"agendapro/utils"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the unauthenticated booking page: profile, services,
// the slot grid, and the booking submission itself.
type PublicHandler struct {
	Professionals professional.ProfessionalService
	Catalog       catalog.CatalogService
	Availability  availability.AvailabilityService
	Booking       booking.BookingService
}

func NewPublicHandler(
	profs professional.ProfessionalService,
	cat catalog.CatalogService,
	avail availability.AvailabilityService,
	book booking.BookingService,
) *PublicHandler {
	return &PublicHandler{
		Professionals: profs,
		Catalog:       cat,
		Availability:  avail,
		Booking:       book,
	}
}

// GetProfile resolves a booking-page slug.
func (h *PublicHandler) GetProfile(c *gin.Context) {
	profile, err := h.Professionals.GetPublicProfile(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ListServices returns the professional's active services.
func (h *PublicHandler) ListServices(c *gin.Context) {
	services, err := h.Catalog.ListPublic(c.Request.Context(), c.Param("professionalId"))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetSlots computes the slot grid for one date:
// GET /api/public/slots/:professionalId?date=2025-06-02&service_id=...
func (h *PublicHandler) GetSlots(c *gin.Context) {
	dateStr := c.Query("date")
	serviceID := c.Query("service_id")
	if dateStr == "" || serviceID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "date and service_id query parameters are required")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "date must be formatted as YYYY-MM-DD")
		return
	}

	result, err := h.Availability.ComputeSlots(c.Request.Context(), c.Param("professionalId"), date, serviceID)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateAppointment books a slot for an unauthenticated client.
func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var in models.AppointmentCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Booking.CreatePublicAppointment(c.Request.Context(), in)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}
