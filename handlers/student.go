package handlers

import (
	"net/http"

	"agendapro/models"
	"agendapro/services/booking"
	"agendapro/utils"

	"github.com/gin-gonic/gin"
)

// StudentHandler exposes the student roster for the dashboard.
type StudentHandler struct {
	Service booking.BookingService
}

func NewStudentHandler(svc booking.BookingService) *StudentHandler {
	return &StudentHandler{Service: svc}
}

func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.Service.ListStudents(c.Request.Context(), professionalID(c))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.Service.GetStudent(c.Request.Context(), professionalID(c), c.Param("id"))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

func (h *StudentHandler) Update(c *gin.Context) {
	var in models.StudentUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	student, err := h.Service.UpdateStudent(c.Request.Context(), professionalID(c), c.Param("id"), in)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.Service.DeleteStudent(c.Request.Context(), professionalID(c), c.Param("id")); err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "student removed"})
}
