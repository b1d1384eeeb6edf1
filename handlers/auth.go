package handlers

import (
	"net/http"

	"agendapro/models"
	"agendapro/services/professional"
	"agendapro/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes signup/signin and profile management.
type AuthHandler struct {
	Service professional.ProfessionalService
}

func NewAuthHandler(svc professional.ProfessionalService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var in models.SignupRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	prof, token, err := h.Service.Signup(c.Request.Context(), in)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"professional": prof, "token": token})
}

func (h *AuthHandler) Signin(c *gin.Context) {
	var in models.SigninRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	prof, token, err := h.Service.Signin(c.Request.Context(), in)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"professional": prof, "token": token})
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	prof, err := h.Service.GetProfile(c.Request.Context(), professionalID(c))
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, prof)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var in models.ProfileUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	prof, err := h.Service.UpdateProfile(c.Request.Context(), professionalID(c), in)
	if err != nil {
		utils.JSONAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, prof)
}
