package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketo/internal/models"
	"ticketo/internal/services"
	"ticketo/internal/utils"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid request payload", err.Error()))
		return
	}

	user, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			c.JSON(http.StatusBadRequest, utils.ErrorResponse("Missing email or password", ""))
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, utils.ErrorResponse("Invalid email or password", ""))
		default:
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Login failed", err.Error()))
		}
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Login successful", user))
}
