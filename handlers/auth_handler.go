package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saokiritoni/HomePage-BE/dto"
	"github.com/saokiritoni/HomePage-BE/response"
	"github.com/saokiritoni/HomePage-BE/services"
)

type AuthHandler struct {
	svc *services.UserService
}

func NewAuthHandler(svc *services.UserService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login godoc
// @Summary Member/admin login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body dto.LoginRequest true "Credential"
// @Success 200 {object} response.TokenResponse
// @Failure 401 {object} response.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	user, token, err := h.svc.Login(req.StudentNumber, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid student number or password"})
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:         token,
		UserID:        user.UserID,
		StudentNumber: user.StudentNumber,
		Name:          user.Name,
		Role:          user.Role,
	})
}
