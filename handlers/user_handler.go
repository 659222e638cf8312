package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/saokiritoni/HomePage-BE/dto"
	"github.com/saokiritoni/HomePage-BE/response"
	"github.com/saokiritoni/HomePage-BE/services"
)

type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// GetUsers godoc
// @Summary List members
// @Tags admin
// @Produce json
// @Success 200 {array} models.User
// @Router /admin/users [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.svc.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByID godoc
// @Summary Get one member
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} response.ErrorResponse "USER_NOT_FOUND"
// @Router /admin/users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	user, err := h.svc.FindUserByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Update a member
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param input body dto.UpdateUserInput true "Fields to update"
// @Success 200 {object} models.User
// @Failure 404 {object} response.ErrorResponse "USER_NOT_FOUND"
// @Router /admin/users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	var input dto.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	user, err := h.svc.UpdateUser(id, input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) userID(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid user id"})
		return 0, false
	}
	return uint(id64), true
}

func (h *UserHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Code: "USER_NOT_FOUND", Error: err.Error()})
	case errors.Is(err, services.ErrMissingOldPassword):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrIncorrectPassword):
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
