package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/saokiritoni/HomePage-BE/dto"
	"github.com/saokiritoni/HomePage-BE/middleware"
	"github.com/saokiritoni/HomePage-BE/response"
	"github.com/saokiritoni/HomePage-BE/services"
)

type FarmingLogHandler struct {
	svc *services.FarmingLogService
}

func NewFarmingLogHandler(svc *services.FarmingLogService) *FarmingLogHandler {
	return &FarmingLogHandler{svc: svc}
}

// ListFarmingLogs godoc
// @Summary Paginated activity-log feed
// @Tags farming-log
// @Produce json
// @Param page query int false "Page (1-based)"
// @Param size query int false "Page size"
// @Param userId query int false "Filter by author"
// @Success 200 {object} dto.PageResponse
// @Router /farming-logs [get]
func (h *FarmingLogHandler) ListFarmingLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	var userID *uint
	if value := c.Query("userId"); value != "" {
		id64, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid user id"})
			return
		}
		id := uint(id64)
		userID = &id
	}

	pageResp, err := h.svc.ListFarmingLogs(userID, page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, pageResp)
}

// CreateFarmingLog godoc
// @Summary Write an activity-log entry
// @Tags farming-log
// @Accept json
// @Produce json
// @Param input body dto.CreateFarmingLogRequest true "Entry"
// @Success 201 {object} models.FarmingLog
// @Router /farming-logs [post]
func (h *FarmingLogHandler) CreateFarmingLog(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Authorization required"})
		return
	}

	var req dto.CreateFarmingLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	log, err := h.svc.CreateFarmingLog(userID, req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Code: "USER_NOT_FOUND", Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, log)
}
