package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saokiritoni/HomePage-BE/repositories"
	"github.com/saokiritoni/HomePage-BE/response"
	"github.com/saokiritoni/HomePage-BE/services"
)

type AuditHandler struct {
	svc *services.AuditService
}

func NewAuditHandler(svc *services.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// GetAuditLogs godoc
// @Summary Query the admin audit trail
// @Tags admin
// @Produce json
// @Param user_id query int false "Acting admin"
// @Param resource_type query string false "Resource type"
// @Param action query string false "Action"
// @Param start query string false "RFC3339 lower bound"
// @Param end query string false "RFC3339 upper bound"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {array} models.AuditLog
// @Router /admin/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	var params repositories.AuditQueryParams

	if value := c.Query("user_id"); value != "" {
		id64, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid user id"})
			return
		}
		id := uint(id64)
		params.UserID = &id
	}
	if value := c.Query("resource_type"); value != "" {
		params.ResourceType = &value
	}
	if value := c.Query("action"); value != "" {
		params.Action = &value
	}
	if value := c.Query("start"); value != "" {
		ts, err := time.Parse(time.RFC3339, value)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid start time"})
			return
		}
		params.StartTime = &ts
	}
	if value := c.Query("end"); value != "" {
		ts, err := time.Parse(time.RFC3339, value)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid end time"})
			return
		}
		params.EndTime = &ts
	}
	params.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	params.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	logs, err := h.svc.QueryAuditLogs(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}
