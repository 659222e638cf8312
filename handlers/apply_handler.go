package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/saokiritoni/HomePage-BE/dto"
	"github.com/saokiritoni/HomePage-BE/models"
	"github.com/saokiritoni/HomePage-BE/response"
	"github.com/saokiritoni/HomePage-BE/services"
)

type ApplyHandler struct {
	svc *services.ApplyService
}

func NewApplyHandler(svc *services.ApplyService) *ApplyHandler {
	return &ApplyHandler{svc: svc}
}

// GetQuestions godoc
// @Summary List the application questionnaire
// @Tags apply
// @Produce json
// @Success 200 {array} dto.QuestionDTO
// @Router /apply/questions [get]
func (h *ApplyHandler) GetQuestions(c *gin.Context) {
	questions, err := h.svc.GetQuestions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// CreateApply godoc
// @Summary Create a draft application
// @Tags apply
// @Accept json
// @Produce json
// @Param input body dto.CreateApplyRequest true "Credential"
// @Success 201 {object} dto.CreateApplyResponse
// @Failure 409 {object} response.ErrorResponse "APPLY_ALREADY_EXIST"
// @Router /apply [post]
func (h *ApplyHandler) CreateApply(c *gin.Context) {
	var req dto.CreateApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	resp, err := h.svc.CreateApply(req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// SaveApply godoc
// @Summary Save or submit an application
// @Tags apply
// @Accept json
// @Produce json
// @Param submit query bool false "Finalize the application"
// @Param input body dto.SaveApplyRequest true "Application content"
// @Success 200 {object} dto.SaveApplyResponse
// @Failure 404 {object} response.ErrorResponse "APPLY_NOT_FOUND / QUESTION_NOT_FOUND / CHOICE_NOT_FOUND"
// @Failure 409 {object} response.ErrorResponse "APPLY_ALREADY_SUBMITTED"
// @Router /apply/save [post]
func (h *ApplyHandler) SaveApply(c *gin.Context) {
	var req dto.SaveApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	submit, _ := strconv.ParseBool(c.DefaultQuery("submit", "false"))

	resp, err := h.svc.SaveApply(req, submit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LoadApply godoc
// @Summary Load an application by credential
// @Tags apply
// @Accept json
// @Produce json
// @Param input body dto.LoadApplyRequest true "Credential"
// @Success 200 {object} dto.LoadApplyResponse
// @Failure 401 {object} response.ErrorResponse "APPLY_INVALID_PASSWORD"
// @Router /apply/load [post]
func (h *ApplyHandler) LoadApply(c *gin.Context) {
	var req dto.LoadApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	resp, err := h.svc.LoadApply(req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListSubmitted godoc
// @Summary List submitted applications
// @Tags admin
// @Produce json
// @Param track query string false "Track filter"
// @Success 200 {array} dto.ApplyListItem
// @Router /admin/applies [get]
func (h *ApplyHandler) ListSubmitted(c *gin.Context) {
	var track *models.Track
	if value := c.Query("track"); value != "" {
		t := models.Track(value)
		track = &t
	}

	items, err := h.svc.ListSubmitted(track)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetSubmitted godoc
// @Summary Get one application in full
// @Tags admin
// @Produce json
// @Param applyId path int true "Apply ID"
// @Success 200 {object} dto.SubmittedApplyResponse
// @Failure 404 {object} response.ErrorResponse "APPLY_NOT_FOUND"
// @Router /admin/applies/{applyId} [get]
func (h *ApplyHandler) GetSubmitted(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("applyId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid apply id"})
		return
	}

	resp, err := h.svc.GetSubmitted(uint(id64))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// respondError maps service errors to HTTP status + stable wire code.
// Business errors pass through unchanged; nothing is downgraded.
func (h *ApplyHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrApplyNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Code: "APPLY_NOT_FOUND", Error: err.Error()})
	case errors.Is(err, services.ErrQuestionNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Code: "QUESTION_NOT_FOUND", Error: err.Error()})
	case errors.Is(err, services.ErrChoiceNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Code: "CHOICE_NOT_FOUND", Error: err.Error()})
	case errors.Is(err, services.ErrApplyAlreadyExist):
		c.JSON(http.StatusConflict, response.ErrorResponse{Code: "APPLY_ALREADY_EXIST", Error: err.Error()})
	case errors.Is(err, services.ErrApplyAlreadySubmitted):
		c.JSON(http.StatusConflict, response.ErrorResponse{Code: "APPLY_ALREADY_SUBMITTED", Error: err.Error()})
	case errors.Is(err, services.ErrApplyInvalidPassword):
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Code: "APPLY_INVALID_PASSWORD", Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
