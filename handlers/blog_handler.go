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

type BlogHandler struct {
	svc *services.BlogService
}

func NewBlogHandler(svc *services.BlogService) *BlogHandler {
	return &BlogHandler{svc: svc}
}

// RegisterBlog godoc
// @Summary Register a blog link for moderation
// @Tags blog
// @Accept json
// @Produce json
// @Param input body dto.CreateBlogRequest true "Blog link"
// @Success 201 {object} models.Blog
// @Router /blogs [post]
func (h *BlogHandler) RegisterBlog(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Authorization required"})
		return
	}

	var req dto.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	blog, err := h.svc.RegisterBlog(userID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, blog)
}

// ApproveBlog godoc
// @Summary Approve a pending blog
// @Tags admin
// @Produce json
// @Param blogId path int true "Blog ID"
// @Success 200 {object} dto.BlogApprovalResponse
// @Failure 404 {object} response.ErrorResponse "BLOG_NOT_FOUND"
// @Router /admin/blogs/{blogId}/approve [post]
func (h *BlogHandler) ApproveBlog(c *gin.Context) {
	blogID, adminID, ok := h.moderationIDs(c)
	if !ok {
		return
	}

	resp, err := h.svc.ApproveBlog(blogID, adminID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RejectBlog godoc
// @Summary Reject a pending blog
// @Tags admin
// @Produce json
// @Param blogId path int true "Blog ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "BLOG_NOT_FOUND"
// @Router /admin/blogs/{blogId}/reject [post]
func (h *BlogHandler) RejectBlog(c *gin.Context) {
	blogID, adminID, ok := h.moderationIDs(c)
	if !ok {
		return
	}

	if err := h.svc.RejectBlog(blogID, adminID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Blog rejected"})
}

// GetPendingBlogs godoc
// @Summary List blogs waiting for approval
// @Tags admin
// @Produce json
// @Success 200 {array} dto.PendingBlogResponse
// @Router /admin/blogs/pending [get]
func (h *BlogHandler) GetPendingBlogs(c *gin.Context) {
	blogs, err := h.svc.GetPendingBlogs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, blogs)
}

func (h *BlogHandler) moderationIDs(c *gin.Context) (blogID, adminID uint, ok bool) {
	id64, err := strconv.ParseUint(c.Param("blogId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid blog id"})
		return 0, 0, false
	}
	adminID, found := middleware.UserIDFromContext(c)
	if !found {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Authorization required"})
		return 0, 0, false
	}
	return uint(id64), adminID, true
}

func (h *BlogHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrBlogNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Code: "BLOG_NOT_FOUND", Error: err.Error()})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Code: "USER_NOT_FOUND", Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
