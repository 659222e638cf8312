//go:build integration
// +build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saokiritoni/HomePage-BE/dto"
	"github.com/saokiritoni/HomePage-BE/models"
	"github.com/saokiritoni/HomePage-BE/response"
)

func TestLogin(t *testing.T) {
	client := NewHTTPClient(testCtx.Router, "")

	resp, err := client.POST("/api/auth/login", dto.LoginRequest{
		StudentNumber: testCtx.Admin.StudentNumber,
		Password:      "admin-password",
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))

	var token response.TokenResponse
	require.NoError(t, resp.DecodeJSON(&token))
	assert.NotEmpty(t, token.Token)
	assert.Equal(t, models.UserRoleAdmin, token.Role)

	resp, err = client.POST("/api/auth/login", dto.LoginRequest{
		StudentNumber: testCtx.Admin.StudentNumber,
		Password:      "wrong",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestBlogModeration(t *testing.T) {
	memberClient := NewHTTPClient(testCtx.Router, testCtx.MemberToken)
	adminClient := NewHTTPClient(testCtx.Router, testCtx.AdminToken)

	// Anonymous registration is rejected.
	anonClient := NewHTTPClient(testCtx.Router, "")
	resp, err := anonClient.POST("/api/blogs", dto.CreateBlogRequest{Link: "https://blog.example.com/anon"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Member registers two blogs; both start PENDING.
	var approved, rejected models.Blog
	resp, err = memberClient.POST("/api/blogs", dto.CreateBlogRequest{Link: "https://blog.example.com/good"})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))
	require.NoError(t, resp.DecodeJSON(&approved))
	assert.Equal(t, models.ApprovalStatusPending, approved.ApprovalStatus)

	resp, err = memberClient.POST("/api/blogs", dto.CreateBlogRequest{Link: "https://blog.example.com/bad"})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NoError(t, resp.DecodeJSON(&rejected))

	// Both show up in the pending queue.
	resp, err = adminClient.GET("/api/admin/blogs/pending")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var pending []dto.PendingBlogResponse
	require.NoError(t, resp.DecodeJSON(&pending))
	ids := make(map[uint]bool, len(pending))
	for _, blog := range pending {
		ids[blog.BlogID] = true
	}
	assert.True(t, ids[approved.BlogID])
	assert.True(t, ids[rejected.BlogID])

	// Approve one, reject the other.
	resp, err = adminClient.POST("/api/admin/blogs/"+itoa(approved.BlogID)+"/approve", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))

	var approval dto.BlogApprovalResponse
	require.NoError(t, resp.DecodeJSON(&approval))
	assert.Equal(t, "APPROVED", approval.ApprovalStatus)
	assert.Equal(t, testCtx.Admin.Name, approval.ApprovedBy)
	assert.NotNil(t, approval.ApprovedAt)

	resp, err = adminClient.POST("/api/admin/blogs/"+itoa(rejected.BlogID)+"/reject", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Neither is pending anymore.
	resp, err = adminClient.GET("/api/admin/blogs/pending")
	require.NoError(t, err)
	require.NoError(t, resp.DecodeJSON(&pending))
	for _, blog := range pending {
		assert.NotEqual(t, approved.BlogID, blog.BlogID)
		assert.NotEqual(t, rejected.BlogID, blog.BlogID)
	}

	// Moderation left an audit trail.
	resp, err = adminClient.GET("/api/admin/audit-logs", map[string]string{"resource_type": "blog"})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var logs []models.AuditLog
	require.NoError(t, resp.DecodeJSON(&logs))
	assert.GreaterOrEqual(t, len(logs), 2)

	// Unknown blog id maps to the stable code.
	resp, err = adminClient.POST("/api/admin/blogs/999999/approve", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "BLOG_NOT_FOUND", resp.ErrorCode())
}

func TestFarmingLogFeed(t *testing.T) {
	memberClient := NewHTTPClient(testCtx.Router, testCtx.MemberToken)
	anonClient := NewHTTPClient(testCtx.Router, "")

	for _, title := range []string{"Week 1", "Week 2", "Week 3"} {
		resp, err := memberClient.POST("/api/farming-logs", dto.CreateFarmingLogRequest{
			Title:   title,
			Content: "Study notes for " + title,
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))
	}

	// The feed is public and paginated.
	resp, err := anonClient.GET("/api/farming-logs", map[string]string{"page": "1", "size": "2"})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page struct {
		List       []dto.FarmingLogResponse `json:"list"`
		Page       int                      `json:"page"`
		Size       int                      `json:"size"`
		Total      int64                    `json:"total"`
		TotalPages int                      `json:"totalPages"`
	}
	require.NoError(t, resp.DecodeJSON(&page))
	assert.Len(t, page.List, 2)
	assert.GreaterOrEqual(t, page.Total, int64(3))
	assert.GreaterOrEqual(t, page.TotalPages, 2)
	assert.Equal(t, testCtx.Member.Name, page.List[0].Author)

	// Newest first.
	assert.Equal(t, "Week 3", page.List[0].Title)

	// Author filter.
	resp, err = anonClient.GET("/api/farming-logs", map[string]string{"userId": itoa(testCtx.Member.UserID)})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.DecodeJSON(&page))
	for _, entry := range page.List {
		assert.Equal(t, testCtx.Member.Name, entry.Author)
	}

	// Writing requires authentication.
	resp, err = anonClient.POST("/api/farming-logs", dto.CreateFarmingLogRequest{Title: "x", Content: "y"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminUserDirectory(t *testing.T) {
	adminClient := NewHTTPClient(testCtx.Router, testCtx.AdminToken)

	resp, err := adminClient.GET("/api/admin/users")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var users []models.User
	require.NoError(t, resp.DecodeJSON(&users))
	assert.GreaterOrEqual(t, len(users), 2)

	resp, err = adminClient.GET("/api/admin/users/" + itoa(testCtx.Member.UserID))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user models.User
	require.NoError(t, resp.DecodeJSON(&user))
	assert.Equal(t, testCtx.Member.StudentNumber, user.StudentNumber)

	// Admin edits a member's profile fields.
	track := models.TrackFrontend
	resp, err = adminClient.PUT("/api/admin/users/"+itoa(testCtx.Member.UserID), dto.UpdateUserInput{
		Track: &track,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))
	require.NoError(t, resp.DecodeJSON(&user))
	assert.Equal(t, models.TrackFrontend, *user.Track)
}
