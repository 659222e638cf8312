package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/saokiritoni/HomePage-BE/dto"
	"github.com/saokiritoni/HomePage-BE/models"
	"github.com/saokiritoni/HomePage-BE/repositories"
	"github.com/saokiritoni/HomePage-BE/utils"
	"gorm.io/gorm"
)

var (
	ErrBlogNotFound = errors.New("blog not found")
	ErrUserNotFound = errors.New("user not found")
)

// BlogService handles member blog registration and admin moderation.
type BlogService struct {
	Repos *repositories.Repos
}

func NewBlogService(repos *repositories.Repos) *BlogService {
	return &BlogService{Repos: repos}
}

func (s *BlogService) RegisterBlog(userID uint, req dto.CreateBlogRequest) (models.Blog, error) {
	if _, err := s.Repos.User.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Blog{}, ErrUserNotFound
		}
		return models.Blog{}, err
	}
	blog := models.Blog{
		UserID:         userID,
		Link:           req.Link,
		ApprovalStatus: models.ApprovalStatusPending,
	}
	return blog, s.Repos.Blog.Create(&blog)
}

func (s *BlogService) ApproveBlog(blogID, adminUserID uint) (dto.BlogApprovalResponse, error) {
	blog, admin, err := s.loadBlogAndAdmin(blogID, adminUserID)
	if err != nil {
		return dto.BlogApprovalResponse{}, err
	}

	old := blog
	blog.Approve(&admin, time.Now())
	if err := s.Repos.Blog.Save(&blog); err != nil {
		return dto.BlogApprovalResponse{}, err
	}
	s.audit(adminUserID, "approve", blog, old)

	return dto.BlogApprovalResponse{
		BlogID:         blog.BlogID,
		Link:           blog.Link,
		ApprovalStatus: string(blog.ApprovalStatus),
		ApprovedBy:     admin.Name,
		ApprovedAt:     blog.ApprovedAt,
	}, nil
}

func (s *BlogService) RejectBlog(blogID, adminUserID uint) error {
	blog, admin, err := s.loadBlogAndAdmin(blogID, adminUserID)
	if err != nil {
		return err
	}

	old := blog
	blog.Reject(&admin, time.Now())
	if err := s.Repos.Blog.Save(&blog); err != nil {
		return err
	}
	s.audit(adminUserID, "reject", blog, old)
	return nil
}

func (s *BlogService) GetPendingBlogs() ([]dto.PendingBlogResponse, error) {
	blogs, err := s.Repos.Blog.FindByApprovalStatus(models.ApprovalStatusPending)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PendingBlogResponse, 0, len(blogs))
	for _, blog := range blogs {
		out = append(out, dto.PendingBlogResponse{
			BlogID:    blog.BlogID,
			Link:      blog.Link,
			Author:    blog.User.Name,
			CreatedAt: blog.CreatedAt,
		})
	}
	return out, nil
}

func (s *BlogService) loadBlogAndAdmin(blogID, adminUserID uint) (models.Blog, models.User, error) {
	blog, err := s.Repos.Blog.FindByID(blogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Blog{}, models.User{}, ErrBlogNotFound
		}
		return models.Blog{}, models.User{}, err
	}
	admin, err := s.Repos.User.FindByID(adminUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Blog{}, models.User{}, ErrUserNotFound
		}
		return models.Blog{}, models.User{}, err
	}
	return blog, admin, nil
}

func (s *BlogService) audit(adminUserID uint, action string, newBlog, oldBlog models.Blog) {
	utils.LogAuditWithConsole(adminUserID, action, "blog",
		strconv.FormatUint(uint64(newBlog.BlogID), 10), oldBlog, newBlog, "", s.Repos.Audit)
}
