package repositories

import (
	"github.com/saokiritoni/HomePage-BE/db"
	"github.com/saokiritoni/HomePage-BE/models"
)

type BlogRepo interface {
	FindByID(id uint) (models.Blog, error)
	FindByApprovalStatus(status models.ApprovalStatus) ([]models.Blog, error)
	Create(blog *models.Blog) error
	Save(blog *models.Blog) error
}

type DBBlogRepo struct{}

func (r *DBBlogRepo) FindByID(id uint) (models.Blog, error) {
	var blog models.Blog
	err := db.DB.Preload("User").First(&blog, id).Error
	return blog, err
}

func (r *DBBlogRepo) FindByApprovalStatus(status models.ApprovalStatus) ([]models.Blog, error) {
	var blogs []models.Blog
	err := db.DB.Preload("User").
		Where("approval_status = ?", status).
		Order("created_at ASC").
		Find(&blogs).Error
	return blogs, err
}

func (r *DBBlogRepo) Create(blog *models.Blog) error {
	return db.DB.Create(blog).Error
}

func (r *DBBlogRepo) Save(blog *models.Blog) error {
	return db.DB.Save(blog).Error
}
