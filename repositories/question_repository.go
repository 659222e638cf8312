package repositories

import (
	"github.com/saokiritoni/HomePage-BE/db"
	"github.com/saokiritoni/HomePage-BE/models"
	"gorm.io/gorm"
)

type QuestionRepo interface {
	ListOrdered() ([]models.Question, error)
	FindByID(tx *gorm.DB, id uint) (models.Question, error)
	FindChoiceByID(tx *gorm.DB, id uint) (models.Choice, error)
}

type DBQuestionRepo struct{}

// ListOrdered loads the whole catalog with choices eagerly included, so
// callers can render without per-question fetches.
func (r *DBQuestionRepo) ListOrdered() ([]models.Question, error) {
	var questions []models.Question
	err := db.DB.
		Preload("Choices", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("choice_id ASC")
		}).
		Order("track ASC").
		Order("priority ASC").
		Find(&questions).Error
	return questions, err
}

func (r *DBQuestionRepo) FindByID(tx *gorm.DB, id uint) (models.Question, error) {
	var question models.Question
	err := tx.First(&question, id).Error
	return question, err
}

func (r *DBQuestionRepo) FindChoiceByID(tx *gorm.DB, id uint) (models.Choice, error) {
	var choice models.Choice
	err := tx.First(&choice, id).Error
	return choice, err
}
