package repositories

import (
	"github.com/saokiritoni/HomePage-BE/db"
	"github.com/saokiritoni/HomePage-BE/models"
	"gorm.io/gorm"
)

type ApplyRepo interface {
	FindByID(tx *gorm.DB, id uint) (models.Apply, error)
	FindByIDWithAnswers(id uint) (models.Apply, error)
	FindAllByStudentNumber(studentNumber string) ([]models.Apply, error)
	Create(tx *gorm.DB, apply *models.Apply) error
	Save(tx *gorm.DB, apply *models.Apply) error
	SubmittedExists(tx *gorm.DB, studentNumber string) (bool, error)
	CreateSubmitted(tx *gorm.DB, marker *models.SubmittedApply) error
	FindAllSubmitted(track *models.Track) ([]models.Apply, error)
}

type DBApplyRepo struct{}

func (r *DBApplyRepo) FindByID(tx *gorm.DB, id uint) (models.Apply, error) {
	var apply models.Apply
	err := tx.First(&apply, id).Error
	return apply, err
}

func (r *DBApplyRepo) FindByIDWithAnswers(id uint) (models.Apply, error) {
	var apply models.Apply
	err := db.DB.Preload("Answers.Choices").First(&apply, id).Error
	return apply, err
}

func (r *DBApplyRepo) FindAllByStudentNumber(studentNumber string) ([]models.Apply, error) {
	var applies []models.Apply
	err := db.DB.Preload("Answers.Choices").
		Where("student_number = ?", studentNumber).
		Find(&applies).Error
	return applies, err
}

func (r *DBApplyRepo) Create(tx *gorm.DB, apply *models.Apply) error {
	return tx.Create(apply).Error
}

func (r *DBApplyRepo) Save(tx *gorm.DB, apply *models.Apply) error {
	return tx.Save(apply).Error
}

func (r *DBApplyRepo) SubmittedExists(tx *gorm.DB, studentNumber string) (bool, error) {
	var count int64
	err := tx.Model(&models.SubmittedApply{}).
		Where("student_number = ?", studentNumber).
		Count(&count).Error
	return count > 0, err
}

func (r *DBApplyRepo) CreateSubmitted(tx *gorm.DB, marker *models.SubmittedApply) error {
	return tx.Create(marker).Error
}

// FindAllSubmitted returns applications whose student number has a row in
// the apply_status marker table, optionally filtered by track.
func (r *DBApplyRepo) FindAllSubmitted(track *models.Track) ([]models.Apply, error) {
	var applies []models.Apply
	query := db.DB.
		Joins("JOIN apply_status ON apply_status.student_number = apply.student_number")
	if track != nil {
		query = query.Where("apply.track = ?", *track)
	}
	err := query.Find(&applies).Error
	return applies, err
}
