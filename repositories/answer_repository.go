package repositories

import (
	"github.com/saokiritoni/HomePage-BE/models"
	"gorm.io/gorm"
)

type AnswerRepo interface {
	FindByApplyAndQuestion(tx *gorm.DB, applyID, questionID uint) (models.Answer, error)
	Create(tx *gorm.DB, answer *models.Answer) error
	Save(tx *gorm.DB, answer *models.Answer) error
	DeleteChoicesByAnswerID(tx *gorm.DB, answerID uint) error
	CreateChoice(tx *gorm.DB, edge *models.AnswerChoice) error
}

type DBAnswerRepo struct{}

func (r *DBAnswerRepo) FindByApplyAndQuestion(tx *gorm.DB, applyID, questionID uint) (models.Answer, error) {
	var answer models.Answer
	err := tx.Where("apply_id = ? AND question_id = ?", applyID, questionID).
		First(&answer).Error
	return answer, err
}

func (r *DBAnswerRepo) Create(tx *gorm.DB, answer *models.Answer) error {
	return tx.Create(answer).Error
}

func (r *DBAnswerRepo) Save(tx *gorm.DB, answer *models.Answer) error {
	return tx.Save(answer).Error
}

func (r *DBAnswerRepo) DeleteChoicesByAnswerID(tx *gorm.DB, answerID uint) error {
	return tx.Where("answer_id = ?", answerID).
		Delete(&models.AnswerChoice{}).Error
}

func (r *DBAnswerRepo) CreateChoice(tx *gorm.DB, edge *models.AnswerChoice) error {
	return tx.Create(edge).Error
}
