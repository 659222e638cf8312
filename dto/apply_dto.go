package dto

import (
	"time"

	"github.com/saokiritoni/HomePage-BE/models"
)

type CreateApplyRequest struct {
	StudentNumber string `json:"studentNumber" binding:"required"`
	Password      string `json:"password" binding:"required"`
}

type CreateApplyResponse struct {
	ApplyID uint `json:"applyId"`
}

// AnswerDTO carries one answer of a save request and one answer of a load
// response. A nil ChoiceID means the answer has no selected choices.
type AnswerDTO struct {
	QuestionID uint    `json:"questionId" binding:"required"`
	Content    *string `json:"content"`
	ChoiceID   []uint  `json:"choiceId"`
}

type SaveApplyRequest struct {
	ApplyID     uint          `json:"applyId" binding:"required"`
	Name        *string       `json:"name"`
	Major       *string       `json:"major"`
	PhoneNumber *string       `json:"phoneNumber"`
	Email       *string       `json:"email"`
	Track       *models.Track `json:"track"`
	Answers     []AnswerDTO   `json:"answers"`
}

type SaveApplyResponse struct {
	ApplyID uint `json:"applyId"`
}

type LoadApplyRequest struct {
	StudentNumber string `json:"studentNumber" binding:"required"`
	Password      string `json:"password" binding:"required"`
}

type LoadApplyResponse struct {
	ApplyID   uint               `json:"applyId"`
	Status    models.ApplyStatus `json:"status"`
	UpdatedAt time.Time          `json:"updatedAt"`
	Answers   []AnswerDTO        `json:"answers"`
}

// ApplyListItem is one row of the admin submitted-applies listing.
type ApplyListItem struct {
	ApplyID       uint          `json:"applyId"`
	StudentNumber string        `json:"studentNumber"`
	Name          *string       `json:"name"`
	Track         *models.Track `json:"track"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// SubmittedApplyResponse is the admin detail view of one application.
type SubmittedApplyResponse struct {
	ApplyID       uint          `json:"applyId"`
	StudentNumber string        `json:"studentNumber"`
	Name          *string       `json:"name"`
	Major         *string       `json:"major"`
	PhoneNumber   *string       `json:"phoneNumber"`
	Email         *string       `json:"email"`
	Track         *models.Track `json:"track"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	Answers       []AnswerDTO   `json:"answers"`
}

// AnswersFromModel projects persisted answers (with their choice edges)
// into the wire shape.
func AnswersFromModel(answers []models.Answer) []AnswerDTO {
	out := make([]AnswerDTO, 0, len(answers))
	for _, answer := range answers {
		item := AnswerDTO{
			QuestionID: answer.QuestionID,
			Content:    answer.Content,
		}
		for _, edge := range answer.Choices {
			item.ChoiceID = append(item.ChoiceID, edge.ChoiceID)
		}
		out = append(out, item)
	}
	return out
}
