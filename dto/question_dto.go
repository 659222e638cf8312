package dto

import "github.com/saokiritoni/HomePage-BE/models"

type ChoiceDTO struct {
	ChoiceID uint   `json:"choiceId"`
	Label    string `json:"label"`
}

type QuestionDTO struct {
	QuestionID uint         `json:"questionId"`
	Track      models.Track `json:"track"`
	Priority   int          `json:"priority"`
	Content    string       `json:"content"`
	IsChoice   bool         `json:"isChoice"`
	Choices    []ChoiceDTO  `json:"choices"`
}

func QuestionFromModel(q models.Question) QuestionDTO {
	choices := make([]ChoiceDTO, 0, len(q.Choices))
	for _, c := range q.Choices {
		choices = append(choices, ChoiceDTO{ChoiceID: c.ChoiceID, Label: c.Label})
	}
	return QuestionDTO{
		QuestionID: q.QuestionID,
		Track:      q.Track,
		Priority:   q.Priority,
		Content:    q.Content,
		IsChoice:   len(choices) > 0,
		Choices:    choices,
	}
}
