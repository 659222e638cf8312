package models

// Answer is one candidate's response to one question. Selected choices
// hang off the answer_choice join rows.
type Answer struct {
	AnswerID   uint           `gorm:"primaryKey;column:answer_id" json:"answer_id"`
	ApplyID    uint           `gorm:"not null;index:idx_answer_apply_question,unique" json:"apply_id"`
	QuestionID uint           `gorm:"not null;index:idx_answer_apply_question,unique" json:"question_id"`
	Question   Question       `gorm:"foreignKey:QuestionID" json:"-"`
	Content    *string        `gorm:"type:text" json:"content"`
	Choices    []AnswerChoice `gorm:"foreignKey:AnswerID" json:"choices,omitempty"`
}

// AnswerChoice links an answer to a selected choice. The composite primary
// key keeps duplicate selections out.
type AnswerChoice struct {
	AnswerID uint   `gorm:"primaryKey;column:answer_id"`
	ChoiceID uint   `gorm:"primaryKey;column:choice_id"`
	Choice   Choice `gorm:"foreignKey:ChoiceID"`
}

func (AnswerChoice) TableName() string {
	return "answer_choice"
}
