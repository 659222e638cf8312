package models

// Question is one entry of the immutable application questionnaire.
// Questions with a non-empty choice list are multiple-choice.
type Question struct {
	QuestionID uint     `gorm:"primaryKey;column:question_id" json:"question_id"`
	Track      Track    `gorm:"size:20;not null" json:"track"`
	Priority   int      `gorm:"not null" json:"priority"`
	Content    string   `gorm:"type:text;not null" json:"content"`
	Choices    []Choice `gorm:"foreignKey:QuestionID" json:"choices"`
}

type Choice struct {
	ChoiceID   uint   `gorm:"primaryKey;column:choice_id" json:"choice_id"`
	QuestionID uint   `gorm:"not null;index" json:"question_id"`
	Label      string `gorm:"size:255;not null" json:"label"`
}
