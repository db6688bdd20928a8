package model

import (
	"time"
)

// Question is a multiple-choice question in the bank, tagged by
// department and subject so faculty can filter while assembling tests.
type Question struct {
	QuestionID     uint    `gorm:"column:question_id;primaryKey" json:"question_id"`
	Department     string  `gorm:"not null;index:idx_questions_dept_subject" json:"department"`
	Subject        string  `gorm:"not null;index:idx_questions_dept_subject" json:"subject"`
	QuestionText   string  `gorm:"type:text;not null" json:"question_text"`
	ImageURL       *string `gorm:"column:image_url" json:"image_url,omitempty"`
	MathExpression *string `gorm:"type:text" json:"math_expression,omitempty"`
	Option1        string  `gorm:"column:option_1;not null" json:"option_1"`
	Option2        string  `gorm:"column:option_2;not null" json:"option_2"`
	Option3        string  `gorm:"column:option_3;not null" json:"option_3"`
	Option4        string  `gorm:"column:option_4;not null" json:"option_4"`
	// CorrectOption is stored as free text rather than an option index,
	// matching the authored answer key verbatim.
	CorrectOption string    `gorm:"not null" json:"correct_option"`
	CreatedByID   string    `gorm:"column:created_by_id;not null;index" json:"created_by_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Question) TableName() string {
	return "questions"
}
