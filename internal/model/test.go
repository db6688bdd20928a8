package model

import (
	"time"
)

// Test is a timed exam assembled by faculty for one department.
// Its questions are linked through TestQuestion rows.
type Test struct {
	TestID      uint   `gorm:"column:test_id;primaryKey" json:"test_id"`
	Department  string `gorm:"not null;index" json:"department"`
	CourseName  string `gorm:"column:course_name;not null" json:"course_name"`
	Duration    int    `gorm:"not null" json:"duration"` // minutes
	CreatedByID string `gorm:"column:created_by_id;not null;index" json:"created_by_id"`

	Questions []TestQuestion `gorm:"foreignKey:TestID" json:"questions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Test) TableName() string {
	return "tests"
}

// TestQuestion links one Question into one Test. Rows are written
// exactly once, in the same transaction that creates the Test.
type TestQuestion struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	TestID     uint   `gorm:"column:test_id;not null;index" json:"test_id"`
	QuestionID uint   `gorm:"column:question_id;not null;index" json:"question_id"`
	Subject    string `gorm:"not null" json:"subject"`
}

func (TestQuestion) TableName() string {
	return "test_questions"
}
