package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// MessageResponse is the generic {message} success body.
type MessageResponse struct {
	Message string `json:"message"`
}

// SignupResponse matches the original {success, message} contract.
type SignupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UserResponse is the sanitized user row. The password hash stays server-side.
type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

type LoginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// ProfileResponse keeps the original field names, dept_name included.
type ProfileResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	DeptName string `json:"dept_name"`
}

type QuestionResponse struct {
	QuestionID     uint      `json:"question_id"`
	Department     string    `json:"department"`
	Subject        string    `json:"subject"`
	QuestionText   string    `json:"question_text"`
	ImageURL       *string   `json:"image_url,omitempty"`
	MathExpression *string   `json:"math_expression,omitempty"`
	Option1        string    `json:"option_1"`
	Option2        string    `json:"option_2"`
	Option3        string    `json:"option_3"`
	Option4        string    `json:"option_4"`
	CorrectOption  string    `json:"correct_option"`
	CreatedByID    string    `json:"created_by_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type TestResponse struct {
	TestID      uint      `json:"test_id"`
	Department  string    `json:"department"`
	CourseName  string    `json:"course_name"`
	Duration    int       `json:"duration"`
	CreatedByID string    `json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// TestSummaryResponse is the lightweight listing a student browses.
type TestSummaryResponse struct {
	TestID     uint   `json:"test_id"`
	CourseName string `json:"course_name"`
	Duration   int    `json:"duration"`
}

type CreateTestResponse struct {
	Message string `json:"message"`
	TestID  uint   `json:"testId"`
}

type DurationResponse struct {
	Duration int `json:"duration"`
}

type StartTestResponse struct {
	Message  string `json:"message"`
	RecordID uint   `json:"recordId"`
}
