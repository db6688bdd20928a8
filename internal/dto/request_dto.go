package dto

// SignupRequest creates a new account. The id is the student PRN,
// faculty ID or admin ID and becomes the primary key.
type SignupRequest struct {
	ID         string `json:"id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Password   string `json:"password" binding:"required"`
	Role       string `json:"role" binding:"required,oneof=admin faculty student"`
	Department string `json:"department" binding:"required"`
}

type LoginRequest struct {
	ID       string `json:"id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateQuestionRequest adds one multiple-choice question to the bank.
// CorrectOption is free text and is intentionally not checked against the
// four options.
type CreateQuestionRequest struct {
	Department     string  `json:"department" binding:"required"`
	Subject        string  `json:"subject" binding:"required"`
	QuestionText   string  `json:"question_text" binding:"required"`
	ImageURL       *string `json:"image_url"`
	MathExpression *string `json:"math_expression"`
	Option1        string  `json:"option_1" binding:"required"`
	Option2        string  `json:"option_2" binding:"required"`
	Option3        string  `json:"option_3" binding:"required"`
	Option4        string  `json:"option_4" binding:"required"`
	CorrectOption  string  `json:"correct_option" binding:"required"`
	CreatedByID    string  `json:"created_by_id" binding:"required"`
}

// CreateTestRequest assembles existing questions into a timed test.
type CreateTestRequest struct {
	Department  string `json:"department" binding:"required"`
	CourseName  string `json:"coursename" binding:"required"`
	Duration    int    `json:"duration" binding:"required,gt=0"`
	CreatedByID string `json:"created_by_id" binding:"required"`
	Questions   []uint `json:"questions" binding:"required,min=1"`
}

// StartTestRequest opens a new attempt record for a student.
type StartTestRequest struct {
	TestID     uint   `json:"test_id" binding:"required"`
	CourseName string `json:"coursename" binding:"required"`
	StudentID  string `json:"student_id" binding:"required"`
}

// UpdateTestStatusRequest finishes an attempt. Only transitions from
// ongoing to completed or terminated are accepted.
type UpdateTestStatusRequest struct {
	Status string   `json:"status" binding:"required"`
	Marks  *float64 `json:"marks"`
}
