package faculty

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/svernekar/examportal/internal/dto"
	"github.com/svernekar/examportal/internal/service"
)

// FacultyController covers question authoring, test assembly and the
// review-side test lookups.
type FacultyController struct {
	questionService service.QuestionService
	testService     service.TestService
}

func NewFacultyController(questionService service.QuestionService, testService service.TestService) *FacultyController {
	return &FacultyController{questionService: questionService, testService: testService}
}

// CreateQuestion godoc
// @Summary Add a question to the bank
// @Tags Faculty
// @Accept json
// @Produce json
// @Param question_data body dto.CreateQuestionRequest true "Question fields"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /questions [post]
func (c *FacultyController) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateQuestion: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if _, err := c.questionService.CreateQuestion(req); err != nil {
		log.Error().Err(err).Msg("CreateQuestion: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Question added successfully"})
}

// GetQuestions godoc
// @Summary List questions by department and subject
// @Tags Faculty
// @Produce json
// @Param department query string true "Department"
// @Param subject query string true "Subject"
// @Success 200 {array} dto.QuestionResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /getquestions [get]
func (c *FacultyController) GetQuestions(ctx *gin.Context) {
	department := ctx.Query("department")
	subject := ctx.Query("subject")

	questions, err := c.questionService.ListQuestions(department, subject)
	if err != nil {
		log.Error().Err(err).Msg("GetQuestions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, questions)
}

// CreateTest godoc
// @Summary Assemble a timed test from existing questions
// @Description Inserts the test and all its question links in one transaction.
// @Tags Faculty
// @Accept json
// @Produce json
// @Param test_data body dto.CreateTestRequest true "Test fields and question ids"
// @Success 201 {object} dto.CreateTestResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body or unknown question id"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /create-test [post]
func (c *FacultyController) CreateTest(ctx *gin.Context) {
	var req dto.CreateTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateTest: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	testID, err := c.testService.CreateTest(req)
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Msg("CreateTest: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateTestResponse{Message: "Test created successfully", TestID: testID})
}

// GetFacultyTests godoc
// @Summary List tests created by a user
// @Tags Faculty
// @Produce json
// @Param created_by_id query string true "Creator user ID"
// @Success 200 {array} dto.TestResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /faculty/tests [get]
func (c *FacultyController) GetFacultyTests(ctx *gin.Context) {
	createdByID := ctx.Query("created_by_id")

	tests, err := c.testService.GetTestsByCreator(createdByID)
	if err != nil {
		log.Error().Err(err).Msg("GetFacultyTests: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, tests)
}

// GetDepartmentTests godoc
// @Summary List tests for a department
// @Tags Faculty
// @Produce json
// @Param department query string true "Department"
// @Success 200 {array} dto.TestResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /department/tests [get]
func (c *FacultyController) GetDepartmentTests(ctx *gin.Context) {
	department := ctx.Query("department")

	tests, err := c.testService.GetTestsByDepartment(department)
	if err != nil {
		log.Error().Err(err).Msg("GetDepartmentTests: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, tests)
}

// GetTestDetails godoc
// @Summary Fetch one test
// @Tags Faculty
// @Produce json
// @Param test_id query int true "Test ID"
// @Success 200 {object} dto.TestResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid test id"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /test/details [get]
func (c *FacultyController) GetTestDetails(ctx *gin.Context) {
	testID, ok := parseTestID(ctx)
	if !ok {
		return
	}

	details, err := c.testService.GetTestDetails(testID)
	if err != nil {
		if errors.Is(err, service.ErrTestNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Test not found"})
			return
		}
		log.Error().Err(err).Uint("testID", testID).Msg("GetTestDetails: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, details)
}

// GetTestQuestions godoc
// @Summary Fetch all questions linked to a test
// @Tags Faculty
// @Produce json
// @Param test_id query int true "Test ID"
// @Success 200 {array} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid test id"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /test/questions [get]
func (c *FacultyController) GetTestQuestions(ctx *gin.Context) {
	testID, ok := parseTestID(ctx)
	if !ok {
		return
	}

	questions, err := c.testService.GetTestQuestions(testID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("GetTestQuestions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, questions)
}

func parseTestID(ctx *gin.Context) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Query("test_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid test_id"})
		return 0, false
	}
	return uint(value), true
}
