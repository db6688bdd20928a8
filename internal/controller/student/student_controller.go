package student

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/svernekar/examportal/internal/dto"
	"github.com/svernekar/examportal/internal/service"
)

// StudentController covers test discovery, delivery and the attempt lifecycle.
type StudentController struct {
	testService    service.TestService
	attemptService service.AttemptService
}

func NewStudentController(testService service.TestService, attemptService service.AttemptService) *StudentController {
	return &StudentController{testService: testService, attemptService: attemptService}
}

// GetAvailableTests godoc
// @Summary List tests available to a department
// @Tags Student
// @Produce json
// @Param department query string true "Department"
// @Success 200 {array} dto.TestSummaryResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /get-tests [get]
func (c *StudentController) GetAvailableTests(ctx *gin.Context) {
	department := ctx.Query("department")

	tests, err := c.testService.ListAvailableTests(department)
	if err != nil {
		log.Error().Err(err).Str("department", department).Msg("GetAvailableTests: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, tests)
}

// GetTestQuestions godoc
// @Summary Fetch the department-filtered questions of a test
// @Tags Student
// @Produce json
// @Param test_id query int true "Test ID"
// @Param department query string true "Department"
// @Success 200 {array} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid test id"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /test/questions/student [get]
func (c *StudentController) GetTestQuestions(ctx *gin.Context) {
	testID, ok := parseTestID(ctx)
	if !ok {
		return
	}
	department := ctx.Query("department")

	questions, err := c.testService.GetTestQuestionsForStudent(testID, department)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("Student GetTestQuestions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, questions)
}

// GetTestDuration godoc
// @Summary Look up a test's duration
// @Description 404 when no (test_id, department) row matches; never a default.
// @Tags Student
// @Produce json
// @Param test_id query int true "Test ID"
// @Param department query string true "Department"
// @Success 200 {object} dto.DurationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid test id"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /test/duration [get]
func (c *StudentController) GetTestDuration(ctx *gin.Context) {
	testID, ok := parseTestID(ctx)
	if !ok {
		return
	}
	department := ctx.Query("department")

	duration, err := c.testService.GetTestDuration(testID, department)
	if err != nil {
		if errors.Is(err, service.ErrTestNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Test not found"})
			return
		}
		log.Error().Err(err).Uint("testID", testID).Msg("GetTestDuration: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, dto.DurationResponse{Duration: duration})
}

// StartTest godoc
// @Summary Begin an attempt
// @Description Opens a test_records row with status "ongoing".
// @Tags Student
// @Accept json
// @Produce json
// @Param start_data body dto.StartTestRequest true "Test, course and student"
// @Success 200 {object} dto.StartTestResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /start-test [post]
func (c *StudentController) StartTest(ctx *gin.Context) {
	var req dto.StartTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("StartTest: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	recordID, err := c.attemptService.StartAttempt(req)
	if err != nil {
		if errors.Is(err, service.ErrTestNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Test not found"})
			return
		}
		log.Error().Err(err).Uint("testID", req.TestID).Msg("StartTest: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, dto.StartTestResponse{Message: "Test started successfully", RecordID: recordID})
}

// UpdateTestStatus godoc
// @Summary Finish or terminate an attempt
// @Description Only ongoing attempts may move, and only to completed or terminated.
// @Tags Student
// @Accept json
// @Produce json
// @Param recordId path int true "Attempt record ID"
// @Param update_data body dto.UpdateTestStatusRequest true "New status and marks"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body or status value"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Failure 409 {object} dto.ErrorResponse "Transition not allowed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /update-test-status/{recordId} [put]
func (c *StudentController) UpdateTestStatus(ctx *gin.Context) {
	recordID, err := strconv.ParseUint(ctx.Param("recordId"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid record id"})
		return
	}

	var req dto.UpdateTestStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.attemptService.UpdateAttempt(uint(recordID), req); err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Test record not found"})
		case errors.Is(err, service.ErrInvalidStatus):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, service.ErrInvalidTransition):
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
		default:
			log.Error().Err(err).Uint64("recordID", recordID).Msg("UpdateTestStatus: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Test status updated successfully"})
}

func parseTestID(ctx *gin.Context) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Query("test_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid test_id"})
		return 0, false
	}
	return uint(value), true
}
