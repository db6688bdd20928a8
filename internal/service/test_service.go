package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/svernekar/examportal/internal/dto"
	"github.com/svernekar/examportal/internal/model"
	"github.com/svernekar/examportal/internal/repository"
	"gorm.io/gorm"
)

type TestService interface {
	CreateTest(req dto.CreateTestRequest) (uint, error)
	GetTestsByCreator(createdByID string) ([]dto.TestResponse, error)
	GetTestsByDepartment(department string) ([]dto.TestResponse, error)
	GetTestDetails(testID uint) (*dto.TestResponse, error)
	GetTestQuestions(testID uint) ([]dto.QuestionResponse, error)
	ListAvailableTests(department string) ([]dto.TestSummaryResponse, error)
	GetTestQuestionsForStudent(testID uint, department string) ([]dto.QuestionResponse, error)
	GetTestDuration(testID uint, department string) (int, error)
}

type testService struct {
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
}

func NewTestService(testRepo repository.TestRepository, questionRepo repository.QuestionRepository) TestService {
	return &testService{testRepo: testRepo, questionRepo: questionRepo}
}

// CreateTest verifies every supplied question id exists, then writes the
// test and its join rows atomically. Either the whole test lands or none
// of it does.
func (s *testService) CreateTest(req dto.CreateTestRequest) (uint, error) {
	wanted := uniqueIDs(req.Questions)
	found, err := s.questionRepo.FindByIDs(wanted)
	if err != nil {
		log.Error().Err(err).Msg("Failed to look up questions for test creation")
		return 0, fmt.Errorf("looking up questions: %w", err)
	}
	if len(found) != len(wanted) {
		return 0, fmt.Errorf("%w: %d of %d question ids unknown",
			ErrQuestionNotFound, len(wanted)-len(found), len(wanted))
	}

	test := model.Test{
		Department:  req.Department,
		CourseName:  req.CourseName,
		Duration:    req.Duration,
		CreatedByID: req.CreatedByID,
	}

	if err := s.testRepo.CreateWithQuestions(&test, req.Questions); err != nil {
		log.Error().Err(err).Str("department", req.Department).Str("course", req.CourseName).Msg("Failed to create test")
		return 0, fmt.Errorf("creating test: %w", err)
	}

	log.Info().Uint("testID", test.TestID).Int("questionCount", len(req.Questions)).Msg("Test created")
	return test.TestID, nil
}

func (s *testService) GetTestsByCreator(createdByID string) ([]dto.TestResponse, error) {
	tests, err := s.testRepo.FindByCreator(createdByID)
	if err != nil {
		return nil, fmt.Errorf("listing tests by creator: %w", err)
	}
	return toTestResponses(tests), nil
}

func (s *testService) GetTestsByDepartment(department string) ([]dto.TestResponse, error) {
	tests, err := s.testRepo.FindByDepartment(department)
	if err != nil {
		return nil, fmt.Errorf("listing tests by department: %w", err)
	}
	return toTestResponses(tests), nil
}

func (s *testService) GetTestDetails(testID uint) (*dto.TestResponse, error) {
	test, err := s.testRepo.FindByID(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestNotFound
		}
		return nil, fmt.Errorf("fetching test details: %w", err)
	}
	var resp dto.TestResponse
	copier.Copy(&resp, test)
	return &resp, nil
}

func (s *testService) GetTestQuestions(testID uint) ([]dto.QuestionResponse, error) {
	questions, err := s.questionRepo.FindByTestID(testID)
	if err != nil {
		return nil, fmt.Errorf("fetching test questions: %w", err)
	}
	resp := make([]dto.QuestionResponse, 0, len(questions))
	copier.Copy(&resp, &questions)
	return resp, nil
}

// ListAvailableTests projects the lightweight (test_id, course_name,
// duration) listing a student browses before starting an attempt.
func (s *testService) ListAvailableTests(department string) ([]dto.TestSummaryResponse, error) {
	tests, err := s.testRepo.FindByDepartment(department)
	if err != nil {
		return nil, fmt.Errorf("listing available tests: %w", err)
	}
	summaries := make([]dto.TestSummaryResponse, 0, len(tests))
	for _, t := range tests {
		summaries = append(summaries, dto.TestSummaryResponse{
			TestID:     t.TestID,
			CourseName: t.CourseName,
			Duration:   t.Duration,
		})
	}
	return summaries, nil
}

func (s *testService) GetTestQuestionsForStudent(testID uint, department string) ([]dto.QuestionResponse, error) {
	questions, err := s.questionRepo.FindByTestIDAndDepartment(testID, department)
	if err != nil {
		return nil, fmt.Errorf("fetching student test questions: %w", err)
	}
	resp := make([]dto.QuestionResponse, 0, len(questions))
	copier.Copy(&resp, &questions)
	return resp, nil
}

// GetTestDuration returns ErrTestNotFound when no (test_id, department)
// row matches, never a default value.
func (s *testService) GetTestDuration(testID uint, department string) (int, error) {
	test, err := s.testRepo.FindByIDAndDepartment(testID, department)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrTestNotFound
		}
		return 0, fmt.Errorf("fetching test duration: %w", err)
	}
	return test.Duration, nil
}

func toTestResponses(tests []model.Test) []dto.TestResponse {
	resp := make([]dto.TestResponse, 0, len(tests))
	copier.Copy(&resp, &tests)
	return resp
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
