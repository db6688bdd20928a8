package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/svernekar/examportal/internal/dto"
	"github.com/svernekar/examportal/internal/model"
	"github.com/svernekar/examportal/internal/repository"
)

type QuestionService interface {
	CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	ListQuestions(department, subject string) ([]dto.QuestionResponse, error)
}

type questionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	var question model.Question
	copier.Copy(&question, &req)

	if err := s.repo.Create(&question); err != nil {
		log.Error().Err(err).Str("department", req.Department).Str("subject", req.Subject).Msg("Failed to create question")
		return nil, fmt.Errorf("creating question: %w", err)
	}

	var resp dto.QuestionResponse
	copier.Copy(&resp, &question)
	return &resp, nil
}

// ListQuestions is an exact-match filter on both fields; an empty result
// set is a valid answer, not an error.
func (s *questionService) ListQuestions(department, subject string) ([]dto.QuestionResponse, error) {
	questions, err := s.repo.FindByDepartmentAndSubject(department, subject)
	if err != nil {
		log.Error().Err(err).Str("department", department).Str("subject", subject).Msg("Failed to list questions")
		return nil, fmt.Errorf("listing questions: %w", err)
	}

	resp := make([]dto.QuestionResponse, 0, len(questions))
	copier.Copy(&resp, &questions)
	return resp, nil
}
