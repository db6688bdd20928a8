package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/svernekar/examportal/internal/dto"
	"github.com/svernekar/examportal/internal/model"
	"github.com/svernekar/examportal/internal/repository"
	"gorm.io/gorm"
)

type AttemptService interface {
	StartAttempt(req dto.StartTestRequest) (uint, error)
	UpdateAttempt(recordID uint, req dto.UpdateTestStatusRequest) error
}

type attemptService struct {
	recordRepo repository.TestRecordRepository
	testRepo   repository.TestRepository
}

func NewAttemptService(recordRepo repository.TestRecordRepository, testRepo repository.TestRepository) AttemptService {
	return &attemptService{recordRepo: recordRepo, testRepo: testRepo}
}

// StartAttempt opens a new record with status "ongoing". A student may hold
// several ongoing records for the same test; the portal does not dedup them.
func (s *attemptService) StartAttempt(req dto.StartTestRequest) (uint, error) {
	if _, err := s.testRepo.FindByID(req.TestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrTestNotFound
		}
		return 0, fmt.Errorf("looking up test: %w", err)
	}

	record := model.TestRecord{
		TestID:     req.TestID,
		CourseName: req.CourseName,
		StudentID:  req.StudentID,
		Status:     model.StatusOngoing,
	}

	if err := s.recordRepo.Create(&record); err != nil {
		log.Error().Err(err).Uint("testID", req.TestID).Str("studentID", req.StudentID).Msg("Failed to start attempt")
		return 0, fmt.Errorf("starting attempt: %w", err)
	}

	log.Info().Uint("recordID", record.RecordID).Uint("testID", req.TestID).Str("studentID", req.StudentID).Msg("Attempt started")
	return record.RecordID, nil
}

// UpdateAttempt finishes an attempt. The transition table is enforced here:
// an ongoing attempt may move to completed or terminated only, so a
// finished attempt can never be reopened or rescored.
func (s *attemptService) UpdateAttempt(recordID uint, req dto.UpdateTestStatusRequest) error {
	next := model.AttemptStatus(req.Status)
	if !next.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	record, err := s.recordRepo.FindByID(recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecordNotFound
		}
		return fmt.Errorf("looking up attempt: %w", err)
	}

	if !record.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: cannot move from %s to %s", ErrInvalidTransition, record.Status, next)
	}

	record.Status = next
	record.Marks = req.Marks

	if err := s.recordRepo.Update(record); err != nil {
		log.Error().Err(err).Uint("recordID", recordID).Msg("Failed to update attempt")
		return fmt.Errorf("updating attempt: %w", err)
	}

	log.Info().Uint("recordID", recordID).Str("status", string(next)).Msg("Attempt updated")
	return nil
}
