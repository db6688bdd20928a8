package model

import (
	"time"
)

// AttemptStatus is the lifecycle state of a student's test attempt.
type AttemptStatus string

const (
	StatusOngoing    AttemptStatus = "ongoing"
	StatusCompleted  AttemptStatus = "completed"
	StatusTerminated AttemptStatus = "terminated"
)

// Valid reports whether s is a known attempt status.
func (s AttemptStatus) Valid() bool {
	switch s {
	case StatusOngoing, StatusCompleted, StatusTerminated:
		return true
	}
	return false
}

// CanTransitionTo encodes the attempt state machine: an ongoing attempt
// may finish as completed or terminated; finished attempts are final.
func (s AttemptStatus) CanTransitionTo(next AttemptStatus) bool {
	return s == StatusOngoing && (next == StatusCompleted || next == StatusTerminated)
}

// TestRecord tracks one attempt of one student at one test.
type TestRecord struct {
	RecordID   uint          `gorm:"column:record_id;primaryKey" json:"record_id"`
	TestID     uint          `gorm:"column:test_id;not null;index" json:"test_id"`
	CourseName string        `gorm:"column:coursename;not null" json:"coursename"`
	StudentID  string        `gorm:"column:student_id;not null;index" json:"student_id"`
	Status     AttemptStatus `gorm:"not null;size:16" json:"status"`
	Marks      *float64      `json:"marks,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

func (TestRecord) TableName() string {
	return "test_records"
}
