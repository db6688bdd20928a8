package service

import "errors"

// Sentinel errors the controllers translate into HTTP statuses.
var (
	ErrUserExists        = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrWrongPassword     = errors.New("wrong password")
	ErrTestNotFound      = errors.New("test not found")
	ErrQuestionNotFound  = errors.New("question not found")
	ErrRecordNotFound    = errors.New("test record not found")
	ErrInvalidStatus     = errors.New("invalid attempt status")
	ErrInvalidTransition = errors.New("attempt status transition not allowed")
)
