package service

import "errors"

var (
	ErrAlreadyActive      = errors.New("a recording session is already active")
	ErrNoActiveSession    = errors.New("no active recording session")
	ErrNoQuestions        = errors.New("no questions available for this submission")
	ErrPersistenceFailure = errors.New("failed to persist interview data")
	ErrResultNotFound     = errors.New("analysis result not found")
)
