package services

import "errors"

// ===== COMMON SERVICE ERRORS =====

var (
	ErrSessionNotFound = errors.New("session not found")

	// Session flow errors
	ErrInvalidPhase      = errors.New("action not allowed in current phase")
	ErrUnknownQuestion   = errors.New("question not in catalog")
	ErrInvalidOption     = errors.New("value is not an option for this question")
	ErrAtFirstQuestion   = errors.New("already at the first question")
	ErrAnswerRequired    = errors.New("current question not answered")
	ErrResultUnavailable = errors.New("no result computed for this session")

	// Reporting errors
	ErrReportingUnavailable = errors.New("reporting requires the relational backend")
)
