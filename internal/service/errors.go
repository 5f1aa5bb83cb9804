package service

import (
	"errors"

	"sigma/internal/cycle"
)

// Validation errors; handlers answer them with 400.
var (
	ErrInvalidPeriod      = errors.New("invalid period: month must be 1-12 and year positive")
	ErrInvalidSemester    = cycle.ErrInvalidSemester
	ErrInvalidDate        = errors.New("invalid date: use YYYY-MM-DD or RFC3339")
	ErrElementIDRequired  = errors.New("element id is required")
	ErrInvalidElement     = errors.New("invalid element: station_id and a known installation_type (CIRCUITOS, MOTORES) are required")
	ErrAgentNameRequired  = errors.New("agent name is required")
	ErrInvalidRole        = errors.New("invalid role: must be ADMIN or AGENT")
	ErrMatriculaTaken     = errors.New("matricula already registered")
	ErrCredentialsMissing = errors.New("matricula and password are required")
)

// Auth errors.
var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrUserNotFound    = errors.New("user not found")
	ErrUserNotApproved = errors.New("user pending approval")
	ErrInvalidToken    = errors.New("invalid token")
	ErrForbidden       = errors.New("forbidden: admin role required")
)

// IsValidation reports whether err is caused by bad caller input.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrInvalidPeriod,
		ErrInvalidSemester,
		ErrInvalidDate,
		ErrElementIDRequired,
		ErrInvalidElement,
		ErrAgentNameRequired,
		ErrInvalidRole,
		ErrMatriculaTaken,
		ErrCredentialsMissing,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
