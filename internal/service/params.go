package service

import (
	"time"

	"sigma/internal/models"
)

// MaintenancePolicy decides what recording maintenance does to an element.
type MaintenancePolicy struct {
	// MarkCompleted also sets isCompleted=true; lastMaintenanceDate is always updated.
	MarkCompleted bool
}

type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

type RegisterParams struct {
	Matricula string
	Password  string
	FullName  string
}

// AdminParams describes the bootstrap administrator.
type AdminParams struct {
	Matricula string
	Password  string
	FullName  string
}

// Session is what a valid access token resolves to.
type Session struct {
	UserID string
	Role   models.UserRole
}

// DraftParams selects the elements that go into a drafted worklist.
type DraftParams struct {
	Month       int
	Year        int
	StationID   string                    // empty means every station
	Types       []models.InstallationType // empty means every type
	PendingOnly bool                      // skip elements already completed this semester
}
