package repository

import (
	"context"
	"time"

	"sigma/internal/models"
)

// Repositories below do no locking of their own; callers hold the matching
// Guard locks around every read-modify-write sequence.

type UserRepo interface {
	List(ctx context.Context) ([]models.User, error)
	ReplaceAll(ctx context.Context, users []models.User) error
}

type AgentRepo interface {
	List(ctx context.Context) ([]models.Agent, error)
	ReplaceAll(ctx context.Context, agents []models.Agent) error
}

type ElementRepo interface {
	List(ctx context.Context) ([]models.Element, error)
	ReplaceAll(ctx context.Context, elements []models.Element) error
}

type MaintenanceRepo interface {
	Append(ctx context.Context, rec models.MaintenanceRecord) error
	List(ctx context.Context) ([]models.MaintenanceRecord, error)
}

type FaultRepo interface {
	Append(ctx context.Context, rec models.FaultRecord) error
	List(ctx context.Context) ([]models.FaultRecord, error)
}

type ListRepo interface {
	List(ctx context.Context) ([]models.MonthlyList, error)
	ReplaceAll(ctx context.Context, lists []models.MonthlyList) error
}

// ResetMarkerRepo persists the time of the last semester reset.
type ResetMarkerRepo interface {
	// Load returns nil when no reset was ever recorded.
	Load(ctx context.Context) (*time.Time, error)
	Save(ctx context.Context, at time.Time) error
}

type Repository struct {
	Guard       *Guard
	Users       UserRepo
	Agents      AgentRepo
	Elements    ElementRepo
	Maintenance MaintenanceRepo
	Faults      FaultRepo
	Lists       ListRepo
	ResetMarker ResetMarkerRepo
}

func NewRepository(store RecordStore) *Repository {
	return &Repository{
		Guard:       NewGuard(),
		Users:       NewUserRepository(store),
		Agents:      NewAgentRepository(store),
		Elements:    NewElementRepository(store),
		Maintenance: NewMaintenanceRepository(store),
		Faults:      NewFaultRepository(store),
		Lists:       NewListRepository(store),
		ResetMarker: NewResetMarkerRepository(store),
	}
}
