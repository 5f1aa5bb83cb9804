package service

import (
	"context"
	"time"

	"sigma/internal/cycle"
	"sigma/internal/logger"
	"sigma/internal/models"
	"sigma/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, p RegisterParams) (models.PublicUser, error)
	SignIn(ctx context.Context, matricula, password string) (string, error)
	ParseToken(accessToken string) (Session, error)
}

// Users exposes account administration.
type Users interface {
	List(ctx context.Context) ([]models.PublicUser, error)
	Pending(ctx context.Context) ([]models.PublicUser, error)
	Approve(ctx context.Context, id string, approve bool) error
	UpdateRole(ctx context.Context, id string, role models.UserRole) error
	Delete(ctx context.Context, id string) error
	EnsureAdmin(ctx context.Context, p AdminParams) (bool, error)
}

type Agents interface {
	List(ctx context.Context) ([]models.Agent, error)
	Create(ctx context.Context, name string) (models.Agent, error)
	AssignSector(ctx context.Context, id string, sectorID *string) error
}

// Elements is the element registry; it owns completion truth.
type Elements interface {
	ByStationAndType(ctx context.Context, stationID string, typ models.InstallationType) ([]models.Element, error)
	CountsByStation(ctx context.Context, stationID string) (map[models.InstallationType]int, error)
	Get(ctx context.Context, id string) (*models.Element, error)
	Create(ctx context.Context, e models.Element) (models.Element, error)
	Update(ctx context.Context, e models.Element) error
	Delete(ctx context.Context, id string) error
	SeedIfEmpty(ctx context.Context, elements []models.Element) (int, error)
}

// Maintenance records maintenance actions and faults.
type Maintenance interface {
	AddMaintenance(ctx context.Context, rec models.MaintenanceRecord) (models.MaintenanceRecord, error)
	MaintenanceHistory(ctx context.Context, elementID string) ([]models.MaintenanceRecord, error)
	AddFault(ctx context.Context, rec models.FaultRecord) (models.FaultRecord, error)
	FaultHistory(ctx context.Context, elementID string) ([]models.FaultRecord, error)
	Daily(ctx context.Context, date string) ([]models.MaintenanceEntry, error)
	Monthly(ctx context.Context, month, year int) ([]models.MaintenanceEntry, error)
}

// Cycle applies the once-per-semester completion reset.
// Stop Run via context cancellation in main() for graceful shutdown.
type Cycle interface {
	CheckAndReset(ctx context.Context) (bool, error)
	Run(ctx context.Context, tick time.Duration)
}

// Worklist manages the monthly maintenance lists.
type Worklist interface {
	Save(ctx context.Context, list models.MonthlyList) (models.MonthlyList, error)
	Get(ctx context.Context, month, year int) (*models.MonthlyList, error)
	Draft(ctx context.Context, p DraftParams) (models.MonthlyList, error)
}

type Compliance interface {
	SemesterStats(ctx context.Context, semester cycle.Semester, year int) (models.SemesterStats, error)
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Users
	Agents
	Elements
	Maintenance
	Cycle
	Worklist
	Compliance
}

// Clock returns the current time; tests pin it.
type Clock func() time.Time

type Options struct {
	Auth   AuthConfig
	Policy MaintenancePolicy
	Clock  Clock
	Log    *logger.Logger
}

// NewService wires the repository layer into the concrete services.
func NewService(repos *repository.Repository, opts Options) *Service {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}
	users := NewUserService(repos.Guard, repos.Users, opts.Auth)
	return &Service{
		Authorization: users,
		Users:         users,
		Agents:        NewAgentService(repos.Guard, repos.Agents),
		Elements:      NewElementService(repos.Guard, repos.Elements),
		Maintenance:   NewMaintenanceService(repos.Guard, repos.Maintenance, repos.Faults, repos.Elements, opts.Policy),
		Cycle:         NewCycleService(repos.Guard, repos.Elements, repos.ResetMarker, opts.Clock, opts.Log),
		Worklist:      NewWorklistService(repos.Guard, repos.Lists, repos.Elements, opts.Clock),
		Compliance:    NewComplianceService(repos.Guard, repos.Lists, repos.Elements),
	}
}
