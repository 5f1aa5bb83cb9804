package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"sigma/internal/cycle"
	"sigma/internal/models"
	"sigma/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

const (
	adminToken = "admin-token"
	agentToken = "agent-token"
)

type mockAuth struct {
	signUpUser  models.PublicUser
	signUpErr   error
	signInToken string
	signInErr   error
	sessions    map[string]service.Session

	lastSignUp     service.RegisterParams
	lastSignInUser string
	lastSignInPass string
	lastParseToken string
}

func newMockAuth() *mockAuth {
	return &mockAuth{sessions: map[string]service.Session{
		adminToken: {UserID: "u-admin", Role: models.RoleAdmin},
		agentToken: {UserID: "u-agent", Role: models.RoleAgent},
	}}
}

func (m *mockAuth) SignUp(ctx context.Context, p service.RegisterParams) (models.PublicUser, error) {
	m.lastSignUp = p
	return m.signUpUser, m.signUpErr
}
func (m *mockAuth) SignIn(ctx context.Context, matricula, password string) (string, error) {
	m.lastSignInUser = matricula
	m.lastSignInPass = password
	return m.signInToken, m.signInErr
}
func (m *mockAuth) ParseToken(token string) (service.Session, error) {
	m.lastParseToken = token
	s, ok := m.sessions[token]
	if !ok {
		return service.Session{}, service.ErrInvalidToken
	}
	return s, nil
}

type mockUsers struct {
	users    []models.PublicUser
	pending  []models.PublicUser
	err      error
	approved map[string]bool
	roles    map[string]models.UserRole
	deleted  []string
}

func (m *mockUsers) List(ctx context.Context) ([]models.PublicUser, error) {
	return m.users, m.err
}
func (m *mockUsers) Pending(ctx context.Context) ([]models.PublicUser, error) {
	return m.pending, m.err
}
func (m *mockUsers) Approve(ctx context.Context, id string, approve bool) error {
	if m.approved == nil {
		m.approved = map[string]bool{}
	}
	m.approved[id] = approve
	return m.err
}
func (m *mockUsers) UpdateRole(ctx context.Context, id string, role models.UserRole) error {
	if role != models.RoleAdmin && role != models.RoleAgent {
		return service.ErrInvalidRole
	}
	if m.roles == nil {
		m.roles = map[string]models.UserRole{}
	}
	m.roles[id] = role
	return m.err
}
func (m *mockUsers) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return m.err
}
func (m *mockUsers) EnsureAdmin(ctx context.Context, p service.AdminParams) (bool, error) {
	return false, m.err
}

type mockAgents struct {
	agents     []models.Agent
	err        error
	lastName   string
	lastID     string
	lastSector *string
}

func (m *mockAgents) List(ctx context.Context) ([]models.Agent, error) {
	return m.agents, m.err
}
func (m *mockAgents) Create(ctx context.Context, name string) (models.Agent, error) {
	m.lastName = name
	if m.err != nil {
		return models.Agent{}, m.err
	}
	return models.Agent{ID: "a1", Name: strings.ToUpper(strings.TrimSpace(name))}, nil
}
func (m *mockAgents) AssignSector(ctx context.Context, id string, sectorID *string) error {
	m.lastID = id
	m.lastSector = sectorID
	return m.err
}

type mockElements struct {
	elements []models.Element
	counts   map[models.InstallationType]int
	err      error

	lastStation string
	lastType    models.InstallationType
	created     []models.Element
	updated     []models.Element
	deleted     []string
}

func (m *mockElements) ByStationAndType(ctx context.Context, stationID string, typ models.InstallationType) ([]models.Element, error) {
	m.lastStation = stationID
	m.lastType = typ
	return m.elements, m.err
}
func (m *mockElements) CountsByStation(ctx context.Context, stationID string) (map[models.InstallationType]int, error) {
	m.lastStation = stationID
	return m.counts, m.err
}
func (m *mockElements) Get(ctx context.Context, id string) (*models.Element, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.elements {
		if m.elements[i].ID == id {
			return &m.elements[i], nil
		}
	}
	return nil, nil
}
func (m *mockElements) Create(ctx context.Context, e models.Element) (models.Element, error) {
	if m.err != nil {
		return models.Element{}, m.err
	}
	if e.StationID == "" || e.InstallationType == "" {
		return models.Element{}, service.ErrInvalidElement
	}
	if e.ID == "" {
		e.ID = "generated"
	}
	m.created = append(m.created, e)
	return e, nil
}
func (m *mockElements) Update(ctx context.Context, e models.Element) error {
	m.updated = append(m.updated, e)
	return m.err
}
func (m *mockElements) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return m.err
}
func (m *mockElements) SeedIfEmpty(ctx context.Context, elements []models.Element) (int, error) {
	return 0, m.err
}

type mockMaintenance struct {
	history []models.MaintenanceRecord
	faults  []models.FaultRecord
	entries []models.MaintenanceEntry
	err     error

	lastRecord models.MaintenanceRecord
	lastFault  models.FaultRecord
	lastDate   string
	lastMonth  int
	lastYear   int
}

func (m *mockMaintenance) AddMaintenance(ctx context.Context, rec models.MaintenanceRecord) (models.MaintenanceRecord, error) {
	m.lastRecord = rec
	if m.err != nil {
		return models.MaintenanceRecord{}, m.err
	}
	rec.ID = "m1"
	return rec, nil
}
func (m *mockMaintenance) MaintenanceHistory(ctx context.Context, elementID string) ([]models.MaintenanceRecord, error) {
	return m.history, m.err
}
func (m *mockMaintenance) AddFault(ctx context.Context, rec models.FaultRecord) (models.FaultRecord, error) {
	m.lastFault = rec
	if m.err != nil {
		return models.FaultRecord{}, m.err
	}
	rec.ID = "f1"
	return rec, nil
}
func (m *mockMaintenance) FaultHistory(ctx context.Context, elementID string) ([]models.FaultRecord, error) {
	return m.faults, m.err
}
func (m *mockMaintenance) Daily(ctx context.Context, date string) ([]models.MaintenanceEntry, error) {
	m.lastDate = date
	return m.entries, m.err
}
func (m *mockMaintenance) Monthly(ctx context.Context, month, year int) ([]models.MaintenanceEntry, error) {
	m.lastMonth, m.lastYear = month, year
	return m.entries, m.err
}

type mockCycle struct {
	reset bool
	err   error
	calls int
}

func (m *mockCycle) CheckAndReset(ctx context.Context) (bool, error) {
	m.calls++
	return m.reset, m.err
}
func (m *mockCycle) Run(ctx context.Context, tick time.Duration) {}

type mockWorklist struct {
	list      *models.MonthlyList
	err       error
	saved     []models.MonthlyList
	lastMonth int
	lastYear  int
	lastDraft service.DraftParams
}

func (m *mockWorklist) Save(ctx context.Context, list models.MonthlyList) (models.MonthlyList, error) {
	if m.err != nil {
		return models.MonthlyList{}, m.err
	}
	if list.Month < 1 || list.Month > 12 {
		return models.MonthlyList{}, service.ErrInvalidPeriod
	}
	list.ID = "l1"
	m.saved = append(m.saved, list)
	return list, nil
}
func (m *mockWorklist) Get(ctx context.Context, month, year int) (*models.MonthlyList, error) {
	m.lastMonth, m.lastYear = month, year
	return m.list, m.err
}
func (m *mockWorklist) Draft(ctx context.Context, p service.DraftParams) (models.MonthlyList, error) {
	m.lastDraft = p
	return models.MonthlyList{Month: p.Month, Year: p.Year}, m.err
}

// mockCompliance is read by websocket tests while the stream goroutine writes it.
type mockCompliance struct {
	mu           sync.Mutex
	stats        models.SemesterStats
	err          error
	calls        int
	lastSemester cycle.Semester
	lastYear     int
}

func (m *mockCompliance) SemesterStats(ctx context.Context, semester cycle.Semester, year int) (models.SemesterStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastSemester, m.lastYear = semester, year
	if err := semester.Validate(); err != nil {
		return nil, err
	}
	return m.stats, m.err
}

func (m *mockCompliance) period() (cycle.Semester, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastSemester, m.lastYear
}

// ---- Shared Test Helpers ----

// testNow is inside the first semester of 2024.
var testNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func newTestRouter(s *service.Service) *gin.Engine {
	if s.Authorization == nil {
		s.Authorization = newMockAuth()
	}
	h := NewHandler(s, nil, WithClock(func() time.Time { return testNow }))
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// perform sends body (JSON when non-empty) with the bearer token and records the response.
func perform(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, vv := range authHeader(token) {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
