package service

import (
	"context"
	"strings"

	"sigma/internal/models"
	"sigma/internal/repository"

	"github.com/google/uuid"
)

type AgentService struct {
	guard  *repository.Guard
	agents repository.AgentRepo
}

func NewAgentService(guard *repository.Guard, agents repository.AgentRepo) *AgentService {
	return &AgentService{guard: guard, agents: agents}
}

func (s *AgentService) List(ctx context.Context) ([]models.Agent, error) {
	unlock := s.guard.Lock(repository.CollectionAgents)
	defer unlock()
	return s.agents.List(ctx)
}

// Create stores a new agent with an upper-cased name and no sector.
func (s *AgentService) Create(ctx context.Context, name string) (models.Agent, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return models.Agent{}, ErrAgentNameRequired
	}

	unlock := s.guard.Lock(repository.CollectionAgents)
	defer unlock()

	agents, err := s.agents.List(ctx)
	if err != nil {
		return models.Agent{}, err
	}
	a := models.Agent{ID: uuid.NewString(), Name: name}
	if err := s.agents.ReplaceAll(ctx, append(agents, a)); err != nil {
		return models.Agent{}, err
	}
	return a, nil
}

// AssignSector sets or clears (nil) the agent's sector. Unknown ids are a no-op.
func (s *AgentService) AssignSector(ctx context.Context, id string, sectorID *string) error {
	unlock := s.guard.Lock(repository.CollectionAgents)
	defer unlock()

	agents, err := s.agents.List(ctx)
	if err != nil {
		return err
	}
	found := false
	for i := range agents {
		if agents[i].ID == id {
			agents[i].AssignedSectorID = sectorID
			found = true
		}
	}
	if !found {
		return nil
	}
	return s.agents.ReplaceAll(ctx, agents)
}
