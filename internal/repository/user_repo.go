package repository

import (
	"context"

	"sigma/internal/models"
)

type UserRepository struct {
	users collection[models.User]
}

func NewUserRepository(store RecordStore) *UserRepository {
	return &UserRepository{users: collection[models.User]{store: store, name: CollectionUsers}}
}

// Ensure implementation of UserRepo interface at compile time.
var _ UserRepo = (*UserRepository)(nil)

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	return r.users.all(ctx)
}

func (r *UserRepository) ReplaceAll(ctx context.Context, users []models.User) error {
	return r.users.replace(ctx, users)
}

type AgentRepository struct {
	agents collection[models.Agent]
}

func NewAgentRepository(store RecordStore) *AgentRepository {
	return &AgentRepository{agents: collection[models.Agent]{store: store, name: CollectionAgents}}
}

var _ AgentRepo = (*AgentRepository)(nil)

func (r *AgentRepository) List(ctx context.Context) ([]models.Agent, error) {
	return r.agents.all(ctx)
}

func (r *AgentRepository) ReplaceAll(ctx context.Context, agents []models.Agent) error {
	return r.agents.replace(ctx, agents)
}
