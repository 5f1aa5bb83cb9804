package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"sigma/internal/models"
	"sigma/internal/service"
)

func TestUserHandlers_AdminOnly(t *testing.T) {
	users := &mockUsers{users: []models.PublicUser{{ID: "u1", Matricula: "srchicano", Role: models.RoleAdmin, IsApproved: true}}}
	r := newTestRouter(&service.Service{Users: users})

	if w := perform(r, http.MethodGet, "/api/v1/users", "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: got %d, want 401", w.Code)
	}
	if w := perform(r, http.MethodGet, "/api/v1/users", "", agentToken); w.Code != http.StatusForbidden {
		t.Fatalf("agent: got %d, want 403", w.Code)
	}

	w := perform(r, http.MethodGet, "/api/v1/users", "", adminToken)
	if w.Code != http.StatusOK {
		t.Fatalf("admin: got %d (body=%s)", w.Code, w.Body.String())
	}
	var got []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if len(got) != 1 || got[0]["matricula"] != "srchicano" {
		t.Fatalf("unexpected users: %v", got)
	}
	if _, leaked := got[0]["passwordHash"]; leaked {
		t.Fatalf("password hash must not be exposed: %v", got[0])
	}
}

func TestUserHandlers_ApproveRoleDelete(t *testing.T) {
	users := &mockUsers{}
	r := newTestRouter(&service.Service{Users: users})

	w := perform(r, http.MethodPost, "/api/v1/users/u2/approve", `{"approve":false}`, adminToken)
	if w.Code != http.StatusNoContent {
		t.Fatalf("approve status=%d body=%s", w.Code, w.Body.String())
	}
	if approve, ok := users.approved["u2"]; !ok || approve {
		t.Fatalf("expected rejection of u2, got %v", users.approved)
	}

	// approve is required, a missing field must not default to a rejection
	if w := perform(r, http.MethodPost, "/api/v1/users/u3/approve", `{}`, adminToken); w.Code != http.StatusBadRequest {
		t.Fatalf("missing approve: got %d, want 400", w.Code)
	}

	if w := perform(r, http.MethodPatch, "/api/v1/users/u2/role", `{"role":"admin"}`, adminToken); w.Code != http.StatusNoContent {
		t.Fatalf("role status=%d", w.Code)
	}
	if users.roles["u2"] != models.RoleAdmin {
		t.Fatalf("role not normalized: %v", users.roles)
	}
	if w := perform(r, http.MethodPatch, "/api/v1/users/u2/role", `{"role":"ROOT"}`, adminToken); w.Code != http.StatusBadRequest {
		t.Fatalf("invalid role: got %d, want 400", w.Code)
	}

	if w := perform(r, http.MethodDelete, "/api/v1/users/u2", "", adminToken); w.Code != http.StatusNoContent {
		t.Fatalf("delete status=%d", w.Code)
	}
	if len(users.deleted) != 1 || users.deleted[0] != "u2" {
		t.Fatalf("deleted=%v", users.deleted)
	}
}

func TestAgentHandlers(t *testing.T) {
	agents := &mockAgents{agents: []models.Agent{{ID: "a1", Name: "JUAN"}}}
	r := newTestRouter(&service.Service{Agents: agents})

	w := perform(r, http.MethodGet, "/api/v1/agents", "", agentToken)
	if w.Code != http.StatusOK {
		t.Fatalf("list status=%d", w.Code)
	}

	w = perform(r, http.MethodPost, "/api/v1/agents", `{"name":"juan perez"}`, agentToken)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status=%d body=%s", w.Code, w.Body.String())
	}
	var a models.Agent
	_ = json.Unmarshal(w.Body.Bytes(), &a)
	if a.Name != "JUAN PEREZ" {
		t.Fatalf("name=%q", a.Name)
	}

	w = perform(r, http.MethodPatch, "/api/v1/agents/a1/sector", `{"sectorId":"sector-sur"}`, agentToken)
	if w.Code != http.StatusNoContent {
		t.Fatalf("assign status=%d", w.Code)
	}
	if agents.lastID != "a1" || agents.lastSector == nil || *agents.lastSector != "sector-sur" {
		t.Fatalf("assign got id=%q sector=%v", agents.lastID, agents.lastSector)
	}

	w = perform(r, http.MethodPatch, "/api/v1/agents/a1/sector", `{"sectorId":null}`, agentToken)
	if w.Code != http.StatusNoContent || agents.lastSector != nil {
		t.Fatalf("unassign status=%d sector=%v", w.Code, agents.lastSector)
	}
}
