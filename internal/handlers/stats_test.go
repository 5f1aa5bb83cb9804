package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"sigma/internal/cycle"
	"sigma/internal/models"
	"sigma/internal/service"
)

func TestStatsHandlers_Semester(t *testing.T) {
	comp := &mockCompliance{stats: models.SemesterStats{models.InstallationCircuits: {Total: 6, Completed: 2}}}
	r := newTestRouter(&service.Service{Compliance: comp})

	w := perform(r, http.MethodGet, "/api/v1/stats/semester?semester=2&year=2023", "", agentToken)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if comp.lastSemester != cycle.Second || comp.lastYear != 2023 {
		t.Fatalf("period=%d/%d", comp.lastSemester, comp.lastYear)
	}
	var stats map[string]models.TypeStats
	_ = json.Unmarshal(w.Body.Bytes(), &stats)
	if stats["CIRCUITOS"] != (models.TypeStats{Total: 6, Completed: 2}) {
		t.Fatalf("stats=%v", stats)
	}

	// no query → semester containing the handler clock (March 2024)
	if w := perform(r, http.MethodGet, "/api/v1/stats/semester", "", agentToken); w.Code != http.StatusOK {
		t.Fatalf("default status=%d", w.Code)
	}
	if comp.lastSemester != cycle.First || comp.lastYear != 2024 {
		t.Fatalf("default period=%d/%d", comp.lastSemester, comp.lastYear)
	}

	if w := perform(r, http.MethodGet, "/api/v1/stats/semester?semester=3&year=2024", "", agentToken); w.Code != http.StatusBadRequest {
		t.Fatalf("invalid semester: got %d, want 400", w.Code)
	}
}

func TestStatsHandlers_Export(t *testing.T) {
	comp := &mockCompliance{stats: models.SemesterStats{models.InstallationMotors: {Total: 4, Completed: 1}}}
	r := newTestRouter(&service.Service{Compliance: comp})

	w := perform(r, http.MethodGet, "/api/v1/stats/semester/export?semester=1&year=2024&format=PDF", "", agentToken)
	if w.Code != http.StatusOK {
		t.Fatalf("pdf status=%d body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type=%q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
		t.Fatalf("body is not a PDF")
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "semester-2024-1.pdf") {
		t.Fatalf("content disposition=%q", cd)
	}

	w = perform(r, http.MethodGet, "/api/v1/stats/semester/export?semester=1&year=2024", "", agentToken)
	if w.Code != http.StatusOK || !strings.Contains(w.Header().Get("Content-Type"), "spreadsheetml") {
		t.Fatalf("xlsx status=%d content type=%q", w.Code, w.Header().Get("Content-Type"))
	}

	if w := perform(r, http.MethodGet, "/api/v1/stats/semester/export?format=csv", "", agentToken); w.Code != http.StatusBadRequest {
		t.Fatalf("csv: got %d, want 400", w.Code)
	}
}

func TestCycleHandler(t *testing.T) {
	cy := &mockCycle{reset: true}
	r := newTestRouter(&service.Service{Cycle: cy})

	if w := perform(r, http.MethodPost, "/api/v1/cycle/check", "", agentToken); w.Code != http.StatusForbidden {
		t.Fatalf("agent: got %d, want 403", w.Code)
	}
	if cy.calls != 0 {
		t.Fatalf("cycle check ran for a non-admin")
	}

	w := perform(r, http.MethodPost, "/api/v1/cycle/check", "", adminToken)
	if w.Code != http.StatusOK {
		t.Fatalf("admin status=%d", w.Code)
	}
	var out map[string]bool
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if !out["reset"] || cy.calls != 1 {
		t.Fatalf("out=%v calls=%d", out, cy.calls)
	}

	cy.err = errors.New("store down")
	if w := perform(r, http.MethodPost, "/api/v1/cycle/check", "", adminToken); w.Code != http.StatusInternalServerError {
		t.Fatalf("failure: got %d, want 500", w.Code)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	r := newTestRouter(&service.Service{})

	if w := perform(r, http.MethodGet, "/health", "", ""); w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}
	if w := perform(r, http.MethodGet, "/metrics", "", ""); w.Code != http.StatusOK {
		t.Fatalf("metrics status=%d", w.Code)
	}
}
