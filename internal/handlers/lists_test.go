package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"sigma/internal/models"
	"sigma/internal/service"
)

func TestListHandlers_SaveAndGet(t *testing.T) {
	wl := &mockWorklist{list: &models.MonthlyList{
		ID: "l1", Month: 3, Year: 2024,
		Items: []models.ListItem{{ElementID: "cv-001", InstallationType: models.InstallationCircuits, Completed: true}},
	}}
	r := newTestRouter(&service.Service{Worklist: wl})

	w := perform(r, http.MethodPut, "/api/v1/lists", `{"month":3,"year":2024,"items":[{"elementId":"cv-001","installationType":"CIRCUITOS","completed":false}]}`, agentToken)
	if w.Code != http.StatusOK {
		t.Fatalf("save status=%d body=%s", w.Code, w.Body.String())
	}
	if len(wl.saved) != 1 || len(wl.saved[0].Items) != 1 {
		t.Fatalf("saved=%+v", wl.saved)
	}

	if w := perform(r, http.MethodPut, "/api/v1/lists", `{"month":13,"year":2024}`, agentToken); w.Code != http.StatusBadRequest {
		t.Fatalf("bad period: got %d, want 400", w.Code)
	}

	w = perform(r, http.MethodGet, "/api/v1/lists/2024/3", "", agentToken)
	if w.Code != http.StatusOK {
		t.Fatalf("get status=%d", w.Code)
	}
	if wl.lastMonth != 3 || wl.lastYear != 2024 {
		t.Fatalf("get period %d/%d", wl.lastMonth, wl.lastYear)
	}
	var got models.MonthlyList
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if len(got.Items) != 1 || !got.Items[0].Completed {
		t.Fatalf("list=%+v", got)
	}

	if w := perform(r, http.MethodGet, "/api/v1/lists/2024/march", "", agentToken); w.Code != http.StatusBadRequest {
		t.Fatalf("bad month: got %d, want 400", w.Code)
	}
}

func TestListHandlers_MissingListIs404(t *testing.T) {
	r := newTestRouter(&service.Service{Worklist: &mockWorklist{}})

	w := perform(r, http.MethodGet, "/api/v1/lists/2024/4", "", agentToken)
	if w.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", w.Code)
	}
}

func TestListHandlers_Draft(t *testing.T) {
	wl := &mockWorklist{}
	r := newTestRouter(&service.Service{Worklist: wl})

	w := perform(r, http.MethodPost, "/api/v1/lists/draft", `{"month":4,"year":2024,"stationId":"dos-hermanas","types":["MOTORES"],"pendingOnly":true}`, agentToken)
	if w.Code != http.StatusOK {
		t.Fatalf("draft status=%d body=%s", w.Code, w.Body.String())
	}
	p := wl.lastDraft
	if p.Month != 4 || p.StationID != "dos-hermanas" || len(p.Types) != 1 || p.Types[0] != models.InstallationMotors || !p.PendingOnly {
		t.Fatalf("draft params=%+v", p)
	}
}
