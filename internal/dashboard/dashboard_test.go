package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/tlogic-co/pqrs-service/internal/cases"
)

func testRouter(t *testing.T) (*cases.Store, chi.Router) {
	t.Helper()
	store := cases.NewStore()
	d := New(store, zap.NewNop())
	r := chi.NewRouter()
	d.RegisterRoutes(r)
	return store, r
}

func TestServeIndex(t *testing.T) {
	_, r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{"Generar PQRS", "/ws/generate", "/api/dashboard/stats"} {
		if !strings.Contains(body, want) {
			t.Errorf("index is missing %q", want)
		}
	}
}

func TestStats(t *testing.T) {
	store, r := testRouter(t)
	store.CreateSession()
	store.CreateSession()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var stats statsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if stats.GeneratedToday != 28 || stats.ResolvedPct != 96 {
		t.Errorf("unexpected demo metrics: %+v", stats)
	}
	if stats.LiveSessions != 2 {
		t.Errorf("live_sessions = %d, want 2", stats.LiveSessions)
	}
	if len(stats.TrendMonths) != 6 || len(stats.TrendValues) != 6 {
		t.Errorf("trend series should have 6 points")
	}
	if stats.ByCategory["P"] != 45 || stats.ByCategory["S"] != 12 {
		t.Errorf("unexpected category split: %v", stats.ByCategory)
	}
}

func TestHistory(t *testing.T) {
	_, r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/history", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Rows []historyRow `json:"rows"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(body.Rows) != 30 {
		t.Fatalf("rows = %d, want 30", len(body.Rows))
	}

	first := body.Rows[0]
	if first.CaseID != "VEO-R-20241201-080000" {
		t.Errorf("first case id = %q", first.CaseID)
	}
	if first.Category != "Reclamo" || first.Contract != "1234567890" {
		t.Errorf("unexpected first row: %+v", first)
	}
	if body.Rows[29].Status != "En proceso" || body.Rows[0].Status != "Completada" {
		t.Errorf("status split is wrong")
	}

	// Deterministic output across requests.
	again := demoHistory()
	if again[7] != body.Rows[7] {
		t.Errorf("history is not deterministic: %+v vs %+v", again[7], body.Rows[7])
	}
}
