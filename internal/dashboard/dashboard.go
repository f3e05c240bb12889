// Package dashboard serves the embedded single-page agent console and
// its supporting metrics endpoints. The figures behind the dashboard
// tab are illustrative demo data, matching the rest of the synthetic
// environment; only the session counter is live.
package dashboard

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/tlogic-co/pqrs-service/internal/cases"
)

// Dashboard provides the agent-facing web console.
type Dashboard struct {
	store  *cases.Store
	logger *zap.Logger
}

// New creates a new Dashboard.
func New(store *cases.Store, logger *zap.Logger) *Dashboard {
	return &Dashboard{store: store, logger: logger}
}

// RegisterRoutes mounts all dashboard routes onto the given router.
func (d *Dashboard) RegisterRoutes(r chi.Router) {
	r.Get("/", d.ServeIndex)
	r.Get("/api/dashboard/stats", d.handleStats)
	r.Get("/api/dashboard/history", d.handleHistory)
}
