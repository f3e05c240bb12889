package dashboard

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type statsResponse struct {
	GeneratedToday int            `json:"generated_today"`
	AvgMinutes     float64        `json:"avg_minutes"`
	ResolvedPct    int            `json:"resolved_pct"`
	Satisfaction   float64        `json:"satisfaction"`
	LiveSessions   int            `json:"live_sessions"`
	ByCategory     map[string]int `json:"by_category"`
	TrendMonths    []string       `json:"trend_months"`
	TrendValues    []int          `json:"trend_values"`
}

type historyRow struct {
	CaseID       string `json:"case_id"`
	Category     string `json:"category"`
	Date         string `json:"date"`
	Customer     string `json:"customer"`
	Contract     string `json:"contract"`
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
}

// handleStats returns the dashboard metrics. All figures except the
// live session count are fixed demo values.
func (d *Dashboard) handleStats(w http.ResponseWriter, r *http.Request) {
	d.writeJSON(w, http.StatusOK, statsResponse{
		GeneratedToday: 28,
		AvgMinutes:     2.3,
		ResolvedPct:    96,
		Satisfaction:   4.8,
		LiveSessions:   d.store.SessionCount(),
		ByCategory:     map[string]int{"P": 45, "Q": 28, "R": 35, "S": 12},
		TrendMonths:    []string{"Ene", "Feb", "Mar", "Abr", "May", "Jun"},
		TrendValues:    []int{120, 135, 128, 142, 155, 148},
	})
}

// handleHistory returns the 30-row demo history table.
func (d *Dashboard) handleHistory(w http.ResponseWriter, r *http.Request) {
	d.writeJSON(w, http.StatusOK, map[string]any{"rows": demoHistory()})
}

var historyLabels = map[string]string{
	"P": "Petición",
	"Q": "Queja",
	"R": "Reclamo",
	"S": "Sugerencia",
}

// demoHistory builds the deterministic December demo table: categories
// cycle R,P,Q,S,R,P and timestamps follow fixed arithmetic on the row
// index, so the data is stable across requests.
func demoHistory() []historyRow {
	cycle := []string{"R", "P", "Q", "S", "R", "P"}
	start := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)

	rows := make([]historyRow, 0, 30)
	for i := 0; i < 30; i++ {
		cat := cycle[i%len(cycle)]
		day := i%30 + 1
		hour := 8 + i%10
		minute := i * 2 % 60
		second := i * 3 % 60

		status := "Completada"
		if i >= 28 {
			status = "En proceso"
		}

		rows = append(rows, historyRow{
			CaseID:       fmt.Sprintf("VEO-%s-202412%02d-%02d%02d%02d", cat, day, hour, minute, second),
			Category:     historyLabels[cat],
			Date:         start.AddDate(0, 0, i).Format("2006-01-02"),
			Customer:     fmt.Sprintf("Cliente %d", i+1),
			Contract:     fmt.Sprintf("%d", 1234567890+i),
			Status:       status,
			ResponseTime: fmt.Sprintf("%.1f min", 1.5+float64(i*7%26)/10),
		})
	}
	return rows
}

func (d *Dashboard) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		d.logger.Error("encoding dashboard response failed", zap.Error(err))
	}
}
