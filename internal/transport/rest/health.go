package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/heartmarshall/pantrywatch-backend/internal/service/notification"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// schedulerStatus reports the notification scheduler's state.
type schedulerStatus interface {
	Running() bool
	Entries() []notification.TriggerStatus
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db        dbPinger
	scheduler schedulerStatus
	version   string
}

// NewHealthHandler creates a HealthHandler. scheduler may be nil, in which
// case no scheduler component is reported.
func NewHealthHandler(db dbPinger, scheduler schedulerStatus, version string) *HealthHandler {
	return &HealthHandler{db: db, scheduler: scheduler, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status   string                       `json:"status"`
	Latency  string                       `json:"latency,omitempty"`
	Triggers []notification.TriggerStatus `json:"triggers,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings DB: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check. Pings DB with latency measurement, reports
// scheduler triggers and includes version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	start := time.Now()
	err := h.db.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		components["database"] = CompStatus{Status: "down"}
		overallStatus = "down"
	} else {
		components["database"] = CompStatus{
			Status:  "ok",
			Latency: latency.String(),
		}
	}

	// A stopped scheduler degrades notifications but the API still serves.
	if h.scheduler != nil {
		sched := CompStatus{Status: "ok", Triggers: h.scheduler.Entries()}
		if !h.scheduler.Running() {
			sched.Status = "stopped"
			if overallStatus == "ok" {
				overallStatus = "degraded"
			}
		}
		components["scheduler"] = sched
	}

	status := http.StatusOK
	if overallStatus == "down" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}
