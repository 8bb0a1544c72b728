package rest

import (
	"net/http"

	"github.com/heartmarshall/habitflow-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health    *HealthHandler
	CheckIns  *CheckInHandler
	Dashboard *DashboardHandler
}

// NewRouter mounts the API under Go 1.22 method+path patterns.
// global wraps every route; writeLimit additionally wraps check-in mutations.
func NewRouter(h Handlers, global, writeLimit middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	write := func(fn http.HandlerFunc) http.Handler { return writeLimit(fn) }

	mux.Handle("POST /api/habits/{habitID}/check-ins", write(h.CheckIns.Create))
	mux.HandleFunc("GET /api/habits/{habitID}/check-ins", h.CheckIns.List)
	mux.Handle("PATCH /api/check-ins/{checkInID}", write(h.CheckIns.UpdateNote))
	mux.Handle("DELETE /api/check-ins/{checkInID}", write(h.CheckIns.Delete))
	mux.HandleFunc("GET /api/habits/{habitID}/streak", h.Dashboard.HabitStreak)

	mux.HandleFunc("GET /api/dashboard/summary", h.Dashboard.Summary)
	mux.HandleFunc("GET /api/dashboard/today", h.Dashboard.Today)
	mux.HandleFunc("GET /api/dashboard/statistics", h.Dashboard.Statistics)

	return global(mux)
}
