package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

type dashboardService interface {
	Summary(ctx context.Context) (domain.Summary, error)
	Today(ctx context.Context) ([]domain.TodayHabit, error)
	Statistics(ctx context.Context) (domain.Statistics, error)
	HabitStreak(ctx context.Context, habitID uuid.UUID) (domain.HabitStreak, error)
}

// DashboardHandler serves the dashboard read endpoints.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

// Summary handles GET /api/dashboard/summary.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Summary(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		TotalHabits:   s.TotalHabits,
		ActiveHabits:  s.ActiveHabits,
		TotalCheckIns: s.TotalCheckIns,
		Streak:        s.Streak,
	})
}

// Today handles GET /api/dashboard/today.
func (h *DashboardHandler) Today(w http.ResponseWriter, r *http.Request) {
	habits, err := h.svc.Today(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	resp := todayResponse{Habits: make([]todayHabitResponse, 0, len(habits))}
	for _, th := range habits {
		resp.Habits = append(resp.Habits, todayHabitResponse{
			ID:          th.ID.String(),
			Title:       th.Title,
			Description: th.Description,
			Category:    toCategoryResponse(th.Category),
			IsCompleted: th.IsCompleted,
			CheckInTime: th.CheckInTime,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Statistics handles GET /api/dashboard/statistics.
func (h *DashboardHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Statistics(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	resp := statisticsResponse{
		HabitsByCategory:  st.HabitsByCategory,
		Last7Days:         make([]dayCountResponse, 0, len(st.Last7Days)),
		MonthlyCompletion: st.MonthlyCompletion,
		WeeklyCompletion:  st.WeeklyCompletion,
	}
	if resp.HabitsByCategory == nil {
		resp.HabitsByCategory = map[string]int{}
	}
	for _, d := range st.Last7Days {
		resp.Last7Days = append(resp.Last7Days, dayCountResponse{Date: d.Date, CheckIns: d.CheckIns})
	}
	writeJSON(w, http.StatusOK, resp)
}

// HabitStreak handles GET /api/habits/{habitID}/streak.
func (h *DashboardHandler) HabitStreak(w http.ResponseWriter, r *http.Request) {
	habitID, err := pathUUID(r, "habitID")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	st, err := h.svc.HabitStreak(r.Context(), habitID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, streakResponse{
		HabitID: st.HabitID.String(),
		Streak:  st.Streak,
		AsOf:    st.AsOf,
	})
}
