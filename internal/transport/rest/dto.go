package rest

import (
	"time"

	"github.com/heartmarshall/habitflow-backend/internal/calendar"
	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// Nullable fields are pointers without omitempty so clients always see an
// explicit null.

type checkInRequest struct {
	Date *string `json:"date"`
	Note *string `json:"note"`
}

type updateNoteRequest struct {
	Note *string `json:"note"`
}

type checkInResponse struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habitId"`
	Date      string    `json:"date"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toCheckInResponse(c *domain.CheckIn) checkInResponse {
	return checkInResponse{
		ID:        c.ID.String(),
		HabitID:   c.HabitID.String(),
		Date:      calendar.Format(c.Date),
		Note:      c.Note,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type checkInListResponse struct {
	Items []checkInResponse `json:"items"`
}

type summaryResponse struct {
	TotalHabits   int `json:"totalHabits"`
	ActiveHabits  int `json:"activeHabits"`
	TotalCheckIns int `json:"totalCheckIns"`
	Streak        int `json:"streak"`
}

type categoryResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

func toCategoryResponse(c *domain.CategoryRef) *categoryResponse {
	if c == nil {
		return nil
	}
	return &categoryResponse{ID: c.ID.String(), Name: c.Name, Color: c.Color}
}

type todayHabitResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	Category    *categoryResponse `json:"category"`
	IsCompleted bool              `json:"isCompleted"`
	CheckInTime *time.Time        `json:"checkInTime"`
}

type todayResponse struct {
	Habits []todayHabitResponse `json:"habits"`
}

type dayCountResponse struct {
	Date     string `json:"date"`
	CheckIns int    `json:"checkIns"`
}

type statisticsResponse struct {
	HabitsByCategory  map[string]int     `json:"habitsByCategory"`
	Last7Days         []dayCountResponse `json:"last7Days"`
	MonthlyCompletion int                `json:"monthlyCompletion"`
	WeeklyCompletion  int                `json:"weeklyCompletion"`
}

type streakResponse struct {
	HabitID string `json:"habitId"`
	Streak  int    `json:"streak"`
	AsOf    string `json:"asOf"`
}
