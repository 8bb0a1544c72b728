package domain

import (
	"time"

	"github.com/google/uuid"
)

// Summary holds the headline numbers of the habit dashboard.
type Summary struct {
	TotalHabits   int
	ActiveHabits  int
	TotalCheckIns int
	Streak        int
}

// TodayHabit is one row of the "today" view.
type TodayHabit struct {
	ID          uuid.UUID
	Title       string
	Description *string
	Category    *CategoryRef
	IsCompleted bool
	CheckInTime *time.Time
}

// DayCount holds the check-in count for one calendar day.
type DayCount struct {
	Date     string // YYYY-MM-DD
	CheckIns int
}

// Statistics holds the aggregated views shown on the statistics screen.
type Statistics struct {
	HabitsByCategory  map[string]int
	Last7Days         []DayCount
	MonthlyCompletion int
	WeeklyCompletion  int
}

// HabitStreak is the current streak of a single habit.
type HabitStreak struct {
	HabitID uuid.UUID
	Streak  int
	AsOf    string // YYYY-MM-DD
}
