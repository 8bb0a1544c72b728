package domain

import (
	"time"

	"github.com/google/uuid"
)

// Frequency is the declared cadence of a habit. Only DAILY is meaningful
// to streak computation; the other values are stored and passed through.
type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
	FrequencyYearly  Frequency = "YEARLY"
)

func (f Frequency) String() string { return string(f) }

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// Category groups habits for display. UserID is nil for system categories.
type Category struct {
	ID     uuid.UUID
	UserID *uuid.UUID
	Name   string
	Color  *string
}

// CategoryRef is the display part of a category attached to read models.
type CategoryRef struct {
	ID    uuid.UUID
	Name  string
	Color *string
}

// Habit is a recurring activity tracked by one user.
// StartDate is a calendar day (UTC midnight).
type Habit struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CategoryID  *uuid.UUID
	Title       string
	Description *string
	StartDate   time.Time
	IsActive    bool
	Frequency   Frequency
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CheckIn records that a habit was performed on a calendar day.
// At most one exists per (HabitID, Date).
type CheckIn struct {
	ID        uuid.UUID
	HabitID   uuid.UUID
	UserID    uuid.UUID
	Date      time.Time
	Note      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HabitWithCategory is the row shape used for category breakdowns.
type HabitWithCategory struct {
	ID       uuid.UUID
	Title    string
	Category *CategoryRef
	IsActive bool
}

// HabitWithCheckIns is a habit together with its check-ins inside a day range.
type HabitWithCheckIns struct {
	ID          uuid.UUID
	Title       string
	Description *string
	Category    *CategoryRef
	CheckIns    []CheckIn
}
