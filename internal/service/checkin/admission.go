package checkin

import (
	"time"

	"github.com/heartmarshall/habitflow-backend/internal/calendar"
	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// Admit decides whether a check-in for habit on dateText may be written and
// returns the calendar day to persist. A nil or empty dateText means today.
//
// Admit performs no writes. Two concurrent callers can both be admitted for
// the same habit and day; the storage uniqueness constraint settles that race.
func Admit(habit domain.Habit, dateText *string, now time.Time) (time.Time, error) {
	if !habit.IsActive {
		return time.Time{}, domain.ErrHabitInactive
	}

	day := calendar.Today(now)
	if dateText != nil && *dateText != "" {
		parsed, err := calendar.Parse(*dateText)
		if err != nil {
			return time.Time{}, err
		}
		day = parsed
	}

	start := calendar.Truncate(habit.StartDate)
	if day.Before(start) {
		return time.Time{}, &domain.BeforeStartError{StartDate: calendar.Format(start)}
	}

	return day, nil
}
