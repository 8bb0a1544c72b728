package dashboard

import (
	"time"

	"github.com/heartmarshall/habitflow-backend/internal/calendar"
)

// DefaultStreakLookback is the streak cap used when no policy is configured.
const DefaultStreakLookback = 60

// DaySet is a set of calendar days keyed by calendar.Key.
type DaySet map[string]struct{}

// NewDaySet collects days into a set. Several instants on the same
// calendar day collapse into one entry.
func NewDaySet(days ...time.Time) DaySet {
	set := make(DaySet, len(days))
	for _, d := range days {
		set.Add(d)
	}
	return set
}

// Add inserts the calendar day containing d.
func (s DaySet) Add(d time.Time) {
	s[calendar.Key(d)] = struct{}{}
}

// Has reports whether the calendar day containing d is present.
func (s DaySet) Has(d time.Time) bool {
	_, ok := s[calendar.Key(d)]
	return ok
}

// ComputeStreak counts consecutive days with a check-in, walking backward
// from today. The walk never inspects days after today and stops after
// maxLookback days, so the result is at most maxLookback.
func ComputeStreak(days DaySet, today time.Time, maxLookback int) int {
	if len(days) == 0 || maxLookback <= 0 {
		return 0
	}

	streak := 0
	current := calendar.Truncate(today)
	for streak < maxLookback && days.Has(current) {
		streak++
		current = calendar.AddDays(current, -1)
	}
	return streak
}
