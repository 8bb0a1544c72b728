package domain

import (
	"time"

	"github.com/google/uuid"
)

// CheckInFilter selects check-ins of one habit within an optional day range.
// From and To are calendar days, both inclusive.
type CheckInFilter struct {
	HabitID uuid.UUID
	From    *time.Time
	To      *time.Time
	Limit   int
}
