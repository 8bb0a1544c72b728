package checkin

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

type checkInRow struct {
	ID        uuid.UUID `db:"id"`
	HabitID   uuid.UUID `db:"habit_id"`
	UserID    uuid.UUID `db:"user_id"`
	Date      time.Time `db:"date"`
	Note      *string   `db:"note"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r checkInRow) toDomain() domain.CheckIn {
	return domain.CheckIn{
		ID:        r.ID,
		HabitID:   r.HabitID,
		UserID:    r.UserID,
		Date:      r.Date.UTC(),
		Note:      r.Note,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
