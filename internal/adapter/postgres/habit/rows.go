package habit

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

type habitRow struct {
	ID          uuid.UUID  `db:"id"`
	UserID      uuid.UUID  `db:"user_id"`
	CategoryID  *uuid.UUID `db:"category_id"`
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	StartDate   time.Time  `db:"start_date"`
	IsActive    bool       `db:"is_active"`
	Frequency   string     `db:"frequency"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r habitRow) toDomain() domain.Habit {
	return domain.Habit{
		ID:          r.ID,
		UserID:      r.UserID,
		CategoryID:  r.CategoryID,
		Title:       r.Title,
		Description: r.Description,
		StartDate:   r.StartDate.UTC(),
		IsActive:    r.IsActive,
		Frequency:   domain.Frequency(r.Frequency),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// categoryColumns is embedded by rows that LEFT JOIN categories.
type categoryColumns struct {
	CategoryID    *uuid.UUID `db:"category_id"`
	CategoryName  *string    `db:"category_name"`
	CategoryColor *string    `db:"category_color"`
}

func (c categoryColumns) category() *domain.CategoryRef {
	if c.CategoryID == nil || c.CategoryName == nil {
		return nil
	}
	return &domain.CategoryRef{ID: *c.CategoryID, Name: *c.CategoryName, Color: c.CategoryColor}
}

type categorizedRow struct {
	ID       uuid.UUID `db:"id"`
	Title    string    `db:"title"`
	IsActive bool      `db:"is_active"`
	categoryColumns
}

type habitCheckInRow struct {
	ID          uuid.UUID `db:"id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	categoryColumns

	CheckInID        *uuid.UUID `db:"check_in_id"`
	CheckInDate      *time.Time `db:"check_in_date"`
	CheckInNote      *string    `db:"check_in_note"`
	CheckInCreatedAt *time.Time `db:"check_in_created_at"`
	CheckInUpdatedAt *time.Time `db:"check_in_updated_at"`
}
