package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Day returns the UTC-midnight calendar day for y-m-d.
func Day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SeedCategory creates a category owned by userID (nil for a system category).
func SeedCategory(t *testing.T, pool *pgxpool.Pool, userID *uuid.UUID, name string) domain.Category {
	t.Helper()

	color := "#3b82f6"
	cat := domain.Category{
		ID:     uuid.New(),
		UserID: userID,
		Name:   name + " " + uniqueSuffix(),
		Color:  &color,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO categories (id, user_id, name, color) VALUES ($1, $2, $3, $4)`,
		cat.ID, cat.UserID, cat.Name, cat.Color,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}
	return cat
}

// HabitOption customizes a seeded habit.
type HabitOption func(*domain.Habit)

// WithCategory attaches the habit to a category.
func WithCategory(id uuid.UUID) HabitOption {
	return func(h *domain.Habit) { h.CategoryID = &id }
}

// Inactive marks the habit inactive.
func Inactive() HabitOption {
	return func(h *domain.Habit) { h.IsActive = false }
}

// StartingOn sets the habit start day.
func StartingOn(day time.Time) HabitOption {
	return func(h *domain.Habit) { h.StartDate = day }
}

// SeedHabit creates an active daily habit for userID starting 2024-01-01.
func SeedHabit(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, opts ...HabitOption) domain.Habit {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	h := domain.Habit{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "Habit " + uniqueSuffix(),
		StartDate: Day(2024, 1, 1),
		IsActive:  true,
		Frequency: domain.FrequencyDaily,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(&h)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO habits (id, user_id, category_id, title, description, start_date, is_active, frequency, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		h.ID, h.UserID, h.CategoryID, h.Title, h.Description, h.StartDate, h.IsActive, string(h.Frequency), h.CreatedAt, h.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedHabit: %v", err)
	}
	return h
}

// SeedCheckIn records a check-in for the habit on day.
func SeedCheckIn(t *testing.T, pool *pgxpool.Pool, habit domain.Habit, day time.Time) domain.CheckIn {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.CheckIn{
		ID:        uuid.New(),
		HabitID:   habit.ID,
		UserID:    habit.UserID,
		Date:      day,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO check_ins (id, habit_id, user_id, date, note, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.HabitID, c.UserID, c.Date, c.Note, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCheckIn: %v", err)
	}
	return c
}
