//go:build integration

package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	habit := SeedHabit(t, pool, uuid.New())
	SeedCheckIn(t, pool, habit, Day(2024, 2, 1))

	var count int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM check_ins WHERE habit_id = $1`, habit.ID,
	).Scan(&count)
	if err != nil {
		t.Fatalf("expected check-in in DB, got error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 check-in, got %d", count)
	}
}
