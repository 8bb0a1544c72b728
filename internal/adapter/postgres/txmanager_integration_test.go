//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/habitflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitflow-backend/internal/adapter/postgres/checkin"
	"github.com/heartmarshall/habitflow-backend/internal/adapter/postgres/habit"
	"github.com/heartmarshall/habitflow-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

func countCheckIns(t *testing.T, pool *pgxpool.Pool, habitID uuid.UUID) int {
	t.Helper()
	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM check_ins WHERE habit_id = $1`, habitID,
	).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestRunInTx_CommitAndRollback(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)
	habits := habit.New(pool)
	checkIns := checkin.New(pool)
	h := testhelper.SeedHabit(t, pool, uuid.New())

	insert := func(ctx context.Context, day int) error {
		locked, err := habits.GetByIDForShare(ctx, h.UserID, h.ID)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		_, err = checkIns.Create(ctx, &domain.CheckIn{
			ID: uuid.New(), HabitID: locked.ID, UserID: locked.UserID,
			Date: testhelper.Day(2024, 4, day), CreatedAt: now, UpdatedAt: now,
		})
		return err
	}

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		return insert(ctx, 1)
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countCheckIns(t, pool, h.ID))

	sentinel := errors.New("rejected after insert")
	err = tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if err := insert(ctx, 2); err != nil {
			return err
		}
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, countCheckIns(t, pool, h.ID))
}

func TestMigrate_IsIdempotent(t *testing.T) {
	pool := testhelper.SetupTestDB(t)

	results, err := postgres.Migrate(context.Background(), pool.Config().ConnString(), false)
	require.NoError(t, err)
	assert.Empty(t, results)
}
