// Package checkin implements check-in persistence using PostgreSQL.
// The (habit_id, date) unique constraint is the authoritative guard
// against two check-ins for the same day.
package checkin

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitflow-backend/internal/calendar"
	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

var columns = []string{"id", "habit_id", "user_id", "date", "note", "created_at", "updated_at"}

// Repo provides check-in persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new check-in repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a check-in. A second check-in for the same habit and day
// fails with domain.ErrAlreadyExists; an unknown habit with domain.ErrNotFound.
// Date must be a calendar day (UTC midnight).
func (r *Repo) Create(ctx context.Context, c *domain.CheckIn) (*domain.CheckIn, error) {
	if !calendar.IsCanonical(c.Date) {
		return nil, domain.NewValidationError("date", "must be a calendar day at UTC midnight")
	}

	sql, args, err := postgres.Builder().
		Insert("check_ins").
		Columns(columns...).
		Values(c.ID, c.HabitID, c.UserID, c.Date, c.Note, c.CreatedAt, c.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	var row checkInRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "check_in", c.ID)
	}

	created := row.toDomain()
	return &created, nil
}

// UpdateNote replaces the note and bumps updated_at. The date is never changed.
func (r *Repo) UpdateNote(ctx context.Context, userID, checkInID uuid.UUID, note *string) (*domain.CheckIn, error) {
	sql, args, err := postgres.Builder().
		Update("check_ins").
		Set("note", note).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": checkInID, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	var row checkInRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "check_in", checkInID)
	}

	updated := row.toDomain()
	return &updated, nil
}

const deleteSQL = `DELETE FROM check_ins WHERE id = $1 AND user_id = $2`

// Delete removes a check-in. Returns domain.ErrNotFound if it does not
// exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, checkInID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, checkInID, userID)
	if err != nil {
		return postgres.MapError(err, "check_in", checkInID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("check_in %s: %w", checkInID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a check-in owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, checkInID uuid.UUID) (*domain.CheckIn, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("check_ins").
		Where(sq.Eq{"id": checkInID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var row checkInRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "check_in", checkInID)
	}

	c := row.toDomain()
	return &c, nil
}

// ListByHabit returns a habit's check-ins, newest first, filtered by the
// optional inclusive day bounds.
func (r *Repo) ListByHabit(ctx context.Context, userID uuid.UUID, filter domain.CheckInFilter) ([]domain.CheckIn, error) {
	query := postgres.Builder().
		Select(columns...).
		From("check_ins").
		Where(sq.Eq{"habit_id": filter.HabitID, "user_id": userID}).
		OrderBy("date DESC")
	if filter.From != nil {
		query = query.Where(sq.GtOrEq{"date": *filter.From})
	}
	if filter.To != nil {
		query = query.Where(sq.LtOrEq{"date": *filter.To})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var rows []checkInRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "check_ins of habit", filter.HabitID)
	}

	out := make([]domain.CheckIn, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Aggregation reads
// ---------------------------------------------------------------------------

// CountCheckIns counts the user's check-ins, optionally only those dated
// on or after since.
func (r *Repo) CountCheckIns(ctx context.Context, userID uuid.UUID, since *time.Time) (int, error) {
	query := postgres.Builder().
		Select("count(*)").
		From("check_ins").
		Where(sq.Eq{"user_id": userID})
	if since != nil {
		query = query.Where(sq.GtOrEq{"date": *since})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "check_ins of user", userID)
	}
	return count, nil
}

// ListCheckInDays returns the date of every check-in of the user dated on
// or after since, newest first. A day appears once per check-in.
func (r *Repo) ListCheckInDays(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	return r.listDays(ctx, sq.Eq{"user_id": userID}, since, userID)
}

// ListHabitCheckInDays is ListCheckInDays restricted to one habit.
func (r *Repo) ListHabitCheckInDays(ctx context.Context, userID, habitID uuid.UUID, since time.Time) ([]time.Time, error) {
	return r.listDays(ctx, sq.Eq{"user_id": userID, "habit_id": habitID}, since, habitID)
}

func (r *Repo) listDays(ctx context.Context, where sq.Eq, since time.Time, key uuid.UUID) ([]time.Time, error) {
	sql, args, err := postgres.Builder().
		Select("date").
		From("check_ins").
		Where(where).
		Where(sq.GtOrEq{"date": since}).
		OrderBy("date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var days []time.Time
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &days, sql, args...); err != nil {
		return nil, postgres.MapError(err, "check_in days", key)
	}
	for i := range days {
		days[i] = days[i].UTC()
	}
	return days, nil
}
