// Package habit implements read access to habits and their categories.
// Habit CRUD lives elsewhere; this repository serves admission checks
// and dashboard aggregation.
package habit

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

var habitColumns = []string{
	"h.id", "h.user_id", "h.category_id", "h.title", "h.description",
	"h.start_date", "h.is_active", "h.frequency", "h.created_at", "h.updated_at",
}

// Repo provides habit reads backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new habit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Single habit
// ---------------------------------------------------------------------------

// GetByID returns a habit owned by userID.
// Returns domain.ErrNotFound if the habit does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, habitID uuid.UUID) (*domain.Habit, error) {
	return r.get(ctx, userID, habitID, "")
}

// GetByIDForShare is GetByID with a FOR SHARE row lock. Inside a
// transaction the habit cannot be updated or deleted until it ends.
func (r *Repo) GetByIDForShare(ctx context.Context, userID, habitID uuid.UUID) (*domain.Habit, error) {
	return r.get(ctx, userID, habitID, "FOR SHARE")
}

func (r *Repo) get(ctx context.Context, userID, habitID uuid.UUID, suffix string) (*domain.Habit, error) {
	query := postgres.Builder().
		Select(habitColumns...).
		From("habits h").
		Where(sq.Eq{"h.id": habitID, "h.user_id": userID})
	if suffix != "" {
		query = query.Suffix(suffix)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build habit query: %w", err)
	}

	var row habitRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "habit", habitID)
	}

	h := row.toDomain()
	return &h, nil
}

// ---------------------------------------------------------------------------
// Aggregation reads
// ---------------------------------------------------------------------------

// CountHabits counts the user's habits, optionally only active ones.
func (r *Repo) CountHabits(ctx context.Context, userID uuid.UUID, activeOnly bool) (int, error) {
	where := sq.Eq{"user_id": userID}
	if activeOnly {
		where["is_active"] = true
	}

	sql, args, err := postgres.Builder().
		Select("count(*)").
		From("habits").
		Where(where).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "habits of user", userID)
	}
	return count, nil
}

const listWithCategorySQL = `
SELECT h.id, h.title, h.is_active,
       c.id AS category_id, c.name AS category_name, c.color AS category_color
FROM habits h
LEFT JOIN categories c ON c.id = h.category_id
WHERE h.user_id = $1
ORDER BY h.created_at, h.id`

// ListWithCategory returns every habit of the user with its category, if any.
func (r *Repo) ListWithCategory(ctx context.Context, userID uuid.UUID) ([]domain.HabitWithCategory, error) {
	var rows []categorizedRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listWithCategorySQL, userID); err != nil {
		return nil, postgres.MapError(err, "habits of user", userID)
	}

	out := make([]domain.HabitWithCategory, len(rows))
	for i, row := range rows {
		out[i] = domain.HabitWithCategory{
			ID:       row.ID,
			Title:    row.Title,
			IsActive: row.IsActive,
			Category: row.category(),
		}
	}
	return out, nil
}

const listWithCheckInsSQL = `
SELECT h.id, h.title, h.description,
       c.id AS category_id, c.name AS category_name, c.color AS category_color,
       ci.id AS check_in_id, ci.date AS check_in_date, ci.note AS check_in_note,
       ci.created_at AS check_in_created_at, ci.updated_at AS check_in_updated_at
FROM habits h
LEFT JOIN categories c ON c.id = h.category_id
LEFT JOIN check_ins ci ON ci.habit_id = h.id AND ci.date BETWEEN $2 AND $3
WHERE h.user_id = $1 AND h.is_active
ORDER BY h.created_at, h.id, ci.date, ci.created_at`

// ListWithCheckIns returns the user's active habits, each with its
// check-ins dated within [from, to]. One query, grouped in memory.
func (r *Repo) ListWithCheckIns(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.HabitWithCheckIns, error) {
	var rows []habitCheckInRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listWithCheckInsSQL, userID, from, to); err != nil {
		return nil, postgres.MapError(err, "habits of user", userID)
	}

	out := make([]domain.HabitWithCheckIns, 0)
	index := make(map[uuid.UUID]int)
	for _, row := range rows {
		i, seen := index[row.ID]
		if !seen {
			i = len(out)
			index[row.ID] = i
			out = append(out, domain.HabitWithCheckIns{
				ID:          row.ID,
				Title:       row.Title,
				Description: row.Description,
				Category:    row.category(),
				CheckIns:    []domain.CheckIn{},
			})
		}
		if row.CheckInID == nil {
			continue
		}
		out[i].CheckIns = append(out[i].CheckIns, domain.CheckIn{
			ID:        *row.CheckInID,
			HabitID:   row.ID,
			UserID:    userID,
			Date:      *row.CheckInDate,
			Note:      row.CheckInNote,
			CreatedAt: *row.CheckInCreatedAt,
			UpdatedAt: *row.CheckInUpdatedAt,
		})
	}
	return out, nil
}
