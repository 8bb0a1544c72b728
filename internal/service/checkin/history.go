package checkin

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/habitflow-backend/internal/calendar"
	"github.com/heartmarshall/habitflow-backend/internal/domain"
	"github.com/heartmarshall/habitflow-backend/pkg/ctxutil"
)

// History returns the check-ins of one habit, newest first.
func (s *Service) History(ctx context.Context, input HistoryInput) ([]domain.CheckIn, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.validate(s.historyMaxLimit); err != nil {
		return nil, err
	}

	from, err := parseOptionalDay(input.From)
	if err != nil {
		return nil, err
	}
	to, err := parseOptionalDay(input.To)
	if err != nil {
		return nil, err
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, domain.NewValidationError("from", "must not be after to")
	}

	// Ownership check: a foreign habit is reported as not found.
	if _, err := s.habits.GetByID(ctx, userID, input.HabitID); err != nil {
		return nil, fmt.Errorf("get habit: %w", err)
	}

	limit := input.Limit
	if limit == 0 {
		limit = min(DefaultHistoryLimit, s.historyMaxLimit)
	}

	checkIns, err := s.checkIns.ListByHabit(ctx, userID, domain.CheckInFilter{
		HabitID: input.HabitID,
		From:    from,
		To:      to,
		Limit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}

	s.log.InfoContext(ctx, "check-in history retrieved",
		slog.String("user_id", userID.String()),
		slog.String("habit_id", input.HabitID.String()),
		slog.Int("count", len(checkIns)),
	)

	return checkIns, nil
}

func parseOptionalDay(text *string) (*time.Time, error) {
	if text == nil || *text == "" {
		return nil, nil
	}
	day, err := calendar.Parse(*text)
	if err != nil {
		return nil, err
	}
	return &day, nil
}
