package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/calendar"
	"github.com/heartmarshall/habitflow-backend/internal/domain"
	"github.com/heartmarshall/habitflow-backend/pkg/ctxutil"
)

// HabitStreak returns the current streak of one habit owned by the user.
func (s *Service) HabitStreak(ctx context.Context, habitID uuid.UUID) (domain.HabitStreak, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.HabitStreak{}, domain.ErrUnauthorized
	}

	if habitID == uuid.Nil {
		return domain.HabitStreak{}, domain.NewValidationError("habit_id", "required")
	}

	if _, err := s.habits.GetByID(ctx, userID, habitID); err != nil {
		return domain.HabitStreak{}, fmt.Errorf("get habit: %w", err)
	}

	today := calendar.Today(s.clock.Now())

	days, err := s.checkIns.ListHabitCheckInDays(ctx, userID, habitID, calendar.AddDays(today, -s.policy.StreakLookback))
	if err != nil {
		return domain.HabitStreak{}, fmt.Errorf("list habit check-in days: %w", err)
	}

	streak := ComputeStreak(NewDaySet(days...), today, s.policy.StreakLookback)

	s.log.InfoContext(ctx, "habit streak loaded",
		slog.String("user_id", userID.String()),
		slog.String("habit_id", habitID.String()),
		slog.Int("streak", streak),
	)

	return domain.HabitStreak{HabitID: habitID, Streak: streak, AsOf: calendar.Format(today)}, nil
}
