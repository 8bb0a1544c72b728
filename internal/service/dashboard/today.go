package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/habitflow-backend/internal/calendar"
	"github.com/heartmarshall/habitflow-backend/internal/domain"
	"github.com/heartmarshall/habitflow-backend/pkg/ctxutil"
)

// Today lists the user's habits with their completion state for today.
func (s *Service) Today(ctx context.Context) ([]domain.TodayHabit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	today := calendar.Today(s.clock.Now())

	habits, err := s.habits.ListWithCheckIns(ctx, userID, today, today)
	if err != nil {
		return nil, fmt.Errorf("list habits with check-ins: %w", err)
	}

	view := BuildTodayView(habits, today)

	completed := 0
	for _, h := range view {
		if h.IsCompleted {
			completed++
		}
	}
	s.log.InfoContext(ctx, "today view loaded",
		slog.String("user_id", userID.String()),
		slog.Int("habits", len(view)),
		slog.Int("completed", completed),
	)

	return view, nil
}
