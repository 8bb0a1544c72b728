package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/habitflow-backend/internal/calendar"
	"github.com/heartmarshall/habitflow-backend/internal/domain"
	"github.com/heartmarshall/habitflow-backend/pkg/ctxutil"
)

// Summary returns habit totals, the check-in total and the current streak.
// The four reads are independent and run concurrently.
func (s *Service) Summary(ctx context.Context) (domain.Summary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Summary{}, domain.ErrUnauthorized
	}

	today := calendar.Today(s.clock.Now())
	since := calendar.AddDays(today, -s.policy.StreakLookback)

	var (
		totalHabits   int
		activeHabits  int
		totalCheckIns int
		days          []time.Time
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totalHabits, err = s.habits.CountHabits(gctx, userID, false)
		if err != nil {
			return fmt.Errorf("count habits: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		activeHabits, err = s.habits.CountHabits(gctx, userID, true)
		if err != nil {
			return fmt.Errorf("count active habits: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		totalCheckIns, err = s.checkIns.CountCheckIns(gctx, userID, nil)
		if err != nil {
			return fmt.Errorf("count check-ins: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		days, err = s.checkIns.ListCheckInDays(gctx, userID, since)
		if err != nil {
			return fmt.Errorf("list check-in days: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.Summary{}, err
	}

	summary := BuildSummary(totalHabits, activeHabits, totalCheckIns, days, today, s.policy.StreakLookback)

	s.log.InfoContext(ctx, "summary loaded",
		slog.String("user_id", userID.String()),
		slog.Int("total_habits", summary.TotalHabits),
		slog.Int("streak", summary.Streak),
	)

	return summary, nil
}
