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

// Statistics returns the category breakdown, the recent day series and
// the weekly and monthly completion rates.
func (s *Service) Statistics(ctx context.Context) (domain.Statistics, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Statistics{}, domain.ErrUnauthorized
	}

	today := calendar.Today(s.clock.Now())
	since := statisticsWindowStart(today, s.policy.SeriesDays)

	var (
		habits       []domain.HabitWithCategory
		days         []time.Time
		activeHabits int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		habits, err = s.habits.ListWithCategory(gctx, userID)
		if err != nil {
			return fmt.Errorf("list habits with category: %w", err)
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

	g.Go(func() error {
		var err error
		activeHabits, err = s.habits.CountHabits(gctx, userID, true)
		if err != nil {
			return fmt.Errorf("count active habits: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.Statistics{}, err
	}

	stats := BuildStatistics(habits, days, activeHabits, today, s.policy)

	s.log.InfoContext(ctx, "statistics loaded",
		slog.String("user_id", userID.String()),
		slog.Int("monthly_completion", stats.MonthlyCompletion),
		slog.Int("weekly_completion", stats.WeeklyCompletion),
	)

	return stats, nil
}

// statisticsWindowStart is the earliest day either the month total or the
// day series needs.
func statisticsWindowStart(today time.Time, seriesDays int) time.Time {
	seriesStart := calendar.AddDays(today, -(seriesDays - 1))
	monthStart := calendar.MonthStart(today)
	if seriesStart.Before(monthStart) {
		return seriesStart
	}
	return monthStart
}
