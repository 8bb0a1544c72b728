package dashboard

import (
	"math"
	"time"

	"github.com/heartmarshall/habitflow-backend/internal/calendar"
	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// Policy holds the window sizes and labels the aggregation builders use.
type Policy struct {
	StreakLookback     int
	SeriesDays         int
	UncategorizedLabel string
}

// DefaultPolicy returns the 60-day streak window and the 7-day series.
func DefaultPolicy() Policy {
	return Policy{
		StreakLookback:     DefaultStreakLookback,
		SeriesDays:         7,
		UncategorizedLabel: "Uncategorized",
	}
}

// BuildSummary assembles the headline numbers. checkInDays may hold one
// entry per check-in; days are deduplicated before the streak walk.
func BuildSummary(totalHabits, activeHabits, totalCheckIns int, checkInDays []time.Time, today time.Time, lookback int) domain.Summary {
	return domain.Summary{
		TotalHabits:   totalHabits,
		ActiveHabits:  activeHabits,
		TotalCheckIns: totalCheckIns,
		Streak:        ComputeStreak(NewDaySet(checkInDays...), today, lookback),
	}
}

// BuildTodayView marks each habit completed when it has a check-in dated
// today. CheckInTime is the creation time of the earliest such check-in.
func BuildTodayView(habits []domain.HabitWithCheckIns, today time.Time) []domain.TodayHabit {
	todayKey := calendar.Key(today)

	view := make([]domain.TodayHabit, 0, len(habits))
	for _, h := range habits {
		row := domain.TodayHabit{
			ID:          h.ID,
			Title:       h.Title,
			Description: h.Description,
			Category:    h.Category,
		}
		for _, c := range h.CheckIns {
			if calendar.Key(c.Date) != todayKey {
				continue
			}
			if row.CheckInTime == nil || c.CreatedAt.Before(*row.CheckInTime) {
				created := c.CreatedAt
				row.CheckInTime = &created
			}
			row.IsCompleted = true
		}
		view = append(view, row)
	}
	return view
}

// BuildStatistics derives the category breakdown, the day series ending
// today and the completion percentages. checkInDays holds one entry per
// check-in and must cover at least the current month and the series
// window; entries after today are ignored.
func BuildStatistics(habits []domain.HabitWithCategory, checkInDays []time.Time, activeHabits int, today time.Time, p Policy) domain.Statistics {
	today = calendar.Truncate(today)

	byCategory := make(map[string]int)
	for _, h := range habits {
		label := p.UncategorizedLabel
		if h.Category != nil {
			label = h.Category.Name
		}
		byCategory[label]++
	}

	perDay := make(map[string]int)
	for _, d := range checkInDays {
		perDay[calendar.Key(d)]++
	}

	seriesStart := calendar.AddDays(today, -(p.SeriesDays - 1))
	series := make([]domain.DayCount, 0, p.SeriesDays)
	weekly := 0
	for day := seriesStart; !day.After(today); day = calendar.AddDays(day, 1) {
		n := perDay[calendar.Key(day)]
		series = append(series, domain.DayCount{Date: calendar.Format(day), CheckIns: n})
		weekly += n
	}

	monthly := 0
	for day := calendar.MonthStart(today); !day.After(today); day = calendar.AddDays(day, 1) {
		monthly += perDay[calendar.Key(day)]
	}

	return domain.Statistics{
		HabitsByCategory:  byCategory,
		Last7Days:         series,
		MonthlyCompletion: completionRate(monthly, activeHabits, today.Day()),
		WeeklyCompletion:  completionRate(weekly, activeHabits, p.SeriesDays),
	}
}

// completionRate returns round(actual / (active * days) * 100), or 0 when
// there is nothing to divide by. Values above 100 are kept.
func completionRate(actual, active, days int) int {
	if active <= 0 || days <= 0 {
		return 0
	}
	return int(math.Round(float64(actual) / float64(active*days) * 100))
}
