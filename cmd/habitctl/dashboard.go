package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/habitflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitflow-backend/internal/adapter/postgres/checkin"
	"github.com/heartmarshall/habitflow-backend/internal/adapter/postgres/habit"
	"github.com/heartmarshall/habitflow-backend/internal/app"
	"github.com/heartmarshall/habitflow-backend/internal/domain"
	"github.com/heartmarshall/habitflow-backend/internal/service/dashboard"
	"github.com/heartmarshall/habitflow-backend/pkg/ctxutil"
)

type dashboardCmd struct {
	User    uuid.UUID     `help:"User id to report on." required:""`
	Timeout time.Duration `help:"Abort if the report takes longer than this." default:"30s"`
}

type dashboardReport struct {
	UserID     string          `json:"userId"`
	Summary    summaryReport   `json:"summary"`
	Statistics statisticReport `json:"statistics"`
}

type summaryReport struct {
	TotalHabits   int `json:"totalHabits"`
	ActiveHabits  int `json:"activeHabits"`
	TotalCheckIns int `json:"totalCheckIns"`
	Streak        int `json:"streak"`
}

type statisticReport struct {
	HabitsByCategory  map[string]int   `json:"habitsByCategory"`
	Last7Days         []dayCountReport `json:"last7Days"`
	MonthlyCompletion int              `json:"monthlyCompletion"`
	WeeklyCompletion  int              `json:"weeklyCompletion"`
}

// dayCountReport keeps the series ordered oldest first, as the API returns it.
type dayCountReport struct {
	Date     string `json:"date"`
	CheckIns int    `json:"checkIns"`
}

func (c *dashboardCmd) Run(rc *runContext) error {
	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, rc.cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	svc := dashboard.NewService(rc.logger, clockwork.NewRealClock(),
		habit.New(pool), checkin.New(pool), app.PolicyFromConfig(rc.cfg.Stats))

	return writeDashboard(ctxutil.WithUserID(ctx, c.User), svc, c.User, rc)
}

type dashboardReader interface {
	Summary(ctx context.Context) (domain.Summary, error)
	Statistics(ctx context.Context) (domain.Statistics, error)
}

func writeDashboard(ctx context.Context, svc dashboardReader, userID uuid.UUID, rc *runContext) error {
	summary, err := svc.Summary(ctx)
	if err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	stats, err := svc.Statistics(ctx)
	if err != nil {
		return fmt.Errorf("statistics: %w", err)
	}

	enc := json.NewEncoder(rc.out)
	enc.SetIndent("", "  ")
	report := dashboardReport{
		UserID: userID.String(),
		Summary: summaryReport{
			TotalHabits:   summary.TotalHabits,
			ActiveHabits:  summary.ActiveHabits,
			TotalCheckIns: summary.TotalCheckIns,
			Streak:        summary.Streak,
		},
		Statistics: statisticReport{
			HabitsByCategory:  make(map[string]int, len(stats.HabitsByCategory)),
			Last7Days:         make([]dayCountReport, 0, len(stats.Last7Days)),
			MonthlyCompletion: stats.MonthlyCompletion,
			WeeklyCompletion:  stats.WeeklyCompletion,
		},
	}
	for name, n := range stats.HabitsByCategory {
		report.Statistics.HabitsByCategory[name] = n
	}
	for _, d := range stats.Last7Days {
		report.Statistics.Last7Days = append(report.Statistics.Last7Days, dayCountReport{Date: d.Date, CheckIns: d.CheckIns})
	}
	return enc.Encode(report)
}
