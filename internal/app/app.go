// Package app wires configuration, storage, services and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/habitflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitflow-backend/internal/adapter/postgres/checkin"
	"github.com/heartmarshall/habitflow-backend/internal/adapter/postgres/habit"
	"github.com/heartmarshall/habitflow-backend/internal/auth"
	"github.com/heartmarshall/habitflow-backend/internal/config"
	checkinsvc "github.com/heartmarshall/habitflow-backend/internal/service/checkin"
	"github.com/heartmarshall/habitflow-backend/internal/service/dashboard"
	"github.com/heartmarshall/habitflow-backend/internal/transport/middleware"
	"github.com/heartmarshall/habitflow-backend/internal/transport/rest"
)

const rateLimitCleanupInterval = time.Minute

// Run loads configuration, connects to PostgreSQL and serves the API until
// ctx is cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, closeLog := NewLogger(cfg.Log)
	defer closeLog.Close()

	logger.Info("starting habitflow",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	clock := clockwork.NewRealClock()
	limiter := middleware.NewRateLimiter(clock, rateLimitCleanupInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, pool, clock, logger, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", slog.String("error", err.Error()))
		return err
	}
	logger.Info("server stopped")
	return nil
}

// NewHandler builds the repositories, services and middleware chain on top
// of an open pool.
func NewHandler(
	cfg *config.Config,
	pool *pgxpool.Pool,
	clock clockwork.Clock,
	logger *slog.Logger,
	limiter *middleware.RateLimiter,
) http.Handler {
	habits := habit.New(pool)
	checkIns := checkin.New(pool)
	txm := postgres.NewTxManager(pool)

	checkInService := checkinsvc.NewService(logger, clock, habits, checkIns, txm, cfg.Stats.HistoryMaxLimit)
	dashboardService := dashboard.NewService(logger, clock, habits, checkIns, PolicyFromConfig(cfg.Stats))

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL, clock)

	global := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Logger(logger, clock),
		middleware.Auth(tokens, logger),
	)

	return rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(pool, clock, BuildVersion()),
		CheckIns:  rest.NewCheckInHandler(checkInService, logger),
		Dashboard: rest.NewDashboardHandler(dashboardService, logger),
	}, global, limiter.Limit(cfg.Server.WriteRatePerMinute))
}

// PolicyFromConfig maps the stats section onto the dashboard aggregation policy.
func PolicyFromConfig(cfg config.StatsConfig) dashboard.Policy {
	return dashboard.Policy{
		StreakLookback:     cfg.StreakLookbackDays,
		SeriesDays:         cfg.SeriesDays,
		UncategorizedLabel: cfg.UncategorizedLabel,
	}
}
