package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Server.WriteRatePerMinute < 0 {
		return fmt.Errorf("server.write_rate_per_minute must be >= 0 (got %d)", c.Server.WriteRatePerMinute)
	}

	if c.CORS.AllowCredentials && strings.Contains(c.CORS.AllowedOrigins, "*") {
		return fmt.Errorf("cors.allowed_origins must list explicit origins when allow_credentials is set")
	}

	if err := c.Stats.validate(); err != nil {
		return fmt.Errorf("stats: %w", err)
	}

	return nil
}

func (s *StatsConfig) validate() error {
	if s.StreakLookbackDays < 1 {
		return fmt.Errorf("streak_lookback_days must be >= 1 (got %d)", s.StreakLookbackDays)
	}
	if s.SeriesDays < 1 || s.SeriesDays > 31 {
		return fmt.Errorf("series_days must be in 1..31 (got %d)", s.SeriesDays)
	}
	if strings.TrimSpace(s.UncategorizedLabel) == "" {
		return fmt.Errorf("uncategorized_label must not be empty")
	}
	if s.HistoryMaxLimit < 1 {
		return fmt.Errorf("history_max_limit must be >= 1 (got %d)", s.HistoryMaxLimit)
	}
	return nil
}
