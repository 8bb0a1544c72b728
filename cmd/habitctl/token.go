package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/habitflow-backend/internal/auth"
)

type tokenCmd struct {
	User uuid.UUID     `help:"User id placed in the token subject." required:""`
	TTL  time.Duration `help:"Override the configured access token lifetime."`
}

func (c *tokenCmd) Run(rc *runContext) error {
	ttl := rc.cfg.Auth.AccessTokenTTL
	if c.TTL > 0 {
		ttl = c.TTL
	}

	tokens := auth.NewJWTManager(rc.cfg.Auth.JWTSecret, rc.cfg.Auth.JWTIssuer, ttl, clockwork.NewRealClock())
	token, err := tokens.GenerateAccessToken(c.User)
	if err != nil {
		return err
	}

	rc.logger.Warn("minted development access token",
		slog.String("user_id", c.User.String()),
		slog.Duration("ttl", ttl),
	)
	_, err = fmt.Fprintln(rc.out, token)
	return err
}
