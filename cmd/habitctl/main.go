// Command habitctl is the operator tool for habitflow: it applies migrations,
// prints a user's dashboard and mints development access tokens.
//
// A .env file in the working directory is loaded before the configuration.
package main

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/heartmarshall/habitflow-backend/internal/app"
	"github.com/heartmarshall/habitflow-backend/internal/config"
)

type cli struct {
	Version kong.VersionFlag `help:"Print version and exit."`
	Config  string           `help:"Path to config.yaml. Defaults to $CONFIG_PATH, then ./config.yaml." type:"path"`
	EnvFile string           `help:"Dotenv file loaded before configuration." default:".env" name:"env-file"`

	Migrate   migrateCmd   `cmd:"" help:"Apply or roll back database migrations."`
	Dashboard dashboardCmd `cmd:"" help:"Print a user's dashboard summary and statistics as JSON."`
	Token     tokenCmd     `cmd:"" help:"Mint an access token for a user (development only)."`
}

// runContext is handed to every command's Run method.
type runContext struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("habitctl"),
		kong.Description("Operator tool for the habitflow backend."),
		kong.UsageOnError(),
		kong.Vars{"version": app.BuildVersion()},
	)

	if err := loadEnvFile(c.EnvFile); err != nil {
		fmt.Fprintf(os.Stderr, "habitctl: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadFrom(cmp.Or(c.Config, os.Getenv("CONFIG_PATH")))
	if err != nil {
		fmt.Fprintf(os.Stderr, "habitctl: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := app.NewLogger(cfg.Log)
	defer closeLog.Close()

	err = kctx.Run(&runContext{cfg: cfg, logger: logger, out: os.Stdout})
	kctx.FatalIfErrorf(err)
}

// loadEnvFile loads path into the environment without overriding variables
// that are already set. A missing default file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
