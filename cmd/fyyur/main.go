// Command fyyur runs the Fyyur venue and artist booking directory.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/justestif/go-fyyur/internal/config"
	"github.com/justestif/go-fyyur/internal/db"
	"github.com/justestif/go-fyyur/internal/logging"
)

var Version = "dev"

func main() {
	var envFile string

	rootCmd := &cobra.Command{
		Use:           "fyyur",
		Short:         "Fyyur - book local artists at local venues",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional env file loaded before the environment")

	rootCmd.AddCommand(serveCmd(&envFile))
	rootCmd.AddCommand(migrateCmd(&envFile))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds what every command needs.
type app struct {
	cfg      *config.Config
	logger   zerolog.Logger
	closeLog func() error
}

func setup(envFile string) (*app, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}

	logCfg := logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}
	if !cfg.IsDevelopment() {
		logCfg.ErrorFile = cfg.Logging.File
	}
	logger, closeLog, err := logging.New(logCfg)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, closeLog: closeLog}, nil
}

func (a *app) close() {
	_ = a.closeLog()
}

func (a *app) openDB(ctx context.Context) (*db.DB, error) {
	database, err := db.New(ctx, a.cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return database, nil
}

func (a *app) migrate() error {
	result, err := db.Migrate(a.cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	if !result.Changed() {
		a.logger.Info().Uint("version", result.To).Msg("schema up to date")
		return nil
	}
	a.logger.Info().
		Uint("from", result.From).
		Uint("to", result.To).
		Msg("applied migrations")
	return nil
}
