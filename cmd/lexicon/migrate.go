package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/lexicon-backend/internal/app"
	"github.com/heartmarshall/lexicon-backend/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProvider(cmd.Context(), func(ctx context.Context, p *goose.Provider, log *slog.Logger) error {
			results, err := p.Up(ctx)
			if err != nil {
				return fmt.Errorf("migrate up: %w", err)
			}
			for _, r := range results {
				log.Info("migration applied",
					slog.Int64("version", r.Source.Version),
					slog.Duration("duration", r.Duration))
			}
			if len(results) == 0 {
				log.Info("schema is up to date")
			}
			return nil
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProvider(cmd.Context(), func(ctx context.Context, p *goose.Provider, log *slog.Logger) error {
			r, err := p.Down(ctx)
			if err != nil {
				return fmt.Errorf("migrate down: %w", err)
			}
			log.Info("migration rolled back", slog.Int64("version", r.Source.Version))
			return nil
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of every migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProvider(cmd.Context(), func(ctx context.Context, p *goose.Provider, _ *slog.Logger) error {
			statuses, err := p.Status(ctx)
			if err != nil {
				return fmt.Errorf("migrate status: %w", err)
			}
			out := cmd.OutOrStdout()
			for _, s := range statuses {
				applied := "pending"
				if s.State == goose.StateApplied {
					applied = s.AppliedAt.Format("2006-01-02 15:04:05")
				}
				fmt.Fprintf(out, "%-6d %-40s %s\n", s.Source.Version, s.Source.Path, applied)
			}
			return nil
		})
	},
}

func withProvider(ctx context.Context, fn func(context.Context, *goose.Provider, *slog.Logger) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	provider, err := migrations.NewProvider(db)
	if err != nil {
		return err
	}
	return fn(ctx, provider, logger)
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
	rootCmd.AddCommand(migrateCmd)
}
