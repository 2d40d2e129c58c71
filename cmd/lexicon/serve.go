package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/lexicon-backend/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := app.NewLogger(cfg.Log)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return app.Run(ctx, cfg, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
