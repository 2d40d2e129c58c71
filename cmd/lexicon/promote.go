package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/lexicon-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lexicon-backend/internal/app"
	"github.com/heartmarshall/lexicon-backend/internal/domain"
)

var promoteEmail string

// promoteCmd bootstraps the first administrator.
var promoteCmd = &cobra.Command{
	Use:   "promote",
	Short: "Give an existing account the admin role",
	RunE: func(cmd *cobra.Command, args []string) error {
		if promoteEmail == "" {
			return errors.New("--email is required")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := app.NewLogger(cfg.Log)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer pool.Close()

		c := app.Build(cfg, logger, pool, nil)
		defer c.Close()

		user, err := c.Users.PromoteToAdmin(ctx, promoteEmail)
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no user found with email %q", promoteEmail)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "User %q promoted to admin.\n", user.Email)
		return nil
	},
}

func init() {
	promoteCmd.Flags().StringVar(&promoteEmail, "email", "", "email of the account to promote")
	rootCmd.AddCommand(promoteCmd)
}
