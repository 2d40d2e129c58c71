// Command lexicon runs the collaborative dictionary API and its operator
// tasks.
//
// Usage:
//
//	lexicon serve
//	lexicon migrate up|down|status
//	lexicon promote --email=user@example.com
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/lexicon-backend/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "lexicon",
	Short:         "Collaborative dictionary backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Printf("load .env: %v", err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to the YAML config (default $CONFIG_PATH or "+config.DefaultPath+")")
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatalln(err.Error())
	}
}
