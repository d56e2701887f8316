// @title           Todo API
// @version         1.0
// @description     Todo lists, items and tags with a cached aggregate board.
// @host            localhost:8080
// @BasePath        /api
package main

import (
	"fmt"
	"os"

	"github.com/omer1abay/Todo-App/internal/config"
	"github.com/omer1abay/Todo-App/internal/logging"

	_ "github.com/omer1abay/Todo-App/docs"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "todo-api",
	Short: "Todo lists, items and tags over HTTP",
	Long: `Serves the Todo REST API and manages its Postgres schema.

Configuration comes from the environment, or from CONFIG_FILE when set.
Environment variables:
` + config.Usage(),
	SilenceUsage: true,
	RunE:         runServe,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// loadConfig loads configuration and installs the logger it describes.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)
	return cfg, nil
}
