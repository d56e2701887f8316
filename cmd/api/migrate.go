package main

import (
	"github.com/omer1abay/Todo-App/internal/app"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status]",
	Short:     "Apply, roll back or inspect the Postgres schema migrations",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "status"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		db, err := app.OpenDatabase(cmd.Context(), cfg.DB)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := app.Migrate(cmd.Context(), db, args[0]); err != nil {
			return err
		}
		log.Info().Str("command", args[0]).Msg("migrate done")
		return nil
	},
}
