package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/omer1abay/Todo-App/internal/app"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server (default)",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log.Info().Str("driver", cfg.DB.Driver).Bool("redis", cfg.Redis.Enabled()).Msg("config loaded, connecting")

	application, err := app.New(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.HTTP.Port,
		Handler:      application.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout.Duration(),
		WriteTimeout: cfg.HTTP.WriteTimeout.Duration(),
		IdleTimeout:  cfg.HTTP.IdleTimeout.Duration(),
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.HTTP.ShutdownTimeout.Duration(),
		map[string]gfshutdown.Operation{
			"todo-api": func(ctx context.Context) error {
				log.Info().Msg("graceful shutdown initiated")
				// Drain requests before closing the pools they use.
				if err := server.Shutdown(ctx); err != nil {
					return err
				}
				return application.Close(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Info().Int("exit_code", exitCode).Msg("application exited")
	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}
