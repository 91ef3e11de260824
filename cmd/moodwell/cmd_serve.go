package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ewilliams-labs/moodwell/internal/adapters/rest"
	"github.com/ewilliams-labs/moodwell/internal/adapters/sqlite"
	"github.com/ewilliams-labs/moodwell/internal/core/services"
	"github.com/ewilliams-labs/moodwell/internal/logging"
	"github.com/ewilliams-labs/moodwell/internal/worker"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the recommendation API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store, err := sqlite.NewAdapter(cfg.Store.Path)
		if err != nil {
			return fmt.Errorf("open mood store: %w", err)
		}
		defer store.Close()

		pool := worker.NewPool(cfg.Worker.Workers, cfg.Worker.QueueSize)
		pool.Start(ctx)
		defer pool.Stop()

		// Idle sessions are swept on each watcher tick.
		registry := services.NewSessionRegistry(services.SessionDeps{
			Providers:   newProviders(ctx, cfg),
			Store:       store,
			Dispatcher:  pool,
			Notifier:    services.LogNotifier{},
			IdleTimeout: cfg.Watch.SessionIdleTimeout,
		})

		srv := &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           rest.NewHandler(registry, rest.NewHeaderIdentity("", "")),
			ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		}

		logging.Info().
			Str("store", cfg.Store.Path).
			Str("tracks", cfg.Providers.TracksBaseURL).
			Str("relay", cfg.Providers.RelayURL).
			Str("books", cfg.Providers.BooksBaseURL).
			Msg("moodwell api starting")

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return serveUntilDone(gctx, srv, "api")
		})
		if cfg.Watch.PollInterval > 0 {
			watcher := services.NewMoodWatcher(registry, cfg.Watch.PollInterval)
			g.Go(func() error {
				return runUntilCancelled(gctx, watcher.Run)
			})
		}
		return g.Wait()
	},
}
