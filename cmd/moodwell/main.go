// Command moodwell serves mood-driven music, podcast and book
// recommendations, and runs the video search relay.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ewilliams-labs/moodwell/internal/adapters/audius"
	"github.com/ewilliams-labs/moodwell/internal/adapters/googlebooks"
	"github.com/ewilliams-labs/moodwell/internal/adapters/youtube"
	"github.com/ewilliams-labs/moodwell/internal/config"
	"github.com/ewilliams-labs/moodwell/internal/core/services"
	"github.com/ewilliams-labs/moodwell/internal/logging"
)

const shutdownTimeout = 10 * time.Second

var cfgPath string

var rootCmd = &cobra.Command{
	Use:           "moodwell",
	Short:         "Mood-driven recommendations for music, podcasts and books",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default: $MOODWELL_CONFIG or ./config.yaml)")

	if err := rootCmd.Execute(); err != nil {
		logging.Error().Err(err).Msg("moodwell failed")
		os.Exit(1)
	}
}

// loadConfig reads configuration and applies its logging section.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	return cfg, nil
}

// newProviders builds the three content clients. Every client shares the
// configured timeout so a hung provider settles as an ordinary failure.
func newProviders(ctx context.Context, cfg *config.Config) services.Providers {
	base := &http.Client{Timeout: cfg.Providers.Timeout}

	tracksHTTP := base
	if cfg.Providers.TracksClientID != "" {
		tracksHTTP = audius.AuthorizedHTTPClient(ctx, base, audius.Credentials{
			ClientID:     cfg.Providers.TracksClientID,
			ClientSecret: cfg.Providers.TracksClientSecret,
			TokenURL:     cfg.Providers.TracksTokenURL,
		})
	}

	return services.Providers{
		Tracks: audius.NewClient(tracksHTTP, cfg.Providers.TracksBaseURL),
		Videos: youtube.NewClient(base, cfg.Providers.RelayURL),
		Books:  googlebooks.NewClient(base, cfg.Providers.BooksBaseURL, cfg.Providers.BooksAPIKey),
	}
}

// serveUntilDone runs srv until ctx is cancelled, then shuts it down gracefully.
func serveUntilDone(ctx context.Context, srv *http.Server, name string) error {
	log := logging.With(name)
	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-serverErr
	}
}

// runUntilCancelled treats cancellation of a background loop as a clean
// stop. Any other error is returned.
func runUntilCancelled(ctx context.Context, run func(context.Context) error) error {
	if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
