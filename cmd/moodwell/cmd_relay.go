package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ewilliams-labs/moodwell/internal/adapters/relay"
	"github.com/ewilliams-labs/moodwell/internal/logging"
)

func init() {
	rootCmd.AddCommand(relayCmd)
}

var relayCmd = &cobra.Command{
	Use:   "relay",
	Short: "Run the video search relay that holds the upstream API key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if cfg.Relay.APIKey == "" {
			logging.Warn().Msg("relay api key not set; searches will fail with missing_credential")
		}

		handler := relay.New(relay.Config{
			APIKey:            cfg.Relay.APIKey,
			UpstreamURL:       cfg.Relay.YouTubeBaseURL,
			AllowedOrigins:    cfg.Relay.AllowedOrigins,
			RateLimitRequests: cfg.Relay.RateLimitRequests,
			RateLimitWindow:   cfg.Relay.RateLimitWindow,
			HTTPClient:        &http.Client{Timeout: cfg.Providers.Timeout},
		})

		srv := &http.Server{
			Addr:              cfg.Relay.Addr,
			Handler:           handler,
			ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		}
		return serveUntilDone(ctx, srv, "relay")
	},
}
