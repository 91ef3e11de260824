// Package config loads layered configuration: built-in defaults, then an
// optional YAML file, then MOODWELL_* environment variables.
package config

import (
	"time"
)

// Config is the root configuration for every moodwell command.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Relay     RelayConfig     `koanf:"relay"`
	Providers ProvidersConfig `koanf:"providers"`
	Store     StoreConfig     `koanf:"store"`
	Worker    WorkerConfig    `koanf:"worker"`
	Watch     WatchConfig     `koanf:"watch"`
	Logging   LoggingConfig   `koanf:"logging"`
}

type ServerConfig struct {
	Addr              string        `koanf:"addr" validate:"required"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout" validate:"min=0"`
}

// RelayConfig configures the video search relay. APIKey may be empty at
// startup; the relay then answers every search with missing_credential.
type RelayConfig struct {
	Addr              string        `koanf:"addr" validate:"required"`
	YouTubeBaseURL    string        `koanf:"youtube_base_url" validate:"required,url"`
	APIKey            string        `koanf:"api_key"`
	AllowedOrigins    []string      `koanf:"allowed_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests" validate:"min=0"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"min=0"`
}

type ProvidersConfig struct {
	TracksBaseURL string `koanf:"tracks_base_url" validate:"required,url"`
	// Client credentials are optional; when set, track requests carry an
	// OAuth2 bearer token.
	TracksClientID     string        `koanf:"tracks_client_id"`
	TracksClientSecret string        `koanf:"tracks_client_secret" validate:"required_with=TracksClientID"`
	TracksTokenURL     string        `koanf:"tracks_token_url" validate:"required_with=TracksClientID"`
	RelayURL           string        `koanf:"relay_url" validate:"required,url"`
	BooksBaseURL       string        `koanf:"books_base_url" validate:"required,url"`
	BooksAPIKey        string        `koanf:"books_api_key"`
	Timeout            time.Duration `koanf:"timeout" validate:"min=0"`
}

type StoreConfig struct {
	Path string `koanf:"path" validate:"required"`
}

type WorkerConfig struct {
	Workers   int `koanf:"workers" validate:"min=1"`
	QueueSize int `koanf:"queue_size" validate:"min=1"`
}

// WatchConfig controls polling of the mood store and idle session
// eviction, which runs on the same tick. A zero PollInterval disables both.
// A zero SessionIdleTimeout keeps sessions forever.
type WatchConfig struct {
	PollInterval       time.Duration `koanf:"poll_interval" validate:"min=0"`
	SessionIdleTimeout time.Duration `koanf:"session_idle_timeout" validate:"min=0"`
}

type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: 15 * time.Second,
		},
		Relay: RelayConfig{
			Addr:              ":8787",
			YouTubeBaseURL:    "https://www.googleapis.com/youtube/v3",
			AllowedOrigins:    []string{"*"},
			RateLimitRequests: 60,
			RateLimitWindow:   time.Minute,
		},
		Providers: ProvidersConfig{
			TracksBaseURL: "https://discoveryprovider.audius.co",
			RelayURL:      "http://localhost:8787",
			BooksBaseURL:  "https://www.googleapis.com/books/v1",
			Timeout:       15 * time.Second,
		},
		Store: StoreConfig{
			Path: "moodwell.db",
		},
		Worker: WorkerConfig{
			Workers:   2,
			QueueSize: 100,
		},
		Watch: WatchConfig{
			PollInterval:       30 * time.Second,
			SessionIdleTimeout: 30 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
