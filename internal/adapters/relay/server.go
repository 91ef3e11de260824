// Package relay is the trusted intermediary for video search. It holds the
// upstream API key, handles CORS for browser callers and passes upstream
// responses through unchanged.
package relay

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	json "github.com/goccy/go-json"

	"github.com/ewilliams-labs/moodwell/internal/adapters/youtube"
	"github.com/ewilliams-labs/moodwell/internal/core/domain"
	"github.com/ewilliams-labs/moodwell/internal/logging"
	"github.com/ewilliams-labs/moodwell/internal/metrics"
)

const (
	codeInvalidQuery        = "invalid_query"
	codeUpstreamUnreachable = "upstream_unreachable"
	maxBodyBytes            = 1 << 16
)

// Config for the relay handler.
type Config struct {
	// APIKey is injected into every upstream call. When empty, searches fail
	// with missing_credential instead of calling upstream.
	APIKey            string
	UpstreamURL       string
	AllowedOrigins    []string
	RateLimitRequests int
	RateLimitWindow   time.Duration
	HTTPClient        *http.Client
}

// Server handles relay HTTP requests.
type Server struct {
	apiKey   string
	upstream string
	client   *http.Client
	router   chi.Router
}

// New builds the relay handler and its routes.
func New(cfg Config) *Server {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	s := &Server{
		apiKey:   cfg.APIKey,
		upstream: strings.TrimRight(cfg.UpstreamURL, "/"),
		client:   client,
		router:   chi.NewRouter(),
	}

	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Client-Info", "apikey"},
		ExposedHeaders: []string{youtube.RelayErrorHeader},
		MaxAge:         300,
	}))
	if cfg.RateLimitRequests > 0 && cfg.RateLimitWindow > 0 {
		s.router.Use(httprate.LimitByIP(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	s.router.Get("/health", s.health)
	s.router.Post("/search", s.search)
	return s
}

// ServeHTTP satisfies the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "healthy",
		"service":    "relay",
		"credential": s.apiKey != "",
	})
}

// search handles POST /search {"query": "..."}.
func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	query, ok := decodeQuery(r)
	if !ok {
		s.fail(w, http.StatusBadRequest, codeInvalidQuery, "query must be a non-empty string")
		return
	}

	if s.apiKey == "" {
		logging.Ctx(r.Context()).Error().Msg("relay: upstream api key not configured")
		s.fail(w, http.StatusInternalServerError, youtube.RelayCodeMissingCredential, "relay is not configured")
		return
	}

	resp, err := s.callUpstream(r.Context(), query)
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("relay: upstream request failed")
		s.fail(w, http.StatusBadGateway, codeUpstreamUnreachable, "upstream unreachable")
		return
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("relay: copy upstream body")
	}
	metrics.RecordRelay(resp.StatusCode)
}

func (s *Server) callUpstream(ctx context.Context, query string) (*http.Response, error) {
	u, err := url.Parse(s.upstream + "/search")
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("part", "snippet")
	q.Set("type", "video")
	q.Set("maxResults", strconv.Itoa(domain.PageSize))
	q.Set("q", query)
	q.Set("key", s.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return s.client.Do(req)
}

// decodeQuery accepts only a JSON object whose query field is a non-blank string.
func decodeQuery(r *http.Request) (string, bool) {
	var body map[string]any
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&body); err != nil {
		return "", false
	}
	query, ok := body["query"].(string)
	if !ok || strings.TrimSpace(query) == "" {
		return "", false
	}
	return query, true
}

func (s *Server) fail(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set(youtube.RelayErrorHeader, code)
	writeJSON(w, status, map[string]string{"error": message, "code": code})
	metrics.RecordRelay(status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
