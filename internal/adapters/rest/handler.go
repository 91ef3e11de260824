// Package rest exposes recommendation sessions over HTTP.
package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ewilliams-labs/moodwell/internal/core/ports"
	"github.com/ewilliams-labs/moodwell/internal/core/services"
	"github.com/ewilliams-labs/moodwell/internal/logging"
)

// Handler manages the HTTP interface for our application.
type Handler struct {
	sessions *services.SessionRegistry
	identity ports.IdentityProvider
	validate *validator.Validate
	router   chi.Router
}

// NewHandler initializes the HTTP adapter and sets up routes.
func NewHandler(sessions *services.SessionRegistry, identity ports.IdentityProvider) *Handler {
	if identity == nil {
		identity = NewHeaderIdentity("", "")
	}
	h := &Handler{
		sessions: sessions,
		identity: identity,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		router:   chi.NewRouter(),
	}

	h.routes()

	return h
}

// ServeHTTP satisfies the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) routes() {
	h.router.Use(middleware.Recoverer)
	h.router.Use(h.requestContext)

	h.router.Get("/health", h.HealthCheck)
	h.router.Handle("/metrics", promhttp.Handler())

	h.router.Get("/mood", h.GetMood)
	h.router.Post("/moods", h.RecordMood)

	h.router.Get("/recommendations", h.GetRecommendations)
	h.router.Post("/recommendations/refresh", h.RefreshRecommendations)

	h.router.Get("/playback", h.GetPlayback)
	h.router.Post("/playback/toggle", h.TogglePlayback)
	h.router.Post("/playback/events", h.PlaybackEvent)

	h.router.Get("/selection", h.GetSelection)
	h.router.Put("/selection", h.SelectBook)
	h.router.Delete("/selection", h.CloseSelection)

	h.router.Get("/notifications", h.GetNotifications)
}

// requestContext tags the request context with a request ID and the caller,
// and logs the request once it completes.
func (h *Handler) requestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = logging.NewRequestID()
		}
		ctx := logging.ContextWithRequestID(r.Context(), reqID)
		ctx = logging.ContextWithUserID(ctx, h.identity.CurrentUserID(r))
		w.Header().Set("X-Request-ID", reqID)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		logging.Ctx(ctx).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("http request")
	})
}

func (h *Handler) session(r *http.Request) *services.Session {
	return h.sessions.Get(r.Context(), h.identity.CurrentUserID(r))
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": h.sessions.Len(),
	})
}
