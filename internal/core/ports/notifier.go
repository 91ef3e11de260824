package ports

import (
	"context"
	"net/http"

	"github.com/ewilliams-labs/moodwell/internal/core/domain"
)

// Notifier delivers one-shot user-facing messages. Implementations must not block.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// IdentityProvider resolves the current user for an incoming request.
type IdentityProvider interface {
	CurrentUserID(r *http.Request) string
}
