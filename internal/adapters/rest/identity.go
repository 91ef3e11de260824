package rest

import (
	"net/http"
	"strings"

	"github.com/ewilliams-labs/moodwell/internal/core/ports"
)

const (
	DefaultUserHeader = "X-User-ID"
	AnonymousUser     = "anonymous"
)

var _ ports.IdentityProvider = HeaderIdentity{}

// HeaderIdentity trusts a request header for the user ID. Authentication is
// expected to happen in front of this service.
type HeaderIdentity struct {
	Header  string
	Default string
}

func NewHeaderIdentity(header, fallback string) HeaderIdentity {
	if header == "" {
		header = DefaultUserHeader
	}
	if fallback == "" {
		fallback = AnonymousUser
	}
	return HeaderIdentity{Header: header, Default: fallback}
}

func (h HeaderIdentity) CurrentUserID(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(h.Header)); id != "" {
		return id
	}
	return h.Default
}
