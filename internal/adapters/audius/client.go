// Package audius adapts an Audius-compatible track catalog to the
// TrackProvider port.
package audius

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/ewilliams-labs/moodwell/internal/core/domain"
	"github.com/ewilliams-labs/moodwell/internal/core/ports"
)

// Client is an HTTP client for the track catalog.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// compile-time interface assertion
var _ ports.TrackProvider = (*Client)(nil)

// NewClient constructs a new track catalog client.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Credentials configure an optional OAuth2 client-credentials grant.
type Credentials struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
}

// AuthorizedHTTPClient wraps base so every request carries a bearer token
// from the client-credentials grant. Token requests reuse base as transport.
func AuthorizedHTTPClient(ctx context.Context, base *http.Client, creds Credentials) *http.Client {
	if base == nil {
		base = http.DefaultClient
	}
	cfg := clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     creds.TokenURL,
	}
	client := cfg.Client(context.WithValue(ctx, oauth2.HTTPClient, base))
	client.Timeout = base.Timeout
	return client
}

// SearchTracks queries the catalog for TrackFetchSize results and returns at
// most one page of full-length tracks in provider order.
func (c *Client) SearchTracks(ctx context.Context, query string) ([]domain.Track, error) {
	searchURL, err := url.Parse(c.baseURL + "/v1/tracks/search")
	if err != nil {
		return nil, fmt.Errorf("audius adapter: invalid search url: %w", err)
	}
	q := searchURL.Query()
	q.Set("query", query)
	q.Set("limit", strconv.Itoa(domain.TrackFetchSize))
	searchURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("audius adapter: failed to create search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("audius adapter: search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("audius adapter: %w", &ports.ProviderError{Source: domain.SourceTracks, Status: resp.StatusCode})
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("audius adapter: %w: %v", ports.ErrMalformedPayload, err)
	}
	if body.Data == nil {
		return nil, fmt.Errorf("audius adapter: %w: missing data", ports.ErrMalformedPayload)
	}

	return domain.FilterFullTracks(mapTracksToDomain(*body.Data)), nil
}

// StreamURL builds the playback URL for trackID.
func (c *Client) StreamURL(trackID string) string {
	return fmt.Sprintf("%s/v1/tracks/%s/stream", c.baseURL, url.PathEscape(trackID))
}
