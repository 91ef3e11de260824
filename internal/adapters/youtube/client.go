// Package youtube adapts video search, reached through the credential relay,
// to the VideoProvider port. The client never sees the upstream API key.
package youtube

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/ewilliams-labs/moodwell/internal/core/domain"
	"github.com/ewilliams-labs/moodwell/internal/core/ports"
)

// RelayErrorHeader marks responses produced by the relay itself rather than
// passed through from upstream.
const RelayErrorHeader = "X-Relay-Error"

// RelayCodeMissingCredential is sent in RelayErrorHeader when the relay has no API key.
const RelayCodeMissingCredential = "missing_credential"

// Client talks to the relay's search endpoint.
type Client struct {
	httpClient *http.Client
	relayURL   string
}

var _ ports.VideoProvider = (*Client)(nil)

func NewClient(httpClient *http.Client, relayURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		relayURL:   strings.TrimRight(relayURL, "/"),
	}
}

// SearchRequest is the relay's request body.
type SearchRequest struct {
	Query string `json:"query"`
}

// SearchVideos asks the relay for one page of videos matching query.
func (c *Client) SearchVideos(ctx context.Context, query string) ([]domain.Video, error) {
	b, err := json.Marshal(SearchRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("youtube adapter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.relayURL+"/search", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("youtube adapter: failed to create search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube adapter: search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.Header.Get(RelayErrorHeader) == RelayCodeMissingCredential {
			return nil, fmt.Errorf("youtube adapter: %w", ports.ErrMissingCredential)
		}
		return nil, fmt.Errorf("youtube adapter: %w", &ports.ProviderError{Source: domain.SourceVideos, Status: resp.StatusCode})
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("youtube adapter: %w: %v", ports.ErrMalformedPayload, err)
	}
	if body.Items == nil {
		return nil, fmt.Errorf("youtube adapter: %w: missing items", ports.ErrMalformedPayload)
	}

	return domain.Truncate(mapVideosToDomain(*body.Items), domain.PageSize), nil
}
