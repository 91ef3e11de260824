// Package googlebooks adapts a Google Books-compatible volume search to the
// BookProvider port.
package googlebooks

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/ewilliams-labs/moodwell/internal/core/domain"
	"github.com/ewilliams-labs/moodwell/internal/core/ports"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

var _ ports.BookProvider = (*Client)(nil)

// NewClient constructs a volume search client. apiKey is optional.
func NewClient(httpClient *http.Client, baseURL, apiKey string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// SearchBooks returns at most one page of volumes matching query.
func (c *Client) SearchBooks(ctx context.Context, query string) ([]domain.Book, error) {
	searchURL, err := url.Parse(c.baseURL + "/volumes")
	if err != nil {
		return nil, fmt.Errorf("googlebooks adapter: invalid search url: %w", err)
	}
	q := searchURL.Query()
	q.Set("q", query)
	q.Set("maxResults", strconv.Itoa(domain.PageSize))
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}
	searchURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("googlebooks adapter: failed to create search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("googlebooks adapter: search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("googlebooks adapter: %w", &ports.ProviderError{Source: domain.SourceBooks, Status: resp.StatusCode})
	}

	var body volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("googlebooks adapter: %w: %v", ports.ErrMalformedPayload, err)
	}
	// A search with no hits omits items but still reports totalItems.
	if body.Items == nil {
		if body.TotalItems == nil {
			return nil, fmt.Errorf("googlebooks adapter: %w: missing items", ports.ErrMalformedPayload)
		}
		return []domain.Book{}, nil
	}

	return domain.Truncate(mapBooksToDomain(*body.Items), domain.PageSize), nil
}
