package hn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"storyseek/internal/domain"
)

// DefaultEndpoint is the Hacker News Algolia search prefix; the term is appended verbatim
const DefaultEndpoint = "https://hn.algolia.com/api/v1/search?query="

// ErrUnexpectedStatus is returned for any non-2xx response
var ErrUnexpectedStatus = errors.New("unexpected status")

// Client performs a search against a fully built target URL
type Client interface {
	Search(ctx context.Context, target string) ([]domain.Story, error)
}

// HTTPClient is the net/http implementation of Client
type HTTPClient struct {
	httpClient *http.Client
}

// NewHTTPClient creates a client. A zero timeout means requests never time out.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{httpClient: &http.Client{Timeout: timeout}}
}

// NewHTTPClientWith wraps an existing *http.Client
func NewHTTPClientWith(c *http.Client) *HTTPClient {
	return &HTTPClient{httpClient: c}
}

func (c *HTTPClient) Search(ctx context.Context, target string) ([]domain.Story, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("search fetch: %w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var raw searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("search decode: %w", err)
	}
	if raw.Hits == nil {
		return nil, fmt.Errorf("search decode: response has no hits")
	}

	stories := make([]domain.Story, 0, len(*raw.Hits))
	for _, h := range *raw.Hits {
		stories = append(stories, domain.Story{
			ObjectID:    h.ObjectID,
			Title:       deref(h.Title),
			URL:         deref(h.URL),
			Author:      h.Author,
			NumComments: derefInt(h.NumComments),
			Points:      derefInt(h.Points),
		})
	}
	return stories, nil
}

type searchResponse struct {
	Hits *[]searchHit `json:"hits"`
}

type searchHit struct {
	ObjectID    string  `json:"objectID"`
	Title       *string `json:"title"`
	URL         *string `json:"url"`
	Author      string  `json:"author"`
	NumComments *int    `json:"num_comments"`
	Points      *int    `json:"points"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
