// Package proxy talks to an optional backend endpoint that relays feed
// items server-side (and holds any credentials). It carries no logic of
// its own; the aggregator tries it before the public relay fan-out.
package proxy

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"EquityNewsScanner/internal/domain"
	"EquityNewsScanner/internal/infrastructure/feed"
	"EquityNewsScanner/internal/ports"
)

// Client fetches canonical items from the configured backend.
type Client struct {
	endpoint string
	http     *http.Client
	parser   *feed.Parser
}

var _ ports.NewsProvider = (*Client)(nil)

// NewClient creates a reusable HTTP client for the backend endpoint.
func NewClient(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		endpoint: endpoint,
		http:     httpClient,
		parser:   feed.NewParser(),
	}
}

// FetchNews GETs the backend's news endpoint and decodes its items payload.
func (c *Client) FetchNews(ctx context.Context) ([]domain.Article, error) {
	if c.endpoint == "" {
		return nil, fmt.Errorf("backend proxy not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?type=news", nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("backend proxy returned %s", resp.Status)
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	articles := c.parser.Parse(string(payload), feed.FormatJSONItems)
	if len(articles) == 0 {
		return nil, fmt.Errorf("backend proxy returned no items")
	}
	return articles, nil
}
