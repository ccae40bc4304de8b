package feed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"EquityNewsScanner/internal/domain"
)

const (
	defaultAttemptTimeout = 9 * time.Second
	maxPayloadBytes       = 2 << 20
	userAgent             = "EquityNewsScanner/1.0"
)

// Fetcher retrieves one source's feed by trying its strategies in order.
// Timeouts and malformed payloads are expected outcomes with public relays,
// so failed attempts log at debug and the loop simply advances.
type Fetcher struct {
	client  *http.Client
	parser  *Parser
	timeout time.Duration
	logger  *slog.Logger
}

// NewFetcher wires an HTTP client; the per-attempt timeout defaults to 9s.
func NewFetcher(client *http.Client, parser *Parser, timeout time.Duration, logger *slog.Logger) *Fetcher {
	if client == nil {
		client = &http.Client{}
	}
	if parser == nil {
		parser = NewParser()
	}
	if timeout <= 0 {
		timeout = defaultAttemptTimeout
	}
	return &Fetcher{client: client, parser: parser, timeout: timeout, logger: logger}
}

// Fetch returns the first strategy's non-empty parse result, or an error
// once every strategy is exhausted.
func (f *Fetcher) Fetch(ctx context.Context, source Source) ([]domain.Article, error) {
	for i, strategy := range source.Strategies {
		articles, err := f.attempt(ctx, source, strategy)
		if err != nil {
			f.debug("strategy failed", "source", source.Name, "strategy", i, "error", err)
			continue
		}
		if len(articles) == 0 {
			f.debug("strategy yielded no items", "source", source.Name, "strategy", i)
			continue
		}
		return articles, nil
	}
	return nil, fmt.Errorf("source %s: all strategies exhausted", source.Name)
}

func (f *Fetcher) attempt(ctx context.Context, source Source, strategy Strategy) ([]domain.Article, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, attemptURL(source, strategy), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("feed returned %s", resp.Status)
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	return f.parser.Parse(string(payload), strategy.Format), nil
}

func attemptURL(source Source, strategy Strategy) string {
	if strategy.ProxyPrefix == "" {
		return source.FeedURL
	}
	return strategy.ProxyPrefix + url.QueryEscape(source.FeedURL)
}

func (f *Fetcher) debug(msg string, args ...any) {
	if f.logger != nil {
		f.logger.Debug(msg, args...)
	}
}
