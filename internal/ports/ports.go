package ports

import (
	"context"
	"time"

	"EquityNewsScanner/internal/domain"
)

// ArticleSource aggregates fresh articles from all upstream feeds. It never
// fails; total upstream failure yields the static sample set.
type ArticleSource interface {
	FetchAll(ctx context.Context) []domain.Article
}

// NewsProvider is an optional single-endpoint backend that returns canonical
// items, tried before the public relay fan-out.
type NewsProvider interface {
	FetchNews(ctx context.Context) ([]domain.Article, error)
}

// Cache stores opaque payloads with a TTL. Backed by Redis when configured,
// otherwise an in-process map.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
}

// Scheduler controls when the refresh job executes.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
