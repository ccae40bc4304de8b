package feed

import (
	"context"
	"log/slog"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"EquityNewsScanner/internal/domain"
	"EquityNewsScanner/internal/ports"
)

const (
	defaultStagger       = 100 * time.Millisecond
	defaultRecencyWindow = 365 * 24 * time.Hour
)

// Aggregator fans fetches out across every registered source, merges and
// deduplicates the results, and substitutes the sample set on total
// failure. FetchAll never fails and never lets one hanging source block
// the batch.
type Aggregator struct {
	sources []Source
	fetcher *Fetcher
	proxy   ports.NewsProvider
	window  time.Duration
	stagger time.Duration
	logger  *slog.Logger
	now     func() time.Time
}

var _ ports.ArticleSource = (*Aggregator)(nil)

// NewAggregator wires the source registry and fetcher; proxy may be nil.
func NewAggregator(sources []Source, fetcher *Fetcher, proxy ports.NewsProvider, window time.Duration, logger *slog.Logger) *Aggregator {
	if window <= 0 {
		window = defaultRecencyWindow
	}
	return &Aggregator{
		sources: sources,
		fetcher: fetcher,
		proxy:   proxy,
		window:  window,
		stagger: defaultStagger,
		logger:  logger,
		now:     time.Now,
	}
}

// FetchAll runs one aggregation cycle: backend proxy first if configured,
// then the staggered relay fan-out; merge, dedupe by normalized link,
// filter to the recency window, sort newest-first. Empty result means the
// static fallback set.
func (a *Aggregator) FetchAll(ctx context.Context) []domain.Article {
	now := a.now()

	merged := a.fromProxy(ctx)
	if len(merged) == 0 {
		merged = a.fanOut(ctx)
	}

	articles := dedupeByLink(merged)
	articles = a.filterRecent(articles, now)
	sortNewestFirst(articles)

	if len(articles) == 0 {
		a.debug("all sources failed, serving sample set")
		return FallbackArticles(now)
	}
	return articles
}

func (a *Aggregator) fromProxy(ctx context.Context) []domain.Article {
	if a.proxy == nil {
		return nil
	}
	articles, err := a.proxy.FetchNews(ctx)
	if err != nil {
		a.debug("backend proxy unavailable", "error", err)
		return nil
	}
	a.debug("backend proxy served batch", "count", len(articles))
	return articles
}

// fanOut launches one goroutine per source. A shared limiter staggers the
// starts about 100ms apart so the public relays are not hit simultaneously;
// each attempt carries its own timeout, and individual failures are
// ignored.
func (a *Aggregator) fanOut(ctx context.Context) []domain.Article {
	limiter := rate.NewLimiter(rate.Every(a.stagger), 1)

	var (
		mu     sync.Mutex
		merged []domain.Article
		wg     sync.WaitGroup
	)

	for _, source := range a.sources {
		wg.Add(1)
		go func(source Source) {
			defer wg.Done()

			if err := limiter.Wait(ctx); err != nil {
				return
			}

			articles, err := a.fetcher.Fetch(ctx, source)
			if err != nil {
				a.debug("source failed", "source", source.Name, "error", err)
				return
			}
			a.debug("source fetched", "source", source.Name, "count", len(articles))

			mu.Lock()
			merged = append(merged, articles...)
			mu.Unlock()
		}(source)
	}

	wg.Wait()
	return merged
}

func (a *Aggregator) filterRecent(articles []domain.Article, now time.Time) []domain.Article {
	out := articles[:0]
	for _, article := range articles {
		// Missing dates count as recent enough.
		if article.PublishedAt.IsZero() || now.Sub(article.PublishedAt) <= a.window {
			out = append(out, article)
		}
	}
	return out
}

func sortNewestFirst(articles []domain.Article) {
	// Zero times are the epoch's far past, so dateless items land last.
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})
}

// dedupeByLink keeps the first occurrence of each normalized link.
// Articles without a link are kept as-is.
func dedupeByLink(articles []domain.Article) []domain.Article {
	seen := make(map[string]struct{}, len(articles))
	out := make([]domain.Article, 0, len(articles))
	for _, article := range articles {
		key := normalizeLink(article.Link)
		if key != "" {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}
		out = append(out, article)
	}
	return out
}

// normalizeLink canonicalizes scheme and host casing, drops fragments and
// tracking parameters, and trims the trailing slash so syndicated copies of
// the same URL collapse together.
func normalizeLink(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}
	parsed, err := url.Parse(link)
	if err != nil {
		return strings.ToLower(link)
	}

	parsed.Scheme = strings.ToLower(parsed.Scheme)
	parsed.Host = strings.ToLower(parsed.Host)
	parsed.Fragment = ""

	query := parsed.Query()
	for param := range query {
		if strings.HasPrefix(strings.ToLower(param), "utm_") {
			query.Del(param)
		}
	}
	parsed.RawQuery = query.Encode()

	normalized := parsed.String()
	return strings.TrimSuffix(normalized, "/")
}

func (a *Aggregator) debug(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Debug(msg, args...)
	}
}
