package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"EquityNewsScanner/internal/domain"
)

func feedWithItems(items ...[2]string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0"?><rss version="2.0"><channel><title>t</title>`)
	for _, item := range items {
		fmt.Fprintf(&b, "<item><title>%s</title><link>%s</link></item>", item[0], item[1])
	}
	b.WriteString("</channel></rss>")
	return b.String()
}

func TestFetchAllDedupesAcrossSources(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/a", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(feedWithItems(
			[2]string{"Shared story", "https://example.com/story?utm_source=rss"},
			[2]string{"Only A", "https://example.com/only-a"},
		)))
	})
	mux.HandleFunc("/b", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(feedWithItems(
			[2]string{"Shared story syndicated", "https://example.com/story/"},
			[2]string{"Only B", "https://example.com/only-b"},
		)))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	sources := []Source{
		{Name: "a", FeedURL: server.URL + "/a", Strategies: []Strategy{{Format: FormatDirectXML}}},
		{Name: "b", FeedURL: server.URL + "/b", Strategies: []Strategy{{Format: FormatDirectXML}}},
	}
	fetcher := NewFetcher(server.Client(), NewParser(), time.Second, nil)
	agg := NewAggregator(sources, fetcher, nil, 0, nil)
	agg.stagger = time.Millisecond

	articles := agg.FetchAll(context.Background())
	if len(articles) != 3 {
		t.Fatalf("expected 3 articles after dedupe, got %d", len(articles))
	}

	shared := 0
	for _, article := range articles {
		if strings.HasPrefix(article.Title, "Shared story") {
			shared++
		}
	}
	if shared != 1 {
		t.Fatalf("expected exactly one copy of the shared story, got %d", shared)
	}
}

func TestFetchAllServesFallbackWhenAllFail(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body>blocked</body></html>"))
	}))
	defer server.Close()

	sources := make([]Source, 0, 15)
	for i := 0; i < 15; i++ {
		sources = append(sources, Source{
			Name:       fmt.Sprintf("source-%d", i),
			FeedURL:    server.URL + "/feed",
			Strategies: []Strategy{{Format: FormatDirectXML}},
		})
	}

	now := time.Date(2025, time.August, 10, 12, 0, 0, 0, time.UTC)
	fetcher := NewFetcher(server.Client(), NewParser(), time.Second, nil)
	agg := NewAggregator(sources, fetcher, nil, 0, nil)
	agg.stagger = time.Millisecond
	agg.now = func() time.Time { return now }

	articles := agg.FetchAll(context.Background())
	if len(articles) != 5 {
		t.Fatalf("expected 5 sample articles, got %d", len(articles))
	}
	want := FallbackArticles(now)
	for i, article := range articles {
		if article.SourceName != domain.SampleSourceName {
			t.Fatalf("expected sample source, got %q", article.SourceName)
		}
		if article.Title != want[i].Title {
			t.Fatalf("sample %d: expected title %q, got %q", i, want[i].Title, article.Title)
		}
		if !article.PublishedAt.Equal(now.Add(-time.Duration(i) * time.Hour)) {
			t.Fatalf("sample %d: unexpected timestamp %v", i, article.PublishedAt)
		}
	}
}

func TestFetchAllResolvesDespiteHangingSources(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(500 * time.Millisecond)
		_, _ = w.Write([]byte("<html>late</html>"))
	}))
	defer server.Close()

	sources := make([]Source, 0, 3)
	for i := 0; i < 3; i++ {
		sources = append(sources, Source{
			Name:       fmt.Sprintf("slow-%d", i),
			FeedURL:    server.URL,
			Strategies: []Strategy{{Format: FormatDirectXML}},
		})
	}

	fetcher := NewFetcher(server.Client(), NewParser(), 50*time.Millisecond, nil)
	agg := NewAggregator(sources, fetcher, nil, 0, nil)
	agg.stagger = time.Millisecond

	start := time.Now()
	articles := agg.FetchAll(context.Background())
	elapsed := time.Since(start)

	if len(articles) != 5 {
		t.Fatalf("expected sample fallback, got %d articles", len(articles))
	}
	if elapsed > 2*time.Second {
		t.Fatalf("fan-out took too long: %v", elapsed)
	}
}

func TestFilterRecentAndSort(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.August, 10, 12, 0, 0, 0, time.UTC)
	agg := &Aggregator{window: defaultRecencyWindow}

	articles := []domain.Article{
		{Title: "stale", PublishedAt: now.Add(-400 * 24 * time.Hour)},
		{Title: "dateless"},
		{Title: "fresh", PublishedAt: now.Add(-time.Hour)},
	}

	kept := agg.filterRecent(articles, now)
	sortNewestFirst(kept)

	if len(kept) != 2 {
		t.Fatalf("expected 2 articles after recency filter, got %d", len(kept))
	}
	if kept[0].Title != "fresh" {
		t.Fatalf("expected fresh article first, got %q", kept[0].Title)
	}
	if kept[1].Title != "dateless" {
		t.Fatalf("expected dateless article last, got %q", kept[1].Title)
	}
}

func TestNormalizeLink(t *testing.T) {
	t.Parallel()

	cases := []struct {
		link string
		want string
	}{
		{"HTTPS://Example.com/Story/", "https://example.com/Story"},
		{"https://example.com/story?utm_source=rss&utm_medium=feed", "https://example.com/story"},
		{"https://example.com/story#section", "https://example.com/story"},
		{"https://example.com/story?id=7", "https://example.com/story?id=7"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := normalizeLink(tc.link); got != tc.want {
			t.Fatalf("normalizeLink(%q) = %q, want %q", tc.link, got, tc.want)
		}
	}
}

type stubProvider struct {
	articles []domain.Article
	err      error
}

func (s *stubProvider) FetchNews(context.Context) ([]domain.Article, error) {
	return s.articles, s.err
}

func TestFetchAllPrefersBackendProxy(t *testing.T) {
	t.Parallel()

	now := time.Now()
	provider := &stubProvider{articles: []domain.Article{
		{Title: "older", Link: "https://example.com/1", PublishedAt: now.Add(-2 * time.Hour)},
		{Title: "newer", Link: "https://example.com/2", PublishedAt: now.Add(-time.Hour)},
	}}

	agg := NewAggregator(nil, NewFetcher(nil, nil, 0, nil), provider, 0, nil)
	agg.stagger = time.Millisecond

	articles := agg.FetchAll(context.Background())
	if len(articles) != 2 {
		t.Fatalf("expected backend batch, got %d articles", len(articles))
	}
	if articles[0].Title != "newer" {
		t.Fatalf("expected newest first, got %q", articles[0].Title)
	}
}

func TestFetchAllFallsBackWhenProxyFails(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{err: fmt.Errorf("backend down")}
	agg := NewAggregator(nil, NewFetcher(nil, nil, 0, nil), provider, 0, nil)
	agg.stagger = time.Millisecond

	articles := agg.FetchAll(context.Background())
	if len(articles) != 5 {
		t.Fatalf("expected sample fallback, got %d articles", len(articles))
	}
}
