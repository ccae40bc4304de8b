package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newRelayTestServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/feed", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body>blocked</body></html>"))
	})
	mux.HandleFunc("/relay", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("url") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(testRSS))
	})
	mux.HandleFunc("/fail", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	return httptest.NewServer(mux)
}

func TestFetchFallsBackAcrossStrategies(t *testing.T) {
	t.Parallel()

	server := newRelayTestServer()
	defer server.Close()

	source := Source{
		Name:    "test",
		FeedURL: server.URL + "/feed",
		Strategies: []Strategy{
			{Format: FormatDirectXML},
			{ProxyPrefix: server.URL + "/relay?url=", Format: FormatDirectXML},
		},
	}

	fetcher := NewFetcher(server.Client(), NewParser(), time.Second, nil)
	articles, err := fetcher.Fetch(context.Background(), source)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles from relay strategy, got %d", len(articles))
	}
	if articles[0].Title != "Tesla shares surge on delivery beat" {
		t.Fatalf("unexpected title: %q", articles[0].Title)
	}
}

func TestFetchAllStrategiesExhausted(t *testing.T) {
	t.Parallel()

	server := newRelayTestServer()
	defer server.Close()

	source := Source{
		Name:    "test",
		FeedURL: server.URL + "/feed",
		Strategies: []Strategy{
			{Format: FormatDirectXML},
			{Format: FormatJSONItems},
		},
	}

	fetcher := NewFetcher(server.Client(), NewParser(), time.Second, nil)
	if _, err := fetcher.Fetch(context.Background(), source); err == nil {
		t.Fatalf("expected error once every strategy failed")
	}
}

func TestFetchRejectsNon2xx(t *testing.T) {
	t.Parallel()

	server := newRelayTestServer()
	defer server.Close()

	source := Source{
		Name:       "test",
		FeedURL:    server.URL + "/fail",
		Strategies: []Strategy{{Format: FormatDirectXML}},
	}

	fetcher := NewFetcher(server.Client(), NewParser(), time.Second, nil)
	if _, err := fetcher.Fetch(context.Background(), source); err == nil {
		t.Fatalf("expected error for 500 response")
	}
}

func TestAttemptURL(t *testing.T) {
	t.Parallel()

	source := Source{FeedURL: "https://example.com/rss?x=1"}
	if got := attemptURL(source, Strategy{}); got != source.FeedURL {
		t.Fatalf("expected direct URL, got %q", got)
	}

	got := attemptURL(source, Strategy{ProxyPrefix: "https://relay.example/get?url="})
	want := "https://relay.example/get?url=https%3A%2F%2Fexample.com%2Frss%3Fx%3D1"
	if got != want {
		t.Fatalf("expected escaped relay URL %q, got %q", want, got)
	}
}
