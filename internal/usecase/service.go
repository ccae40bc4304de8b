package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"EquityNewsScanner/internal/domain"
	"EquityNewsScanner/internal/knowledge"
	"EquityNewsScanner/internal/ports"
	"EquityNewsScanner/internal/scoring"
	"EquityNewsScanner/internal/sentiment"
)

// ErrInvalidTicker rejects symbols that do not match the 1-5 letter pattern
// with an optional single-letter class suffix. Validation happens here, at
// the boundary; the scorer never sees malformed input.
var ErrInvalidTicker = errors.New("invalid ticker symbol")

const snapshotCacheKey = "snapshot:v1"

// ServiceDeps wires all driven adapters into the service.
type ServiceDeps struct {
	Source ports.ArticleSource
	Base   *knowledge.Base
	Cache  ports.Cache
	TTL    time.Duration
	Logger *slog.Logger
}

// Service owns the current aggregation snapshot and exposes the scoring,
// ranking, and sentiment operations over it. The snapshot is replaced
// wholesale on refresh and never mutated, so reads are always consistent.
type Service struct {
	source   ports.ArticleSource
	base     *knowledge.Base
	scorer   *scoring.Scorer
	cache    ports.Cache
	ttl      time.Duration
	logger   *slog.Logger
	snapshot atomic.Pointer[domain.Snapshot]
	now      func() time.Time
}

// NewService constructs the orchestration component.
func NewService(deps ServiceDeps) *Service {
	ttl := deps.TTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Service{
		source: deps.Source,
		base:   deps.Base,
		scorer: scoring.New(deps.Base),
		cache:  deps.Cache,
		ttl:    ttl,
		logger: deps.Logger,
		now:    time.Now,
	}
}

// Refresh runs one aggregation cycle, recomputes corpus statistics, and
// atomically swaps the snapshot. It never fails: total upstream failure
// produces a sample-data snapshot.
func (s *Service) Refresh(ctx context.Context) *domain.Snapshot {
	articles := s.source.FetchAll(ctx)
	snapshot := s.buildSnapshot(articles)
	s.snapshot.Store(snapshot)
	s.writeCache(ctx, snapshot)

	if s.logger != nil {
		s.logger.Info("snapshot refreshed",
			"articles", len(snapshot.Articles),
			"sample", snapshot.Sample,
		)
	}
	return snapshot
}

// Restore loads a previously cached snapshot, returning whether one was
// usable. Sample-data snapshots are not restored; a fresh fetch is cheaper
// than resurfacing stale placeholders.
func (s *Service) Restore(ctx context.Context) bool {
	if s.cache == nil {
		return false
	}
	raw, ok := s.cache.Get(ctx, snapshotCacheKey)
	if !ok {
		return false
	}
	var snapshot domain.Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return false
	}
	if snapshot.Sample || len(snapshot.Articles) == 0 {
		return false
	}
	s.snapshot.Store(&snapshot)
	if s.logger != nil {
		s.logger.Info("snapshot restored from cache", "articles", len(snapshot.Articles), "fetchedAt", snapshot.FetchedAt)
	}
	return true
}

// Articles returns the current snapshot's article list. Callers must treat
// it as read-only.
func (s *Service) Articles() []domain.Article {
	snapshot := s.snapshot.Load()
	if snapshot == nil {
		return nil
	}
	return snapshot.Articles
}

// ScoreRelevance scores one article for a ticker against the current
// corpus.
func (s *Service) ScoreRelevance(ticker string, article domain.Article) (int, error) {
	ticker, err := cleanTicker(ticker)
	if err != nil {
		return 0, err
	}
	return s.scorer.Score(ticker, article, s.stats()), nil
}

// TopRelevant returns the ranked, threshold-filtered article subset for a
// ticker.
func (s *Service) TopRelevant(ticker string, limit int) ([]domain.ScoredArticle, error) {
	ticker, err := cleanTicker(ticker)
	if err != nil {
		return nil, err
	}
	return s.scorer.TopRelevant(ticker, s.Articles(), s.stats(), limit), nil
}

// SummarizeSentiment derives keyword sentiment from the ticker's
// relevance-filtered articles.
func (s *Service) SummarizeSentiment(ticker string) (domain.SentimentSummary, error) {
	relevant, err := s.TopRelevant(ticker, 0)
	if err != nil {
		return domain.SentimentSummary{}, err
	}
	articles := make([]domain.Article, len(relevant))
	for i, scored := range relevant {
		articles[i] = scored.Article
	}
	return sentiment.Summarize(articles), nil
}

// ForecastFor maps the ticker's sentiment summary onto rule-based trend
// labels. Advisory only.
func (s *Service) ForecastFor(ticker string) (domain.Forecast, error) {
	summary, err := s.SummarizeSentiment(ticker)
	if err != nil {
		return domain.Forecast{}, err
	}
	return sentiment.DeriveForecast(summary), nil
}

func (s *Service) buildSnapshot(articles []domain.Article) *domain.Snapshot {
	stats := scoring.ComputeStats(articles, s.base.TermUniverse())
	sample := isSampleBatch(articles)
	return &domain.Snapshot{
		Articles:  articles,
		DocFreq:   stats.DocFreq,
		FetchedAt: s.now(),
		Sample:    sample,
	}
}

func (s *Service) stats() scoring.CorpusStats {
	snapshot := s.snapshot.Load()
	if snapshot == nil {
		return scoring.CorpusStats{}
	}
	return scoring.CorpusStats{DocFreq: snapshot.DocFreq, Size: len(snapshot.Articles)}
}

func (s *Service) writeCache(ctx context.Context, snapshot *domain.Snapshot) {
	if s.cache == nil || snapshot.Sample {
		return
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, snapshotCacheKey, raw, s.ttl); err != nil && s.logger != nil {
		s.logger.Debug("snapshot cache write failed", "error", err)
	}
}

func isSampleBatch(articles []domain.Article) bool {
	for _, article := range articles {
		if article.SourceName != domain.SampleSourceName {
			return false
		}
	}
	return len(articles) > 0
}

func cleanTicker(ticker string) (string, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if !knowledge.ValidTicker(ticker) {
		return "", ErrInvalidTicker
	}
	return ticker, nil
}
