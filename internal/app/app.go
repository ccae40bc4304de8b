package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"EquityNewsScanner/internal/config"
	"EquityNewsScanner/internal/infrastructure/cache"
	"EquityNewsScanner/internal/infrastructure/feed"
	"EquityNewsScanner/internal/infrastructure/proxy"
	"EquityNewsScanner/internal/infrastructure/scheduler"
	"EquityNewsScanner/internal/knowledge"
	"EquityNewsScanner/internal/logging"
	"EquityNewsScanner/internal/ports"
	"EquityNewsScanner/internal/usecase"
)

// Application wires configuration to the aggregation service and lifecycle
// orchestration.
type Application struct {
	cfg       config.Config
	service   *usecase.Service
	scheduler ports.Scheduler
	logger    *slog.Logger
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	base, err := knowledge.Load(cfg.Knowledge.OverrideFile)
	if err != nil {
		return nil, err
	}

	parser := feed.NewParser()
	fetcher := feed.NewFetcher(
		&http.Client{},
		parser,
		cfg.Fetch.AttemptTimeout(),
		baseLogger.With("component", "fetcher"),
	)

	var provider ports.NewsProvider
	if cfg.Provider.ProxyURL != "" {
		provider = proxy.NewClient(cfg.Provider.ProxyURL, nil)
	}

	aggregator := feed.NewAggregator(
		feedSources(cfg),
		fetcher,
		provider,
		cfg.Refresh.RecencyWindow(),
		baseLogger.With("component", "aggregator"),
	)

	service := usecase.NewService(usecase.ServiceDeps{
		Source: aggregator,
		Base:   base,
		Cache:  cache.New(cfg.Cache.RedisURL),
		TTL:    cfg.Cache.TTL(),
		Logger: baseLogger.With("component", "service"),
	})

	return &Application{
		cfg:       cfg,
		service:   service,
		scheduler: scheduler.NewCronScheduler(cfg.Refresh.CronExpression),
		logger:    baseLogger.With("component", "app"),
	}, nil
}

// Service exposes the aggregation service for embedding callers.
func (a *Application) Service() *usecase.Service {
	return a.service
}

// Run restores or fetches the first snapshot, starts the refresh schedule,
// and blocks until the context is cancelled.
func (a *Application) Run(ctx context.Context) error {
	if !a.service.Restore(ctx) {
		a.service.Refresh(ctx)
	}
	a.logWatchlist()

	job := func(time.Time) {
		a.service.Refresh(ctx)
		a.logWatchlist()
	}
	if err := a.scheduler.Start(ctx, job); err != nil {
		return err
	}

	<-ctx.Done()
	return a.scheduler.Stop(context.Background())
}

// logWatchlist reports the per-ticker view after each refresh. This is the
// digest downstream displays render; here it only goes to the log.
func (a *Application) logWatchlist() {
	for _, ticker := range a.cfg.Watchlist {
		relevant, err := a.service.TopRelevant(ticker, 5)
		if err != nil {
			a.logger.Warn("skipping watchlist entry", "ticker", ticker, "error", err)
			continue
		}
		summary, err := a.service.SummarizeSentiment(ticker)
		if err != nil {
			continue
		}
		forecast, err := a.service.ForecastFor(ticker)
		if err != nil {
			continue
		}
		a.logger.Info("watchlist digest",
			"ticker", ticker,
			"relevant", len(relevant),
			"sentiment", summary.Score,
			"confidence", summary.Confidence,
			"trend", forecast.Trend,
			"volatility", forecast.Volatility,
		)
	}
}

func feedSources(cfg config.Config) []feed.Source {
	if len(cfg.Feeds) == 0 {
		return feed.DefaultSources()
	}

	sources := make([]feed.Source, 0, len(cfg.Feeds))
	for _, fc := range cfg.Feeds {
		strategies := make([]feed.Strategy, 0, len(fc.Strategies))
		for _, sc := range fc.Strategies {
			strategies = append(strategies, feed.Strategy{
				ProxyPrefix: sc.Proxy,
				Format:      feed.PayloadFormat(sc.Format),
			})
		}
		if len(strategies) == 0 {
			strategies = []feed.Strategy{{Format: feed.FormatDirectXML}}
		}
		sources = append(sources, feed.Source{Name: fc.Name, FeedURL: fc.URL, Strategies: strategies})
	}
	return sources
}
