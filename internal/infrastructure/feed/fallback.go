package feed

import (
	"time"

	"EquityNewsScanner/internal/domain"
)

// FallbackArticles is the static sample set substituted when every source
// and strategy fails, so callers always hold renderable data. Timestamps
// are relative to now: the first item is current, each later one an hour
// older.
func FallbackArticles(now time.Time) []domain.Article {
	samples := []struct {
		title   string
		summary string
		link    string
	}{
		{
			title:   "Markets Mixed as Investors Weigh Quarterly Earnings Season",
			summary: "Major indexes traded in a narrow range while analysts parsed a heavy slate of earnings reports and revised price targets across the technology and banking sectors.",
			link:    "https://example.com/sample/markets-mixed-earnings",
		},
		{
			title:   "Apple Inc and Microsoft Lead Big Tech Rally on Cloud Growth",
			summary: "Shares of Apple Inc and Microsoft climbed after both companies reported revenue growth driven by services and Azure cloud demand, lifting the broader market.",
			link:    "https://example.com/sample/big-tech-rally",
		},
		{
			title:   "Federal Reserve Signals Patience on Interest Rate Path",
			summary: "Policymakers indicated they are in no hurry to adjust rates, citing steady inflation data and a resilient labor market, while traders pared bets on near-term cuts.",
			link:    "https://example.com/sample/fed-rate-path",
		},
		{
			title:   "Nvidia Surges as Data Center Demand Tops Analyst Forecasts",
			summary: "Nvidia stock jumped after the chipmaker's quarterly earnings beat expectations on record data center revenue, prompting a wave of analyst upgrades.",
			link:    "https://example.com/sample/nvidia-data-center",
		},
		{
			title:   "Oil Prices Slip as Supply Concerns Ease, Energy Shares Decline",
			summary: "Crude futures fell for a second session on rising inventories, dragging energy shares lower while airlines and shippers advanced on the cost relief.",
			link:    "https://example.com/sample/oil-prices-slip",
		},
	}

	articles := make([]domain.Article, 0, len(samples))
	for i, sample := range samples {
		articles = append(articles, domain.Article{
			Title:       sample.title,
			Summary:     sample.summary,
			Link:        sample.link,
			SourceName:  domain.SampleSourceName,
			PublishedAt: now.Add(-time.Duration(i) * time.Hour),
		})
	}
	return articles
}
