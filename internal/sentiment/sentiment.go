// Package sentiment derives keyword-based sentiment and rule-based trend
// labels from a relevance-filtered article set. It is a deterministic
// heuristic, not a prediction model; DeriveForecast is the documented
// extension point if a real signal source ever replaces it.
package sentiment

import (
	"math"
	"strings"

	"EquityNewsScanner/internal/domain"
)

var positiveWords = []string{
	"surge", "rally", "soar", "jump", "gain", "climb", "beat", "record",
	"growth", "profit", "upgrade", "bullish", "strong", "outperform",
	"recovery", "breakout", "exceed", "momentum", "buyback", "dividend",
}

var negativeWords = []string{
	"plunge", "drop", "tumble", "slump", "decline", "miss", "loss",
	"downgrade", "bearish", "weak", "sell-off", "lawsuit", "probe",
	"investigation", "recall", "layoff", "bankruptcy", "warning", "crash",
	"shortfall",
}

// HitCounts returns the number of distinct positive and negative dictionary
// words present in text.
func HitCounts(text string) (positive, negative int) {
	lower := strings.ToLower(text)
	for _, word := range positiveWords {
		if strings.Contains(lower, word) {
			positive++
		}
	}
	for _, word := range negativeWords {
		if strings.Contains(lower, word) {
			negative++
		}
	}
	return positive, negative
}

// Summarize aggregates keyword hits across the article set into a score in
// -100..100 and a confidence in 0..100. Stateless; recomputed per request.
func Summarize(articles []domain.Article) domain.SentimentSummary {
	summary := domain.SentimentSummary{ArticleCount: len(articles)}

	for _, article := range articles {
		pos, neg := HitCounts(article.FullText())
		summary.PositiveHits += pos
		summary.NegativeHits += neg
	}

	hits := summary.PositiveHits + summary.NegativeHits
	if hits > 0 {
		raw := float64(summary.PositiveHits-summary.NegativeHits) / float64(hits) * 100
		summary.Score = int(math.Round(raw))
		summary.Confidence = clamp(20+summary.ArticleCount*8+hits*2, 0, 100)
	} else {
		summary.Confidence = clamp(summary.ArticleCount*5, 0, 25)
	}

	return summary
}

// DeriveForecast maps a sentiment summary onto trend, volatility, and
// price-direction labels. Thresholds are heuristic and non-authoritative.
func DeriveForecast(summary domain.SentimentSummary) domain.Forecast {
	forecast := domain.Forecast{
		Trend:      "neutral",
		Volatility: "low",
		Direction:  "sideways",
		Confidence: summary.Confidence,
	}

	switch {
	case summary.Score >= 20:
		forecast.Trend = "bullish"
	case summary.Score <= -20:
		forecast.Trend = "bearish"
	}

	switch {
	case summary.Score >= 10:
		forecast.Direction = "up"
	case summary.Score <= -10:
		forecast.Direction = "down"
	}

	if summary.ArticleCount > 0 {
		density := float64(summary.PositiveHits+summary.NegativeHits) / float64(summary.ArticleCount)
		switch {
		case density >= 3:
			forecast.Volatility = "high"
		case density >= 1.5:
			forecast.Volatility = "moderate"
		}
	}

	return forecast
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
