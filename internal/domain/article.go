package domain

import "time"

// SampleSourceName marks articles from the static fallback set substituted
// when every live source fails.
const SampleSourceName = "Sample Data"

// Article is the canonical record produced by the feed layer. Immutable
// once constructed; the aggregator owns it until handed out as part of a
// read-only snapshot.
type Article struct {
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Link        string    `json:"link"`
	SourceName  string    `json:"sourceName"`
	PublishedAt time.Time `json:"publishedAt"`
}

// FullText joins title and summary for term matching.
func (a Article) FullText() string {
	if a.Summary == "" {
		return a.Title
	}
	return a.Title + " " + a.Summary
}

// ScoredArticle attaches a transient relevance score to an article for one
// ticker. A score of 0 means the article must not be surfaced.
type ScoredArticle struct {
	Article Article
	Score   int
}

// Snapshot is one aggregation cycle's result. Refresh builds a new snapshot
// and swaps it wholesale; nothing mutates an existing one, so scoring calls
// never see a torn corpus.
type Snapshot struct {
	Articles  []Article      `json:"articles"`
	DocFreq   map[string]int `json:"docFreq"`
	FetchedAt time.Time      `json:"fetchedAt"`
	Sample    bool           `json:"sample"`
}

// SentimentSummary is a stateless per-ticker view over the current
// relevance-filtered article set.
type SentimentSummary struct {
	Score        int `json:"score"`      // -100..100
	Confidence   int `json:"confidence"` // 0..100
	PositiveHits int `json:"positiveHits"`
	NegativeHits int `json:"negativeHits"`
	ArticleCount int `json:"articleCount"`
}

// Forecast carries rule-based trend labels derived from sentiment. It is
// deliberately not a price prediction; callers treat it as advisory only.
type Forecast struct {
	Trend      string `json:"trend"`      // bullish, bearish, neutral
	Volatility string `json:"volatility"` // high, moderate, low
	Direction  string `json:"direction"`  // up, down, sideways
	Confidence int    `json:"confidence"`
}
