package scoring

import (
	"math"
	"sort"
	"strings"

	"EquityNewsScanner/internal/domain"
	"EquityNewsScanner/internal/knowledge"
	"EquityNewsScanner/internal/sentiment"
)

// Scoring weights. These values are an empirical contract carried over
// unchanged; downstream filtering assumes them (threshold 30 against this
// exact ladder), so tests assert absolute scores.
const (
	symbolInTitle  = 150
	symbolInBody   = 80
	nameInTitle    = 100
	nameInBody     = 60
	productInTitle = 70
	productInBody  = 40
	keywordAny     = 30

	tfidfScale = 10

	financialVocabBoost = 25
	competitorBoost     = 15
	industryBoost       = 20
	strongPhraseBoost   = 20
	sentimentVerbBoost  = 15

	exclusionPenalty   = 50
	exclusionHardFloor = 50

	// RelevanceThreshold is the minimum score an article needs to be
	// surfaced for a ticker.
	RelevanceThreshold = 30

	defaultTopLimit = 100
)

var financialVocab = []string{
	"earnings", "revenue", "profit", "dividend", "quarterly", "analyst",
	"forecast", "price target", "upgrade", "downgrade", "ipo", "merger",
	"acquisition", "guidance",
}

var strongFinancialPhrases = []string{
	"earnings report", "quarterly earnings", "revenue growth", "stock price",
	"market cap", "trading volume", "dividend yield",
}

var sentimentVerbs = []string{
	"surge", "plunge", "rally", "sell-off", "upgrade", "downgrade",
}

// Scorer computes per-(ticker, article) relevance against a corpus.
type Scorer struct {
	base *knowledge.Base
}

// New builds a scorer over the loaded knowledge base.
func New(base *knowledge.Base) *Scorer {
	return &Scorer{base: base}
}

// Score is a pure function of its inputs: identical arguments always yield
// the identical integer. The components are additive and applied in fixed
// order; the result is rounded and floored at 0.
func (s *Scorer) Score(ticker string, article domain.Article, stats CorpusStats) int {
	symbol := strings.ToLower(strings.TrimSpace(ticker))
	title := article.Title
	fullText := article.FullText()
	lowerFull := strings.ToLower(fullText)

	total := 0.0

	// 1. Bare ticker symbol.
	switch {
	case MatchesWord(title, symbol):
		total += symbolInTitle
	case MatchesWord(fullText, symbol):
		total += symbolInBody
	}

	profile, ok := s.base.Lookup(ticker)
	if !ok {
		// Unknown ticker degrades to bare-symbol matching only.
		return clampScore(total)
	}

	// 2. Direct term matching, each distinct term contributing independently.
	for _, name := range profile.Names {
		switch {
		case MatchesWord(title, name):
			total += nameInTitle
		case MatchesWord(fullText, name):
			total += nameInBody
		}
	}
	for _, product := range profile.Products {
		switch {
		case MatchesWord(title, product):
			total += productInTitle
		case MatchesWord(fullText, product):
			total += productInBody
		}
	}
	for _, keyword := range profile.Keywords {
		if MatchesWord(fullText, keyword) {
			total += keywordAny
		}
	}

	// 3. TF-IDF over the same term universe.
	total += tfidfComponent(knowledge.ScoringTerms(ticker, profile), fullText, stats)

	// Context boosts only reinforce an existing signal. An article that
	// never mentions the company stays at zero no matter how financial it
	// sounds or how many competitors it covers.
	if total == 0 {
		return 0
	}

	// 4. Financial vocabulary and co-occurrence boosts.
	for _, word := range financialVocab {
		if strings.Contains(lowerFull, word) {
			total += financialVocabBoost
			break
		}
	}
	for _, competitor := range profile.Competitors {
		if s.competitorMentioned(competitor, fullText) {
			total += competitorBoost
		}
	}
	for _, industry := range profile.Industries {
		if strings.Contains(lowerFull, industry) {
			total += industryBoost
		}
	}

	// 5. Strong financial context.
	for _, phrase := range strongFinancialPhrases {
		if strings.Contains(lowerFull, phrase) {
			total += strongPhraseBoost
		}
	}
	for _, verb := range sentimentVerbs {
		if strings.Contains(lowerFull, verb) {
			total += sentimentVerbBoost
		}
	}

	// 6. Exclusion terms disambiguate false positives: a weak match is
	// zeroed outright, a strong one pays a flat penalty.
	for _, exclude := range profile.ExcludeTerms {
		if strings.Contains(lowerFull, exclude) {
			if total < exclusionHardFloor {
				return 0
			}
			total -= exclusionPenalty
			break
		}
	}

	return clampScore(total)
}

// ScoreAgainstCorpus computes statistics for the given corpus and scores
// one article. Batch callers should compute stats once and use Score.
func (s *Scorer) ScoreAgainstCorpus(ticker string, article domain.Article, corpus []domain.Article) int {
	stats := ComputeStats(corpus, s.base.TermUniverse())
	return s.Score(ticker, article, stats)
}

// TopRelevant filters articles to the relevance threshold, sorts by score
// descending with ties broken by sentiment keyword hits, and truncates to
// limit (default 100).
func (s *Scorer) TopRelevant(ticker string, articles []domain.Article, stats CorpusStats, limit int) []domain.ScoredArticle {
	if limit <= 0 {
		limit = defaultTopLimit
	}

	scored := make([]domain.ScoredArticle, 0, len(articles))
	for _, article := range articles {
		score := s.Score(ticker, article, stats)
		if score < RelevanceThreshold {
			continue
		}
		scored = append(scored, domain.ScoredArticle{Article: article, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return totalSentimentHits(scored[i].Article) > totalSentimentHits(scored[j].Article)
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

func (s *Scorer) competitorMentioned(competitor, fullText string) bool {
	if MatchesWord(fullText, strings.ToLower(competitor)) {
		return true
	}
	profile, ok := s.base.Lookup(competitor)
	if !ok {
		return false
	}
	for _, name := range profile.Names {
		if MatchesWord(fullText, name) {
			return true
		}
	}
	return false
}

// tfidfComponent sums tf x ln(corpusSize/docFreq) over the term universe,
// scaled by a fixed factor of 10. Document frequency is floored at 1.
func tfidfComponent(terms []string, fullText string, stats CorpusStats) float64 {
	if stats.Size <= 0 {
		return 0
	}
	total := 0.0
	for _, term := range terms {
		tf := TermFrequency(fullText, term)
		if tf == 0 {
			continue
		}
		df := stats.DocFreq[term]
		if df < 1 {
			df = 1
		}
		total += tf * math.Log(float64(stats.Size)/float64(df)) * tfidfScale
	}
	return total
}

func totalSentimentHits(article domain.Article) int {
	pos, neg := sentiment.HitCounts(article.FullText())
	return pos + neg
}

func clampScore(total float64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(total))
}
