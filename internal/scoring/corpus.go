package scoring

import (
	"strings"

	"EquityNewsScanner/internal/domain"
)

// CorpusStats carries per-batch document frequencies. Each aggregation
// cycle computes a fresh value and stores it on the snapshot; statistics
// are never shared across corpora.
type CorpusStats struct {
	DocFreq map[string]int
	Size    int
}

// ComputeStats counts, for every term in the universe, how many articles
// in the corpus contain it (case-insensitive substring), floored at 1 so
// the IDF divisor can never be zero.
func ComputeStats(corpus []domain.Article, termUniverse []string) CorpusStats {
	texts := make([]string, len(corpus))
	for i, article := range corpus {
		texts[i] = strings.ToLower(article.FullText())
	}

	freq := make(map[string]int, len(termUniverse))
	for _, term := range termUniverse {
		if term == "" {
			continue
		}
		count := 0
		for _, text := range texts {
			if strings.Contains(text, term) {
				count++
			}
		}
		if count < 1 {
			count = 1
		}
		freq[term] = count
	}

	return CorpusStats{DocFreq: freq, Size: len(corpus)}
}
