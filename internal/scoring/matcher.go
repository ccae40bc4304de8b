package scoring

import (
	"regexp"
	"strings"
	"sync"
)

// Term matching is word-boundary-safe so that "apple" never fires inside
// "pineapple" and "ford" never fires inside "afford". Terms may carry
// regex metacharacters (BRK.B, disney+), so they are quoted before
// compiling.

var (
	matcherMu    sync.Mutex
	matcherCache = map[string]*regexp.Regexp{}
)

func termPattern(term string) *regexp.Regexp {
	matcherMu.Lock()
	defer matcherMu.Unlock()

	if expr, ok := matcherCache[term]; ok {
		return expr
	}
	pattern := `(?i)(^|[^a-zA-Z0-9])` + regexp.QuoteMeta(term) + `([^a-zA-Z0-9]|$)`
	expr := regexp.MustCompile(pattern)
	matcherCache[term] = expr
	return expr
}

// MatchesWord reports a word-boundary-safe, case-insensitive occurrence of
// term in text.
func MatchesWord(text, term string) bool {
	if term == "" || text == "" {
		return false
	}
	return termPattern(term).MatchString(text)
}

// TermFrequency is the share of words in text that contain term, the TF
// half of the TF-IDF component. Multi-word terms yield 0 by construction;
// they are covered by the direct matcher instead.
func TermFrequency(text, term string) float64 {
	if term == "" {
		return 0
	}
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 0
	}
	term = strings.ToLower(term)
	hits := 0
	for _, word := range words {
		if strings.Contains(word, term) {
			hits++
		}
	}
	return float64(hits) / float64(len(words))
}
