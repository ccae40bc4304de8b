package knowledge

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// CompanyProfile describes one ticker's term sets. Every term is stored
// lowercase and trimmed; Normalize enforces the invariant on load.
type CompanyProfile struct {
	Names        []string `yaml:"names"`
	Products     []string `yaml:"products"`
	Keywords     []string `yaml:"keywords"`
	Competitors  []string `yaml:"competitors"`
	Industries   []string `yaml:"industries"`
	ExcludeTerms []string `yaml:"excludeTerms"`
}

// Base is the loaded knowledge base, keyed by uppercase ticker symbol.
// Read-only for the process lifetime once constructed.
type Base struct {
	profiles map[string]CompanyProfile
}

var tickerExpr = regexp.MustCompile(`^[A-Z]{1,5}(\.[A-Z])?$`)

// ValidTicker reports whether symbol matches the 1-5 letter pattern with an
// optional single-letter class suffix (e.g. BRK.B). Input is uppercased
// before checking.
func ValidTicker(symbol string) bool {
	return tickerExpr.MatchString(strings.ToUpper(strings.TrimSpace(symbol)))
}

// Load builds the base from the builtin table, optionally merged with a
// yaml override file. Override profiles replace builtin ones wholesale.
func Load(overridePath string) (*Base, error) {
	profiles := make(map[string]CompanyProfile, len(builtinProfiles))
	for symbol, profile := range builtinProfiles {
		profiles[strings.ToUpper(symbol)] = normalizeProfile(profile)
	}

	if overridePath != "" {
		raw, err := os.ReadFile(overridePath)
		if err != nil {
			return nil, fmt.Errorf("read knowledge override %s: %w", overridePath, err)
		}
		var overrides map[string]CompanyProfile
		if err := yaml.Unmarshal(raw, &overrides); err != nil {
			return nil, fmt.Errorf("parse knowledge override %s: %w", overridePath, err)
		}
		for symbol, profile := range overrides {
			symbol = strings.ToUpper(strings.TrimSpace(symbol))
			if !ValidTicker(symbol) {
				return nil, fmt.Errorf("knowledge override: invalid ticker %q", symbol)
			}
			profiles[symbol] = normalizeProfile(profile)
		}
	}

	return &Base{profiles: profiles}, nil
}

// Lookup returns the profile for a ticker. Absence is not an error; the
// scorer degrades to bare-symbol matching.
func (b *Base) Lookup(symbol string) (CompanyProfile, bool) {
	profile, ok := b.profiles[strings.ToUpper(strings.TrimSpace(symbol))]
	return profile, ok
}

// Tickers lists all known symbols in stable order.
func (b *Base) Tickers() []string {
	out := make([]string, 0, len(b.profiles))
	for symbol := range b.profiles {
		out = append(out, symbol)
	}
	sort.Strings(out)
	return out
}

// TermUniverse is the combined vocabulary across all profiles plus the
// ticker symbols themselves, deduplicated. Corpus statistics count document
// frequency for exactly this set.
func (b *Base) TermUniverse() []string {
	seen := map[string]struct{}{}
	var out []string
	add := func(term string) {
		if term == "" {
			return
		}
		if _, ok := seen[term]; ok {
			return
		}
		seen[term] = struct{}{}
		out = append(out, term)
	}

	for _, symbol := range b.Tickers() {
		add(strings.ToLower(symbol))
		profile := b.profiles[symbol]
		for _, set := range [][]string{profile.Names, profile.Products, profile.Keywords} {
			for _, term := range set {
				add(term)
			}
		}
	}
	return out
}

// ScoringTerms returns the per-ticker term universe used by both the direct
// matcher and the TF-IDF component: bare symbol + names + products + keywords.
func ScoringTerms(symbol string, profile CompanyProfile) []string {
	terms := make([]string, 0, 1+len(profile.Names)+len(profile.Products)+len(profile.Keywords))
	terms = append(terms, strings.ToLower(symbol))
	terms = append(terms, profile.Names...)
	terms = append(terms, profile.Products...)
	terms = append(terms, profile.Keywords...)
	return terms
}

func normalizeProfile(p CompanyProfile) CompanyProfile {
	return CompanyProfile{
		Names:        normalizeTerms(p.Names),
		Products:     normalizeTerms(p.Products),
		Keywords:     normalizeTerms(p.Keywords),
		Competitors:  normalizeSymbols(p.Competitors),
		Industries:   normalizeTerms(p.Industries),
		ExcludeTerms: normalizeTerms(p.ExcludeTerms),
	}
}

func normalizeTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term != "" {
			out = append(out, term)
		}
	}
	return out
}

func normalizeSymbols(symbols []string) []string {
	out := make([]string, 0, len(symbols))
	for _, symbol := range symbols {
		symbol = strings.ToUpper(strings.TrimSpace(symbol))
		if symbol != "" {
			out = append(out, symbol)
		}
	}
	return out
}
