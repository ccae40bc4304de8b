package feed

import (
	"encoding/json"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed/rss"

	"EquityNewsScanner/internal/domain"
)

const (
	summaryMaxRunes    = 200
	fallbackSourceName = "Financial News"
)

// sourceDisplayNames maps well-known finance-news domains to display names.
// Unknown domains fall back to a title-cased first DNS label.
var sourceDisplayNames = map[string]string{
	"finance.yahoo.com":           "Yahoo Finance",
	"news.yahoo.com":              "Yahoo News",
	"cnbc.com":                    "CNBC",
	"marketwatch.com":             "MarketWatch",
	"seekingalpha.com":            "Seeking Alpha",
	"fool.com":                    "The Motley Fool",
	"investing.com":               "Investing.com",
	"markets.businessinsider.com": "Business Insider",
	"businessinsider.com":         "Business Insider",
	"fortune.com":                 "Fortune",
	"benzinga.com":                "Benzinga",
	"thestreet.com":               "TheStreet",
	"ft.com":                      "Financial Times",
	"wsj.com":                     "Wall Street Journal",
	"nasdaq.com":                  "Nasdaq",
	"reuters.com":                 "Reuters",
	"bloomberg.com":               "Bloomberg",
}

// Parser normalizes raw feed payloads into canonical articles. Parse never
// returns an error: anything unparseable yields zero items so the caller's
// strategy-fallback loop proceeds.
type Parser struct {
	now func() time.Time
}

// NewParser builds a parser stamping ingestion time from the wall clock.
func NewParser() *Parser {
	return &Parser{now: time.Now}
}

// payloadKind tags the result of format sniffing.
type payloadKind int

const (
	payloadUnrecognized payloadKind = iota
	payloadXML
	payloadJSONItems
)

// sniffedPayload is the tagged union produced by sniff and consumed by
// Parse exhaustively.
type sniffedPayload struct {
	kind  payloadKind
	xml   string
	items []jsonItem
}

// jsonItem tolerates the field spellings seen across JSON relays and the
// backend proxy.
type jsonItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Summary     string `json:"summary"`
	Link        string `json:"link"`
	URL         string `json:"url"`
	PubDate     string `json:"pubDate"`
	PublishedAt string `json:"publishedAt"`
	Author      string `json:"author"`
	Source      string `json:"source"`
}

type jsonEnvelope struct {
	Contents string     `json:"contents"`
	Items    []jsonItem `json:"items"`
}

// Parse sniffs the payload against the declared format and normalizes every
// item. HTML error pages from relays are rejected as zero items.
func (p *Parser) Parse(raw string, format PayloadFormat) []domain.Article {
	sniffed := sniff(raw, format)
	switch sniffed.kind {
	case payloadXML:
		return p.parseXML(sniffed.xml)
	case payloadJSONItems:
		return p.parseItems(sniffed.items)
	default:
		return nil
	}
}

func sniff(raw string, format PayloadFormat) sniffedPayload {
	switch format {
	case FormatDirectXML:
		if looksLikeXMLFeed(raw) {
			return sniffedPayload{kind: payloadXML, xml: raw}
		}
	case FormatWrappedJSONXML:
		var envelope jsonEnvelope
		if err := json.Unmarshal([]byte(raw), &envelope); err == nil && looksLikeXMLFeed(envelope.Contents) {
			return sniffedPayload{kind: payloadXML, xml: envelope.Contents}
		}
	case FormatJSONItems:
		var envelope jsonEnvelope
		if err := json.Unmarshal([]byte(raw), &envelope); err == nil && len(envelope.Items) > 0 {
			return sniffedPayload{kind: payloadJSONItems, items: envelope.Items}
		}
	}
	return sniffedPayload{kind: payloadUnrecognized}
}

// looksLikeXMLFeed rejects HTML error pages relays like to serve with a
// 200 status.
func looksLikeXMLFeed(payload string) bool {
	trimmed := strings.TrimSpace(payload)
	return strings.HasPrefix(trimmed, "<?xml") ||
		strings.HasPrefix(trimmed, "<rss") ||
		strings.HasPrefix(trimmed, "<feed")
}

func (p *Parser) parseXML(raw string) []domain.Article {
	rssParser := &rss.Parser{}
	parsed, err := rssParser.Parse(strings.NewReader(raw))
	if err != nil || parsed == nil {
		return nil
	}

	articles := make([]domain.Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		title := strings.TrimSpace(item.Title)
		link := strings.TrimSpace(item.Link)
		if title == "" && link == "" {
			continue
		}

		publishedAt := p.now()
		if item.PubDateParsed != nil {
			publishedAt = *item.PubDateParsed
		}

		articles = append(articles, domain.Article{
			Title:       title,
			Summary:     cleanSummary(item.Description),
			Link:        link,
			SourceName:  p.xmlSourceName(item, link),
			PublishedAt: publishedAt,
		})
	}
	return articles
}

func (p *Parser) parseItems(items []jsonItem) []domain.Article {
	articles := make([]domain.Article, 0, len(items))
	for _, item := range items {
		title := strings.TrimSpace(item.Title)
		link := strings.TrimSpace(firstNonEmpty(item.Link, item.URL))
		if title == "" && link == "" {
			continue
		}

		publishedAt := p.now()
		if stamp := parseItemDate(firstNonEmpty(item.PubDate, item.PublishedAt)); !stamp.IsZero() {
			publishedAt = stamp
		}

		sourceName := strings.TrimSpace(firstNonEmpty(item.Author, item.Source))
		if sourceName == "" {
			sourceName = domainDisplayName(link)
		}

		articles = append(articles, domain.Article{
			Title:       title,
			Summary:     cleanSummary(firstNonEmpty(item.Description, item.Summary)),
			Link:        link,
			SourceName:  sourceName,
			PublishedAt: publishedAt,
		})
	}
	return articles
}

// xmlSourceName applies the priority chain: explicit author/creator, then
// the RSS <source> tag, then the link-domain heuristic.
func (p *Parser) xmlSourceName(item *rss.Item, link string) string {
	if author := strings.TrimSpace(item.Author); author != "" {
		return author
	}
	if item.DublinCoreExt != nil && len(item.DublinCoreExt.Creator) > 0 {
		if creator := strings.TrimSpace(item.DublinCoreExt.Creator[0]); creator != "" {
			return creator
		}
	}
	if item.Source != nil {
		if sourceTitle := strings.TrimSpace(item.Source.Title); sourceTitle != "" {
			return sourceTitle
		}
	}
	return domainDisplayName(link)
}

func domainDisplayName(link string) string {
	host := hostOf(link)
	if host == "" {
		return fallbackSourceName
	}
	if name, ok := sourceDisplayNames[host]; ok {
		return name
	}
	if name, ok := sourceDisplayNames[strings.TrimPrefix(host, "www.")]; ok {
		return name
	}

	label := strings.TrimPrefix(host, "www.")
	if i := strings.Index(label, "."); i > 0 {
		label = label[:i]
	}
	if label == "" {
		return fallbackSourceName
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

// cleanSummary strips markup from a description and truncates it for
// snippet use.
func cleanSummary(description string) string {
	description = strings.TrimSpace(description)
	if description == "" {
		return ""
	}

	text := description
	if strings.Contains(description, "<") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(description)); err == nil {
			text = doc.Text()
		}
	}
	text = strings.Join(strings.Fields(text), " ")

	if utf8.RuneCountInString(text) > summaryMaxRunes {
		text = string([]rune(text)[:summaryMaxRunes])
	}
	return text
}

func parseItemDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC1123Z,
		time.RFC1123,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if stamp, err := time.Parse(layout, value); err == nil {
			return stamp
		}
	}
	return time.Time{}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func hostOf(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}
	parsed, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return strings.ToLower(parsed.Hostname())
}
