package feed

// PayloadFormat declares the payload shape a retrieval strategy expects.
type PayloadFormat string

const (
	// FormatDirectXML expects a raw RSS 2.0 document.
	FormatDirectXML PayloadFormat = "direct-xml"
	// FormatWrappedJSONXML expects a JSON envelope whose "contents" field
	// holds the raw XML (allorigins-style relay).
	FormatWrappedJSONXML PayloadFormat = "wrapped-json-xml"
	// FormatJSONItems expects a JSON object with an "items" array.
	FormatJSONItems PayloadFormat = "json-items"
)

// Strategy is one concrete way to retrieve a source's feed: an optional
// relay prefix the feed URL gets appended to, plus the expected format.
type Strategy struct {
	ProxyPrefix string
	Format      PayloadFormat
}

// Source names one feed endpoint with its ordered retrieval strategies.
// The fetcher tries strategies in declared order, first non-empty parse wins.
type Source struct {
	Name       string
	FeedURL    string
	Strategies []Strategy
}

// Public CORS relays. All of them are free, unauthenticated, and flaky,
// which is why every source carries several.
const (
	proxyAllOriginsGet = "https://api.allorigins.win/get?url="
	proxyAllOriginsRaw = "https://api.allorigins.win/raw?url="
	proxyCorsProxy     = "https://corsproxy.io/?"
	proxyCodeTabs      = "https://api.codetabs.com/v1/proxy?quest="
	proxyRSSToJSON     = "https://api.rss2json.com/v1/api.json?rss_url="
)

func standardStrategies() []Strategy {
	return []Strategy{
		{ProxyPrefix: "", Format: FormatDirectXML},
		{ProxyPrefix: proxyAllOriginsGet, Format: FormatWrappedJSONXML},
		{ProxyPrefix: proxyAllOriginsRaw, Format: FormatDirectXML},
		{ProxyPrefix: proxyRSSToJSON, Format: FormatJSONItems},
		{ProxyPrefix: proxyCodeTabs, Format: FormatDirectXML},
	}
}

func relayFirstStrategies() []Strategy {
	return []Strategy{
		{ProxyPrefix: proxyAllOriginsGet, Format: FormatWrappedJSONXML},
		{ProxyPrefix: proxyCorsProxy, Format: FormatDirectXML},
		{ProxyPrefix: proxyRSSToJSON, Format: FormatJSONItems},
		{ProxyPrefix: proxyCodeTabs, Format: FormatDirectXML},
	}
}

// DefaultSources is the shipped registry of finance-news feeds.
func DefaultSources() []Source {
	return []Source{
		{Name: "Yahoo Finance", FeedURL: "https://finance.yahoo.com/news/rssindex", Strategies: relayFirstStrategies()},
		{Name: "CNBC Top News", FeedURL: "https://www.cnbc.com/id/100003114/device/rss/rss.html", Strategies: standardStrategies()},
		{Name: "CNBC Markets", FeedURL: "https://www.cnbc.com/id/20910258/device/rss/rss.html", Strategies: standardStrategies()},
		{Name: "MarketWatch Top Stories", FeedURL: "https://feeds.content.dowjones.io/public/rss/mw_topstories", Strategies: standardStrategies()},
		{Name: "MarketWatch Market Pulse", FeedURL: "https://feeds.content.dowjones.io/public/rss/mw_marketpulse", Strategies: standardStrategies()},
		{Name: "Seeking Alpha", FeedURL: "https://seekingalpha.com/market_currents.xml", Strategies: relayFirstStrategies()},
		{Name: "The Motley Fool", FeedURL: "https://www.fool.com/feeds/index.aspx", Strategies: standardStrategies()},
		{Name: "Investing.com", FeedURL: "https://www.investing.com/rss/news_25.rss", Strategies: relayFirstStrategies()},
		{Name: "Business Insider Markets", FeedURL: "https://markets.businessinsider.com/rss/news", Strategies: standardStrategies()},
		{Name: "Fortune", FeedURL: "https://fortune.com/feed/", Strategies: standardStrategies()},
		{Name: "Benzinga", FeedURL: "https://www.benzinga.com/feed", Strategies: relayFirstStrategies()},
		{Name: "TheStreet", FeedURL: "https://www.thestreet.com/.rss/full/", Strategies: standardStrategies()},
		{Name: "Financial Times", FeedURL: "https://www.ft.com/rss/home", Strategies: relayFirstStrategies()},
		{Name: "WSJ Markets", FeedURL: "https://feeds.a.dj.com/rss/RSSMarketsMain.xml", Strategies: standardStrategies()},
		{Name: "Nasdaq Markets", FeedURL: "https://www.nasdaq.com/feed/rssoutbound?category=Markets", Strategies: relayFirstStrategies()},
	}
}
