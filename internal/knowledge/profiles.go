package knowledge

// builtinProfiles is the shipped company table. Bare company words that
// collide with everyday phrases (apple, amazon, meta) are kept out of Names
// and listed under Keywords so the exclusion filter can still zero out
// false positives; Names hold the unambiguous corporate forms.
var builtinProfiles = map[string]CompanyProfile{
	"AAPL": {
		Names:        []string{"apple inc", "apple inc."},
		Products:     []string{"iphone", "ipad", "macbook", "apple watch", "airpods", "app store", "ios", "vision pro"},
		Keywords:     []string{"apple", "tim cook", "cupertino"},
		Competitors:  []string{"MSFT", "GOOGL", "SSNLF"},
		Industries:   []string{"consumer electronics", "smartphone", "big tech"},
		ExcludeTerms: []string{"apple pie", "apple cider", "apple juice", "apple orchard", "apple picking", "big apple", "candy apple"},
	},
	"MSFT": {
		Names:        []string{"microsoft", "msft"},
		Products:     []string{"windows", "azure", "office 365", "xbox", "teams", "copilot", "linkedin"},
		Keywords:     []string{"satya nadella", "redmond"},
		Competitors:  []string{"AAPL", "GOOGL", "AMZN"},
		Industries:   []string{"software", "cloud computing", "big tech"},
		ExcludeTerms: nil,
	},
	"GOOGL": {
		Names:        []string{"alphabet", "google"},
		Products:     []string{"android", "youtube", "chrome", "google cloud", "gemini", "pixel", "waymo"},
		Keywords:     []string{"sundar pichai", "mountain view"},
		Competitors:  []string{"MSFT", "META", "AMZN"},
		Industries:   []string{"search", "advertising", "cloud computing", "big tech"},
		ExcludeTerms: []string{"alphabet soup", "alphabet song"},
	},
	"AMZN": {
		Names:        []string{"amazon.com", "amazon inc"},
		Products:     []string{"aws", "prime", "alexa", "kindle", "whole foods"},
		Keywords:     []string{"amazon", "andy jassy", "jeff bezos"},
		Competitors:  []string{"MSFT", "GOOGL", "WMT"},
		Industries:   []string{"e-commerce", "cloud computing", "retail", "big tech"},
		ExcludeTerms: []string{"amazon rainforest", "amazon river", "amazon basin", "amazon jungle"},
	},
	"TSLA": {
		Names:        []string{"tesla"},
		Products:     []string{"model 3", "model y", "model s", "cybertruck", "powerwall", "supercharger", "full self-driving"},
		Keywords:     []string{"elon musk", "gigafactory", "fremont factory"},
		Competitors:  []string{"F", "GM", "RIVN", "NIO"},
		Industries:   []string{"electric vehicle", "automotive", "clean energy"},
		ExcludeTerms: []string{"nikola tesla", "tesla coil"},
	},
	"NVDA": {
		Names:        []string{"nvidia"},
		Products:     []string{"geforce", "cuda", "h100", "blackwell", "dgx", "rtx"},
		Keywords:     []string{"jensen huang", "gpu maker"},
		Competitors:  []string{"AMD", "INTC"},
		Industries:   []string{"semiconductor", "artificial intelligence", "data center"},
		ExcludeTerms: nil,
	},
	"META": {
		Names:        []string{"meta platforms"},
		Products:     []string{"facebook", "instagram", "whatsapp", "threads", "quest", "reality labs"},
		Keywords:     []string{"meta", "mark zuckerberg", "menlo park"},
		Competitors:  []string{"GOOGL", "SNAP", "PINS"},
		Industries:   []string{"social media", "advertising", "metaverse", "big tech"},
		ExcludeTerms: []string{"meta description", "meta analysis", "meta tag"},
	},
	"NFLX": {
		Names:        []string{"netflix"},
		Products:     []string{"streaming service", "netflix originals"},
		Keywords:     []string{"ted sarandos", "subscriber growth"},
		Competitors:  []string{"DIS", "WBD", "AMZN"},
		Industries:   []string{"streaming", "entertainment", "media"},
		ExcludeTerms: nil,
	},
	"AMD": {
		Names:        []string{"advanced micro devices"},
		Products:     []string{"ryzen", "epyc", "radeon", "instinct"},
		Keywords:     []string{"amd", "lisa su"},
		Competitors:  []string{"NVDA", "INTC"},
		Industries:   []string{"semiconductor", "data center"},
		ExcludeTerms: nil,
	},
	"INTC": {
		Names:        []string{"intel"},
		Products:     []string{"core ultra", "xeon", "arc", "foundry"},
		Keywords:     []string{"pat gelsinger", "santa clara"},
		Competitors:  []string{"AMD", "NVDA", "TSM"},
		Industries:   []string{"semiconductor", "chip manufacturing"},
		ExcludeTerms: []string{"intel agency", "intelligence report"},
	},
	"JPM": {
		Names:        []string{"jpmorgan", "jp morgan", "jpmorgan chase"},
		Products:     []string{"chase bank", "investment banking"},
		Keywords:     []string{"jamie dimon", "wall street bank"},
		Competitors:  []string{"BAC", "GS", "WFC"},
		Industries:   []string{"banking", "financial services"},
		ExcludeTerms: nil,
	},
	"BAC": {
		Names:        []string{"bank of america"},
		Products:     []string{"merrill lynch", "merrill"},
		Keywords:     []string{"brian moynihan"},
		Competitors:  []string{"JPM", "WFC", "C"},
		Industries:   []string{"banking", "financial services"},
		ExcludeTerms: nil,
	},
	"DIS": {
		Names:        []string{"walt disney", "disney"},
		Products:     []string{"disney+", "espn", "marvel", "pixar", "disneyland"},
		Keywords:     []string{"bob iger", "burbank"},
		Competitors:  []string{"NFLX", "WBD", "CMCSA"},
		Industries:   []string{"entertainment", "media", "theme park"},
		ExcludeTerms: nil,
	},
	"BA": {
		Names:        []string{"boeing"},
		Products:     []string{"737 max", "787 dreamliner", "777x", "starliner"},
		Keywords:     []string{"kelly ortberg", "faa"},
		Competitors:  []string{"LMT", "RTX"},
		Industries:   []string{"aerospace", "defense", "airline supplier"},
		ExcludeTerms: nil,
	},
	"BRK.B": {
		Names:        []string{"berkshire hathaway", "berkshire"},
		Products:     []string{"geico", "bnsf"},
		Keywords:     []string{"warren buffett", "omaha", "charlie munger"},
		Competitors:  []string{"JPM", "BLK"},
		Industries:   []string{"insurance", "conglomerate", "financial services"},
		ExcludeTerms: []string{"berkshire county", "berkshire england"},
	},
}
