package config

import "signal-scout/internal/domain/lexicon"

// DefaultFeeds returns the built-in RSS feed list. Order matters: discovery
// polls feeds in this order, and first-discovered wins URL deduplication.
func DefaultFeeds() []Feed {
	return []Feed{
		{Name: "LiveMint_Companies", URL: "https://www.livemint.com/rss/companies"},
		{Name: "LiveMint_Markets", URL: "https://www.livemint.com/rss/markets"},
		{Name: "CNBC_TopNews", URL: "https://www.cnbc.com/id/100003114/device/rss/rss.html"},
		{Name: "CNBC_Earnings", URL: "https://www.cnbc.com/id/15839135/device/rss/rss.html"},
		{Name: "CNBC_Markets", URL: "https://www.cnbc.com/id/10001147/device/rss/rss.html"},
		{Name: "MarketWatch_Top", URL: "https://www.marketwatch.com/rss/topstories"},
		{Name: "Fortune_Latest", URL: "https://fortune.com/feed/"},
		{Name: "Economist_Business", URL: "https://www.economist.com/business/rss.xml"},
		{Name: "Economist_Finance", URL: "https://www.economist.com/finance-and-economics/rss.xml"},
		{Name: "FinancialTimes_Home", URL: "https://www.ft.com/?format=rss"},
		{Name: "NPR_Business", URL: "https://feeds.npr.org/1006/rss.xml"},
		{Name: "McKinsey_Insights", URL: "https://www.mckinsey.com/insights/rss"},
		{Name: "WSJ_World", URL: "https://feeds.a.dj.com/rss/RSSWorldNews.xml"},
		{Name: "Wired_All", URL: "https://www.wired.com/feed/rss"},
		{Name: "TechCrunch_Top", URL: "https://techcrunch.com/feed/"},
		{Name: "SiliconANGLE_Top", URL: "https://siliconangle.com/feed/"},
		{Name: "Inc_Magazine", URL: "https://www.inc.com/rss"},
		{Name: "VentureBeat", URL: "https://venturebeat.com/feed/"},
		{Name: "MIT_TechReview", URL: "https://www.technologyreview.com/feed/"},
		{Name: "InnovationOrigins", URL: "https://innovationorigins.com/en/feed/"},
		{Name: "TheVerge", URL: "https://www.theverge.com/rss/index.xml"},
		{Name: "Engadget", URL: "https://www.engadget.com/rss.xml"},
		{Name: "ArsTechnica", URL: "https://feeds.arstechnica.com/arstechnica/index/"},
		{Name: "AndroidAuthority", URL: "https://www.androidauthority.com/feed/"},
		{Name: "ProductHunt_Today", URL: "https://www.producthunt.com/feed"},
		{Name: "Crunchbase_News", URL: "https://news.crunchbase.com/feed/"},
		{Name: "Sifted_FT", URL: "https://sifted.eu/feed/"},
		{Name: "Investing_Com_News", URL: "https://www.investing.com/rss/news.rss"},
		{Name: "MotleyFool_Latest", URL: "https://www.fool.com/feeds/index.aspx"},
		{Name: "TheStreet_Investing", URL: "https://www.thestreet.com/.rss/full"},
		{Name: "SeekingAlpha_Latest", URL: "https://seekingalpha.com/feed.xml"},
		{Name: "YahooFinance_Top", URL: "https://feeds.finance.yahoo.com/rss/2.0/headline?s=^GSPC"},
	}
}

// DefaultKeywordCategories returns the built-in keyword packs. Category order
// and keyword order within each category are both significant: they fix the
// keyword sequence of the lexicon, and through it the order of matched
// keywords in output records.
func DefaultKeywordCategories() []lexicon.Category {
	return []lexicon.Category{
		{
			Name: "Investment & Expansion",
			Keywords: []string{
				"new investment", "investment plan", "capex", "capital expenditure", "expansion",
				"expansion plan", "growth strategy", "capacity expansion", "greenfield", "brownfield",
				"new facility", "new plant", "manufacturing plant", "production facility", "factory expansion",
				"new site", "site selection", "location scouting", "relocation", "footprint expansion",
				"supply chain expansion",
			},
		},
		{
			Name: "Geographic Markets",
			Keywords: []string{
				"entering india", "india investment", "india expansion", "asia expansion", "apac expansion",
				"emerging markets expansion", "gcc expansion", "middle east expansion",
				"southeast asia expansion", "africa expansion", "latin america expansion",
			},
		},
		{
			Name: "Employment / Headcount",
			Keywords: []string{
				"headcount expansion", "hiring plans", "jobs creation", "talent expansion",
				"recruitment drive", "workforce expansion",
			},
		},
		{
			Name: "Deals & Partnerships",
			Keywords: []string{
				"mou", "partnership", "strategic partnership", "jv", "joint venture", "collaboration",
				"investment agreement",
			},
		},
		{
			Name: "Manufacturing & Industrial",
			Keywords: []string{
				"manufacturing capacity", "assembly plant", "production ramp-up", "industrial park",
				"automation upgrade", "supply chain diversification", "reshoring", "nearshoring",
			},
		},
		{
			Name: "Automotive & EV",
			Keywords: []string{
				"ev plant", "battery factory", "gigafactory", "ev supply chain", "auto components expansion",
				"charging infrastructure investment",
			},
		},
		{
			Name: "Electronics & Semiconductors",
			Keywords: []string{
				"semiconductor fab", "atmp plant", "chip manufacturing", "foundry expansion",
				"pcb manufacturing", "electronics assembly plant", "r&d center expansion",
			},
		},
		{
			Name: "Lifesciences, Pharma & Biotech",
			Keywords: []string{
				"api facility", "formulations plant", "clinical trial expansion", "biomanufacturing",
				"vaccine production", "fda approval", "gmp manufacturing expansion",
			},
		},
		{
			Name: "IT, Digital Services & GCCs",
			Keywords: []string{
				"global capability center", "it hub", "delivery center", "technology center",
				"r&d center", "digital innovation hub", "ai/ml lab", "cloud center", "engineering center",
			},
		},
		{
			Name: "Energy, Renewables, Oil & Gas",
			Keywords: []string{
				"solar plant", "wind farm", "renewable energy project", "battery storage plant",
				"green hydrogen", "refinery expansion", "lng project", "energy transition investment",
			},
		},
		{
			Name: "Retail, E-commerce & Consumer Goods",
			Keywords: []string{
				"warehouse expansion", "fulfillment center", "distribution center", "store expansion",
				"retail rollout", "supply chain hub",
			},
		},
		{
			Name: "Chemicals & Materials",
			Keywords: []string{
				"chemical plant expansion", "materials facility", "polymer plant",
				"specialty chemicals investment", "capacity addition",
			},
		},
		{
			Name: "Aerospace & Defense",
			Keywords: []string{
				"aerospace manufacturing", "defense offset investment", "mro facility", "assembly line expansion",
			},
		},
		{
			Name: "Add-on Signals",
			Keywords: []string{
				"procurement tender", "land acquisition", "large-scale hiring", "orders placed for equipment",
				"fte increase", "expansion capex cycle", "supply agreement", "long-term leasing",
				"infrastructure upgrade", "capacity utilization approaching peak", "record backlog",
				"new contract win", "hiring",
			},
		},
	}
}
