package domain

import "time"

// CompanyProfile is the reference metadata for a listed company.
type CompanyProfile struct {
	Name      string
	Ticker    string
	Exchange  string
	Country   string
	Currency  string
	Industry  string
	IPO       string // listing date, YYYY-MM-DD
	MarketCap float64
	SharesOut float64
	LogoURL   string
	WebURL    string
}

// Quote is the latest price snapshot for a symbol.
type Quote struct {
	Current       float64
	Change        float64
	PercentChange float64
	High          float64
	Low           float64
	Open          float64
	PrevClose     float64
	Timestamp     time.Time
}

// BasicFinancials carries the fundamental ratios of a symbol. The remote
// source returns a large open-ended metric set; only numeric metrics are kept,
// keyed by the source's metric names (e.g. "peTTM", "beta", "52WeekHigh").
type BasicFinancials struct {
	Metrics map[string]float64
}

// NewsItem is one company news entry.
type NewsItem struct {
	ID       int64
	Datetime time.Time
	Headline string
	Source   string
	Summary  string
	URL      string
	ImageURL string
	Related  string
}
