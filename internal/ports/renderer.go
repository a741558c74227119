package ports

import "github.com/SARDAUKARRR/stock-analysis-dashboard/internal/domain"

// ChartRenderer receives render-ready point sequences, one call per named
// series. Implementations must preserve the ascending time order of the
// input; the coordinator guarantees every call of a cycle carries data from
// the same validated bundle.
type ChartRenderer interface {
	// SetCandles replaces the candlestick series.
	SetCandles(points []domain.OHLCPoint)
	// SetVolume replaces the volume histogram.
	SetVolume(points []domain.BarPoint)
	// SetLine replaces a named line series (moving averages, RSI, MACD line/signal).
	SetLine(name domain.SeriesName, points []domain.LinePoint)
	// SetHistogram replaces a named histogram series (MACD histogram).
	SetHistogram(name domain.SeriesName, points []domain.BarPoint)
}

// SummaryPresenter receives the non-chart reference data of a cycle.
type SummaryPresenter interface {
	ShowProfile(profile *domain.CompanyProfile)
	ShowQuote(quote *domain.Quote)
	ShowFinancials(financials *domain.BasicFinancials)
	ShowNews(items []domain.NewsItem)
}
