package ports

import (
	"context"
	"time"

	"github.com/SARDAUKARRR/stock-analysis-dashboard/internal/domain"
)

// MarketDataClient defines the interface for the remote stock data source.
// This abstraction decouples the fetch pipeline from the concrete REST API.
// The token is an opaque bearer credential the adapter appends to every
// request; the core never inspects it.
type MarketDataClient interface {
	// Profile retrieves company reference metadata.
	Profile(ctx context.Context, symbol, token string) (*domain.CompanyProfile, error)

	// Quote retrieves the latest price snapshot.
	Quote(ctx context.Context, symbol, token string) (*domain.Quote, error)

	// Metrics retrieves fundamental ratios.
	Metrics(ctx context.Context, symbol, token string) (*domain.BasicFinancials, error)

	// Candles retrieves daily OHLCV bars for the given range.
	Candles(ctx context.Context, symbol, token string, r domain.TimeRange) (*domain.CandleSeries, error)

	// RSI retrieves the remotely computed 14-period daily RSI for the given range.
	RSI(ctx context.Context, symbol, token string, r domain.TimeRange) (*domain.IndicatorSeries, error)

	// MACD retrieves the remotely computed daily MACD line/signal/histogram for the given range.
	MACD(ctx context.Context, symbol, token string, r domain.TimeRange) (*domain.MACDSeries, error)

	// News retrieves company news items for the given range.
	News(ctx context.Context, symbol, token string, r domain.TimeRange) ([]domain.NewsItem, error)
}

// BundleFetcher assembles the complete seven-endpoint bundle for one fetch
// cycle, or fails as a whole. Implemented by the fetch orchestrator.
type BundleFetcher interface {
	FetchBundle(ctx context.Context, symbol, token string, now time.Time) (*domain.MarketBundle, error)
}
