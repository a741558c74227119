// Package fetch assembles the seven-endpoint market bundle for one cycle.
package fetch

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/SARDAUKARRR/stock-analysis-dashboard/internal/domain"
	"github.com/SARDAUKARRR/stock-analysis-dashboard/internal/ports"
)

const (
	chartLookback = 365 * 24 * time.Hour // candles and remote indicators
	newsLookback  = 30 * 24 * time.Hour
)

// Orchestrator fans out the seven independent data requests of a fetch cycle
// and joins them into a single bundle. Assembly is all-or-nothing: any failed
// request, or a candle payload without the "ok" status, fails the whole cycle
// even when the other requests succeeded.
type Orchestrator struct {
	client ports.MarketDataClient
	logger ports.Logger
}

// NewOrchestrator creates a fetch orchestrator.
func NewOrchestrator(client ports.MarketDataClient, logger ports.Logger) (*Orchestrator, error) {
	if client == nil || logger == nil {
		return nil, fmt.Errorf("missing required dependencies for Orchestrator")
	}
	return &Orchestrator{client: client, logger: logger}, nil
}

// FetchBundle issues all seven requests concurrently and waits for every one
// to settle before producing its result. The first recorded failure decides
// the outcome but does not abort the requests still in flight; there are no
// retries and no partial bundles. Lookback windows are derived from now on
// every call.
func (o *Orchestrator) FetchBundle(ctx context.Context, symbol, token string, now time.Time) (*domain.MarketBundle, error) {
	chartRange := domain.LookbackRange(now, chartLookback)
	newsRange := domain.LookbackRange(now, newsLookback)

	o.logger.Debug(ctx, "Fetching market bundle", map[string]interface{}{
		"symbol": symbol,
		"from":   chartRange.From,
		"to":     chartRange.To,
	})

	bundle := &domain.MarketBundle{Symbol: symbol}

	// A plain group, not errgroup.WithContext: an endpoint failure must not
	// cancel the requests still in flight, only decide the joined outcome.
	var g errgroup.Group

	g.Go(func() error {
		profile, err := o.client.Profile(ctx, symbol, token)
		if err != nil {
			return fmt.Errorf("endpoint profile: %w", err)
		}
		bundle.Profile = profile
		return nil
	})
	g.Go(func() error {
		quote, err := o.client.Quote(ctx, symbol, token)
		if err != nil {
			return fmt.Errorf("endpoint quote: %w", err)
		}
		bundle.Quote = quote
		return nil
	})
	g.Go(func() error {
		financials, err := o.client.Metrics(ctx, symbol, token)
		if err != nil {
			return fmt.Errorf("endpoint metrics: %w", err)
		}
		bundle.Financials = financials
		return nil
	})
	g.Go(func() error {
		candles, err := o.client.Candles(ctx, symbol, token, chartRange)
		if err != nil {
			return fmt.Errorf("endpoint candles: %w", err)
		}
		bundle.Candles = candles
		return nil
	})
	g.Go(func() error {
		rsi, err := o.client.RSI(ctx, symbol, token, chartRange)
		if err != nil {
			return fmt.Errorf("endpoint rsi: %w", err)
		}
		bundle.RSI = rsi
		return nil
	})
	g.Go(func() error {
		macd, err := o.client.MACD(ctx, symbol, token, chartRange)
		if err != nil {
			return fmt.Errorf("endpoint macd: %w", err)
		}
		bundle.MACD = macd
		return nil
	})
	g.Go(func() error {
		news, err := o.client.News(ctx, symbol, token, newsRange)
		if err != nil {
			return fmt.Errorf("endpoint news: %w", err)
		}
		bundle.News = news
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Status gate: a transport-successful candle response can still carry no
	// usable data, which invalidates the whole cycle.
	if bundle.Candles.Status != domain.CandleStatusOK {
		return nil, fmt.Errorf("endpoint candles: status %q: %w", bundle.Candles.Status, ports.ErrDataIntegrity)
	}
	if err := bundle.Candles.Validate(); err != nil {
		return nil, fmt.Errorf("endpoint candles: %v: %w", err, ports.ErrDataIntegrity)
	}

	o.logger.Info(ctx, "Market bundle assembled", map[string]interface{}{
		"symbol":  symbol,
		"bars":    bundle.Candles.Len(),
		"rsiLen":  len(bundle.RSI.T),
		"macdLen": len(bundle.MACD.T),
		"news":    len(bundle.News),
	})
	return bundle, nil
}
