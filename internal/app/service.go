package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SARDAUKARRR/stock-analysis-dashboard/config"
	"github.com/SARDAUKARRR/stock-analysis-dashboard/internal/chart"
	"github.com/SARDAUKARRR/stock-analysis-dashboard/internal/domain"
	"github.com/SARDAUKARRR/stock-analysis-dashboard/internal/indicators"
	"github.com/SARDAUKARRR/stock-analysis-dashboard/internal/ports"
)

// DashboardService sequences fetch cycles: orchestrated bundle fetch, local
// indicator derivation, series alignment, and handoff to the view
// collaborators. It owns the Locked/Unlocked credential state and the
// Idle/Loading re-entrancy guard.
type DashboardService struct {
	cfg       *config.Config
	logger    ports.Logger
	store     ports.CredentialStore
	fetcher   ports.BundleFetcher
	renderer  ports.ChartRenderer
	presenter ports.SummaryPresenter
	now       func() time.Time

	// State fields
	mu       sync.Mutex // Protects access to state fields below
	token    string     // empty means Locked
	loading  bool       // advisory Idle/Loading flag, toggled only by Refresh
	rejected uint64     // refresh requests dropped while a cycle was in flight
}

// NewDashboardService creates the application service instance.
func NewDashboardService(
	cfg *config.Config,
	logger ports.Logger,
	store ports.CredentialStore,
	fetcher ports.BundleFetcher,
	renderer ports.ChartRenderer,
	presenter ports.SummaryPresenter,
) (*DashboardService, error) {

	// Validate dependencies
	if cfg == nil || logger == nil || store == nil || fetcher == nil || renderer == nil || presenter == nil {
		return nil, fmt.Errorf("missing required dependencies for DashboardService")
	}
	if cfg.ShortSMAPeriod < 1 || cfg.LongSMAPeriod < 1 {
		return nil, fmt.Errorf("configuration SMA periods must be positive")
	}
	if cfg.ShortSMAPeriod >= cfg.LongSMAPeriod {
		return nil, fmt.Errorf("configuration short SMA period must be less than long SMA period")
	}

	return &DashboardService{
		cfg:       cfg,
		logger:    logger,
		store:     store,
		fetcher:   fetcher,
		renderer:  renderer,
		presenter: presenter,
		now:       time.Now,
	}, nil
}

// Unlock saves the credential and transitions the dashboard to Unlocked.
func (s *DashboardService) Unlock(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("empty credential: %w", ports.ErrCredentialMissing)
	}
	if err := s.store.Save(ctx, token); err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	s.logger.Info(ctx, "Dashboard unlocked")
	return nil
}

// Restore loads a previously saved credential, if any, and unlocks with it.
// It reports whether a credential was found.
func (s *DashboardService) Restore(ctx context.Context) (bool, error) {
	token, err := s.store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load credential: %w", err)
	}
	if token == "" {
		s.logger.Info(ctx, "No saved credential, dashboard stays locked")
		return false, nil
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	s.logger.Info(ctx, "Dashboard unlocked from saved credential")
	return true, nil
}

// Lock clears the saved credential and returns the dashboard to Locked.
func (s *DashboardService) Lock(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}

	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	s.logger.Info(ctx, "Dashboard locked, credential cleared")
	return nil
}

// Unlocked reports whether a credential is present.
func (s *DashboardService) Unlocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// RejectedCycles returns how many refresh requests were dropped because a
// cycle was already in flight.
func (s *DashboardService) RejectedCycles() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rejected
}

// Refresh runs one full fetch cycle for the given ticker symbol.
//
// A refresh while another cycle is in flight is a silent no-op: nothing is
// queued and the in-flight cycle is not cancelled. On any failure the
// previous render is left untouched; on success every series is replaced
// from the same bundle. Either way the service returns to Idle.
func (s *DashboardService) Refresh(ctx context.Context, symbol string) error {
	s.mu.Lock()
	if s.token == "" {
		s.mu.Unlock()
		s.logger.Warn(ctx, "Refresh requested while locked")
		return ports.ErrCredentialMissing
	}
	if s.loading {
		s.rejected++
		s.mu.Unlock()
		s.logger.Debug(ctx, "Refresh ignored, cycle already in flight", map[string]interface{}{"symbol": symbol})
		return nil
	}
	s.loading = true
	token := s.token
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	normalized, err := domain.NormalizeSymbol(symbol)
	if err != nil {
		s.logger.Warn(ctx, "Rejected ticker symbol", map[string]interface{}{"symbol": symbol})
		return fmt.Errorf("%v: %w", err, ports.ErrInvalidSymbol)
	}

	started := s.now()
	bundle, err := s.fetcher.FetchBundle(ctx, normalized, token, started)
	if err != nil {
		s.logger.Error(ctx, err, "Fetch cycle failed, keeping previous render", map[string]interface{}{"symbol": normalized})
		return fmt.Errorf("fetch cycle for %s: %w", normalized, err)
	}

	s.render(ctx, bundle)

	s.logger.Info(ctx, "Fetch cycle completed", map[string]interface{}{
		"symbol":  normalized,
		"elapsed": s.now().Sub(started).String(),
	})
	return nil
}

// render derives the local series, aligns everything, and hands the results
// to the view collaborators. All alignment happens before the first renderer
// call so a render is never partial.
func (s *DashboardService) render(ctx context.Context, bundle *domain.MarketBundle) {
	shortPeriod := s.cfg.ShortSMAPeriod
	longPeriod := s.cfg.LongSMAPeriod

	shortSMA := indicators.SimpleMovingAverage(bundle.Candles.C, shortPeriod)
	longSMA := indicators.SimpleMovingAverage(bundle.Candles.C, longPeriod)
	if len(shortSMA) == 0 || len(longSMA) == 0 {
		s.logger.Warn(ctx, "Not enough bars for a moving average, overlay will be empty", map[string]interface{}{
			"bars":        bundle.Candles.Len(),
			"shortPeriod": shortPeriod,
			"longPeriod":  longPeriod,
		})
	}

	candlePoints := chart.AlignOHLCV(bundle.Candles)
	volumePoints := chart.AlignVolume(bundle.Candles)
	shortSMAPoints := chart.AlignDerived(shortSMA, bundle.Candles.T, shortPeriod)
	longSMAPoints := chart.AlignDerived(longSMA, bundle.Candles.T, longPeriod)
	rsiPoints := chart.AlignIndicator(bundle.RSI.T, bundle.RSI.Values)
	macdPoints := chart.AlignIndicator(bundle.MACD.T, bundle.MACD.Line)
	signalPoints := chart.AlignIndicator(bundle.MACD.T, bundle.MACD.Signal)
	histPoints := chart.AlignHistogram(bundle.MACD.T, bundle.MACD.Hist)

	s.renderer.SetCandles(candlePoints)
	s.renderer.SetVolume(volumePoints)
	s.renderer.SetLine(domain.SeriesSMA50, shortSMAPoints)
	s.renderer.SetLine(domain.SeriesSMA200, longSMAPoints)
	s.renderer.SetLine(domain.SeriesRSI, rsiPoints)
	s.renderer.SetLine(domain.SeriesMACD, macdPoints)
	s.renderer.SetLine(domain.SeriesMACDSignal, signalPoints)
	s.renderer.SetHistogram(domain.SeriesMACDHist, histPoints)

	s.presenter.ShowProfile(bundle.Profile)
	s.presenter.ShowQuote(bundle.Quote)
	s.presenter.ShowFinancials(bundle.Financials)
	s.presenter.ShowNews(bundle.News)
}
