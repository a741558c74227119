// Package finnhub implements the ports.MarketDataClient interface against
// the Finnhub REST API.
package finnhub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/SARDAUKARRR/stock-analysis-dashboard/internal/domain"
	"github.com/SARDAUKARRR/stock-analysis-dashboard/internal/ports"
)

const (
	defaultBaseURL = "https://finnhub.io/api/v1"
	defaultTimeout = 15 * time.Second

	dailyResolution = "D"
	newsDateLayout  = "2006-01-02"
)

// Client implements ports.MarketDataClient over HTTP. It holds no credential:
// the token arrives with every call and is appended to the request query.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     ports.Logger
	rsiPeriod  int
}

// Config holds configuration specific to the Finnhub client adapter.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	RSIPeriod int
	Logger    ports.Logger
}

// New creates a new Finnhub client adapter.
func New(cfg Config) (*Client, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required for Finnhub client")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	rsiPeriod := cfg.RSIPeriod
	if rsiPeriod <= 0 {
		rsiPeriod = 14
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     cfg.Logger,
		rsiPeriod:  rsiPeriod,
	}, nil
}

// getJSON issues one GET request with the token appended to the query and
// decodes the JSON body into target. Transport and HTTP-status failures are
// mapped onto the standard ports errors.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, token string, target interface{}) error {
	params.Set("token", token)
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", path, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, err, "Request failed", map[string]interface{}{"path": path})
		return fmt.Errorf("%s: %v: %w", path, err, ports.ErrRequestFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		mapped := ports.ErrRequestFailed
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			mapped = ports.ErrAuthenticationFailed
		case http.StatusTooManyRequests:
			mapped = ports.ErrRateLimited
		}
		c.logger.Warn(ctx, "Request returned non-success status", map[string]interface{}{
			"path":   path,
			"status": resp.StatusCode,
		})
		return fmt.Errorf("%s: status %d: %w", path, resp.StatusCode, mapped)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("%s: decode: %v: %w", path, err, ports.ErrMalformedPayload)
	}
	return nil
}

// Profile retrieves company reference metadata.
func (c *Client) Profile(ctx context.Context, symbol, token string) (*domain.CompanyProfile, error) {
	params := url.Values{"symbol": {symbol}}
	var payload profilePayload
	if err := c.getJSON(ctx, "/stock/profile2", params, token, &payload); err != nil {
		return nil, err
	}
	return &domain.CompanyProfile{
		Name:      payload.Name,
		Ticker:    payload.Ticker,
		Exchange:  payload.Exchange,
		Country:   payload.Country,
		Currency:  payload.Currency,
		Industry:  payload.FinnhubIndustry,
		IPO:       payload.IPO,
		MarketCap: payload.MarketCapitalization,
		SharesOut: payload.ShareOutstanding,
		LogoURL:   payload.Logo,
		WebURL:    payload.WebURL,
	}, nil
}

// Quote retrieves the latest price snapshot.
func (c *Client) Quote(ctx context.Context, symbol, token string) (*domain.Quote, error) {
	params := url.Values{"symbol": {symbol}}
	var payload quotePayload
	if err := c.getJSON(ctx, "/quote", params, token, &payload); err != nil {
		return nil, err
	}
	return &domain.Quote{
		Current:       payload.Current,
		Change:        payload.Change,
		PercentChange: payload.PercentChange,
		High:          payload.High,
		Low:           payload.Low,
		Open:          payload.Open,
		PrevClose:     payload.PrevClose,
		Timestamp:     time.Unix(payload.Timestamp, 0),
	}, nil
}

// Metrics retrieves fundamental ratios. The endpoint returns an open-ended
// mixed-type metric map; only numeric metrics are kept.
func (c *Client) Metrics(ctx context.Context, symbol, token string) (*domain.BasicFinancials, error) {
	params := url.Values{"symbol": {symbol}, "metric": {"all"}}
	var payload metricsPayload
	if err := c.getJSON(ctx, "/stock/metric", params, token, &payload); err != nil {
		return nil, err
	}

	metrics := make(map[string]float64, len(payload.Metric))
	for name, value := range payload.Metric {
		if f, ok := value.(float64); ok {
			metrics[name] = f
		}
	}
	return &domain.BasicFinancials{Metrics: metrics}, nil
}

// Candles retrieves daily OHLCV bars for the given range.
func (c *Client) Candles(ctx context.Context, symbol, token string, r domain.TimeRange) (*domain.CandleSeries, error) {
	params := url.Values{
		"symbol":     {symbol},
		"resolution": {dailyResolution},
		"from":       {strconv.FormatInt(r.From, 10)},
		"to":         {strconv.FormatInt(r.To, 10)},
	}
	var payload candlePayload
	if err := c.getJSON(ctx, "/stock/candle", params, token, &payload); err != nil {
		return nil, err
	}
	return &domain.CandleSeries{
		T:      payload.T,
		O:      payload.O,
		H:      payload.H,
		L:      payload.L,
		C:      payload.C,
		V:      payload.V,
		Status: payload.Status,
	}, nil
}

// RSI retrieves the remotely computed daily RSI for the given range.
func (c *Client) RSI(ctx context.Context, symbol, token string, r domain.TimeRange) (*domain.IndicatorSeries, error) {
	params := url.Values{
		"symbol":     {symbol},
		"resolution": {dailyResolution},
		"from":       {strconv.FormatInt(r.From, 10)},
		"to":         {strconv.FormatInt(r.To, 10)},
		"indicator":  {"rsi"},
		"timeperiod": {strconv.Itoa(c.rsiPeriod)},
	}
	var payload rsiPayload
	if err := c.getJSON(ctx, "/indicator", params, token, &payload); err != nil {
		return nil, err
	}
	return &domain.IndicatorSeries{
		T:      payload.T,
		Values: payload.RSI,
		Status: payload.Status,
	}, nil
}

// MACD retrieves the remotely computed daily MACD for the given range.
func (c *Client) MACD(ctx context.Context, symbol, token string, r domain.TimeRange) (*domain.MACDSeries, error) {
	params := url.Values{
		"symbol":     {symbol},
		"resolution": {dailyResolution},
		"from":       {strconv.FormatInt(r.From, 10)},
		"to":         {strconv.FormatInt(r.To, 10)},
		"indicator":  {"macd"},
	}
	var payload macdPayload
	if err := c.getJSON(ctx, "/indicator", params, token, &payload); err != nil {
		return nil, err
	}
	return &domain.MACDSeries{
		T:      payload.T,
		Line:   payload.MACD,
		Signal: payload.Signal,
		Hist:   payload.Hist,
		Status: payload.Status,
	}, nil
}

// News retrieves company news items for the given range. This endpoint takes
// calendar dates, not Unix timestamps.
func (c *Client) News(ctx context.Context, symbol, token string, r domain.TimeRange) ([]domain.NewsItem, error) {
	params := url.Values{
		"symbol": {symbol},
		"from":   {time.Unix(r.From, 0).UTC().Format(newsDateLayout)},
		"to":     {time.Unix(r.To, 0).UTC().Format(newsDateLayout)},
	}
	var payload []newsPayload
	if err := c.getJSON(ctx, "/company-news", params, token, &payload); err != nil {
		return nil, err
	}

	items := make([]domain.NewsItem, 0, len(payload))
	for _, n := range payload {
		items = append(items, domain.NewsItem{
			ID:       n.ID,
			Datetime: time.Unix(n.Datetime, 0),
			Headline: n.Headline,
			Source:   n.Source,
			Summary:  n.Summary,
			URL:      n.URL,
			ImageURL: n.Image,
			Related:  n.Related,
		})
	}
	return items, nil
}
