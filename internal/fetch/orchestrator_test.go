package fetch

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SARDAUKARRR/stock-analysis-dashboard/internal/domain"
	"github.com/SARDAUKARRR/stock-analysis-dashboard/internal/ports"
)

// Mock implementations

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, msg string, fields ...map[string]interface{}) {}
func (m *mockLogger) Info(ctx context.Context, msg string, fields ...map[string]interface{})  {}
func (m *mockLogger) Warn(ctx context.Context, msg string, fields ...map[string]interface{})  {}
func (m *mockLogger) Error(ctx context.Context, err error, msg string, fields ...map[string]interface{}) {
}

type mockMarketData struct {
	profileErr error
	quoteErr   error
	metricsErr error
	candlesErr error
	rsiErr     error
	macdErr    error
	newsErr    error

	candleStatus string
	calls        int64 // settled requests across all endpoints
}

func newMockMarketData() *mockMarketData {
	return &mockMarketData{candleStatus: domain.CandleStatusOK}
}

func (m *mockMarketData) Profile(ctx context.Context, symbol, token string) (*domain.CompanyProfile, error) {
	atomic.AddInt64(&m.calls, 1)
	if m.profileErr != nil {
		return nil, m.profileErr
	}
	return &domain.CompanyProfile{Name: "Apple Inc", Ticker: symbol}, nil
}

func (m *mockMarketData) Quote(ctx context.Context, symbol, token string) (*domain.Quote, error) {
	atomic.AddInt64(&m.calls, 1)
	if m.quoteErr != nil {
		return nil, m.quoteErr
	}
	return &domain.Quote{Current: 180.5, PrevClose: 179.0}, nil
}

func (m *mockMarketData) Metrics(ctx context.Context, symbol, token string) (*domain.BasicFinancials, error) {
	atomic.AddInt64(&m.calls, 1)
	if m.metricsErr != nil {
		return nil, m.metricsErr
	}
	return &domain.BasicFinancials{Metrics: map[string]float64{"beta": 1.2}}, nil
}

func (m *mockMarketData) Candles(ctx context.Context, symbol, token string, r domain.TimeRange) (*domain.CandleSeries, error) {
	atomic.AddInt64(&m.calls, 1)
	if m.candlesErr != nil {
		return nil, m.candlesErr
	}
	return &domain.CandleSeries{
		T:      []int64{r.From + 86400, r.From + 2*86400, r.From + 3*86400},
		O:      []float64{100, 101, 102},
		H:      []float64{101, 102, 103},
		L:      []float64{99, 100, 101},
		C:      []float64{101, 100, 103},
		V:      []float64{1000, 1100, 1200},
		Status: m.candleStatus,
	}, nil
}

func (m *mockMarketData) RSI(ctx context.Context, symbol, token string, r domain.TimeRange) (*domain.IndicatorSeries, error) {
	atomic.AddInt64(&m.calls, 1)
	if m.rsiErr != nil {
		return nil, m.rsiErr
	}
	return &domain.IndicatorSeries{
		T:      []int64{r.From + 2*86400, r.From + 3*86400},
		Values: []float64{55.0, 60.0},
		Status: domain.CandleStatusOK,
	}, nil
}

func (m *mockMarketData) MACD(ctx context.Context, symbol, token string, r domain.TimeRange) (*domain.MACDSeries, error) {
	atomic.AddInt64(&m.calls, 1)
	if m.macdErr != nil {
		return nil, m.macdErr
	}
	return &domain.MACDSeries{
		T:      []int64{r.From + 3*86400},
		Line:   []float64{0.5},
		Signal: []float64{0.4},
		Hist:   []float64{0.1},
		Status: domain.CandleStatusOK,
	}, nil
}

func (m *mockMarketData) News(ctx context.Context, symbol, token string, r domain.TimeRange) ([]domain.NewsItem, error) {
	atomic.AddInt64(&m.calls, 1)
	if m.newsErr != nil {
		return nil, m.newsErr
	}
	return []domain.NewsItem{{ID: 1, Headline: "Earnings beat"}}, nil
}

func TestOrchestrator_FetchBundle_Success(t *testing.T) {
	client := newMockMarketData()
	orch, err := NewOrchestrator(client, &mockLogger{})
	require.NoError(t, err)

	bundle, err := orch.FetchBundle(context.Background(), "AAPL", "token", time.Now())

	require.NoError(t, err)
	require.NotNil(t, bundle)
	assert.Equal(t, "AAPL", bundle.Symbol)
	assert.NotNil(t, bundle.Profile)
	assert.NotNil(t, bundle.Quote)
	assert.NotNil(t, bundle.Financials)
	assert.NotNil(t, bundle.Candles)
	assert.NotNil(t, bundle.RSI)
	assert.NotNil(t, bundle.MACD)
	assert.Len(t, bundle.News, 1)
	assert.Equal(t, int64(7), atomic.LoadInt64(&client.calls))
}

func TestOrchestrator_FetchBundle_AllOrNothing(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*mockMarketData)
		endpoint string
	}{
		{"profile fails", func(m *mockMarketData) { m.profileErr = ports.ErrRequestFailed }, "profile"},
		{"quote fails", func(m *mockMarketData) { m.quoteErr = ports.ErrRequestFailed }, "quote"},
		{"metrics fails", func(m *mockMarketData) { m.metricsErr = ports.ErrRequestFailed }, "metrics"},
		{"candles fails", func(m *mockMarketData) { m.candlesErr = ports.ErrRequestFailed }, "candles"},
		{"rsi fails", func(m *mockMarketData) { m.rsiErr = ports.ErrRequestFailed }, "rsi"},
		{"macd fails", func(m *mockMarketData) { m.macdErr = ports.ErrRequestFailed }, "macd"},
		{"news fails", func(m *mockMarketData) { m.newsErr = ports.ErrRequestFailed }, "news"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newMockMarketData()
			tt.setup(client)
			orch, err := NewOrchestrator(client, &mockLogger{})
			require.NoError(t, err)

			bundle, err := orch.FetchBundle(context.Background(), "AAPL", "token", time.Now())

			// One failed endpoint discards the whole bundle even though the
			// other six succeeded, and the error names the endpoint.
			require.Error(t, err)
			assert.Nil(t, bundle)
			assert.ErrorIs(t, err, ports.ErrRequestFailed)
			assert.Contains(t, err.Error(), "endpoint "+tt.endpoint)
			// The failure must not short-circuit the other requests.
			assert.Equal(t, int64(7), atomic.LoadInt64(&client.calls))
		})
	}
}

func TestOrchestrator_FetchBundle_CandleStatusGate(t *testing.T) {
	client := newMockMarketData()
	client.candleStatus = "no_data"
	orch, err := NewOrchestrator(client, &mockLogger{})
	require.NoError(t, err)

	bundle, err := orch.FetchBundle(context.Background(), "AAPL", "token", time.Now())

	// Transport success on all seven requests is not enough: a candle payload
	// without the ok status fails the cycle.
	require.Error(t, err)
	assert.Nil(t, bundle)
	assert.ErrorIs(t, err, ports.ErrDataIntegrity)
	assert.Contains(t, err.Error(), "no_data")
}

func TestOrchestrator_FetchBundle_Lookbacks(t *testing.T) {
	var chartRange, newsRange domain.TimeRange
	client := &rangeCapturingClient{mockMarketData: newMockMarketData(), chartRange: &chartRange, newsRange: &newsRange}
	orch, err := NewOrchestrator(client, &mockLogger{})
	require.NoError(t, err)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	_, err = orch.FetchBundle(context.Background(), "AAPL", "token", now)
	require.NoError(t, err)

	assert.Equal(t, now.Unix(), chartRange.To)
	assert.Equal(t, now.AddDate(0, 0, -365).Unix(), chartRange.From)
	assert.Equal(t, now.Unix(), newsRange.To)
	assert.Equal(t, now.AddDate(0, 0, -30).Unix(), newsRange.From)
}

type rangeCapturingClient struct {
	*mockMarketData
	chartRange *domain.TimeRange
	newsRange  *domain.TimeRange
}

func (c *rangeCapturingClient) Candles(ctx context.Context, symbol, token string, r domain.TimeRange) (*domain.CandleSeries, error) {
	*c.chartRange = r
	return c.mockMarketData.Candles(ctx, symbol, token, r)
}

func (c *rangeCapturingClient) News(ctx context.Context, symbol, token string, r domain.TimeRange) ([]domain.NewsItem, error) {
	*c.newsRange = r
	return c.mockMarketData.News(ctx, symbol, token, r)
}

func TestNewOrchestrator_Validation(t *testing.T) {
	_, err := NewOrchestrator(nil, &mockLogger{})
	assert.Error(t, err)
	_, err = NewOrchestrator(newMockMarketData(), nil)
	assert.Error(t, err)
}
