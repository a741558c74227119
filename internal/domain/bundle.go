package domain

// MarketBundle is the complete, validated set of all seven endpoint payloads
// for one fetch cycle. It is only ever constructed by the fetch orchestrator:
// either every field is present and the candle payload carries the "ok"
// status, or the bundle does not exist at all.
type MarketBundle struct {
	Symbol     string
	Profile    *CompanyProfile
	Quote      *Quote
	Financials *BasicFinancials
	Candles    *CandleSeries
	RSI        *IndicatorSeries
	MACD       *MACDSeries
	News       []NewsItem
}
