package domain

// SeriesName identifies a named chart series handed to the renderer.
type SeriesName string

const (
	SeriesSMA50      SeriesName = "sma50"
	SeriesSMA200     SeriesName = "sma200"
	SeriesRSI        SeriesName = "rsi"
	SeriesMACD       SeriesName = "macd"
	SeriesMACDSignal SeriesName = "macdSignal"
	SeriesMACDHist   SeriesName = "macdHist"
)

// BarColor is the binary up/down classification used by colored histogram
// series. There is deliberately no third "unchanged" color.
type BarColor string

const (
	ColorUp   BarColor = "#26a69a"
	ColorDown BarColor = "#ef5350"
)

// OHLCPoint is one render-ready candlestick bar.
type OHLCPoint struct {
	Time  int64
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// LinePoint is one render-ready point of a line series.
type LinePoint struct {
	Time  int64
	Value float64
}

// BarPoint is one render-ready point of a colored histogram series.
type BarPoint struct {
	Time  int64
	Value float64
	Color BarColor
}
