package finnhub

// Wire payloads as the remote API returns them. Candle and indicator
// responses carry parallel arrays plus the "s" status sentinel.

type profilePayload struct {
	Country              string  `json:"country"`
	Currency             string  `json:"currency"`
	Exchange             string  `json:"exchange"`
	FinnhubIndustry      string  `json:"finnhubIndustry"`
	IPO                  string  `json:"ipo"`
	Logo                 string  `json:"logo"`
	MarketCapitalization float64 `json:"marketCapitalization"`
	Name                 string  `json:"name"`
	ShareOutstanding     float64 `json:"shareOutstanding"`
	Ticker               string  `json:"ticker"`
	WebURL               string  `json:"weburl"`
}

type quotePayload struct {
	Current       float64 `json:"c"`
	Change        float64 `json:"d"`
	PercentChange float64 `json:"dp"`
	High          float64 `json:"h"`
	Low           float64 `json:"l"`
	Open          float64 `json:"o"`
	PrevClose     float64 `json:"pc"`
	Timestamp     int64   `json:"t"`
}

type metricsPayload struct {
	Metric map[string]interface{} `json:"metric"`
}

type candlePayload struct {
	C      []float64 `json:"c"`
	H      []float64 `json:"h"`
	L      []float64 `json:"l"`
	O      []float64 `json:"o"`
	T      []int64   `json:"t"`
	V      []float64 `json:"v"`
	Status string    `json:"s"`
}

type rsiPayload struct {
	T      []int64   `json:"t"`
	RSI    []float64 `json:"rsi"`
	Status string    `json:"s"`
}

type macdPayload struct {
	T      []int64   `json:"t"`
	MACD   []float64 `json:"macd"`
	Signal []float64 `json:"macdSignal"`
	Hist   []float64 `json:"macdHist"`
	Status string    `json:"s"`
}

type newsPayload struct {
	Category string `json:"category"`
	Datetime int64  `json:"datetime"`
	Headline string `json:"headline"`
	ID       int64  `json:"id"`
	Image    string `json:"image"`
	Related  string `json:"related"`
	Source   string `json:"source"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
}
