// Package render provides a console implementation of the view ports,
// used by the command-line entry point.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/SARDAUKARRR/stock-analysis-dashboard/internal/domain"
)

// Console writes series summaries and reference data as plain text. Series
// are summarised (count plus first/last point) rather than dumped in full; a
// year of daily bars is unreadable on a terminal.
type Console struct {
	out       io.Writer
	newsLimit int
}

// NewConsole creates a console view writing to out.
func NewConsole(out io.Writer, newsLimit int) *Console {
	if newsLimit <= 0 {
		newsLimit = 10
	}
	return &Console{out: out, newsLimit: newsLimit}
}

// SetCandles replaces the candlestick series.
func (c *Console) SetCandles(points []domain.OHLCPoint) {
	if len(points) == 0 {
		fmt.Fprintln(c.out, "candles: no data")
		return
	}
	first, last := points[0], points[len(points)-1]
	fmt.Fprintf(c.out, "candles: %d bars, first close %.2f @%d, last close %.2f @%d\n",
		len(points), first.Close, first.Time, last.Close, last.Time)
}

// SetVolume replaces the volume histogram.
func (c *Console) SetVolume(points []domain.BarPoint) {
	var up int
	for _, p := range points {
		if p.Color == domain.ColorUp {
			up++
		}
	}
	fmt.Fprintf(c.out, "volume: %d bars (%d up, %d down)\n", len(points), up, len(points)-up)
}

// SetLine replaces a named line series.
func (c *Console) SetLine(name domain.SeriesName, points []domain.LinePoint) {
	if len(points) == 0 {
		fmt.Fprintf(c.out, "%s: no data\n", name)
		return
	}
	last := points[len(points)-1]
	fmt.Fprintf(c.out, "%s: %d points, latest %.4f @%d\n", name, len(points), last.Value, last.Time)
}

// SetHistogram replaces a named histogram series.
func (c *Console) SetHistogram(name domain.SeriesName, points []domain.BarPoint) {
	if len(points) == 0 {
		fmt.Fprintf(c.out, "%s: no data\n", name)
		return
	}
	last := points[len(points)-1]
	fmt.Fprintf(c.out, "%s: %d bars, latest %+.4f @%d\n", name, len(points), last.Value, last.Time)
}

// ShowProfile prints the company reference metadata.
func (c *Console) ShowProfile(profile *domain.CompanyProfile) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s) | %s | %s", profile.Name, profile.Ticker, profile.Exchange, profile.Industry)
	if profile.MarketCap > 0 {
		fmt.Fprintf(&b, " | mcap %.0fM %s", profile.MarketCap, profile.Currency)
	}
	fmt.Fprintln(c.out, b.String())
}

// ShowQuote prints the latest price snapshot.
func (c *Console) ShowQuote(quote *domain.Quote) {
	fmt.Fprintf(c.out, "quote: %.2f (%+.2f / %+.2f%%) o=%.2f h=%.2f l=%.2f pc=%.2f\n",
		quote.Current, quote.Change, quote.PercentChange, quote.Open, quote.High, quote.Low, quote.PrevClose)
}

// ShowFinancials prints a short selection of well-known ratios.
func (c *Console) ShowFinancials(financials *domain.BasicFinancials) {
	keys := []string{"peTTM", "beta", "52WeekHigh", "52WeekLow", "dividendYieldIndicatedAnnual"}
	var b strings.Builder
	b.WriteString("financials:")
	found := false
	for _, k := range keys {
		if v, ok := financials.Metrics[k]; ok {
			fmt.Fprintf(&b, " %s=%.2f", k, v)
			found = true
		}
	}
	if !found {
		fmt.Fprintf(&b, " %d metrics", len(financials.Metrics))
	}
	fmt.Fprintln(c.out, b.String())
}

// ShowNews prints the most recent headlines up to the configured limit.
func (c *Console) ShowNews(items []domain.NewsItem) {
	fmt.Fprintf(c.out, "news: %d items\n", len(items))
	for i, n := range items {
		if i >= c.newsLimit {
			break
		}
		fmt.Fprintf(c.out, "  %s [%s] %s\n", n.Datetime.Format("2006-01-02"), n.Source, n.Headline)
	}
}
