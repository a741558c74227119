package domain

import (
	"fmt"
	"time"
)

// CandleStatusOK is the sentinel the remote source sets on a candle payload
// that actually contains data. Anything else ("no_data", error markers) means
// the whole bundle must be discarded.
const CandleStatusOK = "ok"

// TimeRange is a half-open fetch window in Unix epoch seconds.
type TimeRange struct {
	From int64
	To   int64
}

// LookbackRange derives the fetch window ending at now and reaching back d.
// It is recomputed on every fetch cycle and never persisted.
func LookbackRange(now time.Time, d time.Duration) TimeRange {
	return TimeRange{
		From: now.Add(-d).Unix(),
		To:   now.Unix(),
	}
}

// CandleSeries holds daily OHLCV bars as parallel arrays, index-aligned by
// bar. All six arrays must be the same length and T strictly increasing.
type CandleSeries struct {
	T      []int64   // bar timestamps, Unix seconds
	O      []float64 // open
	H      []float64 // high
	L      []float64 // low
	C      []float64 // close
	V      []float64 // volume
	Status string
}

// Len returns the number of bars.
func (s *CandleSeries) Len() int {
	return len(s.T)
}

// Validate checks the parallel-array invariant and timestamp ordering.
// A violation can only arise from a malformed upstream payload.
func (s *CandleSeries) Validate() error {
	n := len(s.T)
	if len(s.O) != n || len(s.H) != n || len(s.L) != n || len(s.C) != n || len(s.V) != n {
		return fmt.Errorf("candle arrays are not parallel: t=%d o=%d h=%d l=%d c=%d v=%d",
			n, len(s.O), len(s.H), len(s.L), len(s.C), len(s.V))
	}
	for i := 1; i < n; i++ {
		if s.T[i] <= s.T[i-1] {
			return fmt.Errorf("candle timestamps not strictly increasing at index %d", i)
		}
	}
	return nil
}

// IndicatorSeries holds a remotely computed single-value indicator (RSI) as
// parallel timestamp/value arrays. The remote computation may trim leading
// warm-up bars, so its length is independent of the candle series.
type IndicatorSeries struct {
	T      []int64
	Values []float64
	Status string
}

// MACDSeries holds the remotely computed MACD line, signal and histogram,
// index-aligned on a shared timestamp array.
type MACDSeries struct {
	T      []int64
	Line   []float64
	Signal []float64
	Hist   []float64
	Status string
}
