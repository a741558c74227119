// Package chart turns the parallel raw arrays of a validated bundle into
// ordered point sequences in the shape the renderer consumes.
//
// Alignment assumes well-formed, length-consistent input: the orchestrator's
// atomic bundle contract guarantees it, so these functions do not re-validate
// remote data.
package chart

import "github.com/SARDAUKARRR/stock-analysis-dashboard/internal/domain"

// AlignOHLCV zips the candle arrays into candlestick points by shared index.
func AlignOHLCV(c *domain.CandleSeries) []domain.OHLCPoint {
	points := make([]domain.OHLCPoint, c.Len())
	for i := range points {
		points[i] = domain.OHLCPoint{
			Time:  c.T[i],
			Open:  c.O[i],
			High:  c.H[i],
			Low:   c.L[i],
			Close: c.C[i],
		}
	}
	return points
}

// AlignVolume zips the volume array with its timestamps and classifies each
// bar by candle direction. A flat bar (close == open) counts as down; there
// are only two colors.
func AlignVolume(c *domain.CandleSeries) []domain.BarPoint {
	points := make([]domain.BarPoint, c.Len())
	for i := range points {
		color := domain.ColorDown
		if c.C[i] > c.O[i] {
			color = domain.ColorUp
		}
		points[i] = domain.BarPoint{Time: c.T[i], Value: c.V[i], Color: color}
	}
	return points
}

// AlignIndicator zips an indicator's own timestamp and value arrays by shared
// index. Remote indicators trim their warm-up bars, so the result length
// follows the indicator series, never the candle series.
func AlignIndicator(t []int64, values []float64) []domain.LinePoint {
	points := make([]domain.LinePoint, len(t))
	for i := range points {
		points[i] = domain.LinePoint{Time: t[i], Value: values[i]}
	}
	return points
}

// AlignHistogram is AlignIndicator with a sign-based color split:
// non-negative values are up bars.
func AlignHistogram(t []int64, values []float64) []domain.BarPoint {
	points := make([]domain.BarPoint, len(t))
	for i := range points {
		color := domain.ColorDown
		if values[i] >= 0 {
			color = domain.ColorUp
		}
		points[i] = domain.BarPoint{Time: t[i], Value: values[i], Color: color}
	}
	return points
}

// AlignDerived re-attaches source timestamps to a locally derived series that
// lost its leading warm-up bars. Point k of a period-N derivation belongs to
// the bar at source index k+N-1, not index k; getting this offset wrong
// shifts the whole overlay without any visible error.
func AlignDerived(values []float64, sourceT []int64, period int) []domain.LinePoint {
	points := make([]domain.LinePoint, len(values))
	for k := range points {
		points[k] = domain.LinePoint{Time: sourceT[k+period-1], Value: values[k]}
	}
	return points
}
