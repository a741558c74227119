package indicators

// SimpleMovingAverage computes the rolling arithmetic mean of closePrices
// over the given period. The k-th output value is the mean of the window
// ending at input index k+period-1, so the output is len(closePrices)-period+1
// values long.
//
// Fewer inputs than the period is an insufficient-data condition, not an
// error: the result is empty. The warm-up offset is re-attached to the
// output by the series aligner, not here.
func SimpleMovingAverage(closePrices []float64, period int) []float64 {
	if period < 1 || len(closePrices) < period {
		return nil
	}

	out := make([]float64, 0, len(closePrices)-period+1)
	var sum float64
	for i, price := range closePrices {
		sum += price
		if i >= period {
			sum -= closePrices[i-period]
		}
		if i >= period-1 {
			out = append(out, sum/float64(period))
		}
	}
	return out
}
