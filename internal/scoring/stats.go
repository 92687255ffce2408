package scoring

import "math"

// normalize maps a non-negative error onto (0, 1]: zero error scores 1 and
// large imbalance asymptotically approaches 0 without clipping, so the search
// keeps gradient even on badly unbalanced leagues.
func normalize(x float64) float64 {
	return 1 - math.Tanh(x)
}

// rmse computes the root mean squared error of values against an ideal.
func rmse(values []float64, ideal float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		d := v - ideal
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}

// rollingMean folds one value into (or out of) a running mean. oldSize is the
// population size before the change. Removing the final value resets the mean
// to 0 rather than dividing by zero.
func rollingMean(oldMean float64, oldSize int, value float64, add bool) float64 {
	if add {
		return (float64(oldSize)*oldMean + value) / float64(oldSize+1)
	}
	if oldSize <= 1 {
		return 0
	}
	return (float64(oldSize)*oldMean - value) / float64(oldSize-1)
}
