package statistics

import "math"

// z95 is the two-sided critical value of the standard normal at 95%.
const z95 = 1.96

// Mean computes the arithmetic mean. Returns 0 for empty input, which is
// also the defined pass@k average for an agent with no task results.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Variance computes the population variance. Returns 0 for empty input.
func Variance(values []float64) float64 {
	return sumSquaredDeviations(values) / float64(max(len(values), 1))
}

// StdDev computes the population standard deviation.
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// ConfidenceInterval95 returns the 95% confidence interval (low, high) for
// the mean using the normal approximation. With fewer than 2 data points the
// interval degenerates to (mean, mean).
func ConfidenceInterval95(values []float64) (float64, float64) {
	n := len(values)
	m := Mean(values)
	if n < 2 {
		return m, m
	}
	sampleSD := math.Sqrt(sumSquaredDeviations(values) / float64(n-1))
	margin := z95 * sampleSD / math.Sqrt(float64(n))
	return m - margin, m + margin
}

func sumSquaredDeviations(values []float64) float64 {
	m := Mean(values)
	sumSq := 0.0
	for _, v := range values {
		d := v - m
		sumSq += d * d
	}
	return sumSq
}
