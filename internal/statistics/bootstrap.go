package statistics

import (
	"math"
	"math/rand"
	"sort"
)

// Interval is an uncertainty band around an averaged pass@k value, produced
// by bootstrap resampling of the per-task values.
type Interval struct {
	Lower      float64 `json:"lower"`
	Upper      float64 `json:"upper"`
	Mean       float64 `json:"mean"`
	Confidence float64 `json:"confidence"`
	Resamples  int     `json:"resamples"`
}

// DefaultBootstrapResamples is the number of bootstrap resamples.
const DefaultBootstrapResamples = 10000

// BootstrapInterval computes a percentile-method bootstrap confidence
// interval over the given per-task values. confidence should be in (0, 1),
// e.g. 0.95. With fewer than 2 data points the interval degenerates to the
// mean and Resamples is 0.
func BootstrapInterval(values []float64, confidence float64) Interval {
	return BootstrapIntervalSeeded(values, confidence, DefaultBootstrapResamples, -1)
}

// BootstrapIntervalSeeded is like BootstrapInterval but accepts the resample
// count and a seed for reproducibility. A negative seed uses a
// non-deterministic source; a non-positive resample count falls back to
// DefaultBootstrapResamples.
func BootstrapIntervalSeeded(values []float64, confidence float64, resamples int, seed int64) Interval {
	n := len(values)
	m := Mean(values)
	if n < 2 {
		return Interval{Lower: m, Upper: m, Mean: m, Confidence: confidence}
	}
	if resamples <= 0 {
		resamples = DefaultBootstrapResamples
	}

	var rng *rand.Rand
	if seed >= 0 {
		rng = rand.New(rand.NewSource(seed))
	} else {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	// Resample with replacement, keeping the mean of each resample.
	resampleMeans := make([]float64, resamples)
	sample := make([]float64, n)
	for i := 0; i < resamples; i++ {
		for j := 0; j < n; j++ {
			sample[j] = values[rng.Intn(n)]
		}
		resampleMeans[i] = Mean(sample)
	}

	sort.Float64s(resampleMeans)

	// Percentile method
	alpha := 1.0 - confidence
	loIdx := int(math.Floor(alpha / 2.0 * float64(resamples)))
	hiIdx := int(math.Floor((1.0 - alpha/2.0) * float64(resamples)))
	if hiIdx >= resamples {
		hiIdx = resamples - 1
	}

	return Interval{
		Lower:      resampleMeans[loIdx],
		Upper:      resampleMeans[hiIdx],
		Mean:       m,
		Confidence: confidence,
		Resamples:  resamples,
	}
}
