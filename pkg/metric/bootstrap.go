package metric

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Interval is a bootstrap confidence interval of a statistic.
type Interval struct {
	Lower  float64
	Upper  float64
	StdDev float64 // of the resampled statistic
	Mean   float64 // of the resampled statistic
}

// Bootstrap resamples values with replacement and returns the confidence
// interval of measure. The same seed yields the same interval.
func Bootstrap(values []float64, measure func([]float64) float64, samples int,
	confidence float64, seed int64) Interval {

	if len(values) == 0 || samples <= 0 {
		return Interval{}
	}

	rng := rand.New(rand.NewSource(seed))
	data := resample(rng, values, measure, samples)

	tail := 1 - confidence
	sort.Float64s(data)

	mean, stdDev := stat.MeanStdDev(data, nil)
	return Interval{
		Lower:  stat.Quantile(tail/2, stat.LinInterp, data, nil),
		Upper:  stat.Quantile(1-tail/2, stat.LinInterp, data, nil),
		StdDev: stdDev,
		Mean:   mean,
	}
}

// Mean is the arithmetic mean, usable as a Bootstrap measure.
func Mean(values []float64) float64 {
	return stat.Mean(values, nil)
}

func resample(rng *rand.Rand, values []float64, measure func([]float64) float64, samples int) []float64 {
	data := make([]float64, 0, samples)
	sample := make([]float64, len(values))
	for i := 0; i < samples; i++ {
		for j := range sample {
			sample[j] = values[rng.Intn(len(values))]
		}
		data = append(data, measure(sample))
	}
	return data
}
