package generator

import (
	"math"
	"math/rand/v2"
	"time"
)

// Date windows bounding the dataset. Customers sign up during the
// 2019-2024 window; orders may arrive until the end of Q1 2025.
var (
	joinWindowStart = time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC)
	joinWindowEnd   = time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	orderWindowEnd  = time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
)

func pick[T any](rng *rand.Rand, values []T) T {
	return values[rng.IntN(len(values))]
}

// randomDate picks a day between start and end, both inclusive, at day
// granularity. An end on or before start collapses to a single-day
// window and returns start.
func randomDate(rng *rand.Rand, start, end time.Time) time.Time {
	days := int(end.Sub(start).Hours() / 24)
	if days <= 0 {
		return start
	}
	return start.AddDate(0, 0, rng.IntN(days+1))
}

// weighted picks one of values with the matching relative weight.
// Weights need not sum to one.
func weighted[T any](rng *rand.Rand, values []T, weights []float64) T {
	var total float64
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return values[i]
		}
	}
	return values[len(values)-1]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// randomAmount draws a 2-decimal currency amount uniformly from [lo, hi).
func randomAmount(rng *rand.Rand, lo, hi float64) float64 {
	return round2(lo + rng.Float64()*(hi-lo))
}
