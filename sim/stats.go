package sim

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ErrDegenerateInput reports a statistics request over an empty window.
// Callers substitute zero-valued statistics instead of dividing by zero.
var ErrDegenerateInput = errors.New("degenerate input: empty position sequence")

// IntOrFloat64 constrains the numeric helpers shared by statistics and
// report code.
type IntOrFloat64 interface {
	int | int64 | float64
}

// Stats summarizes one processed window for one policy. Mean, variance and
// stddev describe the position values regardless of order; TotalDistance
// depends on visit order and the starting head position. Variance is the
// population variance (divide by count, not count-1).
type Stats struct {
	Count         int
	Mean          float64
	Variance      float64
	StdDev        float64
	TotalDistance int
}

// ComputeStats derives Stats for positions visited in order starting from
// startPosition. Empty input returns ErrDegenerateInput and zero Stats.
func ComputeStats(positions []int, startPosition int) (Stats, error) {
	if len(positions) == 0 {
		return Stats{}, ErrDegenerateInput
	}
	mean, variance := stat.PopMeanVariance(Float64s(positions), nil)
	total := 0
	prev := startPosition
	for _, p := range positions {
		total += absInt(p - prev)
		prev = p
	}
	return Stats{
		Count:         len(positions),
		Mean:          mean,
		Variance:      variance,
		StdDev:        math.Sqrt(variance),
		TotalDistance: total,
	}, nil
}

// Float64s converts a numeric slice for use with gonum routines.
func Float64s[T IntOrFloat64](data []T) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}
	return out
}

// Percentile returns the p-th percentile (0-100) of data, computed as the
// empirical quantile over a sorted copy. Returns 0 for empty input.
func Percentile[T IntOrFloat64](data []T, p float64) float64 {
	if len(data) == 0 {
		return 0
	}
	xs := Float64s(data)
	sort.Float64s(xs)
	return stat.Quantile(p/100, stat.Empirical, xs, nil)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
