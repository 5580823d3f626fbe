// Package metrics implements the cycle-time aggregation core: sample
// extraction, percentile aggregation and per-project grouping. Everything
// here is pure and safe for concurrent use.
package metrics

import (
	"math"
	"sort"

	"pr-cycle-metrics/internal/entities"
)

// Aggregate computes p50/p90 over samples using linear interpolation between
// closest ranks. The result is independent of arrival order and the input
// slice is left untouched. Empty input yields {0, 0, 0}.
func Aggregate(samples []float64) entities.MetricsResult {
	n := len(samples)
	if n == 0 {
		return entities.MetricsResult{}
	}

	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	return entities.MetricsResult{
		P50Hours: round2(percentile(sorted, 50)),
		P90Hours: round2(percentile(sorted, 90)),
		Count:    n,
	}
}

// percentile interpolates linearly between the two ranks enclosing
// p/100 * (n-1). sorted must be ascending and non-empty.
func percentile(sorted []float64, p float64) float64 {
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// round2 trims floating-point tails to two decimal places for stable output.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
