package analytics

import "math"

func sum(values []float64) float64 {
	var s float64
	for _, v := range values {
		s += v
	}
	return s
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return sum(values) / float64(len(values))
}

// percentOf returns part as a percentage of total, 0 when total is zero so a
// missing denominator never propagates NaN into derived data.
func percentOf(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return part / total * 100
}

// sanitizeAmount clamps negative and non-finite amounts to zero. Validation
// belongs to the write path; this keeps a violated invariant from silently
// corrupting aggregates and forecasts.
func sanitizeAmount(a float64) float64 {
	if a < 0 || math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	return a
}
