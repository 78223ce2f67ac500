package scoring

import (
	"math"
	"strconv"
	"strings"
)

// Score bounds and resolution shared by every aggregation path.
const (
	ScoreMin = 0.0
	ScoreMax = 10.0

	// QuarterStep is the resolution of episode ratings, manual season
	// scores and adjustments. Film ratings are whole integers and do
	// not use it.
	QuarterStep = 0.25

	// Epsilon is the tolerance for all floating point comparisons.
	Epsilon = 1e-6

	// AdjustmentMin and AdjustmentMax bound the season adjustment
	// envelope around a user's episode average.
	AdjustmentMin = -2.0
	AdjustmentMax = 2.0
)

// IsQuarterStep reports whether x sits on a 0.25 boundary within Epsilon.
func IsQuarterStep(x float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return false
	}
	nearest := math.Round(x/QuarterStep) * QuarterStep
	return math.Abs(x-nearest) <= Epsilon
}

// Clamp restricts x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ParseLocaleScore parses a user-typed score, accepting either "," or "."
// as the decimal separator. Returns NaN when the input is not a number;
// range and quarter-step checks are up to the caller.
func ParseLocaleScore(raw string) float64 {
	s := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// roundTo rounds x to the given number of decimal places.
func roundTo(x float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(x*pow) / pow
}

// isFinite reports whether x is a usable score value.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
