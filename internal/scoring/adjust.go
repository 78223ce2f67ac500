package scoring

import (
	"math"
	"strings"
)

// StepDirection nudges an adjustment one quarter step at a time.
type StepDirection int

const (
	StepDown StepDirection = -1
	StepUp   StepDirection = 1
)

// StepAdjustment computes the adjustment after a single up or down nudge.
//
// base is the user's episode average for the season; the reachable targets
// are base itself plus every quarter-aligned value inside the ±2 envelope
// clamped to [0, 10]. "Up" moves to the smallest target strictly above the
// current effective score, "down" to the largest strictly below; at the
// envelope edge the adjustment saturates and stays put.
func StepAdjustment(base, currentAdjustment float64, dir StepDirection) (float64, error) {
	if !isFinite(base) {
		return 0, newValidationError("adjustment", "no episode average to adjust from")
	}
	if dir != StepUp && dir != StepDown {
		return 0, newValidationError("direction", "must be up or down")
	}

	base = roundTo(base, 2)
	current := Clamp(base+currentAdjustment, ScoreMin, ScoreMax)

	candidates := stepTargets(base)

	next := current
	if dir == StepUp {
		for _, c := range candidates { // ascending
			if c > current+Epsilon {
				next = c
				break
			}
		}
	} else {
		for i := len(candidates) - 1; i >= 0; i-- {
			if candidates[i] < current-Epsilon {
				next = candidates[i]
				break
			}
		}
	}

	return roundTo(Clamp(next-base, AdjustmentMin, AdjustmentMax), 2), nil
}

// stepTargets builds the sorted candidate effective scores reachable from
// base: base itself plus every quarter-aligned value in the clamped ±2
// window. base is usually not quarter-aligned (it is an average), so it is
// inserted into the grid rather than assumed to be on it.
func stepTargets(base float64) []float64 {
	lo := Clamp(base+AdjustmentMin, ScoreMin, ScoreMax)
	hi := Clamp(base+AdjustmentMax, ScoreMin, ScoreMax)

	var targets []float64
	start := math.Ceil((lo-Epsilon)/QuarterStep) * QuarterStep
	baseAdded := false
	for v := start; v <= hi+Epsilon; v += QuarterStep {
		q := roundTo(v, 2)
		if !baseAdded && base < q-Epsilon {
			targets = append(targets, base)
			baseAdded = true
		}
		if math.Abs(q-base) <= Epsilon {
			baseAdded = true
		}
		targets = append(targets, q)
	}
	if !baseAdded {
		targets = append(targets, base)
	}
	return targets
}

// NormalizeSeasonUserRating clamps the adjustment and collapses an
// all-default row to nil. A row with no manual score, zero adjustment and
// an empty review must be deleted, never persisted; every write path runs
// through this before touching the store.
func NormalizeSeasonUserRating(r *SeasonUserRating) *SeasonUserRating {
	if r == nil {
		return nil
	}
	if r.ManualScore != nil && !isFinite(*r.ManualScore) {
		r.ManualScore = nil
	}
	r.Adjustment = roundTo(Clamp(r.Adjustment, AdjustmentMin, AdjustmentMax), 2)
	r.Review = strings.TrimSpace(r.Review)

	if r.ManualScore == nil && math.Abs(r.Adjustment) <= Epsilon && r.Review == "" {
		return nil
	}
	return r
}
