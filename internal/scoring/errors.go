package scoring

import "fmt"

// ValidationError reports a rejected user input (score out of range, not
// quarter-aligned, adjustment used without an episode average, ...).
// It is always recoverable: handlers surface it to the caller, nothing
// retries it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ValidateScore checks a quarter-step score in [0, 10]. Used for episode
// ratings and manual season scores; film ratings are integer-only and are
// validated at the binding layer instead.
func ValidateScore(field string, score float64) error {
	if !isFinite(score) {
		return newValidationError(field, "not a number")
	}
	if score < ScoreMin-Epsilon || score > ScoreMax+Epsilon {
		return newValidationError(field, "must be between %g and %g", ScoreMin, ScoreMax)
	}
	if !IsQuarterStep(score) {
		return newValidationError(field, "must be a multiple of %g", QuarterStep)
	}
	return nil
}
