package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsQuarterStep(t *testing.T) {
	// every quarter step inside the score range is valid
	for s := ScoreMin; s <= ScoreMax+Epsilon; s += QuarterStep {
		assert.True(t, IsQuarterStep(s), "score %v", s)
	}

	// shifting off the grid breaks validity
	assert.False(t, IsQuarterStep(7.25+0.1))
	assert.False(t, IsQuarterStep(0.1))
	assert.False(t, IsQuarterStep(9.99))

	// float noise within tolerance is still valid
	assert.True(t, IsQuarterStep(7.25+1e-9))
	assert.True(t, IsQuarterStep(0.1+0.15)) // 0.25 with binary rounding error

	assert.False(t, IsQuarterStep(math.NaN()))
	assert.False(t, IsQuarterStep(math.Inf(1)))
}

func TestClampIdempotent(t *testing.T) {
	for _, x := range []float64{-3, 0, 4.75, 10, 12.5} {
		once := Clamp(x, ScoreMin, ScoreMax)
		assert.Equal(t, once, Clamp(once, ScoreMin, ScoreMax), "clamp(%v)", x)
		assert.GreaterOrEqual(t, once, ScoreMin)
		assert.LessOrEqual(t, once, ScoreMax)
	}
}

func TestParseLocaleScore(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"7.25", 7.25},
		{"7,25", 7.25},
		{" 8,5 ", 8.5},
		{"10", 10},
		{"0", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLocaleScore(tt.raw), "raw %q", tt.raw)
	}

	for _, raw := range []string{"", "abc", "7.2.5", "7,2,5"} {
		assert.True(t, math.IsNaN(ParseLocaleScore(raw)), "raw %q", raw)
	}
}

func TestValidateScore(t *testing.T) {
	assert.NoError(t, ValidateScore("score", 7.25))
	assert.NoError(t, ValidateScore("score", 0))
	assert.NoError(t, ValidateScore("score", 10))

	var verr *ValidationError
	err := ValidateScore("score", 10.25)
	assert.ErrorAs(t, err, &verr)

	assert.Error(t, ValidateScore("score", -0.25))
	assert.Error(t, ValidateScore("score", 7.3))
	assert.Error(t, ValidateScore("score", math.NaN()))
}
