package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankLabelsTieCollapsing(t *testing.T) {
	labels := RankLabels([]float64{9.0, 9.0, 7.5, 7.5, 7.5, 5.0}, 2)
	assert.Equal(t, []string{"1", "-", "2", "-", "-", "3"}, labels)
}

func TestRankLabelsNonFinite(t *testing.T) {
	labels := RankLabels([]float64{math.NaN(), 8.0}, 2)
	assert.Equal(t, []string{"-", "1"}, labels)

	labels = RankLabels([]float64{8.0, math.Inf(-1), 7.0}, 2)
	assert.Equal(t, []string{"1", "-", "2"}, labels)
}

func TestRankLabelsPrecision(t *testing.T) {
	// at precision 1 the first two scores collapse into a tie
	labels := RankLabels([]float64{8.04, 8.01, 7.0}, 1)
	assert.Equal(t, []string{"1", "-", "2"}, labels)

	// at precision 2 they stay distinct
	labels = RankLabels([]float64{8.04, 8.01, 7.0}, 2)
	assert.Equal(t, []string{"1", "2", "3"}, labels)
}

func TestRankLabelsEmpty(t *testing.T) {
	assert.Empty(t, RankLabels(nil, 2))
}
