package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateSeasonsSingleContributor(t *testing.T) {
	// one user rated one of three seasons at 8.0: the weighting cancels
	// and the global average equals their own average
	seasons := []map[string]SeasonScore{
		{"alice": {Effective: floatPtr(8)}},
		{},
		{},
	}

	agg := AggregateSeasons(3, seasons)

	require.NotNil(t, agg.GlobalAverage)
	assert.InDelta(t, 8.0, *agg.GlobalAverage, Epsilon)
	assert.InDelta(t, 8.0, agg.UserAverages["alice"], Epsilon)
	assert.InDelta(t, 1.0/3.0, agg.Coverage["alice"], Epsilon)
	assert.Equal(t, 1, agg.Contributors)
}

func TestAggregateSeasonsCoverageWeighting(t *testing.T) {
	// user A rated both seasons averaging 6.0 (coverage 1.0), user B rated
	// one of two at 10.0 (coverage 0.5):
	// global = (6*1 + 10*0.5) / 1.5 = 7.333...
	seasons := []map[string]SeasonScore{
		{
			"a": {Effective: floatPtr(5)},
			"b": {Effective: floatPtr(10)},
		},
		{
			"a": {Effective: floatPtr(7)},
		},
	}

	agg := AggregateSeasons(2, seasons)

	require.NotNil(t, agg.GlobalAverage)
	assert.InDelta(t, 22.0/3.0, *agg.GlobalAverage, Epsilon)
	assert.InDelta(t, 6.0, agg.UserAverages["a"], Epsilon)
	assert.InDelta(t, 10.0, agg.UserAverages["b"], Epsilon)
	assert.InDelta(t, 0.5, agg.Coverage["b"], Epsilon)
	assert.Equal(t, 2, agg.Contributors)
}

func TestAggregateSeasonsNoContributors(t *testing.T) {
	agg := AggregateSeasons(3, []map[string]SeasonScore{
		{"alice": {}}, // resolved but with nil effective
		{},
	})

	assert.Nil(t, agg.GlobalAverage, "no effective scores must yield nil, not zero")
	assert.Zero(t, agg.Contributors)
	assert.Nil(t, agg.UserAverage("alice"))
}

func TestAggregateSeasonsAsPhaseGrouping(t *testing.T) {
	// the same weighting applies when the unit is a phase spanning
	// seasons of different series: two seasons in the phase, one user
	// covering half of it
	phaseSeasons := []map[string]SeasonScore{
		{"a": {Effective: floatPtr(9)}},
		{},
	}

	agg := AggregateSeasons(2, phaseSeasons)
	require.NotNil(t, agg.GlobalAverage)
	assert.InDelta(t, 9.0, *agg.GlobalAverage, Epsilon)
	assert.InDelta(t, 0.5, agg.Coverage["a"], Epsilon)
}

func TestUserAverage(t *testing.T) {
	agg := AggregateSeasons(1, []map[string]SeasonScore{
		{"a": {Effective: floatPtr(7.5)}},
	})

	avg := agg.UserAverage("a")
	require.NotNil(t, avg)
	assert.InDelta(t, 7.5, *avg, Epsilon)
	assert.Nil(t, agg.UserAverage("nobody"))
}
