package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestResolveSeasonScoreNoData(t *testing.T) {
	score := ResolveSeasonScore(10, Coverage{}, nil)

	assert.Nil(t, score.Effective, "no episode ratings and no manual score must resolve to nil, not zero")
	assert.Nil(t, score.EpisodeAverage)
	assert.False(t, score.IsComplete)
}

func TestResolveSeasonScoreManualWins(t *testing.T) {
	// a manual score makes the adjustment inert, whatever its value
	for _, adj := range []float64{-2, -0.25, 0, 1.75, 2} {
		score := ResolveSeasonScore(10, Coverage{Sum: 16, Count: 2}, &SeasonUserRating{
			ManualScore: floatPtr(6.5),
			Adjustment:  adj,
		})
		require.NotNil(t, score.Effective)
		assert.InDelta(t, 6.5, *score.Effective, Epsilon, "adjustment %v", adj)
	}
}

func TestResolveSeasonScoreManualClamped(t *testing.T) {
	score := ResolveSeasonScore(10, Coverage{}, &SeasonUserRating{ManualScore: floatPtr(12)})
	require.NotNil(t, score.Effective)
	assert.Equal(t, 10.0, *score.Effective)
}

func TestResolveSeasonScoreEpisodeAveragePlusAdjustment(t *testing.T) {
	score := ResolveSeasonScore(4, Coverage{Sum: 30, Count: 4}, &SeasonUserRating{Adjustment: 0.75})

	require.NotNil(t, score.EpisodeAverage)
	assert.InDelta(t, 7.5, *score.EpisodeAverage, Epsilon)
	require.NotNil(t, score.Effective)
	assert.InDelta(t, 8.25, *score.Effective, Epsilon)
	assert.True(t, score.IsComplete)
}

func TestResolveSeasonScoreAdjustmentClampedToScoreRange(t *testing.T) {
	score := ResolveSeasonScore(2, Coverage{Sum: 19, Count: 2}, &SeasonUserRating{Adjustment: 2})
	require.NotNil(t, score.Effective)
	assert.Equal(t, 10.0, *score.Effective)
}

func TestResolveSeasonScoresMergesUsers(t *testing.T) {
	scores := ResolveSeasonScores(
		[]int64{1, 2},
		[]EpisodeRating{
			{EpisodeID: 1, UserID: "alice", Score: 8},
			{EpisodeID: 2, UserID: "alice", Score: 9},
		},
		[]SeasonUserRating{
			{UserID: "bob", ManualScore: floatPtr(7)},
		},
	)

	require.Len(t, scores, 2)
	require.NotNil(t, scores["alice"].Effective)
	assert.InDelta(t, 8.5, *scores["alice"].Effective, Epsilon)
	require.NotNil(t, scores["bob"].Effective)
	assert.InDelta(t, 7.0, *scores["bob"].Effective, Epsilon)
	assert.True(t, scores["alice"].IsComplete, "alice rated both episodes")
}

func TestSeasonSiteAverage(t *testing.T) {
	scores := map[string]SeasonScore{
		"alice": {Effective: floatPtr(8)},
		"bob":   {Effective: floatPtr(6)},
		"carol": {}, // no effective score, no contribution
	}

	avg, raters := SeasonSiteAverage(scores)
	require.NotNil(t, avg)
	assert.InDelta(t, 7.0, *avg, Epsilon)
	assert.Equal(t, 2, raters)
}

func TestSeasonSiteAverageEmpty(t *testing.T) {
	avg, raters := SeasonSiteAverage(map[string]SeasonScore{"x": {}})
	assert.Nil(t, avg)
	assert.Zero(t, raters)
}

func TestMean(t *testing.T) {
	avg, ok := Mean([]float64{6, 8, 10})
	require.True(t, ok)
	assert.Equal(t, 8.0, avg)

	_, ok = Mean(nil)
	assert.False(t, ok)
}
