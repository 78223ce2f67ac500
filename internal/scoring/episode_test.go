package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEpisodeCoverageByUser(t *testing.T) {
	episodeIDs := []int64{1, 2, 3}
	ratings := []EpisodeRating{
		{EpisodeID: 1, UserID: "alice", Score: 8},
		{EpisodeID: 2, UserID: "alice", Score: 9},
		{EpisodeID: 1, UserID: "bob", Score: 6.5},
	}

	cov := EpisodeCoverageByUser(episodeIDs, ratings)
	require.Len(t, cov, 2)

	assert.Equal(t, Coverage{Sum: 17, Count: 2}, cov["alice"])
	avg, ok := cov["alice"].Average()
	require.True(t, ok)
	assert.InDelta(t, 8.5, avg, Epsilon)

	assert.Equal(t, Coverage{Sum: 6.5, Count: 1}, cov["bob"])
}

func TestEpisodeCoverageFiltersForeignEpisodes(t *testing.T) {
	// episode 99 belongs to some other season; its rating must be dropped,
	// not summed
	cov := EpisodeCoverageByUser([]int64{1, 2}, []EpisodeRating{
		{EpisodeID: 1, UserID: "alice", Score: 8},
		{EpisodeID: 99, UserID: "alice", Score: 1},
	})

	assert.Equal(t, Coverage{Sum: 8, Count: 1}, cov["alice"])
}

func TestCoverageAverageEmpty(t *testing.T) {
	_, ok := Coverage{}.Average()
	assert.False(t, ok)
}
