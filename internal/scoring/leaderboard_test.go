package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func testRows() []LeaderboardRow {
	return []LeaderboardRow{
		{Kind: KindFilm, RefID: 1, Title: "Solaris", Score: 8.5, Support: 40},
		{Kind: KindFilm, RefID: 2, Title: "Stalker", Score: 9.0, Support: 55, Franchise: "tarkovsky"},
		{Kind: KindSeries, RefID: 3, Title: "The Zone", Score: 9.0, Support: 20, Franchise: "tarkovsky", Phase: "one"},
		{Kind: KindSeason, RefID: 4, Title: "The Zone S1", Score: 7.0, Support: 25, Franchise: "tarkovsky", Phase: "one"},
		{Kind: KindSeason, RefID: 5, Title: "The Zone S2", Score: 7.0, Support: 12, Franchise: "tarkovsky", Phase: "two"},
	}
}

func TestAssembleLeaderboardSortAndLabels(t *testing.T) {
	rows := AssembleLeaderboard(testRows(), LeaderboardFilter{}, 2)
	require.Len(t, rows, 5)

	// score desc, support desc inside the 9.0 tie
	assert.Equal(t, int64(2), rows[0].RefID)
	assert.Equal(t, int64(3), rows[1].RefID)
	assert.Equal(t, []string{"1", "-", "2", "3", "-"}, []string{
		rows[0].RankLabel, rows[1].RankLabel, rows[2].RankLabel, rows[3].RankLabel, rows[4].RankLabel,
	})
	// the 7.0 tie orders by support desc
	assert.Equal(t, int64(4), rows[3].RefID)
	assert.Equal(t, int64(5), rows[4].RefID)
}

func TestAssembleLeaderboardKindFilter(t *testing.T) {
	rows := AssembleLeaderboard(testRows(), LeaderboardFilter{Kinds: []RowKind{KindFilm}}, 2)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, KindFilm, r.Kind)
	}
}

func TestAssembleLeaderboardFranchiseFilter(t *testing.T) {
	rows := AssembleLeaderboard(testRows(), LeaderboardFilter{Franchise: "tarkovsky"}, 2)
	require.Len(t, rows, 4)
	for _, r := range rows {
		assert.Equal(t, "tarkovsky", r.Franchise)
	}
}

func TestAssembleLeaderboardPhaseFilter(t *testing.T) {
	t.Run("SpecificPhase", func(t *testing.T) {
		rows := AssembleLeaderboard(testRows(), LeaderboardFilter{Phase: strPtr("one")}, 2)
		require.Len(t, rows, 2)
		for _, r := range rows {
			assert.Equal(t, "one", r.Phase)
		}
	})

	t.Run("AnyPhaseStillRequiresTag", func(t *testing.T) {
		// phase-scoped with no specific phase: untagged rows drop out
		rows := AssembleLeaderboard(testRows(), LeaderboardFilter{Phase: strPtr("")}, 2)
		require.Len(t, rows, 3)
		for _, r := range rows {
			assert.NotEmpty(t, r.Phase)
		}
	})

	t.Run("NilPhaseMeansNoRestriction", func(t *testing.T) {
		rows := AssembleLeaderboard(testRows(), LeaderboardFilter{}, 2)
		assert.Len(t, rows, 5)
	})
}

func TestAssembleLeaderboardNaNSinks(t *testing.T) {
	rows := AssembleLeaderboard([]LeaderboardRow{
		{Kind: KindFilm, RefID: 1, Title: "Unrated", Score: math.NaN()},
		{Kind: KindFilm, RefID: 2, Title: "Rated", Score: 6.0, Support: 3},
	}, LeaderboardFilter{}, 2)

	require.Len(t, rows, 2)
	assert.Equal(t, int64(2), rows[0].RefID)
	assert.Equal(t, "1", rows[0].RankLabel)
	assert.Equal(t, "-", rows[1].RankLabel)
}
