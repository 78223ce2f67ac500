package scoring

import "sort"

// RowKind identifies what a leaderboard row scores.
type RowKind string

const (
	KindFilm   RowKind = "film"
	KindSeries RowKind = "series"
	KindSeason RowKind = "season"
)

// LeaderboardRow is one scored entry of the merged leaderboard.
type LeaderboardRow struct {
	Kind      RowKind `json:"kind"`
	RefID     int64   `json:"ref_id"`
	Title     string  `json:"title"`
	Score     float64 `json:"score"`
	Support   int     `json:"support"` // rating or contributor count, secondary sort key
	Franchise string  `json:"franchise,omitempty"`
	Phase     string  `json:"phase,omitempty"`
	RankLabel string  `json:"rank"`
}

// LeaderboardFilter narrows the merged table. Zero values mean "no
// restriction". Phase is a three-state field: nil applies no phase
// scoping, a pointer to "" keeps any row with a populated phase tag, and
// a concrete value keeps only that phase.
type LeaderboardFilter struct {
	Kinds     []RowKind
	Franchise string
	Phase     *string
}

func (f LeaderboardFilter) match(row LeaderboardRow) bool {
	if len(f.Kinds) > 0 {
		found := false
		for _, k := range f.Kinds {
			if row.Kind == k {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Franchise != "" && row.Franchise != f.Franchise {
		return false
	}
	if f.Phase != nil {
		// Phase-scoped ranking only admits rows carrying a phase tag,
		// even when no specific phase is selected.
		if row.Phase == "" {
			return false
		}
		if *f.Phase != "" && row.Phase != *f.Phase {
			return false
		}
	}
	return true
}

// AssembleLeaderboard filters heterogeneous scored rows, sorts them by
// score descending then support descending, and attaches rank labels.
// Rows with non-finite scores sink to the bottom and stay unranked.
func AssembleLeaderboard(rows []LeaderboardRow, filter LeaderboardFilter, precision int) []LeaderboardRow {
	out := make([]LeaderboardRow, 0, len(rows))
	for _, row := range rows {
		if filter.match(row) {
			out = append(out, row)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		af, bf := isFinite(a.Score), isFinite(b.Score)
		if af != bf {
			return af // finite scores first
		}
		if af && a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Support != b.Support {
			return a.Support > b.Support
		}
		return a.Title < b.Title
	})

	scores := make([]float64, len(out))
	for i, row := range out {
		scores[i] = row.Score
	}
	labels := RankLabels(scores, precision)
	for i := range out {
		out[i].RankLabel = labels[i]
	}
	return out
}
