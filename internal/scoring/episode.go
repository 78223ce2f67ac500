package scoring

// EpisodeRating is the engine-facing shape of one user's rating of one
// episode. Repositories convert their rows into this before calling in.
type EpisodeRating struct {
	EpisodeID int64
	UserID    string
	Score     float64
}

// Coverage accumulates one user's episode ratings inside a single season.
type Coverage struct {
	Sum   float64
	Count int
}

// Average returns the mean episode score, or false when the user has not
// rated any episode. A season score is never derived from zero ratings.
func (c Coverage) Average() (float64, bool) {
	if c.Count == 0 {
		return 0, false
	}
	return c.Sum / float64(c.Count), true
}

// EpisodeCoverageByUser folds a pool of episode ratings into per-user
// coverage for the season identified by episodeIDs. Ratings referencing
// episodes outside the set are dropped: the fetch layer may hand us a
// superset and a stray row must never leak into a sum.
func EpisodeCoverageByUser(episodeIDs []int64, ratings []EpisodeRating) map[string]Coverage {
	inSeason := make(map[int64]struct{}, len(episodeIDs))
	for _, id := range episodeIDs {
		inSeason[id] = struct{}{}
	}

	byUser := make(map[string]Coverage)
	for _, r := range ratings {
		if _, ok := inSeason[r.EpisodeID]; !ok {
			continue
		}
		c := byUser[r.UserID]
		c.Sum += r.Score
		c.Count++
		byUser[r.UserID] = c
	}
	return byUser
}
