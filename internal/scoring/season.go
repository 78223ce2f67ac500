package scoring

// SeasonUserRating is the engine-facing shape of a user's season-level
// row: an optional manual override, a bounded adjustment and an optional
// review. Absence of the row means "no override, no adjustment".
type SeasonUserRating struct {
	SeasonID    int64
	UserID      string
	ManualScore *float64
	Adjustment  float64
	Review      string
}

// SeasonScore is the resolved per-user view of one season. Effective is
// nil when the user has neither a manual score nor any episode rating.
type SeasonScore struct {
	Effective      *float64
	EpisodeAverage *float64
	ManualScore    *float64
	Adjustment     float64
	RatedEpisodes  int
	TotalEpisodes  int
	IsComplete     bool
}

// ResolveSeasonScore combines a user's manual override, episode average
// and adjustment into one effective score for a season:
//
//   - a finite manual score wins outright and makes the adjustment inert,
//   - otherwise the clamped episode average plus adjustment applies,
//   - with no episode ratings and no manual score the result stays nil.
func ResolveSeasonScore(totalEpisodes int, cov Coverage, rating *SeasonUserRating) SeasonScore {
	score := SeasonScore{
		RatedEpisodes: cov.Count,
		TotalEpisodes: totalEpisodes,
		IsComplete:    totalEpisodes > 0 && cov.Count == totalEpisodes,
	}

	if avg, ok := cov.Average(); ok {
		a := avg
		score.EpisodeAverage = &a
	}
	if rating != nil {
		score.ManualScore = rating.ManualScore
		score.Adjustment = Clamp(rating.Adjustment, AdjustmentMin, AdjustmentMax)
	}

	switch {
	case score.ManualScore != nil && isFinite(*score.ManualScore):
		eff := Clamp(*score.ManualScore, ScoreMin, ScoreMax)
		score.Effective = &eff
	case score.EpisodeAverage != nil:
		eff := Clamp(*score.EpisodeAverage+score.Adjustment, ScoreMin, ScoreMax)
		score.Effective = &eff
	}
	return score
}

// ResolveSeasonScores resolves every user's score for one season.
// episodeIDs scopes the rating pool; userRatings carries the season-level
// rows for any subset of users.
func ResolveSeasonScores(episodeIDs []int64, episodeRatings []EpisodeRating, userRatings []SeasonUserRating) map[string]SeasonScore {
	coverage := EpisodeCoverageByUser(episodeIDs, episodeRatings)

	rows := make(map[string]*SeasonUserRating, len(userRatings))
	for i := range userRatings {
		rows[userRatings[i].UserID] = &userRatings[i]
	}

	users := make(map[string]struct{}, len(coverage)+len(rows))
	for u := range coverage {
		users[u] = struct{}{}
	}
	for u := range rows {
		users[u] = struct{}{}
	}

	scores := make(map[string]SeasonScore, len(users))
	for u := range users {
		scores[u] = ResolveSeasonScore(len(episodeIDs), coverage[u], rows[u])
	}
	return scores
}

// SeasonSiteAverage is the unweighted mean of all non-nil effective
// scores for a season, with the number of contributing users. Returns
// nil when nobody has an effective score.
func SeasonSiteAverage(scores map[string]SeasonScore) (*float64, int) {
	var effectives []float64
	for _, s := range scores {
		if s.Effective != nil {
			effectives = append(effectives, *s.Effective)
		}
	}
	avg, ok := Mean(effectives)
	if !ok {
		return nil, 0
	}
	return &avg, len(effectives)
}

// Mean returns the arithmetic mean of xs, or false for an empty slice.
func Mean(xs []float64) (float64, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs)), true
}
