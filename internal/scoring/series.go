package scoring

// SeriesAggregate folds per-season effective scores across a whole series
// (or any cross-cutting grouping of seasons, e.g. a franchise phase).
type SeriesAggregate struct {
	// GlobalAverage is the coverage-weighted mean over all contributing
	// users, nil when nobody has any effective score.
	GlobalAverage *float64
	// UserAverages maps user id to the plain mean of that user's
	// effective scores across the seasons they rated.
	UserAverages map[string]float64
	// Coverage maps user id to rated-seasons / total-seasons.
	Coverage     map[string]float64
	Contributors int
}

// UserAverage returns one user's series average, or nil if the user has
// no effective score in any season.
func (a SeriesAggregate) UserAverage(userID string) *float64 {
	if avg, ok := a.UserAverages[userID]; ok {
		return &avg
	}
	return nil
}

// AggregateSeasons combines per-season score maps into series-level
// figures. Each entry of seasonScores is the resolved score map of one
// season; totalSeasons is the full season count of the grouping, which
// may exceed len(seasonScores) only never the other way around.
//
// The global average weights each user by coverage: a user who rated one
// season of ten carries a tenth of the weight of a user who rated all
// ten, even though both contribute a single per-user average. The same
// weighting applies unchanged when the grouping is a franchise phase
// instead of a whole series.
func AggregateSeasons(totalSeasons int, seasonScores []map[string]SeasonScore) SeriesAggregate {
	agg := SeriesAggregate{
		UserAverages: make(map[string]float64),
		Coverage:     make(map[string]float64),
	}
	if totalSeasons <= 0 {
		return agg
	}

	perUser := make(map[string][]float64)
	for _, season := range seasonScores {
		for userID, score := range season {
			if score.Effective != nil {
				perUser[userID] = append(perUser[userID], *score.Effective)
			}
		}
	}
	if len(perUser) == 0 {
		return agg
	}

	weightedSum := 0.0
	weightTotal := 0.0
	for userID, effectives := range perUser {
		avg, _ := Mean(effectives)
		cov := float64(len(effectives)) / float64(totalSeasons)
		agg.UserAverages[userID] = avg
		agg.Coverage[userID] = cov
		weightedSum += avg * cov
		weightTotal += cov
	}

	global := weightedSum / weightTotal
	agg.GlobalAverage = &global
	agg.Contributors = len(perUser)
	return agg
}
