package dto

import (
	"cinehub/internal/scoring"
)

// RateEpisodeDTO carries the raw score as a string so that locale input
// ("8,75") reaches the parser untouched by JSON number handling.
type RateEpisodeDTO struct {
	Score  string  `json:"score" binding:"required"`
	Review *string `json:"review,omitempty"`
}

// SetSeasonRatingDTO sets or clears a season's manual score and review.
// Both fields are raw strings for the same locale reason as episode
// scores; a nil manual_score clears the override.
type SetSeasonRatingDTO struct {
	ManualScore *string `json:"manual_score,omitempty"`
	Review      *string `json:"review,omitempty"`
}

// AdjustSeasonRatingDTO nudges a season's derived score by one quarter
// step, or resets the accumulated adjustment.
type AdjustSeasonRatingDTO struct {
	Direction string `json:"direction" binding:"required,oneof=up down reset"`
}

// SeasonScoreView is the wire shape of one user's resolved season score.
type SeasonScoreView struct {
	Effective      *float64 `json:"effective"`
	EpisodeAverage *float64 `json:"episode_average"`
	ManualScore    *float64 `json:"manual_score,omitempty"`
	Adjustment     float64  `json:"adjustment"`
	RatedEpisodes  int      `json:"rated_episodes"`
	TotalEpisodes  int      `json:"total_episodes"`
	IsComplete     bool     `json:"is_complete"`
}

// NewSeasonScoreView converts an engine score into its wire shape.
func NewSeasonScoreView(score scoring.SeasonScore) *SeasonScoreView {
	return &SeasonScoreView{
		Effective:      score.Effective,
		EpisodeAverage: score.EpisodeAverage,
		ManualScore:    score.ManualScore,
		Adjustment:     score.Adjustment,
		RatedEpisodes:  score.RatedEpisodes,
		TotalEpisodes:  score.TotalEpisodes,
		IsComplete:     score.IsComplete,
	}
}

// SeasonResolutionResponse is returned from every write that can move a
// season's numbers, so clients never need a follow-up read to refresh.
type SeasonResolutionResponse struct {
	SeasonID    int64            `json:"season_id"`
	MyScore     *SeasonScoreView `json:"my_score"`
	SiteAverage *float64         `json:"site_average"`
	RaterCount  int              `json:"rater_count"`
}

// NewSeasonResolutionResponse builds the response for one season and one
// viewing user.
func NewSeasonResolutionResponse(seasonID int64, score scoring.SeasonScore, siteAverage *float64, raterCount int) *SeasonResolutionResponse {
	return &SeasonResolutionResponse{
		SeasonID:    seasonID,
		MyScore:     NewSeasonScoreView(score),
		SiteAverage: siteAverage,
		RaterCount:  raterCount,
	}
}
