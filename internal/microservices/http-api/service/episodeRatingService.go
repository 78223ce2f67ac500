package service

import (
	"context"
	"errors"

	"cinehub/internal/microservices/http-api/dto"
	"cinehub/internal/microservices/http-api/models"
	"cinehub/internal/microservices/http-api/repository"
	"cinehub/internal/scoring"

	"gorm.io/gorm"
)

var (
	ErrEpisodeNotFound       = errors.New("episode not found")
	ErrEpisodeRatingNotFound = errors.New("rating not found")
)

type EpisodeRatingService interface {
	RateEpisode(userID string, episodeID int64, rawScore string, review *string) (*dto.SeasonResolutionResponse, error)
	DeleteRating(userID string, episodeID int64) (*dto.SeasonResolutionResponse, error)
	GetSeasonResolution(ctx context.Context, seasonID int64, userID string) (*dto.SeasonResolutionResponse, error)
}

// SeasonStore is the slice of the series repository the rating flows
// need. *repository.SeriesRepo satisfies it.
type SeasonStore interface {
	GetSeasonByID(ctx context.Context, id int64) (*models.Season, error)
	GetEpisodeByID(ctx context.Context, id int64) (*models.Episode, error)
}

type episodeRatingService struct {
	seriesRepo        SeasonStore
	episodeRatingRepo repository.EpisodeRatingRepository
	seasonRatingRepo  repository.SeasonRatingRepository
	invalidator       LeaderboardInvalidator
}

func NewEpisodeRatingService(
	seriesRepo SeasonStore,
	episodeRatingRepo repository.EpisodeRatingRepository,
	seasonRatingRepo repository.SeasonRatingRepository,
	invalidator LeaderboardInvalidator,
) EpisodeRatingService {
	return &episodeRatingService{
		seriesRepo:        seriesRepo,
		episodeRatingRepo: episodeRatingRepo,
		seasonRatingRepo:  seasonRatingRepo,
		invalidator:       invalidator,
	}
}

// RateEpisode validates and upserts a quarter-step episode score. The
// score arrives as raw text so "8,75" and "8.75" both work. Returns the
// refreshed season resolution so the client can show the new effective
// score without a second round trip.
func (s *episodeRatingService) RateEpisode(userID string, episodeID int64, rawScore string, review *string) (*dto.SeasonResolutionResponse, error) {
	ctx := context.Background()

	score := scoring.ParseLocaleScore(rawScore)
	if err := scoring.ValidateScore("score", score); err != nil {
		return nil, err
	}

	episode, err := s.seriesRepo.GetEpisodeByID(ctx, episodeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEpisodeNotFound
		}
		return nil, err
	}

	existing, err := s.episodeRatingRepo.GetByUserAndEpisode(userID, episodeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing != nil {
		existing.Score = score
		existing.Review = review
		if err := s.episodeRatingRepo.Update(existing); err != nil {
			return nil, err
		}
	} else {
		rating := &models.EpisodeRating{
			UserID:    userID,
			EpisodeID: episodeID,
			Score:     score,
			Review:    review,
		}
		if err := s.episodeRatingRepo.Create(rating); err != nil {
			return nil, err
		}
	}

	if s.invalidator != nil {
		_ = s.invalidator.InvalidateLeaderboard(ctx)
	}

	return s.GetSeasonResolution(ctx, episode.SeasonID, userID)
}

// DeleteRating removes the user's rating for one episode and returns the
// refreshed season resolution.
func (s *episodeRatingService) DeleteRating(userID string, episodeID int64) (*dto.SeasonResolutionResponse, error) {
	ctx := context.Background()

	episode, err := s.seriesRepo.GetEpisodeByID(ctx, episodeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEpisodeNotFound
		}
		return nil, err
	}

	if err := s.episodeRatingRepo.Delete(userID, episodeID); err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			return nil, ErrEpisodeRatingNotFound
		}
		return nil, err
	}

	if s.invalidator != nil {
		_ = s.invalidator.InvalidateLeaderboard(ctx)
	}

	return s.GetSeasonResolution(ctx, episode.SeasonID, userID)
}

// GetSeasonResolution recomputes the caller's effective score and the
// season's site average from a fresh read.
func (s *episodeRatingService) GetSeasonResolution(ctx context.Context, seasonID int64, userID string) (*dto.SeasonResolutionResponse, error) {
	season, err := s.seriesRepo.GetSeasonByID(ctx, seasonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeasonNotFound
		}
		return nil, err
	}

	episodeIDs := make([]int64, len(season.Episodes))
	for i, ep := range season.Episodes {
		episodeIDs[i] = ep.ID
	}

	episodeRatings, err := s.episodeRatingRepo.GetByEpisodeIDs(ctx, episodeIDs)
	if err != nil {
		return nil, err
	}
	seasonRows, err := s.seasonRatingRepo.GetBySeasonIDs(ctx, []int64{seasonID})
	if err != nil {
		return nil, err
	}

	scores := scoring.ResolveSeasonScores(episodeIDs, toEngineEpisodeRatings(episodeRatings), toEngineSeasonRatings(seasonRows))
	siteAvg, raters := scoring.SeasonSiteAverage(scores)

	// A viewer with no ratings and no season row has no entry in the
	// score map; the response still reports the season's real size.
	userScore, ok := scores[userID]
	if !ok {
		userScore.TotalEpisodes = len(episodeIDs)
	}

	return dto.NewSeasonResolutionResponse(seasonID, userScore, siteAvg, raters), nil
}

// toEngineEpisodeRatings converts stored rows into the engine's shape.
func toEngineEpisodeRatings(rows []models.EpisodeRating) []scoring.EpisodeRating {
	out := make([]scoring.EpisodeRating, len(rows))
	for i, r := range rows {
		out[i] = scoring.EpisodeRating{
			EpisodeID: r.EpisodeID,
			UserID:    r.UserID,
			Score:     r.Score,
		}
	}
	return out
}

func toEngineSeasonRatings(rows []models.SeasonUserRating) []scoring.SeasonUserRating {
	out := make([]scoring.SeasonUserRating, len(rows))
	for i, r := range rows {
		review := ""
		if r.Review != nil {
			review = *r.Review
		}
		out[i] = scoring.SeasonUserRating{
			SeasonID:    r.SeasonID,
			UserID:      r.UserID,
			ManualScore: r.ManualScore,
			Adjustment:  r.Adjustment,
			Review:      review,
		}
	}
	return out
}
