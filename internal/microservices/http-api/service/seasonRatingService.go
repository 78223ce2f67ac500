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

var ErrSeasonNotFound = errors.New("season not found")

type SeasonRatingService interface {
	SetRating(userID string, seasonID int64, rawManualScore *string, review *string) (*dto.SeasonResolutionResponse, error)
	Adjust(userID string, seasonID int64, direction string) (*dto.SeasonResolutionResponse, error)
	DeleteRating(userID string, seasonID int64) error
}

type seasonRatingService struct {
	seriesRepo        SeasonStore
	episodeRatingRepo repository.EpisodeRatingRepository
	seasonRatingRepo  repository.SeasonRatingRepository
	resolution        EpisodeRatingService
	invalidator       LeaderboardInvalidator
}

func NewSeasonRatingService(
	seriesRepo SeasonStore,
	episodeRatingRepo repository.EpisodeRatingRepository,
	seasonRatingRepo repository.SeasonRatingRepository,
	resolution EpisodeRatingService,
	invalidator LeaderboardInvalidator,
) SeasonRatingService {
	return &seasonRatingService{
		seriesRepo:        seriesRepo,
		episodeRatingRepo: episodeRatingRepo,
		seasonRatingRepo:  seasonRatingRepo,
		resolution:        resolution,
		invalidator:       invalidator,
	}
}

// SetRating writes a user's season row: an optional manual score (raw
// text, comma tolerant) and an optional review. Passing neither clears
// both. Setting a manual score keeps the stored adjustment but makes it
// inert until the manual score is cleared again.
func (s *seasonRatingService) SetRating(userID string, seasonID int64, rawManualScore *string, review *string) (*dto.SeasonResolutionResponse, error) {
	ctx := context.Background()

	if _, err := s.seriesRepo.GetSeasonByID(ctx, seasonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeasonNotFound
		}
		return nil, err
	}

	var manual *float64
	if rawManualScore != nil {
		score := scoring.ParseLocaleScore(*rawManualScore)
		if err := scoring.ValidateScore("manual_score", score); err != nil {
			return nil, err
		}
		manual = &score
	}

	existing, err := s.seasonRatingRepo.GetByUserAndSeason(userID, seasonID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	row := scoring.SeasonUserRating{SeasonID: seasonID, UserID: userID, ManualScore: manual}
	if existing != nil {
		row.Adjustment = existing.Adjustment
	}
	if review != nil {
		row.Review = *review
	}

	if err := s.persistNormalized(userID, seasonID, existing, &row); err != nil {
		return nil, err
	}

	if s.invalidator != nil {
		_ = s.invalidator.InvalidateLeaderboard(ctx)
	}

	return s.resolution.GetSeasonResolution(ctx, seasonID, userID)
}

// Adjust nudges the user's adjustment one quarter step. direction is
// "up", "down" or "reset". Stepping requires a clear manual score and at
// least one rated episode; reset works unconditionally.
func (s *seasonRatingService) Adjust(userID string, seasonID int64, direction string) (*dto.SeasonResolutionResponse, error) {
	ctx := context.Background()

	season, err := s.seriesRepo.GetSeasonByID(ctx, seasonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeasonNotFound
		}
		return nil, err
	}

	existing, err := s.seasonRatingRepo.GetByUserAndSeason(userID, seasonID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	row := scoring.SeasonUserRating{SeasonID: seasonID, UserID: userID}
	if existing != nil {
		row.ManualScore = existing.ManualScore
		row.Adjustment = existing.Adjustment
		if existing.Review != nil {
			row.Review = *existing.Review
		}
	}

	if direction == "reset" {
		row.Adjustment = 0
	} else {
		dir := scoring.StepUp
		if direction == "down" {
			dir = scoring.StepDown
		} else if direction != "up" {
			return nil, &scoring.ValidationError{Field: "direction", Message: "must be up, down or reset"}
		}

		if row.ManualScore != nil {
			return nil, &scoring.ValidationError{Field: "adjustment", Message: "clear the manual score before adjusting"}
		}

		episodeIDs := make([]int64, len(season.Episodes))
		for i, ep := range season.Episodes {
			episodeIDs[i] = ep.ID
		}
		myRatings, err := s.episodeRatingRepo.GetByUserAndEpisodeIDs(ctx, userID, episodeIDs)
		if err != nil {
			return nil, err
		}
		cov := scoring.EpisodeCoverageByUser(episodeIDs, toEngineEpisodeRatings(myRatings))[userID]
		base, ok := cov.Average()
		if !ok {
			return nil, &scoring.ValidationError{Field: "adjustment", Message: "rate at least one episode first"}
		}

		next, err := scoring.StepAdjustment(base, row.Adjustment, dir)
		if err != nil {
			return nil, err
		}
		row.Adjustment = next
	}

	if err := s.persistNormalized(userID, seasonID, existing, &row); err != nil {
		return nil, err
	}

	if s.invalidator != nil {
		_ = s.invalidator.InvalidateLeaderboard(ctx)
	}

	return s.resolution.GetSeasonResolution(ctx, seasonID, userID)
}

// DeleteRating drops the user's season row entirely.
func (s *seasonRatingService) DeleteRating(userID string, seasonID int64) error {
	ctx := context.Background()

	if _, err := s.seriesRepo.GetSeasonByID(ctx, seasonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSeasonNotFound
		}
		return err
	}

	if err := s.seasonRatingRepo.Delete(userID, seasonID); err != nil {
		return err
	}

	if s.invalidator != nil {
		_ = s.invalidator.InvalidateLeaderboard(ctx)
	}
	return nil
}

// persistNormalized funnels every season-row write through the engine's
// normalization: an all-default row becomes a delete, never a stored row
// of neutral fields.
func (s *seasonRatingService) persistNormalized(userID string, seasonID int64, existing *models.SeasonUserRating, row *scoring.SeasonUserRating) error {
	normalized := scoring.NormalizeSeasonUserRating(row)
	if normalized == nil {
		return s.seasonRatingRepo.Delete(userID, seasonID)
	}

	record := &models.SeasonUserRating{
		UserID:      userID,
		SeasonID:    seasonID,
		ManualScore: normalized.ManualScore,
		Adjustment:  normalized.Adjustment,
	}
	if existing != nil {
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
	}
	if normalized.Review != "" {
		review := normalized.Review
		record.Review = &review
	}
	return s.seasonRatingRepo.Save(record)
}
