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
	ErrSeriesNotFound       = errors.New("series not found")
	ErrSeriesReviewNotFound = errors.New("review not found")
)

type SeriesService interface {
	GetSeries(ctx context.Context, page, pageSize int) (*dto.PaginatedSeriesResponse, error)
	GetSeriesDetail(ctx context.Context, seriesID int64, currentUserID string) (*dto.SeriesDetailResponse, error)
	UpsertReview(userID string, seriesID int64, text string) (*dto.SeriesReviewResponse, error)
	DeleteReview(userID string, seriesID int64) error
	GetReviews(seriesID int64, page, pageSize int) (*dto.PaginatedSeriesReviewResponse, error)
}

type seriesService struct {
	seriesRepo        *repository.SeriesRepo
	episodeRatingRepo repository.EpisodeRatingRepository
	seasonRatingRepo  repository.SeasonRatingRepository
	reviewRepo        repository.SeriesReviewRepository
}

func NewSeriesService(
	seriesRepo *repository.SeriesRepo,
	episodeRatingRepo repository.EpisodeRatingRepository,
	seasonRatingRepo repository.SeasonRatingRepository,
	reviewRepo repository.SeriesReviewRepository,
) SeriesService {
	return &seriesService{
		seriesRepo:        seriesRepo,
		episodeRatingRepo: episodeRatingRepo,
		seasonRatingRepo:  seasonRatingRepo,
		reviewRepo:        reviewRepo,
	}
}

func (s *seriesService) GetSeries(ctx context.Context, page, pageSize int) (*dto.PaginatedSeriesResponse, error) {
	list, total, err := s.seriesRepo.GetAll(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	return dto.NewPaginatedSeriesResponse(list, int(total), page, pageSize), nil
}

// GetSeriesDetail recomputes the full series aggregate from a fresh read:
// every season's per-user scores and site average, the coverage-weighted
// global average and the calling user's own series average.
func (s *seriesService) GetSeriesDetail(ctx context.Context, seriesID int64, currentUserID string) (*dto.SeriesDetailResponse, error) {
	series, err := s.seriesRepo.GetByID(ctx, seriesID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeriesNotFound
		}
		return nil, err
	}

	seasonScores, err := s.resolveAllSeasons(ctx, series.Seasons)
	if err != nil {
		return nil, err
	}

	agg := scoring.AggregateSeasons(len(series.Seasons), seasonScores)

	seasons := make([]dto.SeasonSummary, len(series.Seasons))
	for i, season := range series.Seasons {
		siteAvg, raters := scoring.SeasonSiteAverage(seasonScores[i])
		summary := dto.SeasonSummary{
			ID:           season.ID,
			SeasonNumber: season.SeasonNumber,
			Phase:        season.Phase,
			EpisodeCount: len(season.Episodes),
			SiteAverage:  siteAvg,
			RaterCount:   raters,
		}
		if currentUserID != "" {
			if score, ok := seasonScores[i][currentUserID]; ok {
				summary.MyScore = dto.NewSeasonScoreView(score)
			}
		}
		seasons[i] = summary
	}

	resp := &dto.SeriesDetailResponse{
		ID:               series.ID,
		Title:            series.Title,
		Franchise:        series.Franchise,
		Description:      series.Description,
		Seasons:          seasons,
		GlobalAverage:    agg.GlobalAverage,
		ContributorCount: agg.Contributors,
	}
	if currentUserID != "" {
		resp.MyAverage = agg.UserAverage(currentUserID)
	}
	return resp, nil
}

// resolveAllSeasons fetches both rating tables once for the whole series
// and resolves each season's score map.
func (s *seriesService) resolveAllSeasons(ctx context.Context, seasons []models.Season) ([]map[string]scoring.SeasonScore, error) {
	var episodeIDs []int64
	seasonIDs := make([]int64, len(seasons))
	for i, season := range seasons {
		seasonIDs[i] = season.ID
		for _, ep := range season.Episodes {
			episodeIDs = append(episodeIDs, ep.ID)
		}
	}

	episodeRatings, err := s.episodeRatingRepo.GetByEpisodeIDs(ctx, episodeIDs)
	if err != nil {
		return nil, err
	}
	seasonRows, err := s.seasonRatingRepo.GetBySeasonIDs(ctx, seasonIDs)
	if err != nil {
		return nil, err
	}

	engineEpisodes := toEngineEpisodeRatings(episodeRatings)

	rowsBySeason := make(map[int64][]scoring.SeasonUserRating)
	for _, row := range toEngineSeasonRatings(seasonRows) {
		rowsBySeason[row.SeasonID] = append(rowsBySeason[row.SeasonID], row)
	}

	scores := make([]map[string]scoring.SeasonScore, len(seasons))
	for i, season := range seasons {
		ids := make([]int64, len(season.Episodes))
		for j, ep := range season.Episodes {
			ids[j] = ep.ID
		}
		scores[i] = scoring.ResolveSeasonScores(ids, engineEpisodes, rowsBySeason[season.ID])
	}
	return scores, nil
}

func (s *seriesService) UpsertReview(userID string, seriesID int64, text string) (*dto.SeriesReviewResponse, error) {
	ctx := context.Background()

	if _, err := s.seriesRepo.GetByID(ctx, seriesID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeriesNotFound
		}
		return nil, err
	}

	existing, err := s.reviewRepo.GetByUserAndSeries(userID, seriesID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	review := &models.SeriesReview{
		UserID:   userID,
		SeriesID: seriesID,
		Review:   text,
	}
	if existing != nil {
		review.ID = existing.ID
		review.CreatedAt = existing.CreatedAt
	}
	if err := s.reviewRepo.Save(review); err != nil {
		return nil, err
	}

	// Reload to pick up the user association for the response.
	saved, err := s.reviewRepo.GetByUserAndSeries(userID, seriesID)
	if err != nil {
		return nil, err
	}

	return dto.FromModelToSeriesReviewResponse(saved), nil
}

func (s *seriesService) DeleteReview(userID string, seriesID int64) error {
	if err := s.reviewRepo.Delete(userID, seriesID); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return ErrSeriesReviewNotFound
		}
		return err
	}
	return nil
}

func (s *seriesService) GetReviews(seriesID int64, page, pageSize int) (*dto.PaginatedSeriesReviewResponse, error) {
	ctx := context.Background()

	if _, err := s.seriesRepo.GetByID(ctx, seriesID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeriesNotFound
		}
		return nil, err
	}

	reviews, total, err := s.reviewRepo.GetBySeries(seriesID, page, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.SeriesReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, *dto.FromModelToSeriesReviewResponse(&review))
	}
	return dto.NewPaginatedSeriesReviewResponse(responses, int(total), page, pageSize), nil
}
