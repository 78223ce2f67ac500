package service

import (
	"context"
	"errors"

	"cinehub/internal/microservices/http-api/dto"
	"cinehub/internal/microservices/http-api/models"
	"cinehub/internal/microservices/http-api/repository"

	"gorm.io/gorm"
)

// CatalogService manages the admin-curated film and series catalog.
// Everything derived (averages, leaderboards) is computed elsewhere from
// what gets created here.
type CatalogService interface {
	GetFilms(ctx context.Context, page, pageSize int) (*dto.PaginatedFilmResponse, error)
	GetFilm(ctx context.Context, filmID int64) (*models.Film, error)
	CreateFilm(ctx context.Context, req dto.CreateFilmDTO) (*models.Film, error)
	UpdateFilm(ctx context.Context, filmID int64, req dto.CreateFilmDTO) (*models.Film, error)
	DeleteFilm(ctx context.Context, filmID int64) error

	CreateSeries(ctx context.Context, req dto.CreateSeriesDTO) (*models.Series, error)
	UpdateSeries(ctx context.Context, seriesID int64, req dto.CreateSeriesDTO) (*models.Series, error)
	DeleteSeries(ctx context.Context, seriesID int64) error
	AddSeason(ctx context.Context, seriesID int64, req dto.CreateSeasonDTO) (*models.Season, error)
	AddEpisode(ctx context.Context, seasonID int64, req dto.CreateEpisodeDTO) (*models.Episode, error)
}

type catalogService struct {
	filmRepo    *repository.FilmRepo
	seriesRepo  *repository.SeriesRepo
	invalidator LeaderboardInvalidator
}

func NewCatalogService(
	filmRepo *repository.FilmRepo,
	seriesRepo *repository.SeriesRepo,
	invalidator LeaderboardInvalidator,
) CatalogService {
	return &catalogService{
		filmRepo:    filmRepo,
		seriesRepo:  seriesRepo,
		invalidator: invalidator,
	}
}

func (s *catalogService) GetFilms(ctx context.Context, page, pageSize int) (*dto.PaginatedFilmResponse, error) {
	list, total, err := s.filmRepo.GetAll(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	return dto.NewPaginatedFilmResponse(list, int(total), page, pageSize), nil
}

func (s *catalogService) GetFilm(ctx context.Context, filmID int64) (*models.Film, error) {
	film, err := s.filmRepo.GetByID(ctx, filmID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFilmNotFound
		}
		return nil, err
	}
	return film, nil
}

func (s *catalogService) CreateFilm(ctx context.Context, req dto.CreateFilmDTO) (*models.Film, error) {
	film := &models.Film{
		Title:       req.Title,
		Slug:        req.Slug,
		ReleaseDate: req.ReleaseDate,
		Franchise:   req.Franchise,
		Description: req.Description,
		PosterURL:   req.PosterURL,
	}
	if err := s.filmRepo.Create(ctx, film); err != nil {
		return nil, err
	}
	return film, nil
}

func (s *catalogService) UpdateFilm(ctx context.Context, filmID int64, req dto.CreateFilmDTO) (*models.Film, error) {
	film, err := s.GetFilm(ctx, filmID)
	if err != nil {
		return nil, err
	}

	film.Title = req.Title
	film.Slug = req.Slug
	film.ReleaseDate = req.ReleaseDate
	film.Franchise = req.Franchise
	film.Description = req.Description
	film.PosterURL = req.PosterURL

	if err := s.filmRepo.Update(ctx, filmID, film); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return film, nil
}

func (s *catalogService) DeleteFilm(ctx context.Context, filmID int64) error {
	if _, err := s.GetFilm(ctx, filmID); err != nil {
		return err
	}
	if err := s.filmRepo.Delete(ctx, filmID); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *catalogService) CreateSeries(ctx context.Context, req dto.CreateSeriesDTO) (*models.Series, error) {
	series := &models.Series{
		Title:       req.Title,
		Slug:        req.Slug,
		Franchise:   req.Franchise,
		Description: req.Description,
		PosterURL:   req.PosterURL,
	}
	if err := s.seriesRepo.Create(ctx, series); err != nil {
		return nil, err
	}
	return series, nil
}

func (s *catalogService) UpdateSeries(ctx context.Context, seriesID int64, req dto.CreateSeriesDTO) (*models.Series, error) {
	series, err := s.seriesRepo.GetByID(ctx, seriesID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeriesNotFound
		}
		return nil, err
	}

	series.Title = req.Title
	series.Slug = req.Slug
	series.Franchise = req.Franchise
	series.Description = req.Description
	series.PosterURL = req.PosterURL

	if err := s.seriesRepo.Update(ctx, seriesID, series); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return series, nil
}

func (s *catalogService) DeleteSeries(ctx context.Context, seriesID int64) error {
	if _, err := s.seriesRepo.GetByID(ctx, seriesID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSeriesNotFound
		}
		return err
	}
	if err := s.seriesRepo.Delete(ctx, seriesID); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *catalogService) AddSeason(ctx context.Context, seriesID int64, req dto.CreateSeasonDTO) (*models.Season, error) {
	if _, err := s.seriesRepo.GetByID(ctx, seriesID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeriesNotFound
		}
		return nil, err
	}

	season := &models.Season{
		SeriesID:     seriesID,
		SeasonNumber: req.SeasonNumber,
		Phase:        req.Phase,
		StartDate:    req.StartDate,
	}
	if err := s.seriesRepo.CreateSeason(ctx, season); err != nil {
		return nil, err
	}
	// A new season changes every coverage weight in the series.
	s.invalidate(ctx)
	return season, nil
}

func (s *catalogService) AddEpisode(ctx context.Context, seasonID int64, req dto.CreateEpisodeDTO) (*models.Episode, error) {
	if _, err := s.seriesRepo.GetSeasonByID(ctx, seasonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeasonNotFound
		}
		return nil, err
	}

	episode := &models.Episode{
		SeasonID:      seasonID,
		EpisodeNumber: req.EpisodeNumber,
		Title:         req.Title,
		AirDate:       req.AirDate,
	}
	if err := s.seriesRepo.CreateEpisode(ctx, episode); err != nil {
		return nil, err
	}
	// A new episode shifts every user's average for the season.
	s.invalidate(ctx)
	return episode, nil
}

func (s *catalogService) invalidate(ctx context.Context) {
	if s.invalidator != nil {
		_ = s.invalidator.InvalidateLeaderboard(ctx)
	}
}
