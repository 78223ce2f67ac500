package service

import (
	"context"
	"errors"

	"cinehub/internal/microservices/http-api/dto"
	"cinehub/internal/microservices/http-api/models"
	"cinehub/internal/microservices/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrFilmNotFound       = errors.New("film not found")
	ErrFilmRatingNotFound = errors.New("rating not found")
)

type FilmRatingService interface {
	CreateOrUpdateRating(userID string, filmID int64, score int, review *string) (*dto.FilmRatingResponse, error)
	DeleteRating(userID string, filmID int64) error
	GetUserRating(userID string, filmID int64) (*dto.UserFilmRatingResponse, error)
	GetFilmRatings(filmID int64, page, pageSize int) (*dto.PaginatedFilmRatingResponse, error)
	GetFilmAverageRating(filmID int64) (float64, int64, error)
}

type filmRatingService struct {
	ratingRepo  repository.FilmRatingRepository
	filmRepo    FilmStore
	invalidator LeaderboardInvalidator
}

// LeaderboardInvalidator drops cached leaderboard snapshots after a write.
// A nil invalidator is valid; the leaderboard then recomputes on TTL only.
type LeaderboardInvalidator interface {
	InvalidateLeaderboard(ctx context.Context) error
}

// FilmStore is the slice of the film repository the rating flow needs.
// *repository.FilmRepo satisfies it.
type FilmStore interface {
	GetByID(ctx context.Context, id int64) (*models.Film, error)
	Update(ctx context.Context, id int64, film *models.Film) error
}

func NewFilmRatingService(ratingRepo repository.FilmRatingRepository, filmRepo FilmStore, invalidator LeaderboardInvalidator) FilmRatingService {
	return &filmRatingService{
		ratingRepo:  ratingRepo,
		filmRepo:    filmRepo,
		invalidator: invalidator,
	}
}

// CreateOrUpdateRating upserts a user's integer rating for a film and
// refreshes the film's stored average. One rating per (user, film).
func (s *filmRatingService) CreateOrUpdateRating(userID string, filmID int64, score int, review *string) (*dto.FilmRatingResponse, error) {
	ctx := context.Background()

	if _, err := s.filmRepo.GetByID(ctx, filmID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFilmNotFound
		}
		return nil, err
	}

	existing, err := s.ratingRepo.GetByUserAndFilm(userID, filmID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var rating *models.FilmRating

	if existing != nil {
		existing.Score = score
		existing.Review = review
		if err := s.ratingRepo.Update(existing); err != nil {
			return nil, err
		}
		rating = existing
	} else {
		newRating := &models.FilmRating{
			UserID: userID,
			FilmID: filmID,
			Score:  score,
			Review: review,
		}
		if err := s.ratingRepo.Create(newRating); err != nil {
			return nil, err
		}
		// Reload with user data
		rating, err = s.ratingRepo.GetByUserAndFilm(userID, filmID)
		if err != nil {
			return nil, err
		}
	}

	s.refreshFilmAggregate(ctx, filmID)

	return dto.FromModelToFilmRatingResponse(rating), nil
}

// DeleteRating removes a user's rating and refreshes the film's average.
func (s *filmRatingService) DeleteRating(userID string, filmID int64) error {
	ctx := context.Background()

	if _, err := s.filmRepo.GetByID(ctx, filmID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFilmNotFound
		}
		return err
	}

	if err := s.ratingRepo.Delete(userID, filmID); err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			return ErrFilmRatingNotFound
		}
		return err
	}

	s.refreshFilmAggregate(ctx, filmID)
	return nil
}

func (s *filmRatingService) GetUserRating(userID string, filmID int64) (*dto.UserFilmRatingResponse, error) {
	rating, err := s.ratingRepo.GetByUserAndFilm(userID, filmID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFilmRatingNotFound
		}
		return nil, err
	}

	return &dto.UserFilmRatingResponse{
		Score:     rating.Score,
		Review:    rating.Review,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}, nil
}

func (s *filmRatingService) GetFilmRatings(filmID int64, page, pageSize int) (*dto.PaginatedFilmRatingResponse, error) {
	ctx := context.Background()

	if _, err := s.filmRepo.GetByID(ctx, filmID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFilmNotFound
		}
		return nil, err
	}

	ratings, total, err := s.ratingRepo.GetByFilm(filmID, page, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.FilmRatingResponse, 0, len(ratings))
	for _, rating := range ratings {
		responses = append(responses, *dto.FromModelToFilmRatingResponse(&rating))
	}

	return dto.NewPaginatedFilmRatingResponse(responses, int(total), page, pageSize), nil
}

func (s *filmRatingService) GetFilmAverageRating(filmID int64) (float64, int64, error) {
	ctx := context.Background()

	if _, err := s.filmRepo.GetByID(ctx, filmID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, ErrFilmNotFound
		}
		return 0, 0, err
	}

	avg, err := s.ratingRepo.CalculateAverageRating(filmID)
	if err != nil {
		return 0, 0, err
	}

	count, err := s.ratingRepo.CountRatings(filmID)
	if err != nil {
		return 0, 0, err
	}

	return avg, count, nil
}

// refreshFilmAggregate updates the denormalized average on the film row
// and drops cached leaderboards. Failures here never fail the write that
// triggered them; the next from-scratch recomputation heals the copy.
func (s *filmRatingService) refreshFilmAggregate(ctx context.Context, filmID int64) {
	avg, err := s.ratingRepo.CalculateAverageRating(filmID)
	if err != nil {
		return
	}
	count, err := s.ratingRepo.CountRatings(filmID)
	if err != nil {
		return
	}

	film, err := s.filmRepo.GetByID(ctx, filmID)
	if err != nil {
		return
	}

	if count == 0 {
		film.AverageRating = nil
	} else {
		film.AverageRating = &avg
	}
	film.RatingCount = int(count)
	_ = s.filmRepo.Update(ctx, filmID, film)

	if s.invalidator != nil {
		_ = s.invalidator.InvalidateLeaderboard(ctx)
	}
}
