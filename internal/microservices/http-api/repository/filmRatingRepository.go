package repository

import (
	"context"
	"errors"

	"cinehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// ErrRatingNotFound reports a rating delete that matched no row.
var ErrRatingNotFound = errors.New("rating not found")

// FilmAggregate is one film's site-wide figures, used by the leaderboard.
type FilmAggregate struct {
	FilmID    int64
	Title     string
	Franchise *string
	Average   float64
	Count     int
}

type FilmRatingRepository interface {
	Create(rating *models.FilmRating) error
	Update(rating *models.FilmRating) error
	Delete(userID string, filmID int64) error
	GetByUserAndFilm(userID string, filmID int64) (*models.FilmRating, error)
	GetByFilm(filmID int64, page, pageSize int) ([]models.FilmRating, int64, error)
	CalculateAverageRating(filmID int64) (float64, error)
	CountRatings(filmID int64) (int64, error)
	AggregateAll(ctx context.Context) ([]FilmAggregate, error)
}

type filmRatingRepository struct {
	db *gorm.DB
}

func NewFilmRatingRepository(db *gorm.DB) FilmRatingRepository {
	return &filmRatingRepository{db: db}
}

// Create a new rating
func (r *filmRatingRepository) Create(rating *models.FilmRating) error {
	return r.db.Create(rating).Error
}

// Update an existing rating
func (r *filmRatingRepository) Update(rating *models.FilmRating) error {
	return r.db.Save(rating).Error
}

// Delete a rating by user and film
func (r *filmRatingRepository) Delete(userID string, filmID int64) error {
	result := r.db.Where("user_id = ? AND film_id = ?", userID, filmID).Delete(&models.FilmRating{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRatingNotFound
	}
	return nil
}

// GetByUserAndFilm retrieves a user's rating for a specific film
func (r *filmRatingRepository) GetByUserAndFilm(userID string, filmID int64) (*models.FilmRating, error) {
	var rating models.FilmRating
	err := r.db.Where("user_id = ? AND film_id = ?", userID, filmID).
		Preload("User").
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetByFilm retrieves all ratings for a specific film with pagination
func (r *filmRatingRepository) GetByFilm(filmID int64, page, pageSize int) ([]models.FilmRating, int64, error) {
	var ratings []models.FilmRating
	var total int64

	if err := r.db.Model(&models.FilmRating{}).Where("film_id = ?", filmID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.Where("film_id = ?", filmID).
		Preload("User").
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&ratings).Error

	if err != nil {
		return nil, 0, err
	}

	return ratings, total, nil
}

// CalculateAverageRating calculates the average rating for a film
func (r *filmRatingRepository) CalculateAverageRating(filmID int64) (float64, error) {
	var avg struct {
		Average float64
	}

	err := r.db.Model(&models.FilmRating{}).
		Select("COALESCE(AVG(score), 0) as average").
		Where("film_id = ?", filmID).
		Scan(&avg).Error

	if err != nil {
		return 0, err
	}

	return avg.Average, nil
}

// CountRatings counts the total number of ratings for a film
func (r *filmRatingRepository) CountRatings(filmID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.FilmRating{}).Where("film_id = ?", filmID).Count(&count).Error
	return count, err
}

// AggregateAll returns average and count per film for every rated film,
// joined with the film row for title and franchise.
func (r *filmRatingRepository) AggregateAll(ctx context.Context) ([]FilmAggregate, error) {
	var rows []FilmAggregate
	err := r.db.WithContext(ctx).
		Model(&models.FilmRating{}).
		Select("film_ratings.film_id as film_id, films.title as title, films.franchise as franchise, AVG(film_ratings.score) as average, COUNT(*) as count").
		Joins("JOIN films ON films.id = film_ratings.film_id").
		Group("film_ratings.film_id, films.title, films.franchise").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
