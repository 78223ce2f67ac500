package repository

import (
	"errors"

	"cinehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// ErrReviewNotFound reports a delete that matched no row.
var ErrReviewNotFound = errors.New("review not found")

type SeriesReviewRepository interface {
	Save(review *models.SeriesReview) error
	Delete(userID string, seriesID int64) error
	GetByUserAndSeries(userID string, seriesID int64) (*models.SeriesReview, error)
	GetBySeries(seriesID int64, page, pageSize int) ([]models.SeriesReview, int64, error)
}

type seriesReviewRepository struct {
	db *gorm.DB
}

func NewSeriesReviewRepository(db *gorm.DB) SeriesReviewRepository {
	return &seriesReviewRepository{db: db}
}

func (r *seriesReviewRepository) Save(review *models.SeriesReview) error {
	return r.db.Save(review).Error
}

func (r *seriesReviewRepository) Delete(userID string, seriesID int64) error {
	result := r.db.Where("user_id = ? AND series_id = ?", userID, seriesID).Delete(&models.SeriesReview{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *seriesReviewRepository) GetByUserAndSeries(userID string, seriesID int64) (*models.SeriesReview, error) {
	var review models.SeriesReview
	err := r.db.Where("user_id = ? AND series_id = ?", userID, seriesID).
		Preload("User").
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *seriesReviewRepository) GetBySeries(seriesID int64, page, pageSize int) ([]models.SeriesReview, int64, error) {
	var reviews []models.SeriesReview
	var total int64

	if err := r.db.Model(&models.SeriesReview{}).Where("series_id = ?", seriesID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.Where("series_id = ?", seriesID).
		Preload("User").
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&reviews).Error

	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}
