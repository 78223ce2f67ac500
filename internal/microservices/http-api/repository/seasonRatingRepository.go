package repository

import (
	"context"

	"cinehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type SeasonRatingRepository interface {
	Save(rating *models.SeasonUserRating) error
	Delete(userID string, seasonID int64) error
	GetByUserAndSeason(userID string, seasonID int64) (*models.SeasonUserRating, error)
	GetBySeasonIDs(ctx context.Context, seasonIDs []int64) ([]models.SeasonUserRating, error)
}

type seasonRatingRepository struct {
	db *gorm.DB
}

func NewSeasonRatingRepository(db *gorm.DB) SeasonRatingRepository {
	return &seasonRatingRepository{db: db}
}

// Save upserts the single row per (user, season).
func (r *seasonRatingRepository) Save(rating *models.SeasonUserRating) error {
	return r.db.Save(rating).Error
}

// Delete removes a user's season row. Deleting a row that does not exist
// is not an error here; callers collapsing an all-default row to a delete
// may race with an earlier delete.
func (r *seasonRatingRepository) Delete(userID string, seasonID int64) error {
	return r.db.Where("user_id = ? AND season_id = ?", userID, seasonID).
		Delete(&models.SeasonUserRating{}).Error
}

func (r *seasonRatingRepository) GetByUserAndSeason(userID string, seasonID int64) (*models.SeasonUserRating, error) {
	var rating models.SeasonUserRating
	err := r.db.Where("user_id = ? AND season_id = ?", userID, seasonID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetBySeasonIDs fetches every user's season rows for an id set, chunked.
func (r *seasonRatingRepository) GetBySeasonIDs(ctx context.Context, seasonIDs []int64) ([]models.SeasonUserRating, error) {
	var all []models.SeasonUserRating
	for _, batch := range chunkIDs(seasonIDs, idBatchSize) {
		var ratings []models.SeasonUserRating
		if err := r.db.WithContext(ctx).
			Where("season_id IN ?", batch).
			Find(&ratings).Error; err != nil {
			return nil, err
		}
		all = append(all, ratings...)
	}
	return all, nil
}
