package repository

import (
	"context"

	"cinehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// idBatchSize caps the size of IN clauses when fetching by id set; large
// seasons and site-wide recomputations chunk their queries.
const idBatchSize = 500

type EpisodeRatingRepository interface {
	Create(rating *models.EpisodeRating) error
	Update(rating *models.EpisodeRating) error
	Delete(userID string, episodeID int64) error
	GetByUserAndEpisode(userID string, episodeID int64) (*models.EpisodeRating, error)
	GetByEpisodeIDs(ctx context.Context, episodeIDs []int64) ([]models.EpisodeRating, error)
	GetByUserAndEpisodeIDs(ctx context.Context, userID string, episodeIDs []int64) ([]models.EpisodeRating, error)
}

type episodeRatingRepository struct {
	db *gorm.DB
}

func NewEpisodeRatingRepository(db *gorm.DB) EpisodeRatingRepository {
	return &episodeRatingRepository{db: db}
}

func (r *episodeRatingRepository) Create(rating *models.EpisodeRating) error {
	return r.db.Create(rating).Error
}

func (r *episodeRatingRepository) Update(rating *models.EpisodeRating) error {
	return r.db.Save(rating).Error
}

func (r *episodeRatingRepository) Delete(userID string, episodeID int64) error {
	result := r.db.Where("user_id = ? AND episode_id = ?", userID, episodeID).Delete(&models.EpisodeRating{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRatingNotFound
	}
	return nil
}

func (r *episodeRatingRepository) GetByUserAndEpisode(userID string, episodeID int64) (*models.EpisodeRating, error) {
	var rating models.EpisodeRating
	err := r.db.Where("user_id = ? AND episode_id = ?", userID, episodeID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetByEpisodeIDs fetches every rating of the given episodes, chunking
// the id set so the IN clause stays bounded.
func (r *episodeRatingRepository) GetByEpisodeIDs(ctx context.Context, episodeIDs []int64) ([]models.EpisodeRating, error) {
	var all []models.EpisodeRating
	for _, batch := range chunkIDs(episodeIDs, idBatchSize) {
		var ratings []models.EpisodeRating
		if err := r.db.WithContext(ctx).
			Where("episode_id IN ?", batch).
			Find(&ratings).Error; err != nil {
			return nil, err
		}
		all = append(all, ratings...)
	}
	return all, nil
}

// GetByUserAndEpisodeIDs fetches one user's ratings within an episode id set.
func (r *episodeRatingRepository) GetByUserAndEpisodeIDs(ctx context.Context, userID string, episodeIDs []int64) ([]models.EpisodeRating, error) {
	var all []models.EpisodeRating
	for _, batch := range chunkIDs(episodeIDs, idBatchSize) {
		var ratings []models.EpisodeRating
		if err := r.db.WithContext(ctx).
			Where("user_id = ? AND episode_id IN ?", userID, batch).
			Find(&ratings).Error; err != nil {
			return nil, err
		}
		all = append(all, ratings...)
	}
	return all, nil
}

// chunkIDs splits ids into batches of at most size elements.
func chunkIDs(ids []int64, size int) [][]int64 {
	if len(ids) == 0 {
		return nil
	}
	var batches [][]int64
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		batches = append(batches, ids[start:end])
	}
	return batches
}
