package repository

import (
	"context"

	"cinehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type SeriesRepo struct {
	db *gorm.DB
}

func NewSeriesRepo(db *gorm.DB) *SeriesRepo {
	return &SeriesRepo{db: db}
}

func (r *SeriesRepo) GetAll(ctx context.Context, page, pageSize int) ([]models.Series, int64, error) {
	var list []models.Series
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Series{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize

	if err := r.db.WithContext(ctx).
		Preload("Seasons").
		Order("created_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

// GetByID loads a series with its full season/episode hierarchy, ordered
// for stable presentation.
func (r *SeriesRepo) GetByID(ctx context.Context, id int64) (*models.Series, error) {
	var s models.Series
	if err := r.db.WithContext(ctx).
		Preload("Seasons", func(db *gorm.DB) *gorm.DB {
			return db.Order("seasons.season_number ASC")
		}).
		Preload("Seasons.Episodes", func(db *gorm.DB) *gorm.DB {
			return db.Order("episodes.episode_number ASC")
		}).
		First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// GetAllWithSeasons loads every series with seasons and episodes, the
// input for the site-wide leaderboard recomputation.
func (r *SeriesRepo) GetAllWithSeasons(ctx context.Context) ([]models.Series, error) {
	var list []models.Series
	if err := r.db.WithContext(ctx).
		Preload("Seasons", func(db *gorm.DB) *gorm.DB {
			return db.Order("seasons.season_number ASC")
		}).
		Preload("Seasons.Episodes").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *SeriesRepo) GetSeasonByID(ctx context.Context, id int64) (*models.Season, error) {
	var season models.Season
	if err := r.db.WithContext(ctx).
		Preload("Episodes", func(db *gorm.DB) *gorm.DB {
			return db.Order("episodes.episode_number ASC")
		}).
		First(&season, id).Error; err != nil {
		return nil, err
	}
	return &season, nil
}

func (r *SeriesRepo) GetEpisodeByID(ctx context.Context, id int64) (*models.Episode, error) {
	var ep models.Episode
	if err := r.db.WithContext(ctx).First(&ep, id).Error; err != nil {
		return nil, err
	}
	return &ep, nil
}

func (r *SeriesRepo) Create(ctx context.Context, s *models.Series) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SeriesRepo) Update(ctx context.Context, id int64, s *models.Series) error {
	s.ID = id
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SeriesRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Series{}, id).Error
}

func (r *SeriesRepo) CreateSeason(ctx context.Context, season *models.Season) error {
	return r.db.WithContext(ctx).Create(season).Error
}

func (r *SeriesRepo) CreateEpisode(ctx context.Context, episode *models.Episode) error {
	return r.db.WithContext(ctx).Create(episode).Error
}
