package repository

import (
	"context"
	"fmt"

	"cinehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type FilmRepo struct {
	db *gorm.DB
}

func NewFilmRepo(db *gorm.DB) *FilmRepo {
	return &FilmRepo{db: db}
}

func (r *FilmRepo) GetAll(ctx context.Context, page, pageSize int) ([]models.Film, int64, error) {
	var list []models.Film
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Film{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize

	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *FilmRepo) GetByID(ctx context.Context, id int64) (*models.Film, error) {
	var f models.Film
	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FilmRepo) Create(ctx context.Context, f *models.Film) error {
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		return fmt.Errorf("create film: %w", err)
	}
	return nil
}

func (r *FilmRepo) Update(ctx context.Context, id int64, f *models.Film) error {
	f.ID = id
	if err := r.db.WithContext(ctx).Save(f).Error; err != nil {
		return fmt.Errorf("update film: %w", err)
	}
	return nil
}

func (r *FilmRepo) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Film{}, id).Error; err != nil {
		return fmt.Errorf("delete film: %w", err)
	}
	return nil
}
