package dto

import (
	"time"

	"cinehub/internal/microservices/http-api/models"
)

// Catalog write DTOs. Catalog entries are admin-managed; ratings and
// reviews are the only user-generated content.

// CreateFilmDTO for creating or updating a film entry
type CreateFilmDTO struct {
	Title       string     `json:"title" binding:"required,min=1,max=300"`
	Slug        *string    `json:"slug,omitempty"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	Franchise   *string    `json:"franchise,omitempty"`
	Description *string    `json:"description,omitempty"`
	PosterURL   *string    `json:"poster_url,omitempty"`
}

// CreateSeriesDTO for creating or updating a series entry
type CreateSeriesDTO struct {
	Title       string  `json:"title" binding:"required,min=1,max=300"`
	Slug        *string `json:"slug,omitempty"`
	Franchise   *string `json:"franchise,omitempty"`
	Description *string `json:"description,omitempty"`
	PosterURL   *string `json:"poster_url,omitempty"`
}

// CreateSeasonDTO for adding a season to a series
type CreateSeasonDTO struct {
	SeasonNumber int        `json:"season_number" binding:"required,min=1"`
	Phase        *string    `json:"phase,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
}

// CreateEpisodeDTO for adding an episode to a season
type CreateEpisodeDTO struct {
	EpisodeNumber int        `json:"episode_number" binding:"required,min=1"`
	Title         *string    `json:"title,omitempty"`
	AirDate       *time.Time `json:"air_date,omitempty"`
}

// PaginatedFilmResponse for returning paginated films
type PaginatedFilmResponse struct {
	Data       []models.Film `json:"data"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	Total      int           `json:"total"`
	TotalPages int           `json:"total_pages"`
}

// NewPaginatedFilmResponse creates a paginated film response
func NewPaginatedFilmResponse(data []models.Film, total, page, pageSize int) *PaginatedFilmResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return &PaginatedFilmResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
