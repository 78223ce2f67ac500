package dto

import (
	"time"

	"cinehub/internal/microservices/http-api/models"
)

// CreateFilmRatingDTO for creating or updating a film rating. Films take
// whole-number scores; zero is a valid rating, so no "required" tag here.
type CreateFilmRatingDTO struct {
	Score  int     `json:"score" binding:"min=0,max=10"`
	Review *string `json:"review,omitempty"`
}

// FilmRatingResponse for returning rating information (for list view - without IDs)
type FilmRatingResponse struct {
	Username  string    `json:"username"`
	Score     int       `json:"score"`
	Review    *string   `json:"review,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromModelToFilmRatingResponse converts a FilmRating model to FilmRatingResponse DTO
func FromModelToFilmRatingResponse(rating *models.FilmRating) *FilmRatingResponse {
	return &FilmRatingResponse{
		Username:  rating.User.Username,
		Score:     rating.Score,
		Review:    rating.Review,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
}

// UserFilmRatingResponse for returning user's own rating
type UserFilmRatingResponse struct {
	Score     int       `json:"score"`
	Review    *string   `json:"review,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PaginatedFilmRatingResponse for returning paginated film ratings
type PaginatedFilmRatingResponse struct {
	Data       []FilmRatingResponse `json:"data"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	Total      int                  `json:"total"`
	TotalPages int                  `json:"total_pages"`
}

// NewPaginatedFilmRatingResponse creates a paginated film rating response
func NewPaginatedFilmRatingResponse(data []FilmRatingResponse, total, page, pageSize int) *PaginatedFilmRatingResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return &PaginatedFilmRatingResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
