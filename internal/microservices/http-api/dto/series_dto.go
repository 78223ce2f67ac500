package dto

import (
	"time"

	"cinehub/internal/microservices/http-api/models"
)

// SeriesResponse for returning series list entries
type SeriesResponse struct {
	ID          int64   `json:"id"`
	Slug        *string `json:"slug,omitempty"`
	Title       string  `json:"title"`
	Franchise   *string `json:"franchise,omitempty"`
	Description *string `json:"description,omitempty"`
	PosterURL   *string `json:"poster_url,omitempty"`
	SeasonCount int     `json:"season_count"`
}

// FromModelToSeriesResponse converts a Series model to SeriesResponse DTO
func FromModelToSeriesResponse(series *models.Series) *SeriesResponse {
	return &SeriesResponse{
		ID:          series.ID,
		Slug:        series.Slug,
		Title:       series.Title,
		Franchise:   series.Franchise,
		Description: series.Description,
		PosterURL:   series.PosterURL,
		SeasonCount: len(series.Seasons),
	}
}

// PaginatedSeriesResponse for returning paginated series
type PaginatedSeriesResponse struct {
	Data       []SeriesResponse `json:"data"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	Total      int              `json:"total"`
	TotalPages int              `json:"total_pages"`
}

// NewPaginatedSeriesResponse creates a paginated series response
func NewPaginatedSeriesResponse(list []models.Series, total, page, pageSize int) *PaginatedSeriesResponse {
	data := make([]SeriesResponse, 0, len(list))
	for i := range list {
		data = append(data, *FromModelToSeriesResponse(&list[i]))
	}

	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return &PaginatedSeriesResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// SeasonSummary is one season's slice of a series detail view, with the
// site average and, for an authenticated caller, their own score.
type SeasonSummary struct {
	ID           int64            `json:"id"`
	SeasonNumber int              `json:"season_number"`
	Phase        *string          `json:"phase,omitempty"`
	EpisodeCount int              `json:"episode_count"`
	SiteAverage  *float64         `json:"site_average"`
	RaterCount   int              `json:"rater_count"`
	MyScore      *SeasonScoreView `json:"my_score,omitempty"`
}

// SeriesDetailResponse for the full series view with derived averages
type SeriesDetailResponse struct {
	ID               int64           `json:"id"`
	Title            string          `json:"title"`
	Franchise        *string         `json:"franchise,omitempty"`
	Description      *string         `json:"description,omitempty"`
	Seasons          []SeasonSummary `json:"seasons"`
	GlobalAverage    *float64        `json:"global_average"`
	MyAverage        *float64        `json:"my_average,omitempty"`
	ContributorCount int             `json:"contributor_count"`
}

// UpsertSeriesReviewDTO for creating or replacing the caller's review
type UpsertSeriesReviewDTO struct {
	Review string `json:"review" binding:"required,min=1,max=10000"`
}

// SeriesReviewResponse for returning review information
type SeriesReviewResponse struct {
	Username  string    `json:"username"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromModelToSeriesReviewResponse converts a SeriesReview model to SeriesReviewResponse DTO
func FromModelToSeriesReviewResponse(review *models.SeriesReview) *SeriesReviewResponse {
	return &SeriesReviewResponse{
		Username:  review.User.Username,
		Review:    review.Review,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}

// PaginatedSeriesReviewResponse for returning paginated reviews
type PaginatedSeriesReviewResponse struct {
	Data       []SeriesReviewResponse `json:"data"`
	Page       int                    `json:"page"`
	PageSize   int                    `json:"page_size"`
	Total      int                    `json:"total"`
	TotalPages int                    `json:"total_pages"`
}

// NewPaginatedSeriesReviewResponse creates a paginated review response
func NewPaginatedSeriesReviewResponse(data []SeriesReviewResponse, total, page, pageSize int) *PaginatedSeriesReviewResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return &PaginatedSeriesReviewResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
