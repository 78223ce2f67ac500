package handler

import (
	"errors"
	"net/http"
	"strconv"

	"cinehub/internal/microservices/http-api/dto"
	"cinehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type SeriesHandler struct {
	seriesService     service.SeriesService
	resolutionService service.EpisodeRatingService
}

func NewSeriesHandler(seriesService service.SeriesService, resolutionService service.EpisodeRatingService) *SeriesHandler {
	return &SeriesHandler{
		seriesService:     seriesService,
		resolutionService: resolutionService,
	}
}

// RegisterPublicRoutes registers read routes; callers may be anonymous,
// an authenticated caller additionally gets their own scores inlined.
func (h *SeriesHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("", h.List)
	router.GET("/:series_id", h.GetDetail)
	router.GET("/:series_id/seasons/:season_id", h.GetSeasonResolution)
	router.GET("/:series_id/reviews", h.ListReviews)
}

// RegisterProtectedRoutes registers write routes requiring authentication
func (h *SeriesHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.PUT("/:series_id/review", h.UpsertReview)
	router.DELETE("/:series_id/review", h.DeleteReview)
}

// List returns all series, paginated
// GET /api/series
func (h *SeriesHandler) List(c *gin.Context) {
	page, pageSize := paginationParams(c)

	series, err := h.seriesService.GetSeries(c.Request.Context(), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, series)
}

// GetDetail returns one series with season summaries and derived averages
// GET /api/series/:series_id
func (h *SeriesHandler) GetDetail(c *gin.Context) {
	seriesID, err := strconv.ParseInt(c.Param("series_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid series ID"})
		return
	}

	detail, err := h.seriesService.GetSeriesDetail(c.Request.Context(), seriesID, currentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrSeriesNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// GetSeasonResolution returns a season's site average plus the caller's
// resolved score when authenticated
// GET /api/series/:series_id/seasons/:season_id
func (h *SeriesHandler) GetSeasonResolution(c *gin.Context) {
	seasonID, err := strconv.ParseInt(c.Param("season_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid season ID"})
		return
	}

	resolution, err := h.resolutionService.GetSeasonResolution(c.Request.Context(), seasonID, currentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrSeasonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resolution)
}

// UpsertReview creates or replaces the caller's review for a series
// PUT /api/series/:series_id/review
func (h *SeriesHandler) UpsertReview(c *gin.Context) {
	seriesID, err := strconv.ParseInt(c.Param("series_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid series ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.UpsertSeriesReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.seriesService.UpsertReview(userID.(string), seriesID, req.Review)
	if err != nil {
		if errors.Is(err, service.ErrSeriesNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, review)
}

// DeleteReview removes the caller's review for a series
// DELETE /api/series/:series_id/review
func (h *SeriesHandler) DeleteReview(c *gin.Context) {
	seriesID, err := strconv.ParseInt(c.Param("series_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid series ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.seriesService.DeleteReview(userID.(string), seriesID); err != nil {
		if errors.Is(err, service.ErrSeriesNotFound) || errors.Is(err, service.ErrSeriesReviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}

// ListReviews returns reviews for a series, paginated
// GET /api/series/:series_id/reviews
func (h *SeriesHandler) ListReviews(c *gin.Context) {
	seriesID, err := strconv.ParseInt(c.Param("series_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid series ID"})
		return
	}

	page, pageSize := paginationParams(c)

	reviews, err := h.seriesService.GetReviews(seriesID, page, pageSize)
	if err != nil {
		if errors.Is(err, service.ErrSeriesNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// currentUserID returns the authenticated user id, or "" for anonymous
// requests that passed through the optional auth middleware.
func currentUserID(c *gin.Context) string {
	if userID, exists := c.Get("userID"); exists {
		if id, ok := userID.(string); ok {
			return id
		}
	}
	return ""
}
