package handler

import (
	"errors"
	"net/http"
	"strconv"

	"cinehub/internal/microservices/http-api/dto"
	"cinehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type FilmRatingHandler struct {
	ratingService service.FilmRatingService
}

func NewFilmRatingHandler(ratingService service.FilmRatingService) *FilmRatingHandler {
	return &FilmRatingHandler{
		ratingService: ratingService,
	}
}

// RegisterRoutes registers film rating routes under the films group
func (h *FilmRatingHandler) RegisterRoutes(router *gin.RouterGroup) {
	ratings := router.Group("/:film_id/ratings")
	{
		ratings.GET("", h.List)               // Get all ratings for a film
		ratings.GET("/average", h.GetAverage) // Get average rating and count

		// Write routes (authenticated by parent middleware)
		ratings.POST("", h.CreateOrUpdate)  // Create or update user's rating
		ratings.GET("/me", h.GetUserRating) // Get current user's rating
		ratings.DELETE("", h.Delete)        // Delete user's rating
	}
}

// CreateOrUpdate creates or updates a rating for a film
// POST /api/films/:film_id/ratings
func (h *FilmRatingHandler) CreateOrUpdate(c *gin.Context) {
	filmID, err := strconv.ParseInt(c.Param("film_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid film ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.CreateFilmRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.ratingService.CreateOrUpdateRating(userID.(string), filmID, req.Score, req.Review)
	if err != nil {
		if errors.Is(err, service.ErrFilmNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rating)
}

// GetUserRating retrieves the current user's rating for a film
// GET /api/films/:film_id/ratings/me
func (h *FilmRatingHandler) GetUserRating(c *gin.Context) {
	filmID, err := strconv.ParseInt(c.Param("film_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid film ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	rating, err := h.ratingService.GetUserRating(userID.(string), filmID)
	if err != nil {
		if errors.Is(err, service.ErrFilmRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rating)
}

// Delete removes a user's rating for a film
// DELETE /api/films/:film_id/ratings
func (h *FilmRatingHandler) Delete(c *gin.Context) {
	filmID, err := strconv.ParseInt(c.Param("film_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid film ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.ratingService.DeleteRating(userID.(string), filmID); err != nil {
		if errors.Is(err, service.ErrFilmNotFound) || errors.Is(err, service.ErrFilmRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "rating deleted"})
}

// List returns all ratings for a film, paginated
// GET /api/films/:film_id/ratings
func (h *FilmRatingHandler) List(c *gin.Context) {
	filmID, err := strconv.ParseInt(c.Param("film_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid film ID"})
		return
	}

	page, pageSize := paginationParams(c)

	ratings, err := h.ratingService.GetFilmRatings(filmID, page, pageSize)
	if err != nil {
		if errors.Is(err, service.ErrFilmNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ratings)
}

// GetAverage returns the average rating and rating count for a film
// GET /api/films/:film_id/ratings/average
func (h *FilmRatingHandler) GetAverage(c *gin.Context) {
	filmID, err := strconv.ParseInt(c.Param("film_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid film ID"})
		return
	}

	average, count, err := h.ratingService.GetFilmAverageRating(filmID)
	if err != nil {
		if errors.Is(err, service.ErrFilmNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"film_id": filmID,
		"average": average,
		"count":   count,
	})
}

// paginationParams reads page/page_size query params with sane bounds.
func paginationParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
