package handler

import (
	"errors"
	"net/http"
	"strconv"

	"cinehub/internal/microservices/http-api/dto"
	"cinehub/internal/microservices/http-api/service"
	"cinehub/internal/scoring"

	"github.com/gin-gonic/gin"
)

type EpisodeRatingHandler struct {
	ratingService service.EpisodeRatingService
}

func NewEpisodeRatingHandler(ratingService service.EpisodeRatingService) *EpisodeRatingHandler {
	return &EpisodeRatingHandler{
		ratingService: ratingService,
	}
}

// RegisterRoutes registers episode rating routes under the episodes group
func (h *EpisodeRatingHandler) RegisterRoutes(router *gin.RouterGroup) {
	ratings := router.Group("/:episode_id/ratings")
	{
		// Writes only; episode scores are read through the season
		// resolution endpoint, never episode by episode.
		ratings.POST("", h.Rate)
		ratings.DELETE("", h.Delete)
	}
}

// Rate creates or replaces the caller's rating for an episode and returns
// the recomputed season resolution
// POST /api/episodes/:episode_id/ratings
func (h *EpisodeRatingHandler) Rate(c *gin.Context) {
	episodeID, err := strconv.ParseInt(c.Param("episode_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid episode ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.RateEpisodeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resolution, err := h.ratingService.RateEpisode(userID.(string), episodeID, req.Score, req.Review)
	if err != nil {
		var vErr *scoring.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Message, "field": vErr.Field})
		case errors.Is(err, service.ErrEpisodeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resolution)
}

// Delete removes the caller's rating for an episode and returns the
// recomputed season resolution
// DELETE /api/episodes/:episode_id/ratings
func (h *EpisodeRatingHandler) Delete(c *gin.Context) {
	episodeID, err := strconv.ParseInt(c.Param("episode_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid episode ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	resolution, err := h.ratingService.DeleteRating(userID.(string), episodeID)
	if err != nil {
		if errors.Is(err, service.ErrEpisodeNotFound) || errors.Is(err, service.ErrEpisodeRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resolution)
}
