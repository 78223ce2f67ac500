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

type SeasonRatingHandler struct {
	ratingService service.SeasonRatingService
}

func NewSeasonRatingHandler(ratingService service.SeasonRatingService) *SeasonRatingHandler {
	return &SeasonRatingHandler{
		ratingService: ratingService,
	}
}

// RegisterRoutes registers season rating routes under the seasons group
func (h *SeasonRatingHandler) RegisterRoutes(router *gin.RouterGroup) {
	rating := router.Group("/:season_id/rating")
	{
		rating.PUT("", h.Set)             // Set manual score and/or review
		rating.POST("/adjust", h.Adjust)  // Step the adjustment up/down, or reset
		rating.DELETE("", h.Delete)       // Clear the season-level row entirely
	}
}

// Set replaces the caller's manual score and review for a season
// PUT /api/seasons/:season_id/rating
func (h *SeasonRatingHandler) Set(c *gin.Context) {
	seasonID, err := strconv.ParseInt(c.Param("season_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid season ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.SetSeasonRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resolution, err := h.ratingService.SetRating(userID.(string), seasonID, req.ManualScore, req.Review)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resolution)
}

// Adjust moves the caller's season adjustment one quarter step
// POST /api/seasons/:season_id/rating/adjust
func (h *SeasonRatingHandler) Adjust(c *gin.Context) {
	seasonID, err := strconv.ParseInt(c.Param("season_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid season ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.AdjustSeasonRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resolution, err := h.ratingService.Adjust(userID.(string), seasonID, req.Direction)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resolution)
}

// Delete removes the caller's season-level rating row
// DELETE /api/seasons/:season_id/rating
func (h *SeasonRatingHandler) Delete(c *gin.Context) {
	seasonID, err := strconv.ParseInt(c.Param("season_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid season ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.ratingService.DeleteRating(userID.(string), seasonID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "rating deleted"})
}

func (h *SeasonRatingHandler) respondError(c *gin.Context, err error) {
	var vErr *scoring.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Message, "field": vErr.Field})
	case errors.Is(err, service.ErrSeasonNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
