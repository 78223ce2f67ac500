package handler

import (
	"errors"
	"net/http"
	"strconv"

	"cinehub/internal/microservices/http-api/dto"
	"cinehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// RegisterFilmRoutes registers public film reads under the films group
func (h *CatalogHandler) RegisterFilmRoutes(router *gin.RouterGroup) {
	router.GET("", h.ListFilms)
	router.GET("/:film_id", h.GetFilm)
}

// RegisterAdminRoutes registers catalog write routes; the caller mounts
// these behind auth + admin-role middleware
func (h *CatalogHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	films := router.Group("/films")
	{
		films.POST("", h.CreateFilm)
		films.PUT("/:film_id", h.UpdateFilm)
		films.DELETE("/:film_id", h.DeleteFilm)
	}

	series := router.Group("/series")
	{
		series.POST("", h.CreateSeries)
		series.PUT("/:series_id", h.UpdateSeries)
		series.DELETE("/:series_id", h.DeleteSeries)
		series.POST("/:series_id/seasons", h.AddSeason)
	}

	router.POST("/seasons/:season_id/episodes", h.AddEpisode)
}

// ListFilms returns the film catalog, paginated
// GET /api/films
func (h *CatalogHandler) ListFilms(c *gin.Context) {
	page, pageSize := paginationParams(c)

	films, err := h.catalogService.GetFilms(c.Request.Context(), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, films)
}

// GetFilm returns one film
// GET /api/films/:film_id
func (h *CatalogHandler) GetFilm(c *gin.Context) {
	filmID, err := strconv.ParseInt(c.Param("film_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid film ID"})
		return
	}

	film, err := h.catalogService.GetFilm(c.Request.Context(), filmID)
	if err != nil {
		if errors.Is(err, service.ErrFilmNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, film)
}

// CreateFilm adds a film to the catalog
// POST /api/admin/films
func (h *CatalogHandler) CreateFilm(c *gin.Context) {
	var req dto.CreateFilmDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	film, err := h.catalogService.CreateFilm(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, film)
}

// UpdateFilm replaces a film's catalog fields
// PUT /api/admin/films/:film_id
func (h *CatalogHandler) UpdateFilm(c *gin.Context) {
	filmID, err := strconv.ParseInt(c.Param("film_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid film ID"})
		return
	}

	var req dto.CreateFilmDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	film, err := h.catalogService.UpdateFilm(c.Request.Context(), filmID, req)
	if err != nil {
		if errors.Is(err, service.ErrFilmNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, film)
}

// DeleteFilm removes a film and its ratings
// DELETE /api/admin/films/:film_id
func (h *CatalogHandler) DeleteFilm(c *gin.Context) {
	filmID, err := strconv.ParseInt(c.Param("film_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid film ID"})
		return
	}

	if err := h.catalogService.DeleteFilm(c.Request.Context(), filmID); err != nil {
		if errors.Is(err, service.ErrFilmNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "film deleted"})
}

// CreateSeries adds a series to the catalog
// POST /api/admin/series
func (h *CatalogHandler) CreateSeries(c *gin.Context) {
	var req dto.CreateSeriesDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	series, err := h.catalogService.CreateSeries(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, series)
}

// UpdateSeries replaces a series' catalog fields
// PUT /api/admin/series/:series_id
func (h *CatalogHandler) UpdateSeries(c *gin.Context) {
	seriesID, err := strconv.ParseInt(c.Param("series_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid series ID"})
		return
	}

	var req dto.CreateSeriesDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	series, err := h.catalogService.UpdateSeries(c.Request.Context(), seriesID, req)
	if err != nil {
		if errors.Is(err, service.ErrSeriesNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, series)
}

// DeleteSeries removes a series with its seasons, episodes and ratings
// DELETE /api/admin/series/:series_id
func (h *CatalogHandler) DeleteSeries(c *gin.Context) {
	seriesID, err := strconv.ParseInt(c.Param("series_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid series ID"})
		return
	}

	if err := h.catalogService.DeleteSeries(c.Request.Context(), seriesID); err != nil {
		if errors.Is(err, service.ErrSeriesNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "series deleted"})
}

// AddSeason appends a season to a series
// POST /api/admin/series/:series_id/seasons
func (h *CatalogHandler) AddSeason(c *gin.Context) {
	seriesID, err := strconv.ParseInt(c.Param("series_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid series ID"})
		return
	}

	var req dto.CreateSeasonDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	season, err := h.catalogService.AddSeason(c.Request.Context(), seriesID, req)
	if err != nil {
		if errors.Is(err, service.ErrSeriesNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, season)
}

// AddEpisode appends an episode to a season
// POST /api/admin/seasons/:season_id/episodes
func (h *CatalogHandler) AddEpisode(c *gin.Context) {
	seasonID, err := strconv.ParseInt(c.Param("season_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid season ID"})
		return
	}

	var req dto.CreateEpisodeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	episode, err := h.catalogService.AddEpisode(c.Request.Context(), seasonID, req)
	if err != nil {
		if errors.Is(err, service.ErrSeasonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, episode)
}
