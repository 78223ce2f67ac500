package handler

import (
	"net/http"
	"strings"

	"cinehub/internal/microservices/http-api/service"
	"cinehub/internal/scoring"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboardService service.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// RegisterRoutes registers the leaderboard route
func (h *LeaderboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("", h.Get)
}

// Get returns the filtered, ranked leaderboard
// GET /api/leaderboard?kinds=film,series,season&franchise=...&phase=...
//
// The phase parameter is three-state: absent means no phase scoping,
// "phase=" keeps any row with a populated phase tag, and a concrete value
// keeps only rows of that phase.
func (h *LeaderboardHandler) Get(c *gin.Context) {
	filter := scoring.LeaderboardFilter{
		Franchise: c.Query("franchise"),
	}

	if kinds := c.Query("kinds"); kinds != "" {
		for _, raw := range strings.Split(kinds, ",") {
			switch scoring.RowKind(strings.TrimSpace(raw)) {
			case scoring.KindFilm:
				filter.Kinds = append(filter.Kinds, scoring.KindFilm)
			case scoring.KindSeries:
				filter.Kinds = append(filter.Kinds, scoring.KindSeries)
			case scoring.KindSeason:
				filter.Kinds = append(filter.Kinds, scoring.KindSeason)
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid kind: " + raw})
				return
			}
		}
	}

	if phase, present := c.GetQuery("phase"); present {
		filter.Phase = &phase
	}

	rows, err := h.leaderboardService.GetLeaderboard(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  rows,
		"count": len(rows),
	})
}
