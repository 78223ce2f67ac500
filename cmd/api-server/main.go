package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"cinehub/database"
	"cinehub/internal/cache"
	"cinehub/internal/config"
	"cinehub/internal/microservices/http-api/handler"
	"cinehub/internal/microservices/http-api/middleware"
	"cinehub/internal/microservices/http-api/repository"
	"cinehub/internal/microservices/http-api/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	lbCache, err := cache.NewLeaderboardCache(cfg.RedisURL, cfg.RedisPassword, cfg.CacheTTL)
	if err != nil {
		logger.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	defer lbCache.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	filmRepo := repository.NewFilmRepo(db)
	filmRatingRepo := repository.NewFilmRatingRepository(db)
	seriesRepo := repository.NewSeriesRepo(db)
	episodeRatingRepo := repository.NewEpisodeRatingRepository(db)
	seasonRatingRepo := repository.NewSeasonRatingRepository(db)
	reviewRepo := repository.NewSeriesReviewRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	filmRatingService := service.NewFilmRatingService(filmRatingRepo, filmRepo, lbCache)
	episodeRatingService := service.NewEpisodeRatingService(seriesRepo, episodeRatingRepo, seasonRatingRepo, lbCache)
	seasonRatingService := service.NewSeasonRatingService(seriesRepo, episodeRatingRepo, seasonRatingRepo, episodeRatingService, lbCache)
	seriesService := service.NewSeriesService(seriesRepo, episodeRatingRepo, seasonRatingRepo, reviewRepo)
	leaderboardService := service.NewLeaderboardService(filmRatingRepo, seriesRepo, episodeRatingRepo, seasonRatingRepo, lbCache)
	catalogService := service.NewCatalogService(filmRepo, seriesRepo, lbCache)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, cfg.AccessTokenTTL)
	filmRatingHandler := handler.NewFilmRatingHandler(filmRatingService)
	episodeRatingHandler := handler.NewEpisodeRatingHandler(episodeRatingService)
	seasonRatingHandler := handler.NewSeasonRatingHandler(seasonRatingService)
	seriesHandler := handler.NewSeriesHandler(seriesService, episodeRatingService)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	writeLimiter := middleware.NewRateLimiter(cfg.WriteRateLimit, cfg.WriteRateBurst)

	api := r.Group("/api")

	// Auth
	authHandler.RegisterRoutes(api.Group("/auth"))

	// Public catalog and aggregate reads; an Authorization header, when
	// present, personalizes the response.
	publicFilms := api.Group("/films", middleware.OptionalAuthMiddleware(authService))
	catalogHandler.RegisterFilmRoutes(publicFilms)

	publicSeries := api.Group("/series", middleware.OptionalAuthMiddleware(authService))
	seriesHandler.RegisterPublicRoutes(publicSeries)

	leaderboardHandler.RegisterRoutes(api.Group("/leaderboard"))

	// Authenticated, rate-limited writes
	authed := middleware.AuthMiddleware(authService)
	limited := writeLimiter.Middleware()

	filmRatingHandler.RegisterRoutes(api.Group("/films", authed, limited))
	episodeRatingHandler.RegisterRoutes(api.Group("/episodes", authed, limited))
	seasonRatingHandler.RegisterRoutes(api.Group("/seasons", authed, limited))
	seriesHandler.RegisterProtectedRoutes(api.Group("/series", authed, limited))

	// Admin catalog management
	catalogHandler.RegisterAdminRoutes(api.Group("/admin", authed, middleware.RequireAdmin()))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		logger.Info("http server listening", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
