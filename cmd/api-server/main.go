package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"mediavault/database"
	"mediavault/internal/auth"
	"mediavault/internal/cache"
	"mediavault/internal/config"
	"mediavault/internal/handler"
	"mediavault/internal/middleware"
	"mediavault/internal/models"
	"mediavault/internal/repository"
	"mediavault/internal/service"
	"mediavault/internal/storage"
)

const (
	// Per-IP budget for the credential endpoints
	loginRatePerSecond = 1
	loginRateBurst     = 5

	blobFolder = "videos"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.Connect(cfg, logger)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer database.Close(db)

	if cfg.IsDevelopment() {
		if err := seedAdminUser(db, logger); err != nil {
			log.Fatalf("failed to seed admin user: %v", err)
		}
	}

	// Cache is optional: without redis every read goes to the database
	var readCache *cache.Cache
	if cfg.RedisAddr != "" {
		readCache, err = cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)
		if err != nil {
			logger.Warn("redis unavailable, running without cache", "error", err)
			readCache = nil
		} else {
			defer readCache.Close()
		}
	}

	blobStorage, err := storage.NewCloudinaryStorage(blobFolder)
	if err != nil {
		log.Fatalf("failed to initialize blob storage: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	authService := service.NewAuthService(userRepo, cfg)
	videoService := service.NewVideoService(videoRepo, commentRepo, ratingRepo, blobStorage, readCache)
	commentService := service.NewCommentService(commentRepo, videoRepo, readCache)
	ratingService := service.NewRatingService(ratingRepo, videoRepo, readCache)

	router := setupRouter(cfg, authService, videoService, commentService, ratingService)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		logger.Info("server starting", "port", cfg.HTTPPort, "env", cfg.GoEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server exited with error: %v", err)
		}
	}()

	// Block until interrupted, then drain in-flight requests
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

func setupRouter(
	cfg *config.Config,
	authService service.AuthService,
	videoService service.VideoService,
	commentService service.CommentService,
	ratingService service.RatingService,
) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := handler.NewAuthHandler(authService)
	videoHandler := handler.NewVideoHandler(videoService)
	commentHandler := handler.NewCommentHandler(commentService)
	ratingHandler := handler.NewRatingHandler(ratingService)

	authGate := middleware.AuthMiddleware(authService)
	credentialLimit := middleware.RateLimit(loginRatePerSecond, loginRateBurst)

	// Auth routes
	router.POST("/login", credentialLimit, authHandler.Login)
	router.POST("/register", credentialLimit, authHandler.Register)
	router.POST("/create-creator", authGate, middleware.RequireRole(models.RoleAdmin), authHandler.CreateCreator)

	// Video routes
	videos := router.Group("/videos")
	{
		videos.GET("", videoHandler.List)
		videos.GET("/:id", videoHandler.GetByID)
		videos.GET("/genre/:genre", videoHandler.ListByGenre)
		videos.POST("", authGate, middleware.RequireRole(models.RoleCreator, models.RoleAdmin), videoHandler.Upload)

		videos.GET("/:id/comments", commentHandler.List)
		videos.POST("/:id/comments", authGate, commentHandler.Create)

		videos.GET("/:id/ratings", ratingHandler.List)
		videos.POST("/:id/ratings", authGate, ratingHandler.Create)
	}

	return router
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

// seedAdminUser creates the bootstrap admin in development. Without it the
// admin-gated creator endpoint has no possible caller on a fresh database.
func seedAdminUser(db *gorm.DB, logger *slog.Logger) error {
	var count int64
	if err := db.Model(&models.User{}).
		Where("username = ?", "admin").
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	adminUser := &models.User{
		Username: "admin",
		Password: hashed,
		Role:     models.RoleAdmin,
	}
	if err := db.Create(adminUser).Error; err != nil {
		return err
	}

	logger.Info("admin user seeded", "username", adminUser.Username)
	return nil
}
