// Package main runs the shorts catalog HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/shortsreel/backend/config"
	"github.com/shortsreel/backend/internal/auth"
	"github.com/shortsreel/backend/internal/middleware"
	"github.com/shortsreel/backend/internal/videos"
	"github.com/shortsreel/backend/pkg/database"
	"github.com/shortsreel/backend/pkg/redis"
	"github.com/shortsreel/backend/pkg/response"
)

const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.Database.DSN(), logger)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	// Admin identity: hashed once here, read-only for the life of the
	// process. A hashing failure means admin routes cannot work, so it
	// is fatal.
	creds, err := auth.NewCredentials(cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		logger.Fatal("hash admin password", zap.Error(err))
	}

	jwtService := auth.NewJWTService(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)
	authHandler := auth.NewHandler(creds, jwtService, logger)

	videoRepo := videos.NewRepository(pool)
	videoHandler := videos.NewHandler(videoRepo, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.Logger(logger))

	// Health
	router.GET("/api/ping", func(c *gin.Context) {
		response.OK(c, gin.H{"ok": true, "ts": time.Now().UnixMilli()})
	})

	// Login, rate limited per client IP when Redis is reachable.
	login := router.Group("/api/admin")
	if rdb, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger); err != nil {
		logger.Warn("redis unavailable, login rate limiting disabled", zap.Error(err))
	} else {
		defer rdb.Close()
		login.Use(middleware.RateLimit(rdb, loginRateLimit, loginRateWindow, logger))
	}
	login.POST("/login", authHandler.Login)

	// Public catalog reads
	router.GET("/api/videos/random", videoHandler.Random)
	router.GET("/api/videos/count", videoHandler.Count)

	// Admin catalog writes and listing, behind the auth gate
	admin := router.Group("/api/admin")
	admin.Use(middleware.JWT(jwtService))
	{
		admin.POST("/videos", videoHandler.Create)
		admin.PUT("/videos/:id", videoHandler.Update)
		admin.GET("/videos", videoHandler.List)
	}

	router.NoRoute(func(c *gin.Context) { response.NotFound(c, "Not found") })

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
