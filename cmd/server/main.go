package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lufergio/clipcode/internal/config"
	"github.com/lufergio/clipcode/internal/database"
	"github.com/lufergio/clipcode/internal/handlers"
	"github.com/lufergio/clipcode/internal/middleware"
	"github.com/lufergio/clipcode/internal/routes"
	"github.com/lufergio/clipcode/pkg/logger"
)

func main() {
	// 0. Load Config & Initialize Logger
	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	logger.Info().Str("environment", env).Msg("Starting ClipCode backend...")

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 1. Connect the store. Every piece of shared state lives here;
	// handler instances keep nothing in memory.
	database.InitRedis()

	// 2. Setup Router
	r := gin.New()
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	// 3. Register Routes
	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)
		routes.RegisterClipRoutes(api)
		routes.RegisterPairingRoutes(api)
		routes.RegisterRoomRoutes(api)
		routes.RegisterNearbyRoutes(api)
	}

	// 4. Serve with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + config.AppConfig.Port,
		Handler: r,
	}

	go func() {
		logger.Info().Str("port", config.AppConfig.Port).Msg("Listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Forced shutdown")
	}
	logger.Info().Msg("Server exited")
}
