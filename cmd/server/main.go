package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/supplylens/supplylens/internal/api"
	"github.com/supplylens/supplylens/internal/cache"
	"github.com/supplylens/supplylens/internal/config"
	"github.com/supplylens/supplylens/internal/leadtime"
	"github.com/supplylens/supplylens/internal/output"
	"github.com/supplylens/supplylens/internal/service"
	"github.com/supplylens/supplylens/internal/warehouse"
	"github.com/supplylens/supplylens/pkg/logger"
)

func main() {
	cfg := config.Load()

	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := warehouse.NewDB(&cfg.Warehouse)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to warehouse")
	}
	defer db.Close()

	book, err := leadtime.Load(cfg.App.LookupDir)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to load lookup tables")
	}

	summaryCache, err := cache.NewSummaryCache(cfg.Cache)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to cache")
	}

	var store output.ObjectStorage
	if cfg.Storage.Enabled {
		client, err := output.NewMinioClient(context.Background(), cfg.Storage)
		if err != nil {
			logger.Log.Fatal().Err(err).Msg("Failed to connect to object storage")
		}
		store = client
	}

	forecastService := service.NewForecastService(
		warehouse.NewLoader(db), book, summaryCache, store, cfg.App.OutputDir)

	router := api.NewRouter(forecastService, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
