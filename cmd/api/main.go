package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomoki/kanjilens/internal/api"
	"github.com/tomoki/kanjilens/internal/cache"
	"github.com/tomoki/kanjilens/internal/config"
	"github.com/tomoki/kanjilens/internal/dictionary"
	"github.com/tomoki/kanjilens/internal/domain"
	"github.com/tomoki/kanjilens/internal/logger"
	"github.com/tomoki/kanjilens/internal/repository"
	"github.com/tomoki/kanjilens/internal/service"
	"github.com/tomoki/kanjilens/internal/storage"
)

func main() {
	// Load configuration
	// Support CONFIG_PATH environment variable for production deployments
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger.SetDefaultLogger(logger.NewDefault())
	defer logger.Sync()
	baseLogger := logger.GetDefault()

	// Initialize database
	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		baseLogger.WithError(err).Fatal("Failed to initialize database")
	}
	uploadRepo := repository.NewUploadRepository(db)

	// Initialize storage (local disk by default, S3 when configured)
	objectStorage, err := storage.NewStorage(&cfg.Storage, cfg.Upload.Dir)
	if err != nil {
		baseLogger.WithError(err).Fatal("Failed to initialize storage")
	}
	if s3Storage, ok := objectStorage.(*storage.S3Storage); ok {
		if err := s3Storage.EnsureBucket(context.Background()); err != nil {
			baseLogger.WithError(err).Fatal("Failed to ensure storage bucket")
		}
	}

	// Initialize services
	dictClient := dictionary.NewClient(&dictionary.ClientConfig{
		BaseURL: cfg.Dictionary.BaseURL,
		Timeout: cfg.Dictionary.Timeout,
	})
	recordCache := cache.New[domain.Record](cfg.Dictionary.CacheTTL)
	lookupService := service.NewLookupService(dictClient, recordCache, baseLogger)

	ocrService := service.NewOCRService()
	uploadService := service.NewUploadService(objectStorage, uploadRepo, ocrService, baseLogger)
	chatService := service.NewChatService()

	// Setup router
	router := api.SetupRouter(lookupService, uploadService, chatService, uploadRepo, objectStorage, cfg)

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		baseLogger.WithFields(logger.Fields{
			"port": cfg.Server.Port,
			"mode": cfg.Server.Mode,
		}).Info("Starting API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			baseLogger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	baseLogger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.WithError(err).Fatal("Server forced to shutdown")
	}

	baseLogger.Info("Server exited")
}
