// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/storefront-backend/internal/config"
	"github.com/javajoker/storefront-backend/internal/database"
	"github.com/javajoker/storefront-backend/internal/i18n"
	"github.com/javajoker/storefront-backend/internal/middleware"
	"github.com/javajoker/storefront-backend/internal/repositories"
	"github.com/javajoker/storefront-backend/internal/router"
	"github.com/javajoker/storefront-backend/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	configureLogging(cfg)

	// Initialize i18n
	if err := i18n.Initialize(); err != nil {
		logrus.WithError(err).Fatal("Failed to initialize i18n")
	}

	// Load the product and decoration catalog
	catalog, err := services.LoadCatalog(cfg.Catalog.DataDir)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load catalog")
	}

	// Open the order store
	repo, closeStore, err := openOrderStore(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to open order store")
	}
	defer closeStore()

	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize storage")
	}

	notificationService := services.NewNotificationService(cfg)
	orderService := services.NewOrderService(repo, catalog, services.NewOrderValidator(nil, nil), notificationService)

	limiters := middleware.NewRateLimiters(cfg.RateLimit)
	defer limiters.Stop()

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	r := router.Initialize(cfg, router.Services{
		Catalog:  catalog,
		Orders:   orderService,
		Storage:  storageService,
		Limiters: limiters,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logrus.WithFields(logrus.Fields{
			"addr":        srv.Addr,
			"order_store": cfg.Storage.Driver,
			"uploads_s3":  storageService.UsesS3(),
		}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server forced to shutdown")
	}

	logrus.Info("Server exited")
}

func configureLogging(cfg *config.Config) {
	if cfg.Environment == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		logrus.SetLevel(logrus.InfoLevel)
		return
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(logrus.DebugLevel)
}

// openOrderStore returns the configured repository and its cleanup func.
func openOrderStore(cfg *config.Config) (repositories.OrderRepository, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		logrus.Warn("Using in-memory order store; orders are lost on restart")
		return repositories.NewMemoryStore(), func() {}, nil

	case config.StorageDriverPostgres:
		db, err := database.Initialize(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		if err := database.RunMigrations(db); err != nil {
			database.Close(db)
			return nil, nil, err
		}
		return repositories.NewGormStore(db), func() { database.Close(db) }, nil

	default:
		store := repositories.NewFileStore(cfg.Storage.OrdersFile)
		logrus.WithField("path", store.Path()).Info("Using file order store")
		return store, func() {}, nil
	}
}
