// Package server boots the API: configuration, logging, cache, storage,
// repositories and the HTTP listener with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cropconnect/api/app/controllers"
	"github.com/cropconnect/api/app/repositories"
	"github.com/cropconnect/api/app/routes"
	"github.com/cropconnect/api/app/services"
	"github.com/cropconnect/api/config"
	"github.com/cropconnect/api/database/seeders"
	"github.com/cropconnect/api/pkg/cache"
	"github.com/cropconnect/api/pkg/database"
	"github.com/cropconnect/api/pkg/logger"
	"github.com/cropconnect/api/pkg/storage"
)

const shutdownTimeout = 10 * time.Second

// Run boots everything and blocks until SIGINT/SIGTERM.
func Run() error {
	config.Load()
	logger.Setup()

	// Redis is optional; predictions just skip the cache without it.
	if err := cache.Connect(); err != nil {
		logger.Warn("cache unavailable, continuing without it", "error", err)
	}
	storage.Connect()

	repos, err := BuildRepositories()
	if err != nil {
		return err
	}

	if config.Get("SEED_DEMO", "") == "true" {
		if err := seeders.Run(context.Background(), repos); err != nil {
			logger.Warn("demo seed failed", "error", err)
		}
	}

	router := routes.New(BuildControllers(repos))

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			"addr", srv.Addr, "env", config.AppEnv(), "db", config.DatabaseDriver())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: listen: %w", err)
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// BuildRepositories picks the persistence driver from DB_DRIVER. The
// default is the in-process memory driver; any SQL driver goes through
// GORM with schema migration on boot.
func BuildRepositories() (*repositories.Repositories, error) {
	if config.DatabaseDriver() == "memory" {
		return repositories.NewMemory(), nil
	}
	if err := database.Connect(); err != nil {
		return nil, err
	}
	if err := repositories.AutoMigrate(database.DB); err != nil {
		return nil, err
	}
	return repositories.NewGorm(database.DB), nil
}

// BuildControllers wires services and controllers onto the repository set.
func BuildControllers(repos *repositories.Repositories) routes.Controllers {
	advisor := services.NewAdvisor()
	return routes.Controllers{
		Health:  controllers.NewHealth(),
		Auth:    controllers.NewAuth(services.NewAuth(repos.Users)),
		Crop:    controllers.NewCrop(services.NewCrop(repos.Crops)),
		Order:   controllers.NewOrder(services.NewOrder(repos.Orders, repos.Crops)),
		Payment: controllers.NewPayment(services.NewPayment(repos.Payments, repos.Orders)),
		Advisor: controllers.NewAdvisor(advisor, advisor),
		Upload:  controllers.NewUpload(),
	}
}
