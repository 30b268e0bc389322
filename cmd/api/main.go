//	@title			Attachments API
//	@version		1.0
//	@description	Upload, list, download, preview and delete files attached to entities, album images and candidate resumes.
//
//	@host		localhost:8080
//	@BasePath	/api/v1
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT Bearer token. Format: **Bearer {token}**

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"

	"github.com/xblinx/attachments/internal/config"
	"github.com/xblinx/attachments/internal/db"
	"github.com/xblinx/attachments/internal/logging"
	"github.com/xblinx/attachments/internal/notify"
	"github.com/xblinx/attachments/internal/resume"
	"github.com/xblinx/attachments/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("configuration invalid", "error", err)
	}

	if err := logging.Init(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat}); err != nil {
		logging.Fatal("logger init failed", "error", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("database connection failed", "error", err)
	}
	defer pool.Close()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		logging.Fatal("database migration failed", "error", err)
	}

	store, err := openStorage(cfg)
	if err != nil {
		logging.Fatal("object storage init failed", "error", err)
	}

	handler := newRouter(cfg, deps{
		store:      store,
		candidates: resume.NewRepository(pool),
		notifier:   notify.Multi{notify.Log{}, notify.NewRecorder(pool)},
	})

	read, write := serverTimeouts(cfg.RequestTimeout)
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  read,
		WriteTimeout: write,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logging.Info("server listening", "port", cfg.Port, "env", cfg.AppEnv, "storage", cfg.StorageDriver, "auth", cfg.AuthEnabled())
		logging.Info("swagger UI", "url", "http://localhost:"+cfg.Port+"/swagger/")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	<-quit
	logging.Info("shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Fatal("forced shutdown", "error", err)
	}

	logging.Info("server stopped")
}

func openStorage(cfg *config.Config) (storage.Storage, error) {
	if cfg.StorageDriver == config.DriverFS {
		if err := os.MkdirAll(cfg.StorageRoot, 0o755); err != nil {
			return nil, fmt.Errorf("create storage root: %w", err)
		}
		// BasePathFs refuses any path that resolves outside the root.
		return storage.NewFSStorage(afero.NewBasePathFs(afero.NewOsFs(), cfg.StorageRoot), "/"), nil
	}
	return storage.NewMinioStorage(
		cfg.StorageEndpoint,
		cfg.StorageAccessKey,
		cfg.StorageSecretKey,
		cfg.StorageBucket,
		cfg.StorageUseSSL,
	)
}
