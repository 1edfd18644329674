// Command api runs the pet-sitting marketplace HTTP server.
//
// @title           Pet Sitting API
// @version         1.0
// @description     Marketplace backend: accounts, pets, sitter directory, bookings, social feed, shop.
// @BasePath        /api
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/petsitting/pet-sitting-system/internal/api"
	"github.com/petsitting/pet-sitting-system/internal/core/ports"
	mongodb "github.com/petsitting/pet-sitting-system/internal/infrastructure/db/mongo"
	redisdb "github.com/petsitting/pet-sitting-system/internal/infrastructure/db/redis"
	"github.com/petsitting/pet-sitting-system/internal/infrastructure/queue"
	"github.com/petsitting/pet-sitting-system/internal/infrastructure/storage"
	"github.com/petsitting/pet-sitting-system/internal/pkg/config"
	"github.com/petsitting/pet-sitting-system/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongodb")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(shutdownCtx)
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	// --- Redis (optional: the directory just skips its cache) ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, directory cache disabled")
		rdb = nil
	}

	// --- Image storage ---
	var store ports.Storage
	var staticDir string
	switch cfg.Upload.Backend {
	case "inline":
		store = storage.NewInlineStorage()
	default:
		disk, err := storage.NewDiskStorage(cfg.Upload.Dir, "/uploads")
		if err != nil {
			log.Fatal().Err(err).Msg("init disk storage")
		}
		store = disk
		staticDir = disk.Dir()
	}

	// --- Background cleanup of replaced uploads ---
	dispatcher := queue.NewCleanupDispatcher(0, store, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.RouterDeps{
		DB:        db,
		Redis:     rdb,
		Store:     store,
		Clean:     dispatcher,
		Config:    cfg,
		Log:       log,
		StaticDir: staticDir,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
