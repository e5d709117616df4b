package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sidd-gupta05/getfly-project/internal/api"
	"github.com/sidd-gupta05/getfly-project/internal/core/service"
	"github.com/sidd-gupta05/getfly-project/internal/infrastructure/config"
	mongodb "github.com/sidd-gupta05/getfly-project/internal/infrastructure/db/mongo"
	redisdb "github.com/sidd-gupta05/getfly-project/internal/infrastructure/db/redis"
	"github.com/sidd-gupta05/getfly-project/internal/infrastructure/queue"
	"github.com/sidd-gupta05/getfly-project/pkg/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting site tracker API")

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	userRepo := mongodb.NewUserRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	reportRepo := mongodb.NewReportRepository(db)
	for _, idx := range []interface {
		EnsureIndexes(context.Context) error
	}{userRepo, projectRepo, reportRepo} {
		if err := idx.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to ensure indexes")
		}
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- Activity pipeline ---
	accessCache := redisdb.NewAccessCache(rdb)
	activityService := service.NewActivityService(projectRepo, accessCache, log)
	dispatcher := queue.NewDispatcher(cfg.Workers, activityService, log)
	dispatcher.Start(ctx)

	// --- HTTP ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	e := api.NewRouter(api.Deps{
		DB:     db,
		Redis:  rdb,
		Tokens: tokens,
		Queue:  dispatcher,
		Logger: log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()

	// --- Graceful shutdown ---
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info().Msg("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	cancel() // stop dispatcher workers
	log.Info().Msg("server stopped")
}
