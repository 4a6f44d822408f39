package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"saaransh/internal/cache"
	"saaransh/internal/config"
	"saaransh/internal/dataset"
	"saaransh/internal/db"
	applog "saaransh/internal/logger"
	"saaransh/internal/repository"
	"saaransh/internal/service"
)

func main() {
	timeout := flag.Duration("timeout", time.Minute, "overall deadline for migrating and seeding")
	flag.Parse()

	cfg := config.Load()

	logger, err := applog.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting seed", zap.String("driver", cfg.DBDriver))

	data := dataset.Load()
	if err := data.Validate(); err != nil {
		logger.Fatal("dataset invalid", zap.Error(err))
	}

	// Connect to database
	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("database init", zap.Error(err))
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			logger.Warn("database close", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	// Run migrations to ensure schema is up to date
	if err := repository.MigrateCatalog(ctx, gormDB); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}
	logger.Info("database migrations completed")

	res, err := repository.SeedCatalog(ctx, gormDB, data)
	if err != nil {
		logger.Fatal("seed", zap.Error(err))
	}

	// Drop cached reports so a running server recomputes them from the new rows.
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	defer rdb.Close()
	service.InvalidateReports(ctx, cache.New(rdb, cache.DefaultPrefix))

	logger.Info("seed completed",
		zap.Int("consultations", res.Consultations),
		zap.Int("comments", res.Comments),
		zap.Int("word_clouds", res.WordClouds),
		zap.Int("trends", res.Trends),
		zap.Int("access_logs", res.AccessLogs),
	)
}
