package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"saaransh/docs"
	"saaransh/internal/analytics"
	"saaransh/internal/auth"
	"saaransh/internal/cache"
	"saaransh/internal/config"
	"saaransh/internal/dataset"
	"saaransh/internal/db"
	"saaransh/internal/handler"
	applog "saaransh/internal/logger"
	"saaransh/internal/model"
	"saaransh/internal/repository"
	"saaransh/internal/router"
	"saaransh/internal/service"
	"saaransh/internal/storage"
)

// @title Saaransh Consultation Analytics API
// @version 1.0
// @description Chart-ready analytics over e-consultation feedback behind a mock email, password and OTP login.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	logger, err := applog.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	defer rdb.Close()

	if err := pingRedis(ctx, rdb); err != nil {
		if cfg.StorageBackend == config.StorageRedis {
			logger.Fatal("redis unreachable", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		logger.Warn("redis unreachable, report cache disabled", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}

	var provider storage.Provider
	switch cfg.StorageBackend {
	case config.StorageRedis:
		provider = storage.NewRedis(rdb, cfg.SessionTTL)
	case config.StorageMemory:
		provider = storage.NewMemory()
	default:
		logger.Fatal("unknown storage backend", zap.String("backend", cfg.StorageBackend))
	}

	catalog, gormDB, err := openCatalog(cfg)
	if err != nil {
		logger.Fatal("catalog init", zap.String("source", cfg.CatalogSource), zap.Error(err))
	}
	if gormDB != nil {
		defer func() {
			if err := db.Close(gormDB); err != nil {
				logger.Warn("database close", zap.Error(err))
			}
		}()
	}

	verifier, err := credential(cfg)
	if err != nil {
		logger.Fatal("credential init", zap.Error(err))
	}

	empty, err := analytics.ParseEmptyAverage(cfg.EmptyAverage)
	if err != nil {
		logger.Fatal("analytics config", zap.Error(err))
	}

	identity := auth.Identity{
		User: model.User{
			ID:     1,
			Name:   cfg.ProfileName,
			Email:  cfg.AuthEmail,
			Role:   cfg.ProfileRole,
			Avatar: cfg.ProfileAvatar,
		},
		Location: cfg.ProfileLocation,
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.ClientTokenTTL)
	reportCache := cache.New(rdb, cache.DefaultPrefix)

	// Initialize services
	sessionService := service.NewSessionService(provider, verifier, identity, logger,
		auth.WithLoginDelay(cfg.AuthLoginDelay),
	)
	analyticsService := service.NewAnalyticsService(catalog, reportCache, empty, cfg.CacheTTL)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	router.Register(e, router.Deps{
		Logger:       logger,
		JWTService:   jwtService,
		Sessions:     sessionService,
		SecureCookie: cfg.AppEnv == "production",
	}, router.Handlers{
		Auth:          handler.NewAuthHandler(),
		Consultations: handler.NewConsultationHandler(analyticsService),
		Analytics:     handler.NewAnalyticsHandler(analyticsService),
		Reports:       handler.NewReportHandler(analyticsService),
		Profile:       handler.NewProfileHandler(analyticsService),
	})

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}

	addr := ":" + cfg.ServerPort
	go func() {
		logger.Info("server starting",
			zap.String("addr", addr),
			zap.String("storage", cfg.StorageBackend),
			zap.String("catalog", cfg.CatalogSource),
			zap.String("swagger", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html"),
		)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
}

func pingRedis(ctx context.Context, rdb *redis.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return rdb.Ping(ctx).Err()
}

// openCatalog returns the compiled dataset or a database-backed catalog. The *gorm.DB
// is nil for the static source.
func openCatalog(cfg *config.Config) (repository.CatalogRepository, *gorm.DB, error) {
	switch cfg.CatalogSource {
	case config.CatalogStatic:
		data := dataset.Load()
		if err := data.Validate(); err != nil {
			return nil, nil, err
		}
		return repository.NewStaticCatalog(data), nil, nil
	case config.CatalogDatabase:
		gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewCatalogRepository(gormDB), gormDB, nil
	}
	return nil, nil, errors.New("unknown catalog source " + cfg.CatalogSource)
}

func credential(cfg *config.Config) (auth.Verifier, error) {
	if cfg.AuthPasswordHash != "" {
		return auth.NewFixedCredentialFromHash(cfg.AuthEmail, cfg.AuthPasswordHash, cfg.AuthOTP)
	}
	return auth.NewFixedCredential(cfg.AuthEmail, cfg.AuthPassword, cfg.AuthOTP, bcrypt.DefaultCost)
}
