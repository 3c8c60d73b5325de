package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/reportcard/api/swagger"
	"github.com/noah-isme/reportcard/internal/handler"
	internalmiddleware "github.com/noah-isme/reportcard/internal/middleware"
	"github.com/noah-isme/reportcard/internal/repository"
	"github.com/noah-isme/reportcard/internal/service"
	"github.com/noah-isme/reportcard/pkg/cache"
	"github.com/noah-isme/reportcard/pkg/config"
	"github.com/noah-isme/reportcard/pkg/database"
	"github.com/noah-isme/reportcard/pkg/logger"
	corsmiddleware "github.com/noah-isme/reportcard/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/reportcard/pkg/middleware/requestid"
)

// @title Report Card API
// @version 1.0.0
// @description Single-owner academic record: terms, courses and graded activities
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg.Env, cfg.Log)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	validate := validator.New()
	metrics := service.NewMetricsService()
	store := repository.NewRecordRepository(cfg.Storage.DataFile, logr)
	checks := map[string]handler.ReadinessCheck{
		"storage": func(ctx context.Context) error {
			return os.MkdirAll(filepath.Dir(store.Path()), 0o755)
		},
	}

	var cacheRepo service.CacheRepository
	if cfg.Cache.Enabled {
		cacheRepo = repository.NewMemoryCacheRepository(cfg.Cache.TTL)
		if cfg.Redis.Enabled {
			client, err := cache.NewRedis(context.Background(), cfg.Redis)
			if err != nil {
				logr.Warn("redis unavailable, caching in process", zap.Error(err))
			} else {
				redisRepo := repository.NewCacheRepository(client, logr)
				defer redisRepo.Close() //nolint:errcheck
				cacheRepo = redisRepo
				checks["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
			}
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr, cfg.Cache.Enabled)

	var snapshots service.SnapshotStore
	if cfg.Snapshots.Enabled {
		db, err := database.NewPostgres(context.Background(), cfg.Database)
		if err != nil {
			logr.Fatal("failed to connect snapshot database", zap.Error(err))
		}
		defer db.Close() //nolint:errcheck
		snapshotRepo := repository.NewSnapshotRepository(db)
		if err := snapshotRepo.EnsureSchema(context.Background()); err != nil {
			logr.Fatal("failed to prepare snapshot schema", zap.Error(err))
		}
		snapshots = snapshotRepo
		checks["postgres"] = db.PingContext
	}

	records := service.NewRecordService(store, snapshots, cacheSvc, metrics, validate, logr)
	exports := service.NewExportService(records, cfg.Export.Title, logr)

	routes := handler.Routes{
		APIPrefix: cfg.APIPrefix,
		Record:    handler.NewRecordHandler(records, exports),
		Metrics:   handler.NewMetricsHandler(metrics, checks),
		Snapshots: records.SnapshotsEnabled(),
	}
	if cfg.Auth.Enabled {
		if cfg.Auth.PassphraseHash == "" {
			logr.Fatal("ENABLE_AUTH requires AUTH_PASSPHRASE_HASH")
		}
		auth := service.NewAuthService(validate, logr, service.AuthConfig{
			PassphraseHash:    cfg.Auth.PassphraseHash,
			AccessTokenSecret: cfg.Auth.Secret,
			AccessTokenExpiry: cfg.Auth.Expiration,
		})
		routes.Auth = handler.NewAuthHandler(auth)
		routes.Tokens = auth
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metrics))

	handler.Register(r, routes)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logr.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	logr.Info("server starting",
		zap.String("addr", server.Addr),
		zap.String("env", cfg.Env),
		zap.String("data_file", store.Path()),
		zap.Bool("cache", cacheSvc.Enabled()),
		zap.Bool("snapshots", records.SnapshotsEnabled()),
		zap.Bool("auth", cfg.Auth.Enabled))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logr.Fatal("server failed", zap.Error(err))
	}
	logr.Info("server stopped")
}
