package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	_ "github.com/noah-isme/school-records-api/api/swagger"
	"github.com/noah-isme/school-records-api/internal/handler"
	"github.com/noah-isme/school-records-api/internal/repository"
	"github.com/noah-isme/school-records-api/internal/repository/memory"
	"github.com/noah-isme/school-records-api/internal/router"
	"github.com/noah-isme/school-records-api/internal/seed"
	"github.com/noah-isme/school-records-api/internal/service"
	"github.com/noah-isme/school-records-api/pkg/cache"
	"github.com/noah-isme/school-records-api/pkg/config"
	"github.com/noah-isme/school-records-api/pkg/database"
	"github.com/noah-isme/school-records-api/pkg/logger"
)

// @title School Records API
// @version 1.0.0
// @description Students, teachers, classes, enrollments, attendance, grades, events and the activity log.
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	checks := map[string]handler.ReadinessCheck{}

	repos, closeStore, err := openStore(ctx, cfg, logr, checks)
	if err != nil {
		logr.Fatal("failed to open record store", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	defer closeStore()

	metrics := service.NewMetricsService()
	cacheSvc := openCache(ctx, cfg, metrics, logr, checks)

	services := service.NewServices(repos, service.Options{
		Logger:    logr,
		Validator: service.NewValidator(),
		Metrics:   metrics,
		Cache:     cacheSvc,
		Auth: service.AuthConfig{
			AccessTokenSecret: cfg.JWT.Secret,
			AccessTokenExpiry: cfg.JWT.Expiration,
			Issuer:            cfg.JWT.Issuer,
		},
	})

	if cfg.Store.SeedDemo {
		if _, err := seed.Load(ctx, services, cfg.Store.SeedAdminPassword, logr.Named("seed")); err != nil {
			logr.Fatal("failed to seed demo data", zap.Error(err))
		}
	}

	engine := router.New(router.Handlers{
		Auth:        handler.NewAuthHandler(services.Auth),
		Users:       handler.NewUserHandler(services.Users),
		Students:    handler.NewStudentHandler(services.Students, services.Imports, cfg.Import.MaxFileSizeBytes),
		Teachers:    handler.NewTeacherHandler(services.Teachers),
		Classes:     handler.NewClassHandler(services.Classes),
		Enrollments: handler.NewEnrollmentHandler(services.Enrollments),
		Attendance:  handler.NewAttendanceHandler(services.Attendance),
		Grades:      handler.NewGradeHandler(services.Grades),
		Events:      handler.NewEventHandler(services.Events),
		Dashboard:   handler.NewDashboardHandler(services.Dashboard, services.Activities),
		Exports:     handler.NewExportHandler(services.Exports),
		Metrics:     handler.NewMetricsHandler(metrics, checks),
	}, router.Options{
		APIPrefix:      cfg.APIPrefix,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		EnableDocs:     cfg.Env != config.EnvProduction,
		Logger:         logr,
		Metrics:        metrics,
		Auth:           services.Auth,
	})
	engine.MaxMultipartMemory = cfg.Import.MaxFileSizeBytes

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env), zap.String("store", cfg.Store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
	logr.Info("server stopped")
}

// openStore builds the data store selected by STORE_DRIVER.
func openStore(ctx context.Context, cfg *config.Config, logr *zap.Logger, checks map[string]handler.ReadinessCheck) (service.Repositories, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreMemory, "":
		store := memory.New()
		return memoryRepositories(store), func() {}, nil
	case config.StorePostgres:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return service.Repositories{}, nil, err
		}
		if cfg.Store.AutoMigrate {
			if err := database.Migrate(ctx, db); err != nil {
				_ = db.Close()
				return service.Repositories{}, nil, fmt.Errorf("migrate: %w", err)
			}
		}
		checks["database"] = db.PingContext
		closeFn := func() {
			if err := db.Close(); err != nil {
				logr.Warn("failed to close database", zap.Error(err))
			}
		}
		return postgresRepositories(db), closeFn, nil
	default:
		return service.Repositories{}, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func memoryRepositories(store *memory.Store) service.Repositories {
	return service.Repositories{
		Users:       store.Users(),
		Students:    store.Students(),
		Teachers:    store.Teachers(),
		Classes:     store.Classes(),
		Enrollments: store.Enrollments(),
		Attendance:  store.Attendance(),
		Grades:      store.Grades(),
		Events:      store.Events(),
		Activities:  store.Activities(),
	}
}

func postgresRepositories(db *sqlx.DB) service.Repositories {
	return service.Repositories{
		Users:       repository.NewUserRepository(db),
		Students:    repository.NewStudentRepository(db),
		Teachers:    repository.NewTeacherRepository(db),
		Classes:     repository.NewClassRepository(db),
		Enrollments: repository.NewEnrollmentRepository(db),
		Attendance:  repository.NewAttendanceRepository(db),
		Grades:      repository.NewGradeRepository(db),
		Events:      repository.NewEventRepository(db),
		Activities:  repository.NewActivityRepository(db),
	}
}

// openCache connects Redis when dashboard caching is enabled. A connection failure
// disables caching rather than stopping the server.
func openCache(ctx context.Context, cfg *config.Config, metrics *service.MetricsService, logr *zap.Logger, checks map[string]handler.ReadinessCheck) *service.CacheService {
	if !cfg.Dashboard.CacheEnabled {
		return nil
	}
	client, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, dashboard cache disabled", zap.Error(err))
		return nil
	}
	repo := repository.NewCacheRepository(client)
	checks["cache"] = repo.Ping
	return service.NewCacheService(repo, metrics, cfg.Dashboard.CacheTTL, logr.Named("cache"), true)
}
