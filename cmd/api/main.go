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

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/meeting-workspace/pkg/validator"

	"github.com/johnquangdev/meeting-workspace/internal/adapter/handler"
	"github.com/johnquangdev/meeting-workspace/internal/adapter/repository"
	"github.com/johnquangdev/meeting-workspace/internal/domain/repositories"
	"github.com/johnquangdev/meeting-workspace/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-workspace/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-workspace/internal/usecase/workspace"
	pkgai "github.com/johnquangdev/meeting-workspace/pkg/ai"
	"github.com/johnquangdev/meeting-workspace/pkg/config"
	"github.com/johnquangdev/meeting-workspace/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	renderer, err := web.NewRenderer()
	if err != nil {
		logger.Fatal("failed to parse templates", zap.Error(err))
	}
	e.Renderer = renderer

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.RequestID())

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "Cookie"},
		AllowCredentials: true,
	}))

	// Multipart overhead on top of the largest accepted recording
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dK", cfg.Server.MaxUploadBytes/1024+1024)))

	logger.Info("initializing dependencies", zap.String("environment", cfg.Server.Environment))

	ctx := context.Background()
	checks := map[string]handler.HealthCheck{}

	// Session store
	var store cache.Store
	switch cfg.Session.Store {
	case "redis":
		logger.Info("connecting to redis", zap.String("addr", cfg.GetRedisAddr()))
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		store = cache.NewRedisStore(redisClient)
		checks["sessions"] = func(ctx context.Context) (map[string]interface{}, error) {
			if err := redisClient.Ping(ctx).Err(); err != nil {
				return nil, err
			}
			return map[string]interface{}{"store": "redis", "addr": cfg.GetRedisAddr()}, nil
		}
	default:
		store = cache.NewMemoryStore()
	}
	defer store.Close()

	// Upload staging
	var files repositories.FileRepository
	switch cfg.Storage.Type {
	case "minio":
		logger.Info("connecting to minio", zap.String("endpoint", cfg.Storage.Endpoint))
		minioClient, err := storage.NewMinIOClient(ctx, &cfg.Storage)
		if err != nil {
			logger.Fatal("failed to connect to minio", zap.Error(err))
		}
		files = minioClient
		checks["storage"] = minioClient.GetBucketInfo
	default:
		files = storage.NewMemoryStorage()
	}

	// Backend client
	backend := pkgai.NewMinutesClient(&cfg.Backend, logger)
	checks["backend"] = func(ctx context.Context) (map[string]interface{}, error) {
		status, err := backend.Health(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"url": backend.BaseURL(), "message": status.Message}, nil
	}
	if cfg.Backend.WaitReady {
		if err := backend.WaitReady(ctx, cfg.Backend.ReadyTimeout); err != nil {
			logger.Fatal("backend not ready", zap.Error(err))
		}
		logger.Info("backend ready", zap.String("url", backend.BaseURL()))
	}

	workspaceService := workspace.NewWorkspaceService(
		repository.NewSessionRepository(store),
		files,
		backend,
		workspace.Options{
			SessionTTL:     cfg.Session.TTL,
			ProcessTimeout: cfg.Backend.ProcessTimeout,
			ExportTimeout:  cfg.Backend.ExportTimeout,
			ChatTimeout:    cfg.Backend.ChatTimeout,
		},
		logger,
	)

	workspaceHandler := handler.NewWorkspaceHandler(workspaceService, cfg.Server.MaxUploadBytes, logger)
	healthHandler := handler.NewHealthHandler(cfg.Server.Environment, checks, logger)

	router := handler.NewRouter(cfg, workspaceHandler, healthHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("starting server",
			zap.String("addr", addr),
			zap.String("backend_url", backend.BaseURL()),
			zap.String("session_store", cfg.Session.Store),
			zap.String("storage", cfg.Storage.Type),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("server stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
