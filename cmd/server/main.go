package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"catalog_service/config"
	"catalog_service/internal/delivery"
	grpcHandler "catalog_service/internal/delivery/grpc"
	"catalog_service/internal/middleware"
	"catalog_service/internal/repository"
	"catalog_service/internal/usecase"
	"catalog_service/proto/catalogpb"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

func main() {
	logger := setupLogger("info")
	if err := run(logger); err != nil {
		logger.Fatalf("FATAL: %v", err)
	}
}

// run owns every resource it opens, so its deferred cleanups finish before
// main exits on an error.
func run(logger *logrus.Logger) error {
	cfg := config.LoadConfig(logger)
	if err := cfg.ValidateStorage(); err != nil {
		return fmt.Errorf("invalid storage configuration: %w", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Invalid LOG_LEVEL '%s', using default: %s", cfg.LogLevel, logger.GetLevel())
	} else {
		logger.SetLevel(logLevel)
	}
	logger.Info("Starting Catalog Service...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	categoryRepo, closeStorage, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer closeStorage()

	// --- Dependency Injection ---
	categoryService := usecase.NewCategoryService(categoryRepo, logger)
	categoryHandler := delivery.NewCategoryHandler(categoryService, logger)
	categoryGrpcHandler := grpcHandler.NewCategoryHandler(categoryService, logger)
	logger.Info("Handlers initialized.")

	// --- HTTP ---
	if logger.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(logger))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api := router.Group("/api")
	categoryHandler.RegisterRoutes(
		api.Group("/public"),
		api.Group("/admin", middleware.AdminAuth(cfg.AdminToken, logger)),
	)
	logger.Info("HTTP routes registered.")

	httpServer := &http.Server{
		Addr:    cfg.HTTPPort,
		Handler: router,
	}

	// --- gRPC ---
	lis, err := net.Listen("tcp", cfg.GrpcPort)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", cfg.GrpcPort, err)
	}
	grpcServer := grpc.NewServer()
	catalogpb.RegisterCategoryServiceServer(grpcServer, categoryGrpcHandler)
	reflection.Register(grpcServer)

	errCh := make(chan error, 2)
	go func() {
		logger.Infof("Starting HTTP server on %s", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	go func() {
		logger.Infof("Starting gRPC server on %s", cfg.GrpcPort)
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errCh <- err
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Warn("Shutdown signal received...")
	case serveErr = <-errCh:
		logger.Errorf("Server failed: %v", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("HTTP server shutdown error: %v", err)
	}
	grpcServer.GracefulStop()
	if serveErr != nil {
		return serveErr
	}
	logger.Info("Catalog Service shut down gracefully.")
	return nil
}

func setupLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logger
}
