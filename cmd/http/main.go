package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/optistock/optistock-analytics-service/config"
	"github.com/optistock/optistock-analytics-service/internal/server"
	"github.com/optistock/optistock-analytics-service/pkg/database/postgres"
	"github.com/optistock/optistock-analytics-service/pkg/logger"

	analyticsH "github.com/optistock/optistock-analytics-service/internal/analytics/handler"
	analyticsUCPkg "github.com/optistock/optistock-analytics-service/internal/analytics/usecase"

	dsH "github.com/optistock/optistock-analytics-service/internal/dataset/handler"
	dsRepoPkg "github.com/optistock/optistock-analytics-service/internal/dataset/repository"
	dsUCPkg "github.com/optistock/optistock-analytics-service/internal/dataset/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     false,
		DisableStacktrace: false,
	}

	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Repositories
	dsRepo := dsRepoPkg.NewPGRepository(db)

	// 5. Initialize UseCases
	analyticsUC := analyticsUCPkg.NewAnalyticsUseCase(appLogger)
	dsUC := dsUCPkg.NewDatasetUseCase(dsRepo, appLogger)

	// 6. Initialize Handlers
	analyticsHandler := analyticsH.NewAnalyticsHandler(analyticsUC, appLogger)
	dsHandler := dsH.NewDatasetHandler(dsUC, appLogger)

	// 7. Start HTTP Server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      server.New(analyticsHandler, dsHandler, appLogger).Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	// Graceful Shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
