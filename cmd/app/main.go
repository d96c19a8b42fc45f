package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fulfillment/cmd"
	pgadapter "fulfillment/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config, err := loadConfig()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	gormDB, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err = pgadapter.Migrate(gormDB); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(config, gormDB, logger)

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		logger.Error("failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	root.CreateHTTPServer().RegisterRoutes(e)

	go func() {
		if serveErr := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); serveErr != nil &&
			serveErr != http.ErrServerClosed {
			logger.Error("http server stopped", "error", serveErr)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}

func loadConfig() (cmd.Config, error) {
	// Missing .env is fine when the variables come from the environment.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		HTTPPort:            envOr("HTTP_PORT", "8080"),
		DBHost:              envOr("DB_HOST", "localhost"),
		DBPort:              envOr("DB_PORT", "5432"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		DBSslMode:           envOr("DB_SSLMODE", "disable"),
		CartCleanupSchedule: envOr("CART_CLEANUP_SCHEDULE", "@hourly"),
	}

	retention, err := time.ParseDuration(envOr("CART_RETENTION", "72h"))
	if err != nil {
		return cmd.Config{}, fmt.Errorf("CART_RETENTION: %w", err)
	}
	config.CartRetention = retention

	if config.DBUser == "" || config.DBName == "" {
		return cmd.Config{}, fmt.Errorf("DB_USER and DB_NAME must be set")
	}

	return config, nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
