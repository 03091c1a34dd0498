package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/agenttrace/woops/internal/config"
	"github.com/agenttrace/woops/internal/middleware"
	"github.com/agenttrace/woops/internal/pkg/logger"
	"github.com/agenttrace/woops/internal/pkg/woops"
)

const appVersion = "0.1.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.Log
	defer func() { _ = logger.Sync() }()

	// Initialize Sentry if enabled
	sentryEnabled := cfg.Sentry.Enabled && cfg.Sentry.DSN != ""
	if sentryEnabled {
		sentryConfig := middleware.SentryConfig{
			DSN:              cfg.Sentry.DSN,
			Environment:      cfg.Sentry.Environment,
			Release:          cfg.Sentry.Release,
			Debug:            cfg.Sentry.Debug,
			SampleRate:       cfg.Sentry.SampleRate,
			TracesSampleRate: cfg.Sentry.TracesSampleRate,
			FlushTimeout:     5 * time.Second,
		}
		if sentryConfig.Release == "" {
			sentryConfig.Release = "woops@" + appVersion
		}
		if sentryConfig.Environment == "" {
			sentryConfig.Environment = cfg.Server.Env
		}

		if err := middleware.InitSentry(sentryConfig); err != nil {
			log.Error("failed to initialize Sentry", zap.Error(err))
			sentryEnabled = false
		} else {
			log.Info("Sentry initialized",
				zap.String("environment", sentryConfig.Environment),
				zap.String("release", sentryConfig.Release),
			)
			defer middleware.FlushSentry(sentryConfig.FlushTimeout)
		}
	}

	// Initialize dependencies
	deps, err := initDependencies(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize dependencies", zap.Error(err))
	}
	defer deps.Close()

	app := newApp(cfg, deps, sentryEnabled)

	// Start server
	go func() {
		addr := cfg.Server.Addr()
		log.Info("starting server", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	}

	log.Info("server stopped")
}

// newApp creates the Fiber app with global middleware and routes
func newApp(cfg *config.Config, deps *Dependencies, sentryEnabled bool) *fiber.App {
	log := deps.Logger

	app := fiber.New(fiber.Config{
		AppName:               "Woops API",
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: cfg.IsProduction(),
		EnablePrintRoutes:     logger.IsDebug() && !cfg.IsProduction(),
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          middleware.ErrorHandler(middleware.ErrorHandlerConfig{Logger: log}),
	})

	// Apply global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Woops(woopsConfig(cfg, log, sentryEnabled)))
	app.Use(middleware.Logger(middleware.DefaultLoggerConfig(log)))
	app.Use(middleware.Recover(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	app.Use(middleware.CORS(corsConfig))

	if sentryEnabled {
		app.Use(middleware.SentryMiddleware())
	}
	if cfg.Metrics.Enabled {
		app.Use(middleware.Metrics())
	}

	registerRoutes(app, deps)
	return app
}

// woopsConfig builds the responder options and the observers that run on
// every sent error
func woopsConfig(cfg *config.Config, log *zap.Logger, sentryEnabled bool) middleware.WoopsConfig {
	observers := []middleware.Observer{middleware.LogErrors(log)}
	if cfg.Metrics.Enabled {
		observers = append(observers, middleware.CountErrors())
	}
	if sentryEnabled {
		observers = append(observers, middleware.ReportDeveloperErrors())
	}

	return middleware.WoopsConfig{
		Options: woops.Options{
			IncludeErrorStack: cfg.Woops.IncludeErrorStack,
		},
		Observers: observers,
	}
}
