package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/credwise/credwise/internal/auth"
	"github.com/credwise/credwise/internal/cache"
	"github.com/credwise/credwise/internal/config"
	"github.com/credwise/credwise/internal/middleware"
	"github.com/credwise/credwise/internal/profile"
	"github.com/credwise/credwise/internal/server"
	"github.com/credwise/credwise/pkg/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is stamped at build time.
var version = "dev"

// Rate limiting defaults: 60 requests per client per minute.
const (
	rateLimitCapacity = 60
	rateLimitWindow   = time.Minute
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	address := flag.String("address", "", "listen address override")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	listenAddress := conf.Server.Address
	if *address != "" {
		listenAddress = *address
	}

	// Calculation cache: Redis when configured, in-process otherwise.
	var calcCache cache.Cache
	if conf.Cache.Enabled {
		if conf.Cache.RedisAddress != "" {
			redisCache := cache.NewRedisCache(conf.Cache.RedisAddress, conf.CacheTTL())
			defer func() {
				_ = redisCache.Close()
			}()
			calcCache = redisCache
		} else {
			calcCache = cache.NewMemoryCache(conf.CacheTTL())
		}
	}

	store := profile.NewMemoryStore()
	authenticator := auth.NewPasswordAuthenticator(store)
	if err := authenticator.SeedDemoUser(context.Background()); err != nil {
		logger.Fatal("failed to seed demo user",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	limiter := middleware.NewRateLimiter(rateLimitCapacity, rateLimitWindow)
	defer limiter.Stop()

	handler := server.NewHandler(server.Options{
		Logger:         logger,
		Version:        version,
		MaxRequestSize: conf.MaxRequestBytes(),
		Cache:          calcCache,
		Store:          store,
		Sessions:       auth.NewJWTManager(conf.Auth.Secret, conf.TokenTTL()),
		RateLimiter:    limiter,
		Metrics:        middleware.NewMetrics(),
	})

	logger.Info("starting credwise server",
		zap.String("op", "main"),
		zap.String("address", listenAddress),
		zap.String("version", version),
	)

	if err := http.ListenAndServe(listenAddress, handler); err != nil {
		logger.Fatal("server failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
