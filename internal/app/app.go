package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/bhrigu123/readster/internal/badge"
	"github.com/bhrigu123/readster/internal/config"
	"github.com/bhrigu123/readster/internal/httpserver"
	"github.com/bhrigu123/readster/internal/httpserver/deps"
	"github.com/bhrigu123/readster/internal/httpserver/mw"
	"github.com/bhrigu123/readster/internal/logger"
	"github.com/bhrigu123/readster/internal/redis"
	"github.com/bhrigu123/readster/internal/repo"
	"github.com/bhrigu123/readster/internal/scheduler"
	redisstore "github.com/bhrigu123/readster/internal/store/redis"
	"github.com/bhrigu123/readster/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	badge       *badge.Updater
	importer    *scheduler.ImportReloader
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize Redis early - fail fast if unavailable
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		DB:             cfg.RedisDB,
		DialTimeout:    cfg.RedisDialTimeout,
		ReadTimeout:    cfg.RedisReadTimeout,
		WriteTimeout:   cfg.RedisWriteTimeout,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Redis initialized successfully")

	// Document store over the Redis client
	docStore := redisstore.NewDocumentStore(redisClient, loggerClient)

	// Repository for reading-list mutations
	repository := repo.New(docStore, loggerClient)

	// Badge updater (started in Run)
	badgeUpdater := badge.NewUpdater(docStore, loggerClient)

	// Import reloader (if an import file is configured)
	var importer *scheduler.ImportReloader
	var importTrigger chan struct{}
	if cfg.ImportFile != "" {
		loggerClient.Info("import file configured, initializing importer",
			logger.String("file", cfg.ImportFile))
		importTrigger = make(chan struct{}, 1)
		importer = scheduler.NewImportReloader(
			cfg.ImportFile,
			repository,
			loggerClient,
			cfg.ImportInterval,
			importTrigger,
		)
	} else {
		loggerClient.Info("import file not configured, file import disabled")
	}

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		TimeNow:       time.Now,
		Repo:          repository,
		Badge:         badgeUpdater,
		ImportTrigger: importTrigger,
		WriteLimit: mw.RateLimitConfig{
			Burst:             cfg.WriteBurst,
			RefillPerIPPerMin: cfg.WritePerMinute,
			TrustProxy:        cfg.TrustProxy,
		},
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		badge:       badgeUpdater,
		importer:    importer,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Readster v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Readster %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start badge updater (initial count + change subscription)
	if err := a.badge.Start(ctx); err != nil {
		return fmt.Errorf("failed to start badge updater: %w", err)
	}

	// Start importer (if enabled)
	if a.importer != nil {
		if err := a.importer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start importer: %w", err)
		}
		a.logger.Info("importer started",
			logger.Duration("interval", a.cfg.ImportInterval))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	// Stop importer
	if a.importer != nil {
		a.importer.Stop()
	}

	// Stop badge updater
	a.badge.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ Readster stopped cleanly")
	return nil
}
