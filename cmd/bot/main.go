package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"waitlist/internal/config"
	"waitlist/internal/handler"
	"waitlist/internal/httpapi"
	"waitlist/internal/i18n"
	"waitlist/internal/logging"
	"waitlist/internal/middleware"
	"waitlist/internal/repository"
	"waitlist/internal/repository/postgres"
	redisrepo "waitlist/internal/repository/redis"
	"waitlist/internal/service"
	"waitlist/internal/submission"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting waitlist bot",
		zap.String("preferences_backend", cfg.PreferencesBackend),
		zap.String("http_addr", cfg.HTTPAddr),
	)

	// Both locales must expose the same content keys
	catalog := i18n.Default()
	if err := catalog.CheckParity(); err != nil {
		logger.Fatal("Translation catalog is inconsistent", zap.Error(err))
	}

	// Initialize preference storage
	prefRepo, closeRepo, err := openPreferences(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open preference storage", zap.Error(err))
	}
	defer closeRepo()

	// Initialize services
	dispatcher := submission.NewWebhookDispatcher(cfg.WebhookURL, nil)
	pipeline := submission.NewPipeline(dispatcher, catalog.Reference(), logger)
	sessions := service.NewSessionService(prefRepo, catalog, pipeline, logger)
	cleanupService := service.NewCleanupService(prefRepo, logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			fields := []zap.Field{zap.Error(err)}
			if c != nil && c.Sender() != nil {
				fields = append(fields, zap.Int64("user_id", c.Sender().ID))
			}
			logger.Error("Bot handler failed", fields...)
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Middleware must be registered before handlers
	bot.Use(middleware.SessionMiddleware(sessions, logger))
	h := handler.NewHandler(bot, sessions, catalog, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Initialize HTTP API
	api, err := httpapi.New(catalog, pipeline, logger)
	if err != nil {
		logger.Fatal("Failed to build HTTP API", zap.Error(err))
	}
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runCleanupJob(ctx, cleanupService, logger)
	go runSessionExpiryJob(ctx, sessions, cfg.SessionTTL, logger)

	// Start HTTP server in background
	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down HTTP server", zap.Error(err))
	}

	logger.Info("Bot stopped gracefully")
}

// openPreferences connects the configured preference backend
func openPreferences(cfg *config.Config, logger *zap.Logger) (repository.PreferenceRepository, func(), error) {
	switch cfg.PreferencesBackend {
	case config.BackendRedis:
		client, err := connectRedis(cfg.Redis.URL, logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Redis connection established")

		ttl := time.Duration(service.PreferenceRetentionDays) * 24 * time.Hour
		return redisrepo.NewPreferenceRepo(client, ttl), func() { client.Close() }, nil

	default:
		// Connect to database with retries
		db, err := connectDatabase(cfg.DSN(), logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Database connection established")

		// Run migrations
		if err := runMigrations(db, logger); err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Info("Database migrations completed")

		return postgres.NewPreferenceRepo(db), func() { db.Close() }, nil
	}
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		// Connection successful
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// connectRedis connects to redis with retries
func connectRedis(url string, logger *zap.Logger) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := goredis.NewClient(opts)

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err = client.Ping(ctx).Err()
		cancel()
		if err == nil {
			return client, nil
		}

		logger.Warn("Failed to ping redis",
			zap.Int("attempt", i+1),
			zap.Error(err),
		)
		time.Sleep(retryDelay)
	}

	client.Close()
	return nil, fmt.Errorf("failed to connect to redis after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	// Run migrations
	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		logger.Info("Migrations applied successfully")
	}

	return nil
}

// runCleanupJob runs periodic cleanup of stale preferences
func runCleanupJob(ctx context.Context, cleanupService *service.CleanupService, logger *zap.Logger) {
	// Run cleanup once at startup
	if err := cleanupService.CleanupOldData(); err != nil {
		logger.Error("Failed to run initial cleanup", zap.Error(err))
	}

	// Then run every 24 hours
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Cleanup job stopped")
			return
		case <-ticker.C:
			logger.Info("Running scheduled cleanup")
			if err := cleanupService.CleanupOldData(); err != nil {
				logger.Error("Failed to run scheduled cleanup", zap.Error(err))
			}
		}
	}
}

// runSessionExpiryJob drops idle chat sessions every hour
func runSessionExpiryJob(ctx context.Context, sessions *service.SessionService, ttl time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Session expiry job stopped")
			return
		case <-ticker.C:
			sessions.ExpireIdle(ttl)
		}
	}
}
