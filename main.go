package main

import (
	"context"

	"github.com/Alex3925/company-suggestion-box/config"
	"github.com/Alex3925/company-suggestion-box/handlers"
	"github.com/Alex3925/company-suggestion-box/internal/store/postgres"
	"github.com/Alex3925/company-suggestion-box/logger"
	"github.com/Alex3925/company-suggestion-box/router"
	"github.com/Alex3925/company-suggestion-box/services"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Initialize logger
	logger.InitLogger()
	log := logger.GetLogger()
	defer func() {
		_ = logger.Close()
	}()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the database pool. TLS posture toward the database is
	// carried entirely by the sslmode flag in the connection string.
	log.Infow("Connecting to database", "url", logger.MaskConnectionString(cfg.Database.URL()))
	connStr := cfg.Database.ConnString()
	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		log.Fatalf("Failed to parse database config: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("Database is unreachable: %v (conn: %s)", err, logger.MaskConnectionString(connStr))
	}

	// The process must not accept requests in a half-initialized state:
	// schema creation failure is fatal.
	suggestionStore := postgres.NewSuggestionStore(pool)
	if err := suggestionStore.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	// Redis backs the API rate limiter only; the limiter fails open, so an
	// unreachable Redis degrades rate limiting rather than the API.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warnw("Redis is unreachable; rate limiting is disabled", "error", err)
	}

	// Services and handlers
	suggestionService := services.NewSuggestionService(suggestionStore)
	rateLimitService := services.NewRateLimitService(redisClient)

	r := router.SetupRouter(router.Dependencies{
		Config:            cfg,
		SuggestionHandler: handlers.NewSuggestionHandler(suggestionService),
		AdminHandler:      handlers.NewAdminHandler(suggestionService),
		HealthHandler:     handlers.NewHealthHandler(),
		RateLimiter:       rateLimitService,
		Logger:            log,
	})

	log.Infof("Starting server on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
