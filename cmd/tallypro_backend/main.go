package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	portsrepo "github.com/SscSPs/tallypro_backend/internal/core/ports/repositories"
	"github.com/SscSPs/tallypro_backend/internal/core/services"
	"github.com/SscSPs/tallypro_backend/internal/handlers"
	"github.com/SscSPs/tallypro_backend/internal/middleware"
	"github.com/SscSPs/tallypro_backend/internal/platform/config"
	"github.com/SscSPs/tallypro_backend/internal/repositories/cache"
	"github.com/SscSPs/tallypro_backend/internal/repositories/database/memory"
	"github.com/SscSPs/tallypro_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/tallypro_backend/internal/utils"
	"github.com/SscSPs/tallypro_backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"
	limiterredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// @title TallyPro Backend API
// @version 1.0
// @description Bookkeeping API for small businesses: parties, cash transactions, stock, daybook and reports.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	repos, closeStorage, err := setupStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("driver", cfg.StorageDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStorage()

	redisClient := setupRedis(ctx, cfg, logger)
	if redisClient != nil {
		defer redisClient.Close()
		repos.ReportCache = cache.NewRedisReportCache(redisClient, cfg.ReportCacheTTL)
	} else {
		repos.ReportCache = cache.NewLRUReportCache(cfg.ReportCacheSize, cfg.ReportCacheTTL)
	}

	rateLimiter, err := setupRateLimiter(cfg, redisClient)
	if err != nil {
		logger.Error("Failed to initialize rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimit(rateLimiter), middleware.PosthogMiddleware(posthogClient))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	serviceContainer := services.NewServiceContainer(cfg, repos)
	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.StorageDriver))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setupStorage builds the repositories for the configured driver and returns
// a function that releases them.
func setupStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.StorageDriver == config.StoragePostgres {
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("Database connection pool established.")

		if err := database.RunMigrations(cfg.DatabaseURL, "file://migrations", logger); err != nil {
			database.ClosePgxPool(dbPool)
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
	}

	store := memory.NewStore()
	if cfg.SeedFixtures {
		store.Seed(memory.DefaultFixtures(time.Now().UTC()))
		logger.Info("Seeded in-memory store with demo fixtures.")
	}
	return memory.NewRepositoryProvider(store), func() {}, nil
}

// setupRedis returns nil when Redis is not configured or unreachable, in which
// case the cache and rate limiter stay in process.
func setupRedis(ctx context.Context, cfg *config.Config, logger *slog.Logger) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Failed to connect to Redis, using in-process cache", slog.String("addr", cfg.RedisAddr), slog.String("error", err.Error()))
		_ = client.Close()
		return nil
	}
	logger.Info("Redis connected", slog.String("addr", cfg.RedisAddr))
	return client
}

func setupRateLimiter(cfg *config.Config, redisClient *redis.Client) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		return nil, err
	}

	store := limitermemory.NewStore()
	if redisClient != nil {
		store, err = limiterredis.NewStoreWithOptions(redisClient, limiter.StoreOptions{Prefix: "tallypro:limiter"})
		if err != nil {
			return nil, err
		}
	}
	return limiter.New(store, rate), nil
}
