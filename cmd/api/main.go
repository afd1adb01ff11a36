package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"paperstash/config"
	"paperstash/internal/analytics"
	"paperstash/internal/handler"
	"paperstash/internal/rabbitmq"
	"paperstash/internal/ratelimit"
	internalredis "paperstash/internal/redis"
	"paperstash/internal/repository"
	"paperstash/internal/server"
	"paperstash/internal/services"
	"paperstash/internal/storage"
	"paperstash/pkg/database"
	"paperstash/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	mode := logger.DevelopmentMode
	if cfg.AppEnv == logger.ProductionMode {
		mode = logger.ProductionMode
	}
	appLogger := logger.New(mode)
	logger.SetGlobalLogger(appLogger)
	defer appLogger.Sync()

	ctx := context.Background()

	var (
		db      *gorm.DB
		uploads repository.UploadRepository
		pages   repository.PageRepository
	)
	switch cfg.StoreDriver {
	case "memory":
		appLogger.Warnf("using in-memory store; data is lost on restart")
		uploads = repository.NewMemoryUploadRepository()
		pages = repository.NewMemoryPageRepository()
	default:
		logLevel := gormlogger.Warn
		if cfg.AppMode == server.DebugMode {
			logLevel = gormlogger.Info
		}
		var err error
		db, err = database.Open(database.DSN(cfg), logLevel)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close(db)
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to apply GORM migrations: %v", err)
		}
		appLogger.Infof("Database connection established")
		uploads = repository.NewUploadRepository(db)
		pages = repository.NewPageRepository(db)
	}

	s3Client, err := storage.NewClient(ctx, storage.S3Config{
		Region:     cfg.S3Region,
		Bucket:     cfg.S3Bucket,
		AccessKey:  cfg.S3AccessKey,
		SecretKey:  cfg.S3SecretKey,
		Endpoint:   cfg.S3Endpoint,
		PresignTTL: cfg.S3PresignTTL,
	})
	if err != nil {
		log.Fatalf("Failed to init s3 client: %v", err)
	}

	redisClient := internalredis.NewClient(internalredis.Config{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()
	redisUp := true
	if err := internalredis.Ping(ctx, redisClient); err != nil {
		appLogger.Warnf("redis unavailable, falling back to in-process upload rate limiting: %v", err)
		redisUp = false
	}

	tracker := newTracker(cfg, redisClient, appLogger)

	reconciler := services.NewPageReconciler(pages)
	uploadService := services.NewUploadFileService(uploads, s3Client, reconciler, tracker, appLogger, services.UploadFileConfig{
		Env:          cfg.AppEnv,
		StripWWW:     cfg.StripWWW,
		IssueTimeout: cfg.S3PresignTimeout,
	})
	authService := services.NewAuthService(cfg.JWTSecret, 15*time.Minute)

	deps := server.Dependencies{
		Auth: authService,
	}
	checks := []healthCheck{{name: "s3", check: s3Client.Ping}}
	if db != nil {
		checks = append(checks, healthCheck{name: "database", check: func(ctx context.Context) error {
			return database.HealthCheck(ctx, db)
		}})
	}
	if redisUp {
		checks = append(checks, healthCheck{name: "redis", check: func(ctx context.Context) error {
			return internalredis.Ping(ctx, redisClient)
		}})
	}
	deps.Health = combineHealth(checks)

	limitCfg := internalredis.RateLimitConfig{
		UploadLimit:  cfg.UploadRateLimit,
		UploadWindow: cfg.UploadRateWindow,
	}
	if redisUp {
		deps.Limiter = internalredis.NewRateLimiter(redisClient, limitCfg)
	} else {
		deps.Limiter = ratelimit.NewLocal(limitCfg)
	}

	var uploadReader handler.UploadReader = uploads
	if redisUp {
		cache := internalredis.NewCacheStore(redisClient, internalredis.CacheConfig{UploadTTL: cfg.UploadCacheTTL})
		uploadReader = internalredis.NewCachedUploadReader(uploads, cache, appLogger)
	}

	var janitor *services.UploadJanitor
	if cfg.UploadJanitorOn {
		janitor = services.NewUploadJanitor(uploads, appLogger, cfg.UploadJanitorEvery, cfg.UploadJanitorMaxAge)
		janitor.Start(ctx)
		appLogger.Infof("upload janitor started (every %s, max age %s)", cfg.UploadJanitorEvery, cfg.UploadJanitorMaxAge)
	}

	srv := server.New(cfg, appLogger)
	srv.SetupRoutes(&server.Handlers{
		Upload: handler.NewUploadHandler(uploadService, uploadReader),
	}, deps)

	if err := srv.Start(); err != nil {
		appLogger.Errorf("server stopped with error: %v", err)
	}

	if janitor != nil {
		janitor.Stop()
	}
	if closer, ok := tracker.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			appLogger.Warnf("analytics close: %v", err)
		}
	}
}

func newTracker(cfg *config.Config, redisClient *goredis.Client, l *logger.Logger) services.Tracker {
	switch cfg.AnalyticsDriver {
	case "redis":
		l.Infof("analytics: publishing to redis channel %s", cfg.AnalyticsChannel)
		return analytics.NewAsyncTracker(internalredis.NewPublisher(redisClient, cfg.AnalyticsChannel), l, 5*time.Second)
	case "rabbitmq":
		pub, err := rabbitmq.NewPublisher(rabbitmq.Config{
			URL:        cfg.RabbitMQURL,
			Exchange:   cfg.RabbitMQExchange,
			RoutingKey: cfg.RabbitMQRoutingKey,
		}, l)
		if err != nil {
			l.Warnf("analytics disabled: %v", err)
			return analytics.NopTracker{}
		}
		return analytics.NewAsyncTracker(pub, l, 5*time.Second)
	default:
		return analytics.NopTracker{}
	}
}

type healthCheck struct {
	name  string
	check func(context.Context) error
}

// combineHealth runs checks in order and reports the first failure under
// the dependency's name.
func combineHealth(checks []healthCheck) func(context.Context) error {
	return func(ctx context.Context) error {
		for _, c := range checks {
			if err := c.check(ctx); err != nil {
				return fmt.Errorf("%s: %w", c.name, err)
			}
		}
		return nil
	}
}
