package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"jobswipe/internal/config"
	"jobswipe/internal/db"
	apihttp "jobswipe/internal/http"
	"jobswipe/internal/repository"
	"jobswipe/internal/scheduler"
	"jobswipe/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := db.Ping(ctx, pool); err != nil {
		logger.Fatal("db ping", zap.Error(err))
	}

	if err := db.Migrate(ctx, pool); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	userRepo := repository.NewPgUserRepository(pool)
	jobRepo := repository.NewPgJobRepository(pool)
	interactionRepo := repository.NewPgInteractionRepository(pool)

	cacheTTL := time.Duration(cfg.RecommendationCacheTTLSeconds) * time.Second
	recCache := service.NewMemoryRecommendationCache(cacheTTL)
	var tokenStore service.RefreshTokenStore
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			recCache = service.NewRedisRecommendationCache(redisClient, cacheTTL)
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
		}
		cancel()
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLMinutes)*time.Minute,
		tokenStore,
	)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured, api runs open")
	}

	learner := service.NewPreferenceLearner(logger, userRepo, jobRepo, interactionRepo, cfg.LearnWindow)
	recSvc := service.NewRecommendationService(logger, userRepo, jobRepo, interactionRepo, recCache)
	swipeSvc := service.NewSwipeService(logger, userRepo, jobRepo, interactionRepo, learner, recCache, cfg.LearnEvery)

	userHandler := apihttp.NewUserHandler(logger, userRepo, jwtSvc)
	jobHandler := apihttp.NewJobHandler(logger, jobRepo, userRepo)
	swipeHandler := apihttp.NewSwipeHandler(logger, swipeSvc)
	recHandler := apihttp.NewRecommendationHandler(logger, recSvc)
	router := apihttp.NewRouter(logger, userHandler, jobHandler, swipeHandler, recHandler, jwtSvc, cfg.CORSAllowedOrigins)

	if cfg.SchedulerEnabled {
		sched := scheduler.New(logger, learner, jobRepo, interactionRepo, cfg.RelearnCronSpec, cfg.PruneCronSpec)
		if err := sched.Start(ctx); err != nil {
			logger.Fatal("scheduler start", zap.Error(err))
		}
		defer sched.Stop()
	}

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
