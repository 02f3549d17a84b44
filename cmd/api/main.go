package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/comingup/marketplace-api/internal/api"
	"github.com/comingup/marketplace-api/internal/api/graphql"
	"github.com/comingup/marketplace-api/internal/core/service"
	mongostore "github.com/comingup/marketplace-api/internal/infrastructure/db/mongo"
	redisstore "github.com/comingup/marketplace-api/internal/infrastructure/db/redis"
	"github.com/comingup/marketplace-api/internal/infrastructure/queue"
	"github.com/comingup/marketplace-api/internal/pkg/config"
	"github.com/comingup/marketplace-api/internal/seed"
	"github.com/comingup/marketplace-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Stores ---
	mongoClient, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	users := mongostore.NewUserRepository(db)
	courses := mongostore.NewCourseRepository(db)
	reviews := mongostore.NewReviewRepository(db)

	for name, repo := range map[string]interface {
		EnsureIndexes(ctx context.Context) error
	}{"users": users, "courses": courses, "reviews": reviews} {
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}

	if cfg.Seed {
		if err := seed.Run(ctx, users, courses, log); err != nil {
			log.Fatal().Err(err).Msg("seeding failed")
		}
	}

	// --- Notification pipeline ---
	dedup := redisstore.NewDedupChecker(rdb)
	notifier := service.NewNotificationService(dedup, log)
	dispatcher := queue.NewDispatcher(cfg.NotifyWorkers, notifier, log)
	dispatcher.Start(ctx)

	// --- Services ---
	services := graphql.Services{
		Auth:        service.NewAuthService(users, cfg.JWTSecret, cfg.TokenTTL, log),
		Users:       service.NewUserService(users, log),
		Courses:     service.NewCourseService(courses, log),
		Reviews:     service.NewReviewService(reviews, courses, log),
		Enrollments: service.NewEnrollmentService(users, courses, log),
		Payments:    service.NewPaymentService(courses, log),
	}

	e, err := api.NewRouter(api.Dependencies{
		DB:         db,
		Redis:      rdb,
		Services:   services,
		Dispatcher: dispatcher,
		Log:        log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped cleanly")
}
