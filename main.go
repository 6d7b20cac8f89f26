package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"job-board-api/config"
	"job-board-api/internal/api/handlers"
	"job-board-api/internal/app"
	"job-board-api/internal/auth"
	"job-board-api/internal/database"
	"job-board-api/internal/logger"
	"job-board-api/internal/server"
	"job-board-api/internal/services"
	"job-board-api/internal/storage"
	"job-board-api/internal/storage/postgres"
	"job-board-api/internal/storage/redisstore"
	"job-board-api/internal/tracing"

	_ "job-board-api/docs"

	"go.uber.org/zap"
)

// @title           Job Board API
// @version         1.0
// @description     Job postings, applications and profiles for employers and job seekers.

// @contact.name   API Support

// @license.name  MIT

// @host      localhost:5000
// @BasePath  /api
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "job-board-api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.JWT.Secret == config.DefaultJWTSecret {
		log.Warn("JWT_SECRET not set, using the development fallback secret")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, log, cfg.Tracing.Endpoint, cfg.Tracing.ServiceName, cfg.Server.Environment)
	if err != nil {
		return err
	}

	dbPool, err := database.NewConnectionPool(ctx, cfg.DB, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer dbPool.Close()

	if cfg.DB.Migrate {
		if err := database.Migrate(ctx, dbPool, log); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	application := &app.Application{
		Config:    cfg,
		DBPool:    dbPool,
		Logger:    log,
		Validator: handlers.NewValidator(),
		Tokens:    auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Expiration, cfg.JWT.Issuer),
		Denylist:  redisstore.NoopDenylist{},
	}

	// --- Optional Redis: token revocation and auth rate limiting ---
	if cfg.Redis.Addr != "" {
		redisClient, err := database.NewRedisClient(ctx, cfg.Redis, log)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		application.RedisClient = redisClient
		application.Denylist = redisstore.NewTokenDenylist(redisClient)
		if cfg.RateLimit.Requests > 0 {
			application.Limiter = redisstore.NewFixedWindowLimiter(redisClient, cfg.RateLimit.Requests, cfg.RateLimit.Window)
		}
	} else {
		log.Info("redis not configured: logout revocation and rate limiting are disabled")
	}

	wireServices(application)

	srv := server.NewServer(application)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn("tracing shutdown failed", zap.Error(err))
	}
	log.Info("application gracefully stopped")
	return nil
}

func wireServices(a *app.Application) {
	var (
		userRepo    storage.UserRepository        = postgres.NewUserRepo(a.DBPool, a.Logger)
		profileRepo storage.ProfileRepository     = postgres.NewProfileRepo(a.DBPool, a.Logger)
		jobRepo     storage.JobRepository         = postgres.NewJobRepo(a.DBPool, a.Logger)
		appRepo     storage.ApplicationRepository = postgres.NewApplicationRepo(a.DBPool, a.Logger)
	)

	policy := services.StatusPolicy{Strict: a.Config.Applications.StrictTransitions}

	a.AuthService = services.NewAuthService(userRepo, profileRepo, a.Tokens, a.Denylist, a.Logger)
	a.ProfileService = services.NewProfileService(profileRepo, a.Logger)
	a.JobService = services.NewJobService(jobRepo, a.Logger)
	a.ApplicationService = services.NewApplicationService(appRepo, jobRepo, policy, a.Logger)
}
