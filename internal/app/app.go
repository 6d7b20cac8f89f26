package app

import (
	"job-board-api/config"
	"job-board-api/internal/api/middleware"
	"job-board-api/internal/auth"
	"job-board-api/internal/services"
	"job-board-api/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client // nil when Redis is not configured
	Logger      *zap.Logger
	Validator   *validator.Validate

	Tokens   *auth.TokenManager
	Denylist storage.TokenDenylist
	Limiter  middleware.Limiter // nil disables rate limiting

	AuthService        services.AuthService
	ProfileService     services.ProfileService
	JobService         services.JobService
	ApplicationService services.ApplicationService
}
