package routes

import (
	"net/http"

	"job-board-api/internal/api/handlers"
	"job-board-api/internal/api/middleware"
	"job-board-api/internal/app"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {
	log := app.Logger.Named("routes")

	api := router.Group("/api")

	authHandler := handlers.NewAuthHandler(app.AuthService, app.Validator, app.Logger.Named("auth_handler"))
	jobHandler := handlers.NewJobHandler(app.JobService, app.Validator, app.Logger.Named("job_handler"))
	applicationHandler := handlers.NewApplicationHandler(app.ApplicationService, app.Validator, app.Logger.Named("application_handler"))
	profileHandler := handlers.NewProfileHandler(app.ProfileService, app.Validator, app.Logger.Named("profile_handler"))

	authMiddleware := middleware.JWTAuthMiddleware(app.Tokens, app.Denylist, app.Logger.Named("auth_middleware"))

	var authLimiter gin.HandlerFunc
	if app.Limiter != nil {
		authLimiter = middleware.RateLimit(app.Limiter, "auth", app.Logger.Named("ratelimit"))
	} else {
		log.Info("rate limiting disabled")
		authLimiter = func(c *gin.Context) { c.Next() }
	}

	RegisterAuthRoutes(api, authHandler, authMiddleware, authLimiter)
	RegisterJobRoutes(api, jobHandler, authMiddleware)
	RegisterApplicationRoutes(api, applicationHandler, authMiddleware)
	RegisterProfileRoutes(api, profileHandler, authMiddleware)

	api.GET("/health", handlers.HealthCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/swagger/index.html")
	})

	router.NoRoute(handlers.NotFound)
	log.Debug("routes registered")
}
