package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"slices"
	"time"

	"job-board-api/config"
	"job-board-api/internal/api/middleware"
	"job-board-api/internal/api/routes"
	"job-board-api/internal/app"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	app    *app.Application
	log    *zap.Logger
}

// originMatcher admits the configured origins, "*" and anything matching
// the preview pattern.
func originMatcher(cfg config.CORSConfig, log *zap.Logger) func(string) bool {
	var preview *regexp.Regexp
	if cfg.PreviewOriginPattern != "" {
		re, err := regexp.Compile(cfg.PreviewOriginPattern)
		if err != nil {
			log.Warn("ignoring invalid CORS preview pattern",
				zap.String("pattern", cfg.PreviewOriginPattern), zap.Error(err))
		} else {
			preview = re
		}
	}
	return func(origin string) bool {
		for _, allowed := range cfg.AllowedOrigins {
			if allowed == "*" || allowed == origin {
				return true
			}
		}
		return preview != nil && preview.MatchString(origin)
	}
}

// corsConfig builds the CORS policy. Credentials are only allowed when every
// origin is listed explicitly.
func corsConfig(cfg config.CORSConfig, log *zap.Logger) cors.Config {
	credentials := !slices.Contains(cfg.AllowedOrigins, "*")
	if !credentials {
		log.Warn("wildcard CORS origin configured, disabling credentials")
	}
	return cors.Config{
		AllowOriginFunc:  originMatcher(cfg, log),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: credentials,
		MaxAge:           12 * time.Hour,
	}
}

func NewServer(app *app.Application) *Server {
	log := app.Logger.Named("server")

	if app.Config.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger(app.Logger.Named("http")), middleware.Metrics())

	log.Info("configuring CORS", zap.Strings("origins", app.Config.CORS.AllowedOrigins))
	router.Use(cors.New(corsConfig(app.Config.CORS, log)))

	_ = router.SetTrustedProxies(nil)

	routes.RegisterRoutes(router, app)

	addr := fmt.Sprintf("%s:%d", app.Config.Server.Host, app.Config.Server.Port)
	return &Server{
		router: router,
		app:    app,
		log:    log,
		http: &http.Server{
			Addr:              addr,
			Handler:           otelhttp.NewHandler(router, "job-board-api"),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler exposes the configured router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.log.Info("server starting", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("server shutting down")
	return s.http.Shutdown(ctx)
}
