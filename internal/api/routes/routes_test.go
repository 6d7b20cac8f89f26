package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"job-board-api/internal/api/middleware"
	"job-board-api/internal/api/routes"
	"job-board-api/internal/app"
	"job-board-api/internal/auth"
	"job-board-api/internal/models"
	"job-board-api/internal/storage/redisstore"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var tokens = auth.NewTokenManager("routes-test-secret", time.Hour, "job-board-test")

// stubHandlers answers every route with 204 so tests observe only the
// middleware chain in front of it.
type stubHandlers struct{}

func ok(c *gin.Context) { c.Status(http.StatusNoContent) }

func (stubHandlers) Register(c *gin.Context)                { ok(c) }
func (stubHandlers) Login(c *gin.Context)                   { ok(c) }
func (stubHandlers) CurrentUser(c *gin.Context)             { ok(c) }
func (stubHandlers) Logout(c *gin.Context)                  { ok(c) }
func (stubHandlers) ListJobs(c *gin.Context)                { ok(c) }
func (stubHandlers) GetJobByID(c *gin.Context)              { ok(c) }
func (stubHandlers) CreateJob(c *gin.Context)               { ok(c) }
func (stubHandlers) UpdateJob(c *gin.Context)               { ok(c) }
func (stubHandlers) DeleteJob(c *gin.Context)               { ok(c) }
func (stubHandlers) ListEmployerJobs(c *gin.Context)        { ok(c) }
func (stubHandlers) Apply(c *gin.Context)                   { ok(c) }
func (stubHandlers) ListJobApplications(c *gin.Context)     { ok(c) }
func (stubHandlers) ListMyApplications(c *gin.Context)      { ok(c) }
func (stubHandlers) GetApplicationByID(c *gin.Context)      { ok(c) }
func (stubHandlers) UpdateApplicationStatus(c *gin.Context) { ok(c) }
func (stubHandlers) GetProfile(c *gin.Context)              { ok(c) }
func (stubHandlers) UpdateProfile(c *gin.Context)           { ok(c) }

func setupRouter(limiter gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	authMiddleware := middleware.JWTAuthMiddleware(tokens, redisstore.NoopDenylist{}, zap.NewNop())
	h := stubHandlers{}
	routes.RegisterAuthRoutes(api, h, authMiddleware, limiter)
	routes.RegisterJobRoutes(api, h, authMiddleware)
	routes.RegisterApplicationRoutes(api, h, authMiddleware)
	routes.RegisterProfileRoutes(api, h, authMiddleware)
	return router
}

func tokenFor(t *testing.T, role models.Role) string {
	t.Helper()
	token, _, err := tokens.Generate(&models.User{ID: 10, Email: "u@example.com", Role: role})
	require.NoError(t, err)
	return token
}

func TestRouteAccess(t *testing.T) {
	router := setupRouter(func(c *gin.Context) { c.Next() })

	const (
		anon     = models.Role("")
		employer = models.RoleEmployer
		seeker   = models.RoleJobSeeker
	)

	tests := []struct {
		method string
		path   string
		role   models.Role
		want   int
	}{
		{http.MethodPost, "/api/auth/register", anon, http.StatusNoContent},
		{http.MethodPost, "/api/auth/login", anon, http.StatusNoContent},
		{http.MethodGet, "/api/auth/me", anon, http.StatusUnauthorized},
		{http.MethodGet, "/api/auth/me", seeker, http.StatusNoContent},
		{http.MethodPost, "/api/auth/logout", employer, http.StatusNoContent},

		{http.MethodGet, "/api/jobs", anon, http.StatusNoContent},
		{http.MethodGet, "/api/jobs/1", anon, http.StatusNoContent},
		{http.MethodPost, "/api/jobs", anon, http.StatusUnauthorized},
		{http.MethodPost, "/api/jobs", seeker, http.StatusForbidden},
		{http.MethodPost, "/api/jobs", employer, http.StatusNoContent},
		{http.MethodPut, "/api/jobs/1", seeker, http.StatusForbidden},
		{http.MethodDelete, "/api/jobs/1", employer, http.StatusNoContent},
		{http.MethodGet, "/api/jobs/employer/me", seeker, http.StatusForbidden},
		{http.MethodGet, "/api/jobs/employer/me", employer, http.StatusNoContent},

		{http.MethodPost, "/api/applications", anon, http.StatusUnauthorized},
		{http.MethodPost, "/api/applications", employer, http.StatusForbidden},
		{http.MethodPost, "/api/applications", seeker, http.StatusNoContent},
		{http.MethodGet, "/api/applications/me", employer, http.StatusForbidden},
		{http.MethodGet, "/api/applications/me", seeker, http.StatusNoContent},
		{http.MethodGet, "/api/applications/job/1", seeker, http.StatusForbidden},
		{http.MethodGet, "/api/applications/job/1", employer, http.StatusNoContent},
		{http.MethodGet, "/api/applications/1", seeker, http.StatusNoContent},
		{http.MethodGet, "/api/applications/1", employer, http.StatusNoContent},
		{http.MethodPut, "/api/applications/1/status", seeker, http.StatusForbidden},
		{http.MethodPut, "/api/applications/1/status", employer, http.StatusNoContent},

		{http.MethodGet, "/api/profile", anon, http.StatusUnauthorized},
		{http.MethodPut, "/api/profile", employer, http.StatusNoContent},
	}

	for _, tt := range tests {
		name := tt.method + " " + tt.path + " as " + string(tt.role)
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.role != anon {
				req.Header.Set("Authorization", "Bearer "+tokenFor(t, tt.role))
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, tt.want, recorder.Code)
		})
	}
}

func TestRegisterAuthRoutes_LimiterOnlyGuardsCredentials(t *testing.T) {
	blocked := func(c *gin.Context) { c.AbortWithStatus(http.StatusTooManyRequests) }
	router := setupRouter(blocked)

	for _, path := range []string{"/api/auth/register", "/api/auth/login"} {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, path, nil))
		assert.Equal(t, http.StatusTooManyRequests, recorder.Code, path)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleJobSeeker))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.RegisterRoutes(router, &app.Application{
		Logger:   zap.NewNop(),
		Tokens:   tokens,
		Denylist: redisstore.NoopDenylist{},
	})

	registered := map[string]bool{}
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"GET /api/health",
		"GET /metrics",
		"GET /api/jobs",
		"PUT /api/applications/:id/status",
		"GET /swagger/*any",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Endpoint not found")
}
