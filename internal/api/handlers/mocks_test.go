package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"job-board-api/internal/api/handlers"
	"job-board-api/internal/api/middleware"
	"job-board-api/internal/auth"
	"job-board-api/internal/models"
	"job-board-api/internal/services"
	"job-board-api/internal/storage/redisstore"
	"job-board-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockJobService is a mock implementation of services.JobService
type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) CreateJob(ctx context.Context, actor models.Actor, req *dto.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) GetJobByID(ctx context.Context, id int64) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) ListJobs(ctx context.Context, req *dto.ListJobsRequest, page services.PageRequest) (*services.JobPage, error) {
	args := m.Called(ctx, req, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.JobPage), args.Error(1)
}

func (m *MockJobService) ListEmployerJobs(ctx context.Context, actor models.Actor, req *dto.ListEmployerJobsRequest, page services.PageRequest) (*services.JobPage, error) {
	args := m.Called(ctx, actor, req, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.JobPage), args.Error(1)
}

func (m *MockJobService) UpdateJob(ctx context.Context, actor models.Actor, id int64, req *dto.UpdateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, actor, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) DeleteJob(ctx context.Context, actor models.Actor, id int64) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

var _ services.JobService = (*MockJobService)(nil)

// MockApplicationService is a mock implementation of services.ApplicationService
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Apply(ctx context.Context, actor models.Actor, req *dto.CreateApplicationRequest) (*models.Application, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationService) GetApplicationByID(ctx context.Context, actor models.Actor, id int64) (*models.Application, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationService) ListJobApplications(ctx context.Context, actor models.Actor, jobID int64, req *dto.ListApplicationsRequest, page services.PageRequest) (*services.ApplicationPage, error) {
	args := m.Called(ctx, actor, jobID, req, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ApplicationPage), args.Error(1)
}

func (m *MockApplicationService) ListMyApplications(ctx context.Context, actor models.Actor, req *dto.ListApplicationsRequest, page services.PageRequest) (*services.ApplicationPage, error) {
	args := m.Called(ctx, actor, req, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ApplicationPage), args.Error(1)
}

func (m *MockApplicationService) UpdateApplicationStatus(ctx context.Context, actor models.Actor, id int64, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	args := m.Called(ctx, actor, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

var _ services.ApplicationService = (*MockApplicationService)(nil)

// MockAuthService is a mock implementation of services.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*services.AuthResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.AuthResult), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*services.AuthResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.AuthResult), args.Error(1)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, actor models.Actor) (*models.User, *models.Profile, error) {
	args := m.Called(ctx, actor)
	var user *models.User
	if u := args.Get(0); u != nil {
		user = u.(*models.User)
	}
	var profile *models.Profile
	if p := args.Get(1); p != nil {
		profile = p.(*models.Profile)
	}
	return user, profile, args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}

var _ services.AuthService = (*MockAuthService)(nil)

// MockProfileService is a mock implementation of services.ProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, actor models.Actor) (*models.Profile, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, actor models.Actor, req *dto.UpdateProfileRequest) (*models.Profile, bool, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Profile), args.Bool(1), args.Error(2)
}

var _ services.ProfileService = (*MockProfileService)(nil)

// --- Helpers for Setup ---

var (
	testTokens = auth.NewTokenManager("handler-test-secret", time.Hour, "job-board-test")

	employerUser = &models.User{ID: 1, Email: "employer@example.com", Role: models.RoleEmployer}
	seekerUser   = &models.User{ID: 2, Email: "seeker@example.com", Role: models.RoleJobSeeker}
)

func actorOf(u *models.User) models.Actor {
	return models.Actor{ID: u.ID, Email: u.Email, Role: u.Role}
}

func tokenFor(t *testing.T, u *models.User) string {
	t.Helper()
	token, _, err := testTokens.Generate(u)
	require.NoError(t, err)
	return token
}

func newTestRouter() (*gin.Engine, gin.HandlerFunc) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router, middleware.JWTAuthMiddleware(testTokens, redisstore.NoopDenylist{}, zap.NewNop())
}

type apiResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    json.RawMessage  `json:"data"`
	Errors  []dto.FieldError `json:"errors"`
}

func doRequest(t *testing.T, router http.Handler, method, path, token string, body interface{}) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	var reader *bytes.Reader
	if raw, ok := body.(string); ok {
		reader = bytes.NewReader([]byte(raw))
	} else if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	var resp apiResponse
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp), recorder.Body.String())
	}
	return recorder, resp
}

var validate = handlers.NewValidator()
