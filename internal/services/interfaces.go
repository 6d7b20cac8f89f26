package services

import (
	"context"

	"job-board-api/internal/auth"
	"job-board-api/internal/models"
	"job-board-api/internal/transport/dto"
)

// AuthResult is a user together with a freshly issued token.
type AuthResult struct {
	User  *models.User
	Token string
}

// JobPage is one page of jobs with its summary.
type JobPage struct {
	Jobs       []models.Job
	Pagination Pagination
}

// ApplicationPage is one page of applications with its summary.
type ApplicationPage struct {
	Applications []models.Application
	Pagination   Pagination
}

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*AuthResult, error)
	CurrentUser(ctx context.Context, actor models.Actor) (*models.User, *models.Profile, error)
	Logout(ctx context.Context, claims *auth.Claims) error
}

type ProfileService interface {
	GetProfile(ctx context.Context, actor models.Actor) (*models.Profile, error)
	// UpdateProfile replaces the caller's profile; created is true when it did not exist.
	UpdateProfile(ctx context.Context, actor models.Actor, req *dto.UpdateProfileRequest) (profile *models.Profile, created bool, err error)
}

type JobService interface {
	CreateJob(ctx context.Context, actor models.Actor, req *dto.CreateJobRequest) (*models.Job, error)
	GetJobByID(ctx context.Context, id int64) (*models.Job, error)
	ListJobs(ctx context.Context, req *dto.ListJobsRequest, page PageRequest) (*JobPage, error)
	ListEmployerJobs(ctx context.Context, actor models.Actor, req *dto.ListEmployerJobsRequest, page PageRequest) (*JobPage, error)
	UpdateJob(ctx context.Context, actor models.Actor, id int64, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, actor models.Actor, id int64) error
}

type ApplicationService interface {
	Apply(ctx context.Context, actor models.Actor, req *dto.CreateApplicationRequest) (*models.Application, error)
	GetApplicationByID(ctx context.Context, actor models.Actor, id int64) (*models.Application, error)
	ListJobApplications(ctx context.Context, actor models.Actor, jobID int64, req *dto.ListApplicationsRequest, page PageRequest) (*ApplicationPage, error)
	ListMyApplications(ctx context.Context, actor models.Actor, req *dto.ListApplicationsRequest, page PageRequest) (*ApplicationPage, error)
	UpdateApplicationStatus(ctx context.Context, actor models.Actor, id int64, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
}
