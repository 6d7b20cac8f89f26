package storage

import (
	"context"
	"time"

	"job-board-api/internal/models"
)

// Page bounds a list query.
type Page struct {
	Limit  int
	Offset int
}

// JobFilter narrows job listings. Empty fields are not applied.
type JobFilter struct {
	Title      string
	Location   string
	JobType    models.JobType
	Status     models.JobStatus
	EmployerID int64
}

// ApplicationFilter narrows application listings. Zero fields are not applied.
type ApplicationFilter struct {
	JobID       int64
	ApplicantID int64
	Status      models.ApplicationStatus
}

// UpdateJobParams carries a job update. Required fields are always written;
// nil optional fields keep their stored value.
type UpdateJobParams struct {
	ID           int64
	Title        string
	Description  string
	Location     string
	SalaryRange  *string
	JobType      *models.JobType
	Requirements *string
	Status       *models.JobStatus
}

// UserRepository defines the interface for identity data operations.
type UserRepository interface {
	// CreateWithProfile inserts the user and its initial profile atomically.
	CreateWithProfile(ctx context.Context, user *models.User, profile *models.ProfileBase) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// ProfileRepository defines the interface for profile data operations.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Profile, error)
	// Upsert replaces every profile field, creating the row if missing.
	// created reports whether a new row was inserted.
	Upsert(ctx context.Context, profile *models.Profile) (p *models.Profile, created bool, err error)
}

// JobRepository defines the interface for job posting data operations.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) (*models.Job, error)
	GetByID(ctx context.Context, id int64) (*models.Job, error)
	List(ctx context.Context, filter JobFilter, page Page) ([]models.Job, int, error)
	Update(ctx context.Context, params UpdateJobParams) (*models.Job, error)
	Delete(ctx context.Context, id int64) error
}

// ApplicationRepository defines the interface for job application data operations.
type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) (*models.Application, error)
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	List(ctx context.Context, filter ApplicationFilter, page Page) ([]models.Application, int, error)
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error)
}

// TokenDenylist records revoked access tokens until they would have expired.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
