// Command seed loads sample employers, job seekers, jobs and an application
// through the service layer. Accounts that already exist are reused.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"job-board-api/config"
	"job-board-api/internal/auth"
	"job-board-api/internal/database"
	"job-board-api/internal/logger"
	"job-board-api/internal/models"
	"job-board-api/internal/services"
	"job-board-api/internal/storage/postgres"
	"job-board-api/internal/storage/redisstore"
	"job-board-api/internal/transport/dto"

	"go.uber.org/zap"
)

const samplePassword = "password123"

func strPtr(s string) *string { return &s }

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	pool, err := database.NewConnectionPool(ctx, cfg.DB, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, log); err != nil {
		return err
	}

	profileRepo := postgres.NewProfileRepo(pool, log)
	jobRepo := postgres.NewJobRepo(pool, log)
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Expiration, cfg.JWT.Issuer)

	authSvc := services.NewAuthService(postgres.NewUserRepo(pool, log), profileRepo, tokens, redisstore.NoopDenylist{}, log)
	profileSvc := services.NewProfileService(profileRepo, log)
	jobSvc := services.NewJobService(jobRepo, log)
	appSvc := services.NewApplicationService(postgres.NewApplicationRepo(pool, log), jobRepo, services.StatusPolicy{}, log)

	employer, err := account(ctx, authSvc, "employer@example.com", models.RoleEmployer)
	if err != nil {
		return err
	}
	seeker, err := account(ctx, authSvc, "jobseeker@example.com", models.RoleJobSeeker)
	if err != nil {
		return err
	}

	if _, _, err := profileSvc.UpdateProfile(ctx, employer, &dto.UpdateProfileRequest{
		FirstName:          strPtr("John"),
		LastName:           strPtr("Doe"),
		Phone:              strPtr("555-123-4567"),
		CompanyName:        strPtr("Tech Solutions Inc."),
		CompanyDescription: strPtr("A leading technology company specializing in software development."),
	}); err != nil {
		return fmt.Errorf("employer profile: %w", err)
	}
	if _, _, err := profileSvc.UpdateProfile(ctx, seeker, &dto.UpdateProfileRequest{
		FirstName: strPtr("Jane"),
		LastName:  strPtr("Smith"),
		Phone:     strPtr("555-987-6543"),
		Address:   strPtr("123 Main St, Anytown, USA"),
		ResumeURL: strPtr("https://example.com/resume.pdf"),
	}); err != nil {
		return fmt.Errorf("job seeker profile: %w", err)
	}

	existing, err := jobSvc.ListEmployerJobs(ctx, employer, &dto.ListEmployerJobsRequest{}, services.NewPageRequest("", ""))
	if err != nil {
		return fmt.Errorf("list jobs: %w", err)
	}
	if existing.Pagination.TotalItems > 0 {
		log.Info("sample jobs already present, skipping", zap.Int("jobs", existing.Pagination.TotalItems))
		return nil
	}

	fullStack, err := jobSvc.CreateJob(ctx, employer, &dto.CreateJobRequest{
		Title:        "Full Stack Developer",
		Description:  "We are looking for a Full Stack Developer to join our team.",
		Location:     "New York, NY",
		SalaryRange:  strPtr("$80,000 - $120,000"),
		JobType:      string(models.JobTypeFullTime),
		Requirements: strPtr("Experience with Go, React, and SQL databases."),
	})
	if err != nil {
		return fmt.Errorf("job: %w", err)
	}
	if _, err := jobSvc.CreateJob(ctx, employer, &dto.CreateJobRequest{
		Title:        "Frontend Developer",
		Description:  "We are seeking a talented Frontend Developer to create amazing user experiences.",
		Location:     "Remote",
		SalaryRange:  strPtr("$70,000 - $100,000"),
		JobType:      string(models.JobTypeRemote),
		Requirements: strPtr("Experience with HTML, CSS, JavaScript, and modern frontend frameworks."),
	}); err != nil {
		return fmt.Errorf("job: %w", err)
	}

	_, err = appSvc.Apply(ctx, seeker, &dto.CreateApplicationRequest{
		JobID:       fullStack.ID,
		CoverLetter: strPtr("I am excited to apply for this position and believe my skills are a great match."),
	})
	if err != nil && !errors.Is(err, services.ErrAlreadyApplied) {
		return fmt.Errorf("application: %w", err)
	}

	log.Info("sample data created",
		zap.String("employer", employer.Email),
		zap.String("job_seeker", seeker.Email),
		zap.String("password", samplePassword))
	return nil
}

// account registers email or, when it is taken, logs in with the sample password.
func account(ctx context.Context, svc services.AuthService, email string, role models.Role) (models.Actor, error) {
	result, err := svc.Register(ctx, &dto.RegisterRequest{Email: email, Password: samplePassword, Role: string(role)})
	if errors.Is(err, services.ErrEmailTaken) {
		result, err = svc.Login(ctx, &dto.LoginRequest{Email: email, Password: samplePassword})
	}
	if err != nil {
		return models.Actor{}, fmt.Errorf("account %s: %w", email, err)
	}
	return models.Actor{ID: result.User.ID, Email: result.User.Email, Role: result.User.Role}, nil
}
