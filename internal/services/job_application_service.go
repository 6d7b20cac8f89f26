package services

import (
	"context"
	"errors"
	"fmt"

	"job-board-api/internal/metrics"
	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"go.uber.org/zap"
)

type applicationService struct {
	appRepo storage.ApplicationRepository
	jobRepo storage.JobRepository
	policy  StatusPolicy
	log     *zap.Logger
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(appRepo storage.ApplicationRepository, jobRepo storage.JobRepository, policy StatusPolicy, log *zap.Logger) ApplicationService {
	return &applicationService{
		appRepo: appRepo,
		jobRepo: jobRepo,
		policy:  policy,
		log:     log.Named("application_service"),
	}
}

func parseApplicationStatus(raw string) (models.ApplicationStatus, error) {
	status := models.ApplicationStatus(raw)
	if !status.IsValid() {
		return "", invalidField("status", fmt.Sprintf("unknown application status %q", raw))
	}
	return status, nil
}

func jobOwner(app *models.Application) int64 {
	if app.Job == nil {
		return 0
	}
	return app.Job.EmployerID
}

func (s *applicationService) Apply(ctx context.Context, actor models.Actor, req *dto.CreateApplicationRequest) (*models.Application, error) {
	if err := requireRole(actor, models.RoleJobSeeker); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, mapRepoError(err, "fetching job to apply")
	}
	if job.Status != models.JobStatusActive {
		metrics.ObserveApplication("closed")
		return nil, ErrJobClosed
	}

	// Duplicates are rejected by the (job_id, applicant_id) unique constraint.
	app, err := s.appRepo.Create(ctx, &models.Application{
		JobID:       req.JobID,
		ApplicantID: actor.ID,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationStatusApplied,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrConflict):
			metrics.ObserveApplication("duplicate")
			return nil, ErrAlreadyApplied
		case errors.Is(err, storage.ErrForeignKey):
			// job removed between the lookup and the insert
			return nil, fmt.Errorf("%w: job %d", ErrNotFound, req.JobID)
		}
		s.log.Error("Apply: repository error", zap.Int64("job_id", req.JobID), zap.Error(err))
		return nil, mapRepoError(err, "creating application")
	}

	metrics.ObserveApplication("accepted")
	s.log.Info("Apply: application submitted",
		zap.Int64("application_id", app.ID),
		zap.Int64("job_id", app.JobID),
		zap.Int64("applicant_id", actor.ID))
	return app, nil
}

// GetApplicationByID is readable by the applicant and by the job's employer.
func (s *applicationService) GetApplicationByID(ctx context.Context, actor models.Actor, id int64) (*models.Application, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "getting application by ID")
	}

	if err := requireOwner(actor, app.ApplicantID, jobOwner(app)); err != nil {
		s.log.Warn("GetApplicationByID: forbidden attempt",
			zap.Int64("application_id", id),
			zap.Int64("user_id", actor.ID))
		return nil, fmt.Errorf("%w: not authorized to view this application", err)
	}
	return app, nil
}

func (s *applicationService) ListJobApplications(ctx context.Context, actor models.Actor, jobID int64, req *dto.ListApplicationsRequest, page PageRequest) (*ApplicationPage, error) {
	if err := requireRole(actor, models.RoleEmployer); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, mapRepoError(err, "fetching job for application listing")
	}
	if err := requireOwner(actor, job.EmployerID); err != nil {
		return nil, fmt.Errorf("%w: not authorized to view applications for this job", err)
	}

	filter := storage.ApplicationFilter{JobID: jobID}
	if req.Status != "" {
		status, err := parseApplicationStatus(req.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = status
	}
	return s.list(ctx, filter, page)
}

func (s *applicationService) ListMyApplications(ctx context.Context, actor models.Actor, req *dto.ListApplicationsRequest, page PageRequest) (*ApplicationPage, error) {
	if err := requireRole(actor, models.RoleJobSeeker); err != nil {
		return nil, err
	}

	filter := storage.ApplicationFilter{ApplicantID: actor.ID}
	if req.Status != "" {
		status, err := parseApplicationStatus(req.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = status
	}
	return s.list(ctx, filter, page)
}

func (s *applicationService) list(ctx context.Context, filter storage.ApplicationFilter, page PageRequest) (*ApplicationPage, error) {
	apps, total, err := s.appRepo.List(ctx, filter, page.storagePage())
	if err != nil {
		s.log.Error("ListApplications: repository error", zap.Error(err))
		return nil, mapRepoError(err, "listing applications")
	}
	return &ApplicationPage{Applications: apps, Pagination: NewPagination(total, page)}, nil
}

func (s *applicationService) UpdateApplicationStatus(ctx context.Context, actor models.Actor, id int64, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	if err := requireRole(actor, models.RoleEmployer); err != nil {
		return nil, err
	}

	status, err := parseApplicationStatus(req.Status)
	if err != nil {
		return nil, err
	}

	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "fetching application for status update")
	}
	if err := requireOwner(actor, jobOwner(app)); err != nil {
		s.log.Warn("UpdateApplicationStatus: forbidden attempt",
			zap.Int64("application_id", id),
			zap.Int64("user_id", actor.ID),
			zap.Int64("owner_id", jobOwner(app)))
		return nil, fmt.Errorf("%w: not authorized to update this application", err)
	}
	if err := s.policy.Check(app.Status, status); err != nil {
		return nil, err
	}

	updated, err := s.appRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		s.log.Error("UpdateApplicationStatus: repository error", zap.Int64("application_id", id), zap.Error(err))
		return nil, mapRepoError(err, "updating application status")
	}

	metrics.ObserveStatusChange(string(status))
	s.log.Info("UpdateApplicationStatus: status changed",
		zap.Int64("application_id", id),
		zap.String("from", string(app.Status)),
		zap.String("to", string(status)))
	return updated, nil
}
