package services

import (
	"context"
	"fmt"

	"job-board-api/internal/metrics"
	"job-board-api/internal/models"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"go.uber.org/zap"
)

type jobService struct {
	jobRepo storage.JobRepository
	log     *zap.Logger
}

// NewJobService creates a new instance of JobService.
func NewJobService(jobRepo storage.JobRepository, log *zap.Logger) JobService {
	return &jobService{jobRepo: jobRepo, log: log.Named("job_service")}
}

func parseJobType(raw string) (models.JobType, error) {
	jobType := models.JobType(raw)
	if !jobType.IsValid() {
		return "", invalidField("jobType", fmt.Sprintf("unknown job type %q", raw))
	}
	return jobType, nil
}

func parseJobStatus(raw string) (models.JobStatus, error) {
	status := models.JobStatus(raw)
	if !status.IsValid() {
		return "", invalidField("status", fmt.Sprintf("unknown job status %q", raw))
	}
	return status, nil
}

func (s *jobService) CreateJob(ctx context.Context, actor models.Actor, req *dto.CreateJobRequest) (*models.Job, error) {
	if err := requireRole(actor, models.RoleEmployer); err != nil {
		return nil, err
	}

	jobType := models.JobTypeFullTime
	if req.JobType != "" {
		parsed, err := parseJobType(req.JobType)
		if err != nil {
			return nil, err
		}
		jobType = parsed
	}

	job, err := s.jobRepo.Create(ctx, &models.Job{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		SalaryRange:  req.SalaryRange,
		JobType:      jobType,
		Requirements: req.Requirements,
		Status:       models.JobStatusActive,
		EmployerID:   actor.ID,
	})
	if err != nil {
		s.log.Error("CreateJob: repository error", zap.Int64("employer_id", actor.ID), zap.Error(err))
		return nil, mapRepoError(err, "creating job")
	}

	metrics.ObserveJobCreated()
	s.log.Info("CreateJob: job created", zap.Int64("job_id", job.ID), zap.Int64("employer_id", actor.ID))
	return job, nil
}

// GetJobByID is public and ignores status so closed jobs stay reachable by link.
func (s *jobService) GetJobByID(ctx context.Context, id int64) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "getting job by ID")
	}
	return job, nil
}

func (s *jobService) ListJobs(ctx context.Context, req *dto.ListJobsRequest, page PageRequest) (*JobPage, error) {
	filter := storage.JobFilter{
		Title:    req.Title,
		Location: req.Location,
		Status:   models.JobStatusActive,
	}
	if req.Status != "" {
		status, err := parseJobStatus(req.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = status
	}
	if req.JobType != "" {
		jobType, err := parseJobType(req.JobType)
		if err != nil {
			return nil, err
		}
		filter.JobType = jobType
	}
	return s.list(ctx, filter, page)
}

func (s *jobService) ListEmployerJobs(ctx context.Context, actor models.Actor, req *dto.ListEmployerJobsRequest, page PageRequest) (*JobPage, error) {
	if err := requireRole(actor, models.RoleEmployer); err != nil {
		return nil, err
	}
	filter := storage.JobFilter{EmployerID: actor.ID}
	if req.Status != "" {
		status, err := parseJobStatus(req.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = status
	}
	return s.list(ctx, filter, page)
}

func (s *jobService) list(ctx context.Context, filter storage.JobFilter, page PageRequest) (*JobPage, error) {
	jobs, total, err := s.jobRepo.List(ctx, filter, page.storagePage())
	if err != nil {
		s.log.Error("ListJobs: repository error", zap.Error(err))
		return nil, mapRepoError(err, "listing jobs")
	}
	return &JobPage{Jobs: jobs, Pagination: NewPagination(total, page)}, nil
}

func (s *jobService) UpdateJob(ctx context.Context, actor models.Actor, id int64, req *dto.UpdateJobRequest) (*models.Job, error) {
	if err := requireRole(actor, models.RoleEmployer); err != nil {
		return nil, err
	}

	existingJob, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "fetching job for update")
	}

	// Authorization check
	if err := requireOwner(actor, existingJob.EmployerID); err != nil {
		s.log.Warn("UpdateJob: forbidden attempt",
			zap.Int64("job_id", id),
			zap.Int64("user_id", actor.ID),
			zap.Int64("owner_id", existingJob.EmployerID))
		return nil, fmt.Errorf("%w: not authorized to update this job", err)
	}

	params := storage.UpdateJobParams{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		SalaryRange:  req.SalaryRange,
		Requirements: req.Requirements,
	}
	if req.JobType != nil {
		jobType, err := parseJobType(*req.JobType)
		if err != nil {
			return nil, err
		}
		params.JobType = &jobType
	}
	if req.Status != nil {
		status, err := parseJobStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		params.Status = &status
	}

	updatedJob, err := s.jobRepo.Update(ctx, params)
	if err != nil {
		s.log.Error("UpdateJob: repository error", zap.Int64("job_id", id), zap.Error(err))
		return nil, mapRepoError(err, "updating job")
	}
	return updatedJob, nil
}

func (s *jobService) DeleteJob(ctx context.Context, actor models.Actor, id int64) error {
	if err := requireRole(actor, models.RoleEmployer); err != nil {
		return err
	}

	existingJob, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return mapRepoError(err, "fetching job for delete check")
	}

	// Authorization Check
	if err := requireOwner(actor, existingJob.EmployerID); err != nil {
		s.log.Warn("DeleteJob: forbidden attempt",
			zap.Int64("job_id", id),
			zap.Int64("user_id", actor.ID),
			zap.Int64("owner_id", existingJob.EmployerID))
		return fmt.Errorf("%w: not authorized to delete this job", err)
	}

	if err := s.jobRepo.Delete(ctx, id); err != nil {
		s.log.Error("DeleteJob: repository error", zap.Int64("job_id", id), zap.Error(err))
		return mapRepoError(err, "deleting job")
	}
	s.log.Info("DeleteJob: job deleted", zap.Int64("job_id", id))
	return nil
}
