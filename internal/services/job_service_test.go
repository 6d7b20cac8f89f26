package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"job-board-api/internal/logger"
	"job-board-api/internal/models"
	"job-board-api/internal/services"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupJobServiceTest() (context.Context, services.JobService, *MockJobRepository) {
	mockJobRepo := new(MockJobRepository)
	jobService := services.NewJobService(mockJobRepo, logger.NewNop())
	return context.Background(), jobService, mockJobRepo
}

func sampleJob(id, employerID int64, status models.JobStatus) *models.Job {
	now := time.Now()
	return &models.Job{
		ID:          id,
		Title:       "Backend Engineer",
		Description: "Build APIs",
		Location:    "Remote",
		JobType:     models.JobTypeFullTime,
		Status:      status,
		EmployerID:  employerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestJobService_CreateJob_Success(t *testing.T) {
	ctx, jobService, mockJobRepo := setupJobServiceTest()

	req := &dto.CreateJobRequest{
		Title:       "Backend Engineer",
		Description: "Build APIs",
		Location:    "Remote",
	}
	expected := sampleJob(10, employer.ID, models.JobStatusActive)

	mockJobRepo.On("Create", ctx, mock.MatchedBy(func(job *models.Job) bool {
		return job.EmployerID == employer.ID &&
			job.Status == models.JobStatusActive &&
			job.JobType == models.JobTypeFullTime &&
			job.Title == req.Title
	})).Return(expected, nil).Once()

	job, err := jobService.CreateJob(ctx, employer, req)

	require.NoError(t, err)
	assert.Equal(t, expected, job)
	mockJobRepo.AssertExpectations(t)
}

func TestJobService_CreateJob_JobSeekerForbidden(t *testing.T) {
	ctx, jobService, mockJobRepo := setupJobServiceTest()

	_, err := jobService.CreateJob(ctx, seeker, &dto.CreateJobRequest{Title: "x", Description: "y", Location: "z"})

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrForbidden)
	mockJobRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestJobService_CreateJob_RepoError(t *testing.T) {
	ctx, jobService, mockJobRepo := setupJobServiceTest()

	repoErr := errors.New("db connection failed")
	mockJobRepo.On("Create", ctx, mock.Anything).Return(nil, repoErr).Once()

	_, err := jobService.CreateJob(ctx, employer, &dto.CreateJobRequest{Title: "x", Description: "y", Location: "z"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "internal error during creating job")
	assert.ErrorIs(t, err, repoErr)
}

func TestJobService_GetJobByID(t *testing.T) {
	t.Run("closed jobs are still returned", func(t *testing.T) {
		ctx, jobService, mockJobRepo := setupJobServiceTest()
		expected := sampleJob(5, employer.ID, models.JobStatusClosed)
		mockJobRepo.On("GetByID", ctx, int64(5)).Return(expected, nil).Once()

		job, err := jobService.GetJobByID(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, models.JobStatusClosed, job.Status)
	})

	t.Run("not found", func(t *testing.T) {
		ctx, jobService, mockJobRepo := setupJobServiceTest()
		mockJobRepo.On("GetByID", ctx, int64(404)).Return(nil, storage.ErrNotFound).Once()

		_, err := jobService.GetJobByID(ctx, 404)

		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestJobService_ListJobs_DefaultsToActive(t *testing.T) {
	ctx, jobService, mockJobRepo := setupJobServiceTest()

	filter := storage.JobFilter{Title: "engineer", Status: models.JobStatusActive}
	mockJobRepo.On("List", ctx, filter, storage.Page{Limit: 10, Offset: 0}).
		Return([]models.Job{*sampleJob(1, employer.ID, models.JobStatusActive)}, 1, nil).Once()

	page, err := jobService.ListJobs(ctx, &dto.ListJobsRequest{Title: "engineer"}, services.NewPageRequest("", ""))

	require.NoError(t, err)
	assert.Len(t, page.Jobs, 1)
	assert.Equal(t, services.Pagination{TotalItems: 1, TotalPages: 1, CurrentPage: 1, ItemsPerPage: 10}, page.Pagination)
	mockJobRepo.AssertExpectations(t)
}

func TestJobService_ListJobs_PaginationPastTheEnd(t *testing.T) {
	ctx, jobService, mockJobRepo := setupJobServiceTest()

	filter := storage.JobFilter{Status: models.JobStatusActive, JobType: models.JobTypeRemote}
	mockJobRepo.On("List", ctx, filter, storage.Page{Limit: 10, Offset: 20}).
		Return([]models.Job{}, 25, nil).Once()

	page, err := jobService.ListJobs(ctx, &dto.ListJobsRequest{JobType: "remote"}, services.NewPageRequest("3", "10"))

	require.NoError(t, err)
	assert.Empty(t, page.Jobs)
	assert.Equal(t, 25, page.Pagination.TotalItems)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.Equal(t, 3, page.Pagination.CurrentPage)
	assert.Equal(t, 10, page.Pagination.ItemsPerPage)
}

func TestJobService_ListJobs_ExplicitClosedStatus(t *testing.T) {
	ctx, jobService, mockJobRepo := setupJobServiceTest()

	filter := storage.JobFilter{Status: models.JobStatusClosed}
	mockJobRepo.On("List", ctx, filter, mock.Anything).Return([]models.Job{}, 0, nil).Once()

	page, err := jobService.ListJobs(ctx, &dto.ListJobsRequest{Status: "closed"}, services.NewPageRequest("", ""))

	require.NoError(t, err)
	assert.Equal(t, 0, page.Pagination.TotalPages)
	mockJobRepo.AssertExpectations(t)
}

func TestJobService_ListJobs_InvalidType(t *testing.T) {
	ctx, jobService, _ := setupJobServiceTest()

	_, err := jobService.ListJobs(ctx, &dto.ListJobsRequest{JobType: "gig"}, services.NewPageRequest("", ""))

	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestJobService_ListEmployerJobs_FiltersByOwnerBeforePaging(t *testing.T) {
	ctx, jobService, mockJobRepo := setupJobServiceTest()

	filter := storage.JobFilter{EmployerID: employer.ID}
	mockJobRepo.On("List", ctx, filter, storage.Page{Limit: 5, Offset: 5}).
		Return([]models.Job{*sampleJob(7, employer.ID, models.JobStatusClosed)}, 6, nil).Once()

	page, err := jobService.ListEmployerJobs(ctx, employer, &dto.ListEmployerJobsRequest{}, services.NewPageRequest("2", "5"))

	require.NoError(t, err)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	mockJobRepo.AssertExpectations(t)
}

func TestJobService_ListEmployerJobs_JobSeekerForbidden(t *testing.T) {
	ctx, jobService, _ := setupJobServiceTest()

	_, err := jobService.ListEmployerJobs(ctx, seeker, &dto.ListEmployerJobsRequest{}, services.NewPageRequest("", ""))

	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestJobService_UpdateJob_Success(t *testing.T) {
	ctx, jobService, mockJobRepo := setupJobServiceTest()

	existing := sampleJob(9, employer.ID, models.JobStatusActive)
	closed := models.JobStatusClosed
	updated := sampleJob(9, employer.ID, models.JobStatusClosed)
	updated.Title = "Senior Backend Engineer"

	mockJobRepo.On("GetByID", ctx, int64(9)).Return(existing, nil).Once()
	mockJobRepo.On("Update", ctx, storage.UpdateJobParams{
		ID:          9,
		Title:       "Senior Backend Engineer",
		Description: "Build APIs",
		Location:    "Remote",
		Status:      &closed,
	}).Return(updated, nil).Once()

	job, err := jobService.UpdateJob(ctx, employer, 9, &dto.UpdateJobRequest{
		Title:       "Senior Backend Engineer",
		Description: "Build APIs",
		Location:    "Remote",
		Status:      strPtr("closed"),
	})

	require.NoError(t, err)
	assert.Equal(t, updated, job)
	mockJobRepo.AssertExpectations(t)
}

func TestJobService_UpdateJob_NonOwnerForbidden(t *testing.T) {
	ctx, jobService, mockJobRepo := setupJobServiceTest()

	mockJobRepo.On("GetByID", ctx, int64(9)).Return(sampleJob(9, employer.ID, models.JobStatusActive), nil).Once()

	_, err := jobService.UpdateJob(ctx, otherEmployer, 9, &dto.UpdateJobRequest{Title: "t", Description: "d", Location: "l"})

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrForbidden)
	assert.Contains(t, err.Error(), "not authorized to update this job")
	mockJobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestJobService_UpdateJob_NotFound(t *testing.T) {
	ctx, jobService, mockJobRepo := setupJobServiceTest()

	mockJobRepo.On("GetByID", ctx, int64(9)).Return(nil, storage.ErrNotFound).Once()

	_, err := jobService.UpdateJob(ctx, employer, 9, &dto.UpdateJobRequest{Title: "t", Description: "d", Location: "l"})

	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestJobService_DeleteJob(t *testing.T) {
	t.Run("owner deletes", func(t *testing.T) {
		ctx, jobService, mockJobRepo := setupJobServiceTest()
		mockJobRepo.On("GetByID", ctx, int64(3)).Return(sampleJob(3, employer.ID, models.JobStatusActive), nil).Once()
		mockJobRepo.On("Delete", ctx, int64(3)).Return(nil).Once()

		require.NoError(t, jobService.DeleteJob(ctx, employer, 3))
		mockJobRepo.AssertExpectations(t)
	})

	t.Run("non owner is forbidden", func(t *testing.T) {
		ctx, jobService, mockJobRepo := setupJobServiceTest()
		mockJobRepo.On("GetByID", ctx, int64(3)).Return(sampleJob(3, employer.ID, models.JobStatusActive), nil).Once()

		err := jobService.DeleteJob(ctx, otherEmployer, 3)

		assert.ErrorIs(t, err, services.ErrForbidden)
		mockJobRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
