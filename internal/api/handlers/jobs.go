package handlers

import (
	"net/http"

	"job-board-api/internal/api/middleware"
	"job-board-api/internal/services"
	"job-board-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// JobHandler holds dependencies for job operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
	log       *zap.Logger
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate, log *zap.Logger) *JobHandler {
	return &JobHandler{service: service, validator: validate, log: log}
}

func jobList(page *services.JobPage) dto.JobListResponse {
	jobs := make([]dto.JobResponse, 0, len(page.Jobs))
	for i := range page.Jobs {
		jobs = append(jobs, MapJobModelToJobResponse(&page.Jobs[i]))
	}
	return dto.JobListResponse{Jobs: jobs, Pagination: mapPagination(page.Pagination)}
}

// ListJobs godoc
//
//	@Summary		List jobs
//	@Description	Public listing, newest first. Only active jobs unless status is given.
//	@Tags			Jobs
//	@Produce		json
//	@Param			title		query		string	false	"Title contains"
//	@Param			location	query		string	false	"Location contains"
//	@Param			jobType		query		string	false	"Job type"	Enums(full-time, part-time, contract, internship, remote)
//	@Param			status		query		string	false	"Job status"	Enums(active, closed)	default(active)
//	@Param			page		query		int		false	"Page"	default(1)
//	@Param			limit		query		int		false	"Page size"	default(10)
//	@Success		200			{object}	dto.Response{data=dto.JobListResponse}
//	@Failure		400			{object}	dto.Response
//	@Router			/jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dto.ListJobsRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}

	page, err := h.service.ListJobs(c.Request.Context(), &req, pageFromQuery(c))
	if err != nil {
		writeServiceError(c, h.log, err, errorMessages{})
		return
	}
	respondOK(c, http.StatusOK, "Jobs retrieved successfully", jobList(page))
}

// GetJobByID godoc
//
//	@Summary		Get a job by ID
//	@Description	Public; closed jobs are still returned.
//	@Tags			Jobs
//	@Produce		json
//	@Param			id	path		int	true	"Job ID"
//	@Success		200	{object}	dto.Response{data=dto.JobEnvelope}
//	@Failure		400	{object}	dto.Response	"Invalid ID format"
//	@Failure		404	{object}	dto.Response	"Job not found"
//	@Router			/jobs/{id} [get]
func (h *JobHandler) GetJobByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "job")
	if !ok {
		return
	}

	job, err := h.service.GetJobByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.log, err, errorMessages{NotFound: "Job not found"})
		return
	}
	respondOK(c, http.StatusOK, "Job retrieved successfully", dto.JobEnvelope{Job: MapJobModelToJobResponse(job)})
}

// CreateJob godoc
//
//	@Summary		Create a job posting
//	@Description	Employer only. The authenticated user becomes the owner.
//	@Tags			Jobs
//	@Accept			json
//	@Produce		json
//	@Param			job	body		dto.CreateJobRequest	true	"Job details"
//	@Success		201	{object}	dto.Response{data=dto.JobEnvelope}
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		403	{object}	dto.Response
//	@Router			/jobs [post]
//	@Security		BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	var req dto.CreateJobRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	job, err := h.service.CreateJob(c.Request.Context(), actor, &req)
	if err != nil {
		writeServiceError(c, h.log, err, errorMessages{})
		return
	}
	respondOK(c, http.StatusCreated, "Job created successfully", dto.JobEnvelope{Job: MapJobModelToJobResponse(job)})
}

// UpdateJob godoc
//
//	@Summary		Update a job posting
//	@Description	Owning employer only.
//	@Tags			Jobs
//	@Accept			json
//	@Produce		json
//	@Param			id	path		int						true	"Job ID"
//	@Param			job	body		dto.UpdateJobRequest	true	"Job details"
//	@Success		200	{object}	dto.Response{data=dto.JobEnvelope}
//	@Failure		400	{object}	dto.Response
//	@Failure		403	{object}	dto.Response	"Not the owner"
//	@Failure		404	{object}	dto.Response
//	@Router			/jobs/{id} [put]
//	@Security		BearerAuth
func (h *JobHandler) UpdateJob(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}
	id, ok := parseIDParam(c, "id", "job")
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	job, err := h.service.UpdateJob(c.Request.Context(), actor, id, &req)
	if err != nil {
		writeServiceError(c, h.log, err, errorMessages{
			NotFound:  "Job not found",
			Forbidden: "Not authorized to update this job",
		})
		return
	}
	respondOK(c, http.StatusOK, "Job updated successfully", dto.JobEnvelope{Job: MapJobModelToJobResponse(job)})
}

// DeleteJob godoc
//
//	@Summary		Delete a job posting
//	@Description	Owning employer only. Applications to the job are removed too.
//	@Tags			Jobs
//	@Produce		json
//	@Param			id	path		int	true	"Job ID"
//	@Success		200	{object}	dto.Response
//	@Failure		403	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Router			/jobs/{id} [delete]
//	@Security		BearerAuth
func (h *JobHandler) DeleteJob(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}
	id, ok := parseIDParam(c, "id", "job")
	if !ok {
		return
	}

	if err := h.service.DeleteJob(c.Request.Context(), actor, id); err != nil {
		writeServiceError(c, h.log, err, errorMessages{
			NotFound:  "Job not found",
			Forbidden: "Not authorized to delete this job",
		})
		return
	}
	respondOK(c, http.StatusOK, "Job deleted successfully", nil)
}

// ListEmployerJobs godoc
//
//	@Summary		List my job postings
//	@Description	Employer only; all statuses unless filtered.
//	@Tags			Jobs
//	@Produce		json
//	@Param			status	query		string	false	"Job status"	Enums(active, closed)
//	@Param			page	query		int		false	"Page"	default(1)
//	@Param			limit	query		int		false	"Page size"	default(10)
//	@Success		200		{object}	dto.Response{data=dto.JobListResponse}
//	@Failure		401		{object}	dto.Response
//	@Failure		403		{object}	dto.Response
//	@Router			/jobs/employer/me [get]
//	@Security		BearerAuth
func (h *JobHandler) ListEmployerJobs(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	var req dto.ListEmployerJobsRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}

	page, err := h.service.ListEmployerJobs(c.Request.Context(), actor, &req, pageFromQuery(c))
	if err != nil {
		writeServiceError(c, h.log, err, errorMessages{})
		return
	}
	respondOK(c, http.StatusOK, "Jobs retrieved successfully", jobList(page))
}
