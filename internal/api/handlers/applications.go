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

// ApplicationHandler holds dependencies for job application operations.
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
	log       *zap.Logger
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate, log *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{service: service, validator: validate, log: log}
}

func applicationList(page *services.ApplicationPage) dto.ApplicationListResponse {
	apps := make([]dto.ApplicationResponse, 0, len(page.Applications))
	for i := range page.Applications {
		apps = append(apps, MapApplicationModelToResponse(&page.Applications[i]))
	}
	return dto.ApplicationListResponse{Applications: apps, Pagination: mapPagination(page.Pagination)}
}

// Apply godoc
//
//	@Summary		Apply for a job
//	@Description	Job seeker only. One application per job; the job must be active.
//	@Tags			Applications
//	@Accept			json
//	@Produce		json
//	@Param			application	body		dto.CreateApplicationRequest	true	"Application"
//	@Success		201			{object}	dto.Response{data=dto.ApplicationEnvelope}
//	@Failure		400			{object}	dto.Response	"Validation error or job closed"
//	@Failure		403			{object}	dto.Response
//	@Failure		404			{object}	dto.Response	"Job not found"
//	@Failure		409			{object}	dto.Response	"Already applied"
//	@Router			/applications [post]
//	@Security		BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	var req dto.CreateApplicationRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	app, err := h.service.Apply(c.Request.Context(), actor, &req)
	if err != nil {
		writeServiceError(c, h.log, err, errorMessages{NotFound: "Job not found"})
		return
	}
	respondOK(c, http.StatusCreated, "Application submitted successfully",
		dto.ApplicationEnvelope{Application: MapApplicationModelToResponse(app)})
}

// ListJobApplications godoc
//
//	@Summary		List applications for a job
//	@Description	Owning employer only.
//	@Tags			Applications
//	@Produce		json
//	@Param			jobId	path		int		true	"Job ID"
//	@Param			status	query		string	false	"Application status"	Enums(applied, reviewed, interviewed, rejected, hired)
//	@Param			page	query		int		false	"Page"	default(1)
//	@Param			limit	query		int		false	"Page size"	default(10)
//	@Success		200		{object}	dto.Response{data=dto.ApplicationListResponse}
//	@Failure		403		{object}	dto.Response
//	@Failure		404		{object}	dto.Response
//	@Router			/applications/job/{jobId} [get]
//	@Security		BearerAuth
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}
	jobID, ok := parseIDParam(c, "jobId", "job")
	if !ok {
		return
	}

	var req dto.ListApplicationsRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}

	page, err := h.service.ListJobApplications(c.Request.Context(), actor, jobID, &req, pageFromQuery(c))
	if err != nil {
		writeServiceError(c, h.log, err, errorMessages{
			NotFound:  "Job not found",
			Forbidden: "Not authorized to view applications for this job",
		})
		return
	}
	respondOK(c, http.StatusOK, "Applications retrieved successfully", applicationList(page))
}

// ListMyApplications godoc
//
//	@Summary		List my applications
//	@Tags			Applications
//	@Produce		json
//	@Param			status	query		string	false	"Application status"	Enums(applied, reviewed, interviewed, rejected, hired)
//	@Param			page	query		int		false	"Page"	default(1)
//	@Param			limit	query		int		false	"Page size"	default(10)
//	@Success		200		{object}	dto.Response{data=dto.ApplicationListResponse}
//	@Failure		403		{object}	dto.Response
//	@Router			/applications/me [get]
//	@Security		BearerAuth
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	var req dto.ListApplicationsRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}

	page, err := h.service.ListMyApplications(c.Request.Context(), actor, &req, pageFromQuery(c))
	if err != nil {
		writeServiceError(c, h.log, err, errorMessages{})
		return
	}
	respondOK(c, http.StatusOK, "Applications retrieved successfully", applicationList(page))
}

// GetApplicationByID godoc
//
//	@Summary		Get an application
//	@Description	Visible to the applicant and to the employer owning the job.
//	@Tags			Applications
//	@Produce		json
//	@Param			id	path		int	true	"Application ID"
//	@Success		200	{object}	dto.Response{data=dto.ApplicationEnvelope}
//	@Failure		403	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Router			/applications/{id} [get]
//	@Security		BearerAuth
func (h *ApplicationHandler) GetApplicationByID(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}
	id, ok := parseIDParam(c, "id", "application")
	if !ok {
		return
	}

	app, err := h.service.GetApplicationByID(c.Request.Context(), actor, id)
	if err != nil {
		writeServiceError(c, h.log, err, errorMessages{
			NotFound:  "Application not found",
			Forbidden: "Not authorized to view this application",
		})
		return
	}
	respondOK(c, http.StatusOK, "Application retrieved successfully",
		dto.ApplicationEnvelope{Application: MapApplicationModelToResponse(app)})
}

// UpdateApplicationStatus godoc
//
//	@Summary		Update an application's status
//	@Description	Employer owning the job only.
//	@Tags			Applications
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int									true	"Application ID"
//	@Param			status	body		dto.UpdateApplicationStatusRequest	true	"New status"
//	@Success		200		{object}	dto.Response{data=dto.ApplicationEnvelope}
//	@Failure		400		{object}	dto.Response
//	@Failure		403		{object}	dto.Response
//	@Failure		404		{object}	dto.Response
//	@Router			/applications/{id}/status [put]
//	@Security		BearerAuth
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	actor, err := middleware.GetActorFromContext(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}
	id, ok := parseIDParam(c, "id", "application")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	app, err := h.service.UpdateApplicationStatus(c.Request.Context(), actor, id, &req)
	if err != nil {
		writeServiceError(c, h.log, err, errorMessages{
			NotFound:  "Application not found",
			Forbidden: "Not authorized to update this application",
		})
		return
	}
	respondOK(c, http.StatusOK, "Application status updated successfully",
		dto.ApplicationEnvelope{Application: MapApplicationModelToResponse(app)})
}
