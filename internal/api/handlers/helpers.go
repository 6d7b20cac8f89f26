package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"job-board-api/internal/models"
	"job-board-api/internal/services"
	"job-board-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator that reports fields by their JSON or
// query parameter name.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// FormatValidationErrors converts validator failures into response field errors.
func FormatValidationErrors(err error) []dto.FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []dto.FieldError{{Field: "body", Message: err.Error()}}
	}
	out := make([]dto.FieldError, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		message := fmt.Sprintf("Field '%s' failed on the '%s' rule", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", fieldName)
		case "email":
			message = "Please provide a valid email"
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters long", fieldName, fieldError.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters long", fieldName, fieldError.Param())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", fieldName, strings.ReplaceAll(fieldError.Param(), " ", ", "))
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", fieldName, fieldError.Param())
		case "url":
			message = fmt.Sprintf("%s must be a valid URL", fieldName)
		}
		out = append(out, dto.FieldError{Field: fieldName, Message: message})
	}
	return out
}

// bindJSON decodes and validates the body, writing the 400 response on failure.
func bindJSON(c *gin.Context, v *validator.Validate, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", dto.FieldError{Field: "body", Message: err.Error()})
		return false
	}
	if err := v.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation error", FormatValidationErrors(err)...)
		return false
	}
	return true
}

// bindQuery decodes and validates query filters.
func bindQuery(c *gin.Context, v *validator.Validate, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query parameters", dto.FieldError{Field: "query", Message: err.Error()})
		return false
	}
	if err := v.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation error", FormatValidationErrors(err)...)
		return false
	}
	return true
}

// pageFromQuery reads page and limit leniently.
func pageFromQuery(c *gin.Context) services.PageRequest {
	return services.NewPageRequest(c.Query("page"), c.Query("limit"))
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *gin.Context, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s ID format", label))
		return 0, false
	}
	return id, true
}

func respondOK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, dto.Response{Success: true, Message: message, Data: data})
}

func respondError(c *gin.Context, status int, message string, fieldErrors ...dto.FieldError) {
	c.AbortWithStatusJSON(status, dto.Response{Success: false, Message: message, Errors: fieldErrors})
}

// --- Model to DTO mapping ---

// MapUserModelToUserResponse converts a models.User to a dto.UserResponse
func MapUserModelToUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Role:  string(user.Role),
	}
}

// MapProfileModelToResponse flattens the profile union.
func MapProfileModelToResponse(profile *models.Profile) dto.ProfileResponse {
	resp := dto.ProfileResponse{
		UserID:    profile.UserID,
		Role:      string(profile.Role),
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Phone:     profile.Phone,
		Address:   profile.Address,
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}
	if profile.JobSeeker != nil {
		resp.ResumeURL = profile.JobSeeker.ResumeURL
	}
	if profile.Employer != nil {
		resp.CompanyName = profile.Employer.CompanyName
		resp.CompanyDescription = profile.Employer.CompanyDescription
	}
	return resp
}

// MapJobModelToJobResponse converts a models.Job to a dto.JobResponse
func MapJobModelToJobResponse(job *models.Job) dto.JobResponse {
	resp := dto.JobResponse{
		ID:           job.ID,
		Title:        job.Title,
		Description:  job.Description,
		Location:     job.Location,
		SalaryRange:  job.SalaryRange,
		JobType:      string(job.JobType),
		Requirements: job.Requirements,
		Status:       string(job.Status),
		EmployerID:   job.EmployerID,
		CreatedAt:    job.CreatedAt,
		UpdatedAt:    job.UpdatedAt,
	}
	if job.Employer != nil {
		resp.Employer = &dto.EmployerResponse{
			ID:                 job.Employer.ID,
			Email:              job.Employer.Email,
			CompanyName:        job.Employer.CompanyName,
			CompanyDescription: job.Employer.CompanyDescription,
		}
	}
	return resp
}

// MapApplicationModelToResponse converts a models.Application to a dto.ApplicationResponse
func MapApplicationModelToResponse(app *models.Application) dto.ApplicationResponse {
	resp := dto.ApplicationResponse{
		ID:          app.ID,
		JobID:       app.JobID,
		ApplicantID: app.ApplicantID,
		CoverLetter: app.CoverLetter,
		Status:      string(app.Status),
		CreatedAt:   app.CreatedAt,
		UpdatedAt:   app.UpdatedAt,
	}
	if app.Job != nil {
		resp.Job = &dto.ApplicationJobResponse{
			ID:          app.Job.ID,
			Title:       app.Job.Title,
			Location:    app.Job.Location,
			JobType:     string(app.Job.JobType),
			Status:      string(app.Job.Status),
			EmployerID:  app.Job.EmployerID,
			CompanyName: app.Job.CompanyName,
		}
	}
	if app.Applicant != nil {
		resp.Applicant = &dto.ApplicantResponse{
			ID:        app.Applicant.ID,
			Email:     app.Applicant.Email,
			FirstName: app.Applicant.FirstName,
			LastName:  app.Applicant.LastName,
			ResumeURL: app.Applicant.ResumeURL,
		}
	}
	return resp
}

func mapPagination(p services.Pagination) dto.PaginationResponse {
	return dto.PaginationResponse{
		TotalItems:   p.TotalItems,
		TotalPages:   p.TotalPages,
		CurrentPage:  p.CurrentPage,
		ItemsPerPage: p.ItemsPerPage,
	}
}
