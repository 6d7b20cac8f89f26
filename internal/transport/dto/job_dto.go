package dto

import "time"

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for creating a new job posting.
type CreateJobRequest struct {
	Title        string  `json:"title" validate:"required,max=255"`
	Description  string  `json:"description" validate:"required"`
	Location     string  `json:"location" validate:"required,max=255"`
	SalaryRange  *string `json:"salaryRange" validate:"omitempty,max=100"`
	JobType      string  `json:"jobType" validate:"omitempty,oneof=full-time part-time contract internship remote"`
	Requirements *string `json:"requirements"`
}

// UpdateJobRequest replaces the required fields of a job. Optional fields
// left out keep their current value.
type UpdateJobRequest struct {
	Title        string  `json:"title" validate:"required,max=255"`
	Description  string  `json:"description" validate:"required"`
	Location     string  `json:"location" validate:"required,max=255"`
	SalaryRange  *string `json:"salaryRange" validate:"omitempty,max=100"`
	JobType      *string `json:"jobType" validate:"omitempty,oneof=full-time part-time contract internship remote"`
	Requirements *string `json:"requirements"`
	Status       *string `json:"status" validate:"omitempty,oneof=active closed"`
}

// ListJobsRequest defines the filters of the public job listing.
// Page and limit are read separately so malformed values fall back to defaults.
type ListJobsRequest struct {
	Title    string `form:"title"`
	Location string `form:"location"`
	JobType  string `form:"jobType" validate:"omitempty,oneof=full-time part-time contract internship remote"`
	Status   string `form:"status" validate:"omitempty,oneof=active closed"`
}

// ListEmployerJobsRequest defines the filters of the employer's own listing.
type ListEmployerJobsRequest struct {
	Status string `form:"status" validate:"omitempty,oneof=active closed"`
}

// --- Job Response DTOs ---

// EmployerResponse is the public view of a job's owner.
type EmployerResponse struct {
	ID                 int64   `json:"id"`
	Email              string  `json:"email"`
	CompanyName        *string `json:"companyName"`
	CompanyDescription *string `json:"companyDescription,omitempty"`
}

// JobResponse defines the structure for returning job data.
type JobResponse struct {
	ID           int64             `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Location     string            `json:"location"`
	SalaryRange  *string           `json:"salaryRange"`
	JobType      string            `json:"jobType"`
	Requirements *string           `json:"requirements"`
	Status       string            `json:"status"`
	EmployerID   int64             `json:"employerId"`
	Employer     *EmployerResponse `json:"employer,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// JobEnvelope wraps a single job.
type JobEnvelope struct {
	Job JobResponse `json:"job"`
}

// JobListResponse is one page of jobs.
type JobListResponse struct {
	Jobs       []JobResponse      `json:"jobs"`
	Pagination PaginationResponse `json:"pagination"`
}
