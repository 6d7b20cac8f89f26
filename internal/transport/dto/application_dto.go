package dto

import "time"

// CreateApplicationRequest defines the structure for applying to a job.
type CreateApplicationRequest struct {
	JobID       int64   `json:"jobId" validate:"required,gt=0"`
	CoverLetter *string `json:"coverLetter" validate:"omitempty,max=10000"`
}

// UpdateApplicationStatusRequest defines the structure for moving an application.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=applied reviewed interviewed rejected hired"`
}

// ListApplicationsRequest defines the optional status filter of application listings.
type ListApplicationsRequest struct {
	Status string `form:"status" validate:"omitempty,oneof=applied reviewed interviewed rejected hired"`
}

// ApplicationJobResponse is the job summary embedded in an application.
type ApplicationJobResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Location    string  `json:"location"`
	JobType     string  `json:"jobType"`
	Status      string  `json:"status"`
	EmployerID  int64   `json:"employerId"`
	CompanyName *string `json:"companyName"`
}

// ApplicantResponse is the applicant summary embedded in an application.
type ApplicantResponse struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	ResumeURL *string `json:"resumeUrl"`
}

// ApplicationResponse defines the structure for returning application data.
type ApplicationResponse struct {
	ID          int64                   `json:"id"`
	JobID       int64                   `json:"jobId"`
	ApplicantID int64                   `json:"applicantId"`
	CoverLetter *string                 `json:"coverLetter"`
	Status      string                  `json:"status"`
	Job         *ApplicationJobResponse `json:"job,omitempty"`
	Applicant   *ApplicantResponse      `json:"applicant,omitempty"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

// ApplicationEnvelope wraps a single application.
type ApplicationEnvelope struct {
	Application ApplicationResponse `json:"application"`
}

// ApplicationListResponse is one page of applications.
type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Pagination   PaginationResponse    `json:"pagination"`
}
