package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// scanEnumString normalizes the driver values pgx hands to a Scanner.
func scanEnumString(value interface{}, typeName string) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case fmt.Stringer:
		return v.String(), nil
	case nil:
		return "", fmt.Errorf("failed to scan %s: value is NULL", typeName)
	default:
		return "", fmt.Errorf("failed to scan %s: value is not string or []byte", typeName)
	}
}

// --- Role Enum ---
type Role string

const (
	RoleEmployer  Role = "employer"
	RoleJobSeeker Role = "job_seeker"
)

func (r Role) IsValid() bool {
	return r == RoleEmployer || r == RoleJobSeeker
}

func (r Role) String() string { return string(r) }

// Scan implements the sql.Scanner interface for Role
func (r *Role) Scan(value interface{}) error {
	strVal, err := scanEnumString(value, "Role")
	if err != nil {
		return err
	}
	v := Role(strVal)
	if !v.IsValid() {
		return fmt.Errorf("invalid Role value: %s", strVal)
	}
	*r = v
	return nil
}

// Value implements the driver.Valuer interface for Role
func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

// --- Job Type Enum ---
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeRemote     JobType = "remote"
)

func (t JobType) IsValid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeRemote:
		return true
	}
	return false
}

func (t JobType) String() string { return string(t) }

// Scan implements the sql.Scanner interface for JobType
func (t *JobType) Scan(value interface{}) error {
	strVal, err := scanEnumString(value, "JobType")
	if err != nil {
		return err
	}
	v := JobType(strVal)
	if !v.IsValid() {
		return fmt.Errorf("invalid JobType value: %s", strVal)
	}
	*t = v
	return nil
}

// Value implements the driver.Valuer interface for JobType
func (t JobType) Value() (driver.Value, error) {
	return string(t), nil
}

// --- Job Status Enum ---
type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
)

func (s JobStatus) IsValid() bool {
	return s == JobStatusActive || s == JobStatusClosed
}

func (s JobStatus) String() string { return string(s) }

// Scan implements the sql.Scanner interface for JobStatus
func (s *JobStatus) Scan(value interface{}) error {
	strVal, err := scanEnumString(value, "JobStatus")
	if err != nil {
		return err
	}
	v := JobStatus(strVal)
	if !v.IsValid() {
		return fmt.Errorf("invalid JobStatus value: %s", strVal)
	}
	*s = v
	return nil
}

// Value implements the driver.Valuer interface for JobStatus
func (s JobStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// --- Application Status Enum ---
type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"
	ApplicationStatusInterviewed ApplicationStatus = "interviewed"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusHired       ApplicationStatus = "hired"
)

// ApplicationStatuses lists every status in lifecycle order.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusApplied,
	ApplicationStatusReviewed,
	ApplicationStatusInterviewed,
	ApplicationStatusRejected,
	ApplicationStatusHired,
}

func (s ApplicationStatus) IsValid() bool {
	for _, known := range ApplicationStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further lifecycle step follows s.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusRejected || s == ApplicationStatusHired
}

func (s ApplicationStatus) String() string { return string(s) }

// Scan implements the sql.Scanner interface for ApplicationStatus
func (s *ApplicationStatus) Scan(value interface{}) error {
	strVal, err := scanEnumString(value, "ApplicationStatus")
	if err != nil {
		return err
	}
	v := ApplicationStatus(strVal)
	if !v.IsValid() {
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
	*s = v
	return nil
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (s ApplicationStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID    int64
	Email string
	Role  Role
}

// User represents an identity in the system.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// ProfileBase holds the fields shared by every profile.
type ProfileBase struct {
	UserID    int64     `json:"userId"`
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// JobSeekerDetails is the job seeker specialization of a profile.
type JobSeekerDetails struct {
	ResumeURL *string `json:"resumeUrl"`
}

// EmployerDetails is the employer specialization of a profile.
type EmployerDetails struct {
	CompanyName        *string `json:"companyName"`
	CompanyDescription *string `json:"companyDescription"`
}

// Profile is a tagged union over the role specializations: exactly one of
// JobSeeker or Employer is set, chosen by Role.
type Profile struct {
	ProfileBase
	Role      Role
	JobSeeker *JobSeekerDetails
	Employer  *EmployerDetails
}

// NewProfile returns a profile whose specialization matches role.
func NewProfile(base ProfileBase, role Role) *Profile {
	p := &Profile{ProfileBase: base, Role: role}
	switch role {
	case RoleEmployer:
		p.Employer = &EmployerDetails{}
	default:
		p.JobSeeker = &JobSeekerDetails{}
	}
	return p
}

// EmployerSummary is the public view of a job's owner.
type EmployerSummary struct {
	ID                 int64   `json:"id"`
	Email              string  `json:"email"`
	CompanyName        *string `json:"companyName"`
	CompanyDescription *string `json:"companyDescription"`
}

// Job is a posting owned by one employer.
type Job struct {
	ID           int64            `json:"id" db:"id"`
	Title        string           `json:"title" db:"title"`
	Description  string           `json:"description" db:"description"`
	Location     string           `json:"location" db:"location"`
	SalaryRange  *string          `json:"salaryRange" db:"salary_range"`
	JobType      JobType          `json:"jobType" db:"job_type"`
	Requirements *string          `json:"requirements" db:"requirements"`
	Status       JobStatus        `json:"status" db:"status"`
	EmployerID   int64            `json:"employerId" db:"employer_id"`
	Employer     *EmployerSummary `json:"employer,omitempty" db:"-"`
	CreatedAt    time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time        `json:"updatedAt" db:"updated_at"`
}

// ApplicationJob is the slice of a job embedded in application reads.
type ApplicationJob struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	JobType     JobType   `json:"jobType"`
	Status      JobStatus `json:"status"`
	EmployerID  int64     `json:"employerId"`
	CompanyName *string   `json:"companyName"`
}

// ApplicantSummary is the slice of the applicant embedded in application reads.
type ApplicantSummary struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	ResumeURL *string `json:"resumeUrl"`
}

// Application links a job seeker to a job.
type Application struct {
	ID          int64             `json:"id" db:"id"`
	JobID       int64             `json:"jobId" db:"job_id"`
	ApplicantID int64             `json:"applicantId" db:"applicant_id"`
	CoverLetter *string           `json:"coverLetter" db:"cover_letter"`
	Status      ApplicationStatus `json:"status" db:"status"`
	CreatedAt   time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time         `json:"updatedAt" db:"updated_at"`
	Job         *ApplicationJob   `json:"job,omitempty" db:"-"`
	Applicant   *ApplicantSummary `json:"applicant,omitempty" db:"-"`
}
