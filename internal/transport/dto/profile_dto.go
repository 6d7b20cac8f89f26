package dto

import "time"

// UpdateProfileRequest replaces every profile field. Only the fields of the
// caller's role may be set.
type UpdateProfileRequest struct {
	FirstName          *string `json:"firstName" validate:"omitempty,max=100"`
	LastName           *string `json:"lastName" validate:"omitempty,max=100"`
	Phone              *string `json:"phone" validate:"omitempty,max=50"`
	Address            *string `json:"address" validate:"omitempty,max=500"`
	ResumeURL          *string `json:"resumeUrl" validate:"omitempty,url"`
	CompanyName        *string `json:"companyName" validate:"omitempty,max=255"`
	CompanyDescription *string `json:"companyDescription"`
}

// ProfileResponse flattens the profile union: role-specific fields are
// present only for the matching role.
type ProfileResponse struct {
	UserID             int64     `json:"userId"`
	Role               string    `json:"role"`
	FirstName          *string   `json:"firstName"`
	LastName           *string   `json:"lastName"`
	Phone              *string   `json:"phone"`
	Address            *string   `json:"address"`
	ResumeURL          *string   `json:"resumeUrl,omitempty"`
	CompanyName        *string   `json:"companyName,omitempty"`
	CompanyDescription *string   `json:"companyDescription,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// ProfileEnvelope wraps a profile.
type ProfileEnvelope struct {
	Profile ProfileResponse `json:"profile"`
}
