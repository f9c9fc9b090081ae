package jobpost

import (
	"github.com/reboot-ai/crm-backend-go/internal/pkg/validator"
)

type CreateJobPostRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Experience  string `json:"experience"`
	Openings    int    `json:"openings"`
}

func (r *CreateJobPostRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}
	if r.Openings < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "openings",
			Message: "openings must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateJobPostRequest struct {
	ID          string  `json:"-"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	Experience  *string `json:"experience,omitempty"`
	Openings    *int    `json:"openings,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

func (r *UpdateJobPostRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Openings != nil && *r.Openings < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "openings",
			Message: "openings must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type JobPostResponse struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
	Experience  string `json:"experience,omitempty"`
	Openings    int    `json:"openings"`
	Active      bool   `json:"active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
