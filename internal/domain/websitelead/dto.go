package websitelead

import (
	"github.com/reboot-ai/crm-backend-go/internal/pkg/validator"
)

type CreateLeadRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	Message      string `json:"message"`
	Source       string `json:"source"`
}

func (r *CreateLeadRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.Email == "" && r.MobileNumber == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "either email or mobile number is required",
		})
	}
	if r.Email != "" && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.MobileNumber != "" && !validator.IsValidPhoneNumber(r.MobileNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobileNumber",
			Message: "mobile number must be a valid 10-digit Indian number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeadStatusRequest struct {
	ID     string `json:"-"`
	Status Status `json:"status"`
}

func (r *UpdateLeadStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be new, contacted, converted or discarded",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeadResponse struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	MobileNumber string `json:"mobileNumber,omitempty"`
	Message      string `json:"message,omitempty"`
	Source       string `json:"source,omitempty"`
	Status       Status `json:"status"`
	CreatedAt    string `json:"created_at"`
}
