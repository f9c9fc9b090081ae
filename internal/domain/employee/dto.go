package employee

import (
	"github.com/reboot-ai/crm-backend-go/internal/domain/report"
	"github.com/reboot-ai/crm-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"mobileNumber"`
	Role        Role   `json:"role"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.PhoneNumber != "" && !validator.IsValidPhoneNumber(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobileNumber",
			Message: "mobile number must be a valid 10-digit Indian number",
		})
	}
	if !r.Role.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be telecaller, digitalmarketer or bde",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"mobileNumber,omitempty"`
	Status      *Status `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobileNumber",
			Message: "mobile number must be a valid 10-digit Indian number",
		})
	}
	if r.Status != nil && *r.Status != StatusActive && *r.Status != StatusInactive {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active or inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MergeTargetsRequest is the body of PUT /api/users/users/{id}. The
// dashboard always sends a single-element array and relies on the backend
// to merge by (month, year).
type MergeTargetsRequest struct {
	Targets []report.Target `json:"targets"`
}

func (r *MergeTargetsRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Targets) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "targets",
			Message: "targets must contain at least one record",
		})
	}
	for _, t := range r.Targets {
		if _, ok := report.MonthIndex(t.Month); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "targets.month",
				Message: "month must be a full English month name",
			})
		}
		if t.Year < 2000 || t.Year > 2100 {
			errs = append(errs, validator.ValidationError{
				Field:   "targets.year",
				Message: "year is out of range",
			})
		}
		if t.Amount < 0 || t.Achievement < 0 || t.Collection < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "targets",
				Message: "amount, achievement and collection must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RoleListItem is one element of the per-role list endpoints. The legacy
// response shape is preserved: the display name rides in a role-specific
// field and the generic id in "_id".
type RoleListItem struct {
	ID                  string           `json:"_id"`
	TelecallerName      string           `json:"telecallername,omitempty"`
	DigitalMarketerName string           `json:"digitalMarketername,omitempty"`
	BDEName             string           `json:"bdename,omitempty"`
	Email               string           `json:"email"`
	PhoneNumber         string           `json:"mobileNumber,omitempty"`
	Designation         string           `json:"designation"`
	Status              Status           `json:"status"`
	Targets             []report.Target  `json:"targets"`
	StatusCount         map[string]int64 `json:"statuscount,omitempty"`
	Collections         float64          `json:"collections,omitempty"`
}

// NewRoleListItem normalizes an employee into the legacy per-role shape.
func NewRoleListItem(e Employee) RoleListItem {
	item := RoleListItem{
		ID:          e.ID,
		Email:       e.Email,
		PhoneNumber: e.PhoneNumber,
		Designation: e.Role.Designation(),
		Status:      e.Status,
		Targets:     e.Targets,
	}
	if item.Targets == nil {
		item.Targets = []report.Target{}
	}
	switch e.Role {
	case RoleTelecaller:
		item.TelecallerName = e.Name
	case RoleDigitalMarketer:
		item.DigitalMarketerName = e.Name
	case RoleBDE:
		item.BDEName = e.Name
	}
	return item
}

type EmployeeResponse struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"mobileNumber,omitempty"`
	Role        Role            `json:"role"`
	Designation string          `json:"designation"`
	Status      Status          `json:"status"`
	Targets     []report.Target `json:"targets"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}
