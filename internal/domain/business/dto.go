package business

import (
	"github.com/reboot-ai/crm-backend-go/internal/pkg/validator"
)

// ========================================
// BUSINESS DTOs
// ========================================

// BusinessFilter mirrors the query parameters of GET /api/business/get
// verbatim; the dashboard depends on these exact names.
type BusinessFilter struct {
	Status       *string `json:"status,omitempty"`
	Category     *string `json:"category,omitempty"`
	City         *string `json:"city,omitempty"`
	MobileNumber *string `json:"mobileNumber,omitempty"`

	CreatedStartDate     *string `json:"createdstartdate,omitempty"`
	CreatedEndDate       *string `json:"createdenddate,omitempty"`
	FollowupStartDate    *string `json:"followupstartdate,omitempty"`
	FollowupEndDate      *string `json:"followupenddate,omitempty"`
	AppointmentStartDate *string `json:"appointmentstartdate,omitempty"`
	AppointmentEndDate   *string `json:"appointmentenddate,omitempty"`
	VisitDateStart       *string `json:"visitdatestart,omitempty"`
	VisitDateEnd         *string `json:"visitdateend,omitempty"`

	TelecallerID      *string `json:"telecallerId,omitempty"`
	DigitalMarketerID *string `json:"digitalMarketerId,omitempty"`
	BdeID             *string `json:"bdeId,omitempty"`
	AssignedTo        *string `json:"assignedTo,omitempty"`
	LeadBy            *string `json:"leadBy,omitempty"`
	CreatedBy         *string `json:"createdBy,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *BusinessFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Limit < 0 || f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be between 0 and 100",
		})
	}

	dates := map[string]*string{
		"createdstartdate":     f.CreatedStartDate,
		"createdenddate":       f.CreatedEndDate,
		"followupstartdate":    f.FollowupStartDate,
		"followupenddate":      f.FollowupEndDate,
		"appointmentstartdate": f.AppointmentStartDate,
		"appointmentenddate":   f.AppointmentEndDate,
		"visitdatestart":       f.VisitDateStart,
		"visitdateend":         f.VisitDateEnd,
	}
	for field, v := range dates {
		if v == nil || *v == "" {
			continue
		}
		if _, ok := validator.IsValidDate(*v); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	return nil
}

type CreateBusinessRequest struct {
	Name          string  `json:"businessname"`
	ContactPerson string  `json:"contactpersonName"`
	MobileNumber  string  `json:"mobileNumber"`
	Category      string  `json:"category"`
	City          string  `json:"city"`
	Status        string  `json:"status"`
	Remarks       *string `json:"remarks,omitempty"`
	LeadBy        *string `json:"leadBy,omitempty"`
	CreatedBy     *string `json:"createdBy,omitempty"`
}

func (r *CreateBusinessRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "businessname",
			Message: "business name is required",
		})
	}
	if !validator.IsValidPhoneNumber(r.MobileNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobileNumber",
			Message: "mobile number must be a valid 10-digit Indian number",
		})
	}
	if validator.IsEmpty(r.City) {
		errs = append(errs, validator.ValidationError{
			Field:   "city",
			Message: "city is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateBusinessRequest struct {
	ID              string  `json:"-"`
	Name            *string `json:"businessname,omitempty"`
	ContactPerson   *string `json:"contactpersonName,omitempty"`
	Category        *string `json:"category,omitempty"`
	City            *string `json:"city,omitempty"`
	Status          *string `json:"status,omitempty"`
	Remarks         *string `json:"remarks,omitempty"`
	FollowUpDate    *string `json:"followupdate,omitempty"`
	AppointmentDate *string `json:"appointmentdate,omitempty"`
	VisitDate       *string `json:"visitdate,omitempty"`
}

func (r *UpdateBusinessRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	for field, v := range map[string]*string{
		"followupdate":    r.FollowUpDate,
		"appointmentdate": r.AppointmentDate,
		"visitdate":       r.VisitDate,
	} {
		if v == nil || *v == "" {
			continue
		}
		if _, ok := validator.IsValidDate(*v); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignBusinessRequest struct {
	ID                string  `json:"-"`
	TelecallerID      *string `json:"telecallerId,omitempty"`
	DigitalMarketerID *string `json:"digitalMarketerId,omitempty"`
	BdeID             *string `json:"bdeId,omitempty"`
	AssignedTo        *string `json:"assignedTo,omitempty"`
}

func (r *AssignBusinessRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.TelecallerID == nil && r.DigitalMarketerID == nil && r.BdeID == nil && r.AssignedTo == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "assignedTo",
			Message: "at least one assignee is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BusinessResponse struct {
	ID                string  `json:"_id"`
	Name              string  `json:"businessname"`
	ContactPerson     string  `json:"contactpersonName,omitempty"`
	MobileNumber      string  `json:"mobileNumber"`
	Category          string  `json:"category,omitempty"`
	City              string  `json:"city,omitempty"`
	Status            string  `json:"status"`
	Remarks           *string `json:"remarks,omitempty"`
	TelecallerID      *string `json:"telecallerId,omitempty"`
	DigitalMarketerID *string `json:"digitalMarketerId,omitempty"`
	BdeID             *string `json:"bdeId,omitempty"`
	AssignedTo        *string `json:"assignedTo,omitempty"`
	LeadBy            *string `json:"leadBy,omitempty"`
	CreatedBy         *string `json:"createdBy,omitempty"`
	FollowUpDate      *string `json:"followupdate,omitempty"`
	AppointmentDate   *string `json:"appointmentdate,omitempty"`
	VisitDate         *string `json:"visitdate,omitempty"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

type ListBusinessResponse struct {
	Items      []BusinessResponse `json:"items"`
	TotalItems int64              `json:"total_items"`
	Page       int                `json:"page"`
	TotalPages int                `json:"total_pages"`
}
