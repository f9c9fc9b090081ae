package attendance

import (
	"github.com/reboot-ai/crm-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type ClockInRequest struct {
	EmployeeID string  `json:"employee_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockOutRequest struct {
	EmployeeID string  `json:"employee_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

func (r *ClockOutRequest) Validate() error {
	in := ClockInRequest(*r)
	return in.Validate()
}

type AttendanceResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name,omitempty"`
	Date         string    `json:"date"`
	EntryTime    string    `json:"entry_time"`
	ExitTime     string    `json:"exit_time"`
	EntryLoc     *GeoPoint `json:"entry_time_location"`
	ExitLoc      *GeoPoint `json:"exit_time_location"`
	DayCount     float64   `json:"day_count"`
}

type WindowRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"` // YYYY-MM-DD, interpreted as IST civil date
}

func (r *WindowRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DayCountRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"startdate"` // YYYY-MM-DD, optional
	EndDate    string `json:"enddate"`   // YYYY-MM-DD, optional
}

func (r *DayCountRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if (r.StartDate == "") != (r.EndDate == "") {
		errs = append(errs, validator.ValidationError{
			Field:   "enddate",
			Message: "startdate and enddate must be provided together",
		})
	}
	if r.StartDate != "" {
		if _, ok := validator.IsValidDate(r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "startdate",
				Message: "startdate must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != "" {
		if _, ok := validator.IsValidDate(r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "enddate",
				Message: "enddate must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DayCountResponse struct {
	EmployeeID string  `json:"employee_id"`
	DayCount   float64 `json:"day_count"`
}

type ListFilter struct {
	EmployeeID *string
	StartDate  *string // YYYY-MM-DD
	EndDate    *string // YYYY-MM-DD
	Page       int
	Limit      int
}

func (f *ListFilter) Validate() error {
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
	for field, v := range map[string]*string{"startdate": f.StartDate, "enddate": f.EndDate} {
		if v == nil {
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

type ListAttendanceResponse struct {
	Items      []AttendanceResponse `json:"items"`
	TotalItems int64                `json:"total_items"`
}
