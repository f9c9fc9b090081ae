package report

import (
	"time"

	"github.com/reboot-ai/crm-backend-go/internal/pkg/validator"
)

// ========================================
// PERIOD SUMMARY REPORT
// ========================================

type SummaryRequest struct {
	StartDate string `json:"startdate"` // YYYY-MM-DD
	EndDate   string `json:"enddate"`   // YYYY-MM-DD
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	// Both-or-neither: a half-open range is how the old dashboard produced
	// unfiltered reports by accident.
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

// Range converts the request dates into a month-granularity range, or nil
// when the request is unbounded.
func (r *SummaryRequest) Range() *MonthRange {
	if r.StartDate == "" || r.EndDate == "" {
		return nil
	}
	start, ok1 := validator.IsValidDate(r.StartDate)
	end, ok2 := validator.IsValidDate(r.EndDate)
	if !ok1 || !ok2 {
		return nil
	}
	return &MonthRange{Start: start, End: end}
}

// EmployeeSummaryRow is one table row of the period report: the resolved
// target for the period, the raw achievement percentage, and the summed
// collections.
type EmployeeSummaryRow struct {
	EmployeeID         string  `json:"employee_id"`
	Name               string  `json:"name"`
	Role               string  `json:"role"`
	TargetAmount       float64 `json:"target"`
	Achievement        float64 `json:"achievement"`
	AchievementPercent float64 `json:"achievement_percent"`
	Collection         float64 `json:"collection"`
	TargetMonth        string  `json:"target_month,omitempty"`
	TargetYear         int     `json:"target_year,omitempty"`
}

type SummaryResponse struct {
	Rows            []EmployeeSummaryRow `json:"rows"`
	TotalTarget     float64              `json:"total_target"`
	TotalAchieved   float64              `json:"total_achieved"`
	TotalCollection float64              `json:"total_collection"`
	GeneratedAt     string               `json:"generated_at"`
}

// ========================================
// YEARLY GRAPH
// ========================================

type GraphRequest struct {
	Year int `json:"year"`
}

func (r *GraphRequest) Validate() error {
	var errs validator.ValidationErrors

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2020 and next year",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GraphResponse struct {
	Year                int             `json:"year"`
	TargetVsAchievement []MonthlyBucket `json:"target_vs_achievement"`
	TargetVsCollection  []MonthlyBucket `json:"target_vs_collection"`
	BarHeights          []float64       `json:"bar_heights"`
}
