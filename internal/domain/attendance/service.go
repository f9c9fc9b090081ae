package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ClockIn records the employee's entry time and location for today (IST)
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut records the exit time and location for today's open record
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)

	// GetWindow returns entry/exit display values for one civil day
	GetWindow(ctx context.Context, req WindowRequest) (Window, error)

	// GetDayCount sums fractional day credits over a period
	GetDayCount(ctx context.Context, req DayCountRequest) (DayCountResponse, error)

	// ListAttendance retrieves records with filters (admin)
	ListAttendance(ctx context.Context, filter ListFilter) (ListAttendanceResponse, error)
}
