package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new attendance record (clock-in)
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// Update rewrites an existing record (clock-out fills exit fields)
	Update(ctx context.Context, attendance Attendance) error

	// GetByEmployeeAndDate retrieves the record for one IST civil day,
	// nil when the employee has no record that day
	GetByEmployeeAndDate(ctx context.Context, employeeID string, civilDate string) (*Attendance, error)

	// ListByEmployee retrieves all records for an employee, newest first
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)

	// List retrieves records with filters and pagination
	List(ctx context.Context, filter ListFilter) ([]Attendance, int64, error)
}
