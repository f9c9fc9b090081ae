package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListByRole returns the legacy per-role list. When extended is true
	// each item also carries the business status counts and the summed
	// collections used by the sales dashboard.
	ListByRole(ctx context.Context, role Role, extended bool) ([]RoleListItem, error)

	// GetEmployee retrieves a single employee with targets
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// CreateEmployee registers a new employee under one of the three roles
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee updates profile fields or activation status
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// MergeTargets upserts target records by (month, year) for an employee
	MergeTargets(ctx context.Context, employeeID string, req MergeTargetsRequest) (EmployeeResponse, error)
}
