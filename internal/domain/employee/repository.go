package employee

import (
	"context"

	"github.com/reboot-ai/crm-backend-go/internal/domain/report"
)

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	ListByRole(ctx context.Context, role Role) ([]Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// TargetRepository owns the monthly target records hanging off employees.
// Writes merge by (employee, month, year); a duplicate month replaces the
// stored record instead of creating a second one.
type TargetRepository interface {
	ListByEmployee(ctx context.Context, employeeID string) ([]report.Target, error)
	ListForEmployees(ctx context.Context, employeeIDs []string) (map[string][]report.Target, error)
	Merge(ctx context.Context, employeeID string, target report.Target) error
}
