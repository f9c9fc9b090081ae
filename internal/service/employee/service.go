package employee

import (
	"context"
	"log/slog"
	"time"

	"github.com/reboot-ai/crm-backend-go/internal/domain/business"
	"github.com/reboot-ai/crm-backend-go/internal/domain/employee"
	"github.com/reboot-ai/crm-backend-go/internal/domain/report"
)

type employeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	targetRepo   employee.TargetRepository
	businessRepo business.BusinessRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	targetRepo employee.TargetRepository,
	businessRepo business.BusinessRepository,
) employee.EmployeeService {
	return &employeeServiceImpl{
		employeeRepo: employeeRepo,
		targetRepo:   targetRepo,
		businessRepo: businessRepo,
	}
}

// ListByRole implements employee.EmployeeService.
func (s *employeeServiceImpl) ListByRole(ctx context.Context, role employee.Role, extended bool) ([]employee.RoleListItem, error) {
	if !role.Valid() {
		return nil, employee.ErrInvalidRole
	}

	employees, err := s.employeeRepo.ListByRole(ctx, role)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(employees))
	for _, e := range employees {
		ids = append(ids, e.ID)
	}

	targetsByEmployee, err := s.targetRepo.ListForEmployees(ctx, ids)
	if err != nil {
		return nil, err
	}

	var statusCounts map[string]map[string]int64
	if extended {
		statusCounts, err = s.businessRepo.CountByStatusForEmployees(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	items := make([]employee.RoleListItem, 0, len(employees))
	for _, e := range employees {
		e.Targets = targetsByEmployee[e.ID]
		item := employee.NewRoleListItem(e)
		if extended {
			item.StatusCount = statusCounts[e.ID]
			item.Collections = report.SumCollections(e.Targets, nil)
		}
		items = append(items, item)
	}
	return items, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *employeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	found, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	targets, err := s.targetRepo.ListByEmployee(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	found.Targets = targets

	return toEmployeeResponse(found), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *employeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.employeeRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
		Status:      employee.StatusActive,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("employee created", "employee_id", created.ID, "role", created.Role)

	return toEmployeeResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *employeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.Update(ctx, req.ID, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.GetEmployee(ctx, req.ID)
}

// MergeTargets implements employee.EmployeeService. Each incoming record
// replaces any stored record for the same (month, year) so one month never
// accumulates duplicates.
func (s *employeeServiceImpl) MergeTargets(ctx context.Context, employeeID string, req employee.MergeTargetsRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	for _, target := range req.Targets {
		if err := s.targetRepo.Merge(ctx, employeeID, target); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	return s.GetEmployee(ctx, employeeID)
}

func toEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	targets := e.Targets
	if targets == nil {
		targets = []report.Target{}
	}
	return employee.EmployeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		Email:       e.Email,
		PhoneNumber: e.PhoneNumber,
		Role:        e.Role,
		Designation: e.Role.Designation(),
		Status:      e.Status,
		Targets:     targets,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.Format(time.RFC3339),
	}
}
