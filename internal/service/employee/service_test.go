package employee

import (
	"context"
	"testing"

	"github.com/reboot-ai/crm-backend-go/internal/domain/business"
	"github.com/reboot-ai/crm-backend-go/internal/domain/employee"
	"github.com/reboot-ai/crm-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) ListByRole(ctx context.Context, role employee.Role) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.Role == role {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	newEmployee.ID = "emp-new"
	f.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	if _, ok := f.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (f *fakeEmployeeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, e := range f.employees {
		if e.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// mergingTargetRepo replaces records sharing (month, year), matching the
// production upsert.
type mergingTargetRepo struct {
	targets map[string][]report.Target
}

func (f *mergingTargetRepo) ListByEmployee(ctx context.Context, employeeID string) ([]report.Target, error) {
	return f.targets[employeeID], nil
}

func (f *mergingTargetRepo) ListForEmployees(ctx context.Context, employeeIDs []string) (map[string][]report.Target, error) {
	out := make(map[string][]report.Target)
	for _, id := range employeeIDs {
		out[id] = f.targets[id]
	}
	return out, nil
}

func (f *mergingTargetRepo) Merge(ctx context.Context, employeeID string, target report.Target) error {
	if f.targets == nil {
		f.targets = make(map[string][]report.Target)
	}
	existing := f.targets[employeeID]
	for i, t := range existing {
		if t.Month == target.Month && t.Year == target.Year {
			existing[i] = target
			return nil
		}
	}
	f.targets[employeeID] = append(existing, target)
	return nil
}

type stubBusinessRepo struct {
	counts map[string]map[string]int64
}

func (s *stubBusinessRepo) GetByID(ctx context.Context, id string) (business.Business, error) {
	return business.Business{}, business.ErrBusinessNotFound
}

func (s *stubBusinessRepo) Create(ctx context.Context, newBusiness business.Business) (business.Business, error) {
	return newBusiness, nil
}

func (s *stubBusinessRepo) Update(ctx context.Context, id string, req business.UpdateBusinessRequest) error {
	return nil
}

func (s *stubBusinessRepo) Assign(ctx context.Context, req business.AssignBusinessRequest) error {
	return nil
}

func (s *stubBusinessRepo) List(ctx context.Context, filter business.BusinessFilter) ([]business.Business, int64, error) {
	return nil, 0, nil
}

func (s *stubBusinessRepo) ExistsByMobileNumber(ctx context.Context, mobileNumber string) (bool, error) {
	return false, nil
}

func (s *stubBusinessRepo) CountByStatusForEmployees(ctx context.Context, employeeIDs []string) (map[string]map[string]int64, error) {
	return s.counts, nil
}

func TestListByRole_ExtendedCarriesStatusCountAndCollections(t *testing.T) {
	t.Parallel()

	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"tc1": {ID: "tc1", Name: "Asha", Role: employee.RoleTelecaller, Status: employee.StatusActive},
	}}
	tgtRepo := &mergingTargetRepo{targets: map[string][]report.Target{
		"tc1": {
			{Month: "January", Year: 2025, Amount: 100000, Collection: 25000},
			{Month: "February", Year: 2025, Amount: 100000, Collection: 35000},
		},
	}}
	bizRepo := &stubBusinessRepo{counts: map[string]map[string]int64{
		"tc1": {"new": 4, "converted": 2},
	}}

	svc := NewEmployeeService(empRepo, tgtRepo, bizRepo)
	items, err := svc.ListByRole(context.Background(), employee.RoleTelecaller, true)
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "Asha", item.TelecallerName)
	assert.Equal(t, "Telecaller", item.Designation)
	assert.Equal(t, int64(4), item.StatusCount["new"])
	assert.Equal(t, 60000.0, item.Collections)
}

func TestListByRole_InvalidRoleRejected(t *testing.T) {
	t.Parallel()

	svc := NewEmployeeService(&fakeEmployeeRepo{}, &mergingTargetRepo{}, &stubBusinessRepo{})
	_, err := svc.ListByRole(context.Background(), employee.Role("manager"), false)
	assert.ErrorIs(t, err, employee.ErrInvalidRole)
}

func TestMergeTargets_ReplacesSameMonth(t *testing.T) {
	t.Parallel()

	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"tc1": {ID: "tc1", Name: "Asha", Role: employee.RoleTelecaller, Status: employee.StatusActive},
	}}
	tgtRepo := &mergingTargetRepo{targets: map[string][]report.Target{
		"tc1": {{Month: "January", Year: 2025, Amount: 100000, Achievement: 10000}},
	}}

	svc := NewEmployeeService(empRepo, tgtRepo, &stubBusinessRepo{})
	resp, err := svc.MergeTargets(context.Background(), "tc1", employee.MergeTargetsRequest{
		Targets: []report.Target{
			{Month: "January", Year: 2025, Amount: 120000, Achievement: 45000},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Targets, 1)
	assert.Equal(t, report.Number(120000), resp.Targets[0].Amount)
	assert.Equal(t, report.Number(45000), resp.Targets[0].Achievement)
}

func TestMergeTargets_NewMonthAppends(t *testing.T) {
	t.Parallel()

	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"tc1": {ID: "tc1", Name: "Asha", Role: employee.RoleTelecaller, Status: employee.StatusActive},
	}}
	tgtRepo := &mergingTargetRepo{targets: map[string][]report.Target{
		"tc1": {{Month: "January", Year: 2025, Amount: 100000}},
	}}

	svc := NewEmployeeService(empRepo, tgtRepo, &stubBusinessRepo{})
	resp, err := svc.MergeTargets(context.Background(), "tc1", employee.MergeTargetsRequest{
		Targets: []report.Target{{Month: "February", Year: 2025, Amount: 90000}},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Targets, 2)
}

func TestMergeTargets_BadMonthRejected(t *testing.T) {
	t.Parallel()

	svc := NewEmployeeService(&fakeEmployeeRepo{}, &mergingTargetRepo{}, &stubBusinessRepo{})
	_, err := svc.MergeTargets(context.Background(), "tc1", employee.MergeTargetsRequest{
		Targets: []report.Target{{Month: "Januray", Year: 2025, Amount: 100000}},
	})
	assert.Error(t, err)
}

func TestCreateEmployee_DuplicateEmailRejected(t *testing.T) {
	t.Parallel()

	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"tc1": {ID: "tc1", Email: "asha@rebootai.in", Role: employee.RoleTelecaller},
	}}

	svc := NewEmployeeService(empRepo, &mergingTargetRepo{}, &stubBusinessRepo{})
	_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		Name:        "Asha Again",
		Email:       "asha@rebootai.in",
		PhoneNumber: "9876543210",
		Role:        employee.RoleTelecaller,
	})
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}
