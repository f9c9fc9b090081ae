package business

import (
	"context"
	"testing"

	"github.com/reboot-ai/crm-backend-go/internal/domain/business"
	"github.com/reboot-ai/crm-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBusinessRepo struct {
	businesses map[string]business.Business
	mobiles    map[string]bool
	assigned   *business.AssignBusinessRequest
}

func newFakeBusinessRepo() *fakeBusinessRepo {
	return &fakeBusinessRepo{
		businesses: make(map[string]business.Business),
		mobiles:    make(map[string]bool),
	}
}

func (f *fakeBusinessRepo) GetByID(ctx context.Context, id string) (business.Business, error) {
	b, ok := f.businesses[id]
	if !ok {
		return business.Business{}, business.ErrBusinessNotFound
	}
	return b, nil
}

func (f *fakeBusinessRepo) Create(ctx context.Context, newBusiness business.Business) (business.Business, error) {
	newBusiness.ID = "biz-1"
	f.businesses[newBusiness.ID] = newBusiness
	f.mobiles[newBusiness.MobileNumber] = true
	return newBusiness, nil
}

func (f *fakeBusinessRepo) Update(ctx context.Context, id string, req business.UpdateBusinessRequest) error {
	if _, ok := f.businesses[id]; !ok {
		return business.ErrBusinessNotFound
	}
	return nil
}

func (f *fakeBusinessRepo) Assign(ctx context.Context, req business.AssignBusinessRequest) error {
	if _, ok := f.businesses[req.ID]; !ok {
		return business.ErrBusinessNotFound
	}
	f.assigned = &req
	return nil
}

func (f *fakeBusinessRepo) List(ctx context.Context, filter business.BusinessFilter) ([]business.Business, int64, error) {
	var out []business.Business
	for _, b := range f.businesses {
		out = append(out, b)
	}
	return out, int64(len(out)), nil
}

func (f *fakeBusinessRepo) ExistsByMobileNumber(ctx context.Context, mobileNumber string) (bool, error) {
	return f.mobiles[mobileNumber], nil
}

func (f *fakeBusinessRepo) CountByStatusForEmployees(ctx context.Context, employeeIDs []string) (map[string]map[string]int64, error) {
	return nil, nil
}

type stubEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (s *stubEmployeeRepo) ListByRole(ctx context.Context, role employee.Role) ([]employee.Employee, error) {
	return nil, nil
}

func (s *stubEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (s *stubEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	return newEmployee, nil
}

func (s *stubEmployeeRepo) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (s *stubEmployeeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func newTestBusinessService(repo *fakeBusinessRepo) business.BusinessService {
	return NewBusinessService(repo, &stubEmployeeRepo{employees: map[string]employee.Employee{
		"tc1":  {ID: "tc1", Role: employee.RoleTelecaller, Status: employee.StatusActive},
		"bde1": {ID: "bde1", Role: employee.RoleBDE, Status: employee.StatusInactive},
	}})
}

func TestCreateBusiness_DefaultsStatusToNew(t *testing.T) {
	t.Parallel()
	repo := newFakeBusinessRepo()
	svc := newTestBusinessService(repo)

	resp, err := svc.CreateBusiness(context.Background(), business.CreateBusinessRequest{
		Name:         "Sharma Traders",
		MobileNumber: "9876543210",
		City:         "Pune",
	})
	require.NoError(t, err)
	assert.Equal(t, "new", resp.Status)
}

func TestCreateBusiness_DuplicateMobileRejected(t *testing.T) {
	t.Parallel()
	repo := newFakeBusinessRepo()
	svc := newTestBusinessService(repo)
	ctx := context.Background()

	req := business.CreateBusinessRequest{
		Name:         "Sharma Traders",
		MobileNumber: "9876543210",
		City:         "Pune",
	}
	_, err := svc.CreateBusiness(ctx, req)
	require.NoError(t, err)

	req.Name = "Sharma Traders II"
	_, err = svc.CreateBusiness(ctx, req)
	assert.ErrorIs(t, err, business.ErrMobileNumberExists)
}

func TestAssignBusiness_ActiveAssigneeAccepted(t *testing.T) {
	t.Parallel()
	repo := newFakeBusinessRepo()
	svc := newTestBusinessService(repo)
	ctx := context.Background()

	created, err := svc.CreateBusiness(ctx, business.CreateBusinessRequest{
		Name:         "Sharma Traders",
		MobileNumber: "9876543210",
		City:         "Pune",
	})
	require.NoError(t, err)

	tc := "tc1"
	_, err = svc.AssignBusiness(ctx, business.AssignBusinessRequest{
		ID:           created.ID,
		TelecallerID: &tc,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.assigned)
	assert.Equal(t, "tc1", *repo.assigned.TelecallerID)
}

func TestAssignBusiness_InactiveAssigneeRejected(t *testing.T) {
	t.Parallel()
	repo := newFakeBusinessRepo()
	svc := newTestBusinessService(repo)
	ctx := context.Background()

	created, err := svc.CreateBusiness(ctx, business.CreateBusinessRequest{
		Name:         "Sharma Traders",
		MobileNumber: "9876543210",
		City:         "Pune",
	})
	require.NoError(t, err)

	bde := "bde1"
	_, err = svc.AssignBusiness(ctx, business.AssignBusinessRequest{ID: created.ID, BdeID: &bde})
	assert.ErrorIs(t, err, business.ErrInvalidAssignee)
}

func TestAssignBusiness_UnknownAssigneeRejected(t *testing.T) {
	t.Parallel()
	repo := newFakeBusinessRepo()
	svc := newTestBusinessService(repo)
	ctx := context.Background()

	created, err := svc.CreateBusiness(ctx, business.CreateBusinessRequest{
		Name:         "Sharma Traders",
		MobileNumber: "9876543210",
		City:         "Pune",
	})
	require.NoError(t, err)

	ghost := "nobody"
	_, err = svc.AssignBusiness(ctx, business.AssignBusinessRequest{ID: created.ID, AssignedTo: &ghost})
	assert.ErrorIs(t, err, business.ErrInvalidAssignee)
}
