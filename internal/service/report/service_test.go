package report

import (
	"context"
	"errors"
	"testing"

	"github.com/reboot-ai/crm-backend-go/internal/domain/employee"
	"github.com/reboot-ai/crm-backend-go/internal/domain/report"
	"github.com/reboot-ai/crm-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	byRole  map[employee.Role][]employee.Employee
	failFor employee.Role
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListByRole(ctx context.Context, role employee.Role) ([]employee.Employee, error) {
	if role == f.failFor {
		return nil, errors.New("connection reset")
	}
	return f.byRole[role], nil
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

type fakeTargetRepo struct {
	targets map[string][]report.Target
}

func (f *fakeTargetRepo) ListByEmployee(ctx context.Context, employeeID string) ([]report.Target, error) {
	return f.targets[employeeID], nil
}

func (f *fakeTargetRepo) ListForEmployees(ctx context.Context, employeeIDs []string) (map[string][]report.Target, error) {
	out := make(map[string][]report.Target)
	for _, id := range employeeIDs {
		out[id] = f.targets[id]
	}
	return out, nil
}

func (f *fakeTargetRepo) Merge(ctx context.Context, employeeID string, target report.Target) error {
	if f.targets == nil {
		f.targets = make(map[string][]report.Target)
	}
	f.targets[employeeID] = append(f.targets[employeeID], target)
	return nil
}

func newTestReportService(emp *fakeEmployeeRepo, tgt *fakeTargetRepo) report.ReportService {
	return NewReportService(emp, tgt)
}

func TestGeneratePeriodSummary_ResolvesLatestTargetInRange(t *testing.T) {
	t.Parallel()

	emp := &fakeEmployeeRepo{byRole: map[employee.Role][]employee.Employee{
		employee.RoleTelecaller: {
			{ID: "tc1", Name: "Asha", Role: employee.RoleTelecaller},
		},
	}}
	tgt := &fakeTargetRepo{targets: map[string][]report.Target{
		"tc1": {
			{Month: "January", Year: 2025, Amount: 100000, Achievement: 40000, Collection: 30000},
			{Month: "February", Year: 2025, Amount: 120000, Achievement: 90000, Collection: 50000},
			{Month: "March", Year: 2025, Amount: 150000, Achievement: 10000, Collection: 5000},
		},
	}}

	svc := newTestReportService(emp, tgt)
	resp, err := svc.GeneratePeriodSummary(context.Background(), report.SummaryRequest{
		StartDate: "2025-01-01",
		EndDate:   "2025-02-28",
	})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)

	row := resp.Rows[0]
	// February is the latest plan inside the window; March is out of range.
	assert.Equal(t, "February", row.TargetMonth)
	assert.Equal(t, 120000.0, row.TargetAmount)
	assert.Equal(t, 90000.0, row.Achievement)
	assert.Equal(t, 75.0, row.AchievementPercent)

	// Collections sum across every month in the window, not just the
	// resolved target month.
	assert.Equal(t, 80000.0, row.Collection)

	assert.Equal(t, 120000.0, resp.TotalTarget)
	assert.Equal(t, 90000.0, resp.TotalAchieved)
	assert.Equal(t, 80000.0, resp.TotalCollection)
	assert.NotEmpty(t, resp.GeneratedAt)
}

func TestGeneratePeriodSummary_SpansAllThreeRoles(t *testing.T) {
	t.Parallel()

	emp := &fakeEmployeeRepo{byRole: map[employee.Role][]employee.Employee{
		employee.RoleTelecaller:      {{ID: "tc1", Name: "Asha", Role: employee.RoleTelecaller}},
		employee.RoleDigitalMarketer: {{ID: "dm1", Name: "Vikram", Role: employee.RoleDigitalMarketer}},
		employee.RoleBDE:             {{ID: "bde1", Name: "Priya", Role: employee.RoleBDE}},
	}}
	tgt := &fakeTargetRepo{}

	svc := newTestReportService(emp, tgt)
	resp, err := svc.GeneratePeriodSummary(context.Background(), report.SummaryRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Rows, 3)

	// No targets anywhere: rows exist with zero figures.
	for _, row := range resp.Rows {
		assert.Zero(t, row.TargetAmount)
		assert.Zero(t, row.Collection)
	}
}

func TestGeneratePeriodSummary_HalfRangeRejected(t *testing.T) {
	t.Parallel()

	svc := newTestReportService(&fakeEmployeeRepo{}, &fakeTargetRepo{})
	_, err := svc.GeneratePeriodSummary(context.Background(), report.SummaryRequest{
		StartDate: "2025-01-01",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestGeneratePeriodSummary_FetchFailureFailsWholeReport(t *testing.T) {
	t.Parallel()

	emp := &fakeEmployeeRepo{
		byRole: map[employee.Role][]employee.Employee{
			employee.RoleTelecaller: {{ID: "tc1", Role: employee.RoleTelecaller}},
		},
		failFor: employee.RoleBDE,
	}

	svc := newTestReportService(emp, &fakeTargetRepo{})
	_, err := svc.GeneratePeriodSummary(context.Background(), report.SummaryRequest{})
	assert.Error(t, err)
}

func TestGenerateYearGraph_AlwaysTwelveBuckets(t *testing.T) {
	t.Parallel()

	emp := &fakeEmployeeRepo{byRole: map[employee.Role][]employee.Employee{
		employee.RoleTelecaller: {{ID: "tc1", Role: employee.RoleTelecaller}},
	}}
	tgt := &fakeTargetRepo{targets: map[string][]report.Target{
		"tc1": {
			{Month: "March", Year: 2025, Amount: 50000, Achievement: 25000, Collection: 20000},
			{Month: "March", Year: 2024, Amount: 99999, Achievement: 99999, Collection: 99999},
		},
	}}

	svc := newTestReportService(emp, tgt)
	resp, err := svc.GenerateYearGraph(context.Background(), report.GraphRequest{Year: 2025})
	require.NoError(t, err)

	require.Len(t, resp.TargetVsAchievement, 12)
	require.Len(t, resp.TargetVsCollection, 12)
	require.Len(t, resp.BarHeights, 12)

	assert.Equal(t, "JAN", resp.TargetVsAchievement[0].Month)
	assert.Equal(t, "DEC", resp.TargetVsAchievement[11].Month)

	// Only the 2025 record lands in its bucket; the 2024 one is filtered.
	assert.Equal(t, 50000.0, resp.TargetVsAchievement[2].Target)
	assert.Equal(t, 25000.0, resp.TargetVsAchievement[2].ClearedAmount)
	assert.Equal(t, 20000.0, resp.TargetVsCollection[2].ClearedAmount)
	assert.Equal(t, 50.0, resp.BarHeights[2])

	// Untouched months stay zeroed rather than dropping out.
	assert.Zero(t, resp.TargetVsAchievement[0].Target)
	assert.Zero(t, resp.BarHeights[0])
}

func TestGenerateYearGraph_RejectsImplausibleYear(t *testing.T) {
	t.Parallel()

	svc := newTestReportService(&fakeEmployeeRepo{}, &fakeTargetRepo{})
	_, err := svc.GenerateYearGraph(context.Background(), report.GraphRequest{Year: 1999})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}
