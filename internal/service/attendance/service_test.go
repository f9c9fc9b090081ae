package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/reboot-ai/crm-backend-go/internal/domain/attendance"
	"github.com/reboot-ai/crm-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records []attendance.Attendance
	nextID  int
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	f.nextID++
	a.ID = "att-" + time.Now().Format("150405") + "-" + string(rune('a'+f.nextID))
	f.records = append(f.records, a)
	return a, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, a attendance.Attendance) error {
	for i := range f.records {
		if f.records[i].ID == a.ID {
			f.records[i] = a
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, civilDate string) (*attendance.Attendance, error) {
	for i := range f.records {
		if f.records[i].EmployeeID == employeeID && attendance.CivilDate(f.records[i].Date) == civilDate {
			rec := f.records[i]
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	return f.records, int64(len(f.records)), nil
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

func newTestAttendanceService(att *fakeAttendanceRepo) attendance.AttendanceService {
	return NewAttendanceService(att, &stubEmployeeRepo{employees: map[string]employee.Employee{
		"emp1": {ID: "emp1", Name: "Asha", Status: employee.StatusActive},
		"emp2": {ID: "emp2", Name: "Ravi", Status: employee.StatusInactive},
	}})
}

func TestClockIn_RecordsEntry(t *testing.T) {
	t.Parallel()
	repo := &fakeAttendanceRepo{}
	svc := newTestAttendanceService(repo)

	resp, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{
		EmployeeID: "emp1",
		Latitude:   19.076,
		Longitude:  72.8777,
	})
	require.NoError(t, err)

	assert.Equal(t, "emp1", resp.EmployeeID)
	assert.Equal(t, attendance.CivilDate(time.Now()), resp.Date)
	assert.NotEqual(t, "nd", resp.EntryTime)
	assert.Equal(t, "nd", resp.ExitTime)
	assert.Zero(t, resp.DayCount)
}

func TestClockIn_SecondSameDayRejected(t *testing.T) {
	t.Parallel()
	repo := &fakeAttendanceRepo{}
	svc := newTestAttendanceService(repo)
	ctx := context.Background()

	req := attendance.ClockInRequest{EmployeeID: "emp1", Latitude: 19.076, Longitude: 72.8777}
	_, err := svc.ClockIn(ctx, req)
	require.NoError(t, err)

	_, err = svc.ClockIn(ctx, req)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestClockIn_InactiveEmployeeRejected(t *testing.T) {
	t.Parallel()
	svc := newTestAttendanceService(&fakeAttendanceRepo{})

	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{
		EmployeeID: "emp2",
		Latitude:   19.076,
		Longitude:  72.8777,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestClockOut_WithoutClockInRejected(t *testing.T) {
	t.Parallel()
	svc := newTestAttendanceService(&fakeAttendanceRepo{})

	_, err := svc.ClockOut(context.Background(), attendance.ClockOutRequest{
		EmployeeID: "emp1",
		Latitude:   19.076,
		Longitude:  72.8777,
	})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestClockOut_GrantsFullDayCredit(t *testing.T) {
	t.Parallel()
	repo := &fakeAttendanceRepo{}
	svc := newTestAttendanceService(repo)
	ctx := context.Background()

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "emp1", Latitude: 19.076, Longitude: 72.8777})
	require.NoError(t, err)

	resp, err := svc.ClockOut(ctx, attendance.ClockOutRequest{EmployeeID: "emp1", Latitude: 19.08, Longitude: 72.88})
	require.NoError(t, err)

	assert.Equal(t, 1.0, resp.DayCount)
	assert.NotEqual(t, "nd", resp.ExitTime)

	// A second clock-out on a closed record is rejected.
	_, err = svc.ClockOut(ctx, attendance.ClockOutRequest{EmployeeID: "emp1", Latitude: 19.08, Longitude: 72.88})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestGetDayCount_SumsCredits(t *testing.T) {
	t.Parallel()
	now := time.Now()
	repo := &fakeAttendanceRepo{records: []attendance.Attendance{
		{ID: "a1", EmployeeID: "emp1", Date: now.AddDate(0, 0, -2), DayCount: 1},
		{ID: "a2", EmployeeID: "emp1", Date: now.AddDate(0, 0, -1), DayCount: 0.5},
		{ID: "a3", EmployeeID: "emp2", Date: now, DayCount: 1},
	}}
	svc := newTestAttendanceService(repo)

	resp, err := svc.GetDayCount(context.Background(), attendance.DayCountRequest{EmployeeID: "emp1"})
	require.NoError(t, err)
	assert.Equal(t, 1.5, resp.DayCount)
}
