package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/reboot-ai/crm-backend-go/internal/domain/attendance"
	"github.com/reboot-ai/crm-backend-go/internal/domain/employee"
	"github.com/reboot-ai/crm-backend-go/internal/domain/report"
)

type attendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// ClockIn implements attendance.AttendanceService. "Today" is the IST civil
// day, not the server's local date.
func (s *attendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	found, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if found.Status != employee.StatusActive {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeInactive
	}

	now := time.Now()
	today := attendance.CivilDate(now)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID:     req.EmployeeID,
		Date:           now,
		EntryTime:      &now,
		EntryLatitude:  &req.Latitude,
		EntryLongitude: &req.Longitude,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	slog.Info("clock-in recorded", "employee_id", req.EmployeeID, "date", today)

	return toAttendanceResponse(created), nil
}

// ClockOut implements attendance.AttendanceService. The full day credit is
// granted on clock-out; partial credits come from manual correction.
func (s *attendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()
	today := attendance.CivilDate(now)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if existing.ExitTime != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	existing.ExitTime = &now
	existing.ExitLatitude = &req.Latitude
	existing.ExitLongitude = &req.Longitude
	existing.DayCount = 1

	if err := s.attendanceRepo.Update(ctx, *existing); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	slog.Info("clock-out recorded", "employee_id", req.EmployeeID, "date", today)

	return toAttendanceResponse(*existing), nil
}

// GetWindow implements attendance.AttendanceService.
func (s *attendanceServiceImpl) GetWindow(ctx context.Context, req attendance.WindowRequest) (attendance.Window, error) {
	if err := req.Validate(); err != nil {
		return attendance.Window{}, err
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, req.EmployeeID)
	if err != nil {
		return attendance.Window{}, err
	}

	// The request date is a bare YYYY-MM-DD meant as an IST calendar day.
	date, err := time.ParseInLocation("2006-01-02", req.Date, attendance.IST)
	if err != nil {
		return attendance.Window{}, err
	}

	return attendance.WindowForDate(toRecords(records), date), nil
}

// GetDayCount implements attendance.AttendanceService.
func (s *attendanceServiceImpl) GetDayCount(ctx context.Context, req attendance.DayCountRequest) (attendance.DayCountResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayCountResponse{}, err
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, req.EmployeeID)
	if err != nil {
		return attendance.DayCountResponse{}, err
	}

	var rng *attendance.DateRange
	if req.StartDate != "" && req.EndDate != "" {
		start, err1 := time.ParseInLocation("2006-01-02", req.StartDate, attendance.IST)
		end, err2 := time.ParseInLocation("2006-01-02", req.EndDate, attendance.IST)
		if err1 == nil && err2 == nil {
			rng = &attendance.DateRange{Start: start, End: end}
		}
	}

	return attendance.DayCountResponse{
		EmployeeID: req.EmployeeID,
		DayCount:   attendance.SumDayCount(toRecords(records), rng),
	}, nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *attendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.ListFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	items := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, toAttendanceResponse(rec))
	}

	return attendance.ListAttendanceResponse{Items: items, TotalItems: total}, nil
}

// toRecords converts stored rows to the resolver's wire shape.
func toRecords(rows []attendance.Attendance) []attendance.Record {
	records := make([]attendance.Record, 0, len(rows))
	for _, row := range rows {
		rec := attendance.Record{
			Date:     row.Date,
			DayCount: report.Number(row.DayCount),
		}
		if row.EntryTime != nil {
			rec.EntryTime = row.EntryTime.Format(time.RFC3339)
		}
		if row.ExitTime != nil {
			rec.ExitTime = row.ExitTime.Format(time.RFC3339)
		}
		if row.EntryLatitude != nil && row.EntryLongitude != nil {
			rec.EntryLocation = &attendance.GeoPoint{Latitude: *row.EntryLatitude, Longitude: *row.EntryLongitude}
		}
		if row.ExitLatitude != nil && row.ExitLongitude != nil {
			rec.ExitLocation = &attendance.GeoPoint{Latitude: *row.ExitLatitude, Longitude: *row.ExitLongitude}
		}
		records = append(records, rec)
	}
	return records
}

func toAttendanceResponse(a attendance.Attendance) attendance.AttendanceResponse {
	rec := toRecords([]attendance.Attendance{a})[0]
	window := attendance.WindowForDate([]attendance.Record{rec}, a.Date)

	resp := attendance.AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       attendance.CivilDate(a.Date),
		EntryTime:  window.EntryTime,
		ExitTime:   window.ExitTime,
		EntryLoc:   window.EntryLocation,
		ExitLoc:    window.ExitLocation,
		DayCount:   a.DayCount,
	}
	if a.EmployeeName != nil {
		resp.EmployeeName = *a.EmployeeName
	}
	return resp
}
