package postgresql

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/reboot-ai/crm-backend-go/internal/domain/attendance"
	"github.com/reboot-ai/crm-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `id, employee_id, date, entry_time, exit_time,
	   entry_latitude, entry_longitude, exit_latitude, exit_longitude,
	   day_count, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var found attendance.Attendance
	err := row.Scan(
		&found.ID,
		&found.EmployeeID,
		&found.Date,
		&found.EntryTime,
		&found.ExitTime,
		&found.EntryLatitude,
		&found.EntryLongitude,
		&found.ExitLatitude,
		&found.ExitLongitude,
		&found.DayCount,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	return found, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			employee_id, date, entry_time, entry_latitude, entry_longitude, day_count
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		record.EmployeeID,
		record.Date,
		record.EntryTime,
		record.EntryLatitude,
		record.EntryLongitude,
		record.DayCount,
	))
	if err != nil {
		return attendance.Attendance{}, err
	}
	return created, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, record attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET exit_time = $1, exit_latitude = $2, exit_longitude = $3,
			day_count = $4, updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query,
		record.ExitTime,
		record.ExitLatitude,
		record.ExitLongitude,
		record.DayCount,
		record.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository. civilDate
// is the YYYY-MM-DD key already shifted to IST by the caller.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, civilDate string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1
		  AND to_char(date AT TIME ZONE 'Asia/Kolkata', 'YYYY-MM-DD') = $2
	`

	found, err := scanAttendance(q.QueryRow(ctx, query, employeeID, civilDate))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &found, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		found, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, found)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		where += ` AND a.employee_id = $` + strconv.Itoa(argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.StartDate != nil {
		where += ` AND to_char(a.date AT TIME ZONE 'Asia/Kolkata', 'YYYY-MM-DD') >= $` + strconv.Itoa(argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil {
		where += ` AND to_char(a.date AT TIME ZONE 'Asia/Kolkata', 'YYYY-MM-DD') <= $` + strconv.Itoa(argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendances a` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT a.id, a.employee_id, a.date, a.entry_time, a.exit_time,
			   a.entry_latitude, a.entry_longitude, a.exit_latitude, a.exit_longitude,
			   a.day_count, a.created_at, a.updated_at, e.name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id` + where + `
		ORDER BY a.date DESC
		LIMIT $` + strconv.Itoa(argPos) + ` OFFSET $` + strconv.Itoa(argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var found attendance.Attendance
		if err := rows.Scan(
			&found.ID,
			&found.EmployeeID,
			&found.Date,
			&found.EntryTime,
			&found.ExitTime,
			&found.EntryLatitude,
			&found.EntryLongitude,
			&found.ExitLatitude,
			&found.ExitLongitude,
			&found.DayCount,
			&found.CreatedAt,
			&found.UpdatedAt,
			&found.EmployeeName,
		); err != nil {
			return nil, 0, err
		}
		records = append(records, found)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return records, total, nil
}
