package postgresql

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/reboot-ai/crm-backend-go/internal/domain/business"
	"github.com/reboot-ai/crm-backend-go/internal/pkg/database"
)

type businessRepositoryImpl struct {
	db *database.DB
}

func NewBusinessRepository(db *database.DB) business.BusinessRepository {
	return &businessRepositoryImpl{db: db}
}

const businessColumns = `id, name, contact_person, mobile_number, category, city, status, remarks,
	   telecaller_id, digital_marketer_id, bde_id, assigned_to, lead_by, created_by,
	   follow_up_date, appointment_date, visit_date, created_at, updated_at`

func scanBusiness(row pgx.Row) (business.Business, error) {
	var found business.Business
	err := row.Scan(
		&found.ID,
		&found.Name,
		&found.ContactPerson,
		&found.MobileNumber,
		&found.Category,
		&found.City,
		&found.Status,
		&found.Remarks,
		&found.TelecallerID,
		&found.DigitalMarkerID,
		&found.BdeID,
		&found.AssignedTo,
		&found.LeadBy,
		&found.CreatedBy,
		&found.FollowUpDate,
		&found.AppointmentDate,
		&found.VisitDate,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	return found, err
}

// GetByID implements business.BusinessRepository.
func (r *businessRepositoryImpl) GetByID(ctx context.Context, id string) (business.Business, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`

	found, err := scanBusiness(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return business.Business{}, business.ErrBusinessNotFound
	}
	if err != nil {
		return business.Business{}, err
	}
	return found, nil
}

// Create implements business.BusinessRepository.
func (r *businessRepositoryImpl) Create(ctx context.Context, newBusiness business.Business) (business.Business, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO businesses (
			name, contact_person, mobile_number, category, city, status,
			remarks, lead_by, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + businessColumns

	created, err := scanBusiness(q.QueryRow(ctx, query,
		newBusiness.Name,
		newBusiness.ContactPerson,
		newBusiness.MobileNumber,
		newBusiness.Category,
		newBusiness.City,
		newBusiness.Status,
		newBusiness.Remarks,
		newBusiness.LeadBy,
		newBusiness.CreatedBy,
	))
	if err != nil {
		return business.Business{}, err
	}
	return created, nil
}

// Update implements business.BusinessRepository. Only the fields present in
// the request are written; pipeline dates arrive as YYYY-MM-DD strings and
// are stored at IST midnight.
func (r *businessRepositoryImpl) Update(ctx context.Context, id string, req business.UpdateBusinessRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argPos := 1

	appendSet := func(clause string, value interface{}) {
		setClauses = append(setClauses, strings.Replace(clause, "?", "$"+strconv.Itoa(argPos), 1))
		args = append(args, value)
		argPos++
	}

	if req.Name != nil {
		appendSet("name = ?", *req.Name)
	}
	if req.ContactPerson != nil {
		appendSet("contact_person = ?", *req.ContactPerson)
	}
	if req.Category != nil {
		appendSet("category = ?", *req.Category)
	}
	if req.City != nil {
		appendSet("city = ?", *req.City)
	}
	if req.Status != nil {
		appendSet("status = ?", *req.Status)
	}
	if req.Remarks != nil {
		appendSet("remarks = ?", *req.Remarks)
	}
	if req.FollowUpDate != nil {
		appendSet("follow_up_date = (?::date)::timestamp AT TIME ZONE 'Asia/Kolkata'", *req.FollowUpDate)
	}
	if req.AppointmentDate != nil {
		appendSet("appointment_date = (?::date)::timestamp AT TIME ZONE 'Asia/Kolkata'", *req.AppointmentDate)
	}
	if req.VisitDate != nil {
		appendSet("visit_date = (?::date)::timestamp AT TIME ZONE 'Asia/Kolkata'", *req.VisitDate)
	}

	query := `UPDATE businesses SET ` + strings.Join(setClauses, ", ") +
		` WHERE id = $` + strconv.Itoa(argPos)
	args = append(args, id)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return business.ErrBusinessNotFound
	}
	return nil
}

// Assign implements business.BusinessRepository.
func (r *businessRepositoryImpl) Assign(ctx context.Context, req business.AssignBusinessRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argPos := 1

	appendSet := func(column string, value interface{}) {
		setClauses = append(setClauses, column+" = $"+strconv.Itoa(argPos))
		args = append(args, value)
		argPos++
	}

	if req.TelecallerID != nil {
		appendSet("telecaller_id", *req.TelecallerID)
	}
	if req.DigitalMarketerID != nil {
		appendSet("digital_marketer_id", *req.DigitalMarketerID)
	}
	if req.BdeID != nil {
		appendSet("bde_id", *req.BdeID)
	}
	if req.AssignedTo != nil {
		appendSet("assigned_to", *req.AssignedTo)
	}

	query := `UPDATE businesses SET ` + strings.Join(setClauses, ", ") +
		` WHERE id = $` + strconv.Itoa(argPos)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return business.ErrBusinessNotFound
	}
	return nil
}

// List implements business.BusinessRepository.
func (r *businessRepositoryImpl) List(ctx context.Context, filter business.BusinessFilter) ([]business.Business, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	appendWhere := func(clause string, value interface{}) {
		where += ` AND ` + strings.Replace(clause, "?", "$"+strconv.Itoa(argPos), 1)
		args = append(args, value)
		argPos++
	}

	for column, v := range map[string]*string{
		"status":              filter.Status,
		"category":            filter.Category,
		"city":                filter.City,
		"mobile_number":       filter.MobileNumber,
		"telecaller_id":       filter.TelecallerID,
		"digital_marketer_id": filter.DigitalMarketerID,
		"bde_id":              filter.BdeID,
		"assigned_to":         filter.AssignedTo,
		"lead_by":             filter.LeadBy,
		"created_by":          filter.CreatedBy,
	} {
		if v != nil && *v != "" {
			appendWhere(column+" = ?", *v)
		}
	}

	// Date windows compare on the IST civil date the dashboard sends.
	type dateBound struct {
		column string
		op     string
		value  *string
	}
	for _, b := range []dateBound{
		{"created_at", ">=", filter.CreatedStartDate},
		{"created_at", "<=", filter.CreatedEndDate},
		{"follow_up_date", ">=", filter.FollowupStartDate},
		{"follow_up_date", "<=", filter.FollowupEndDate},
		{"appointment_date", ">=", filter.AppointmentStartDate},
		{"appointment_date", "<=", filter.AppointmentEndDate},
		{"visit_date", ">=", filter.VisitDateStart},
		{"visit_date", "<=", filter.VisitDateEnd},
	} {
		if b.value != nil && *b.value != "" {
			appendWhere("to_char("+b.column+" AT TIME ZONE 'Asia/Kolkata', 'YYYY-MM-DD') "+b.op+" ?", *b.value)
		}
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM businesses`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + businessColumns + ` FROM businesses` + where + `
		ORDER BY created_at DESC
		LIMIT $` + strconv.Itoa(argPos) + ` OFFSET $` + strconv.Itoa(argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var businesses []business.Business
	for rows.Next() {
		found, err := scanBusiness(rows)
		if err != nil {
			return nil, 0, err
		}
		businesses = append(businesses, found)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return businesses, total, nil
}

// ExistsByMobileNumber implements business.BusinessRepository.
func (r *businessRepositoryImpl) ExistsByMobileNumber(ctx context.Context, mobileNumber string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM businesses WHERE mobile_number = $1)`,
		mobileNumber,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// CountByStatusForEmployees implements business.BusinessRepository. A
// business counts toward every role column it is assigned on, matching how
// the dashboard attributes pipeline work.
func (r *businessRepositoryImpl) CountByStatusForEmployees(ctx context.Context, employeeIDs []string) (map[string]map[string]int64, error) {
	result := make(map[string]map[string]int64, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return result, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT assignee, status, COUNT(*)
		FROM (
			SELECT telecaller_id AS assignee, status FROM businesses WHERE telecaller_id = ANY($1)
			UNION ALL
			SELECT digital_marketer_id, status FROM businesses WHERE digital_marketer_id = ANY($1)
			UNION ALL
			SELECT bde_id, status FROM businesses WHERE bde_id = ANY($1)
			UNION ALL
			SELECT assigned_to, status FROM businesses WHERE assigned_to = ANY($1)
		) assignments
		GROUP BY assignee, status
	`

	rows, err := q.Query(ctx, query, employeeIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var employeeID, status string
		var count int64
		if err := rows.Scan(&employeeID, &status, &count); err != nil {
			return nil, err
		}
		if result[employeeID] == nil {
			result[employeeID] = make(map[string]int64)
		}
		result[employeeID][status] += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
