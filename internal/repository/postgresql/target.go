package postgresql

import (
	"context"
	"fmt"

	"github.com/reboot-ai/crm-backend-go/internal/domain/report"
	"github.com/reboot-ai/crm-backend-go/internal/pkg/database"
)

type targetRepositoryImpl struct {
	db *database.DB
}

func NewTargetRepository(db *database.DB) *targetRepositoryImpl {
	return &targetRepositoryImpl{db: db}
}

// ListByEmployee implements employee.TargetRepository. Targets come back in
// insertion order so resolution keeps its last-wins tie break.
func (r *targetRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]report.Target, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT month_index, year, amount, achievement, collection
		FROM targets
		WHERE employee_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var targets []report.Target
	for rows.Next() {
		var monthIndex int
		var t report.Target
		if err := rows.Scan(&monthIndex, &t.Year, &t.Amount, &t.Achievement, &t.Collection); err != nil {
			return nil, err
		}
		t.Month = report.MonthName(monthIndex)
		targets = append(targets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return targets, nil
}

// ListForEmployees implements employee.TargetRepository. One round trip for
// a whole role listing.
func (r *targetRepositoryImpl) ListForEmployees(ctx context.Context, employeeIDs []string) (map[string][]report.Target, error) {
	result := make(map[string][]report.Target, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return result, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, month_index, year, amount, achievement, collection
		FROM targets
		WHERE employee_id = ANY($1)
		ORDER BY created_at ASC, id ASC
	`

	rows, err := q.Query(ctx, query, employeeIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var employeeID string
		var monthIndex int
		var t report.Target
		if err := rows.Scan(&employeeID, &monthIndex, &t.Year, &t.Amount, &t.Achievement, &t.Collection); err != nil {
			return nil, err
		}
		t.Month = report.MonthName(monthIndex)
		result[employeeID] = append(result[employeeID], t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Merge implements employee.TargetRepository. The unique index on
// (employee_id, month_index, year) makes a repeated month an update rather
// than a second row, so one month can never hold two records.
func (r *targetRepositoryImpl) Merge(ctx context.Context, employeeID string, target report.Target) error {
	monthIndex, ok := report.MonthIndex(target.Month)
	if !ok {
		return fmt.Errorf("merge target: unrecognized month %q", target.Month)
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO targets (employee_id, month_index, year, amount, achievement, collection)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, month_index, year)
		DO UPDATE SET
			amount = EXCLUDED.amount,
			achievement = EXCLUDED.achievement,
			collection = EXCLUDED.collection,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, employeeID, monthIndex, target.Year,
		float64(target.Amount), float64(target.Achievement), float64(target.Collection))
	return err
}
